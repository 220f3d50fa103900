package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/gelato-api/internal/application/dto"
	"github.com/jhoicas/gelato-api/internal/bootstrap"
	"github.com/jhoicas/gelato-api/internal/domain"
	"github.com/jhoicas/gelato-api/internal/infrastructure/crypto"
	"github.com/jhoicas/gelato-api/pkg/config"
	"github.com/jhoicas/gelato-api/pkg/logger"
)

var superuserFlags dto.SuperuserRequest

// gelatoctl createsuperuser --email admin@x.com --password secreto
var createSuperuserCmd = &cobra.Command{
	Use:   "createsuperuser",
	Short: "Crea un usuario con is_staff e is_superuser",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, App: "gelatoctl"})
		store, closeStore, err := bootstrap.OpenStore(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer closeStore()

		in := superuserFlags
		if in.Password == "" {
			if in.Password, err = readLine(cmd.InOrStdin()); err != nil {
				return err
			}
		}
		user, err := bootstrap.NewUseCases(store, cfg).Users.CreateSuperuser(cmd.Context(), in)
		if err != nil {
			var verr *domain.ValidationError
			if errors.As(err, &verr) {
				for field, msgs := range verr.Fields {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", field, strings.Join(msgs, " "))
				}
			}
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Superusuario %s creado (id %d).\n", user.Email, user.ID)
		return nil
	},
}

// gelatoctl hash-password < clave.txt
var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password [password]",
	Short: "Imprime el hash bcrypt de una contraseña (argumento o stdin)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var plain string
		if len(args) == 1 {
			plain = args[0]
		} else {
			var err error
			if plain, err = readLine(cmd.InOrStdin()); err != nil {
				return err
			}
		}
		if plain == "" {
			return errors.New("contraseña vacía")
		}
		hash, err := crypto.NewBcryptHasher(0).Hash(plain)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), hash)
		return nil
	},
}

func init() {
	f := createSuperuserCmd.Flags()
	f.StringVar(&superuserFlags.Email, "email", "", "email del superusuario")
	f.StringVar(&superuserFlags.Password, "password", "", "contraseña (si se omite se lee de stdin)")
	f.StringVar(&superuserFlags.FirstName, "first-name", "", "nombre")
	f.StringVar(&superuserFlags.LastName, "last-name", "", "apellido")
	_ = createSuperuserCmd.MarkFlagRequired("email")
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
