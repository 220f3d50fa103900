package entity

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// User cuenta de acceso. El email normalizado es la clave de identidad.
type User struct {
	ID           int64
	Email        string
	PasswordHash string // nunca plano
	FirstName    string
	LastName     string
	IsStaff      bool
	IsActive     bool
	IsSuperuser  bool
	DateJoined   time.Time
	LastLogin    *time.Time // nil si nunca se autenticó
}

var emailCaser = cases.Lower(language.Und)

// NormalizeEmail recorta espacios y pasa el email a minúsculas.
func NormalizeEmail(email string) string {
	return emailCaser.String(strings.TrimSpace(email))
}
