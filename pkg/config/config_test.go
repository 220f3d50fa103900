package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gelato-api/pkg/config"
)

func TestLoad_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("SECRET_KEY", "")
	_, err := config.Load()
	assert.ErrorIs(t, err, config.ErrMissingSecret)
}

func TestLoad_LegacyNames(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("SECRET_KEY", "s3cr3t")
	t.Setenv("DATABASE_HOST", "db.internal")
	t.Setenv("DATABASE_PORT", "6543")
	t.Setenv("DATABASE_NAME", "helados")
	t.Setenv("ROOT_PASSWORD", "pw")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", cfg.JWT.Secret)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Equal(t, "helados", cfg.DB.DBName)
	assert.Equal(t, "pw", cfg.DB.Password)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "x")
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.StoreDriverPostgres, cfg.App.StoreDriver)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 60, cfg.JWT.Expiration)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("JWT_SECRET", "x")
	t.Setenv("STORE_DRIVER", "sqlite")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapesPassword(t *testing.T) {
	c := config.DBConfig{Host: "h", Port: 5432, User: "u", Password: "p@ss:w/rd", DBName: "d", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss%3Aw%2Frd@h:5432/d?sslmode=disable", c.DSN())
	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}
