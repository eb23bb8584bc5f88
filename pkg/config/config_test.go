package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/banco-horas-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto-de-pruebas")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "banco-horas", cfg.App.Name)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, time.Hour, cfg.Alert.Interval)
	assert.Equal(t, 30, cfg.Alert.DaysBefore)
	assert.Equal(t, 6*time.Hour, cfg.Backup.Interval)
	assert.Equal(t, 30, cfg.Backup.Keep)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.False(t, cfg.SMTP.Configured())
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto-de-pruebas")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("ALERT_INTERVAL", "15m")
	t.Setenv("SMTP_HOST", "smtp.example.org")
	t.Setenv("SMTP_USER", "avisos@example.org")
	t.Setenv("SMTP_PASS", "x")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 15*time.Minute, cfg.Alert.Interval)
	assert.True(t, cfg.SMTP.Configured())
	assert.Equal(t, "avisos@example.org", cfg.SMTP.From, "From usa SMTP_USER si no se define")
}

func TestLoad_SinSecretoJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "banco_horas", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/banco_horas?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}
