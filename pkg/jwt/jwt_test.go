package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/banco-horas-api/pkg/jwt"
)

func TestGenerateParse_RoundTrip(t *testing.T) {
	id := jwt.Identity{UserID: "u-1", Username: "maria", Role: "admin"}

	token, err := jwt.Generate("secreto", id, "banco-horas", 10)
	require.NoError(t, err)

	got, err := jwt.Parse("secreto", token)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := jwt.Generate("secreto", jwt.Identity{UserID: "u-1"}, "banco-horas", 10)
	require.NoError(t, err)

	_, err = jwt.Parse("otro-secreto", token)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	token, err := jwt.Generate("secreto", jwt.Identity{UserID: "u-1"}, "banco-horas", -1)
	require.NoError(t, err)

	_, err = jwt.Parse("secreto", token)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", jwt.Identity{UserID: "u-1"}, "banco-horas", 10)
	assert.Error(t, err)
}
