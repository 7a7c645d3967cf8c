package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestion-almacenes/almacenes-api/pkg/jwt"
)

const (
	testSecret = "secret-de-prueba"
	testIssuer = "almacenes-api-test"
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := jwt.Generate(testSecret, "user-1", "operador1", testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, username, err := jwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "operador1", username)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "user-1", "operador1", testIssuer, 60)
	assert.Error(t, err)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := jwt.Generate(testSecret, "user-1", "operador1", testIssuer, 60)
	require.NoError(t, err)

	_, _, err = jwt.Parse("otro-secret", tok)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := jwt.Generate(testSecret, "user-1", "operador1", testIssuer, -1)
	require.NoError(t, err)

	_, _, err = jwt.Parse(testSecret, tok)
	assert.Error(t, err)
}

func TestParse_TokenMalformado(t *testing.T) {
	_, _, err := jwt.Parse(testSecret, "no-es-un-jwt")
	assert.Error(t, err)
}
