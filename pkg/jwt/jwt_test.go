package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/stock-api/pkg/jwt"
)

const (
	testSecret = "unit-test-secret"
	testUser   = "00000000-0000-0000-0000-000000000001"
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUser, "operador", "stock-api", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, username, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUser, userID)
	assert.Equal(t, "operador", username)
}

func TestParse_TokenExpirado(t *testing.T) {
	// Expiración -1 minuto: ya expirado al emitirse
	tok, err := pkgjwt.Generate(testSecret, testUser, "operador", "stock-api", -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUser, "operador", "stock-api", 60)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("secret-equivocado", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", testUser, "operador", "stock-api", 60)
	assert.Error(t, err)
}
