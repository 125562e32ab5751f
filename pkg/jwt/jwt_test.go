package jwt

import (
	"testing"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestGenerateAndParse_ConRole(t *testing.T) {
	tok, err := Generate(testSecret, "ramesh_01", "admin", "gramin-test", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, role, err := Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "ramesh_01", userID)
	assert.Equal(t, "admin", role)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := Generate("", "ramesh_01", "user", "gramin-test", 60)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := Generate(testSecret, "ramesh_01", "user", "gramin-test", -1)
	require.NoError(t, err)

	_, _, err = Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := Generate(testSecret, "ramesh_01", "user", "gramin-test", 60)
	require.NoError(t, err)

	_, _, err = Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err)
}

func TestParse_RechazaAlgNone(t *testing.T) {
	claims := Claims{UserID: "ramesh_01", Role: "admin"}
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, claims).SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, _, err = Parse(testSecret, tok)
	assert.Error(t, err)
}
