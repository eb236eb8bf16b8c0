package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/raash-api/pkg/jwt"
)

const (
	testSecret    = "test-secret-key-for-unit-tests"
	testSessionID = "7d0a3c2e-3f0e-4b7f-9d55-1a2b3c4d5e6f"
	testIssuer    = "raash-api-test"
)

func TestJWT_GenerateAndParse_SessionID(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testSessionID, testIssuer, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	sid, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testSessionID, sid)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testSessionID, testIssuer, -time.Minute)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testSessionID, testIssuer, time.Hour)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestJWT_SinSessionID_RetornaError(t *testing.T) {
	_, err := pkgjwt.Generate(testSecret, "", testIssuer, time.Hour)
	assert.Error(t, err)
}

func TestJWT_TokenMalformado(t *testing.T) {
	_, err := pkgjwt.Parse(testSecret, "token.invalido.aqui")
	assert.Error(t, err)
}
