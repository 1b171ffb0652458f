package managers

import (
	"crypto/ed25519"
	"crypto/rand"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTManager(t *testing.T, lifetime time.Duration) JWTMgr {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	return NewJWTManager(privateKey, publicKey, lifetime)
}

func TestGenerateAndValidateJWT(t *testing.T) {
	jwtMgr := newTestJWTManager(t, time.Hour)

	token, err := jwtMgr.GenerateJWT(jwtMgr.GenerateClaims("test@example.com"))
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwtMgr.ValidateJWT(token)
	require.NoError(t, err)

	subject, err := claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "test@example.com", subject)

	issuer, err := claims.GetIssuer()
	require.NoError(t, err)
	assert.Equal(t, "money-manager", issuer)
}

func TestValidateExpiredJWT(t *testing.T) {
	jwtMgr := newTestJWTManager(t, -time.Minute)

	token, err := jwtMgr.GenerateJWT(jwtMgr.GenerateClaims("test@example.com"))
	require.NoError(t, err)

	_, err = jwtMgr.ValidateJWT(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateTamperedJWT(t *testing.T) {
	jwtMgr := newTestJWTManager(t, time.Hour)

	token, err := jwtMgr.GenerateJWT(jwtMgr.GenerateClaims("test@example.com"))
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

	_, err = jwtMgr.ValidateJWT(tampered)
	assert.Error(t, err)
}

func TestValidateJWTFromForeignKey(t *testing.T) {
	jwtMgr := newTestJWTManager(t, time.Hour)
	otherMgr := newTestJWTManager(t, time.Hour)

	token, err := otherMgr.GenerateJWT(otherMgr.GenerateClaims("test@example.com"))
	require.NoError(t, err)

	_, err = jwtMgr.ValidateJWT(token)
	assert.Error(t, err)
}

func TestNewJWTManagerFromFilePersistsKeyPair(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keypair")

	first, err := NewJWTManagerFromFile(path, time.Hour)
	require.NoError(t, err)

	token, err := first.GenerateJWT(first.GenerateClaims("test@example.com"))
	require.NoError(t, err)

	// a second manager loads the persisted pair, so the token stays valid
	second, err := NewJWTManagerFromFile(path, time.Hour)
	require.NoError(t, err)

	_, err = second.ValidateJWT(token)
	assert.NoError(t, err)
}
