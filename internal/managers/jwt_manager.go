package managers

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"money-manager-server/internal/schemas"
	"money-manager-server/internal/utils"
)

type JWTMgr interface {
	GenerateJWT(claims jwt.Claims) (string, error)
	ValidateJWT(tokenString string) (jwt.Claims, error)
	GenerateClaims(email string) jwt.Claims
	JWTMiddleware() gin.HandlerFunc
}

// JWTManager handles session token generation, signing, and validation.
// The key pair is process-wide configuration loaded once at startup;
// replacing it invalidates every outstanding token.
type JWTManager struct {
	privateKey ed25519.PrivateKey
	publicKey  ed25519.PublicKey
	lifetime   time.Duration
}

// NewJWTManager creates a new JWTManager with the given key pair and token lifetime.
func NewJWTManager(privateKey ed25519.PrivateKey, publicKey ed25519.PublicKey, lifetime time.Duration) JWTMgr {
	return &JWTManager{
		privateKey: privateKey,
		publicKey:  publicKey,
		lifetime:   lifetime,
	}
}

// NewJWTManagerFromFile loads the key pair from the given path, generating
// and persisting a fresh pair on first boot.
func NewJWTManagerFromFile(path string, lifetime time.Duration) (JWTMgr, error) {
	privateKey, publicKey, err := loadKeyPair(path)
	if err != nil {
		privKey, pubKey, err := generateKeyPair(path)
		if err != nil {
			return nil, err
		}

		privateKey = privKey
		publicKey = pubKey
	}

	return NewJWTManager(privateKey, publicKey, lifetime), nil
}

// GenerateClaims generates the standard claims for the given email identity.
func (jm *JWTManager) GenerateClaims(email string) jwt.Claims {
	now := time.Now()
	return jwt.MapClaims{
		"iss": "money-manager",
		"iat": now.Unix(),
		"exp": now.Add(jm.lifetime).Unix(),
		"sub": email,
	}
}

// GenerateJWT generates a new signed token with the given claims.
func (jm *JWTManager) GenerateJWT(claims jwt.Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	return token.SignedString(jm.privateKey)
}

// ValidateJWT validates the given token and returns the claims if valid.
// Expired and tampered tokens both fail here.
func (jm *JWTManager) ValidateJWT(tokenString string) (jwt.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodEdDSA.Alg() {
			return nil, fmt.Errorf("invalid signing method")
		}

		return jm.publicKey, nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}

	return token.Claims, nil
}

// JWTMiddleware validates the bearer token of the request and stores the
// claims and the email identity in the request context.
func (jm *JWTManager) JWTMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			utils.WriteAndLogError(c, schemas.Unauthorized, http.StatusUnauthorized, fmt.Errorf("missing bearer token"))
			return
		}

		claims, err := jm.ValidateJWT(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			utils.WriteAndLogError(c, schemas.Unauthorized, http.StatusUnauthorized, err)
			return
		}

		mapClaims, ok := claims.(jwt.MapClaims)
		if !ok {
			utils.WriteAndLogError(c, schemas.Unauthorized, http.StatusUnauthorized, fmt.Errorf("unexpected claims type"))
			return
		}

		email, ok := mapClaims["sub"].(string)
		if !ok || email == "" {
			utils.WriteAndLogError(c, schemas.Unauthorized, http.StatusUnauthorized, fmt.Errorf("missing subject claim"))
			return
		}

		c.Set(utils.ClaimsKey.String(), mapClaims)
		c.Set(utils.EmailKey.String(), email)
		c.Next()
	}
}

// generateKeyPair generates a new key pair and saves it to a file.
func generateKeyPair(path string) (ed25519.PrivateKey, ed25519.PublicKey, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, err
	}

	err = saveKeyPair(privateKey, publicKey, path)
	if err != nil {
		return nil, nil, err
	}

	return privateKey, publicKey, nil
}

// saveKeyPair saves the key pair to the specified file.
func saveKeyPair(privateKey ed25519.PrivateKey, publicKey ed25519.PublicKey, path string) error {
	keyPairBytes := append(privateKey, publicKey...)
	return os.WriteFile(path, keyPairBytes, 0600)
}

// loadKeyPair loads the key pair from the specified file.
func loadKeyPair(path string) (ed25519.PrivateKey, ed25519.PublicKey, error) {
	keyPairBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	// The key pair is the concatenation of private and public keys
	if len(keyPairBytes) != ed25519.PrivateKeySize+ed25519.PublicKeySize {
		return nil, nil, fmt.Errorf("invalid key pair format")
	}

	privateKey := ed25519.PrivateKey(keyPairBytes[:ed25519.PrivateKeySize])
	publicKey := ed25519.PublicKey(keyPairBytes[ed25519.PrivateKeySize:])

	return privateKey, publicKey, nil
}
