package mocks

import (
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
)

// MockJwtManager is a mock of the JWTManager.
// It is used to simulate token operations in tests that do not care about
// real signatures.
type MockJwtManager struct {
	mock.Mock
}

func (m *MockJwtManager) GenerateJWT(claims jwt.Claims) (string, error) {
	args := m.Called(claims)
	return args.String(0), args.Error(1)
}

func (m *MockJwtManager) ValidateJWT(tokenString string) (jwt.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(jwt.Claims), args.Error(1)
}

func (m *MockJwtManager) GenerateClaims(email string) jwt.Claims {
	args := m.Called(email)
	return args.Get(0).(jwt.Claims)
}

func (m *MockJwtManager) JWTMiddleware() gin.HandlerFunc {
	args := m.Called()
	return args.Get(0).(gin.HandlerFunc)
}
