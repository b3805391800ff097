//go:build unit

package jwt_generator

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payout-api/pkg/config"
)

const (
	TestUserEmail = "admin@example.com"
)

var (
	TestSecret          = []byte("test-jwt-secret")
	TestAmbiguousSecret = []byte("another-jwt-secret")
)

func TestNewJwtGenerator(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		jwtGenerator, err := NewJwtGenerator(config.JwtConfig{
			Secret:            TestSecret,
			Algorithm:         "HS256",
			ExpirationMinutes: 30,
		})

		assert.NoError(t, err)
		assert.Implements(t, (*JwtGenerator)(nil), jwtGenerator)
	})

	t.Run("unsupported signing algorithm", func(t *testing.T) {
		jwtGenerator, err := NewJwtGenerator(config.JwtConfig{
			Secret:            TestSecret,
			Algorithm:         "RS256",
			ExpirationMinutes: 30,
		})

		assert.Error(t, err)
		assert.Nil(t, jwtGenerator)
	})
}

func TestJwtGenerator_GenerateToken(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		jwtGenerator, err := NewJwtGenerator(config.JwtConfig{
			Secret:            TestSecret,
			Algorithm:         "HS256",
			ExpirationMinutes: 30,
		})
		require.NoError(t, err)

		token, err := jwtGenerator.GenerateToken(TestUserEmail, RoleAdmin)

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
	})
}

func TestJwtGenerator_VerifyToken(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		jwtGenerator, err := NewJwtGenerator(config.JwtConfig{
			Secret:            TestSecret,
			Algorithm:         "HS256",
			ExpirationMinutes: 30,
		})
		require.NoError(t, err)

		token, err := jwtGenerator.GenerateToken(TestUserEmail, RoleAdmin)
		require.NoError(t, err)

		claims, err := jwtGenerator.VerifyToken(token)

		assert.NoError(t, err)
		assert.Equal(t, TestUserEmail, claims.Subject)
		assert.Equal(t, RoleAdmin, claims.Role)
	})

	t.Run("when token is expired should return expired token error", func(t *testing.T) {
		now := time.Now().UTC()
		claims := Claims{
			Role: RoleAdmin,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   TestUserEmail,
				IssuedAt:  jwt.NewNumericDate(now.Add(-time.Hour)),
				ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(TestSecret)
		require.NoError(t, err)

		jwtGenerator, err := NewJwtGenerator(config.JwtConfig{
			Secret:            TestSecret,
			Algorithm:         "HS256",
			ExpirationMinutes: 30,
		})
		require.NoError(t, err)

		verifiedClaims, err := jwtGenerator.VerifyToken(token)

		assert.ErrorIs(t, err, ErrExpiredToken)
		assert.Nil(t, verifiedClaims)
	})

	t.Run("when token is signed with another secret should return invalid token error", func(t *testing.T) {
		ambiguousJwtGenerator, err := NewJwtGenerator(config.JwtConfig{
			Secret:            TestAmbiguousSecret,
			Algorithm:         "HS256",
			ExpirationMinutes: 30,
		})
		require.NoError(t, err)

		token, err := ambiguousJwtGenerator.GenerateToken(TestUserEmail, RoleAdmin)
		require.NoError(t, err)

		jwtGenerator, err := NewJwtGenerator(config.JwtConfig{
			Secret:            TestSecret,
			Algorithm:         "HS256",
			ExpirationMinutes: 30,
		})
		require.NoError(t, err)

		verifiedClaims, err := jwtGenerator.VerifyToken(token)

		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Nil(t, verifiedClaims)
	})

	t.Run("when token is malformed should return invalid token error", func(t *testing.T) {
		jwtGenerator, err := NewJwtGenerator(config.JwtConfig{
			Secret:            TestSecret,
			Algorithm:         "HS256",
			ExpirationMinutes: 30,
		})
		require.NoError(t, err)

		verifiedClaims, err := jwtGenerator.VerifyToken("not.a.token")

		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Nil(t, verifiedClaims)
	})

	t.Run("when token is missing role claim should return invalid token error", func(t *testing.T) {
		now := time.Now().UTC()
		claims := jwt.RegisteredClaims{
			Subject:   TestUserEmail,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(TestSecret)
		require.NoError(t, err)

		jwtGenerator, err := NewJwtGenerator(config.JwtConfig{
			Secret:            TestSecret,
			Algorithm:         "HS256",
			ExpirationMinutes: 30,
		})
		require.NoError(t, err)

		verifiedClaims, err := jwtGenerator.VerifyToken(token)

		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Nil(t, verifiedClaims)
	})
}
