package jwt_generator

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"payout-api/pkg/config"
)

type JwtGenerator interface {
	GenerateToken(subject, role string) (string, error)
	VerifyToken(rawJwtToken string) (*Claims, error)
}

type jwtGenerator struct {
	secret        []byte
	signingMethod *jwt.SigningMethodHMAC
	expiration    time.Duration
}

func NewJwtGenerator(jwtConfig config.JwtConfig) (JwtGenerator, error) {
	var signingMethod *jwt.SigningMethodHMAC
	switch jwtConfig.Algorithm {
	case "HS256":
		signingMethod = jwt.SigningMethodHS256
	case "HS384":
		signingMethod = jwt.SigningMethodHS384
	case "HS512":
		signingMethod = jwt.SigningMethodHS512
	default:
		return nil, fmt.Errorf("%s is not a supported jwt signing algorithm", jwtConfig.Algorithm)
	}

	return &jwtGenerator{
		secret:        jwtConfig.Secret,
		signingMethod: signingMethod,
		expiration:    time.Duration(jwtConfig.ExpirationMinutes) * time.Minute,
	}, nil
}

func (jwtGenerator *jwtGenerator) GenerateToken(subject, role string) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   subject,
			Issuer:    IssuerDefault,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(jwtGenerator.expiration)),
		},
	}

	token := jwt.NewWithClaims(jwtGenerator.signingMethod, claims)

	signedToken, err := token.SignedString(jwtGenerator.secret)
	if err != nil {
		return "", err
	}

	return signedToken, nil
}

func (jwtGenerator *jwtGenerator) VerifyToken(rawJwtToken string) (*Claims, error) {
	var claims Claims

	_, err := jwt.ParseWithClaims(rawJwtToken, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}

		return jwtGenerator.secret, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims.Subject == "" || claims.Role == "" || claims.ExpiresAt == nil {
		return nil, ErrInvalidToken
	}

	now := time.Now().UTC()
	isNotExpired := claims.VerifyExpiresAt(now, true)
	if !isNotExpired {
		return nil, ErrExpiredToken
	}

	return &claims, nil
}
