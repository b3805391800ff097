package auth

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"golang.org/x/crypto/bcrypt"

	"payout-api/pkg/cerror"
	"payout-api/pkg/jwt_generator"
)

// seedUser mirrors the provisioning users the original deployment created at
// container startup.
type seedUser struct {
	email    string
	password string
	role     string
}

var provisioningUsers = []seedUser{
	{email: "admin@example.com", password: "adminpassword123", role: RoleAdmin},
	{email: "user@example.com", password: "userpassword123", role: RoleUser},
}

type Service interface {
	Login(ctx context.Context, payload *LoginPayload) (string, error)
	SeedUsers(ctx context.Context) error
}

type service struct {
	userRepository Repository
	jwtGenerator   jwt_generator.JwtGenerator
}

func NewService(userRepository Repository, jwtGenerator jwt_generator.JwtGenerator) Service {
	return &service{
		userRepository: userRepository,
		jwtGenerator:   jwtGenerator,
	}
}

func (s *service) Login(ctx context.Context, payload *LoginPayload) (string, error) {
	user, err := s.userRepository.FindUserWithEmail(ctx, payload.Email)
	if err != nil {
		return "", err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password))
	if err != nil {
		return "", cerror.NewError(
			fiber.StatusUnauthorized,
			"invalid credentials",
		).SetSeverity(zapcore.WarnLevel)
	}

	accessToken, err := s.jwtGenerator.GenerateToken(user.Email, user.Role)
	if err != nil {
		return "", cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while generate access token",
			zap.Error(err),
		)
	}

	return accessToken, nil
}

// SeedUsers inserts the provisioning users once at startup, before the server
// accepts requests. Users that already exist are left untouched.
func (s *service) SeedUsers(ctx context.Context) error {
	for _, seed := range provisioningUsers {
		_, err := s.userRepository.FindUserWithEmail(ctx, seed.email)
		if err == nil {
			continue
		}

		var cerr *cerror.CustomError
		isNotFound := errors.As(err, &cerr) && cerr.HttpStatusCode == fiber.StatusNotFound
		if !isNotFound {
			return err
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(seed.password), bcrypt.DefaultCost)
		if err != nil {
			return cerror.NewError(
				fiber.StatusInternalServerError,
				"error occurred while generate hash from password",
				zap.Error(err),
			)
		}

		err = s.userRepository.InsertUser(ctx, &UserDocument{
			Id:        uuid.New().String(),
			Email:     seed.email,
			Password:  string(hashedPassword),
			Role:      seed.role,
			CreatedAt: time.Now().UTC().Unix(),
		})
		if err != nil {
			return err
		}
	}

	return nil
}
