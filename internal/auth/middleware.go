package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"payout-api/pkg/cerror"
	"payout-api/pkg/jwt_generator"
)

// RequireAdmin authorizes a request from its Authorization header alone: the
// bearer token must verify and carry the admin role. The check never touches
// the store.
func RequireAdmin(jwtGenerator jwt_generator.JwtGenerator) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authorizationHeader := ctx.Get(fiber.HeaderAuthorization)
		if authorizationHeader == "" {
			return cerror.ErrorMissingAuthorizationHeader
		}

		rawToken, isBearer := strings.CutPrefix(authorizationHeader, "Bearer ")
		if !isBearer || rawToken == "" {
			return cerror.ErrorMalformedAuthorizationHeader
		}

		claims, err := jwtGenerator.VerifyToken(rawToken)
		if err != nil {
			if errors.Is(err, jwt_generator.ErrExpiredToken) {
				return cerror.ErrorExpiredToken
			}

			return cerror.ErrorInvalidToken
		}

		if claims.Role != RoleAdmin {
			return cerror.ErrorNotAdmin
		}

		ctx.Locals(ClaimsContextKey, claims)
		return ctx.Next()
	}
}
