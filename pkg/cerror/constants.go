package cerror

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap/zapcore"
)

var (
	ErrorMissingAuthorizationHeader = &CustomError{
		HttpStatusCode: fiber.StatusUnauthorized,
		Detail:         "missing authorization header",
		LogSeverity:    zapcore.WarnLevel,
	}

	ErrorMalformedAuthorizationHeader = &CustomError{
		HttpStatusCode: fiber.StatusUnauthorized,
		Detail:         "malformed authorization header",
		LogSeverity:    zapcore.WarnLevel,
	}

	ErrorInvalidToken = &CustomError{
		HttpStatusCode: fiber.StatusUnauthorized,
		Detail:         "invalid token",
		LogSeverity:    zapcore.WarnLevel,
	}

	ErrorExpiredToken = &CustomError{
		HttpStatusCode: fiber.StatusUnauthorized,
		Detail:         "token expired",
		LogSeverity:    zapcore.WarnLevel,
	}

	ErrorNotAdmin = &CustomError{
		HttpStatusCode: fiber.StatusUnauthorized,
		Detail:         "admin privileges required",
		LogSeverity:    zapcore.WarnLevel,
	}
)
