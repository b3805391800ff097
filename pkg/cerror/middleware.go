package cerror

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap/zapcore"

	"payout-api/pkg/logger"
)

// Middleware is the fiber error handler. Every error that escapes a handler is
// logged at its recorded severity and rendered as {"detail": ...} with the
// matching status code. Non-CustomError values become an opaque 500 so internal
// details never reach the client.
func Middleware(ctx *fiber.Ctx, err error) error {
	var cerr *CustomError
	if !errors.As(err, &cerr) {
		var fiberError *fiber.Error
		if errors.As(err, &fiberError) {
			cerr = &CustomError{
				HttpStatusCode: fiberError.Code,
				Detail:         fiberError.Message,
				LogSeverity:    zapcore.WarnLevel,
			}
		} else {
			cerr = &CustomError{
				HttpStatusCode: fiber.StatusInternalServerError,
				Detail:         "unexpected error",
				LogSeverity:    zapcore.ErrorLevel,
			}
		}
	}

	log := logger.FromContext(ctx.Context()).Desugar()
	for _, field := range cerr.LogFields {
		log = log.With(field)
	}
	log.Log(cerr.LogSeverity, cerr.Detail)

	return ctx.
		Status(cerr.HttpStatusCode).
		JSON(fiber.Map{
			"detail": cerr.Detail,
		})
}
