package auth

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"payout-api/pkg/cerror"
	"payout-api/pkg/logger"
	"payout-api/pkg/server"
)

type handler struct {
	authService Service
}

func NewHandler(authService Service) server.Handler {
	return &handler{
		authService: authService,
	}
}

func (h *handler) RegisterRoutes(app *fiber.App) {
	app.Post("/auth/token", h.Token)
}

func (h *handler) Token(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "issueToken"))
	ctx.Locals(logger.ContextKey, log)

	var payload LoginPayload
	err := ctx.BodyParser(&payload)
	if err != nil {
		return cerror.NewError(
			fiber.StatusBadRequest,
			"malformed request body",
		).SetSeverity(zapcore.WarnLevel)
	}

	validate := validator.New()
	err = validate.Struct(payload)
	if err != nil {
		return cerror.NewError(
			fiber.StatusBadRequest,
			"malformed request body",
		).SetSeverity(zapcore.WarnLevel)
	}

	accessToken, err := h.authService.Login(ctx.Context(), &payload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(TokenResponse{
			AccessToken: accessToken,
		})
}
