package payout

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"payout-api/pkg/cerror"
	"payout-api/pkg/logger"
	"payout-api/pkg/server"
)

type handler struct {
	payoutService Service
	requireAdmin  fiber.Handler
}

func NewHandler(payoutService Service, requireAdmin fiber.Handler) server.Handler {
	return &handler{
		payoutService: payoutService,
		requireAdmin:  requireAdmin,
	}
}

func (h *handler) RegisterRoutes(app *fiber.App) {
	app.Get("/payout", h.requireAdmin, h.ListPayouts)
}

func (h *handler) ListPayouts(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "listPayouts"))
	ctx.Locals(logger.ContextKey, log)

	page := 1
	if rawPage := ctx.Query("page"); rawPage != "" {
		var err error
		page, err = strconv.Atoi(rawPage)
		if err != nil {
			return cerror.NewError(
				fiber.StatusBadRequest,
				"invalid page: must be an integer",
				zap.String("page", rawPage),
			).SetSeverity(zapcore.WarnLevel)
		}
	}

	predicate, err := BuildPredicate(FilterParams{
		Statuses:         ctx.Query("statuses"),
		StartDate:        ctx.Query("start_date"),
		EndDate:          ctx.Query("end_date"),
		PaymentStartDate: ctx.Query("payment_start_date"),
		PaymentEndDate:   ctx.Query("payment_end_date"),
		UserType:         ctx.Query("user_type"),
	})
	if err != nil {
		return err
	}

	result, err := h.payoutService.List(ctx.Context(), predicate, page)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(result)
}
