package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"subscription-checkout-api/internal/models"
	"subscription-checkout-api/internal/service"
	"subscription-checkout-api/pkg/utils"
)

type CheckoutHandler struct {
	checkoutService *service.CheckoutService
	validator       *utils.Validator
	fallbackOrigin  string
}

// NewCheckoutHandler builds the handler. fallbackOrigin is used for the
// redirect URLs when the request carries no Origin header (curl, scripts).
func NewCheckoutHandler(checkoutService *service.CheckoutService, validator *utils.Validator, fallbackOrigin string) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		validator:       validator,
		fallbackOrigin:  fallbackOrigin,
	}
}

func (h *CheckoutHandler) CreateCheckoutSession(c *fiber.Ctx) error {
	var req models.CreateCheckoutSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: "Price ID is required"})
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: "Price ID is required"})
	}

	origin := c.Get(fiber.HeaderOrigin)
	if origin == "" {
		origin = h.fallbackOrigin
	}

	sessionID, err := h.checkoutService.CreateCheckoutSession(origin, req.PriceID)
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Kind == models.ErrKindValidation {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: appErr.Message})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(models.CreateCheckoutSessionResponse{SessionID: sessionID})
}
