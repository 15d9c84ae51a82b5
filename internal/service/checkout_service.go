package service

import (
	"errors"
	"strings"

	"github.com/stripe/stripe-go/v74"
	"go.uber.org/zap"

	"subscription-checkout-api/internal/models"
	"subscription-checkout-api/pkg/payment"
)

// sessionIDPlaceholder is substituted by Stripe when redirecting the
// customer back to the success page.
const sessionIDPlaceholder = "{CHECKOUT_SESSION_ID}"

type CheckoutService struct {
	gateway payment.CheckoutSessionCreator
	logger  *zap.Logger
}

func NewCheckoutService(gateway payment.CheckoutSessionCreator, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{
		gateway: gateway,
		logger:  logger,
	}
}

// CreateCheckoutSession asks Stripe for a subscription checkout session for
// the given price and returns its ID. The redirect URLs are built from the
// caller's origin. The returned error is always an *models.AppError.
func (s *CheckoutService) CreateCheckoutSession(origin, priceID string) (string, error) {
	if strings.TrimSpace(priceID) == "" {
		return "", models.ValidationError("Price ID is required")
	}

	sess, err := s.gateway.CreateCheckoutSession(payment.CheckoutSessionParams{
		PriceID:    priceID,
		SuccessURL: origin + "/success.html?session_id=" + sessionIDPlaceholder,
		CancelURL:  origin + "/cancel.html",
	})
	if err != nil {
		s.logger.Error("checkout session creation failed",
			zap.String("price_id", priceID),
			zap.Error(err),
		)
		return "", models.UpstreamError(providerMessage(err))
	}

	return sess.ID, nil
}

// providerMessage prefers Stripe's human-readable message over the SDK's
// wrapped error text.
func providerMessage(err error) string {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
		return stripeErr.Msg
	}
	return err.Error()
}
