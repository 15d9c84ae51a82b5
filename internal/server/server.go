package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"

	"subscription-checkout-api/internal/config"
	"subscription-checkout-api/internal/handler"
	"subscription-checkout-api/internal/middleware"
)

// New assembles the fiber app: CORS on every response, request logging,
// optional rate limiting, the checkout endpoint, and static pages for
// everything else.
func New(cfg *config.Config, checkoutHandler *handler.CheckoutHandler) *fiber.App {
	app := fiber.New()

	app.Use(middleware.CORS(cfg.CORS))
	app.Use(fiberlogger.New())

	if cfg.RateLimit.Enabled() {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimit.Max,
			Expiration: cfg.RateLimit.Window,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
		}))
	}

	app.Post("/create-checkout-session", checkoutHandler.CreateCheckoutSession)

	app.Static("/", cfg.Server.StaticDir)

	return app
}
