package middleware

import (
	"github.com/gofiber/fiber/v2"

	"subscription-checkout-api/internal/config"
)

// CORS sets the cross-origin headers on every response, error responses
// included. The defaults are intentionally wide open; the allowed origins
// and headers come from configuration so deployments can narrow them.
func CORS(cfg config.CORSConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAccessControlAllowOrigin, cfg.AllowOrigins)
		c.Set(fiber.HeaderAccessControlAllowHeaders, cfg.AllowHeaders)
		c.Set(fiber.HeaderAccessControlAllowMethods, "GET, POST, OPTIONS")

		if c.Method() == fiber.MethodOptions {
			return c.SendStatus(fiber.StatusNoContent)
		}

		return c.Next()
	}
}
