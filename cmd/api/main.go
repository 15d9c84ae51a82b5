package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"subscription-checkout-api/internal/config"
	"subscription-checkout-api/internal/handler"
	"subscription-checkout-api/internal/server"
	"subscription-checkout-api/internal/service"
	"subscription-checkout-api/pkg/logger"
	"subscription-checkout-api/pkg/payment"
	"subscription-checkout-api/pkg/utils"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	zapLogger, err := logger.New()
	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer zapLogger.Sync()

	// Stripe service
	stripeService := payment.NewStripeService(cfg.Stripe.SecretKey)

	// Checkout service
	checkoutService := service.NewCheckoutService(stripeService, zapLogger)

	validator := utils.NewValidator()

	// Handlers
	checkoutHandler := handler.NewCheckoutHandler(
		checkoutService,
		validator,
		"http://localhost:"+cfg.Server.Port,
	)

	app := server.New(cfg, checkoutHandler)

	zapLogger.Info("server listening",
		zap.String("port", cfg.Server.Port),
		zap.String("checkout_page", "http://localhost:"+cfg.Server.Port+"/index.html"),
	)

	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}
