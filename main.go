package main

import (
	"log"
	"time"

	"github.com/templatehub/backend/config"
	"github.com/templatehub/backend/controllers"
	"github.com/templatehub/backend/gateway"
	"github.com/templatehub/backend/payments"
	"github.com/templatehub/backend/routes"
	"github.com/templatehub/backend/utils"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Initialize database
	config.InitDB()

	// Create bootstrap admin if missing
	if err := controllers.CreateDefaultAdmin(); err != nil {
		utils.LogError("Failed to create default admin: %v", err)
		log.Fatal("Failed to create default admin:", err)
	}

	// Seed default catalog data
	if err := controllers.SeedCatalog(); err != nil {
		utils.LogError("Failed to seed catalog: %v", err)
		log.Fatal("Failed to seed catalog:", err)
	}

	// Wire the payment service
	paymentService := &payments.Service{
		Store:       &payments.GormStore{DB: config.DB},
		Gateway:     gateway.NewClient(cfg.CashfreeBaseURL, cfg.CashfreeAppID, cfg.CashfreeSecretKey, 10*time.Second),
		Mailer:      utils.SMTPMailer{},
		Log:         utils.ServiceLogger{},
		FrontendURL: cfg.FrontendURL,
		NotifyURL:   cfg.WebhookURL,
	}
	controllers.InitPaymentService(paymentService)

	// Set up router
	router := routes.SetupRouter()

	utils.LogInfo("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
