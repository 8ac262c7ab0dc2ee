package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	Port       string
	Env        string

	CashfreeAppID         string
	CashfreeSecretKey     string
	CashfreeBaseURL       string
	CashfreeWebhookSecret string

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	FrontendURL  string
	WebhookURL   string
	SupportEmail string

	AdminEmail    string
	AdminPassword string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading .env file: %v", err)
	}

	config := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		Port:       getEnv("PORT", "8080"),
		Env:        os.Getenv("ENV"),

		CashfreeAppID:         os.Getenv("CASHFREE_APP_ID"),
		CashfreeSecretKey:     os.Getenv("CASHFREE_SECRET_KEY"),
		CashfreeBaseURL:       getEnv("CASHFREE_BASE_URL", "https://sandbox.cashfree.com"),
		CashfreeWebhookSecret: os.Getenv("CASHFREE_WEBHOOK_SECRET"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:     os.Getenv("SMTP_FROM"),

		FrontendURL:  getEnv("FRONTEND_URL", "http://localhost:5173"),
		WebhookURL:   os.Getenv("WEBHOOK_URL"),
		SupportEmail: getEnv("SUPPORT_EMAIL", "support@templatehub.com"),

		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	return config, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
