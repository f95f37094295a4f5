package config

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Plan describes a purchasable subscription plan
type Plan struct {
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type Config struct {
	// Server configuration
	Port string
	Mode string

	// Database configuration
	DatabaseURL string

	// Redis configuration (optional, disables rate limiting when empty)
	RedisURL string

	// AI gateway configuration
	AIGatewayURL     string
	AIGatewayKey     string
	AIModel          string
	AITimeoutSeconds int

	// ePayco payment gateway configuration
	EpaycoPublicKey  string
	EpaycoPrivateKey string
	EpaycoMerchantID string
	EpaycoTest       bool
	ConfirmationURL  string
	ResponseURL      string

	// Brevo email configuration
	BrevoAPIKey    string
	BrevoFromEmail string
	BrevoFromName  string

	// Admin API configuration
	AdminAPIKey string

	// Plan price table, injected at startup so tests can swap it
	Plans map[string]Plan

	// Affiliate configuration
	DefaultCommissionRate float64

	// Generator rate limiting (requests per user per minute)
	GeneratorRateLimit int
}

var AppConfig *Config

// DefaultPlans returns the built-in plan price table
func DefaultPlans() map[string]Plan {
	return map[string]Plan{
		"pro":     {Name: "Pro Plan", Amount: 19, Currency: "USD"},
		"premium": {Name: "Premium Plan", Amount: 49, Currency: "USD"},
		"gold":    {Name: "Gold Plan", Amount: 99, Currency: "USD"},
	}
}

func InitConfig() error {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		// Ignore error if .env file doesn't exist
	}

	AppConfig = &Config{
		Port:                  getEnv("PORT", "8080"),
		Mode:                  getEnv("GIN_MODE", "debug"),
		DatabaseURL:           getEnv("DATABASE_URL", ""),
		RedisURL:              getEnv("REDIS_URL", ""),
		AIGatewayURL:          getEnv("AI_GATEWAY_URL", "https://api.openai.com/v1"),
		AIGatewayKey:          getEnv("AI_GATEWAY_KEY", ""),
		AIModel:               getEnv("AI_MODEL", "gpt-4o-mini"),
		AITimeoutSeconds:      getEnvInt("AI_TIMEOUT_SECONDS", 30),
		EpaycoPublicKey:       getEnv("EPAYCO_PUBLIC_KEY", ""),
		EpaycoPrivateKey:      getEnv("EPAYCO_PRIVATE_KEY", ""),
		EpaycoMerchantID:      getEnv("EPAYCO_MERCHANT_ID", ""),
		EpaycoTest:            getEnvBool("EPAYCO_TEST", true),
		ConfirmationURL:       getEnv("EPAYCO_CONFIRMATION_URL", ""),
		ResponseURL:           getEnv("EPAYCO_RESPONSE_URL", ""),
		BrevoAPIKey:           getEnv("BREVO_API_KEY", ""),
		BrevoFromEmail:        getEnv("BREVO_FROM_EMAIL", ""),
		BrevoFromName:         getEnv("BREVO_FROM_NAME", "Growth Suite"),
		AdminAPIKey:           getEnv("ADMIN_API_KEY", ""),
		Plans:                 loadPlans(),
		DefaultCommissionRate: getEnvFloat("DEFAULT_COMMISSION_RATE", 0.10),
		GeneratorRateLimit:    getEnvInt("GENERATOR_RATE_LIMIT", 20),
	}

	return nil
}

// loadPlans builds the plan table from PLAN_PRICES (JSON) or falls back
// to the built-in defaults
func loadPlans() map[string]Plan {
	raw := os.Getenv("PLAN_PRICES")
	if raw == "" {
		return DefaultPlans()
	}

	var plans map[string]Plan
	if err := json.Unmarshal([]byte(raw), &plans); err != nil || len(plans) == 0 {
		return DefaultPlans()
	}
	return plans
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
