package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config konfigurasi aplikasi
type Config struct {
	AdminPassword    string
	GeminiAPIKey     string
	CatalogDBPath    string
	HTTPPort         string
	MetricsPort      string
	TelegramToken    string
	OrderGroupChatID int64
}

// Load memuat konfigurasi dari environment
func Load() (*Config, error) {
	// Muat file .env kalau ada
	_ = godotenv.Load()

	config := &Config{
		AdminPassword: "admin123", // Default, ganti lewat ADMIN_PASSWORD
		CatalogDBPath: "data/catalog.db",
		HTTPPort:      "8080",
		MetricsPort:   "9090",
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		TelegramToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
	}

	if password := os.Getenv("ADMIN_PASSWORD"); password != "" {
		config.AdminPassword = password
	}

	if dbPath := os.Getenv("CATALOG_DB_PATH"); dbPath != "" {
		config.CatalogDBPath = dbPath
	}

	if port := os.Getenv("HTTP_PORT"); port != "" {
		config.HTTPPort = port
	}

	if port := os.Getenv("METRICS_PORT"); port != "" {
		config.MetricsPort = port
	}

	if rawChatID := os.Getenv("ORDER_GROUP_CHAT_ID"); rawChatID != "" {
		parsed, err := strconv.ParseInt(rawChatID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("ORDER_GROUP_CHAT_ID tidak valid: %w", err)
		}
		config.OrderGroupChatID = parsed
	}

	// Validasi port
	if _, err := strconv.Atoi(config.HTTPPort); err != nil {
		return nil, fmt.Errorf("HTTP_PORT tidak valid: %w", err)
	}
	if _, err := strconv.Atoi(config.MetricsPort); err != nil {
		return nil, fmt.Errorf("METRICS_PORT tidak valid: %w", err)
	}

	return config, nil
}
