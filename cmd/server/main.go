package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/lokal-market/config"
	"github.com/yourusername/lokal-market/internal/delivery/httpapi"
	"github.com/yourusername/lokal-market/internal/domain/repository"
	"github.com/yourusername/lokal-market/internal/infrastructure/gemini"
	"github.com/yourusername/lokal-market/internal/infrastructure/parser"
	"github.com/yourusername/lokal-market/internal/infrastructure/storage"
	"github.com/yourusername/lokal-market/internal/infrastructure/telegram"
	"github.com/yourusername/lokal-market/internal/metrics"
	"github.com/yourusername/lokal-market/internal/usecase"
)

func main() {
	conf, err := config.Load()
	if err != nil {
		log.Fatalf("gagal memuat konfigurasi: %v", err)
	}

	// Storage
	catalogRepo, err := storage.NewSQLiteCatalogRepository(conf.CatalogDBPath)
	if err != nil {
		log.Fatalf("gagal membuka storage katalog: %v", err)
	}
	adminRepo := storage.NewMemoryAdminRepository()

	// Parser import
	csvParser := parser.NewCSVParser()
	excelParser := parser.NewExcelParser()

	// Asisten AI, opsional
	var aiRepo repository.AIRepository
	if conf.GeminiAPIKey != "" {
		aiRepo, err = gemini.NewGeminiClient(conf.GeminiAPIKey)
		if err != nil {
			log.Fatalf("gagal membuat client Gemini: %v", err)
		}
	} else {
		log.Println("⚠️ GEMINI_API_KEY kosong, asisten AI dimatikan")
	}

	// Notifier pesanan, opsional
	var notifier repository.OrderNotifier
	if conf.TelegramToken != "" && conf.OrderGroupChatID != 0 {
		notifier, err = telegram.NewOrderNotifier(conf.TelegramToken, conf.OrderGroupChatID)
		if err != nil {
			log.Fatalf("gagal membuat notifier pesanan: %v", err)
		}
	} else {
		log.Println("⚠️ Notifier pesanan tidak dikonfigurasi, tombol pesan dimatikan")
	}

	// Usecase
	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo, notifier)
	adminUseCase := usecase.NewAdminUseCase(conf.AdminPassword, adminRepo, catalogRepo, csvParser, excelParser)
	assistantUseCase := usecase.NewAssistantUseCase(aiRepo, catalogRepo)

	// Metrics server
	metrics.StartMetricsServer(conf.MetricsPort)

	// HTTP server
	handler := httpapi.NewHandler(catalogUseCase, adminUseCase, assistantUseCase)
	server := httpapi.InitRouter(gin.Default(), handler, adminUseCase)

	log.Printf("🛍️ Lokal Market jalan di port %s", conf.HTTPPort)
	if err := server.Run(":" + conf.HTTPPort); err != nil {
		log.Fatalf("server HTTP berhenti: %v", err)
	}
}
