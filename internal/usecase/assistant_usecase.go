package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yourusername/lokal-market/internal/domain/repository"
)

// ErrAssistantDisabled asisten AI tidak dikonfigurasi
var ErrAssistantDisabled = errors.New("asisten belum tersedia")

// AssistantUseCase asisten belanja AI
type AssistantUseCase interface {
	// Ask menjawab pertanyaan pelanggan dengan konteks katalog saat ini
	Ask(ctx context.Context, question string) (string, error)
}

type assistantUseCase struct {
	aiRepo      repository.AIRepository
	catalogRepo repository.CatalogRepository
}

// NewAssistantUseCase membuat AssistantUseCase baru
// aiRepo boleh nil kalau API key tidak dikonfigurasi
func NewAssistantUseCase(aiRepo repository.AIRepository, catalogRepo repository.CatalogRepository) AssistantUseCase {
	return &assistantUseCase{
		aiRepo:      aiRepo,
		catalogRepo: catalogRepo,
	}
}

// Ask menjawab pertanyaan pelanggan
// Katalog dibaca sekali saat pertanyaan masuk, tidak ada state percakapan
func (u *assistantUseCase) Ask(ctx context.Context, question string) (string, error) {
	if u.aiRepo == nil {
		return "", ErrAssistantDisabled
	}

	// Timeout supaya request AI tidak menggantung
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	products, err := u.catalogRepo.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("gagal memuat katalog: %w", err)
	}

	response, err := u.aiRepo.Recommend(ctx, question, products)
	if err != nil {
		return "", fmt.Errorf("gagal mendapat jawaban: %w", err)
	}

	return response, nil
}
