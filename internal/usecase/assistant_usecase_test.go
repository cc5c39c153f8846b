package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/lokal-market/internal/domain/entity"
	"github.com/yourusername/lokal-market/internal/infrastructure/storage"
	"github.com/yourusername/lokal-market/internal/usecase"
)

// MockAIRepository mock untuk repository.AIRepository
type MockAIRepository struct {
	mock.Mock
}

func (m *MockAIRepository) Recommend(ctx context.Context, question string, products []entity.Product) (string, error) {
	args := m.Called(ctx, question, products)
	return args.String(0), args.Error(1)
}

func TestAskPassesCatalogSnapshot(t *testing.T) {
	catalogRepo := storage.NewMemoryCatalogRepository()
	mockAI := new(MockAIRepository)
	uc := usecase.NewAssistantUseCase(mockAI, catalogRepo)

	mockAI.On("Recommend", mock.Anything, "rekomendasi kopi dong", mock.MatchedBy(func(products []entity.Product) bool {
		return len(products) == 5
	})).Return("Coba Kopi Arabika Gayo Premium - Rp 125.000", nil)

	answer, err := uc.Ask(context.Background(), "rekomendasi kopi dong")
	require.NoError(t, err)
	assert.Contains(t, answer, "Kopi Arabika Gayo Premium")
	mockAI.AssertExpectations(t)
}

func TestAskPropagatesAIError(t *testing.T) {
	catalogRepo := storage.NewMemoryCatalogRepository()
	mockAI := new(MockAIRepository)
	uc := usecase.NewAssistantUseCase(mockAI, catalogRepo)

	mockAI.On("Recommend", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("quota habis"))

	_, err := uc.Ask(context.Background(), "halo")
	assert.Error(t, err)
}

func TestAskWithoutAIConfigured(t *testing.T) {
	uc := usecase.NewAssistantUseCase(nil, storage.NewMemoryCatalogRepository())

	_, err := uc.Ask(context.Background(), "halo")
	assert.ErrorIs(t, err, usecase.ErrAssistantDisabled)
}
