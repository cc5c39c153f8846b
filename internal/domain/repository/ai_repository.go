package repository

import (
	"context"

	"github.com/yourusername/lokal-market/internal/domain/entity"
)

// AIRepository port asisten belanja AI
// Stateless: setiap pertanyaan membawa snapshot katalog saat itu
type AIRepository interface {
	// Recommend menjawab pertanyaan pelanggan berdasarkan daftar produk
	Recommend(ctx context.Context, question string, products []entity.Product) (string, error)
}
