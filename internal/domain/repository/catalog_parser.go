package repository

import (
	"context"

	"github.com/yourusername/lokal-market/internal/domain/entity"
)

// CatalogParser port pembaca file import katalog (CSV atau Excel)
type CatalogParser interface {
	// ParseProducts membaca isi file menjadi daftar produk
	// Baris yang tidak valid dilewati tanpa error
	ParseProducts(ctx context.Context, data []byte) ([]entity.Product, error)
}
