package repository

import (
	"context"

	"github.com/yourusername/lokal-market/internal/domain/entity"
)

// CatalogRepository port penyimpanan katalog
// Katalog disimpan utuh sebagai satu daftar, tidak ada partial write
type CatalogRepository interface {
	// Load memuat seluruh katalog; storage kosong atau rusak
	// di-seed dengan katalog bawaan lalu langsung dipersist
	Load(ctx context.Context) ([]entity.Product, error)

	// Save menimpa seluruh katalog tersimpan
	Save(ctx context.Context, products []entity.Product) error
}
