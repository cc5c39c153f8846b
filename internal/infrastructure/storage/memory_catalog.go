package storage

import (
	"context"
	"sync"

	"github.com/yourusername/lokal-market/internal/domain/entity"
	"github.com/yourusername/lokal-market/internal/domain/repository"
)

type memoryCatalogRepository struct {
	mu       sync.RWMutex
	products []entity.Product
	seeded   bool
}

// NewMemoryCatalogRepository catalog repository di memori
// Dipakai untuk test dan mode ephemeral, perilaku seeding sama dengan SQLite
func NewMemoryCatalogRepository() repository.CatalogRepository {
	return &memoryCatalogRepository{}
}

// Load memuat katalog; pertama kali dipanggil di-seed katalog bawaan
func (m *memoryCatalogRepository) Load(ctx context.Context) ([]entity.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.seeded {
		m.products = entity.DefaultCatalog()
		m.seeded = true
	}

	out := make([]entity.Product, len(m.products))
	copy(out, m.products)
	return out, nil
}

// Save menimpa seluruh katalog
func (m *memoryCatalogRepository) Save(ctx context.Context, products []entity.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.products = make([]entity.Product, len(products))
	copy(m.products, products)
	m.seeded = true
	return nil
}
