package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/yourusername/lokal-market/internal/domain/entity"
	"github.com/yourusername/lokal-market/internal/domain/repository"
)

// catalogKey key tetap tempat seluruh katalog disimpan
const catalogKey = "lokal_market_products"

type sqliteCatalogRepository struct {
	db *sql.DB
}

// NewSQLiteCatalogRepository catalog repository berbasis SQLite
// Katalog disimpan sebagai satu entri key-value berisi array JSON
func NewSQLiteCatalogRepository(dbPath string) (repository.CatalogRepository, error) {
	if dbPath == "" {
		return nil, errors.New("db path tidak boleh kosong")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("tidak bisa membuat folder db: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite tidak bisa dibuka: %w", err)
	}

	if err := createCatalogSchema(db); err != nil {
		return nil, err
	}

	return &sqliteCatalogRepository{db: db}, nil
}

func createCatalogSchema(db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS kv (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("tidak bisa membuat schema: %w", err)
	}
	return nil
}

// Load memuat seluruh katalog dari storage
// Entri kosong maupun JSON rusak sama-sama jatuh ke katalog bawaan,
// dan katalog bawaan langsung dipersist supaya load berikutnya konsisten
func (s *sqliteCatalogRepository) Load(ctx context.Context) ([]entity.Product, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, catalogKey).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return s.seedDefault(ctx)
		}
		return nil, fmt.Errorf("gagal membaca katalog: %w", err)
	}

	var products []entity.Product
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		// Data rusak diperlakukan sama dengan storage kosong
		log.Printf("⚠️ Katalog tersimpan rusak, kembali ke katalog bawaan: %v", err)
		return s.seedDefault(ctx)
	}

	return products, nil
}

// Save menimpa seluruh katalog tersimpan
func (s *sqliteCatalogRepository) Save(ctx context.Context, products []entity.Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("gagal serialisasi katalog: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `INSERT OR REPLACE INTO kv (key, value) VALUES (?, ?)`, catalogKey, string(raw))
	if err != nil {
		return fmt.Errorf("gagal menyimpan katalog: %w", err)
	}
	return nil
}

func (s *sqliteCatalogRepository) seedDefault(ctx context.Context) ([]entity.Product, error) {
	seed := entity.DefaultCatalog()
	if err := s.Save(ctx, seed); err != nil {
		return nil, fmt.Errorf("gagal seeding katalog bawaan: %w", err)
	}
	log.Printf("📦 Katalog kosong, di-seed dengan %d produk bawaan", len(seed))
	return seed, nil
}
