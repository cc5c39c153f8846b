package parser

import (
	"context"
	"log"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/yourusername/lokal-market/internal/domain/entity"
	"github.com/yourusername/lokal-market/internal/domain/repository"
)

// minColumns jumlah kolom minimum satu baris import
// Urutan: Judul, Gambar, Harga, Harga Coret, Deskripsi, Status, Berat, Label
const minColumns = 8

type csvParser struct{}

// NewCSVParser parser CSV katalog
func NewCSVParser() repository.CatalogParser {
	return &csvParser{}
}

// ParseProducts membaca teks CSV menjadi daftar produk
// Baris pertama selalu dianggap header dan dibuang, baris rusak dilewati diam-diam
func (p *csvParser) ParseProducts(ctx context.Context, data []byte) ([]entity.Product, error) {
	lines := strings.Split(string(data), "\n")

	var products []entity.Product
	base := time.Now().UnixMilli()

	for i := 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}

		cols := splitCSVLine(line)
		for j, col := range cols {
			cols[j] = stripOuterQuotes(col)
		}

		if len(cols) < minColumns {
			continue
		}

		products = append(products, productFromColumns(cols, base, i))
	}

	log.Printf("📦 CSV: %d produk terbaca dari %d baris", len(products), len(lines))
	return products, nil
}

// splitCSVLine memecah satu baris menjadi kolom
// Tanda kutip hanya membuka/menutup, dua kutip berurutan bukan escape
func splitCSVLine(line string) []string {
	var result []string
	var current strings.Builder
	inQuotes := false

	for _, char := range line {
		switch {
		case char == '"':
			inQuotes = !inQuotes
		case char == ',' && !inQuotes:
			result = append(result, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(char)
		}
	}
	result = append(result, strings.TrimSpace(current.String()))

	return result
}

// stripOuterQuotes membuang satu kutip pembuka dan penutup kalau ada
func stripOuterQuotes(s string) string {
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	return s
}

// productFromColumns memetakan kolom posisi tetap menjadi produk
// Kolom status (indeks 5) dibaca tapi tidak dipakai: semua baris import
// masuk dengan status on supaya langsung tampil di etalase
func productFromColumns(cols []string, base int64, index int) entity.Product {
	category := cols[7]
	if category == "" {
		category = entity.CategoryDefault
	}

	product := entity.Product{
		ID:          newProductID(base, index),
		Title:       cols[0],
		ImageURL:    cols[1],
		Price:       cleanNumber(cols[2]),
		Description: cols[4],
		Status:      entity.StatusOn,
		Weight:      cleanNumber(cols[6]),
		Category:    category,
	}

	if cols[3] != "" {
		old := cleanNumber(cols[3])
		product.PriceOld = &old
	}

	return product
}

// cleanNumber membuang semua karakter non-digit lalu parse sebagai integer
// "Rp3.500" menjadi 3500; hasil kosong menjadi 0
func cleanNumber(val string) int64 {
	var digits strings.Builder
	for _, r := range val {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	n, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// newProductID ID berbasis waktu + indeks baris + jitter acak
// Best-effort saja, tidak ada jaminan unik lintas import
func newProductID(base int64, index int) int64 {
	return base + int64(index) + rand.Int63n(1000)
}
