package entity

import (
	"strconv"
	"strings"
)

// Status menandakan apakah produk tampil di etalase
type Status string

const (
	// StatusOn produk tampil untuk pelanggan
	StatusOn Status = "on"

	// StatusOff produk disembunyikan dari etalase
	StatusOff Status = "off"
)

const (
	// CategoryAll sentinel "semua kategori" untuk filter etalase
	CategoryAll = "Semua"

	// CategoryDefault kategori fallback untuk baris import tanpa label
	CategoryDefault = "Umum"
)

// Product satu entri katalog
// Harga dalam satuan mata uang terkecil (Rupiah, tanpa desimal)
type Product struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	ImageURL    string `json:"imageUrl"`
	Price       int64  `json:"price"`
	PriceOld    *int64 `json:"priceOld"`
	Description string `json:"description"`
	Status      Status `json:"status"`
	Weight      int64  `json:"weight"`
	Category    string `json:"category"`
}

// CatalogStats ringkasan katalog untuk dashboard admin
type CatalogStats struct {
	TotalItems int `json:"totalItems"`
	LiveItems  int `json:"liveItems"`
	Categories int `json:"categories"`
}

func ptrInt64(v int64) *int64 { return &v }

// FormatRupiah menulis angka dengan pemisah ribuan titik (gaya id-ID)
func FormatRupiah(n int64) string {
	raw := strconv.FormatInt(n, 10)
	var sb strings.Builder
	for i, digit := range raw {
		if i > 0 && (len(raw)-i)%3 == 0 {
			sb.WriteRune('.')
		}
		sb.WriteRune(digit)
	}
	return sb.String()
}

// DefaultCatalog katalog bawaan untuk seeding storage kosong
// Urutannya sama dengan urutan tampil di tabel admin
func DefaultCatalog() []Product {
	return []Product{
		{
			ID:          1,
			Title:       "Kopi Arabika Gayo Premium",
			ImageURL:    "https://images.unsplash.com/photo-1559056199-641a0ac8b55e?q=80&w=800&auto=format&fit=crop",
			Price:       125000,
			PriceOld:    ptrInt64(150000),
			Description: "Kopi Arabika dari dataran tinggi Gayo, Aceh. Memiliki cita rasa fruity dan aroma yang kuat. Cocok untuk pecinta kopi manual brew.",
			Status:      StatusOn,
			Weight:      250,
			Category:    "Minuman",
		},
		{
			ID:          2,
			Title:       "Madu Hutan Asli Riau",
			ImageURL:    "https://images.unsplash.com/photo-1587049352846-4a222e784d38?q=80&w=800&auto=format&fit=crop",
			Price:       85000,
			PriceOld:    ptrInt64(100000),
			Description: "Madu murni dari hutan Riau. Dipanen secara tradisional tanpa pemanasan, menjaga nutrisi tetap utuh.",
			Status:      StatusOn,
			Weight:      500,
			Category:    "Kesehatan",
		},
		{
			ID:          3,
			Title:       "Keripik Tempe Renyah",
			ImageURL:    "https://images.unsplash.com/photo-1621245840632-44140081df98?q=80&w=800&auto=format&fit=crop",
			Price:       15000,
			PriceOld:    ptrInt64(20000),
			Description: "Camilan khas Indonesia yang renyah dan gurih. Dibuat dari tempe pilihan dengan bumbu rempah asli.",
			Status:      StatusOn,
			Weight:      150,
			Category:    "Makanan Ringan",
		},
		{
			ID:          4,
			Title:       "Teh Hijau Melati",
			ImageURL:    "https://images.unsplash.com/photo-1627435601361-ec25f5b1d0e5?q=80&w=800&auto=format&fit=crop",
			Price:       45000,
			PriceOld:    nil,
			Description: "Teh hijau berkualitas dengan sentuhan bunga melati yang menenangkan.",
			Status:      StatusOn,
			Weight:      100,
			Category:    "Minuman",
		},
		{
			ID:          5,
			Title:       "Gula Semut Organik",
			ImageURL:    "https://images.unsplash.com/photo-1616645300529-62167da51079?q=80&w=800&auto=format&fit=crop",
			Price:       35000,
			PriceOld:    ptrInt64(45000),
			Description: "Gula kelapa kristal organik, indeks glikemik rendah, cocok untuk diet sehat.",
			Status:      StatusOn,
			Weight:      250,
			Category:    "Bumbu",
		},
	}
}
