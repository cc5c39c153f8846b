package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/yourusername/lokal-market/internal/domain/entity"
	"github.com/yourusername/lokal-market/internal/domain/repository"
)

// ErrOrderDisabled pemesanan belum dikonfigurasi (notifier tidak ada)
var ErrOrderDisabled = errors.New("pemesanan belum tersedia")

// CatalogUseCase tampilan katalog untuk pelanggan
type CatalogUseCase interface {
	// All seluruh katalog dalam urutan tampil tabel admin
	All(ctx context.Context) ([]entity.Product, error)

	// Categories daftar kategori terurut dengan sentinel "Semua" di depan
	Categories(ctx context.Context) ([]string, error)

	// Filtered etalase pelanggan: status on + filter kategori + pencarian
	Filtered(ctx context.Context, search, category string) ([]entity.Product, error)

	// Order meneruskan permintaan pesanan satu produk ke admin
	Order(ctx context.Context, productID int64) (*entity.Product, error)
}

type catalogUseCase struct {
	catalogRepo repository.CatalogRepository
	notifier    repository.OrderNotifier
}

// NewCatalogUseCase membuat CatalogUseCase baru
// notifier boleh nil, pemesanan dimatikan kalau tidak dikonfigurasi
func NewCatalogUseCase(catalogRepo repository.CatalogRepository, notifier repository.OrderNotifier) CatalogUseCase {
	return &catalogUseCase{
		catalogRepo: catalogRepo,
		notifier:    notifier,
	}
}

// All seluruh katalog dalam urutan tampil
func (u *catalogUseCase) All(ctx context.Context) ([]entity.Product, error) {
	return u.catalogRepo.Load(ctx)
}

// Categories daftar kategori unik terurut, diawali sentinel "Semua"
func (u *catalogUseCase) Categories(ctx context.Context) ([]string, error) {
	products, err := u.catalogRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var cats []string
	for _, p := range products {
		if _, ok := seen[p.Category]; !ok {
			seen[p.Category] = struct{}{}
			cats = append(cats, p.Category)
		}
	}
	sort.Strings(cats)

	return append([]string{entity.CategoryAll}, cats...), nil
}

// Filtered etalase pelanggan, urutan katalog dipertahankan
// Ketiga predikat berlaku sekaligus: status on, kategori cocok, teks cocok
func (u *catalogUseCase) Filtered(ctx context.Context, search, category string) ([]entity.Product, error) {
	products, err := u.catalogRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(search)
	var results []entity.Product
	for _, p := range products {
		if p.Status != entity.StatusOn {
			continue
		}
		if category != entity.CategoryAll && category != "" && p.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Title), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		results = append(results, p)
	}

	return results, nil
}

// Order meneruskan permintaan pesanan satu produk
func (u *catalogUseCase) Order(ctx context.Context, productID int64) (*entity.Product, error) {
	products, err := u.catalogRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	for _, p := range products {
		if p.ID == productID {
			if u.notifier == nil {
				return nil, ErrOrderDisabled
			}
			if err := u.notifier.NotifyOrder(ctx, p); err != nil {
				return nil, fmt.Errorf("gagal meneruskan pesanan: %w", err)
			}
			return &p, nil
		}
	}

	return nil, fmt.Errorf("produk tidak ditemukan: %d", productID)
}
