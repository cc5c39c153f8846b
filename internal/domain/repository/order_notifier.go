package repository

import (
	"context"

	"github.com/yourusername/lokal-market/internal/domain/entity"
)

// OrderNotifier port notifikasi pesanan ke admin toko
type OrderNotifier interface {
	// NotifyOrder meneruskan permintaan pesanan satu produk
	NotifyOrder(ctx context.Context, product entity.Product) error
}
