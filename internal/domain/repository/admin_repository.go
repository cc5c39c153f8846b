package repository

import (
	"context"

	"github.com/yourusername/lokal-market/internal/domain/entity"
)

// AdminRepository port sesi admin
// Sesi hanya di memori, hilang saat aplikasi restart
type AdminRepository interface {
	// CreateSession membuat sesi admin baru
	CreateSession(ctx context.Context, session entity.AdminSession) error

	// GetSession mengambil sesi berdasarkan session ID
	GetSession(ctx context.Context, sessionID string) (*entity.AdminSession, error)

	// DeleteSession menghapus sesi (logout)
	DeleteSession(ctx context.Context, sessionID string) error

	// IsAdmin memeriksa apakah sesi masih valid sebagai admin
	IsAdmin(ctx context.Context, sessionID string) (bool, error)

	// UpdateSelection mengganti selection set milik sesi
	UpdateSelection(ctx context.Context, sessionID string, ids []int64) error

	// LogAction mencatat aksi admin
	LogAction(ctx context.Context, action entity.AdminAction) error
}
