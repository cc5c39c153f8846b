package storage

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/yourusername/lokal-market/internal/domain/entity"
	"github.com/yourusername/lokal-market/internal/domain/repository"
)

type memoryAdminRepository struct {
	mu       sync.RWMutex
	sessions map[string]entity.AdminSession
	actions  []entity.AdminAction
}

// NewMemoryAdminRepository admin repository di memori
// Sesi tidak dipersist, restart aplikasi berarti logout semua admin
func NewMemoryAdminRepository() repository.AdminRepository {
	return &memoryAdminRepository{
		sessions: make(map[string]entity.AdminSession),
		actions:  []entity.AdminAction{},
	}
}

// CreateSession membuat sesi admin baru
func (m *memoryAdminRepository) CreateSession(ctx context.Context, session entity.AdminSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	session.LastActivity = time.Now()
	m.sessions[session.SessionID] = session
	return nil
}

// GetSession mengambil sesi berdasarkan session ID
func (m *memoryAdminRepository) GetSession(ctx context.Context, sessionID string) (*entity.AdminSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, exists := m.sessions[sessionID]
	if !exists {
		return nil, fmt.Errorf("sesi tidak ditemukan: %s", sessionID)
	}

	return &session, nil
}

// DeleteSession menghapus sesi (logout)
func (m *memoryAdminRepository) DeleteSession(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, sessionID)
	return nil
}

// IsAdmin memeriksa apakah sesi masih valid sebagai admin
func (m *memoryAdminRepository) IsAdmin(ctx context.Context, sessionID string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, exists := m.sessions[sessionID]
	if !exists {
		return false, nil
	}

	// Sesi idle lebih dari 24 jam dianggap kadaluarsa
	if time.Since(session.LastActivity) > 24*time.Hour {
		return false, nil
	}

	return session.IsAdmin, nil
}

// UpdateSelection mengganti selection set milik sesi
func (m *memoryAdminRepository) UpdateSelection(ctx context.Context, sessionID string, ids []int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, exists := m.sessions[sessionID]
	if !exists {
		return fmt.Errorf("sesi tidak ditemukan: %s", sessionID)
	}

	session.SelectedIDs = ids
	session.LastActivity = time.Now()
	m.sessions[sessionID] = session
	return nil
}

// LogAction mencatat aksi admin
func (m *memoryAdminRepository) LogAction(ctx context.Context, action entity.AdminAction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.actions = append(m.actions, action)
	return nil
}
