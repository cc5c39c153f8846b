package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/lokal-market/internal/domain/entity"
	"github.com/yourusername/lokal-market/internal/domain/repository"
	"github.com/yourusername/lokal-market/internal/metrics"
)

var (
	// ErrWrongPassword password admin salah
	ErrWrongPassword = errors.New("password salah")

	// ErrNotAdmin sesi bukan admin yang valid
	ErrNotAdmin = errors.New("bukan sesi admin")

	// ErrInvalidStatus status hanya boleh on atau off
	ErrInvalidStatus = errors.New("status tidak valid")
)

// AdminUseCase operasi dashboard admin: login gate, import katalog,
// selection set, dan mutasi massal
type AdminUseCase interface {
	// Login membuat sesi admin baru kalau password cocok
	Login(ctx context.Context, password string) (string, error)

	// Logout menghapus sesi (selection set ikut hilang)
	Logout(ctx context.Context, sessionID string) error

	// IsAdmin memeriksa apakah sesi masih valid
	IsAdmin(ctx context.Context, sessionID string) (bool, error)

	// ImportCatalog menambahkan hasil parse file ke katalog dalam satu update
	// Format ditentukan dari nama file (.xlsx dianggap Excel, selainnya CSV)
	ImportCatalog(ctx context.Context, sessionID string, data []byte, filename string) (int, error)

	// Selection selection set milik sesi
	Selection(ctx context.Context, sessionID string) ([]int64, error)

	// ToggleSelect menambah/menghapus satu id dari selection set
	ToggleSelect(ctx context.Context, sessionID string, id int64) ([]int64, error)

	// ToggleSelectAll memilih seluruh katalog, atau mengosongkan
	// kalau semuanya sudah terpilih
	ToggleSelectAll(ctx context.Context, sessionID string) ([]int64, error)

	// ClearSelection mengosongkan selection set
	ClearSelection(ctx context.Context, sessionID string) error

	// BulkSetStatus mengganti status semua produk terpilih lalu
	// mengosongkan selection; no-op kalau tidak ada yang terpilih
	BulkSetStatus(ctx context.Context, sessionID string, status entity.Status) (int, error)

	// BulkDelete menghapus semua produk terpilih lalu mengosongkan selection
	BulkDelete(ctx context.Context, sessionID string) (int, error)

	// DeleteOne menghapus satu produk, id-nya ikut keluar dari selection
	DeleteOne(ctx context.Context, sessionID string, id int64) error

	// Stats ringkasan katalog untuk kartu dashboard
	Stats(ctx context.Context) (entity.CatalogStats, error)
}

type adminUseCase struct {
	password    string
	adminRepo   repository.AdminRepository
	catalogRepo repository.CatalogRepository
	csvParser   repository.CatalogParser
	excelParser repository.CatalogParser
}

// NewAdminUseCase membuat AdminUseCase baru
func NewAdminUseCase(
	password string,
	adminRepo repository.AdminRepository,
	catalogRepo repository.CatalogRepository,
	csvParser repository.CatalogParser,
	excelParser repository.CatalogParser,
) AdminUseCase {
	return &adminUseCase{
		password:    password,
		adminRepo:   adminRepo,
		catalogRepo: catalogRepo,
		csvParser:   csvParser,
		excelParser: excelParser,
	}
}

// Login membuat sesi admin baru kalau password cocok
// Perbandingan plaintext, bukan batas keamanan sungguhan
func (u *adminUseCase) Login(ctx context.Context, password string) (string, error) {
	if password != u.password {
		return "", ErrWrongPassword
	}

	session := entity.AdminSession{
		SessionID:    uuid.New().String(),
		IsAdmin:      true,
		LoginTime:    time.Now(),
		LastActivity: time.Now(),
	}

	if err := u.adminRepo.CreateSession(ctx, session); err != nil {
		return "", fmt.Errorf("gagal membuat sesi: %w", err)
	}

	u.logAction(ctx, session.SessionID, "login", "Admin berhasil login")
	return session.SessionID, nil
}

// Logout menghapus sesi
func (u *adminUseCase) Logout(ctx context.Context, sessionID string) error {
	return u.adminRepo.DeleteSession(ctx, sessionID)
}

// IsAdmin memeriksa apakah sesi masih valid
func (u *adminUseCase) IsAdmin(ctx context.Context, sessionID string) (bool, error) {
	return u.adminRepo.IsAdmin(ctx, sessionID)
}

// ImportCatalog menambahkan hasil parse file ke katalog
// Satu update in-memory diikuti satu kali persist
func (u *adminUseCase) ImportCatalog(ctx context.Context, sessionID string, data []byte, filename string) (int, error) {
	isAdmin, err := u.adminRepo.IsAdmin(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	if !isAdmin {
		return 0, ErrNotAdmin
	}

	fileParser := u.csvParser
	if strings.HasSuffix(strings.ToLower(filename), ".xlsx") {
		fileParser = u.excelParser
	}

	imported, err := fileParser.ParseProducts(ctx, data)
	if err != nil {
		return 0, fmt.Errorf("gagal parse file: %w", err)
	}

	// Tidak ada baris valid berarti tidak ada mutasi sama sekali
	if len(imported) == 0 {
		return 0, nil
	}

	products, err := u.catalogRepo.Load(ctx)
	if err != nil {
		return 0, err
	}

	products = append(products, imported...)
	if err := u.saveCatalog(ctx, products); err != nil {
		return 0, err
	}

	metrics.ProductsImported.Add(float64(len(imported)))
	u.logAction(ctx, sessionID, "import_catalog",
		fmt.Sprintf("Import %d produk dari %s", len(imported), filename))

	return len(imported), nil
}

// Selection selection set milik sesi
func (u *adminUseCase) Selection(ctx context.Context, sessionID string) ([]int64, error) {
	session, err := u.adminRepo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return session.SelectedIDs, nil
}

// ToggleSelect menambah/menghapus satu id dari selection set
func (u *adminUseCase) ToggleSelect(ctx context.Context, sessionID string, id int64) ([]int64, error) {
	session, err := u.adminRepo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	selected := session.SelectedIDs
	found := false
	next := make([]int64, 0, len(selected)+1)
	for _, sid := range selected {
		if sid == id {
			found = true
			continue
		}
		next = append(next, sid)
	}
	if !found {
		next = append(next, id)
	}

	if err := u.adminRepo.UpdateSelection(ctx, sessionID, next); err != nil {
		return nil, err
	}
	return next, nil
}

// ToggleSelectAll memilih seluruh katalog (bukan hanya yang terfilter),
// atau mengosongkan kalau semuanya sudah terpilih
func (u *adminUseCase) ToggleSelectAll(ctx context.Context, sessionID string) ([]int64, error) {
	session, err := u.adminRepo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	products, err := u.catalogRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	var next []int64
	if len(session.SelectedIDs) != len(products) {
		next = make([]int64, 0, len(products))
		for _, p := range products {
			next = append(next, p.ID)
		}
	}

	if err := u.adminRepo.UpdateSelection(ctx, sessionID, next); err != nil {
		return nil, err
	}
	return next, nil
}

// ClearSelection mengosongkan selection set
func (u *adminUseCase) ClearSelection(ctx context.Context, sessionID string) error {
	return u.adminRepo.UpdateSelection(ctx, sessionID, nil)
}

// BulkSetStatus mengganti status semua produk terpilih
func (u *adminUseCase) BulkSetStatus(ctx context.Context, sessionID string, status entity.Status) (int, error) {
	if status != entity.StatusOn && status != entity.StatusOff {
		return 0, ErrInvalidStatus
	}

	session, err := u.adminRepo.GetSession(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	if len(session.SelectedIDs) == 0 {
		return 0, nil
	}

	selected := toIDSet(session.SelectedIDs)
	products, err := u.catalogRepo.Load(ctx)
	if err != nil {
		return 0, err
	}

	changed := 0
	for i := range products {
		if _, ok := selected[products[i].ID]; ok {
			products[i].Status = status
			changed++
		}
	}

	if err := u.saveCatalog(ctx, products); err != nil {
		return 0, err
	}
	if err := u.adminRepo.UpdateSelection(ctx, sessionID, nil); err != nil {
		return 0, err
	}

	u.logAction(ctx, sessionID, "bulk_status",
		fmt.Sprintf("Status %d produk diubah ke %s", changed, status))
	return changed, nil
}

// BulkDelete menghapus semua produk terpilih
func (u *adminUseCase) BulkDelete(ctx context.Context, sessionID string) (int, error) {
	session, err := u.adminRepo.GetSession(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	if len(session.SelectedIDs) == 0 {
		return 0, nil
	}

	selected := toIDSet(session.SelectedIDs)
	products, err := u.catalogRepo.Load(ctx)
	if err != nil {
		return 0, err
	}

	remaining := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if _, ok := selected[p.ID]; ok {
			continue
		}
		remaining = append(remaining, p)
	}
	deleted := len(products) - len(remaining)

	if err := u.saveCatalog(ctx, remaining); err != nil {
		return 0, err
	}
	if err := u.adminRepo.UpdateSelection(ctx, sessionID, nil); err != nil {
		return 0, err
	}

	metrics.ProductsDeleted.Add(float64(deleted))
	u.logAction(ctx, sessionID, "bulk_delete", fmt.Sprintf("Hapus %d produk", deleted))
	return deleted, nil
}

// DeleteOne menghapus satu produk
func (u *adminUseCase) DeleteOne(ctx context.Context, sessionID string, id int64) error {
	products, err := u.catalogRepo.Load(ctx)
	if err != nil {
		return err
	}

	remaining := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if p.ID == id {
			continue
		}
		remaining = append(remaining, p)
	}
	if len(remaining) == len(products) {
		return fmt.Errorf("produk tidak ditemukan: %d", id)
	}

	if err := u.saveCatalog(ctx, remaining); err != nil {
		return err
	}

	// Buang id dari selection kalau sedang terpilih
	session, err := u.adminRepo.GetSession(ctx, sessionID)
	if err == nil {
		next := make([]int64, 0, len(session.SelectedIDs))
		for _, sid := range session.SelectedIDs {
			if sid != id {
				next = append(next, sid)
			}
		}
		_ = u.adminRepo.UpdateSelection(ctx, sessionID, next)
	}

	metrics.ProductsDeleted.Inc()
	u.logAction(ctx, sessionID, "delete", fmt.Sprintf("Hapus produk %d", id))
	return nil
}

// Stats ringkasan katalog untuk kartu dashboard
func (u *adminUseCase) Stats(ctx context.Context) (entity.CatalogStats, error) {
	products, err := u.catalogRepo.Load(ctx)
	if err != nil {
		return entity.CatalogStats{}, err
	}

	stats := entity.CatalogStats{TotalItems: len(products)}
	categories := make(map[string]struct{})
	for _, p := range products {
		if p.Status == entity.StatusOn {
			stats.LiveItems++
		}
		categories[p.Category] = struct{}{}
	}
	stats.Categories = len(categories)

	return stats, nil
}

func (u *adminUseCase) saveCatalog(ctx context.Context, products []entity.Product) error {
	if err := u.catalogRepo.Save(ctx, products); err != nil {
		return fmt.Errorf("gagal menyimpan katalog: %w", err)
	}
	metrics.CatalogSize.Set(float64(len(products)))
	return nil
}

func (u *adminUseCase) logAction(ctx context.Context, sessionID, action, details string) {
	_ = u.adminRepo.LogAction(ctx, entity.AdminAction{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Action:    action,
		Details:   details,
		Timestamp: time.Now(),
	})
}

func toIDSet(ids []int64) map[int64]struct{} {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
