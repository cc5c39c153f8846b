package entity

import "time"

// AdminSession sesi admin yang sedang login
// SelectedIDs adalah selection set tabel admin, hanya hidup selama sesi
type AdminSession struct {
	SessionID    string
	IsAdmin      bool
	LoginTime    time.Time
	LastActivity time.Time
	SelectedIDs  []int64
}

// AdminAction catatan aksi admin
type AdminAction struct {
	ID        string
	SessionID string
	Action    string // "login", "import_catalog", "bulk_status", "bulk_delete", "delete"
	Details   string
	Timestamp time.Time
}
