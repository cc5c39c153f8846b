package httpapi

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/lokal-market/internal/domain/entity"
	"github.com/yourusername/lokal-market/internal/infrastructure/parser"
	"github.com/yourusername/lokal-market/internal/usecase"
)

// Handler HTTP handler etalase dan dashboard admin
type Handler struct {
	catalogUseCase   usecase.CatalogUseCase
	adminUseCase     usecase.AdminUseCase
	assistantUseCase usecase.AssistantUseCase
}

// NewHandler membuat Handler baru
func NewHandler(
	catalogUseCase usecase.CatalogUseCase,
	adminUseCase usecase.AdminUseCase,
	assistantUseCase usecase.AssistantUseCase,
) *Handler {
	return &Handler{
		catalogUseCase:   catalogUseCase,
		adminUseCase:     adminUseCase,
		assistantUseCase: assistantUseCase,
	}
}

// ListProducts etalase pelanggan dengan filter pencarian dan kategori
func (h *Handler) ListProducts(c *gin.Context) {
	search := c.Query("search")
	category := c.DefaultQuery("category", entity.CategoryAll)

	products, err := h.catalogUseCase.Filtered(c.Request.Context(), search, category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "gagal memuat katalog"})
		return
	}
	if products == nil {
		products = []entity.Product{}
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// ListCategories daftar kategori untuk tombol filter
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.catalogUseCase.Categories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "gagal memuat kategori"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// Order meneruskan permintaan pesanan satu produk ke admin
func (h *Handler) Order(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id produk tidak valid"})
		return
	}

	product, err := h.catalogUseCase.Order(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrOrderDisabled) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "pesanan diteruskan ke admin", "product": product.Title})
}

// AskRequest body pertanyaan ke asisten
type AskRequest struct {
	Question string `json:"question" binding:"required"`
}

// Ask meneruskan pertanyaan pelanggan ke asisten AI
func (h *Handler) Ask(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	answer, err := h.assistantUseCase.Ask(c.Request.Context(), req.Question)
	if err != nil {
		if errors.Is(err, usecase.ErrAssistantDisabled) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		// Kegagalan AI ditampilkan sebagai pesan, bukan error keras
		c.JSON(http.StatusOK, gin.H{"answer": "Maaf, asisten sedang tidak bisa menjawab. Coba lagi sebentar lagi."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"answer": answer})
}

// LoginRequest body login admin
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// Login memeriksa password admin dan membuat sesi
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionID, err := h.adminUseCase.Login(c.Request.Context(), req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrWrongPassword) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Password salah!"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "gagal login"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessionId": sessionID})
}

// Logout menghapus sesi admin
func (h *Handler) Logout(c *gin.Context) {
	sessionID := c.GetHeader(sessionHeader)
	if err := h.adminUseCase.Logout(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "gagal logout"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logout berhasil"})
}

// AdminProducts seluruh katalog untuk tabel admin (termasuk status off)
func (h *Handler) AdminProducts(c *gin.Context) {
	products, err := h.catalogUseCase.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "gagal memuat katalog"})
		return
	}
	if products == nil {
		products = []entity.Product{}
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// Stats kartu ringkasan dashboard
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.adminUseCase.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "gagal memuat statistik"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ImportCatalog menerima upload CSV/XLSX dan menambahkannya ke katalog
func (h *Handler) ImportCatalog(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file tidak ditemukan di form"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file tidak bisa dibuka"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file tidak bisa dibaca"})
		return
	}

	count, err := h.adminUseCase.ImportCatalog(c.Request.Context(), c.GetHeader(sessionHeader), data, fileHeader.Filename)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"imported": count})
}

// DownloadTemplate template CSV dengan satu baris contoh
func (h *Handler) DownloadTemplate(c *gin.Context) {
	c.Header("Content-Disposition", "attachment; filename="+parser.TemplateFilename)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", parser.CSVTemplate())
}

// Selection selection set milik sesi
func (h *Handler) Selection(c *gin.Context) {
	ids, err := h.adminUseCase.Selection(c.Request.Context(), c.GetHeader(sessionHeader))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "gagal memuat selection"})
		return
	}
	if ids == nil {
		ids = []int64{}
	}
	c.JSON(http.StatusOK, gin.H{"selected": ids})
}

// ToggleSelect menambah/menghapus satu id dari selection
func (h *Handler) ToggleSelect(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id produk tidak valid"})
		return
	}

	ids, err := h.adminUseCase.ToggleSelect(c.Request.Context(), c.GetHeader(sessionHeader), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "gagal mengubah selection"})
		return
	}
	if ids == nil {
		ids = []int64{}
	}
	c.JSON(http.StatusOK, gin.H{"selected": ids})
}

// ToggleSelectAll memilih seluruh katalog atau mengosongkan selection
func (h *Handler) ToggleSelectAll(c *gin.Context) {
	ids, err := h.adminUseCase.ToggleSelectAll(c.Request.Context(), c.GetHeader(sessionHeader))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "gagal mengubah selection"})
		return
	}
	if ids == nil {
		ids = []int64{}
	}
	c.JSON(http.StatusOK, gin.H{"selected": ids})
}

// ClearSelection mengosongkan selection (tombol Batal)
func (h *Handler) ClearSelection(c *gin.Context) {
	if err := h.adminUseCase.ClearSelection(c.Request.Context(), c.GetHeader(sessionHeader)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "gagal mengosongkan selection"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"selected": []int64{}})
}

// BulkStatusRequest body perubahan status massal
type BulkStatusRequest struct {
	Status entity.Status `json:"status" binding:"required"`
}

// BulkSetStatus mengganti status semua produk terpilih
func (h *Handler) BulkSetStatus(c *gin.Context) {
	var req BulkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	changed, err := h.adminUseCase.BulkSetStatus(c.Request.Context(), c.GetHeader(sessionHeader), req.Status)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "gagal mengubah status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": changed})
}

// BulkDelete menghapus semua produk terpilih
// Konfirmasi destruktif jadi tanggung jawab frontend sebelum memanggil ini
func (h *Handler) BulkDelete(c *gin.Context) {
	deleted, err := h.adminUseCase.BulkDelete(c.Request.Context(), c.GetHeader(sessionHeader))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "gagal menghapus produk"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// DeleteProduct menghapus satu produk dari tabel admin
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id produk tidak valid"})
		return
	}

	if err := h.adminUseCase.DeleteOne(c.Request.Context(), c.GetHeader(sessionHeader), id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "produk dihapus"})
}
