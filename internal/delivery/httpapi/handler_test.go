package httpapi_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/lokal-market/internal/delivery/httpapi"
	"github.com/yourusername/lokal-market/internal/domain/entity"
	"github.com/yourusername/lokal-market/internal/infrastructure/parser"
	"github.com/yourusername/lokal-market/internal/infrastructure/storage"
	"github.com/yourusername/lokal-market/internal/usecase"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalogRepo := storage.NewMemoryCatalogRepository()
	adminRepo := storage.NewMemoryAdminRepository()

	catalogUC := usecase.NewCatalogUseCase(catalogRepo, nil)
	adminUC := usecase.NewAdminUseCase("admin123", adminRepo, catalogRepo, parser.NewCSVParser(), parser.NewExcelParser())
	assistantUC := usecase.NewAssistantUseCase(nil, catalogRepo)

	handler := httpapi.NewHandler(catalogUC, adminUC, assistantUC)
	return httpapi.InitRouter(gin.New(), handler, adminUC)
}

func login(t *testing.T, server *gin.Engine) string {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{"password":"admin123"}`))
	req.Header.Set("Content-Type", "application/json")
	server.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		SessionID string `json:"sessionId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.SessionID)
	return body.SessionID
}

func TestListProducts(t *testing.T) {
	server := newTestServer(t)

	w := httptest.NewRecorder()
	server.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Products []entity.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Products, 5)
}

func TestListProductsWithSearch(t *testing.T) {
	server := newTestServer(t)

	w := httptest.NewRecorder()
	server.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products?search=madu&category=Semua", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Products []entity.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Products, 1)
	assert.Equal(t, "Madu Hutan Asli Riau", body.Products[0].Title)
}

func TestLoginWrongPasswordRejected(t *testing.T) {
	server := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{"password":"salah"}`))
	req.Header.Set("Content-Type", "application/json")
	server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Password salah!")
}

func TestAdminRoutesRequireSession(t *testing.T) {
	server := newTestServer(t)

	w := httptest.NewRecorder()
	server.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/products", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestImportCSVEndpoint(t *testing.T) {
	server := newTestServer(t)
	sessionID := login(t, server)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "produk.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte("Judul,Gambar,Harga,Coret,Deskripsi,Status,Berat,Label\n" +
		"Dodol Garut,http://a,Rp18.000,,Dodol legit,on,300,Makanan Ringan\n"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/import", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-Session-ID", sessionID)
	server.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"imported":1}`, w.Body.String())

	// Katalog bertambah satu
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin/products", nil)
	req.Header.Set("X-Session-ID", sessionID)
	server.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Products []entity.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Products, 6)
}

func TestDownloadTemplate(t *testing.T) {
	server := newTestServer(t)
	sessionID := login(t, server)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/template", nil)
	req.Header.Set("X-Session-ID", sessionID)
	server.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "template_lokal_market.csv")
	assert.Contains(t, w.Body.String(), "Judul Produk,Link Gambar")
}

func TestBulkFlowOverHTTP(t *testing.T) {
	server := newTestServer(t)
	sessionID := login(t, server)

	// Pilih semua lalu matikan statusnya
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/selection/toggle-all", nil)
	req.Header.Set("X-Session-ID", sessionID)
	server.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/admin/products/status", strings.NewReader(`{"status":"off"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-ID", sessionID)
	server.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"updated":5}`, w.Body.String())

	// Etalase pelanggan jadi kosong
	w = httptest.NewRecorder()
	server.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"products":[]}`, w.Body.String())
}

func TestAssistantDisabled(t *testing.T) {
	server := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/assistant", strings.NewReader(`{"question":"halo"}`))
	req.Header.Set("Content-Type", "application/json")
	server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
