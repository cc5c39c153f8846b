package gemini

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/yourusername/lokal-market/internal/domain/entity"
	"github.com/yourusername/lokal-market/internal/domain/repository"
	"google.golang.org/api/option"
)

type geminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
	sem    chan struct{}
	mu     sync.Mutex
	last   time.Time
	delay  time.Duration
}

// NewGeminiClient client rekomendasi Gemini untuk Lokal Market
func NewGeminiClient(apiKey string) (repository.AIRepository, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gagal membuat client Gemini: %w", err)
	}

	model := client.GenerativeModel("gemini-2.0-flash-exp")

	// Konfigurasi model, temperatur rendah supaya jawabannya konsisten
	model.SetTemperature(0.3)
	model.SetTopK(20)
	model.SetTopP(0.9)
	model.SetMaxOutputTokens(2048)

	// System instruction sebagai asisten belanja toko
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{
			genai.Text(`Kamu adalah asisten belanja Lokal Market, toko produk lokal Indonesia. Jawab dalam bahasa Indonesia yang ramah dan singkat.

ATURAN WAJIB:
1. HANYA rekomendasikan produk dari daftar yang dikirim bersama pertanyaan. Jangan pernah mengarang produk.
2. Tulis nama produk PERSIS seperti di daftar, lengkap dengan harganya dalam format "Rp 125.000".
3. Kalau produk yang ditanya tidak ada di daftar, katakan dengan jujur "maaf, belum tersedia" lalu tawarkan alternatif terdekat dari daftar.
4. Kalau pelanggan menyebut budget, pilihkan kombinasi produk yang totalnya tidak melebihi budget.
5. Kalau pelanggan hanya menyapa, balas sapaan saja tanpa daftar produk.
6. Maksimal 3 rekomendasi per jawaban supaya mudah dibaca.`),
		},
	}

	return &geminiClient{
		client: client,
		model:  model,
		sem:    make(chan struct{}, 3), // Maksimal 3 request bersamaan
		delay:  350 * time.Millisecond, // Interval minimum antar request
	}, nil
}

// Recommend menjawab pertanyaan pelanggan berdasarkan katalog saat ini
func (g *geminiClient) Recommend(ctx context.Context, question string, products []entity.Product) (string, error) {
	release := g.acquire()
	defer release()

	prompt := fmt.Sprintf("Pelanggan: %s\n\n=== PRODUK TERSEDIA ===\n%s\nJawab pelanggan:", question, buildCatalogContext(products))

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gagal menghasilkan jawaban: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("tidak ada kandidat jawaban")
	}

	return extractText(resp), nil
}

// buildCatalogContext merangkai katalog menjadi teks per kategori
// Hanya produk yang tampil (status on) yang dikirim ke model
func buildCatalogContext(products []entity.Product) string {
	categoryMap := make(map[string][]entity.Product)
	var order []string
	for _, p := range products {
		if p.Status != entity.StatusOn {
			continue
		}
		category := p.Category
		if category == "" {
			category = entity.CategoryDefault
		}
		if _, seen := categoryMap[category]; !seen {
			order = append(order, category)
		}
		categoryMap[category] = append(categoryMap[category], p)
	}

	var sb strings.Builder
	for _, category := range order {
		sb.WriteString(fmt.Sprintf("📂 %s:\n", category))
		for i, p := range categoryMap[category] {
			sb.WriteString(fmt.Sprintf("%d. %s - Rp %s", i+1, p.Title, entity.FormatRupiah(p.Price)))
			if p.Description != "" {
				sb.WriteString(fmt.Sprintf("\n   %s", p.Description))
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// extractText menggabungkan semua bagian teks dari jawaban
func extractText(resp *genai.GenerateContentResponse) string {
	var result strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				result.WriteString(fmt.Sprintf("%v", part))
			}
		}
	}
	return result.String()
}

func (g *geminiClient) acquire() func() {
	g.sem <- struct{}{}
	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now()
	if g.last.IsZero() {
		g.last = now
	} else {
		if sleep := g.delay - now.Sub(g.last); sleep > 0 {
			time.Sleep(sleep)
			now = time.Now()
		}
		g.last = now
	}

	return func() {
		<-g.sem
	}
}
