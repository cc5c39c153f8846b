package parser

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"github.com/yourusername/lokal-market/internal/domain/entity"
	"github.com/yourusername/lokal-market/internal/domain/repository"
)

type excelParser struct{}

// NewExcelParser parser Excel katalog
// Layout kolomnya sama dengan template CSV
func NewExcelParser() repository.CatalogParser {
	return &excelParser{}
}

// ParseProducts membaca file xlsx menjadi daftar produk
func (e *excelParser) ParseProducts(ctx context.Context, data []byte) ([]entity.Product, error) {
	reader := bytes.NewReader(data)
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("file excel tidak bisa dibuka: %w", err)
	}
	defer f.Close()

	// Ambil sheet pertama
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("file excel tidak punya sheet")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("gagal membaca baris: %w", err)
	}

	var products []entity.Product
	base := time.Now().UnixMilli()

	// Baris 0 dianggap header, sama seperti importer CSV
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		cols := make([]string, len(row))
		for j, cell := range row {
			cols[j] = strings.TrimSpace(cell)
		}

		// GetRows membuang sel kosong di ujung baris, tambal lagi
		// supaya kolom opsional yang kosong tetap terhitung
		for len(cols) < minColumns {
			cols = append(cols, "")
		}

		products = append(products, productFromColumns(cols, base, i))
	}

	log.Printf("📦 Excel: %d produk terbaca dari %d baris", len(products), len(rows))
	return products, nil
}

// isEmptyRow memeriksa apakah semua sel kosong
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
