package parser_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/lokal-market/internal/domain/entity"
	"github.com/yourusername/lokal-market/internal/infrastructure/parser"
)

const csvHeader = "Judul Produk,Link Gambar,Harga,Harga Coret,Deskripsi,Status,Berat,Label\n"

func TestParseQuotedFieldsAndCurrency(t *testing.T) {
	p := parser.NewCSVParser()

	input := csvHeader + `Kopi,"http://x, y",Rp3.500,,"Desc with, comma",on,250,Minuman`
	products, err := p.ParseProducts(context.Background(), []byte(input))
	require.NoError(t, err)
	require.Len(t, products, 1)

	got := products[0]
	assert.Equal(t, "Kopi", got.Title)
	assert.Equal(t, "http://x, y", got.ImageURL, "koma di dalam kutip tidak boleh memecah kolom")
	assert.Equal(t, int64(3500), got.Price, "Rp3.500 harus menjadi 3500")
	assert.Nil(t, got.PriceOld, "harga coret kosong harus absen, bukan nol")
	assert.Equal(t, "Desc with, comma", got.Description)
	assert.Equal(t, int64(250), got.Weight)
	assert.Equal(t, "Minuman", got.Category)
	assert.Equal(t, entity.StatusOn, got.Status)
}

func TestParseStatusColumnIgnored(t *testing.T) {
	p := parser.NewCSVParser()

	// Kolom status berisi off, tapi baris import selalu masuk dengan on
	input := csvHeader + "Teh,http://img,Rp10.000,,Teh enak,off,100,Minuman"
	products, err := p.ParseProducts(context.Background(), []byte(input))
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, entity.StatusOn, products[0].Status)
}

func TestParseShortRowDropped(t *testing.T) {
	p := parser.NewCSVParser()

	// Hanya 7 kolom, harus dilewati tanpa error
	input := csvHeader + "Teh,http://img,Rp10.000,,Teh enak,on,100"
	products, err := p.ParseProducts(context.Background(), []byte(input))
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestParseHeaderAlwaysDropped(t *testing.T) {
	p := parser.NewCSVParser()

	// Baris pertama valid pun tetap dibuang sebagai header
	input := "Kopi,http://img,Rp5.000,,Enak,on,100,Minuman\n" +
		"Teh,http://img,Rp10.000,,Segar,on,100,Minuman"
	products, err := p.ParseProducts(context.Background(), []byte(input))
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Teh", products[0].Title)
}

func TestParseEmptyCategoryFallback(t *testing.T) {
	p := parser.NewCSVParser()

	input := csvHeader + "Teh,http://img,Rp10.000,,Segar,on,100,"
	products, err := p.ParseProducts(context.Background(), []byte(input))
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, entity.CategoryDefault, products[0].Category)
}

func TestParsePriceOldCoerced(t *testing.T) {
	p := parser.NewCSVParser()

	input := csvHeader + "Teh,http://img,Rp10.000,Rp15.000,Segar,on,100,Minuman"
	products, err := p.ParseProducts(context.Background(), []byte(input))
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.NotNil(t, products[0].PriceOld)
	assert.Equal(t, int64(15000), *products[0].PriceOld)
}

func TestParseCRLFAndBlankLines(t *testing.T) {
	p := parser.NewCSVParser()

	input := "h1,h2,h3,h4,h5,h6,h7,h8\r\n" +
		"\r\n" +
		"Kopi,http://img,Rp5.000,,Enak,on,100,Minuman\r\n" +
		"\r\n"
	products, err := p.ParseProducts(context.Background(), []byte(input))
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Kopi", products[0].Title)
}

func TestParseUnreadableInputYieldsZero(t *testing.T) {
	p := parser.NewCSVParser()

	products, err := p.ParseProducts(context.Background(), []byte{0x00, 0x01, 0x02})
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestParseCountMatchesValidRows(t *testing.T) {
	p := parser.NewCSVParser()

	input := csvHeader +
		"A,http://a,Rp1.000,,Desc A,on,100,Minuman\n" +
		"pendek,baris\n" +
		"B,http://b,Rp2.000,,Desc B,on,200,Bumbu\n"
	products, err := p.ParseProducts(context.Background(), []byte(input))
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "A", products[0].Title)
	assert.Equal(t, "B", products[1].Title)
}

func TestTemplateParsesBack(t *testing.T) {
	p := parser.NewCSVParser()

	// Template yang diunduh admin harus bisa diimport lagi apa adanya
	products, err := p.ParseProducts(context.Background(), parser.CSVTemplate())
	require.NoError(t, err)
	require.Len(t, products, 1)

	got := products[0]
	assert.Equal(t, "Mastering Ebook", got.Title)
	assert.Equal(t, int64(3500), got.Price)
	require.NotNil(t, got.PriceOld)
	assert.Equal(t, int64(15000), *got.PriceOld)
	assert.Equal(t, "Contoh deskripsi produk.", got.Description)
	assert.Equal(t, "EBOOK", got.Category)
}
