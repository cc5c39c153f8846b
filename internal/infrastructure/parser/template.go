package parser

// TemplateFilename nama file template yang diunduh admin
const TemplateFilename = "template_lokal_market.csv"

const csvTemplate = "Judul Produk,Link Gambar,Harga,Harga Coret,Deskripsi,Status,Berat,Label\n" +
	"Mastering Ebook,https://via.placeholder.com/500x500.png,Rp3.500,Rp15.000,\"Contoh deskripsi produk.\",on,500,EBOOK\n"

// CSVTemplate template import dengan satu baris contoh
// Format harga sengaja pakai prefix Rp untuk menunjukkan koersi angka
func CSVTemplate() []byte {
	return []byte(csvTemplate)
}
