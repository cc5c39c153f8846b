package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ProductsImported total produk yang masuk lewat import katalog
	ProductsImported = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_products_imported_total",
		Help: "Total produk yang berhasil diimport ke katalog",
	})

	// ProductsDeleted total produk yang dihapus admin
	ProductsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_products_deleted_total",
		Help: "Total produk yang dihapus dari katalog",
	})

	// CatalogSize jumlah produk tersimpan setelah persist terakhir
	CatalogSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_size",
		Help: "Jumlah produk di katalog tersimpan",
	})
)
