package metrics

import (
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StartMetricsServer menjalankan server /metrics di goroutine sendiri
func StartMetricsServer(port string) {
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())

		log.Printf("📊 Metrics server jalan di port %s", port)
		server := &http.Server{
			Addr:              ":" + port,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
		// Kegagalan metrics tidak boleh ikut mematikan etalase
		if err := server.ListenAndServe(); err != nil {
			log.Printf("⚠️ Metrics server berhenti: %v", err)
		}
	}()
}
