package handlers

import (
	"github.com/rogerio-castellano/qr-tracker/internal/enrich"
	"github.com/rogerio-castellano/qr-tracker/internal/qrcode"
	repo "github.com/rogerio-castellano/qr-tracker/internal/repo"
)

var (
	productRepo repo.ProductRepository
	scanRepo    repo.ScanRepository
	metricsRepo repo.MetricsRepository
	enricher    *enrich.Service

	qrServiceURL = qrcode.DefaultServiceURL
)

// SetProductRepo also rebuilds the enricher with the default batch size so that
// both always read from the same catalog. Call SetEnricher afterwards to tune it.
func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
	enricher = enrich.NewService(r, enrich.DefaultBatchSize)
}

func SetScanRepo(r repo.ScanRepository) {
	scanRepo = r
}

func SetEnricher(e *enrich.Service) {
	enricher = e
}

func SetQRServiceURL(u string) {
	if u == "" {
		u = qrcode.DefaultServiceURL
	}
	qrServiceURL = u
}

func SetMetricsRepo(r repo.MetricsRepository) {
	metricsRepo = r
}

// currentMetricsRepo falls back to reading the product and scan stores in full
// when no dedicated metrics repository was configured.
func currentMetricsRepo() repo.MetricsRepository {
	if metricsRepo != nil {
		return metricsRepo
	}
	m := repo.NewInMemoryMetricsRepository()
	m.SetRepositories(productRepo, scanRepo)
	return m
}
