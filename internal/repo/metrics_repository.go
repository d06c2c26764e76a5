package repo

import "context"

type MostScannedProduct struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	ScanCount int    `json:"scanCount"`
}

// Metrics summarizes the catalog and scan history for the dashboard.
// UnmatchedScans counts events whose qrId has no product.
type Metrics struct {
	TotalProducts      int                 `json:"totalProducts"`
	TotalScans         int                 `json:"totalScans"`
	UnmatchedScans     int                 `json:"unmatchedScans"`
	MostScannedProduct *MostScannedProduct `json:"mostScannedProduct"`
}

type MetricsRepository interface {
	GetDashboardMetrics(ctx context.Context) (Metrics, error)
}
