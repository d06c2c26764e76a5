package handlers

import (
	"net/http"
)

// DashboardMetricsHandler godoc
// @Summary Catalog and scan totals
// @Description Counts products and scans, the scans with no matching product, and the most scanned product.
// @Tags metrics
// @Produce json
// @Success 200 {object} repo.Metrics
// @Failure 500 {object} MessageResponse
// @Router /api/metrics [get]
func DashboardMetricsHandler(w http.ResponseWriter, r *http.Request) {
	m, err := currentMetricsRepo().GetDashboardMetrics(r.Context())
	if err != nil {
		writeStoreError(w, r, err, "could not compute metrics")
		return
	}
	writeJSON(w, http.StatusOK, m)
}
