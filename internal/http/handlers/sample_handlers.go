package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/qr-tracker/internal/qrcode"
	"github.com/rogerio-castellano/qr-tracker/internal/samples"
)

// GetSamplesHandler godoc
// @Summary List the demo products with printable QR codes
// @Description Static catalog used by the sample gallery. It does not read the store.
// @Tags samples
// @Produce json
// @Success 200 {array} SampleResponse
// @Failure 500 {object} MessageResponse
// @Router /api/samples [get]
func GetSamplesHandler(w http.ResponseWriter, r *http.Request) {
	products := samples.Products()
	out := make([]SampleResponse, 0, len(products))
	for _, p := range products {
		u, err := qrcode.URL(qrServiceURL, p.ProductID, qrcode.DefaultSize)
		if err != nil {
			writeStoreError(w, r, err, "could not build QR image URL")
			return
		}
		out = append(out, SampleResponse{Product: p, QRImageURL: u})
	}
	writeJSON(w, http.StatusOK, out)
}

// HealthHandler godoc
// @Summary Liveness probe
// @Tags health
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
