package handlers

import (
	"net/http"

	"go.uber.org/zap"
)

// GetScannedByQrIDHandler godoc
// @Summary Get a scan and its product by qrId
// @Description Returns the first scan recorded for qrId together with the matching product.
// @Tags scanned
// @Produce json
// @Param qrId path string true "Decoded QR payload"
// @Success 200 {object} models.ScannedDataWithProduct
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /api/scanned/{qrId} [get]
func GetScannedByQrIDHandler(w http.ResponseWriter, r *http.Request) {
	qrID, err := pathParam(r, "qrId")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid qrId")
		return
	}

	scan, err := scanRepo.GetByQrID(r.Context(), qrID)
	if err != nil {
		writeStoreError(w, r, err, "could not fetch scanned data")
		return
	}

	// The product is resolved from the stored record, not from the path.
	view, err := enricher.EnrichOne(r.Context(), scan)
	if err != nil {
		writeStoreError(w, r, err, "could not fetch product")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// GetScannedHandler godoc
// @Summary List all scans with their products
// @Tags scanned
// @Produce json
// @Success 200 {array} models.ScannedDataWithProduct
// @Failure 404 {object} MessageResponse "A scan references an unknown product"
// @Failure 500 {object} MessageResponse
// @Router /api/scanned [get]
func GetScannedHandler(w http.ResponseWriter, r *http.Request) {
	scans, err := scanRepo.GetAll(r.Context())
	if err != nil {
		writeStoreError(w, r, err, "could not fetch scanned data")
		return
	}

	views, err := enricher.EnrichAll(r.Context(), scans)
	if err != nil {
		writeStoreError(w, r, err, "could not fetch products")
		return
	}
	writeJSON(w, http.StatusOK, views)
}

// CreateScannedHandler godoc
// @Summary Record a scan
// @Description Stores a scan event for a known product and returns it with the product attached.
// @Tags scanned
// @Accept json
// @Produce json
// @Param scan body ScanRequest true "Scan to record"
// @Success 201 {object} models.ScannedDataWithProduct
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /api/scanned [post]
func CreateScannedHandler(w http.ResponseWriter, r *http.Request) {
	var req ScanRequest
	if err := readJSON(w, r, &req); err != nil {
		zap.L().Debug("rejected scan payload", zap.Error(err))
		writeMessage(w, http.StatusBadRequest, "invalid data format")
		return
	}

	scan, validationErrors := validateScan(&req)
	if len(validationErrors) > 0 {
		writeValidationErrors(w, validationErrors)
		return
	}

	// Resolve first so an unknown code leaves no orphan scan behind.
	view, err := enricher.EnrichOne(r.Context(), scan)
	if err != nil {
		writeStoreError(w, r, err, "could not fetch product")
		return
	}

	saved, err := scanRepo.Create(r.Context(), scan)
	if err != nil {
		writeStoreError(w, r, err, "could not save scanned data")
		return
	}
	view.ScannedData = saved

	zap.L().Info("scan recorded", zap.Int("id", saved.ID), zap.String("qrId", saved.QrID))
	writeJSON(w, http.StatusCreated, view)
}
