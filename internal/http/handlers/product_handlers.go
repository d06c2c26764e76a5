package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/qr-tracker/internal/qrcode"
)

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Adds a product to the catalog. Price is in cents.
// @Tags products
// @Accept json
// @Produce json
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} models.Product
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /api/products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		zap.L().Debug("rejected product payload", zap.Error(err))
		writeMessage(w, http.StatusBadRequest, "invalid data format")
		return
	}

	product, validationErrors := validateProduct(&req)
	if len(validationErrors) > 0 {
		writeValidationErrors(w, validationErrors)
		return
	}

	created, err := productRepo.Create(r.Context(), product)
	if err != nil {
		writeStoreError(w, r, err, "could not create product")
		return
	}

	zap.L().Info("product created", zap.Int("id", created.ID), zap.String("productId", created.ProductID))
	writeJSON(w, http.StatusCreated, created)
}

// GetProductsHandler godoc
// @Summary List all products
// @Tags products
// @Produce json
// @Success 200 {array} models.Product
// @Failure 500 {object} MessageResponse
// @Router /api/products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productRepo.GetAll(r.Context())
	if err != nil {
		writeStoreError(w, r, err, "could not fetch products")
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// GetProductHandler godoc
// @Summary Get a product by its productId
// @Tags products
// @Produce json
// @Param productId path string true "Product business key"
// @Success 200 {object} models.Product
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /api/products/{productId} [get]
func GetProductHandler(w http.ResponseWriter, r *http.Request) {
	productID, err := pathParam(r, "productId")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid productId")
		return
	}

	product, err := productRepo.GetByProductID(r.Context(), productID)
	if err != nil {
		writeStoreError(w, r, err, "could not fetch product")
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// GetProductQRHandler godoc
// @Summary Redirect to a QR image encoding the productId
// @Tags products
// @Param productId path string true "Product business key"
// @Param size query int false "Image edge in pixels (default 200)"
// @Success 302 "Redirect to the rendering service"
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Router /api/products/{productId}/qr [get]
func GetProductQRHandler(w http.ResponseWriter, r *http.Request) {
	size := qrcode.DefaultSize
	if s := r.URL.Query().Get("size"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid size")
			return
		}
		size = n
	}

	productID, err := pathParam(r, "productId")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid productId")
		return
	}

	product, err := productRepo.GetByProductID(r.Context(), productID)
	if err != nil {
		writeStoreError(w, r, err, "could not fetch product")
		return
	}

	target, err := qrcode.URL(qrServiceURL, product.ProductID, size)
	if errors.Is(err, qrcode.ErrInvalidSize) {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		writeStoreError(w, r, err, "could not build QR image URL")
		return
	}
	http.Redirect(w, r, target, http.StatusFound)
}
