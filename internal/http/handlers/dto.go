package handlers

import (
	"encoding/json"

	"github.com/rogerio-castellano/qr-tracker/internal/models"
)

// ProductRequest is the create-product payload. Price is in cents and must fit the
// INTEGER price column; Specs is a JSON object or a string holding one.
type ProductRequest struct {
	ProductID string          `json:"productId" validate:"required"`
	Name      string          `json:"name" validate:"required"`
	Category  string          `json:"category" validate:"required"`
	Price     *int64          `json:"price" validate:"required,min=0,max=2147483647" swaggertype:"integer"`
	ImageURL  string          `json:"imageUrl" validate:"required"`
	Specs     json.RawMessage `json:"specs" validate:"required" swaggertype:"object"`
}

// ScanRequest is the create-scan payload. ScannedAt may be a timestamp string in any
// common layout or a Unix time in milliseconds; when absent the server time is used.
type ScanRequest struct {
	QrID      string          `json:"qrId" validate:"required"`
	ScannedAt json.RawMessage `json:"scannedAt,omitempty" swaggertype:"string"`
}

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

type ValidationErrorResponse struct {
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// SampleResponse is a demo product together with the image URL of its QR code.
type SampleResponse struct {
	models.Product
	QRImageURL string `json:"qrImageUrl"`
}
