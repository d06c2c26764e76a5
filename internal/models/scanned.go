package models

import "time"

// ScannedData is a single scan event. QrID is expected, but not required, to match
// some product's ProductID.
type ScannedData struct {
	ID        int       `json:"id"`
	QrID      string    `json:"qrId"`
	ScannedAt time.Time `json:"scannedAt"`
}

// ScannedDataWithProduct pairs a scan event with the product its QrID resolves to.
// It is computed per request and never stored.
type ScannedDataWithProduct struct {
	ScannedData
	Product Product `json:"product"`
}
