// Package client is a typed HTTP client for the QR tracker API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rogerio-castellano/qr-tracker/internal/models"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// APIError is a non-2xx answer from the server. It matches ErrNotFound or
// ErrConflict under errors.Is when the status says so.
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
}

func (e *APIError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("api returned %d: %s", e.StatusCode, e.Message)
	}
	parts := make([]string, 0, len(e.Fields))
	for field, desc := range e.Fields {
		parts = append(parts, field+": "+desc)
	}
	return fmt.Sprintf("api returned %d: %s (%s)", e.StatusCode, e.Message, strings.Join(parts, "; "))
}

func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	}
	return nil
}

// NewProduct is the create-product payload. Price is in cents.
type NewProduct struct {
	ProductID string       `json:"productId"`
	Name      string       `json:"name"`
	Category  string       `json:"category"`
	Price     int64        `json:"price"`
	ImageURL  string       `json:"imageUrl"`
	Specs     models.Specs `json:"specs"`
}

type newScan struct {
	QrID      string     `json:"qrId"`
	ScannedAt *time.Time `json:"scannedAt,omitempty"`
}

type Sample struct {
	models.Product
	QRImageURL string `json:"qrImageUrl"`
}

type MostScanned struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	ScanCount int    `json:"scanCount"`
}

type Metrics struct {
	TotalProducts      int          `json:"totalProducts"`
	TotalScans         int          `json:"totalScans"`
	UnmatchedScans     int          `json:"unmatchedScans"`
	MostScannedProduct *MostScanned `json:"mostScannedProduct"`
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	err := c.do(ctx, http.MethodGet, "/api/products", nil, http.StatusOK, &out)
	return out, err
}

func (c *Client) GetProduct(ctx context.Context, productID string) (models.Product, error) {
	var out models.Product
	err := c.do(ctx, http.MethodGet, "/api/products/"+url.PathEscape(productID), nil, http.StatusOK, &out)
	return out, err
}

func (c *Client) CreateProduct(ctx context.Context, p NewProduct) (models.Product, error) {
	if p.Specs == nil {
		p.Specs = models.Specs{}
	}
	var out models.Product
	err := c.do(ctx, http.MethodPost, "/api/products", p, http.StatusCreated, &out)
	return out, err
}

func (c *Client) ListScans(ctx context.Context) ([]models.ScannedDataWithProduct, error) {
	var out []models.ScannedDataWithProduct
	err := c.do(ctx, http.MethodGet, "/api/scanned", nil, http.StatusOK, &out)
	return out, err
}

func (c *Client) GetScan(ctx context.Context, qrID string) (models.ScannedDataWithProduct, error) {
	var out models.ScannedDataWithProduct
	err := c.do(ctx, http.MethodGet, "/api/scanned/"+url.PathEscape(qrID), nil, http.StatusOK, &out)
	return out, err
}

// RecordScan posts a scan for qrID. A zero at lets the server stamp the time.
func (c *Client) RecordScan(ctx context.Context, qrID string, at time.Time) (models.ScannedDataWithProduct, error) {
	body := newScan{QrID: qrID}
	if !at.IsZero() {
		body.ScannedAt = &at
	}
	var out models.ScannedDataWithProduct
	err := c.do(ctx, http.MethodPost, "/api/scanned", body, http.StatusCreated, &out)
	return out, err
}

func (c *Client) Samples(ctx context.Context) ([]Sample, error) {
	var out []Sample
	err := c.do(ctx, http.MethodGet, "/api/samples", nil, http.StatusOK, &out)
	return out, err
}

func (c *Client) Metrics(ctx context.Context) (Metrics, error) {
	var out Metrics
	err := c.do(ctx, http.MethodGet, "/api/metrics", nil, http.StatusOK, &out)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, in any, want int, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		return decodeError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	var payload struct {
		Message string `json:"message"`
		Errors  []struct {
			Field       string `json:"field"`
			Description string `json:"description"`
		} `json:"errors"`
	}
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Message != "" {
		apiErr.Message = payload.Message
	}
	if len(payload.Errors) > 0 {
		apiErr.Fields = make(map[string]string, len(payload.Errors))
		for _, e := range payload.Errors {
			apiErr.Fields[e.Field] = e.Description
		}
	}
	return apiErr
}
