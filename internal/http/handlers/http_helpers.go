package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/rogerio-castellano/qr-tracker/internal/enrich"
	repo "github.com/rogerio-castellano/qr-tracker/internal/repo"
)

const maxBodyBytes = 1 << 20

// readJSON decodes exactly one JSON value from the request body.
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(data); err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("body must have only a single json value")
	}
	return nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any) {
	out, err := json.Marshal(data)
	if err != nil {
		zap.L().Error("failed to encode response", zap.Error(err))
		http.Error(w, `{"message":"internal server error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(out); err != nil {
		zap.L().Warn("failed to write response", zap.Error(err))
	}
}

// pathParam returns the decoded value of a route parameter. chi matches against
// the escaped path when the request has one, so the parameter may still carry
// percent escapes such as %2F.
func pathParam(r *http.Request, name string) (string, error) {
	v := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return v, nil
	}
	decoded, err := url.PathUnescape(v)
	if err != nil {
		return "", fmt.Errorf("invalid %s: %w", name, err)
	}
	return decoded, nil
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, MessageResponse{Message: message})
}

func writeValidationErrors(w http.ResponseWriter, errs []ValidationError) {
	writeJSON(w, http.StatusBadRequest, ValidationErrorResponse{Message: "invalid data format", Errors: errs})
}

// writeStoreError maps repository and enrichment failures onto status codes.
// Anything unrecognised is logged and reported as a 500 with fallback as message.
func writeStoreError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var missingProduct *enrich.ProductNotFoundError
	switch {
	case errors.As(err, &missingProduct), errors.Is(err, repo.ErrProductNotFound):
		writeMessage(w, http.StatusNotFound, "product not found")
	case errors.Is(err, repo.ErrScanNotFound):
		writeMessage(w, http.StatusNotFound, "data not found")
	case errors.Is(err, repo.ErrDuplicatedValueUnique):
		writeMessage(w, http.StatusConflict, "productId already exists")
	default:
		zap.L().Error(fallback,
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeMessage(w, http.StatusInternalServerError, fallback)
	}
}
