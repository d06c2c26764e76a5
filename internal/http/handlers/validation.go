package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/go-playground/validator/v10"

	"github.com/rogerio-castellano/qr-tracker/internal/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct checks req against its validate tags and reports one entry per failing field.
func validateStruct(req any) []ValidationError {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []ValidationError{{Field: "body", Description: err.Error()}}
	}

	errs := make([]ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, ValidationError{Field: fe.Field(), Description: describe(fe)})
	}
	return errs
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// validateProduct normalizes req in place and returns the product it describes,
// or the list of problems found.
func validateProduct(req *ProductRequest) (models.Product, []ValidationError) {
	req.ProductID = strings.TrimSpace(req.ProductID)
	req.Name = strings.TrimSpace(req.Name)
	req.Category = strings.TrimSpace(req.Category)
	req.ImageURL = strings.TrimSpace(req.ImageURL)

	errs := validateStruct(req)

	var specs models.Specs
	if len(req.Specs) > 0 {
		var err error
		specs, err = models.ParseSpecs(req.Specs)
		if err != nil {
			errs = append(errs, ValidationError{Field: "specs", Description: "specs must be a JSON object"})
		}
	}
	if len(errs) > 0 {
		return models.Product{}, errs
	}

	return models.Product{
		ProductID: req.ProductID,
		Name:      req.Name,
		Category:  req.Category,
		Price:     *req.Price,
		ImageURL:  req.ImageURL,
		Specs:     specs,
	}, nil
}

func validateScan(req *ScanRequest) (models.ScannedData, []ValidationError) {
	req.QrID = strings.TrimSpace(req.QrID)
	errs := validateStruct(req)

	scannedAt, err := parseScannedAt(req.ScannedAt)
	if err != nil {
		errs = append(errs, ValidationError{Field: "scannedAt", Description: "scannedAt must be a timestamp"})
	}
	if len(errs) > 0 {
		return models.ScannedData{}, errs
	}
	return models.ScannedData{QrID: req.QrID, ScannedAt: scannedAt}, nil
}

// parseScannedAt returns the zero time when raw is absent or null.
func parseScannedAt(raw json.RawMessage) (time.Time, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return time.Time{}, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if strings.TrimSpace(s) == "" {
			return time.Time{}, nil
		}
		t, err := dateparse.ParseIn(strings.TrimSpace(s), time.UTC)
		if err != nil {
			return time.Time{}, err
		}
		return t.UTC(), nil
	}

	var ms int64
	if err := json.Unmarshal(raw, &ms); err != nil {
		return time.Time{}, fmt.Errorf("unsupported scannedAt value %s", raw)
	}
	return time.UnixMilli(ms).UTC(), nil
}
