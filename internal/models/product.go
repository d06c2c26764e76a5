package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// Product represents a catalog entry. ProductID is the business key a QR code encodes.
type Product struct {
	ID        int    `json:"id"`
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Price     int64  `json:"price"` // cents
	ImageURL  string `json:"imageUrl"`
	Specs     Specs  `json:"specs"`
}

// Specs holds free-form product attributes.
type Specs map[string]any

// Value implements driver.Valuer so Specs can be written to a JSONB column.
func (s Specs) Value() (driver.Value, error) {
	if s == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner for JSONB columns.
func (s *Specs) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*s = Specs{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	case map[string]any:
		*s = Specs(v)
		return nil
	default:
		return fmt.Errorf("unsupported specs column type %T", src)
	}

	out := Specs{}
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("failed to decode specs: %w", err)
	}
	*s = out
	return nil
}

var errSpecsNotObject = errors.New("specs must be a JSON object")

// ParseSpecs accepts either a JSON object or a JSON string whose content is a JSON
// object, which is what a textarea-backed form posts.
func ParseSpecs(raw json.RawMessage) (Specs, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, errSpecsNotObject
	}

	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		raw = json.RawMessage(encoded)
	}

	var specs Specs
	if err := json.Unmarshal(raw, &specs); err != nil {
		return nil, fmt.Errorf("%w: %v", errSpecsNotObject, err)
	}
	if specs == nil {
		return nil, errSpecsNotObject
	}
	return specs, nil
}
