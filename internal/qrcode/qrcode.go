// Package qrcode builds image URLs on an external QR rendering service.
package qrcode

import (
	"errors"
	"fmt"
	"net/url"
)

const (
	DefaultServiceURL = "https://api.qrserver.com/v1/create-qr-code/"
	DefaultSize       = 200
	MaxSize           = 1000
)

var ErrInvalidSize = fmt.Errorf("size must be between 1 and %d", MaxSize)

// URL returns the address of a size x size PNG encoding payload.
func URL(serviceURL, payload string, size int) (string, error) {
	if size < 1 || size > MaxSize {
		return "", ErrInvalidSize
	}
	if payload == "" {
		return "", errors.New("payload is empty")
	}
	if serviceURL == "" {
		serviceURL = DefaultServiceURL
	}

	u, err := url.Parse(serviceURL)
	if err != nil {
		return "", fmt.Errorf("invalid QR service URL: %w", err)
	}

	q := u.Query()
	q.Set("size", fmt.Sprintf("%dx%d", size, size))
	q.Set("data", payload)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
