package repo

import (
	"errors"
	"fmt"
)

// ErrNotFound is the root of every lookup miss returned by this package.
var ErrNotFound = errors.New("not found")

var (
	// ErrProductNotFound is returned when no product carries the requested productId.
	ErrProductNotFound = fmt.Errorf("product %w", ErrNotFound)
	// ErrScanNotFound is returned when no scan event matches the requested key.
	ErrScanNotFound = fmt.Errorf("scanned data %w", ErrNotFound)
)

// ErrDuplicatedValueUnique is returned when a write collides with a unique key.
var ErrDuplicatedValueUnique = errors.New("duplicated value for unique field")
