package dbpager

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfiguration is matched by every *ConfigurationError.
	ErrConfiguration = errors.New("pagination adapter misconfigured")
	// ErrMissingRowCountColumn is matched by every *MissingRowCountColumnError.
	ErrMissingRowCountColumn = errors.New("row count column is missing")
	// ErrInvalidPageBounds is returned when a page is requested with a negative
	// offset or a non-positive item count.
	ErrInvalidPageBounds = errors.New("invalid page bounds")
)

// ConfigurationError is returned by adapter constructors when the required
// dependencies are missing or malformed.
type ConfigurationError struct {
	// Adapter is the name of the adapter being constructed.
	Adapter string
	// Err is the underlying validation failure.
	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("cannot construct %s: %v", e.Adapter, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// MissingRowCountColumnError is returned when the first row of a count query
// result does not contain the row count column under any letter case.
type MissingRowCountColumnError struct {
	// Column is the expected row count column name.
	Column string
	// Columns lists the columns that were present in the row.
	Columns []string
}

func (e *MissingRowCountColumnError) Error() string {
	if len(e.Columns) == 0 {
		return fmt.Sprintf("row count column '%s' not found: count query returned no columns", e.Column)
	}

	return fmt.Sprintf("row count column '%s' not found among [%s]", e.Column, strings.Join(e.Columns, ", "))
}

func (e *MissingRowCountColumnError) Is(target error) bool {
	return target == ErrMissingRowCountColumn
}
