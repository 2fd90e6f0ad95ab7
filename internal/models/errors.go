package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound signals that a referenced event or winners record does not
// exist. Store layers translate their driver's no-rows condition into this
// sentinel so callers never depend on database/sql directly.
var ErrNotFound = errors.New("record not found")

// ValidationError reports the specific missing or invalid fields of a
// create/update/upsert request.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid or missing fields: %s", strings.Join(e.Fields, ", "))
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StoreError wraps an opaque collaborator I/O failure. It is propagated to
// the caller unchanged; no retries happen below the transport layer.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
