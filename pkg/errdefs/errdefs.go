// Package errdefs defines the error kinds reported by the stores.
package errdefs

import (
	"errors"
	"fmt"
)

// ValidationError reports a missing or malformed required field.
type ValidationError struct {
	Field  string
	Reason string
}

// Validation builds a ValidationError.
func Validation(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (err *ValidationError) Error() string {
	if err.Field == "" {
		return err.Reason
	}
	return fmt.Sprintf("%s: %s", err.Field, err.Reason)
}

// IndexError reports an index outside the current bounds of a collection.
type IndexError struct {
	Collection string
	Index      int
	Len        int
}

// Index builds an IndexError.
func Index(collection string, index, length int) *IndexError {
	return &IndexError{Collection: collection, Index: index, Len: length}
}

func (err *IndexError) Error() string {
	if err.Len == 0 {
		return fmt.Sprintf("no %ss available", err.Collection)
	}
	return fmt.Sprintf("%s index %d out of range [0,%d)", err.Collection, err.Index, err.Len)
}

// IsValidation reports whether err is or wraps a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsIndex reports whether err is or wraps an IndexError.
func IsIndex(err error) bool {
	var i *IndexError
	return errors.As(err, &i)
}

// CheckIndex returns an IndexError unless 0 <= index < length.
func CheckIndex(collection string, index, length int) error {
	if index < 0 || index >= length {
		return Index(collection, index, length)
	}
	return nil
}
