package fantrax

import (
	"errors"
	"fmt"
)

// MalformedPayloadError reports a required field that is missing or has the
// wrong shape. Fragment holds the wire value being mapped when it failed.
type MalformedPayloadError struct {
	Entity   string
	Field    string
	Fragment any
	Err      error
}

func (e *MalformedPayloadError) Error() string {
	msg := fmt.Sprintf("malformed %s payload: %s", e.Entity, e.Field)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedPayloadError) Unwrap() error {
	return e.Err
}

// AsMalformedPayloadError attempts to unwrap an error into a MalformedPayloadError.
func AsMalformedPayloadError(err error) (*MalformedPayloadError, bool) {
	var mp *MalformedPayloadError
	if errors.As(err, &mp) {
		return mp, true
	}
	return nil, false
}

func malformed(entity, field string, fragment any, err error) error {
	return &MalformedPayloadError{Entity: entity, Field: field, Fragment: fragment, Err: err}
}

// required dereferences v or reports field as missing.
func required[T any](entity, field string, fragment any, v *T) (T, error) {
	if v == nil {
		var zero T
		return zero, malformed(entity, field, fragment, nil)
	}
	return *v, nil
}
