package wire

import (
	"errors"
	"fmt"
	"strings"
)

// Decode error taxonomy. Every decode failure is fatal to the current
// DecodeStruct/SkipStruct call; callers decide whether to abort or resync.
var (
	// ErrMalformedVarint - continuation bit still set past the maximum byte
	// count for a 64-bit varint.
	ErrMalformedVarint = errors.New("malformed varint")
	// ErrUnexpectedEOF - a header, length prefix, or value read ran past the
	// end of the input.
	ErrUnexpectedEOF = errors.New("unexpected end of stream")
	// ErrUnknownWireType - a tag nibble is not one of the 13 defined values.
	ErrUnknownWireType = errors.New("unknown wire type")
)

// FieldError represents an encoding/decoding error with a field path.
type FieldError struct {
	FieldPath []string // e.g., ["order", "items", "price"]
	Err       error    // underlying error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	if len(e.FieldPath) == 0 {
		return e.Err.Error()
	}

	return fmt.Sprintf("error at path %s: %v", strings.Join(e.FieldPath, "."), e.Err)
}

// Unwrap returns the underlying error.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for compatibility.
func (e *FieldError) Is(target error) bool {
	_, ok := target.(*FieldError)
	return ok
}

// wrapWithField wraps an error with a field name
func wrapWithField(err error, fieldName string) error {
	if err == nil {
		return nil
	}

	if fe, ok := err.(*FieldError); ok {
		return &FieldError{
			FieldPath: append([]string{fieldName}, fe.FieldPath...),
			Err:       fe.Err,
		}
	}

	return &FieldError{
		FieldPath: []string{fieldName},
		Err:       err,
	}
}
