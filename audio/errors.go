// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrDecode marks malformed encoded input, such as bad base64.
	ErrDecode = errors.New("malformed audio payload")

	// ErrInvalidParameter marks PCM parameters or lengths outside the valid range.
	ErrInvalidParameter = errors.New("invalid PCM parameter")

	// ErrEncodingOverflow marks a payload too large for the 32-bit RIFF size fields.
	// Errors matching it also match ErrInvalidParameter.
	ErrEncodingOverflow = errors.New("payload overflows 32-bit size field")
)

// DecodeError reports where a payload could not be decoded.
type DecodeError struct {
	// Offset of the first offending input byte
	Offset int64
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error at offset %d: %v", e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() []error {
	return []error{ErrDecode, e.Err}
}

// ParamError reports a single out-of-range PCM parameter.
type ParamError struct {
	Field  string
	Value  int64
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid %s %d: %s", e.Field, e.Value, e.Reason)
}

func (e *ParamError) Unwrap() error {
	return ErrInvalidParameter
}

// OverflowError reports a data length that cannot be stored in a RIFF size field.
type OverflowError struct {
	DataLength int64
	Limit      int64
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("data length %d exceeds maximum %d", e.DataLength, e.Limit)
}

func (e *OverflowError) Unwrap() []error {
	return []error{ErrEncodingOverflow, ErrInvalidParameter}
}
