package gilded

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/multierr"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrInvalidConfig indicates a contradictory or incomplete schema
	// configuration. Always raised at construction, never deferred.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnsupportedType indicates an attribute kind with no codec mapping.
	ErrUnsupportedType = errors.New("unsupported attribute type")

	// ErrNestingTooDeep indicates the relation map exceeded the depth limit,
	// usually because it contains a cycle.
	ErrNestingTooDeep = errors.New("nested relations too deep")

	// ErrValidation indicates a Load pass failed; the concrete error is a
	// ValidationError aggregating every field-level failure.
	ErrValidation = errors.New("validation failed")

	// ErrMissingField indicates a required (non-nullable) key was absent
	// or nil during Load.
	ErrMissingField = errors.New("missing required field")

	// ErrTypeMismatch indicates a value did not match its codec's type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrUnknownEnum indicates an enumeration name or value with no mapping.
	ErrUnknownEnum = errors.New("unknown enumeration name")

	// ErrDecode indicates a field-level decode failure during Load.
	ErrDecode = errors.New("decode failed")

	// ErrMarshal indicates the wire format failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")

	// ErrUnmarshal indicates the wire format failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")
)

// ConfigError represents a schema configuration error.
// It wraps a sentinel error with context about the model and attribute.
type ConfigError struct {
	Err    error  // Underlying sentinel error (ErrInvalidConfig, etc.)
	Model  string // Model name, if known
	Attr   string // Attribute that triggered the error, if any
	Detail string // Free-form detail
}

func (e *ConfigError) Error() string {
	msg := e.Err.Error()
	switch {
	case e.Model != "" && e.Attr != "":
		msg = fmt.Sprintf("%s: attribute %q of %s", msg, e.Attr, e.Model)
	case e.Model != "":
		msg = fmt.Sprintf("%s: model %s", msg, e.Model)
	case e.Attr != "":
		msg = fmt.Sprintf("%s: attribute %q", msg, e.Attr)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// FieldError represents a failure on a single field during Load.
// It wraps a sentinel error with the external field key and the cause.
type FieldError struct {
	Err   error  // Underlying sentinel error (ErrMissingField, ErrDecode)
	Field string // External field key
	Cause error  // Original error from the codec or nested schema
}

func (e *FieldError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: field %s: %v", e.Err.Error(), e.Field, e.Cause)
	}
	return fmt.Sprintf("%s: field %s", e.Err.Error(), e.Field)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// ValidationError aggregates every field-level failure found in one Load
// pass. Fields is keyed by external field key; values are typically
// *FieldError, with nested ValidationError instances as their causes.
type ValidationError struct {
	Model  string
	Fields map[string]error
}

func (e *ValidationError) Error() string {
	names := e.fieldNames()
	if e.Model != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Model, strings.Join(names, ", "))
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

// Unwrap combines ErrValidation with every field failure so errors.Is
// reaches both the aggregate sentinel and the field-level sentinels.
func (e *ValidationError) Unwrap() error {
	errs := make([]error, 0, len(e.Fields)+1)
	errs = append(errs, ErrValidation)
	for _, name := range e.fieldNames() {
		errs = append(errs, e.Fields[name])
	}
	return multierr.Combine(errs...)
}

func (e *ValidationError) fieldNames() []string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FormatError represents a wire marshal/unmarshal error.
type FormatError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the format
}

func (e *FormatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// newConfigError creates a ConfigError for construction failures.
func newConfigError(sentinel error, model, attr, detail string) error {
	return &ConfigError{
		Err:    sentinel,
		Model:  model,
		Attr:   attr,
		Detail: detail,
	}
}

// newFieldError creates a FieldError for Load field failures.
func newFieldError(sentinel error, field string, cause error) error {
	return &FieldError{
		Err:   sentinel,
		Field: field,
		Cause: cause,
	}
}

// newFormatError creates a FormatError for marshal/unmarshal failures.
func newFormatError(sentinel error, cause error) error {
	return &FormatError{
		Err:   sentinel,
		Cause: cause,
	}
}
