package gilded

import (
	"errors"
	"testing"
)

func TestConfigError_Is(t *testing.T) {
	err := newConfigError(ErrInvalidConfig, "Alchemist", "school_id", "duplicate attribute")

	if !errors.Is(err, ErrInvalidConfig) {
		t.Error("ConfigError should unwrap to ErrInvalidConfig")
	}

	if errors.Is(err, ErrUnsupportedType) {
		t.Error("ConfigError should not match ErrUnsupportedType")
	}
}

func TestConfigError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "full context",
			err:  newConfigError(ErrInvalidConfig, "Alchemist", "school_id", "duplicate attribute"),
			want: `invalid configuration: attribute "school_id" of Alchemist: duplicate attribute`,
		},
		{
			name: "model only",
			err:  &ConfigError{Err: ErrInvalidConfig, Model: "Alchemist"},
			want: "invalid configuration: model Alchemist",
		},
		{
			name: "attribute only",
			err:  &ConfigError{Err: ErrUnsupportedType, Attr: "essence"},
			want: `unsupported attribute type: attribute "essence"`,
		},
		{
			name: "bare",
			err:  &ConfigError{Err: ErrInvalidConfig},
			want: "invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFieldError_Is(t *testing.T) {
	err := newFieldError(ErrMissingField, "title", nil)

	if !errors.Is(err, ErrMissingField) {
		t.Error("FieldError should unwrap to ErrMissingField")
	}

	if errors.Is(err, ErrDecode) {
		t.Error("FieldError should not match ErrDecode")
	}
}

func TestFieldError_Message(t *testing.T) {
	cause := errors.New("expected string, got int")
	err := newFieldError(ErrDecode, "title", cause)

	want := "decode failed: field title: expected string, got int"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	bare := newFieldError(ErrMissingField, "title", nil)
	want = "missing required field: field title"
	if got := bare.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestValidationError_Is(t *testing.T) {
	err := &ValidationError{
		Model: "Formula",
		Fields: map[string]error{
			"title": newFieldError(ErrMissingField, "title", nil),
			"id":    newFieldError(ErrDecode, "id", errors.New("bad value")),
		},
	}

	if !errors.Is(err, ErrValidation) {
		t.Error("ValidationError should match ErrValidation")
	}
	if !errors.Is(err, ErrMissingField) {
		t.Error("ValidationError should reach ErrMissingField")
	}
	if !errors.Is(err, ErrDecode) {
		t.Error("ValidationError should reach ErrDecode")
	}
	if errors.Is(err, ErrUnknownEnum) {
		t.Error("ValidationError should not match ErrUnknownEnum")
	}
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{
		Model: "Formula",
		Fields: map[string]error{
			"title": newFieldError(ErrMissingField, "title", nil),
			"id":    newFieldError(ErrDecode, "id", errors.New("bad value")),
		},
	}

	// Field names sort for stable messages.
	want := "validation failed for Formula: id, title"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestFormatError_Is(t *testing.T) {
	err := newFormatError(ErrUnmarshal, errors.New("invalid json"))

	if !errors.Is(err, ErrUnmarshal) {
		t.Error("FormatError should unwrap to ErrUnmarshal")
	}

	want := "unmarshal failed: invalid json"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
