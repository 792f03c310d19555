package gilded

import (
	"errors"
	"testing"
)

type accessorObj map[string]any

func (a accessorObj) Attribute(name string) (any, bool) {
	v, ok := a[name]
	return v, ok
}

func TestAttrValue_Sources(t *testing.T) {
	type source struct {
		Title    string `gilded:"title"`
		SchoolID *int64 `gilded:"school_id"`
		Hidden   string `gilded:"-"`
		Plain    string
	}

	t.Run("struct", func(t *testing.T) {
		v, ok, err := attrValue(source{Title: "transmutation"}, "title")
		if err != nil || !ok || v != "transmutation" {
			t.Errorf("attrValue() = %v, %v, %v", v, ok, err)
		}
	})

	t.Run("struct pointer", func(t *testing.T) {
		v, ok, err := attrValue(&source{Title: "transmutation"}, "title")
		if err != nil || !ok || v != "transmutation" {
			t.Errorf("attrValue() = %v, %v, %v", v, ok, err)
		}
	})

	t.Run("untagged field snake-cases", func(t *testing.T) {
		v, ok, err := attrValue(source{Plain: "x"}, "plain")
		if err != nil || !ok || v != "x" {
			t.Errorf("attrValue() = %v, %v, %v", v, ok, err)
		}
	})

	t.Run("nil pointer field is nil value", func(t *testing.T) {
		v, ok, err := attrValue(source{}, "school_id")
		if err != nil || !ok || v != nil {
			t.Errorf("attrValue() = %v, %v, %v", v, ok, err)
		}
	})

	t.Run("skipped field is absent", func(t *testing.T) {
		_, ok, err := attrValue(source{Hidden: "x"}, "hidden")
		if err != nil || ok {
			t.Errorf("attrValue() ok = %v, err = %v", ok, err)
		}
	})

	t.Run("unknown attribute is absent", func(t *testing.T) {
		_, ok, err := attrValue(source{}, "nonexistent")
		if err != nil || ok {
			t.Errorf("attrValue() ok = %v, err = %v", ok, err)
		}
	})

	t.Run("map", func(t *testing.T) {
		v, ok, err := attrValue(map[string]any{"title": "calcination"}, "title")
		if err != nil || !ok || v != "calcination" {
			t.Errorf("attrValue() = %v, %v, %v", v, ok, err)
		}
	})

	t.Run("accessor", func(t *testing.T) {
		v, ok, err := attrValue(accessorObj{"title": "solution"}, "title")
		if err != nil || !ok || v != "solution" {
			t.Errorf("attrValue() = %v, %v, %v", v, ok, err)
		}
	})

	t.Run("nil object errors", func(t *testing.T) {
		_, _, err := attrValue(nil, "title")
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("attrValue(nil) error = %v, want ErrInvalidConfig", err)
		}
	})

	t.Run("non-struct errors", func(t *testing.T) {
		_, _, err := attrValue(42, "title")
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("attrValue(42) error = %v, want ErrInvalidConfig", err)
		}
	})
}

func TestDescriptorValidate(t *testing.T) {
	tests := []struct {
		name    string
		desc    Descriptor
		wantErr bool
	}{
		{
			name: "valid",
			desc: Descriptor{Name: "Formula", Attrs: []Attr{{Name: "title", Kind: KindString}}},
		},
		{
			name:    "missing name",
			desc:    Descriptor{Attrs: []Attr{{Name: "title", Kind: KindString}}},
			wantErr: true,
		},
		{
			name: "duplicate attribute",
			desc: Descriptor{Name: "Formula", Attrs: []Attr{
				{Name: "title", Kind: KindString},
				{Name: "title", Kind: KindString},
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.desc.validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("validate() error = %v, want ErrInvalidConfig", err)
				}
				return
			}
			if err != nil {
				t.Errorf("validate() error = %v", err)
			}
		})
	}
}

func TestIsValidKind(t *testing.T) {
	for k := range validKinds {
		if !IsValidKind(k) {
			t.Errorf("IsValidKind(%q) = false", k)
		}
	}
	if IsValidKind(Kind("molecule")) {
		t.Error(`IsValidKind("molecule") = true`)
	}
}
