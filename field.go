package gilded

import (
	"fmt"
)

// FieldSpec binds one source attribute to an external key and a codec.
// Specs are generated from the descriptor at construction or declared
// manually through WithFields; manual declarations always win over
// generated ones for the same attribute. A spec is owned by exactly one
// Schema and never mutates after construction.
type FieldSpec struct {
	// Key is the external dictionary key. When empty it is derived from
	// Attr through the schema's casing policy.
	Key string

	// Attr is the source attribute name used for object reads and
	// constructor arguments.
	Attr string

	// Codec converts the field value. Manual specs without a codec pass
	// values through untouched.
	Codec Codec

	// Nullable marks the field optional during Load; nil dumps as nil.
	Nullable bool

	// Get computes the dumped value from the whole source object instead of
	// reading an attribute. Fields with Get are dump-only: Load ignores
	// their key.
	Get func(obj any) (any, error)
}

// codecFor resolves the codec for an attribute from the closed kind table.
// Unrecognized kinds, non-primitive list elements, and enum attributes
// without a name map all fail here, at construction.
func codecFor(attr Attr, model string) (Codec, error) {
	switch attr.Kind {
	case KindList:
		mk, ok := kindCodecs[attr.Elem]
		if !ok {
			return nil, newConfigError(ErrUnsupportedType, model, attr.Name,
				fmt.Sprintf("list element kind %q", attr.Elem))
		}
		return ListOf(mk()), nil

	case KindEnum:
		if len(attr.Enum) == 0 {
			return nil, newConfigError(ErrInvalidConfig, model, attr.Name,
				"enum attribute requires a name map")
		}
		return EnumOf(attr.Enum), nil
	}

	mk, ok := kindCodecs[attr.Kind]
	if !ok {
		return nil, newConfigError(ErrUnsupportedType, model, attr.Name, string(attr.Kind))
	}
	return mk(), nil
}

// nestedCodec serializes a related object (or list of them) through a
// recursively constructed sub-schema.
type nestedCodec struct {
	schema *Schema
	many   bool
}

func (c *nestedCodec) Encode(v any) (any, error) {
	if !c.many {
		return c.schema.dump(v)
	}

	items, ok := asSlice(v)
	if !ok {
		return nil, fmt.Errorf("%w: expected slice of related objects, got %T", ErrTypeMismatch, v)
	}
	out := make([]any, 0, len(items))
	for i, item := range items {
		if item == nil {
			out = append(out, nil)
			continue
		}
		m, err := c.schema.dump(item)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, m)
	}
	return out, nil
}

func (c *nestedCodec) Decode(v any) (any, error) {
	if !c.many {
		m, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: expected object, got %T", ErrTypeMismatch, v)
		}
		return c.schema.load(m)
	}

	items, ok := asSlice(v)
	if !ok {
		return nil, fmt.Errorf("%w: expected list of objects, got %T", ErrTypeMismatch, v)
	}
	out := make([]any, 0, len(items))
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("element %d: %w: expected object, got %T", i, ErrTypeMismatch, item)
		}
		obj, err := c.schema.load(m)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, obj)
	}
	return out, nil
}
