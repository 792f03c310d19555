package gilded

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/samber/lo"
)

// Enum allows enumeration values to provide their symbolic name directly,
// bypassing the reverse lookup through the attribute's name map.
type Enum interface {
	EnumName() string
}

// enumCodec serializes enumeration values to their symbolic name rather
// than their underlying value.
type enumCodec struct {
	names map[string]any
}

// EnumOf returns a codec over a symbolic-name-to-value map. Encoding emits
// the name of the given value; decoding resolves a name back to its value.
// A name absent from the map is an ErrUnknownEnum failure.
func EnumOf(names map[string]any) Codec {
	return enumCodec{names: names}
}

func (c enumCodec) Encode(v any) (any, error) {
	if e, ok := v.(Enum); ok {
		return e.EnumName(), nil
	}
	// Scan in sorted name order so aliased values always encode to the
	// same name.
	names := lo.Keys(c.names)
	sort.Strings(names)
	for _, name := range names {
		if reflect.DeepEqual(c.names[name], v) {
			return name, nil
		}
	}
	return nil, fmt.Errorf("%w: no name for value %v (%T)", ErrUnknownEnum, v, v)
}

func (c enumCodec) Decode(v any) (any, error) {
	name, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("%w: expected enumeration name, got %T", ErrTypeMismatch, v)
	}
	val, ok := c.names[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEnum, name)
	}
	return val, nil
}
