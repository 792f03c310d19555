package gilded

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// stringCodec passes strings through and rejects everything else.
type stringCodec struct{}

// String returns the codec for string attributes.
func String() Codec {
	return stringCodec{}
}

func (stringCodec) Encode(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("%w: expected string, got %T", ErrTypeMismatch, v)
	}
	return s, nil
}

func (stringCodec) Decode(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("%w: expected string, got %T", ErrTypeMismatch, v)
	}
	return s, nil
}

// integerCodec normalizes any integral value to int64. Wire formats decode
// numbers as float64 (JSON) or sized ints (MessagePack, YAML), so both
// directions accept the full numeric spread.
type integerCodec struct{}

// Integer returns the codec for integer attributes. Values decode to int64.
func Integer() Codec {
	return integerCodec{}
}

// BigInt returns the codec for long-integer attributes. It behaves exactly
// like Integer; the distinction lives on the Attr for descriptor fidelity.
func BigInt() Codec {
	return integerCodec{}
}

func (integerCodec) Encode(v any) (any, error) {
	return toInt64(v)
}

func (integerCodec) Decode(v any) (any, error) {
	return toInt64(v)
}

func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint:
		return int64(n), nil
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint64:
		if n > math.MaxInt64 {
			return 0, fmt.Errorf("%w: %d overflows int64", ErrTypeMismatch, n)
		}
		return int64(n), nil
	case float32:
		return float64ToInt64(float64(n))
	case float64:
		return float64ToInt64(n)
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not an integer", ErrTypeMismatch, n.String())
		}
		return i, nil
	default:
		return 0, fmt.Errorf("%w: expected integer, got %T", ErrTypeMismatch, v)
	}
}

func float64ToInt64(f float64) (int64, error) {
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: %v is not an integer", ErrTypeMismatch, f)
	}
	return int64(f), nil
}

// boolCodec passes booleans through and rejects everything else.
type boolCodec struct{}

// Bool returns the codec for boolean attributes.
func Bool() Codec {
	return boolCodec{}
}

func (boolCodec) Encode(v any) (any, error) {
	b, ok := v.(bool)
	if !ok {
		return nil, fmt.Errorf("%w: expected bool, got %T", ErrTypeMismatch, v)
	}
	return b, nil
}

func (boolCodec) Decode(v any) (any, error) {
	b, ok := v.(bool)
	if !ok {
		return nil, fmt.Errorf("%w: expected bool, got %T", ErrTypeMismatch, v)
	}
	return b, nil
}

// timeCodec serializes time.Time using a fixed layout.
type timeCodec struct {
	layout string
}

// Timestamp returns the codec for timestamp attributes (RFC 3339).
func Timestamp() Codec {
	return timeCodec{layout: time.RFC3339Nano}
}

// Date returns the codec for date attributes ("2006-01-02").
func Date() Codec {
	return timeCodec{layout: dateLayout}
}

func (c timeCodec) Encode(v any) (any, error) {
	t, ok := v.(time.Time)
	if !ok {
		return nil, fmt.Errorf("%w: expected time.Time, got %T", ErrTypeMismatch, v)
	}
	return t.Format(c.layout), nil
}

func (c timeCodec) Decode(v any) (any, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case string:
		parsed, err := time.Parse(c.layout, t)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTypeMismatch, err)
		}
		return parsed, nil
	default:
		return nil, fmt.Errorf("%w: expected time string, got %T", ErrTypeMismatch, v)
	}
}

// uuidCodec serializes UUIDs as canonical strings.
type uuidCodec struct{}

// UUID returns the codec for UUID attributes. Values decode to uuid.UUID.
func UUID() Codec {
	return uuidCodec{}
}

func (uuidCodec) Encode(v any) (any, error) {
	switch u := v.(type) {
	case uuid.UUID:
		return u.String(), nil
	case string:
		parsed, err := uuid.Parse(u)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTypeMismatch, err)
		}
		return parsed.String(), nil
	default:
		return nil, fmt.Errorf("%w: expected UUID, got %T", ErrTypeMismatch, v)
	}
}

func (uuidCodec) Decode(v any) (any, error) {
	switch u := v.(type) {
	case uuid.UUID:
		return u, nil
	case string:
		parsed, err := uuid.Parse(u)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTypeMismatch, err)
		}
		return parsed, nil
	default:
		return nil, fmt.Errorf("%w: expected UUID string, got %T", ErrTypeMismatch, v)
	}
}

// rawCodec passes values through untouched in both directions.
type rawCodec struct{}

// Raw returns the passthrough codec for untyped attributes.
func Raw() Codec {
	return rawCodec{}
}

func (rawCodec) Encode(v any) (any, error) {
	return v, nil
}

func (rawCodec) Decode(v any) (any, error) {
	return v, nil
}

// listCodec applies an element codec across a slice.
type listCodec struct {
	elem Codec
}

// ListOf returns a codec that applies elem to every element of a slice.
// Nil elements pass through as nil.
func ListOf(elem Codec) Codec {
	return listCodec{elem: elem}
}

func (c listCodec) Encode(v any) (any, error) {
	items, ok := asSlice(v)
	if !ok {
		return nil, fmt.Errorf("%w: expected slice, got %T", ErrTypeMismatch, v)
	}
	out := make([]any, 0, len(items))
	for i, item := range items {
		if item == nil {
			out = append(out, nil)
			continue
		}
		enc, err := c.elem.Encode(item)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, enc)
	}
	return out, nil
}

func (c listCodec) Decode(v any) (any, error) {
	items, ok := asSlice(v)
	if !ok {
		return nil, fmt.Errorf("%w: expected list, got %T", ErrTypeMismatch, v)
	}
	out := make([]any, 0, len(items))
	for i, item := range items {
		if item == nil {
			out = append(out, nil)
			continue
		}
		dec, err := c.elem.Decode(item)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, dec)
	}
	return out, nil
}

// asSlice flattens any slice or array value to []any.
func asSlice(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	if items, ok := v.([]any); ok {
		return items, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
