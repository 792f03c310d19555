package gilded

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/zoobzio/sentinel"
)

// attrTag is the struct tag consulted for attribute names and options.
const attrTag = "gilded"

func init() {
	// Register the attribute tag with sentinel
	sentinel.Tag(attrTag)
}

var (
	timeType = reflect.TypeOf(time.Time{})
	uuidType = reflect.TypeOf(uuid.UUID{})
)

// Describe derives a Descriptor from a struct type.
//
// Attribute names come from the gilded tag's first segment, or the
// snake-cased field name when untagged; a tag of "-" skips the field. Kinds
// are inferred from the field type (string, integers, bool, time.Time,
// uuid.UUID, slices of those, and map/interface as raw); pointer fields are
// nullable. Tag options after the name adjust the inference:
//
//	Birthday time.Time `gilded:"birthday,date"`
//	SchoolID int64     `gilded:"school_id,nullable"`
//	Payload  []byte    `gilded:"payload,raw"`
//
// Struct-typed fields and slices of structs are not attributes — related
// objects are declared through the relation map at schema construction —
// but they remain readable and settable by attribute name, so nested fields
// bind to them.
//
// The returned descriptor's New constructs a *T and assigns every decoded
// value to its field by attribute name.
func Describe[T any]() (*Descriptor, error) {
	rt := reflect.TypeFor[T]()
	if rt.Kind() != reflect.Struct {
		return nil, newConfigError(ErrInvalidConfig, rt.String(), "", "Describe requires a struct type")
	}

	spec := sentinel.Scan[T]()
	d := &Descriptor{Name: spec.TypeName}

	for _, field := range spec.Fields {
		name, opts := parseAttrTag(field.Tags[attrTag])
		if name == "-" {
			continue
		}
		if name == "" {
			name = ToSnake(field.Name)
		}

		ft := field.ReflectType
		nullable := opts.nullable
		if ft.Kind() == reflect.Pointer {
			nullable = true
			ft = ft.Elem()
		}

		kind, elem, ok := kindOfType(ft)
		if !ok {
			continue
		}
		if opts.date {
			kind = KindDate
		}
		if opts.raw {
			kind = KindRaw
			elem = ""
		}

		d.Attrs = append(d.Attrs, Attr{
			Name:     name,
			Kind:     kind,
			Elem:     elem,
			Nullable: nullable,
		})
	}

	index := fieldIndex(rt)
	d.New = func(values map[string]any) (any, error) {
		obj := new(T)
		rv := reflect.ValueOf(obj).Elem()
		for name, val := range values {
			idx, ok := index[name]
			if !ok || val == nil {
				continue
			}
			if err := assignValue(rv.FieldByIndex(idx), val); err != nil {
				return nil, fmt.Errorf("attribute %q: %w", name, err)
			}
		}
		return obj, nil
	}

	return d, nil
}

// attrTagOpts holds the recognized tag options after the attribute name.
type attrTagOpts struct {
	nullable bool
	date     bool
	raw      bool
}

func parseAttrTag(tag string) (string, attrTagOpts) {
	var opts attrTagOpts
	if tag == "" {
		return "", opts
	}
	parts := strings.Split(tag, ",")
	for _, opt := range parts[1:] {
		switch opt {
		case "nullable":
			opts.nullable = true
		case "date":
			opts.date = true
		case "raw":
			opts.raw = true
		}
	}
	return parts[0], opts
}

// kindOfType infers the attribute kind for a Go type. Types outside the
// closed set (structs, pointers, channels, floats) report false and are
// left to the relation map.
func kindOfType(ft reflect.Type) (Kind, Kind, bool) {
	switch ft {
	case timeType:
		return KindTimestamp, "", true
	case uuidType:
		return KindUUID, "", true
	}

	switch ft.Kind() {
	case reflect.String:
		return KindString, "", true
	case reflect.Bool:
		return KindBool, "", true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32,
		reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return KindInteger, "", true
	case reflect.Int64, reflect.Uint, reflect.Uint64:
		return KindBigInt, "", true
	case reflect.Slice:
		if ft.Elem().Kind() == reflect.Uint8 {
			return KindRaw, "", true
		}
		elem, _, ok := kindOfType(ft.Elem())
		if !ok || !kindListElem(elem) {
			return "", "", false
		}
		return KindList, elem, true
	case reflect.Map, reflect.Interface:
		return KindRaw, "", true
	default:
		return "", "", false
	}
}

// kindListElem reports whether k can be a list element kind.
func kindListElem(k Kind) bool {
	_, ok := kindCodecs[k]
	return ok
}

// assignValue sets a decoded value onto a struct field, converting between
// the codec's canonical types (int64, []any, pointers from nested loads)
// and the field's declared type.
func assignValue(fv reflect.Value, val any) error {
	rv := reflect.ValueOf(val)
	ft := fv.Type()

	switch {
	case rv.Type().AssignableTo(ft):
		fv.Set(rv)
		return nil

	case rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Type().Elem().AssignableTo(ft):
		fv.Set(rv.Elem())
		return nil

	case isNumericKind(ft.Kind()) && isNumericKind(rv.Kind()):
		fv.Set(rv.Convert(ft))
		return nil

	case ft.Kind() == reflect.Pointer:
		pv := reflect.New(ft.Elem())
		if err := assignValue(pv.Elem(), val); err != nil {
			return err
		}
		fv.Set(pv)
		return nil

	case ft.Kind() == reflect.Slice:
		items, ok := asSlice(val)
		if !ok {
			return fmt.Errorf("%w: expected slice for %s, got %T", ErrTypeMismatch, ft, val)
		}
		out := reflect.MakeSlice(ft, len(items), len(items))
		for i, item := range items {
			if item == nil {
				continue
			}
			if err := assignValue(out.Index(i), item); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
		}
		fv.Set(out)
		return nil

	default:
		return fmt.Errorf("%w: cannot assign %T to %s", ErrTypeMismatch, val, ft)
	}
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
