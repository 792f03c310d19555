package gilded

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/samber/lo"
)

// Attr describes one named, typed attribute of a model. Immutable once
// handed to NewSchema or Describe.
type Attr struct {
	// Name is the attribute's internal name; external keys derive from it.
	Name string

	// Kind selects the codec from the closed kind table.
	Kind Kind

	// Elem is the element kind for KindList attributes. It must be a
	// primitive kind: related objects go through the relation map.
	Elem Kind

	// Nullable marks the attribute optional: a missing or nil key during
	// Load is not an error, and nil dumps as nil.
	Nullable bool

	// Enum maps symbolic names to values for KindEnum attributes.
	Enum map[string]any
}

// Descriptor describes a model: an ordered attribute list plus a
// constructor accepting the full set of decoded attributes by name.
// Descriptors are supplied by the data-access layer or derived from a
// struct type with Describe.
type Descriptor struct {
	// Name identifies the model in errors and signals.
	Name string

	// Attrs lists the attributes in declaration order.
	Attrs []Attr

	// New constructs a model instance from decoded values keyed by internal
	// attribute name. Attributes that were nullable and absent are not in
	// the map. Required for Load on schemas built from this descriptor.
	New func(values map[string]any) (any, error)
}

// validate checks the descriptor for construction-time problems.
func (d *Descriptor) validate() error {
	if d.Name == "" {
		return newConfigError(ErrInvalidConfig, "", "", "descriptor has no name")
	}
	dups := lo.FindDuplicatesBy(d.Attrs, func(a Attr) string { return a.Name })
	if len(dups) > 0 {
		return newConfigError(ErrInvalidConfig, d.Name, dups[0].Name, "duplicate attribute")
	}
	return nil
}

// Nested binds an attribute of the parent model to a related model.
// Exactly one of Model or Schema must be set: Model builds a sub-schema
// recursively with the parent's casing policy and new-object flag, while
// Schema uses a prebuilt schema as-is.
type Nested struct {
	Model  *Descriptor
	Schema *Schema

	// Many marks the relation as a list of related objects rather than a
	// single one.
	Many bool

	// Nested is the relation map for the related model itself, applied only
	// when Model is set.
	Nested map[string]Nested
}

// attrValue reads the named attribute from obj. The second return is false
// when the object simply has no such attribute, in which case the field is
// omitted from the dump. A source that cannot carry attributes at all is a
// programmer error.
func attrValue(obj any, name string) (any, bool, error) {
	if obj == nil {
		return nil, false, newConfigError(ErrInvalidConfig, "", name, "cannot read attribute from nil object")
	}

	if a, ok := obj.(Accessor); ok {
		v, ok := a.Attribute(name)
		return v, ok, nil
	}

	if m, ok := obj.(map[string]any); ok {
		v, ok := m[name]
		return v, ok, nil
	}

	rv := reflect.ValueOf(obj)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false, newConfigError(ErrInvalidConfig, "", name, "cannot read attribute from nil object")
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, false, newConfigError(ErrInvalidConfig, "", name,
			fmt.Sprintf("cannot read attributes from %T", obj))
	}

	idx, ok := fieldIndex(rv.Type())[name]
	if !ok {
		return nil, false, nil
	}

	fv := rv.FieldByIndex(idx)
	switch fv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if fv.IsNil() {
			return nil, true, nil
		}
		return fv.Elem().Interface(), true, nil
	case reflect.Slice, reflect.Map:
		if fv.IsNil() {
			return nil, true, nil
		}
	}
	return fv.Interface(), true, nil
}

var (
	fieldIndexMu sync.RWMutex
	fieldIndexes = make(map[reflect.Type]map[string][]int)
)

// fieldIndex maps attribute names to struct field index paths for rt.
// The attribute name is the first segment of the field's gilded tag, or the
// snake-cased field name when untagged. Built once per type.
func fieldIndex(rt reflect.Type) map[string][]int {
	fieldIndexMu.RLock()
	if cached, ok := fieldIndexes[rt]; ok {
		fieldIndexMu.RUnlock()
		return cached
	}
	fieldIndexMu.RUnlock()

	fieldIndexMu.Lock()
	defer fieldIndexMu.Unlock()

	if cached, ok := fieldIndexes[rt]; ok {
		return cached
	}

	index := make(map[string][]int, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name, _ := parseAttrTag(sf.Tag.Get(attrTag))
		if name == "-" {
			continue
		}
		if name == "" {
			name = ToSnake(sf.Name)
		}
		index[name] = sf.Index
	}

	fieldIndexes[rt] = index
	return index
}
