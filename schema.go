package gilded

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/samber/lo"
	"go.uber.org/multierr"
)

// defaultMaxDepth bounds relation-map recursion so cyclic maps fail at
// construction instead of recursing forever.
const defaultMaxDepth = 32

// Schema converts between instances of one model and plain dictionaries.
//
// A Schema is immutable after construction: the field list, casing policy,
// and nested sub-schemas are resolved once by NewSchema, and Dump/Load
// perform no mutation, so an instance is safe for concurrent use provided
// the model's constructor and attribute accessors are too.
type Schema struct {
	model        *Descriptor
	snakeToCamel bool
	camelToSnake bool
	newObj       bool
	format       Format

	// fields in declaration order: manual first, then generated attributes,
	// then relation-map entries.
	fields []FieldSpec
	byKey  map[string]int
	byAttr map[string]int
}

type config struct {
	snakeToCamel bool
	camelToSnake bool
	newObj       bool
	nested       map[string]Nested
	manual       []FieldSpec
	format       Format
	maxDepth     int
}

// Option configures a Schema during construction.
type Option func(*config)

// SnakeToCamel dumps snake_case attribute names under camelCase keys and
// loads camelCase keys back. Mutually exclusive with CamelToSnake.
func SnakeToCamel() Option {
	return func(c *config) { c.snakeToCamel = true }
}

// CamelToSnake dumps camelCase attribute names under snake_case keys and
// loads snake_case keys back. Mutually exclusive with SnakeToCamel.
func CamelToSnake() Option {
	return func(c *config) { c.camelToSnake = true }
}

// NewObject configures the schema for loading brand-new objects: the "id"
// attribute is dropped from field generation (recursively, through nested
// sub-schemas), so loaded instances carry no pre-assigned identity. An
// explicit manual "id" field still applies.
func NewObject() Option {
	return func(c *config) { c.newObj = true }
}

// WithNested declares related models keyed by the parent attribute that
// holds them. Each entry builds a recursive sub-schema inheriting the
// casing policy and new-object flag, or uses a prebuilt schema as-is.
func WithNested(nested map[string]Nested) Option {
	return func(c *config) { c.nested = nested }
}

// WithFields declares fields manually. Manual fields keep their declaration
// order ahead of generated ones and are never overwritten by a generated
// field for the same attribute.
func WithFields(fields ...FieldSpec) Option {
	return func(c *config) { c.manual = append(c.manual, fields...) }
}

// WithFormat sets the wire format used by Marshal and Unmarshal.
// The default is JSON.
func WithFormat(f Format) Option {
	return func(c *config) { c.format = f }
}

// WithMaxDepth overrides the relation-map recursion limit.
func WithMaxDepth(n int) Option {
	return func(c *config) { c.maxDepth = n }
}

// NewSchema builds a schema for the given model description.
//
// Every attribute is bound to a codec from the closed kind table; all
// resolution failures are reported together. A nil model builds a
// manual-fields-only schema whose Load yields the decoded map itself.
func NewSchema(model *Descriptor, opts ...Option) (*Schema, error) {
	cfg := &config{
		format:   JSON(),
		maxDepth: defaultMaxDepth,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	s, err := newSchema(model, cfg, 0)
	if err != nil {
		return nil, err
	}

	emitSchemaCreated(context.Background(), s.Name(), s.format.ContentType(), len(s.fields))
	return s, nil
}

func newSchema(model *Descriptor, cfg *config, depth int) (*Schema, error) {
	if cfg.snakeToCamel && cfg.camelToSnake {
		return nil, newConfigError(ErrInvalidConfig, modelName(model), "",
			"only one of snake-to-camel or camel-to-snake may be set")
	}
	if depth > cfg.maxDepth {
		return nil, newConfigError(ErrNestingTooDeep, modelName(model), "",
			fmt.Sprintf("depth limit %d exceeded; is the relation map cyclic?", cfg.maxDepth))
	}
	if model != nil {
		if err := model.validate(); err != nil {
			return nil, err
		}
	}

	s := &Schema{
		model:        model,
		snakeToCamel: cfg.snakeToCamel,
		camelToSnake: cfg.camelToSnake,
		newObj:       cfg.newObj,
		format:       cfg.format,
		byKey:        make(map[string]int),
		byAttr:       make(map[string]int),
	}

	// Manual fields first, in declaration order.
	for _, f := range cfg.manual {
		if f.Attr == "" {
			return nil, newConfigError(ErrInvalidConfig, s.Name(), "", "manual field has no attribute name")
		}
		if f.Codec == nil {
			f.Codec = Raw()
		}
		if f.Key == "" {
			f.Key = s.externalKey(f.Attr)
		}
		if err := s.addField(f); err != nil {
			return nil, err
		}
	}

	// Generated fields, in attribute declaration order. Manual declarations
	// win; resolution failures are aggregated so a bad descriptor reports
	// every problem at once.
	if model != nil {
		var errs []error
		for _, attr := range model.Attrs {
			if _, taken := s.byAttr[attr.Name]; taken {
				continue
			}
			if cfg.newObj && attr.Name == "id" {
				continue
			}
			codec, err := codecFor(attr, model.Name)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			if err := s.addField(FieldSpec{
				Key:      s.externalKey(attr.Name),
				Attr:     attr.Name,
				Codec:    codec,
				Nullable: attr.Nullable,
			}); err != nil {
				errs = append(errs, err)
			}
		}
		if len(errs) > 0 {
			return nil, multierr.Combine(errs...)
		}
	}

	// Relation-map fields. Map order is not meaningful, so entries are
	// bound in sorted attribute order for determinism.
	names := lo.Keys(cfg.nested)
	sort.Strings(names)
	for _, name := range names {
		if _, taken := s.byAttr[name]; taken {
			continue
		}
		rel := cfg.nested[name]
		sub, err := s.nestedSchema(name, rel, cfg, depth)
		if err != nil {
			return nil, err
		}
		if err := s.addField(FieldSpec{
			Key:      s.externalKey(name),
			Attr:     name,
			Codec:    &nestedCodec{schema: sub, many: rel.Many},
			Nullable: true,
		}); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// nestedSchema resolves one relation-map entry to a sub-schema.
func (s *Schema) nestedSchema(attr string, rel Nested, cfg *config, depth int) (*Schema, error) {
	switch {
	case rel.Schema != nil && rel.Model != nil:
		return nil, newConfigError(ErrInvalidConfig, s.Name(), attr,
			"nested relation declares both a model and a schema")
	case rel.Schema != nil:
		return rel.Schema, nil
	case rel.Model == nil:
		return nil, newConfigError(ErrInvalidConfig, s.Name(), attr,
			"nested relation declares neither a model nor a schema")
	}

	subCfg := &config{
		snakeToCamel: cfg.snakeToCamel,
		camelToSnake: cfg.camelToSnake,
		newObj:       cfg.newObj,
		nested:       rel.Nested,
		format:       cfg.format,
		maxDepth:     cfg.maxDepth,
	}
	return newSchema(rel.Model, subCfg, depth+1)
}

func (s *Schema) addField(f FieldSpec) error {
	if _, dup := s.byKey[f.Key]; dup {
		return newConfigError(ErrInvalidConfig, s.Name(), f.Attr,
			fmt.Sprintf("duplicate field key %q", f.Key))
	}
	s.byKey[f.Key] = len(s.fields)
	s.byAttr[f.Attr] = len(s.fields)
	s.fields = append(s.fields, f)
	return nil
}

// externalKey derives the external dictionary key for an attribute name
// under the schema's casing policy.
func (s *Schema) externalKey(attr string) string {
	switch {
	case s.snakeToCamel:
		return ToCamel(attr)
	case s.camelToSnake:
		return ToSnake(attr)
	default:
		return attr
	}
}

// Name returns the model name, or "manual" for a model-less schema.
func (s *Schema) Name() string {
	return modelName(s.model)
}

func modelName(model *Descriptor) string {
	if model == nil {
		return "manual"
	}
	return model.Name
}

// Keys returns the external dictionary keys in field declaration order.
func (s *Schema) Keys() []string {
	return lo.Map(s.fields, func(f FieldSpec, _ int) string { return f.Key })
}

// Fields returns the field specs in declaration order. The returned slice
// is shared; callers must not modify it.
func (s *Schema) Fields() []FieldSpec {
	return s.fields
}

// Dump serializes obj into a dictionary keyed by external field names.
//
// Attributes are read by their internal names; an attribute the object does
// not carry is omitted, and a nil value dumps as nil. Dump does not mutate
// obj.
func (s *Schema) Dump(ctx context.Context, obj any) (map[string]any, error) {
	start := time.Now()
	emitDumpStart(ctx, s.Name(), s.format.ContentType())

	out, err := s.dump(obj)
	emitDumpComplete(ctx, s.Name(), s.format.ContentType(), len(s.fields), time.Since(start), err)
	return out, err
}

// DumpMany serializes a slice of objects, one dictionary per element.
func (s *Schema) DumpMany(ctx context.Context, objs any) ([]map[string]any, error) {
	items, ok := asSlice(objs)
	if !ok {
		return nil, newConfigError(ErrInvalidConfig, s.Name(), "",
			fmt.Sprintf("DumpMany expects a slice, got %T", objs))
	}
	out := make([]map[string]any, 0, len(items))
	for i, item := range items {
		m, err := s.Dump(ctx, item)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, m)
	}
	return out, nil
}

func (s *Schema) dump(obj any) (map[string]any, error) {
	out := make(map[string]any, len(s.fields))
	for _, f := range s.fields {
		var v any
		if f.Get != nil {
			computed, err := f.Get(obj)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", f.Key, err)
			}
			v = computed
		} else {
			read, ok, err := attrValue(obj, f.Attr)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			v = read
		}

		if v == nil {
			out[f.Key] = nil
			continue
		}
		enc, err := f.Codec.Encode(v)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Key, err)
		}
		out[f.Key] = enc
	}
	return out, nil
}

// Load decodes a dictionary keyed by external field names and constructs a
// new model instance from the result.
//
// Unknown keys are ignored. Missing or nil values for non-nullable fields
// and codec failures are collected across the whole pass and returned as
// one ValidationError. For a model-less schema the decoded map itself is
// returned; a descriptor without a constructor is a ConfigError.
func (s *Schema) Load(ctx context.Context, data map[string]any) (any, error) {
	start := time.Now()
	emitLoadStart(ctx, s.Name(), s.format.ContentType())

	obj, err := s.load(data)
	emitLoadComplete(ctx, s.Name(), s.format.ContentType(), len(s.fields), time.Since(start), err)
	return obj, err
}

func (s *Schema) load(data map[string]any) (any, error) {
	values := make(map[string]any, len(s.fields))
	failures := make(map[string]error)

	for _, f := range s.fields {
		if f.Get != nil {
			continue
		}
		raw, present := data[f.Key]
		if !present || raw == nil {
			if !f.Nullable {
				failures[f.Key] = newFieldError(ErrMissingField, f.Key, nil)
			} else if present {
				values[f.Attr] = nil
			}
			continue
		}
		v, err := f.Codec.Decode(raw)
		if err != nil {
			failures[f.Key] = newFieldError(ErrDecode, f.Key, err)
			continue
		}
		values[f.Attr] = v
	}

	if len(failures) > 0 {
		return nil, &ValidationError{Model: s.Name(), Fields: failures}
	}

	if s.model == nil {
		return values, nil
	}
	if s.model.New == nil {
		return nil, newConfigError(ErrInvalidConfig, s.Name(), "", "descriptor has no constructor")
	}
	obj, err := s.model.New(values)
	if err != nil {
		return nil, newConfigError(ErrInvalidConfig, s.Name(), "", err.Error())
	}
	return obj, nil
}

// Marshal dumps obj and encodes the dictionary with the schema's format.
func (s *Schema) Marshal(ctx context.Context, obj any) ([]byte, error) {
	m, err := s.Dump(ctx, obj)
	if err != nil {
		return nil, err
	}
	data, err := s.format.Marshal(m)
	if err != nil {
		return nil, newFormatError(ErrMarshal, err)
	}
	return data, nil
}

// Unmarshal decodes bytes with the schema's format and loads the result.
func (s *Schema) Unmarshal(ctx context.Context, data []byte) (any, error) {
	var m map[string]any
	if err := s.format.Unmarshal(data, &m); err != nil {
		return nil, newFormatError(ErrUnmarshal, err)
	}
	return s.Load(ctx, m)
}
