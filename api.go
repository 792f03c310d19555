// Package gilded generates serializers from model descriptions.
//
// Given a Descriptor (an ordered list of named, typed attributes plus a
// constructor), gilded builds an immutable Schema that converts between
// in-memory objects and plain map[string]any dictionaries, optionally
// translating field names between snake_case and camelCase along the way.
//
// # Schemas
//
// A Schema is constructed once per (model, relation map, casing policy,
// new-object flag) combination and is stateless afterwards, so a single
// instance is safe for concurrent Dump/Load calls.
//
//	wizard, _ := gilded.Describe[WizardCollege]()
//	alchemist, _ := gilded.Describe[Alchemist]()
//
//	schema, _ := gilded.NewSchema(wizard,
//	    gilded.WithNested(map[string]gilded.Nested{
//	        "alchemists": {Model: alchemist, Many: true},
//	    }),
//	    gilded.SnakeToCamel(),
//	)
//
//	out, _ := schema.Dump(ctx, college)   // map[string]any, camelCased keys
//	obj, _ := schema.Load(ctx, out)       // *WizardCollege
//
// # Field generation
//
// Each attribute is bound to a codec selected from a closed Kind table at
// construction time; an unrecognized kind fails construction, never a later
// Dump or Load. Relation-map entries recursively build sub-schemas that
// inherit the parent's casing policy and new-object flag. Manually declared
// fields (WithFields) always win over auto-generated fields of the same
// attribute name.
//
// # Casing
//
// SnakeToCamel and CamelToSnake are mutually exclusive; requesting both is a
// ConfigError. Conversion applies only to the external dictionary keys —
// attribute reads and constructor arguments always use the original
// attribute names. ToSnake is a heuristic and not a perfect inverse of
// ToCamel; see the function docs for guarantees.
//
// # Errors
//
// Construction problems surface as ConfigError wrapping ErrInvalidConfig,
// ErrUnsupportedType, or ErrNestingTooDeep. Load failures aggregate every
// field-level problem from one pass into a single ValidationError rather
// than stopping at the first; use errors.Is with ErrValidation,
// ErrMissingField, or ErrDecode to classify them.
//
// # Wire formats
//
// Schema.Marshal and Schema.Unmarshal run the dumped dictionary through a
// pluggable Format. JSON is the default; YAML and MessagePack formats are
// provided.
package gilded

// Codec converts a single attribute value between its in-memory form and a
// wire-compatible form (string, number, boolean, nil, []any, or nested
// map[string]any). Codecs are resolved once at Schema construction and are
// stateless.
type Codec interface {
	// Encode converts an in-memory value to a wire-compatible value.
	Encode(v any) (any, error)

	// Decode converts a wire-compatible value back to its in-memory form.
	Decode(v any) (any, error)
}

// Format provides content-type aware marshaling of dumped dictionaries.
type Format interface {
	// ContentType returns the MIME type for this format (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// Accessor bypasses reflection for attribute reads during Dump.
// Objects that implement it are asked for each attribute by its original
// (internal) name; returning false omits the field from the output.
type Accessor interface {
	Attribute(name string) (any, bool)
}
