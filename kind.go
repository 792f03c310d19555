package gilded

// Kind identifies one of the closed set of attribute types a Descriptor may
// declare. Every Kind maps to a codec at Schema construction; a value
// outside this set is a ConfigError, never a silent fallback.
type Kind string

const (
	// KindString serializes to/from a string.
	KindString Kind = "string"

	// KindInteger serializes to/from a 64-bit integer.
	KindInteger Kind = "integer"

	// KindBigInt is a long integer. It shares the integer codec and exists
	// so descriptors can record the declared width of the source column.
	KindBigInt Kind = "bigint"

	// KindTimestamp serializes time.Time to/from an RFC 3339 string.
	KindTimestamp Kind = "timestamp"

	// KindDate serializes time.Time to/from a "2006-01-02" string.
	KindDate Kind = "date"

	// KindBool serializes to/from a boolean.
	KindBool Kind = "boolean"

	// KindEnum serializes an enumeration value to/from its symbolic name.
	// Attributes of this kind carry a name-to-value map on the Attr.
	KindEnum Kind = "enum"

	// KindUUID serializes to/from a canonical UUID string.
	KindUUID Kind = "uuid"

	// KindRaw passes the value through untouched in both directions.
	KindRaw Kind = "raw"

	// KindList serializes a slice whose elements share one primitive kind,
	// recorded in Attr.Elem. Related objects are not list elements; they go
	// through the relation map instead.
	KindList Kind = "list"
)

// validKinds contains every recognized kind.
var validKinds = map[Kind]bool{
	KindString:    true,
	KindInteger:   true,
	KindBigInt:    true,
	KindTimestamp: true,
	KindDate:      true,
	KindBool:      true,
	KindEnum:      true,
	KindUUID:      true,
	KindRaw:       true,
	KindList:      true,
}

// IsValidKind returns true if k is a recognized attribute kind.
func IsValidKind(k Kind) bool {
	return validKinds[k]
}

// kindCodecs maps each primitive kind to its codec constructor. KindList and
// KindEnum are resolved separately because they need per-attribute data.
var kindCodecs = map[Kind]func() Codec{
	KindString:    String,
	KindInteger:   Integer,
	KindBigInt:    BigInt,
	KindTimestamp: Timestamp,
	KindDate:      Date,
	KindBool:      Bool,
	KindUUID:      UUID,
	KindRaw:       Raw,
}
