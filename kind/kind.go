// Package kind enumerates the closed set of shape kinds and exposes,
// for each, the parameter descriptors it declares.
package kind

import "github.com/shapelang/shapecore/ids"

// Kind is the closed sum of primitive and composite shape kinds.
type Kind int

const (
	String Kind = iota
	Number
	Boolean
	Unknown
	Any

	Object
	List
	Map
	Nullable
	Optional
	OneOf
	Identifier
	Reference
)

// String renders the kind's canonical name, used in log output and
// command wire payloads.
func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return "Unknown"
}

var names = map[Kind]string{
	String:     "String",
	Number:     "Number",
	Boolean:    "Boolean",
	Unknown:    "Unknown",
	Any:        "Any",
	Object:     "Object",
	List:       "List",
	Map:        "Map",
	Nullable:   "Nullable",
	Optional:   "Optional",
	OneOf:      "OneOf",
	Identifier: "Identifier",
	Reference:  "Reference",
}

// ParameterDescriptor names a parameter slot a kind exposes.
type ParameterDescriptor struct {
	ParameterID ids.ShapeParameterId
	Name        string
}

// Well-known parameter IDs.
const (
	NullableInner ids.ShapeParameterId = "$nullableInner"
	OptionalInner ids.ShapeParameterId = "$optionalInner"
	ListItem      ids.ShapeParameterId = "$listItem"
	MapKey        ids.ShapeParameterId = "$mapKey"
	MapValue      ids.ShapeParameterId = "$mapValue"
)

var parameterDescriptors = map[Kind][]ParameterDescriptor{
	Nullable: {{ParameterID: NullableInner, Name: "nullableInner"}},
	Optional: {{ParameterID: OptionalInner, Name: "optionalInner"}},
	List:     {{ParameterID: ListItem, Name: "listItem"}},
	Map: {
		{ParameterID: MapKey, Name: "mapKey"},
		{ParameterID: MapValue, Name: "mapValue"},
	},
	// OneOf's parameters are user-declared (one per alternative) and are
	// not part of this constant table; they arrive via ShapeParameterAdded
	// events and are read back with query.ResolveParametersToShapes.
}

// ParameterDescriptors returns, in declaration order, the parameter
// descriptors k exposes. Returns nil for kinds with none.
func ParameterDescriptors(k Kind) []ParameterDescriptor {
	return parameterDescriptors[k]
}

// PrimaryParameterDescriptor returns the sole parameter descriptor of a
// unary combinator (Nullable, Optional, List). It panics if k does not
// declare exactly one descriptor; callers must only use it on kinds
// known to be unary.
func PrimaryParameterDescriptor(k Kind) ParameterDescriptor {
	ds := parameterDescriptors[k]
	if len(ds) != 1 {
		panic("kind: PrimaryParameterDescriptor called on a non-unary kind")
	}
	return ds[0]
}

// IsCombinator reports whether k wraps or aggregates other shapes.
func IsCombinator(k Kind) bool {
	switch k {
	case Nullable, Optional, OneOf, List, Map:
		return true
	default:
		return false
	}
}

// baseShapeIDs maps the wire-format baseShapeId string to a Kind.
var baseShapeIDs = map[string]Kind{
	"$string":     String,
	"$number":     Number,
	"$boolean":    Boolean,
	"$unknown":    Unknown,
	"$any":        Any,
	"$object":     Object,
	"$list":       List,
	"$map":        Map,
	"$nullable":   Nullable,
	"$optional":   Optional,
	"$oneOf":      OneOf,
	"$identifier": Identifier,
	"$reference":  Reference,
}

// CoreShapeKindFor maps a ShapeAdded event's baseShapeId to its Kind.
func CoreShapeKindFor(baseShapeID string) (Kind, bool) {
	k, ok := baseShapeIDs[baseShapeID]
	return k, ok
}
