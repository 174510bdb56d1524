package wire

import (
	"github.com/anirudhraja/thriftlite/schema"
)

// ===== COMPACT PROTOCOL WIRE TYPES =====

// WireType is the closed set of on-wire type tags. A field header's low
// nibble, a container preamble's element nibble(s), and the struct terminator
// all draw from this table. Enum values reuse the I32 tag.
type WireType int8

const (
	WireStop      WireType = 0  // struct terminator
	WireBoolTrue  WireType = 1  // bool field, value true, zero value bytes
	WireBoolFalse WireType = 2  // bool field, value false, zero value bytes
	WireByte      WireType = 3  // i8, one raw byte
	WireI16       WireType = 4  // zigzag varint
	WireI32       WireType = 5  // zigzag varint
	WireI64       WireType = 6  // zigzag varint
	WireDouble    WireType = 7  // 8 raw bytes, IEEE-754, big-endian
	WireBinary    WireType = 8  // varint length + raw bytes
	WireList      WireType = 9  // count/elem-type preamble + elements
	WireSet       WireType = 10 // same shape as list, different tag
	WireMap       WireType = 11 // count + key/value-type preamble + pairs
	WireStruct    WireType = 12 // nested field list down to its own stop byte
)

// IsValid reports whether t is one of the 13 defined tags.
func (t WireType) IsValid() bool {
	return t >= WireStop && t <= WireStruct
}

// IsBool reports whether t carries a boolean value in the tag itself.
func (t WireType) IsBool() bool {
	return t == WireBoolTrue || t == WireBoolFalse
}

func (t WireType) String() string {
	switch t {
	case WireStop:
		return "stop"
	case WireBoolTrue:
		return "bool-true"
	case WireBoolFalse:
		return "bool-false"
	case WireByte:
		return "byte"
	case WireI16:
		return "i16"
	case WireI32:
		return "i32"
	case WireI64:
		return "i64"
	case WireDouble:
		return "double"
	case WireBinary:
		return "binary"
	case WireList:
		return "list"
	case WireSet:
		return "set"
	case WireMap:
		return "map"
	case WireStruct:
		return "struct"
	default:
		return "unknown"
	}
}

// WireTypeFor maps a schema field type to its wire tag. Bool maps to
// WireBoolTrue; the writer flips the tag to WireBoolFalse per value when the
// field sits directly in a struct. Enums always map to the I32 tag.
func WireTypeFor(ft *schema.FieldType) (WireType, bool) {
	switch ft.Kind {
	case schema.KindPrimitive:
		switch ft.Primitive {
		case schema.TypeBool:
			return WireBoolTrue, true
		case schema.TypeByte:
			return WireByte, true
		case schema.TypeI16:
			return WireI16, true
		case schema.TypeI32:
			return WireI32, true
		case schema.TypeI64:
			return WireI64, true
		case schema.TypeDouble:
			return WireDouble, true
		case schema.TypeString, schema.TypeBinary:
			return WireBinary, true
		default:
			return WireStop, false
		}
	case schema.KindEnum:
		return WireI32, true
	case schema.KindStruct:
		return WireStruct, true
	case schema.KindList:
		return WireList, true
	case schema.KindSet:
		return WireSet, true
	case schema.KindMap:
		return WireMap, true
	default:
		return WireStop, false
	}
}

// RawField is a field decoded without a schema: id and wire type straight from
// the header, value decoded by wire shape alone. Nested structs decode to
// []RawField, containers to []interface{} / map entries.
type RawField struct {
	ID    int16
	Type  WireType
	Value interface{}
}

// RawMapEntry is one key/value pair of a schema-lessly decoded map. A slice
// of entries stands in for a Go map because generically decoded keys (binary,
// nested containers) are not always hashable.
type RawMapEntry struct {
	Key   interface{}
	Value interface{}
}
