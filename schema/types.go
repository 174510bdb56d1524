package schema

// StructDescriptor is the immutable, ordered field table for one structured
// type. It is built once (normally through registry.StructBuilder), shared by
// every read and write of that type, and never mutated after construction.
type StructDescriptor struct {
	Name   string             `json:"name"`   // "User"
	Fields []*FieldDescriptor `json:"fields"` // ordered by id (1-based declaration position)
}

// MaxShortFormFields is the largest declared-field count for which every
// header delta fits the high nibble of a single header byte.
const MaxShortFormFields = 15

// UseLongHeaders reports whether every field header of this struct is written
// in long form (absolute zigzag-varint id). The choice is made once per struct
// type, not per field.
func (s *StructDescriptor) UseLongHeaders() bool {
	return len(s.Fields) > MaxShortFormFields
}

// FieldByID returns the field with the given id, or nil. Ids equal the 1-based
// declaration position, so this is a direct index.
func (s *StructDescriptor) FieldByID(id int16) *FieldDescriptor {
	if id < 1 || int(id) > len(s.Fields) {
		return nil
	}
	return s.Fields[id-1]
}

// FieldDescriptor describes one declared field.
type FieldDescriptor struct {
	Name     string      `json:"name"`              // "user_name"
	ID       int16       `json:"id"`                // 1-based declaration position
	Type     FieldType   `json:"type"`              // field type information
	Optional bool        `json:"optional"`          // absent values are legal and omitted from the wire
	Default  interface{} `json:"default,omitempty"` // surfaced when the field is absent
}

// FieldType represents field type information.
type FieldType struct {
	Kind       TypeKind      `json:"kind"`                  // primitive, struct, enum, list, set, map
	Primitive  PrimitiveType `json:"primitive,omitempty"`   // for primitive kinds
	StructType string        `json:"struct_type,omitempty"` // for nested structs: registry name
	EnumType   string        `json:"enum_type,omitempty"`   // for enum kinds: registry name
	Element    *FieldType    `json:"element,omitempty"`     // for list/set element type
	MapKey     *FieldType    `json:"map_key,omitempty"`     // for map key type
	MapValue   *FieldType    `json:"map_value,omitempty"`   // for map value type
}

// TypeKind represents the kind of field type.
type TypeKind string

const (
	KindPrimitive TypeKind = "primitive"
	KindStruct    TypeKind = "struct"
	KindEnum      TypeKind = "enum"
	KindList      TypeKind = "list"
	KindSet       TypeKind = "set"
	KindMap       TypeKind = "map"
)

// PrimitiveType represents the scalar types of the compact protocol.
type PrimitiveType string

const (
	TypeBool   PrimitiveType = "bool"
	TypeByte   PrimitiveType = "byte" // i8
	TypeI16    PrimitiveType = "i16"
	TypeI32    PrimitiveType = "i32"
	TypeI64    PrimitiveType = "i64"
	TypeDouble PrimitiveType = "double"
	TypeString PrimitiveType = "string"
	TypeBinary PrimitiveType = "binary"
)

var knownPrimitives = map[PrimitiveType]struct{}{
	TypeBool:   {},
	TypeByte:   {},
	TypeI16:    {},
	TypeI32:    {},
	TypeI64:    {},
	TypeDouble: {},
	TypeString: {},
	TypeBinary: {},
}

// IsKnownPrimitive checks and returns if the primitive type has a wire mapping.
func IsKnownPrimitive(t PrimitiveType) bool {
	_, ok := knownPrimitives[t]
	return ok
}

// Enum represents an enum definition. Enum values travel as i32 on the wire.
type Enum struct {
	Name   string       `json:"name"`   // "Status"
	Values []*EnumValue `json:"values"` // enum values
}

// EnumValue represents an enum value.
type EnumValue struct {
	Name   string `json:"name"`   // "ACTIVE"
	Number int32  `json:"number"` // 1
}

// NumberByName returns the wire number for a value name.
func (e *Enum) NumberByName(name string) (int32, bool) {
	for _, v := range e.Values {
		if v.Name == name {
			return v.Number, true
		}
	}
	return 0, false
}

// NameByNumber returns the value name for a wire number.
func (e *Enum) NameByNumber(number int32) (string, bool) {
	for _, v := range e.Values {
		if v.Number == number {
			return v.Name, true
		}
	}
	return "", false
}
