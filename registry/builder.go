package registry

import (
	"github.com/anirudhraja/thriftlite/schema"
)

// StructBuilder assembles a StructDescriptor, assigning every field the next
// 1-based declaration position as its id. This is the declarative
// registration path: callers never pick ids, so the contiguous-from-1
// invariant holds by construction and is re-checked at Register time.
type StructBuilder struct {
	name   string
	fields []*schema.FieldDescriptor
}

// NewStructBuilder starts a descriptor for the named struct type.
func NewStructBuilder(name string) *StructBuilder {
	return &StructBuilder{name: name}
}

// Field appends a required field.
func (b *StructBuilder) Field(name string, ft schema.FieldType) *StructBuilder {
	b.fields = append(b.fields, &schema.FieldDescriptor{
		Name: name,
		ID:   int16(len(b.fields) + 1),
		Type: ft,
	})
	return b
}

// OptionalField appends an optional field; absent values are omitted from the
// wire entirely.
func (b *StructBuilder) OptionalField(name string, ft schema.FieldType) *StructBuilder {
	b.fields = append(b.fields, &schema.FieldDescriptor{
		Name:     name,
		ID:       int16(len(b.fields) + 1),
		Type:     ft,
		Optional: true,
	})
	return b
}

// DefaultField appends an optional field with a default surfaced on decode
// when the writer omitted it.
func (b *StructBuilder) DefaultField(name string, ft schema.FieldType, def interface{}) *StructBuilder {
	b.fields = append(b.fields, &schema.FieldDescriptor{
		Name:     name,
		ID:       int16(len(b.fields) + 1),
		Type:     ft,
		Optional: true,
		Default:  def,
	})
	return b
}

// Build returns the finished immutable descriptor.
func (b *StructBuilder) Build() *schema.StructDescriptor {
	return &schema.StructDescriptor{Name: b.name, Fields: b.fields}
}

// Register builds the descriptor and registers it in one step.
func (b *StructBuilder) Register(r *Registry) error {
	return r.RegisterStruct(b.Build())
}

// Shorthand constructors for the common field types.

// Primitive returns a FieldType for a scalar.
func Primitive(t schema.PrimitiveType) schema.FieldType {
	return schema.FieldType{Kind: schema.KindPrimitive, Primitive: t}
}

// StructRef returns a FieldType referencing a registered struct.
func StructRef(name string) schema.FieldType {
	return schema.FieldType{Kind: schema.KindStruct, StructType: name}
}

// EnumRef returns a FieldType referencing a registered enum.
func EnumRef(name string) schema.FieldType {
	return schema.FieldType{Kind: schema.KindEnum, EnumType: name}
}

// List returns a FieldType for a list of elem.
func List(elem schema.FieldType) schema.FieldType {
	return schema.FieldType{Kind: schema.KindList, Element: &elem}
}

// Set returns a FieldType for a set of elem.
func Set(elem schema.FieldType) schema.FieldType {
	return schema.FieldType{Kind: schema.KindSet, Element: &elem}
}

// Map returns a FieldType for a key->value map.
func Map(key, value schema.FieldType) schema.FieldType {
	return schema.FieldType{Kind: schema.KindMap, MapKey: &key, MapValue: &value}
}
