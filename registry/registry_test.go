package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anirudhraja/thriftlite/schema"
)

func TestRegisterStruct_Valid(t *testing.T) {
	r := NewRegistry()

	desc := &schema.StructDescriptor{
		Name: "User",
		Fields: []*schema.FieldDescriptor{
			{Name: "id", ID: 1, Type: Primitive(schema.TypeI64)},
			{Name: "name", ID: 2, Type: Primitive(schema.TypeString)},
			{Name: "tags", ID: 3, Type: List(Primitive(schema.TypeString))},
		},
	}
	require.NoError(t, r.RegisterStruct(desc))

	got, err := r.GetStruct("User")
	require.NoError(t, err)
	assert.Same(t, desc, got)
	assert.Equal(t, []string{"User"}, r.ListStructs())
}

func TestRegisterStruct_Invalid(t *testing.T) {
	cases := []struct {
		name string
		desc *schema.StructDescriptor
	}{
		{
			name: "empty_struct_name",
			desc: &schema.StructDescriptor{},
		},
		{
			name: "empty_field_name",
			desc: &schema.StructDescriptor{
				Name:   "S",
				Fields: []*schema.FieldDescriptor{{ID: 1, Type: Primitive(schema.TypeI32)}},
			},
		},
		{
			name: "duplicate_field_name",
			desc: &schema.StructDescriptor{
				Name: "S",
				Fields: []*schema.FieldDescriptor{
					{Name: "a", ID: 1, Type: Primitive(schema.TypeI32)},
					{Name: "a", ID: 2, Type: Primitive(schema.TypeI32)},
				},
			},
		},
		{
			name: "id_not_declaration_position",
			desc: &schema.StructDescriptor{
				Name: "S",
				Fields: []*schema.FieldDescriptor{
					{Name: "a", ID: 1, Type: Primitive(schema.TypeI32)},
					{Name: "b", ID: 3, Type: Primitive(schema.TypeI32)},
				},
			},
		},
		{
			name: "unknown_primitive",
			desc: &schema.StructDescriptor{
				Name:   "S",
				Fields: []*schema.FieldDescriptor{{Name: "a", ID: 1, Type: Primitive("float128")}},
			},
		},
		{
			name: "list_without_element_type",
			desc: &schema.StructDescriptor{
				Name:   "S",
				Fields: []*schema.FieldDescriptor{{Name: "a", ID: 1, Type: schema.FieldType{Kind: schema.KindList}}},
			},
		},
		{
			name: "map_without_value_type",
			desc: &schema.StructDescriptor{
				Name: "S",
				Fields: []*schema.FieldDescriptor{{
					Name: "a",
					ID:   1,
					Type: schema.FieldType{
						Kind:   schema.KindMap,
						MapKey: &schema.FieldType{Kind: schema.KindPrimitive, Primitive: schema.TypeString},
					},
				}},
			},
		},
		{
			name: "struct_ref_without_name",
			desc: &schema.StructDescriptor{
				Name:   "S",
				Fields: []*schema.FieldDescriptor{{Name: "a", ID: 1, Type: schema.FieldType{Kind: schema.KindStruct}}},
			},
		},
		{
			name: "nested_element_invalid",
			desc: &schema.StructDescriptor{
				Name:   "S",
				Fields: []*schema.FieldDescriptor{{Name: "a", ID: 1, Type: List(List(Primitive("nope")))}},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRegistry()
			err := r.RegisterStruct(tc.desc)
			require.Error(t, err)
			assert.IsType(t, &SchemaError{}, err)
		})
	}
}

func TestRegisterStruct_DuplicateName(t *testing.T) {
	r := NewRegistry()
	desc := &schema.StructDescriptor{
		Name:   "S",
		Fields: []*schema.FieldDescriptor{{Name: "a", ID: 1, Type: Primitive(schema.TypeI32)}},
	}
	require.NoError(t, r.RegisterStruct(desc))

	err := r.RegisterStruct(desc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegisterEnum(t *testing.T) {
	r := NewRegistry()

	enum := &schema.Enum{
		Name: "Color",
		Values: []*schema.EnumValue{
			{Name: "RED", Number: 0},
			{Name: "GREEN", Number: 1},
			{Name: "BLUE", Number: 2},
		},
	}
	require.NoError(t, r.RegisterEnum(enum))

	got, err := r.GetEnum("Color")
	require.NoError(t, err)
	assert.Same(t, enum, got)

	n, ok := got.NumberByName("GREEN")
	assert.True(t, ok)
	assert.Equal(t, int32(1), n)

	name, ok := got.NameByNumber(2)
	assert.True(t, ok)
	assert.Equal(t, "BLUE", name)

	_, ok = got.NameByNumber(99)
	assert.False(t, ok)

	assert.Equal(t, []string{"Color"}, r.ListEnums())
}

func TestRegisterEnum_Invalid(t *testing.T) {
	r := NewRegistry()

	require.Error(t, r.RegisterEnum(&schema.Enum{}))

	require.NoError(t, r.RegisterEnum(&schema.Enum{Name: "E", Values: []*schema.EnumValue{{Name: "A"}}}))
	err := r.RegisterEnum(&schema.Enum{Name: "E"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")

	err = r.RegisterEnum(&schema.Enum{
		Name:   "F",
		Values: []*schema.EnumValue{{Name: "A", Number: 0}, {Name: "A", Number: 1}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestGet_NotFound(t *testing.T) {
	r := NewRegistry()

	_, err := r.GetStruct("Nope")
	assert.Error(t, err)

	_, err = r.GetEnum("Nope")
	assert.Error(t, err)
}

func TestSchemaError_Message(t *testing.T) {
	withField := &SchemaError{Struct: "User", Field: "id", Reason: "bad id"}
	assert.Equal(t, "schema registration failed for User.id: bad id", withField.Error())

	withoutField := &SchemaError{Struct: "User", Reason: "no fields"}
	assert.Equal(t, "schema registration failed for User: no fields", withoutField.Error())
}

func TestStructBuilder(t *testing.T) {
	r := NewRegistry()

	err := NewStructBuilder("Order").
		Field("id", Primitive(schema.TypeI64)).
		Field("customer", StructRef("Customer")).
		OptionalField("note", Primitive(schema.TypeString)).
		DefaultField("priority", Primitive(schema.TypeI32), int32(3)).
		Field("items", List(StructRef("Item"))).
		Field("labels", Map(Primitive(schema.TypeString), Primitive(schema.TypeString))).
		Register(r)
	require.NoError(t, err)

	desc, err := r.GetStruct("Order")
	require.NoError(t, err)
	require.Len(t, desc.Fields, 6)

	// ids are assigned from declaration order, contiguous from 1
	for i, field := range desc.Fields {
		assert.Equal(t, int16(i+1), field.ID, "field %s", field.Name)
	}

	note := desc.FieldByID(3)
	require.NotNil(t, note)
	assert.True(t, note.Optional)
	assert.Nil(t, note.Default)

	priority := desc.FieldByID(4)
	require.NotNil(t, priority)
	assert.True(t, priority.Optional)
	assert.Equal(t, int32(3), priority.Default)

	assert.False(t, desc.UseLongHeaders())
	assert.Nil(t, desc.FieldByID(7))
}

func TestStructBuilder_LongHeaderThreshold(t *testing.T) {
	wide := NewStructBuilder("Wide")
	for i := 0; i < 16; i++ {
		wide.Field(string(rune('a'+i)), Primitive(schema.TypeBool))
	}
	assert.True(t, wide.Build().UseLongHeaders())

	narrow := NewStructBuilder("Narrow")
	for i := 0; i < 15; i++ {
		narrow.Field(string(rune('a'+i)), Primitive(schema.TypeBool))
	}
	assert.False(t, narrow.Build().UseLongHeaders())
}
