package thriftlite

import (
	"fmt"
	"reflect"

	"github.com/anirudhraja/thriftlite/registry"
	"github.com/anirudhraja/thriftlite/schema"
	"github.com/anirudhraja/thriftlite/wire"
)

// ===== SCHEMA-AWARE API =====

// Thriftlite provides schema-aware compact-protocol operations without
// generated code: one generic engine driven by registered descriptors.
type Thriftlite struct {
	registry *registry.Registry
}

// New creates a new Thriftlite instance
func New() *Thriftlite {
	return &Thriftlite{
		registry: registry.NewRegistry(),
	}
}

// RegisterStruct registers a struct descriptor; ids must be the 1-based
// declaration positions (use registry.NewStructBuilder to get that for free).
func (t *Thriftlite) RegisterStruct(desc *schema.StructDescriptor) error {
	return t.registry.RegisterStruct(desc)
}

// RegisterEnum registers an enum definition.
func (t *Thriftlite) RegisterEnum(enum *schema.Enum) error {
	return t.registry.RegisterEnum(enum)
}

// Marshal encodes a map to compact-protocol bytes using the named struct's
// descriptor.
func (t *Thriftlite) Marshal(data map[string]interface{}, structType string) ([]byte, error) {
	desc, err := t.registry.GetStruct(structType)
	if err != nil {
		return nil, fmt.Errorf("struct type not found: %s", structType)
	}

	return wire.EncodeStruct(data, desc, t.registry)
}

// Parse decodes compact-protocol bytes using the named struct's descriptor.
func (t *Thriftlite) Parse(data []byte, structType string) (map[string]interface{}, error) {
	desc, err := t.registry.GetStruct(structType)
	if err != nil {
		return nil, fmt.Errorf("struct type not found: %s", structType)
	}

	return wire.DecodeStruct(data, desc, t.registry)
}

// Skip discards one entire record without a descriptor and returns the number
// of bytes it occupied; callers concatenating records use this to step over
// structs they have no schema for.
func (t *Thriftlite) Skip(data []byte) (int, error) {
	return wire.SkipStruct(data)
}

// Dump decodes one record without a descriptor into raw fields; ids and types
// come straight from the wire.
func (t *Thriftlite) Dump(data []byte) ([]wire.RawField, error) {
	fields, _, err := wire.DecodeGenericStruct(data)
	return fields, err
}

// Unmarshal decodes compact-protocol bytes into a Go struct using reflection.
// The struct's type name selects the descriptor.
func (t *Thriftlite) Unmarshal(data []byte, v interface{}) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("unmarshal target must be a pointer to struct")
	}

	structType := rv.Elem().Type().Name()
	result, err := t.Parse(data, structType)
	if err != nil {
		return err
	}

	return t.mapToStruct(result, rv.Elem())
}

// mapToStruct maps parsed result to struct fields. Fields match by name or by
// a `thrift` tag.
func (t *Thriftlite) mapToStruct(data map[string]interface{}, rv reflect.Value) error {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		fieldValue := rv.Field(i)

		if !fieldValue.CanSet() {
			continue
		}

		name := field.Name
		if tag, ok := field.Tag.Lookup("thrift"); ok && tag != "" {
			name = tag
		}

		if value, ok := data[name]; ok {
			if err := t.setFieldValue(fieldValue, value); err != nil {
				return fmt.Errorf("failed to set field %s: %v", field.Name, err)
			}
		}
	}
	return nil
}

// setFieldValue sets a struct field with type conversion
func (t *Thriftlite) setFieldValue(fieldValue reflect.Value, value interface{}) error {
	if value == nil {
		return nil
	}

	if nested, ok := value.(map[string]interface{}); ok && fieldValue.Kind() == reflect.Struct {
		return t.mapToStruct(nested, fieldValue)
	}

	if slice, ok := value.([]interface{}); ok && fieldValue.Kind() == reflect.Slice {
		out := reflect.MakeSlice(fieldValue.Type(), len(slice), len(slice))
		for i, element := range slice {
			if err := t.setFieldValue(out.Index(i), element); err != nil {
				return err
			}
		}
		fieldValue.Set(out)
		return nil
	}

	sourceValue := reflect.ValueOf(value)
	if sourceValue.Type().AssignableTo(fieldValue.Type()) {
		fieldValue.Set(sourceValue)
		return nil
	}

	if sourceValue.Type().ConvertibleTo(fieldValue.Type()) {
		fieldValue.Set(sourceValue.Convert(fieldValue.Type()))
		return nil
	}

	return fmt.Errorf("cannot convert %T to %s", value, fieldValue.Type())
}

// ===== REGISTRY ACCESS =====

func (t *Thriftlite) GetRegistry() *registry.Registry { return t.registry }
func (t *Thriftlite) ListStructs() []string           { return t.registry.ListStructs() }
func (t *Thriftlite) ListEnums() []string             { return t.registry.ListEnums() }
