package registry

import (
	"fmt"
	"sort"

	"github.com/anirudhraja/thriftlite/schema"
)

// Registry stores the immutable struct and enum descriptors. Descriptors are
// validated once at registration; after that the registry is read-only shared
// state, safe to use from any number of readers/writers concurrently as long
// as registration has finished.
type Registry struct {
	structs map[string]*schema.StructDescriptor // name -> descriptor
	enums   map[string]*schema.Enum             // name -> enum
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		structs: make(map[string]*schema.StructDescriptor),
		enums:   make(map[string]*schema.Enum),
	}
}

// SchemaError is a registration-time failure: a malformed descriptor never
// reaches the wire engine. It is never raised during read/write.
type SchemaError struct {
	Struct string // struct (or enum) being registered
	Field  string // offending field, if any
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("schema registration failed for %s.%s: %s", e.Struct, e.Field, e.Reason)
	}
	return fmt.Sprintf("schema registration failed for %s: %s", e.Struct, e.Reason)
}

// RegisterStruct validates and stores a descriptor. Ids must be the 1-based
// declaration positions (contiguous, strictly ascending by one) and every
// field type must have a wire mapping.
func (r *Registry) RegisterStruct(desc *schema.StructDescriptor) error {
	if desc.Name == "" {
		return &SchemaError{Struct: "(anonymous)", Reason: "struct name must not be empty"}
	}
	if _, exists := r.structs[desc.Name]; exists {
		return &SchemaError{Struct: desc.Name, Reason: "struct already registered"}
	}

	seen := make(map[string]struct{}, len(desc.Fields))
	for i, field := range desc.Fields {
		if field.Name == "" {
			return &SchemaError{Struct: desc.Name, Reason: fmt.Sprintf("field %d has no name", i+1)}
		}
		if _, dup := seen[field.Name]; dup {
			return &SchemaError{Struct: desc.Name, Field: field.Name, Reason: "duplicate field name"}
		}
		seen[field.Name] = struct{}{}

		if field.ID != int16(i+1) {
			return &SchemaError{
				Struct: desc.Name,
				Field:  field.Name,
				Reason: fmt.Sprintf("field id %d must equal declaration position %d", field.ID, i+1),
			}
		}
		if err := r.validateFieldType(desc.Name, field.Name, &field.Type); err != nil {
			return err
		}
	}

	r.structs[desc.Name] = desc
	return nil
}

// validateFieldType rejects types the wire type registry cannot map. Struct
// and enum references are checked for a name only; they may be registered in
// any order.
func (r *Registry) validateFieldType(structName, fieldName string, ft *schema.FieldType) error {
	switch ft.Kind {
	case schema.KindPrimitive:
		if !schema.IsKnownPrimitive(ft.Primitive) {
			return &SchemaError{
				Struct: structName,
				Field:  fieldName,
				Reason: fmt.Sprintf("primitive type %q has no wire mapping", ft.Primitive),
			}
		}
	case schema.KindStruct:
		if ft.StructType == "" {
			return &SchemaError{Struct: structName, Field: fieldName, Reason: "struct field is missing its struct type name"}
		}
	case schema.KindEnum:
		if ft.EnumType == "" {
			return &SchemaError{Struct: structName, Field: fieldName, Reason: "enum field is missing its enum type name"}
		}
	case schema.KindList, schema.KindSet:
		if ft.Element == nil {
			return &SchemaError{Struct: structName, Field: fieldName, Reason: "list/set field is missing its element type"}
		}
		return r.validateFieldType(structName, fieldName, ft.Element)
	case schema.KindMap:
		if ft.MapKey == nil || ft.MapValue == nil {
			return &SchemaError{Struct: structName, Field: fieldName, Reason: "map field is missing key or value type"}
		}
		if err := r.validateFieldType(structName, fieldName, ft.MapKey); err != nil {
			return err
		}
		return r.validateFieldType(structName, fieldName, ft.MapValue)
	default:
		return &SchemaError{
			Struct: structName,
			Field:  fieldName,
			Reason: fmt.Sprintf("kind %q has no wire mapping", ft.Kind),
		}
	}
	return nil
}

// RegisterEnum validates and stores an enum definition.
func (r *Registry) RegisterEnum(enum *schema.Enum) error {
	if enum.Name == "" {
		return &SchemaError{Struct: "(anonymous)", Reason: "enum name must not be empty"}
	}
	if _, exists := r.enums[enum.Name]; exists {
		return &SchemaError{Struct: enum.Name, Reason: "enum already registered"}
	}
	seen := make(map[string]struct{}, len(enum.Values))
	for _, v := range enum.Values {
		if v.Name == "" {
			return &SchemaError{Struct: enum.Name, Reason: "enum value has no name"}
		}
		if _, dup := seen[v.Name]; dup {
			return &SchemaError{Struct: enum.Name, Field: v.Name, Reason: "duplicate enum value name"}
		}
		seen[v.Name] = struct{}{}
	}

	r.enums[enum.Name] = enum
	return nil
}

// GetStruct retrieves a struct descriptor by name.
func (r *Registry) GetStruct(name string) (*schema.StructDescriptor, error) {
	if desc, exists := r.structs[name]; exists {
		return desc, nil
	}
	return nil, fmt.Errorf("struct not found: %s", name)
}

// GetEnum retrieves an enum definition by name.
func (r *Registry) GetEnum(name string) (*schema.Enum, error) {
	if enum, exists := r.enums[name]; exists {
		return enum, nil
	}
	return nil, fmt.Errorf("enum not found: %s", name)
}

// ListStructs returns all registered struct names, sorted.
func (r *Registry) ListStructs() []string {
	names := make([]string, 0, len(r.structs))
	for name := range r.structs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListEnums returns all registered enum names, sorted.
func (r *Registry) ListEnums() []string {
	names := make([]string, 0, len(r.enums))
	for name := range r.enums {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
