package wire

import (
	"fmt"

	"github.com/anirudhraja/thriftlite/schema"
)

// maxSkipDepth bounds recursion while skip-decoding unknown nested
// containers/structs so corrupt input cannot exhaust the stack.
const maxSkipDepth = 64

// StructDecoder handles struct decoding operations
type StructDecoder struct {
	decoder *Decoder
}

// StructEncoder handles struct encoding operations
type StructEncoder struct {
	encoder *Encoder
}

// NewStructDecoder creates a new struct decoder
func NewStructDecoder(d *Decoder) *StructDecoder {
	return &StructDecoder{decoder: d}
}

// NewStructEncoder creates a new struct encoder
func NewStructEncoder(e *Encoder) *StructEncoder {
	return &StructEncoder{encoder: e}
}

// ===== ENCODER =====

// EncodeStruct writes the present fields of data in declaration order,
// followed by the stop byte. Nested structs recurse inline with their own
// last-field-id.
func (se *StructEncoder) EncodeStruct(data map[string]interface{}, desc *schema.StructDescriptor) error {
	fe := NewFieldEncoder(se.encoder, desc.UseLongHeaders())

	for _, field := range desc.Fields {
		value, present := data[field.Name]
		if !present || value == nil {
			if field.Optional {
				// omitted entirely, no tombstone; last-field-id stays put
				continue
			}
			if field.Default != nil {
				value = field.Default
			} else {
				return wrapWithField(fmt.Errorf("missing required field"), field.Name)
			}
		}

		wireType, ok := WireTypeFor(&field.Type)
		if !ok {
			return wrapWithField(fmt.Errorf("no wire mapping for kind %s", field.Type.Kind), field.Name)
		}

		// bool fields carry the value in the tag itself
		if wireType == WireBoolTrue {
			b, isBool := value.(bool)
			if !isBool {
				return wrapWithField(fmt.Errorf("bool field requires bool value, got %T", value), field.Name)
			}
			if !b {
				wireType = WireBoolFalse
			}
			if err := fe.EncodeFieldBegin(field.ID, wireType); err != nil {
				return wrapWithField(err, field.Name)
			}
			continue
		}

		if err := fe.EncodeFieldBegin(field.ID, wireType); err != nil {
			return wrapWithField(err, field.Name)
		}
		if err := se.encodeValue(value, &field.Type); err != nil {
			return wrapWithField(err, field.Name)
		}
	}

	fe.EncodeStop()
	return nil
}

// encodeValue writes one value (outside the bool-as-tag special case) per its
// wire-type rules.
func (se *StructEncoder) encodeValue(value interface{}, ft *schema.FieldType) error {
	switch ft.Kind {
	case schema.KindPrimitive:
		return se.encodePrimitive(value, ft.Primitive)
	case schema.KindEnum:
		return se.encodeEnum(value, ft.EnumType)
	case schema.KindStruct:
		return se.encodeNestedStruct(value, ft.StructType)
	case schema.KindList, schema.KindSet:
		return se.encodeListOrSet(value, ft)
	case schema.KindMap:
		return se.encodeMap(value, ft)
	default:
		return fmt.Errorf("unsupported field kind: %s", ft.Kind)
	}
}

// encodePrimitive writes a scalar. Bool reaches here only as a container
// element, where it needs a value byte (1=true, 2=false) since there is no
// tag to carry it.
func (se *StructEncoder) encodePrimitive(value interface{}, primitive schema.PrimitiveType) error {
	switch primitive {
	case schema.TypeBool:
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("bool value must be bool, got %T", value)
		}
		if b {
			se.encoder.buf = append(se.encoder.buf, byte(WireBoolTrue))
		} else {
			se.encoder.buf = append(se.encoder.buf, byte(WireBoolFalse))
		}
		return nil
	case schema.TypeByte:
		v, ok := value.(int8)
		if !ok {
			return fmt.Errorf("byte value must be int8, got %T", value)
		}
		fe := NewFixedEncoder(se.encoder)
		fe.EncodeByte(v)
		return nil
	case schema.TypeI16:
		v, ok := value.(int16)
		if !ok {
			return fmt.Errorf("i16 value must be int16, got %T", value)
		}
		ve := NewVarintEncoder(se.encoder)
		ve.EncodeZigzag16(v)
		return nil
	case schema.TypeI32:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("i32 value must be int32, got %T", value)
		}
		ve := NewVarintEncoder(se.encoder)
		ve.EncodeZigzag32(v)
		return nil
	case schema.TypeI64:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("i64 value must be int64, got %T", value)
		}
		ve := NewVarintEncoder(se.encoder)
		ve.EncodeZigzag64(v)
		return nil
	case schema.TypeDouble:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("double value must be float64, got %T", value)
		}
		fe := NewFixedEncoder(se.encoder)
		fe.EncodeDouble(v)
		return nil
	case schema.TypeString:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("string value must be string, got %T", value)
		}
		be := NewBytesEncoder(se.encoder)
		be.EncodeString(v)
		return nil
	case schema.TypeBinary:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("binary value must be []byte, got %T", value)
		}
		be := NewBytesEncoder(se.encoder)
		be.EncodeBytes(v)
		return nil
	default:
		return fmt.Errorf("unsupported primitive type: %s", primitive)
	}
}

// encodeEnum writes an enum value as zigzag-varint i32. Accepts the value
// name (resolved through the registry) or a raw int32 number.
func (se *StructEncoder) encodeEnum(value interface{}, enumType string) error {
	var number int32
	switch v := value.(type) {
	case int32:
		number = v
	case string:
		if se.encoder.registry == nil {
			return fmt.Errorf("registry is required to encode enum %s by name", enumType)
		}
		enum, err := se.encoder.registry.GetEnum(enumType)
		if err != nil {
			return err
		}
		n, ok := enum.NumberByName(v)
		if !ok {
			return fmt.Errorf("unknown value %q for enum %s", v, enumType)
		}
		number = n
	default:
		return fmt.Errorf("enum value must be string or int32, got %T", value)
	}

	ve := NewVarintEncoder(se.encoder)
	ve.EncodeZigzag32(number)
	return nil
}

// encodeNestedStruct writes a nested struct inline; it terminates with its
// own stop byte, no length prefix.
func (se *StructEncoder) encodeNestedStruct(value interface{}, structType string) error {
	data, ok := value.(map[string]interface{})
	if !ok {
		return fmt.Errorf("struct value must be map[string]interface{}, got %T", value)
	}

	if se.encoder.registry == nil {
		return fmt.Errorf("registry is required to encode struct %s", structType)
	}
	desc, err := se.encoder.registry.GetStruct(structType)
	if err != nil {
		return err
	}

	nested := NewStructEncoder(se.encoder)
	return nested.EncodeStruct(data, desc)
}

// encodeListOrSet writes a count/elem-type preamble and then the elements
// back to back.
func (se *StructEncoder) encodeListOrSet(value interface{}, ft *schema.FieldType) error {
	slice, err := toInterfaceSlice(value)
	if err != nil {
		return err
	}

	elemType, ok := WireTypeFor(ft.Element)
	if !ok {
		return fmt.Errorf("no wire mapping for element kind %s", ft.Element.Kind)
	}

	ce := NewContainerEncoder(se.encoder)
	ce.EncodeListBegin(elemType, len(slice))

	for i, element := range slice {
		if err := se.encodeValue(element, ft.Element); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

// encodeMap writes a count preamble (plus a key/value type byte when
// non-empty) followed by the entries.
func (se *StructEncoder) encodeMap(value interface{}, ft *schema.FieldType) error {
	mapData, err := toInterfaceMap(value)
	if err != nil {
		return err
	}

	keyType, ok := WireTypeFor(ft.MapKey)
	if !ok {
		return fmt.Errorf("no wire mapping for map key kind %s", ft.MapKey.Kind)
	}
	valueType, ok := WireTypeFor(ft.MapValue)
	if !ok {
		return fmt.Errorf("no wire mapping for map value kind %s", ft.MapValue.Kind)
	}

	ce := NewContainerEncoder(se.encoder)
	ce.EncodeMapBegin(keyType, valueType, len(mapData))

	for k, v := range mapData {
		if err := se.encodeValue(k, ft.MapKey); err != nil {
			return fmt.Errorf("map key %v: %w", k, err)
		}
		if err := se.encodeValue(v, ft.MapValue); err != nil {
			return fmt.Errorf("map value for key %v: %w", k, err)
		}
	}
	return nil
}

// ===== DECODER =====

// DecodeStruct drives the reader state machine over one struct instance:
// schema fields are matched against the wire in order, unmatched schema
// fields come back absent, and trailing wire fields unknown to the schema are
// skipped generically.
func (sd *StructDecoder) DecodeStruct(desc *schema.StructDescriptor) (map[string]interface{}, error) {
	result := make(map[string]interface{})

	fd := NewFieldDecoder(sd.decoder)
	var state StructReadState
	if err := fd.Next(&state); err != nil {
		return nil, err
	}

	for _, field := range desc.Fields {
		if state.Terminal || state.FieldID != field.ID {
			// absent: the pending header stays cached for the next field
			if field.Default != nil {
				result[field.Name] = field.Default
			}
			continue
		}

		value, err := sd.decodeFieldValue(&field.Type, state.Type)
		if err != nil {
			return nil, wrapWithField(err, field.Name)
		}
		result[field.Name] = value

		if err := fd.Next(&state); err != nil {
			return nil, wrapWithField(err, field.Name)
		}
	}

	// wire fields no schema field claimed; skipping them one header at a
	// time is what keeps old readers compatible with newer writers
	var unknown []RawField
	for !state.Terminal {
		if sd.decoder.config.CaptureUnknownFields {
			value, err := sd.decodeGenericValue(state.Type, 0)
			if err != nil {
				return nil, err
			}
			unknown = append(unknown, RawField{ID: state.FieldID, Type: state.Type, Value: value})
		} else {
			if err := sd.skipFieldValue(state.Type, 0); err != nil {
				return nil, err
			}
		}
		if err := fd.Next(&state); err != nil {
			return nil, err
		}
	}
	if len(unknown) > 0 {
		result[UnknownFieldsKey] = unknown
	}

	return result, nil
}

// decodeFieldValue decodes a matched field. The wire tag must agree with the
// schema's expectation; a mismatch on a matched id is corrupt input.
func (sd *StructDecoder) decodeFieldValue(ft *schema.FieldType, wireType WireType) (interface{}, error) {
	expected, ok := WireTypeFor(ft)
	if !ok {
		return nil, fmt.Errorf("no wire mapping for kind %s", ft.Kind)
	}

	if expected == WireBoolTrue {
		if !wireType.IsBool() {
			return nil, fmt.Errorf("expected bool tag, found %s", wireType)
		}
		return wireType == WireBoolTrue, nil
	}
	if wireType != expected {
		return nil, fmt.Errorf("expected tag %s, found %s", expected, wireType)
	}

	switch ft.Kind {
	case schema.KindPrimitive:
		return sd.decodePrimitive(ft.Primitive)
	case schema.KindEnum:
		return sd.decodeEnum(ft.EnumType)
	case schema.KindStruct:
		return sd.decodeNestedStruct(ft.StructType)
	case schema.KindList, schema.KindSet:
		return sd.decodeListOrSet(ft)
	case schema.KindMap:
		return sd.decodeMap(ft)
	default:
		return nil, fmt.Errorf("unsupported field kind: %s", ft.Kind)
	}
}

// decodePrimitive decodes a scalar value. Bool reaches here only as a
// container element with its one value byte.
func (sd *StructDecoder) decodePrimitive(primitive schema.PrimitiveType) (interface{}, error) {
	switch primitive {
	case schema.TypeBool:
		fd := NewFixedDecoder(sd.decoder)
		b, err := fd.DecodeByte()
		if err != nil {
			return nil, err
		}
		return b == int8(WireBoolTrue), nil
	case schema.TypeByte:
		fd := NewFixedDecoder(sd.decoder)
		return fd.DecodeByte()
	case schema.TypeI16:
		vd := NewVarintDecoder(sd.decoder)
		return vd.DecodeZigzag16()
	case schema.TypeI32:
		vd := NewVarintDecoder(sd.decoder)
		return vd.DecodeZigzag32()
	case schema.TypeI64:
		vd := NewVarintDecoder(sd.decoder)
		return vd.DecodeZigzag64()
	case schema.TypeDouble:
		fd := NewFixedDecoder(sd.decoder)
		return fd.DecodeDouble()
	case schema.TypeString:
		bd := NewBytesDecoder(sd.decoder)
		return bd.DecodeString()
	case schema.TypeBinary:
		bd := NewBytesDecoder(sd.decoder)
		return bd.DecodeBytes()
	default:
		return nil, fmt.Errorf("unsupported primitive type: %s", primitive)
	}
}

// decodeEnum reads a zigzag i32 and surfaces the value name. Unknown numbers
// fail unless the compat toggle allows numeric passthrough.
func (sd *StructDecoder) decodeEnum(enumType string) (interface{}, error) {
	vd := NewVarintDecoder(sd.decoder)
	number, err := vd.DecodeZigzag32()
	if err != nil {
		return nil, err
	}

	if sd.decoder.registry == nil {
		return number, nil
	}
	enum, err := sd.decoder.registry.GetEnum(enumType)
	if err != nil {
		return nil, err
	}
	if name, ok := enum.NameByNumber(number); ok {
		return name, nil
	}
	if sd.decoder.config.AllowUnknownEnumNumberDecode {
		return number, nil
	}
	return nil, fmt.Errorf("unknown enum number %d for enum %s", number, enumType)
}

// decodeNestedStruct decodes an inline nested struct. Each nested struct gets
// its own fresh header state. Without a descriptor the fields are surfaced
// generically.
func (sd *StructDecoder) decodeNestedStruct(structType string) (interface{}, error) {
	if sd.decoder.registry == nil {
		nested := NewStructDecoder(sd.decoder)
		return nested.decodeGenericBody(0)
	}
	desc, err := sd.decoder.registry.GetStruct(structType)
	if err != nil {
		nested := NewStructDecoder(sd.decoder)
		return nested.decodeGenericBody(0)
	}

	nested := NewStructDecoder(sd.decoder)
	return nested.DecodeStruct(desc)
}

// decodeListOrSet decodes a list/set preamble and its elements.
func (sd *StructDecoder) decodeListOrSet(ft *schema.FieldType) (interface{}, error) {
	cd := NewContainerDecoder(sd.decoder)
	elemType, count, err := cd.DecodeListBegin()
	if err != nil {
		return nil, err
	}

	expected, ok := WireTypeFor(ft.Element)
	if !ok {
		return nil, fmt.Errorf("no wire mapping for element kind %s", ft.Element.Kind)
	}
	if expected == WireBoolTrue {
		if !elemType.IsBool() {
			return nil, fmt.Errorf("expected bool element tag, found %s", elemType)
		}
	} else if elemType != expected {
		return nil, fmt.Errorf("expected element tag %s, found %s", expected, elemType)
	}

	result := make([]interface{}, 0, count)
	for i := 0; i < count; i++ {
		value, err := sd.decodeContainerValue(ft.Element)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		result = append(result, value)
	}
	return result, nil
}

// decodeMap decodes a map preamble and its entries.
func (sd *StructDecoder) decodeMap(ft *schema.FieldType) (interface{}, error) {
	cd := NewContainerDecoder(sd.decoder)
	keyType, valueType, count, err := cd.DecodeMapBegin()
	if err != nil {
		return nil, err
	}

	result := make(map[interface{}]interface{}, count)
	if count == 0 {
		return result, nil
	}

	expectedKey, ok := WireTypeFor(ft.MapKey)
	if !ok {
		return nil, fmt.Errorf("no wire mapping for map key kind %s", ft.MapKey.Kind)
	}
	expectedValue, ok := WireTypeFor(ft.MapValue)
	if !ok {
		return nil, fmt.Errorf("no wire mapping for map value kind %s", ft.MapValue.Kind)
	}
	if !tagsAgree(expectedKey, keyType) {
		return nil, fmt.Errorf("expected map key tag %s, found %s", expectedKey, keyType)
	}
	if !tagsAgree(expectedValue, valueType) {
		return nil, fmt.Errorf("expected map value tag %s, found %s", expectedValue, valueType)
	}

	for i := 0; i < count; i++ {
		key, err := sd.decodeContainerValue(ft.MapKey)
		if err != nil {
			return nil, fmt.Errorf("map key %d: %w", i, err)
		}
		value, err := sd.decodeContainerValue(ft.MapValue)
		if err != nil {
			return nil, fmt.Errorf("map value %d: %w", i, err)
		}
		result[key] = value
	}
	return result, nil
}

// decodeContainerValue decodes one container element/key/value; unlike struct
// fields there is no per-element header, the type came from the preamble.
func (sd *StructDecoder) decodeContainerValue(ft *schema.FieldType) (interface{}, error) {
	switch ft.Kind {
	case schema.KindPrimitive:
		return sd.decodePrimitive(ft.Primitive)
	case schema.KindEnum:
		return sd.decodeEnum(ft.EnumType)
	case schema.KindStruct:
		return sd.decodeNestedStruct(ft.StructType)
	case schema.KindList, schema.KindSet:
		return sd.decodeListOrSet(ft)
	case schema.KindMap:
		return sd.decodeMap(ft)
	default:
		return nil, fmt.Errorf("unsupported field kind: %s", ft.Kind)
	}
}

// ===== SKIP ENGINE =====

// SkipStruct discards an entire struct the cursor is positioned at, down to
// its stop byte, using only wire information.
func (sd *StructDecoder) SkipStruct() error {
	return sd.skipStructBody(0)
}

func (sd *StructDecoder) skipStructBody(depth int) error {
	if depth > maxSkipDepth {
		return fmt.Errorf("skip recursion deeper than %d levels: %w", maxSkipDepth, ErrUnknownWireType)
	}

	fd := NewFieldDecoder(sd.decoder)
	var state StructReadState
	for {
		if err := fd.Next(&state); err != nil {
			return err
		}
		if state.Terminal {
			return nil
		}
		if err := sd.skipFieldValue(state.Type, depth); err != nil {
			return err
		}
	}
}

// skipFieldValue skips the value bytes of a struct field. Bool fields have
// none; the tag already was the value.
func (sd *StructDecoder) skipFieldValue(t WireType, depth int) error {
	if t.IsBool() {
		return nil
	}
	return sd.skipElement(t, depth)
}

// skipElement skips one value in a context where bools occupy a byte
// (container elements, map keys/values).
func (sd *StructDecoder) skipElement(t WireType, depth int) error {
	if depth > maxSkipDepth {
		return fmt.Errorf("skip recursion deeper than %d levels: %w", maxSkipDepth, ErrUnknownWireType)
	}

	d := sd.decoder
	switch t {
	case WireBoolTrue, WireBoolFalse, WireByte:
		if d.pos >= len(d.buf) {
			return ErrUnexpectedEOF
		}
		d.pos++
		return nil
	case WireI16, WireI32, WireI64:
		vd := NewVarintDecoder(d)
		return vd.SkipVarint()
	case WireDouble:
		if d.pos+8 > len(d.buf) {
			return ErrUnexpectedEOF
		}
		d.pos += 8
		return nil
	case WireBinary:
		bd := NewBytesDecoder(d)
		return bd.SkipBytes()
	case WireList, WireSet:
		cd := NewContainerDecoder(d)
		elemType, count, err := cd.DecodeListBegin()
		if err != nil {
			return err
		}
		for i := 0; i < count; i++ {
			if err := sd.skipElement(elemType, depth+1); err != nil {
				return err
			}
		}
		return nil
	case WireMap:
		cd := NewContainerDecoder(d)
		keyType, valueType, count, err := cd.DecodeMapBegin()
		if err != nil {
			return err
		}
		for i := 0; i < count; i++ {
			if err := sd.skipElement(keyType, depth+1); err != nil {
				return err
			}
			if err := sd.skipElement(valueType, depth+1); err != nil {
				return err
			}
		}
		return nil
	case WireStruct:
		return sd.skipStructBody(depth + 1)
	default:
		return fmt.Errorf("cannot skip tag %d: %w", t, ErrUnknownWireType)
	}
}

// ===== GENERIC (SCHEMA-LESS) DECODE =====

// DecodeGenericStruct decodes the struct at the cursor without any
// descriptor, surfacing each field with the id and type from its header.
func (sd *StructDecoder) DecodeGenericStruct() ([]RawField, error) {
	return sd.decodeGenericBody(0)
}

func (sd *StructDecoder) decodeGenericBody(depth int) ([]RawField, error) {
	if depth > maxSkipDepth {
		return nil, fmt.Errorf("decode recursion deeper than %d levels: %w", maxSkipDepth, ErrUnknownWireType)
	}

	fields := make([]RawField, 0)
	fd := NewFieldDecoder(sd.decoder)
	var state StructReadState
	for {
		if err := fd.Next(&state); err != nil {
			return nil, err
		}
		if state.Terminal {
			return fields, nil
		}
		value, err := sd.decodeGenericValue(state.Type, depth)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", state.FieldID, err)
		}
		fields = append(fields, RawField{ID: state.FieldID, Type: state.Type, Value: value})
	}
}

// decodeGenericValue decodes the value bytes of a struct field using only its
// wire type. Bool fields contribute no bytes; the tag is the value.
func (sd *StructDecoder) decodeGenericValue(t WireType, depth int) (interface{}, error) {
	if t.IsBool() {
		return t == WireBoolTrue, nil
	}
	return sd.decodeGenericElement(t, depth)
}

// decodeGenericElement decodes one element-position value by wire shape.
func (sd *StructDecoder) decodeGenericElement(t WireType, depth int) (interface{}, error) {
	if depth > maxSkipDepth {
		return nil, fmt.Errorf("decode recursion deeper than %d levels: %w", maxSkipDepth, ErrUnknownWireType)
	}

	switch t {
	case WireBoolTrue, WireBoolFalse:
		fd := NewFixedDecoder(sd.decoder)
		b, err := fd.DecodeByte()
		if err != nil {
			return nil, err
		}
		return b == int8(WireBoolTrue), nil
	case WireByte:
		fd := NewFixedDecoder(sd.decoder)
		return fd.DecodeByte()
	case WireI16:
		vd := NewVarintDecoder(sd.decoder)
		return vd.DecodeZigzag16()
	case WireI32:
		vd := NewVarintDecoder(sd.decoder)
		return vd.DecodeZigzag32()
	case WireI64:
		vd := NewVarintDecoder(sd.decoder)
		return vd.DecodeZigzag64()
	case WireDouble:
		fd := NewFixedDecoder(sd.decoder)
		return fd.DecodeDouble()
	case WireBinary:
		bd := NewBytesDecoder(sd.decoder)
		return bd.DecodeBytes()
	case WireList, WireSet:
		cd := NewContainerDecoder(sd.decoder)
		elemType, count, err := cd.DecodeListBegin()
		if err != nil {
			return nil, err
		}
		elements := make([]interface{}, 0, count)
		for i := 0; i < count; i++ {
			element, err := sd.decodeGenericElement(elemType, depth+1)
			if err != nil {
				return nil, err
			}
			elements = append(elements, element)
		}
		return elements, nil
	case WireMap:
		cd := NewContainerDecoder(sd.decoder)
		keyType, valueType, count, err := cd.DecodeMapBegin()
		if err != nil {
			return nil, err
		}
		entries := make([]RawMapEntry, 0, count)
		for i := 0; i < count; i++ {
			key, err := sd.decodeGenericElement(keyType, depth+1)
			if err != nil {
				return nil, err
			}
			value, err := sd.decodeGenericElement(valueType, depth+1)
			if err != nil {
				return nil, err
			}
			entries = append(entries, RawMapEntry{Key: key, Value: value})
		}
		return entries, nil
	case WireStruct:
		return sd.decodeGenericBody(depth + 1)
	default:
		return nil, fmt.Errorf("tag %d: %w", t, ErrUnknownWireType)
	}
}

// ===== VALUE COERCION =====

// tagsAgree treats the two bool tags as one logical type when comparing a
// schema expectation against a preamble tag.
func tagsAgree(expected, found WireType) bool {
	if expected == WireBoolTrue {
		return found.IsBool()
	}
	return expected == found
}

// toInterfaceSlice widens the common typed slices callers hand in.
func toInterfaceSlice(value interface{}) ([]interface{}, error) {
	switch v := value.(type) {
	case []interface{}:
		return v, nil
	case []string:
		out := make([]interface{}, len(v))
		for i, e := range v {
			out[i] = e
		}
		return out, nil
	case []int16:
		out := make([]interface{}, len(v))
		for i, e := range v {
			out[i] = e
		}
		return out, nil
	case []int32:
		out := make([]interface{}, len(v))
		for i, e := range v {
			out[i] = e
		}
		return out, nil
	case []int64:
		out := make([]interface{}, len(v))
		for i, e := range v {
			out[i] = e
		}
		return out, nil
	case []float64:
		out := make([]interface{}, len(v))
		for i, e := range v {
			out[i] = e
		}
		return out, nil
	case []bool:
		out := make([]interface{}, len(v))
		for i, e := range v {
			out[i] = e
		}
		return out, nil
	case [][]byte:
		out := make([]interface{}, len(v))
		for i, e := range v {
			out[i] = e
		}
		return out, nil
	case []map[string]interface{}:
		out := make([]interface{}, len(v))
		for i, e := range v {
			out[i] = e
		}
		return out, nil
	default:
		return nil, fmt.Errorf("list/set value must be a slice, got %T", value)
	}
}

// toInterfaceMap widens the common typed maps callers hand in.
func toInterfaceMap(value interface{}) (map[interface{}]interface{}, error) {
	switch v := value.(type) {
	case map[interface{}]interface{}:
		return v, nil
	case map[string]interface{}:
		out := make(map[interface{}]interface{}, len(v))
		for k, e := range v {
			out[k] = e
		}
		return out, nil
	case map[string]string:
		out := make(map[interface{}]interface{}, len(v))
		for k, e := range v {
			out[k] = e
		}
		return out, nil
	case map[string]int64:
		out := make(map[interface{}]interface{}, len(v))
		for k, e := range v {
			out[k] = e
		}
		return out, nil
	case map[int32]string:
		out := make(map[interface{}]interface{}, len(v))
		for k, e := range v {
			out[k] = e
		}
		return out, nil
	default:
		return nil, fmt.Errorf("map value must be a map, got %T", value)
	}
}
