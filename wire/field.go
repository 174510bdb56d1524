package wire

import (
	"fmt"
)

// Field headers pack a (field-id, wire-type) pair. Short form is one byte,
// `delta<<4 | tag`; long form is a zero high nibble plus the absolute id as a
// zigzag varint i16. The form is chosen once per struct type at registration
// time: structs with more than 15 declared fields use long form for every
// field. The single 0x00 stop byte terminates a struct's field list.

// StopByte terminates a struct's field list.
const StopByte = 0x00

// StructReadState caches the header of the next unread field. One state per
// struct instance being decoded; nested structs get their own.
type StructReadState struct {
	FieldID  int16    // id of the pending field, valid while !Terminal
	Type     WireType // wire type of the pending field
	Terminal bool     // stop byte observed
}

// FieldEncoder writes field headers for one struct instance. A fresh encoder
// is created per struct so nested structs restart their last-field-id at 0.
type FieldEncoder struct {
	encoder     *Encoder
	lastFieldID int16
	longForm    bool
}

// NewFieldEncoder creates a field header encoder. longForm applies to every
// header this struct writes.
func NewFieldEncoder(e *Encoder, longForm bool) *FieldEncoder {
	return &FieldEncoder{encoder: e, longForm: longForm}
}

// EncodeFieldBegin emits the header for a present field. Absent optional
// fields must not call this: last-field-id only advances for emitted headers.
func (fe *FieldEncoder) EncodeFieldBegin(id int16, t WireType) error {
	if fe.longForm {
		fe.encoder.buf = append(fe.encoder.buf, byte(t))
		// The absolute id is a zigzag varint padded to two bytes so every
		// long-form header occupies exactly three. Ids past 14 bits of
		// zigzag fall back to a minimal varint.
		z := EncodeZigZag64(int64(id))
		if z < 1<<14 {
			fe.encoder.buf = append(fe.encoder.buf, byte(z&0x7F)|0x80, byte(z>>7))
		} else {
			ve := NewVarintEncoder(fe.encoder)
			ve.EncodeVarint(z)
		}
		fe.lastFieldID = id
		return nil
	}

	delta := id - fe.lastFieldID
	if delta < 1 || delta > 15 {
		return fmt.Errorf("field id %d does not follow %d within a short-form nibble", id, fe.lastFieldID)
	}
	fe.encoder.buf = append(fe.encoder.buf, byte(delta)<<4|byte(t))
	fe.lastFieldID = id
	return nil
}

// EncodeStop emits the struct terminator.
func (fe *FieldEncoder) EncodeStop() {
	fe.encoder.buf = append(fe.encoder.buf, StopByte)
}

// FieldDecoder reads field headers for one struct instance, tracking the last
// field id for delta headers.
type FieldDecoder struct {
	decoder     *Decoder
	lastFieldID int16
}

// NewFieldDecoder creates a field header decoder.
func NewFieldDecoder(d *Decoder) *FieldDecoder {
	return &FieldDecoder{decoder: d}
}

// Next consumes one header and updates state. A stop byte flips state to
// terminal; otherwise the header's id and wire type become pending.
func (fd *FieldDecoder) Next(state *StructReadState) error {
	d := fd.decoder
	if d.pos >= len(d.buf) {
		return fmt.Errorf("field header at offset %d: %w", d.pos, ErrUnexpectedEOF)
	}

	b := d.buf[d.pos]
	d.pos++

	if b == StopByte {
		state.Terminal = true
		return nil
	}

	delta := int16(b >> 4)
	wireType := WireType(b & 0x0F)
	if !wireType.IsValid() || wireType == WireStop {
		return fmt.Errorf("field header at offset %d: tag %d: %w", d.pos-1, wireType, ErrUnknownWireType)
	}

	var fieldID int16
	if delta == 0 {
		// long form: absolute id follows as zigzag varint i16
		vd := NewVarintDecoder(d)
		id, err := vd.DecodeZigzag16()
		if err != nil {
			return fmt.Errorf("long-form field id: %w", err)
		}
		fieldID = id
	} else {
		fieldID = fd.lastFieldID + delta
	}

	fd.lastFieldID = fieldID
	state.FieldID = fieldID
	state.Type = wireType
	state.Terminal = false
	return nil
}
