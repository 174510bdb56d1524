package wire

import (
	"fmt"
)

// Container preambles are self-describing: list/set carry the element count
// and element wire type, maps carry an entry count and, when non-empty, a
// key/value type byte. Elements follow back to back with no extra framing.

// sizeNibbleEscape in a list/set preamble's high nibble means the real count
// follows as a plain varint.
const sizeNibbleEscape = 0x0F

// ContainerDecoder handles list/set/map preamble decoding operations
type ContainerDecoder struct {
	decoder *Decoder
}

// ContainerEncoder handles list/set/map preamble encoding operations
type ContainerEncoder struct {
	encoder *Encoder
}

// NewContainerDecoder creates a new container decoder
func NewContainerDecoder(d *Decoder) *ContainerDecoder {
	return &ContainerDecoder{decoder: d}
}

// NewContainerEncoder creates a new container encoder
func NewContainerEncoder(e *Encoder) *ContainerEncoder {
	return &ContainerEncoder{encoder: e}
}

// DECODER METHODS

// DecodeListBegin decodes a list/set preamble, returning the element wire
// type and count. The same shape serves both container tags.
func (cd *ContainerDecoder) DecodeListBegin() (WireType, int, error) {
	d := cd.decoder
	if d.pos >= len(d.buf) {
		return 0, 0, fmt.Errorf("list preamble at offset %d: %w", d.pos, ErrUnexpectedEOF)
	}

	b := d.buf[d.pos]
	d.pos++

	elemType := WireType(b & 0x0F)
	if !elemType.IsValid() || elemType == WireStop {
		return 0, 0, fmt.Errorf("list element tag %d at offset %d: %w", elemType, d.pos-1, ErrUnknownWireType)
	}

	count := int(b >> 4)
	if count == sizeNibbleEscape {
		vd := NewVarintDecoder(d)
		n, err := vd.DecodeVarint()
		if err != nil {
			return 0, 0, fmt.Errorf("list count: %w", err)
		}
		count = int(int32(n))
	}
	if count < 0 || count > d.Remaining() {
		// every element occupies at least one byte
		return 0, 0, fmt.Errorf("list count %d exceeds %d remaining bytes: %w", count, d.Remaining(), ErrUnexpectedEOF)
	}

	return elemType, count, nil
}

// DecodeMapBegin decodes a map preamble, returning key/value wire types and
// the entry count. An empty map has no type byte; the returned types are only
// meaningful when count > 0.
func (cd *ContainerDecoder) DecodeMapBegin() (WireType, WireType, int, error) {
	d := cd.decoder
	vd := NewVarintDecoder(d)
	n, err := vd.DecodeVarint()
	if err != nil {
		return 0, 0, 0, fmt.Errorf("map count: %w", err)
	}
	count := int(int32(n))
	if count == 0 {
		return WireStop, WireStop, 0, nil
	}
	if count < 0 || count > d.Remaining() {
		return 0, 0, 0, fmt.Errorf("map count %d exceeds %d remaining bytes: %w", count, d.Remaining(), ErrUnexpectedEOF)
	}

	if d.pos >= len(d.buf) {
		return 0, 0, 0, fmt.Errorf("map type byte at offset %d: %w", d.pos, ErrUnexpectedEOF)
	}
	b := d.buf[d.pos]
	d.pos++

	keyType := WireType(b >> 4)
	valueType := WireType(b & 0x0F)
	if !keyType.IsValid() || keyType == WireStop {
		return 0, 0, 0, fmt.Errorf("map key tag %d at offset %d: %w", keyType, d.pos-1, ErrUnknownWireType)
	}
	if !valueType.IsValid() || valueType == WireStop {
		return 0, 0, 0, fmt.Errorf("map value tag %d at offset %d: %w", valueType, d.pos-1, ErrUnknownWireType)
	}

	return keyType, valueType, count, nil
}

// ENCODER METHODS

// EncodeListBegin encodes a list/set preamble.
func (ce *ContainerEncoder) EncodeListBegin(elemType WireType, count int) {
	if count < sizeNibbleEscape {
		ce.encoder.buf = append(ce.encoder.buf, byte(count)<<4|byte(elemType))
		return
	}
	ce.encoder.buf = append(ce.encoder.buf, byte(sizeNibbleEscape)<<4|byte(elemType))
	ve := NewVarintEncoder(ce.encoder)
	ve.EncodeVarint(uint64(uint32(count)))
}

// EncodeMapBegin encodes a map preamble. Empty maps emit only the count.
func (ce *ContainerEncoder) EncodeMapBegin(keyType, valueType WireType, count int) {
	ve := NewVarintEncoder(ce.encoder)
	ve.EncodeVarint(uint64(uint32(count)))
	if count == 0 {
		return
	}
	ce.encoder.buf = append(ce.encoder.buf, byte(keyType)<<4|byte(valueType))
}
