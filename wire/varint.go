package wire

// VarintDecoder handles varint decoding operations
type VarintDecoder struct {
	decoder *Decoder
}

// VarintEncoder handles varint encoding operations
type VarintEncoder struct {
	encoder *Encoder
}

// NewVarintDecoder creates a new varint decoder
func NewVarintDecoder(d *Decoder) *VarintDecoder {
	return &VarintDecoder{decoder: d}
}

// NewVarintEncoder creates a new varint encoder
func NewVarintEncoder(e *Encoder) *VarintEncoder {
	return &VarintEncoder{encoder: e}
}

// maxVarintBytes bounds a 64-bit varint; a continuation bit still set after
// this many bytes means the stream is corrupt, not that the loop should keep
// going.
const maxVarintBytes = 10

// DECODER METHODS

// DecodeVarint decodes an unsigned LEB128 varint from the current position.
func (vd *VarintDecoder) DecodeVarint() (uint64, error) {
	d := vd.decoder

	var result uint64
	var shift uint

	for i := 0; i < maxVarintBytes; i++ {
		if d.pos >= len(d.buf) {
			return 0, ErrUnexpectedEOF
		}

		b := d.buf[d.pos]
		d.pos++

		if shift >= 64 {
			return 0, ErrMalformedVarint
		}

		result |= uint64(b&0x7F) << shift

		// MSB clear terminates the varint
		if (b & 0x80) == 0 {
			return result, nil
		}

		shift += 7
	}

	return 0, ErrMalformedVarint
}

// DecodeZigzag16 decodes a zigzag-encoded varint as int16 (i16 values and
// long-form field ids).
func (vd *VarintDecoder) DecodeZigzag16() (int16, error) {
	v, err := vd.DecodeVarint()
	if err != nil {
		return 0, err
	}
	return int16(DecodeZigZag64(v)), nil
}

// DecodeZigzag32 decodes a zigzag-encoded varint as int32
func (vd *VarintDecoder) DecodeZigzag32() (int32, error) {
	v, err := vd.DecodeVarint()
	if err != nil {
		return 0, err
	}
	return int32(DecodeZigZag64(v)), nil
}

// DecodeZigzag64 decodes a zigzag-encoded varint as int64
func (vd *VarintDecoder) DecodeZigzag64() (int64, error) {
	v, err := vd.DecodeVarint()
	if err != nil {
		return 0, err
	}
	return DecodeZigZag64(v), nil
}

// SkipVarint skips over a varint without decoding it
func (vd *VarintDecoder) SkipVarint() error {
	d := vd.decoder
	for i := 0; i < maxVarintBytes; i++ {
		if d.pos >= len(d.buf) {
			return ErrUnexpectedEOF
		}

		b := d.buf[d.pos]
		d.pos++

		if (b & 0x80) == 0 {
			return nil
		}
	}
	return ErrMalformedVarint
}

// ENCODER METHODS

// EncodeVarint encodes a uint64 as varint, returning the byte count.
func (ve *VarintEncoder) EncodeVarint(v uint64) int {
	n := 1
	for v >= 0x80 {
		ve.encoder.buf = append(ve.encoder.buf, byte(v)|0x80)
		v >>= 7
		n++
	}
	ve.encoder.buf = append(ve.encoder.buf, byte(v))
	return n
}

// EncodeZigzag16 encodes a signed int16 with zigzag encoding
func (ve *VarintEncoder) EncodeZigzag16(v int16) int {
	return ve.EncodeVarint(EncodeZigZag64(int64(v)))
}

// EncodeZigzag32 encodes a signed int32 with zigzag encoding
func (ve *VarintEncoder) EncodeZigzag32(v int32) int {
	return ve.EncodeVarint(EncodeZigZag64(int64(v)))
}

// EncodeZigzag64 encodes a signed int64 with zigzag encoding
func (ve *VarintEncoder) EncodeZigzag64(v int64) int {
	return ve.EncodeVarint(EncodeZigZag64(v))
}

// UTILITY FUNCTIONS

// DecodeZigZag64 decodes a zigzag-encoded 64-bit integer. Round-trip exact
// for the full signed range, including the minimum value.
func DecodeZigZag64(encoded uint64) int64 {
	return int64((encoded >> 1) ^ uint64(-int64(encoded&1)))
}

// EncodeZigZag64 encodes a signed 64-bit integer using zigzag encoding
func EncodeZigZag64(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63))
}

// VarintSize returns the number of bytes needed to encode the given varint
func VarintSize(v uint64) int {
	switch {
	case v < 1<<7:
		return 1
	case v < 1<<14:
		return 2
	case v < 1<<21:
		return 3
	case v < 1<<28:
		return 4
	case v < 1<<35:
		return 5
	case v < 1<<42:
		return 6
	case v < 1<<49:
		return 7
	case v < 1<<56:
		return 8
	case v < 1<<63:
		return 9
	default:
		return 10
	}
}

// Convenience methods for direct access (maintains backward compatibility)

// DecodeVarint - convenience method for main decoder
func (d *Decoder) DecodeVarint() (uint64, error) {
	vd := NewVarintDecoder(d)
	return vd.DecodeVarint()
}

// EncodeVarint - convenience method for main encoder
func (e *Encoder) EncodeVarint(v uint64) int {
	ve := NewVarintEncoder(e)
	return ve.EncodeVarint(v)
}
