package wire

import (
	"encoding/binary"
	"math"
)

// FixedDecoder handles fixed-width decoding operations (i8, double).
type FixedDecoder struct {
	decoder *Decoder
}

// FixedEncoder handles fixed-width encoding operations (i8, double).
type FixedEncoder struct {
	encoder *Encoder
}

// NewFixedDecoder creates a new fixed decoder
func NewFixedDecoder(d *Decoder) *FixedDecoder {
	return &FixedDecoder{decoder: d}
}

// NewFixedEncoder creates a new fixed encoder
func NewFixedEncoder(e *Encoder) *FixedEncoder {
	return &FixedEncoder{encoder: e}
}

// DECODER METHODS

// DecodeByte decodes an i8 as one raw two's-complement byte.
func (fd *FixedDecoder) DecodeByte() (int8, error) {
	d := fd.decoder
	if d.pos >= len(d.buf) {
		return 0, ErrUnexpectedEOF
	}

	value := int8(d.buf[d.pos])
	d.pos++
	return value, nil
}

// DecodeDouble decodes 8 raw big-endian bytes as an IEEE-754 double.
func (fd *FixedDecoder) DecodeDouble() (float64, error) {
	d := fd.decoder
	if d.pos+8 > len(d.buf) {
		return 0, ErrUnexpectedEOF
	}

	bits := binary.BigEndian.Uint64(d.buf[d.pos:])
	d.pos += 8
	return math.Float64frombits(bits), nil
}

// ENCODER METHODS

// EncodeByte encodes an i8 as one raw byte.
func (fe *FixedEncoder) EncodeByte(v int8) {
	fe.encoder.buf = append(fe.encoder.buf, byte(v))
}

// EncodeDouble encodes an IEEE-754 double as 8 raw big-endian bytes.
func (fe *FixedEncoder) EncodeDouble(v float64) {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, math.Float64bits(v))
	fe.encoder.buf = append(fe.encoder.buf, buf...)
}
