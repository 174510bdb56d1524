package wire

import (
	"github.com/anirudhraja/thriftlite/registry"
	"github.com/anirudhraja/thriftlite/schema"
)

// Encoder is the write-side byte cursor. It owns no schema knowledge; the
// struct/container/varint codecs drive it. Not safe for concurrent use.
type Encoder struct {
	buf      []byte
	registry *registry.Registry
}

// NewEncoder creates a new wire format encoder
func NewEncoder() *Encoder {
	return &Encoder{
		buf: make([]byte, 0),
	}
}

// NewEncoderWithRegistry creates an encoder with schema registry
func NewEncoderWithRegistry(registry *registry.Registry) *Encoder {
	return &Encoder{
		buf:      make([]byte, 0),
		registry: registry,
	}
}

// Bytes returns the encoded bytes
func (e *Encoder) Bytes() []byte {
	return e.buf
}

// Len returns the number of bytes written so far.
func (e *Encoder) Len() int {
	return len(e.buf)
}

// Reset clears the encoder buffer so the cursor can be reused for the next
// record. Callers concatenating records on one cursor simply skip the Reset.
func (e *Encoder) Reset() {
	e.buf = e.buf[:0]
}

// EncodeStruct encodes one struct value using its descriptor - main entry
// point. Returns the encoded bytes.
func EncodeStruct(data map[string]interface{}, desc *schema.StructDescriptor, registry *registry.Registry) ([]byte, error) {
	encoder := NewEncoderWithRegistry(registry)
	se := NewStructEncoder(encoder)
	if err := se.EncodeStruct(data, desc); err != nil {
		return nil, err
	}
	return encoder.Bytes(), nil
}
