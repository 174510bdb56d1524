package wire

import (
	"fmt"

	"github.com/anirudhraja/thriftlite/registry"
	"github.com/anirudhraja/thriftlite/schema"
)

// Decoder is the read-side byte cursor: one buffer plus a position. A nested
// struct decodes inline on the same cursor with its own header state. Not safe
// for concurrent use.
type Decoder struct {
	buf      []byte
	pos      int
	registry *registry.Registry
	config   Config
}

// NewDecoder creates a new wire format decoder
func NewDecoder(data []byte) *Decoder {
	return &Decoder{
		buf: data,
		pos: 0,
	}
}

// NewDecoderWithRegistry creates a decoder with schema registry
func NewDecoderWithRegistry(data []byte, registry *registry.Registry) *Decoder {
	return &Decoder{
		buf:      data,
		pos:      0,
		registry: registry,
		config:   configFromEnv(),
	}
}

// SetConfig overrides the decode-behavior toggles for this cursor.
func (d *Decoder) SetConfig(cfg Config) {
	d.config = cfg
}

// Pos returns the number of bytes consumed so far.
func (d *Decoder) Pos() int {
	return d.pos
}

// Remaining returns the number of unread bytes.
func (d *Decoder) Remaining() int {
	return len(d.buf) - d.pos
}

// Seek repositions the cursor to the start of the buffer.
func (d *Decoder) Seek() {
	d.pos = 0
}

// DecodeStruct decodes compact-protocol bytes using a descriptor - main entry
// point.
func DecodeStruct(data []byte, desc *schema.StructDescriptor, registry *registry.Registry) (map[string]interface{}, error) {
	decoder := NewDecoderWithRegistry(data, registry)
	sd := NewStructDecoder(decoder)
	result, err := sd.DecodeStruct(desc)
	if err != nil {
		return nil, fmt.Errorf("failed to decode struct %s: %w", desc.Name, err)
	}
	return result, nil
}

// SkipStruct discards one entire struct without a descriptor and returns the
// number of bytes it occupied.
func SkipStruct(data []byte) (int, error) {
	decoder := NewDecoder(data)
	sd := NewStructDecoder(decoder)
	if err := sd.SkipStruct(); err != nil {
		return decoder.pos, err
	}
	return decoder.pos, nil
}

// DecodeGenericStruct decodes one struct without a descriptor, surfacing each
// field as a RawField. The read-side dual of SkipStruct.
func DecodeGenericStruct(data []byte) ([]RawField, int, error) {
	decoder := NewDecoder(data)
	sd := NewStructDecoder(decoder)
	fields, err := sd.DecodeGenericStruct()
	if err != nil {
		return nil, decoder.pos, err
	}
	return fields, decoder.pos, nil
}
