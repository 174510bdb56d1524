package wire

import (
	"bytes"
	"errors"
	"testing"
)

func TestFieldHeader_ShortForm(t *testing.T) {
	encoder := NewEncoder()
	fe := NewFieldEncoder(encoder, false)

	if err := fe.EncodeFieldBegin(1, WireI32); err != nil {
		t.Fatalf("EncodeFieldBegin: %v", err)
	}
	if err := fe.EncodeFieldBegin(2, WireList); err != nil {
		t.Fatalf("EncodeFieldBegin: %v", err)
	}
	fe.EncodeStop()

	want := []byte{0x15, 0x29, 0x00}
	if !bytes.Equal(encoder.Bytes(), want) {
		t.Fatalf("short-form headers = % x, want % x", encoder.Bytes(), want)
	}
}

func TestFieldHeader_ShortFormDeltaAfterOmission(t *testing.T) {
	// field 2 omitted by the writer: next emitted header carries delta 2
	encoder := NewEncoder()
	fe := NewFieldEncoder(encoder, false)

	if err := fe.EncodeFieldBegin(1, WireI32); err != nil {
		t.Fatalf("EncodeFieldBegin: %v", err)
	}
	if err := fe.EncodeFieldBegin(3, WireI64); err != nil {
		t.Fatalf("EncodeFieldBegin: %v", err)
	}

	want := []byte{0x15, 0x26}
	if !bytes.Equal(encoder.Bytes(), want) {
		t.Fatalf("headers = % x, want % x", encoder.Bytes(), want)
	}

	decoder := NewDecoder(append(encoder.Bytes(), StopByte))
	fd := NewFieldDecoder(decoder)
	var state StructReadState

	if err := fd.Next(&state); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if state.FieldID != 1 || state.Type != WireI32 {
		t.Fatalf("first header: id=%d type=%s", state.FieldID, state.Type)
	}
	if err := fd.Next(&state); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if state.FieldID != 3 || state.Type != WireI64 {
		t.Fatalf("second header: id=%d type=%s", state.FieldID, state.Type)
	}
	if err := fd.Next(&state); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if !state.Terminal {
		t.Fatal("expected terminal state after stop byte")
	}
}

func TestFieldHeader_LongForm(t *testing.T) {
	encoder := NewEncoder()
	fe := NewFieldEncoder(encoder, true)

	if err := fe.EncodeFieldBegin(1, WireI32); err != nil {
		t.Fatalf("EncodeFieldBegin: %v", err)
	}
	if err := fe.EncodeFieldBegin(16, WireBinary); err != nil {
		t.Fatalf("EncodeFieldBegin: %v", err)
	}

	// every long-form header is 3 bytes: tag, then the id as a 2-byte
	// zigzag varint (padded)
	want := []byte{
		0x05, 0x82, 0x00, // id 1, zigzag 2
		0x08, 0xA0, 0x00, // id 16, zigzag 32
	}
	if !bytes.Equal(encoder.Bytes(), want) {
		t.Fatalf("long-form headers = % x, want % x", encoder.Bytes(), want)
	}

	decoder := NewDecoder(encoder.Bytes())
	fd := NewFieldDecoder(decoder)
	var state StructReadState

	if err := fd.Next(&state); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if state.FieldID != 1 || state.Type != WireI32 {
		t.Fatalf("first header: id=%d type=%s", state.FieldID, state.Type)
	}
	if err := fd.Next(&state); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if state.FieldID != 16 || state.Type != WireBinary {
		t.Fatalf("second header: id=%d type=%s", state.FieldID, state.Type)
	}
}

func TestFieldHeader_UnknownTag(t *testing.T) {
	// low nibble 13..15 is outside the defined table
	for _, b := range []byte{0x1D, 0x1E, 0x1F} {
		decoder := NewDecoder([]byte{b})
		fd := NewFieldDecoder(decoder)
		var state StructReadState
		if err := fd.Next(&state); !errors.Is(err, ErrUnknownWireType) {
			t.Errorf("header %#x: expected ErrUnknownWireType, got %v", b, err)
		}
	}
}

func TestFieldHeader_ZeroTagWithDelta(t *testing.T) {
	// delta nibble set but tag nibble 0: stop is not a field type
	decoder := NewDecoder([]byte{0x10})
	fd := NewFieldDecoder(decoder)
	var state StructReadState
	if err := fd.Next(&state); !errors.Is(err, ErrUnknownWireType) {
		t.Errorf("expected ErrUnknownWireType, got %v", err)
	}
}

func TestFieldHeader_TruncatedInput(t *testing.T) {
	t.Run("no_header", func(t *testing.T) {
		decoder := NewDecoder(nil)
		fd := NewFieldDecoder(decoder)
		var state StructReadState
		if err := fd.Next(&state); !errors.Is(err, ErrUnexpectedEOF) {
			t.Errorf("expected ErrUnexpectedEOF, got %v", err)
		}
	})

	t.Run("long_form_missing_id", func(t *testing.T) {
		decoder := NewDecoder([]byte{0x05})
		fd := NewFieldDecoder(decoder)
		var state StructReadState
		if err := fd.Next(&state); !errors.Is(err, ErrUnexpectedEOF) {
			t.Errorf("expected ErrUnexpectedEOF, got %v", err)
		}
	})
}
