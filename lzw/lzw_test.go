package lzw

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"
)

func TestEncodeDecodeEmpty(t *testing.T) {
	encoded, err := Encode(nil)
	if err != nil {
		t.Fatalf("Encode(nil): %v", err)
	}
	if encoded != nil {
		t.Errorf("Encode(nil) = %v, want nil", encoded)
	}

	decoded, err := Decode(nil)
	if err != nil {
		t.Fatalf("Decode(nil): %v", err)
	}
	if decoded != nil {
		t.Errorf("Decode(nil) = %v, want nil", decoded)
	}
}

func TestRoundTripHelloWorld(t *testing.T) {
	input := []byte("Hello, World!")
	encoded, err := Encode(input)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(decoded, input) {
		t.Errorf("round trip = %q, want %q", decoded, input)
	}
}

func TestRoundTripSingleByte(t *testing.T) {
	input := []byte{42}
	encoded, err := Encode(input)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(encoded) != 2 {
		t.Fatalf("len(encoded) = %d, want 2", len(encoded))
	}
	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(decoded, input) {
		t.Errorf("round trip = %v, want %v", decoded, input)
	}
}

func TestRoundTripRepeatedPattern(t *testing.T) {
	input := bytes.Repeat([]byte("AB"), 2000)
	encoded, err := Encode(input)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(encoded) >= len(input) {
		t.Errorf("len(encoded) = %d, want strictly less than input (%d)", len(encoded), len(input))
	}
	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(decoded, input) {
		t.Errorf("round trip mismatch for repeated pattern")
	}
}

func TestRoundTripTriggersKwKwK(t *testing.T) {
	// "ABABABA" forces the encoder to emit a code for "AB" and then
	// immediately need it again before the next byte closes the match,
	// producing the KwKwK situation on decode (a code equal to the
	// entry about to be assigned).
	input := []byte("ABABABA")
	encoded, err := Encode(input)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(decoded, input) {
		t.Errorf("round trip = %q, want %q", decoded, input)
	}
}

func TestDecodeIncompleteCode(t *testing.T) {
	_, err := Decode([]byte{0x41})
	var target *IncompleteCodeError
	if !errors.As(err, &target) {
		t.Fatalf("Decode error = %v, want *IncompleteCodeError", err)
	}
	if target.Position != 0 {
		t.Errorf("Position = %d, want 0", target.Position)
	}
}

func TestDecodeIncompleteCodeMidStream(t *testing.T) {
	// A valid first code (0x41 = 'A') followed by a single trailing
	// byte that can't form a second code.
	_, err := Decode([]byte{0x41, 0x00, 0x42})
	var target *IncompleteCodeError
	if !errors.As(err, &target) {
		t.Fatalf("Decode error = %v, want *IncompleteCodeError", err)
	}
	if target.Position != 2 {
		t.Errorf("Position = %d, want 2", target.Position)
	}
}

func TestDecodeInvalidCode(t *testing.T) {
	// The first code must be a singleton (< 256); 300 is not.
	_, err := Decode([]byte{0x2C, 0x01})
	var target *InvalidCodeError
	if !errors.As(err, &target) {
		t.Fatalf("Decode error = %v, want *InvalidCodeError", err)
	}
	if target.Code != 300 || target.DictSize != 256 {
		t.Errorf("Code=%d DictSize=%d, want 300, 256", target.Code, target.DictSize)
	}
}

func TestEncodeDictionaryOverflow(t *testing.T) {
	// High-entropy random bytes almost never repeat a (current-code,
	// next-byte) context, so nearly every byte is a dictionary miss.
	// 65535-256 new entries are needed to saturate the dictionary; a
	// few hundred thousand random bytes is comfortably past that.
	rng := rand.New(rand.NewSource(1))
	input := make([]byte, 400000)
	rng.Read(input)

	_, err := Encode(input)
	if !errors.Is(err, ErrDictionaryOverflow) {
		t.Fatalf("Encode error = %v, want ErrDictionaryOverflow", err)
	}
}
