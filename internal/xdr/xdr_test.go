package xdr

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestReaderBigEndianUint16(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02}, binary.BigEndian)
	v, err := r.ReadUint16()
	if err != nil {
		t.Fatalf("ReadUint16: %v", err)
	}
	if v != 0x0102 {
		t.Errorf("ReadUint16 = %#x, want 0x0102", v)
	}
}

func TestReaderLittleEndianUint16(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02}, binary.LittleEndian)
	v, err := r.ReadUint16()
	if err != nil {
		t.Fatalf("ReadUint16: %v", err)
	}
	if v != 0x0201 {
		t.Errorf("ReadUint16 = %#x, want 0x0201", v)
	}
}

func TestReaderShortBuffer(t *testing.T) {
	r := NewReader([]byte{0x01}, binary.BigEndian)
	if _, err := r.ReadUint16(); err != ErrShortBuffer {
		t.Errorf("ReadUint16 on short buffer = %v, want ErrShortBuffer", err)
	}
	if _, err := r.ReadBytes(5); err != ErrShortBuffer {
		t.Errorf("ReadBytes on short buffer = %v, want ErrShortBuffer", err)
	}
}

func TestReaderReadBytesInto(t *testing.T) {
	r := NewReader([]byte{1, 2, 3, 4}, binary.BigEndian)
	dst := make([]byte, 4)
	if err := r.ReadBytesInto(dst); err != nil {
		t.Fatalf("ReadBytesInto: %v", err)
	}
	if !bytes.Equal(dst, []byte{1, 2, 3, 4}) {
		t.Errorf("ReadBytesInto = %v, want [1 2 3 4]", dst)
	}
	if r.Len() != 0 {
		t.Errorf("Len() after full read = %d, want 0", r.Len())
	}
}

func TestBufferWriterRoundTrip(t *testing.T) {
	w := NewBufferWriter(8, binary.BigEndian)
	w.WriteUint8(5)
	w.WriteUint16(0x1234)
	w.WriteBytes([]byte{0xAA, 0xBB})

	r := NewReader(w.Bytes(), binary.BigEndian)
	b, _ := r.ReadUint8()
	u, _ := r.ReadUint16()
	rest, _ := r.ReadBytes(2)

	if b != 5 || u != 0x1234 || !bytes.Equal(rest, []byte{0xAA, 0xBB}) {
		t.Errorf("round trip mismatch: b=%d u=%#x rest=%v", b, u, rest)
	}
}
