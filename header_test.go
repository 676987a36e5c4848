package bloscpack

import (
	"bytes"
	"errors"
	"testing"
)

func TestHeaderRoundTrip(t *testing.T) {
	counts := []int64{0, 1, 42, (1 << 63) - 1}
	versions := []byte{0, 1, 255}
	for _, n := range counts {
		for _, v := range versions {
			h := Header{ChunkCount: n, FormatVersion: v}
			data, err := h.MarshalBinary()
			if err != nil {
				t.Fatalf("MarshalBinary(%d, %d): %v", n, v, err)
			}
			var got Header
			if err := got.UnmarshalBinary(data); err != nil {
				t.Fatalf("UnmarshalBinary: %v", err)
			}
			if got.ChunkCount != n || got.FormatVersion != v {
				t.Errorf("round trip (%d,%d): got (%d,%d)", n, v, got.ChunkCount, got.FormatVersion)
			}
		}
	}
}

func TestHeaderBadMagic(t *testing.T) {
	data := append([]byte("xxxx"), make([]byte, 12)...)
	var h Header
	err := h.UnmarshalBinary(data)
	if !errors.Is(err, ErrBadMagic) {
		t.Fatalf("got %v, want ErrBadMagic", err)
	}
}

func TestHeaderBadLength(t *testing.T) {
	var h Header
	if err := h.UnmarshalBinary(make([]byte, 15)); !errors.Is(err, ErrBadFormat) {
		t.Fatalf("got %v, want ErrBadFormat", err)
	}
}

func TestHeaderExactBytes(t *testing.T) {
	n := int64(1)
	data, err := encodeHeader(&n, FormatVersion)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x62, 0x6c, 0x70, 0x6b, 0x01, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	if !bytes.Equal(data, want) {
		t.Fatalf("got % x, want % x", data, want)
	}
}
