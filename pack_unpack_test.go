package bloscpack

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/FrancescAlted/bloscpack/internal/blosc"
)

func packUnpack(t *testing.T, data []byte, plan PlanOptions) []byte {
	t.Helper()
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.bin")
	packedPath := filepath.Join(dir, "out.blp")
	outPath := filepath.Join(dir, "roundtrip.bin")

	if err := os.WriteFile(inPath, data, 0o644); err != nil {
		t.Fatal(err)
	}

	err := Pack(inPath, packedPath, PackOptions{
		Blosc: blosc.Options{Codec: blosc.LZ4, TypeSize: 4, CLevel: 5, Shuffle: blosc.ByteShuffle},
		Plan:  plan,
		Force: true,
	})
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}

	if err := Unpack(packedPath, outPath, UnpackOptions{Force: true}); err != nil {
		t.Fatalf("Unpack: %v", err)
	}

	got, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	return got
}

func TestPackUnpackSingleChunk(t *testing.T) {
	data := bytes.Repeat([]byte{0xAA}, 1024)
	got := packUnpack(t, data, PlanOptions{})
	if !bytes.Equal(got, data) {
		t.Fatal("round trip mismatch")
	}
}

func TestPackUnpackExactMultiple(t *testing.T) {
	data := make([]byte, 10<<20)
	got := packUnpack(t, data, PlanOptions{ChunkSize: 1 << 20})
	if !bytes.Equal(got, data) {
		t.Fatal("round trip mismatch")
	}
}

func TestPackUnpackWithRemainder(t *testing.T) {
	data := bytes.Repeat([]byte{0xAA}, 10<<20+17)
	got := packUnpack(t, data, PlanOptions{ChunkSize: 1 << 20})
	if !bytes.Equal(got, data) {
		t.Fatal("round trip mismatch")
	}
}

func TestPackUnpackExplicitChunkCount(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog, many times over")
	got := packUnpack(t, data, PlanOptions{ChunkCount: 3})
	if !bytes.Equal(got, data) {
		t.Fatal("round trip mismatch")
	}
}

func TestUnpackVersionMismatch(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.bin")
	packedPath := filepath.Join(dir, "out.blp")
	outPath := filepath.Join(dir, "roundtrip.bin")

	if err := os.WriteFile(inPath, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Pack(inPath, packedPath, PackOptions{Blosc: blosc.Options{Codec: blosc.LZ4, TypeSize: 4, CLevel: 5}, Force: true}); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(packedPath)
	if err != nil {
		t.Fatal(err)
	}
	raw[4] = 0x02
	if err := os.WriteFile(packedPath, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	err = Unpack(packedPath, outPath, UnpackOptions{Force: true})
	if _, ok := err.(*ErrUnsupportedVersion); !ok {
		t.Fatalf("got %v, want *ErrUnsupportedVersion", err)
	}
	if _, statErr := os.Stat(outPath); statErr == nil {
		t.Fatal("output file should not have been created before the version check failed")
	}
}

func TestUnpackCorruptBlockHeaderDoesNotPanic(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.bin")
	packedPath := filepath.Join(dir, "out.blp")
	outPath := filepath.Join(dir, "roundtrip.bin")

	if err := os.WriteFile(inPath, []byte("hello world"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Pack(inPath, packedPath, PackOptions{Blosc: blosc.Options{Codec: blosc.LZ4, TypeSize: 4, CLevel: 5}, Force: true}); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(packedPath)
	if err != nil {
		t.Fatal(err)
	}
	// Zero out the first codec-block header, right after the 16-byte
	// container header, so its ctbytes field reads as 0 (< HeaderSize).
	for i := headerLen; i < headerLen+blosc.HeaderSize; i++ {
		raw[i] = 0
	}
	if err := os.WriteFile(packedPath, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	err = Unpack(packedPath, outPath, UnpackOptions{Force: true})
	if !errors.Is(err, ErrBadBlock) {
		t.Fatalf("got %v, want ErrBadBlock", err)
	}
}
