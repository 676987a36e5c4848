package bloscpack

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// headerMagic stores the magic bytes that identify a bloscpack container.
var headerMagic = []byte("blpk")

// headerLen is the length of the container header in bytes.
const headerLen = 16

// FormatVersion is the only format version this package writes and reads.
const FormatVersion = 1

// MaxFormatVersion is the largest value the version byte can hold.
const MaxFormatVersion = 255

// MaxChunks is the largest legal chunk count, 2^63-1.
const MaxChunks = (1 << 63) - 1

// unknownChunks is the sentinel value written when the chunk count is not
// yet known. The packer defined in this package never produces it.
const unknownChunks int64 = -1

// Header is the 16-byte file-level container header: magic, format
// version, reserved bytes and chunk count.
//
//	|-0-|-1-|-2-|-3-|-4-|-5-|-6-|-7-|-8-|-9-|-A-|-B-|-C-|-D-|-E-|-F-|
//	| b   l   p   k | ^ | RESERVED  |           nchunks             |
//	               version
type Header struct {
	// ChunkCount is the number of chunks in the file, or -1 if unknown.
	ChunkCount int64
	// FormatVersion is the format version the file was written with.
	FormatVersion byte
}

// MarshalBinary encodes h into the 16-byte container header.
func (h Header) MarshalBinary() (data []byte, err error) {
	if h.ChunkCount < unknownChunks || h.ChunkCount > MaxChunks {
		return nil, fmt.Errorf("bloscpack: encode header: %w", errChunkCountOutOfRange)
	}
	if h.FormatVersion > MaxFormatVersion {
		return nil, fmt.Errorf("bloscpack: encode header: %w", errFormatVersionOutOfRange)
	}

	data = make([]byte, headerLen)
	copy(data, headerMagic)
	data[4] = h.FormatVersion
	// bytes 5..8 are reserved and stay zero
	binary.LittleEndian.PutUint64(data[8:16], uint64(h.ChunkCount))
	return data, nil
}

// UnmarshalBinary decodes a 16-byte container header. It verifies the
// magic marker but does not inspect the reserved bytes (see SPEC_FULL.md
// §9, O-2).
func (h *Header) UnmarshalBinary(data []byte) error {
	if len(data) != headerLen {
		return fmt.Errorf("bloscpack: decode header: %w", ErrBadFormat)
	}
	if !bytes.Equal(data[0:4], headerMagic) {
		return fmt.Errorf("bloscpack: decode header: %w: found %q", ErrBadMagic, data[0:4])
	}

	h.FormatVersion = data[4]
	h.ChunkCount = int64(binary.LittleEndian.Uint64(data[8:16]))
	return nil
}

// encodeHeader builds the container header for a packer run. A nil
// chunkCount encodes the "unknown" sentinel, -1.
func encodeHeader(chunkCount *int64, formatVersion byte) ([]byte, error) {
	h := Header{ChunkCount: unknownChunks, FormatVersion: formatVersion}
	if chunkCount != nil {
		h.ChunkCount = *chunkCount
	}
	return h.MarshalBinary()
}
