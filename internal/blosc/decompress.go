package blosc

import (
	"bytes"
	"fmt"
	"io"

	klzlib "github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Decompress reverses Compress: it parses block's 16-byte header,
// dispatches to the codec it names and, if the header's shuffle flag is
// set, undoes the byte-shuffle transform.
func Decompress(block []byte) ([]byte, error) {
	h, err := ParseHeader(block)
	if err != nil {
		return nil, fmt.Errorf("blosc: decompress: %w", err)
	}
	if h.Version != FormatVersion {
		return nil, fmt.Errorf("blosc: decompress: %w: %d", errUnsupportedVersion, h.Version)
	}
	if h.NBytesOrig > MaxBuffer {
		return nil, fmt.Errorf("blosc: decompress: %w", ErrBufferTooLarge)
	}
	if uint32(len(block)) < h.NBytesComp {
		return nil, fmt.Errorf("blosc: decompress: %w", errShortHeader)
	}

	payload := block[HeaderSize:h.NBytesComp]

	var out []byte
	if h.IsMemcpy() {
		out = append([]byte(nil), payload...)
	} else {
		out, err = decompressPayload(payload, h.Codec, int(h.NBytesOrig))
		if err != nil {
			return nil, fmt.Errorf("blosc: decompress: %w", err)
		}
	}

	if h.HasShuffle() {
		typeSize := int(h.TypeSize)
		if typeSize <= 0 {
			typeSize = 1
		}
		out = unshuffle(out, typeSize)
	}
	return out, nil
}

func decompressPayload(payload []byte, codec Codec, origSize int) ([]byte, error) {
	switch codec {
	case LZ4, LZ4HC:
		dst := make([]byte, origSize)
		n, err := lz4.UncompressBlock(payload, dst)
		if err != nil {
			return nil, err
		}
		return dst[:n], nil

	case Zstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return dec.DecodeAll(payload, make([]byte, 0, origSize))

	case Zlib:
		r, err := klzlib.NewReader(bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		defer r.Close()
		out := make([]byte, origSize)
		if _, err := io.ReadFull(r, out); err != nil {
			return nil, err
		}
		return out, nil

	default:
		return nil, fmt.Errorf("unknown codec %s", codec)
	}
}
