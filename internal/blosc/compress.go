package blosc

import (
	"bytes"
	"compress/zlib"
	"fmt"

	"github.com/creasty/defaults"
	klzlib "github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compress compresses data with the codec and options in opts, returning
// a self-describing block: a 16-byte Header followed by the compressed
// (or, for incompressible input, verbatim) payload. A zero-value opts is
// filled in with the `default:` struct tags on Options before use.
func Compress(data []byte, opts Options) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrEmptyBuffer
	}
	if len(data) > MaxBuffer {
		return nil, ErrBufferTooLarge
	}

	if opts == (Options{}) {
		if err := defaults.Set(&opts); err != nil {
			return nil, fmt.Errorf("blosc: compress: %w", err)
		}
	}

	typeSize := opts.TypeSize
	if typeSize <= 0 {
		typeSize = 1
	}

	payload := data
	flags := byte(0)
	if opts.Shuffle == ByteShuffle || opts.Shuffle == BitShuffle {
		payload = shuffle(data, typeSize)
		flags |= flagShuffle
		if opts.Shuffle == BitShuffle {
			flags |= flagBitShuffle
		}
	}

	compressed, err := compressPayload(payload, opts.Codec, opts.CLevel)
	if err != nil {
		return nil, fmt.Errorf("blosc: compress: %w", err)
	}

	h := Header{
		Version:    FormatVersion,
		Codec:      opts.Codec,
		Flags:      flags,
		TypeSize:   byte(typeSize),
		NBytesOrig: uint32(len(data)),
		BlockSize:  uint32(len(data)),
	}

	// Fall back to a memcpy block when the compressed payload is not
	// smaller than the input, i.e. when the compressed block would be no
	// smaller than a header plus the verbatim data, matching the
	// flagMemcpy handling exercised by the mrjoshuak/go-blosc fuzz corpus.
	if compressed == nil || len(compressed)+HeaderSize >= len(data)+HeaderSize {
		h.Flags = flagMemcpy
		h.NBytesComp = uint32(HeaderSize + len(data))
		return append(h.Bytes(), data...), nil
	}

	h.NBytesComp = uint32(HeaderSize + len(compressed))
	return append(h.Bytes(), compressed...), nil
}

// compressPayload dispatches to the concrete codec implementation. It
// returns a nil slice (not an error) when the codec declines to
// compress, leaving the memcpy fallback in Compress to take over.
func compressPayload(payload []byte, codec Codec, clevel int) ([]byte, error) {
	switch codec {
	case LZ4:
		var c lz4.Compressor
		dst := make([]byte, lz4.CompressBlockBound(len(payload)))
		n, err := c.CompressBlock(payload, dst)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, nil
		}
		return dst[:n], nil

	case LZ4HC:
		dst := make([]byte, lz4.CompressBlockBound(len(payload)))
		levels := [...]lz4.CompressionLevel{lz4.Fast, lz4.Level1, lz4.Level2,
			lz4.Level3, lz4.Level4, lz4.Level5, lz4.Level6, lz4.Level7,
			lz4.Level8, lz4.Level9}
		level := levels[clampCLevel(clevel)]
		n, err := lz4.CompressBlockHC(payload, dst, level, nil, nil)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, nil
		}
		return dst[:n], nil

	case Zstd:
		enc, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstdLevel(clevel)),
			zstd.WithEncoderConcurrency(NumThreads()))
		if err != nil {
			return nil, err
		}
		defer enc.Close()
		return enc.EncodeAll(payload, nil), nil

	case Zlib:
		var buf bytes.Buffer
		w, err := klzlib.NewWriterLevel(&buf, clampZlibLevel(clevel))
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(payload); err != nil {
			_ = w.Close()
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil

	default:
		return nil, fmt.Errorf("blosc: unknown codec %s", codec)
	}
}

// clampCLevel clamps the bloscpack compression level to [0,9], the index
// compressPayload uses to pick lz4.Fast..lz4.Level9 for CompressBlockHC.
func clampCLevel(clevel int) int {
	if clevel < 0 {
		return 0
	}
	if clevel > 9 {
		return 9
	}
	return clevel
}

// clampZlibLevel maps the [0,9] bloscpack compression level onto zlib's
// [NoCompression, BestCompression] range.
func clampZlibLevel(clevel int) int {
	if clevel <= 0 {
		return zlib.NoCompression
	}
	if clevel >= 9 {
		return zlib.BestCompression
	}
	return clevel
}

// zstdLevel maps the [0,9] bloscpack compression level onto zstd's
// coarser four-level speed/ratio knob.
func zstdLevel(clevel int) zstd.EncoderLevel {
	switch {
	case clevel <= 1:
		return zstd.SpeedFastest
	case clevel <= 4:
		return zstd.SpeedDefault
	case clevel <= 7:
		return zstd.SpeedBetterCompression
	default:
		return zstd.SpeedBestCompression
	}
}
