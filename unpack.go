package bloscpack

import (
	"fmt"
	"io"
	"os"

	"github.com/FrancescAlted/bloscpack/internal/blosc"
	"github.com/FrancescAlted/bloscpack/internal/xio"
	"github.com/FrancescAlted/bloscpack/internal/xlog"
)

// UnpackOptions bundles the optional knobs Unpack consults: whether an
// existing output path may be overwritten, and a logger for progress.
type UnpackOptions struct {
	Force bool
	Log   xlog.Logger
}

// Unpack reads the container header from inPath, then for each declared
// chunk reads its codec-block header, recovers the full block by reading
// the remaining ctbytes-16 bytes and appending them to the header already
// read (no seeking back), and decompresses it, writing plaintext to
// outPath in order.
func Unpack(inPath, outPath string, opts UnpackOptions) error {
	log := opts.Log
	if log == nil {
		log = xlog.Quiet
	}

	if _, err := os.Stat(inPath); err != nil {
		return fmt.Errorf("bloscpack: unpack: %w", ErrFileMissing)
	}
	if !opts.Force {
		if _, err := os.Stat(outPath); err == nil {
			return fmt.Errorf("bloscpack: unpack: %w: %s", ErrFileExists, outPath)
		}
	}

	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("bloscpack: unpack: %w", err)
	}
	closers := xio.NewCloserStack()
	closers.Push(in)
	defer closers.Close()

	rawHeader := make([]byte, headerLen)
	if _, err := io.ReadFull(in, rawHeader); err != nil {
		return fmt.Errorf("bloscpack: unpack: %w", err)
	}
	var h Header
	if err := h.UnmarshalBinary(rawHeader); err != nil {
		return err
	}
	if h.FormatVersion != FormatVersion {
		return &ErrUnsupportedVersion{Version: h.FormatVersion}
	}
	if h.ChunkCount < 0 {
		return fmt.Errorf("bloscpack: unpack: chunk count %d is unknown (streaming not supported)", h.ChunkCount)
	}
	log.Verbosef("chunk_count %d", h.ChunkCount)

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("bloscpack: unpack: %w", err)
	}
	closers.Push(out)

	blockHeader := make([]byte, blosc.HeaderSize)
	for i := int64(0); i < h.ChunkCount; i++ {
		if _, err := io.ReadFull(in, blockHeader); err != nil {
			return fmt.Errorf("bloscpack: unpack: chunk %d: %w", i, err)
		}
		bh, err := blosc.ParseHeader(blockHeader)
		if err != nil {
			return fmt.Errorf("bloscpack: unpack: chunk %d: %w", i, err)
		}
		if bh.NBytesComp < blosc.HeaderSize {
			return fmt.Errorf("bloscpack: unpack: chunk %d: %w", i, ErrBadBlock)
		}

		rest := make([]byte, int(bh.NBytesComp)-blosc.HeaderSize)
		if _, err := io.ReadFull(in, rest); err != nil {
			return fmt.Errorf("bloscpack: unpack: chunk %d: %w", i, err)
		}
		block := append(append([]byte(nil), blockHeader...), rest...)

		plain, err := blosc.Decompress(block)
		if err != nil {
			return fmt.Errorf("bloscpack: unpack: chunk %d: %w", i, err)
		}
		if _, err := out.Write(plain); err != nil {
			return fmt.Errorf("bloscpack: unpack: chunk %d: %w", i, err)
		}
		log.Debugf("chunk %d: %d -> %d bytes", i, len(block), len(plain))
	}

	return closers.Close()
}
