package bloscpack

import (
	"fmt"
	"io"
	"os"

	"github.com/FrancescAlted/bloscpack/checksum"
	"github.com/FrancescAlted/bloscpack/internal/blosc"
	"github.com/FrancescAlted/bloscpack/internal/xio"
	"github.com/FrancescAlted/bloscpack/internal/xlog"
)

// PackOptions bundles everything Pack needs beyond the two file paths:
// the codec options forwarded unchanged to every blosc.Compress call, a
// chunking request, a checksum name (validated but, per format version
// 1, never placed on the wire — see SPEC_FULL.md §9), whether an
// existing output path may be overwritten, and a logger for progress.
type PackOptions struct {
	Blosc    blosc.Options
	Plan     PlanOptions
	Checksum string
	Force    bool
	Log      xlog.Logger
}

// Pack reads inPath, partitions it into chunks following opts.Plan,
// compresses each chunk with opts.Blosc and writes the container header
// followed by the compressed chunks to outPath.
func Pack(inPath, outPath string, opts PackOptions) error {
	log := opts.Log
	if log == nil {
		log = xlog.Quiet
	}

	if opts.Checksum != "" {
		if _, err := checksum.Lookup(opts.Checksum); err != nil {
			return err
		}
	}

	info, err := os.Stat(inPath)
	if os.IsNotExist(err) {
		return fmt.Errorf("bloscpack: pack: %w", ErrFileMissing)
	}
	if err != nil {
		return fmt.Errorf("bloscpack: pack: %w", err)
	}
	inputSize := info.Size()

	plan, err := ComputePlan(inputSize, opts.Plan, blosc.MaxBuffer)
	if err != nil {
		return err
	}
	log.Verbosef("input size %d, chunk_count %d, chunk_size %d, last_chunk_size %d",
		inputSize, plan.ChunkCount, plan.ChunkSize, plan.LastChunkSize)

	if !opts.Force {
		if _, err := os.Stat(outPath); err == nil {
			return fmt.Errorf("bloscpack: pack: %w: %s", ErrFileExists, outPath)
		}
	}

	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("bloscpack: pack: %w", err)
	}
	closers := xio.NewCloserStack()
	closers.Push(in)
	defer closers.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("bloscpack: pack: %w", err)
	}
	closers.Push(out)

	header, err := encodeHeader(&plan.ChunkCount, FormatVersion)
	if err != nil {
		return err
	}
	if _, err := out.Write(header); err != nil {
		return fmt.Errorf("bloscpack: pack: %w", err)
	}

	buf := make([]byte, plan.ChunkSize)
	if plan.LastChunkSize > int64(len(buf)) {
		buf = make([]byte, plan.LastChunkSize)
	}

	for i := int64(0); i < plan.ChunkCount; i++ {
		want := plan.ChunkSize
		if i == plan.ChunkCount-1 {
			want = plan.LastChunkSize
		}
		chunk := buf[:want]
		if _, err := io.ReadFull(in, chunk); err != nil {
			return fmt.Errorf("bloscpack: pack: chunk %d: %w", i, ErrShortRead)
		}

		block, err := blosc.Compress(chunk, opts.Blosc)
		if err != nil {
			return fmt.Errorf("bloscpack: pack: chunk %d: %w", i, err)
		}
		if _, err := out.Write(block); err != nil {
			return fmt.Errorf("bloscpack: pack: chunk %d: %w", i, err)
		}
		log.Debugf("chunk %d: %d -> %d bytes", i, want, len(block))
	}

	return closers.Close()
}
