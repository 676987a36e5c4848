package bloscpack

import "fmt"

// Plan describes how an input of a known size is partitioned into
// ChunkCount chunks in all: ChunkCount-1 chunks of ChunkSize bytes,
// followed by one final chunk of LastChunkSize bytes. ChunkSize is 0
// when ChunkCount is 1.
type Plan struct {
	ChunkCount    int64
	ChunkSize     int64
	LastChunkSize int64
}

// PlanOptions selects how ComputePlan chooses a partition. At most one of
// ChunkCount and ChunkSize may be non-zero; supplying both is an error.
// When neither is set, maxBuffer is used as the implicit chunk size.
type PlanOptions struct {
	ChunkCount int64
	ChunkSize  int64
}

// ComputePlan partitions an input of inputSize bytes into chunks that are
// each no larger than maxBuffer, following the rules of SPEC_FULL.md §4.E.
func ComputePlan(inputSize int64, opts PlanOptions, maxBuffer int64) (Plan, error) {
	if opts.ChunkCount != 0 && opts.ChunkSize != 0 {
		return Plan{}, ErrInvalidArgument
	}

	var plan Plan
	var err error
	switch {
	case opts.ChunkCount != 0:
		plan, err = planFromChunkCount(inputSize, opts.ChunkCount)
	case opts.ChunkSize != 0:
		plan, err = planFromChunkSize(inputSize, opts.ChunkSize)
	default:
		plan, err = planDefault(inputSize, maxBuffer)
	}
	if err != nil {
		return Plan{}, err
	}

	if plan.ChunkSize > maxBuffer || plan.LastChunkSize > maxBuffer {
		return Plan{}, chunkingError(fmt.Sprintf(
			"chunk_size %d or last_chunk_size %d would exceed MAX_BUFFER %d",
			plan.ChunkSize, plan.LastChunkSize, maxBuffer))
	}
	if plan.ChunkCount > MaxChunks {
		return Plan{}, chunkingError(fmt.Sprintf(
			"chunk_count %d exceeds MAX_CHUNKS %d", plan.ChunkCount, MaxChunks))
	}
	return plan, nil
}

// planFromChunkCount implements the "only chunk_count supplied" rules.
func planFromChunkCount(inputSize, chunkCount int64) (Plan, error) {
	if chunkCount > inputSize || chunkCount <= 0 {
		return Plan{}, chunkingError(fmt.Sprintf(
			"chunk_count %d must satisfy 0 < chunk_count <= input_size %d",
			chunkCount, inputSize))
	}
	if chunkCount == 1 {
		return Plan{ChunkCount: 1, ChunkSize: 0, LastChunkSize: inputSize}, nil
	}

	quotient, remainder := inputSize/chunkCount, inputSize%chunkCount
	var chunkSize, lastChunkSize int64
	switch {
	case remainder == 0:
		chunkSize = quotient
		lastChunkSize = quotient
	case chunkCount == 2:
		chunkSize = quotient
		lastChunkSize = inputSize - chunkSize
	default:
		// Uses a regular chunk size of inputSize/(chunkCount-1), larger
		// than `quotient`; the last chunk holds what is left over,
		// inputSize mod (chunkCount-1), which can be a small tail or zero
		// (zero is rejected below). Matches
		// original_source/bloscpack.py's calculate_nchunks exactly.
		chunkSize = inputSize / (chunkCount - 1)
		lastChunkSize = inputSize - chunkSize*(chunkCount-1)
	}

	if lastChunkSize <= 0 {
		// O-1: reject rather than silently emit a corrupt (non
		// round-trippable) last chunk. See DESIGN.md.
		return Plan{}, chunkingError(fmt.Sprintf(
			"chunk_count %d leaves a non-positive last_chunk_size %d for input_size %d",
			chunkCount, lastChunkSize, inputSize))
	}
	return Plan{ChunkCount: chunkCount, ChunkSize: chunkSize, LastChunkSize: lastChunkSize}, nil
}

// planDefault implements the "neither supplied" rule: chunk_size defaults
// to maxBuffer, except that an input no larger than maxBuffer always fits
// in a single chunk (mirrors original_source/bloscpack.py's quotient==0
// special case in calculate_nchunks, which the "only chunk_size supplied"
// rule alone cannot express since maxBuffer would otherwise exceed
// input_size and be rejected).
func planDefault(inputSize, maxBuffer int64) (Plan, error) {
	if inputSize <= maxBuffer {
		return Plan{ChunkCount: 1, ChunkSize: 0, LastChunkSize: inputSize}, nil
	}
	return planFromChunkSize(inputSize, maxBuffer)
}

// planFromChunkSize implements the "only chunk_size supplied" rules.
func planFromChunkSize(inputSize, chunkSize int64) (Plan, error) {
	if chunkSize > inputSize || chunkSize <= 0 {
		return Plan{}, chunkingError(fmt.Sprintf(
			"chunk_size %d must satisfy 0 < chunk_size <= input_size %d",
			chunkSize, inputSize))
	}
	if chunkSize == inputSize {
		return Plan{ChunkCount: 1, ChunkSize: 0, LastChunkSize: inputSize}, nil
	}

	quotient, remainder := inputSize/chunkSize, inputSize%chunkSize
	if remainder == 0 {
		return Plan{ChunkCount: quotient, ChunkSize: chunkSize, LastChunkSize: chunkSize}, nil
	}
	return Plan{ChunkCount: quotient + 1, ChunkSize: chunkSize, LastChunkSize: remainder}, nil
}
