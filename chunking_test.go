package bloscpack

import "testing"

const testMaxBuffer = 1 << 20

func TestComputePlanExactMultiple(t *testing.T) {
	plan, err := ComputePlan(10<<20, PlanOptions{ChunkSize: 1 << 20}, testMaxBuffer)
	if err != nil {
		t.Fatal(err)
	}
	if plan.ChunkCount != 10 || plan.ChunkSize != 1<<20 || plan.LastChunkSize != 1<<20 {
		t.Fatalf("got %+v", plan)
	}
}

func TestComputePlanWithRemainder(t *testing.T) {
	inputSize := int64(10<<20 + 17)
	plan, err := ComputePlan(inputSize, PlanOptions{ChunkSize: 1 << 20}, testMaxBuffer)
	if err != nil {
		t.Fatal(err)
	}
	if plan.ChunkCount != 11 || plan.ChunkSize != 1<<20 || plan.LastChunkSize != 17 {
		t.Fatalf("got %+v", plan)
	}
}

func TestComputePlanDefaultSingleChunk(t *testing.T) {
	plan, err := ComputePlan(1024, PlanOptions{}, testMaxBuffer)
	if err != nil {
		t.Fatal(err)
	}
	if plan.ChunkCount != 1 || plan.ChunkSize != 0 || plan.LastChunkSize != 1024 {
		t.Fatalf("got %+v", plan)
	}
}

func TestComputePlanChunkCountRemainder(t *testing.T) {
	// N >= 3, input_size = 100: q' = 100/(7-1) = 16, last = 100 - 16*6 = 4.
	plan, err := ComputePlan(100, PlanOptions{ChunkCount: 7}, testMaxBuffer)
	if err != nil {
		t.Fatal(err)
	}
	if plan.ChunkCount != 7 || plan.ChunkSize != 16 || plan.LastChunkSize != 4 {
		t.Fatalf("got %+v", plan)
	}
}

func TestComputePlanChunkCountDegenerateRejected(t *testing.T) {
	// O-1: a chunk_count that would leave last_chunk_size <= 0 is rejected.
	_, err := ComputePlan(6, PlanOptions{ChunkCount: 4}, testMaxBuffer)
	if _, ok := err.(*ErrChunking); !ok {
		t.Fatalf("got %v, want *ErrChunking", err)
	}
}

func TestComputePlanBothSuppliedRejected(t *testing.T) {
	_, err := ComputePlan(100, PlanOptions{ChunkCount: 2, ChunkSize: 10}, testMaxBuffer)
	if err != ErrInvalidArgument {
		t.Fatalf("got %v, want ErrInvalidArgument", err)
	}
}

func TestComputePlanExceedsMaxBuffer(t *testing.T) {
	_, err := ComputePlan(testMaxBuffer*3, PlanOptions{ChunkCount: 1}, testMaxBuffer)
	if _, ok := err.(*ErrChunking); !ok {
		t.Fatalf("got %v, want *ErrChunking", err)
	}
}

func TestComputePlanQuantifiedInvariants(t *testing.T) {
	sizes := []int64{1, 7, 100, 1 << 15, 1<<20 + 3, 5 << 20}
	chunkSizes := []int64{0, 1, 1 << 10, 1 << 20}
	for _, size := range sizes {
		for _, cs := range chunkSizes {
			opts := PlanOptions{}
			if cs != 0 && cs <= size {
				opts.ChunkSize = cs
			}
			plan, err := ComputePlan(size, opts, testMaxBuffer)
			if err != nil {
				continue
			}
			if plan.ChunkCount == 1 {
				if plan.LastChunkSize != size {
					t.Errorf("size %d: single chunk last=%d, want %d", size, plan.LastChunkSize, size)
				}
			} else if plan.ChunkSize*(plan.ChunkCount-1)+plan.LastChunkSize != size {
				t.Errorf("size %d opts %+v: sum mismatch, plan %+v", size, opts, plan)
			}
			if plan.LastChunkSize < 1 || plan.LastChunkSize > testMaxBuffer {
				t.Errorf("size %d: last_chunk_size %d out of range", size, plan.LastChunkSize)
			}
			if plan.ChunkSize < 0 || plan.ChunkSize > testMaxBuffer {
				t.Errorf("size %d: chunk_size %d out of range", size, plan.ChunkSize)
			}
		}
	}
}
