package blosc

import "fmt"

// MaxBuffer is the largest buffer Compress/Decompress will accept in a
// single call: INT_MAX - BLOSC_MAX_OVERHEAD, the real python-blosc
// BLOSC_MAX_BUFFERSIZE constant, carried over from
// original_source/bloscpack.py's reliance on blosc.BLOSC_MAX_BUFFERSIZE.
const MaxBuffer = 2147483647 - 16

// Options mirrors the BLOSC_ARGS compression options of
// original_source/bloscpack.py: typesize, clevel and shuffle.
type Options struct {
	Codec    Codec   `default:"0"` // LZ4
	TypeSize int     `default:"4"`
	CLevel   int     `default:"7"`
	Shuffle  Shuffle `default:"1"` // ByteShuffle
}

// ErrBufferTooLarge is returned by Compress when data exceeds MaxBuffer,
// and by Decompress when a block's uncompressed size exceeds it.
var ErrBufferTooLarge = fmt.Errorf("blosc: buffer exceeds MaxBuffer (%d bytes)", MaxBuffer)

// ErrEmptyBuffer is returned by Compress on zero-length input: a block
// always carries at least one byte of original content.
var ErrEmptyBuffer = fmt.Errorf("blosc: cannot compress an empty buffer")

var numThreads = 1

// SetNumThreads sets the process-wide worker count consulted by codecs
// that support internal parallelism (currently only Zstd, via
// zstd.WithEncoderConcurrency). It is the Go analogue of
// blosc.set_nthreads in original_source/bloscpack.py. n below 1 is
// clamped to 1.
func SetNumThreads(n int) {
	if n < 1 {
		n = 1
	}
	numThreads = n
}

// NumThreads returns the value last set by SetNumThreads (default 1).
func NumThreads() int { return numThreads }
