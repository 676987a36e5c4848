// Package sizefmt formats byte counts the way bloscpack's command line
// reports and accepts them: a number followed by one of B/K/M/G/T,
// matching original_source/bloscpack.py's pretty_size and reverse_pretty.
package sizefmt

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidSize is returned by Reverse when a size string is empty, has
// an unrecognized suffix, or has an unparseable mantissa.
var ErrInvalidSize = errors.New("sizefmt: invalid size string")

// suffix pairs a unit letter with the byte count it multiplies by, in
// ascending order.
type suffix struct {
	letter string
	limit  int64
}

var suffixes = []suffix{
	{"B", 1},
	{"K", 1 << 10},
	{"M", 1 << 20},
	{"G", 1 << 30},
	{"T", 1 << 40},
}

// Pretty formats n as a human-readable size, choosing the largest unit
// that n is at least as big as, e.g. Pretty(1536) == "1.5K".
func Pretty(n int64) string {
	chosen := suffixes[0]
	for _, s := range suffixes {
		if n < s.limit {
			continue
		}
		chosen = s
	}
	value := float64(n) / float64(chosen.limit)
	return strconv.FormatFloat(roundTo(value, 2), 'f', -1, 64) + chosen.letter
}

// roundTo rounds f to the given number of decimal places.
func roundTo(f float64, places int) float64 {
	mult := 1.0
	for i := 0; i < places; i++ {
		mult *= 10
	}
	return float64(int64(f*mult+0.5)) / mult
}

// Reverse parses a human-readable size produced by Pretty (or typed by a
// user on the command line) back into a byte count.
func Reverse(readable string) (int64, error) {
	if readable == "" {
		return 0, fmt.Errorf("sizefmt: empty size string: %w", ErrInvalidSize)
	}
	letter := readable[len(readable)-1:]
	for _, s := range suffixes {
		if s.letter != letter {
			continue
		}
		value, err := strconv.ParseFloat(readable[:len(readable)-1], 64)
		if err != nil {
			return 0, fmt.Errorf("sizefmt: parse %q: %w: %w", readable, ErrInvalidSize, err)
		}
		return int64(value * float64(s.limit)), nil
	}
	return 0, fmt.Errorf("sizefmt: %q is not a valid size suffix, use one of B, K, M, G, T: %w", letter, ErrInvalidSize)
}
