// Package checksum implements the fixed registry of named digests
// bloscpack accepts as a checksum name; format version 1 validates the
// name but writes no digest bytes into the file. Grounded on
// original_source/bloscpack.py's CHECKSUMS table and on the stdlib
// hash.Hash use already present in the teacher's checks.go.
package checksum

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"hash"
	"hash/adler32"
	"hash/crc32"
)

// Checksum computes a named digest of a byte slice.
type Checksum struct {
	Name string
	Size int
	Sum  func(data []byte) []byte
}

func hashSum(newHash func() hash.Hash) func([]byte) []byte {
	return func(data []byte) []byte {
		h := newHash()
		h.Write(data)
		return h.Sum(nil)
	}
}

// integerHashSum wraps a 32-bit integer checksum (adler32, crc32) the way
// original_source/bloscpack.py's zlib_hash does: mask to 32 unsigned bits
// and pack little-endian, rather than going through hash.Hash32.Sum, which
// hash/adler32 and hash/crc32 both document as appending most-significant
// byte first.
func integerHashSum(sum32 func(data []byte) uint32) func([]byte) []byte {
	return func(data []byte) []byte {
		out := make([]byte, 4)
		binary.LittleEndian.PutUint32(out, sum32(data)&0xffffffff)
		return out
	}
}

// registry lists the checksums in the same order as CHECKSUMS_AVAIL in
// original_source/bloscpack.py. None always comes first and has size 0.
var registry = []Checksum{
	{"None", 0, func([]byte) []byte { return nil }},
	{"adler32", 4, integerHashSum(adler32.Checksum)},
	{"crc32", 4, integerHashSum(crc32.ChecksumIEEE)},
	{"md5", md5.Size, hashSum(md5.New)},
	{"sha1", sha1.Size, hashSum(sha1.New)},
	{"sha224", sha256.Size224, hashSum(sha256.New224)},
	{"sha256", sha256.Size, hashSum(sha256.New)},
	{"sha384", sha512.Size384, hashSum(sha512.New384)},
	{"sha512", sha512.Size, hashSum(sha512.New)},
}

// Default is the checksum used when the caller does not request one.
const Default = "adler32"

// Names returns the available checksum names, in registry order.
func Names() []string {
	names := make([]string, len(registry))
	for i, c := range registry {
		names[i] = c.Name
	}
	return names
}

// Lookup returns the Checksum registered under name.
func Lookup(name string) (Checksum, error) {
	for _, c := range registry {
		if c.Name == name {
			return c, nil
		}
	}
	return Checksum{}, fmt.Errorf("checksum: %q is not a valid checksum, use one of %v", name, Names())
}
