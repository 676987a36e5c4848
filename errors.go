package bloscpack

import "errors"

// Errors returned by the container header codec.
var (
	ErrBadMagic                = errors.New("bloscpack: bad magic marker")
	ErrBadFormat               = errors.New("bloscpack: container header must be 16 bytes")
	errChunkCountOutOfRange    = errors.New("bloscpack: chunk count out of range")
	errFormatVersionOutOfRange = errors.New("bloscpack: format version out of range")
)

// ErrFileExists is returned by Pack when out_path already exists and the
// caller did not set PackOptions.Force.
var ErrFileExists = errors.New("bloscpack: output file exists, use --force to overwrite")

// ErrFileMissing is returned when an input path does not exist.
var ErrFileMissing = errors.New("bloscpack: input file does not exist")

// ErrBadBlock is returned by Unpack when a codec-block header's ctbytes
// field is too small to even cover the header itself, which can only
// happen against a truncated or corrupted .blp file.
var ErrBadBlock = errors.New("bloscpack: codec-block header declares an impossible ctbytes")

// ErrUnsupportedVersion is returned by Unpack when the container header
// declares a format version this package does not understand.
type ErrUnsupportedVersion struct {
	Version byte
}

func (e *ErrUnsupportedVersion) Error() string {
	return "bloscpack: unsupported format version"
}

// ErrChunking is returned by ComputePlan when the requested chunk_count or
// chunk_size cannot produce a legal partition of the input.
type ErrChunking struct {
	msg string
}

func (e *ErrChunking) Error() string { return "bloscpack: " + e.msg }

func chunkingError(msg string) error { return &ErrChunking{msg: msg} }

// ErrShortRead is returned by Pack when the input file has fewer bytes
// remaining than the current chunk requires.
var ErrShortRead = errors.New("bloscpack: short read while filling chunk")

// ErrInvalidArgument is returned when mutually exclusive planner
// arguments are both supplied.
var ErrInvalidArgument = errors.New("bloscpack: specify chunk_count or chunk_size, not both")
