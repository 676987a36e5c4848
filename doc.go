// Package bloscpack packs and unpacks the bloscpack chunked file
// container: arbitrarily large files are split into bounded chunks,
// each compressed independently by internal/blosc, and written back to
// back behind a 16-byte container header.
package bloscpack
