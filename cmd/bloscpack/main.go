// Command bloscpack packs and unpacks bloscpack containers (.blp files).
//
//	bloscpack compress|c  [flags] <in_file> [<out_file>]
//	bloscpack decompress|d [flags] <in_file> [<out_file>]
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ogier/pflag"

	bloscpack "github.com/FrancescAlted/bloscpack"
	"github.com/FrancescAlted/bloscpack/checksum"
	"github.com/FrancescAlted/bloscpack/internal/blosc"
	"github.com/FrancescAlted/bloscpack/internal/xlog"
	"github.com/FrancescAlted/bloscpack/sizefmt"
)

const packedExt = ".blp"

const usageStr = `Usage: bloscpack compress|c  [flags] <in_file> [<out_file>]
       bloscpack decompress|d [flags] <in_file> [<out_file>]

Global flags:
  --verbose            print progress messages
  --debug              print per-chunk debug messages
  --force              overwrite an existing output file
  --nthreads N         worker threads the codec may use internally

compress flags:
  --typesize N         size in bytes of one array element (default 4)
  --clevel N           compression level 0..9 (default 7)
  --no-shuffle         disable the byte-shuffle filter
  --nchunks N          split input into exactly N chunks
  --chunk-size SIZE    split input into chunks of SIZE bytes, e.g. 1M
  --checksum NAME      validate a checksum name (not embedded on the wire)

decompress flags:
  --no-check-extension allow an input file without the .blp extension
`

func usage() {
	fmt.Fprint(os.Stderr, usageStr)
}

func main() {
	prog := filepath.Base(os.Args[0])
	log.SetPrefix(prog + ": error: ")
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "compress", "c":
		err = runCompress(prog, os.Args[2:])
	case "decompress", "d":
		err = runDecompress(prog, os.Args[2:])
	case "-h", "--help", "help":
		usage()
		return
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		log.Fatal(err)
	}
}

// globalFlags holds the flags shared by both subcommands.
type globalFlags struct {
	verbose  *bool
	debug    *bool
	force    *bool
	nthreads *int
}

func addGlobalFlags(fs *pflag.FlagSet) *globalFlags {
	return &globalFlags{
		verbose:  fs.Bool("verbose", false, "print progress messages"),
		debug:    fs.Bool("debug", false, "print per-chunk debug messages"),
		force:    fs.Bool("force", false, "overwrite an existing output file"),
		nthreads: fs.Int("nthreads", 1, "worker threads the codec may use internally"),
	}
}

func (g *globalFlags) logger() xlog.Logger {
	level := xlog.Normal
	switch {
	case *g.debug:
		level = xlog.Debug
	case *g.verbose:
		level = xlog.Verbose
	}
	return xlog.New(os.Stderr, level)
}

func runCompress(prog string, args []string) error {
	fs := pflag.NewFlagSet(prog+" compress", pflag.ExitOnError)
	g := addGlobalFlags(fs)
	typesize := fs.Int("typesize", 4, "size in bytes of one array element")
	clevel := fs.Int("clevel", 7, "compression level 0..9")
	noShuffle := fs.Bool("no-shuffle", false, "disable the byte-shuffle filter")
	nchunks := fs.Int64("nchunks", 0, "split input into exactly N chunks")
	chunkSize := fs.String("chunk-size", "", "split input into chunks of SIZE bytes")
	checksumName := fs.String("checksum", checksum.Default, "checksum name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 1 {
		usage()
		os.Exit(1)
	}
	inFile := fs.Arg(0)
	outFile := inFile + packedExt
	if fs.NArg() >= 2 {
		outFile = fs.Arg(1)
	}

	blosc.SetNumThreads(*g.nthreads)

	shuffle := blosc.ByteShuffle
	if *noShuffle {
		shuffle = blosc.NoShuffle
	}

	var planOpts bloscpack.PlanOptions
	planOpts.ChunkCount = *nchunks
	if *chunkSize != "" {
		size, err := sizefmt.Reverse(*chunkSize)
		if err != nil {
			return err
		}
		planOpts.ChunkSize = size
	}

	return bloscpack.Pack(inFile, outFile, bloscpack.PackOptions{
		Blosc: blosc.Options{
			Codec:    blosc.LZ4,
			TypeSize: *typesize,
			CLevel:   *clevel,
			Shuffle:  shuffle,
		},
		Plan:     planOpts,
		Checksum: *checksumName,
		Force:    *g.force,
		Log:      g.logger(),
	})
}

func runDecompress(prog string, args []string) error {
	fs := pflag.NewFlagSet(prog+" decompress", pflag.ExitOnError)
	g := addGlobalFlags(fs)
	noCheckExtension := fs.Bool("no-check-extension", false, "allow an input file without the .blp extension")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 1 {
		usage()
		os.Exit(1)
	}
	inFile := fs.Arg(0)

	var outFile string
	if fs.NArg() >= 2 {
		outFile = fs.Arg(1)
	} else if *noCheckExtension {
		// Mirrors original_source/bloscpack.py's process_decompression_args:
		// --no-check-extension means the extension can no longer be trusted
		// to derive an output name from, so one must be supplied explicitly.
		return fmt.Errorf("bloscpack: --no-check-extension requires an explicit output file")
	} else {
		if !strings.HasSuffix(inFile, packedExt) {
			return fmt.Errorf("bloscpack: %q does not end in %q, pass an output name", inFile, packedExt)
		}
		outFile = strings.TrimSuffix(inFile, packedExt)
	}

	blosc.SetNumThreads(*g.nthreads)

	return bloscpack.Unpack(inFile, outFile, bloscpack.UnpackOptions{
		Force: *g.force,
		Log:   g.logger(),
	})
}
