// Command compac-inspect reads a serialized compac array from a file and
// prints the geometry and rate recovered from its header, without the
// caller needing to know the array's dimensionality or scalar type ahead of
// time.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/compac/compac/factory"
	"github.com/compac/compac/format"
	"github.com/compac/compac/header"
	"github.com/compac/compac/transport"
)

func main() {
	compress := flag.String("compress", "", "round-trip the payload through a wire codec and report the ratio (none|zstd|s2|lz4)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: compac-inspect [-compress algo] <file>")
		os.Exit(2)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	a, ok := factory.ConstructFromStream(data, len(data))
	if !ok {
		log.Fatal("not a recognizable compac array: header did not match any (dims, scalar type) variant")
	}

	nx, ny, nz := a.Extents()
	fmt.Printf("dims:        %s\n", a.Dims())
	fmt.Printf("scalar type: %s\n", a.ScalarType())
	fmt.Printf("extents:     %d x %d x %d\n", nx, ny, nz)
	fmt.Printf("header size: %d bytes\n", a.HeaderSize())
	fmt.Printf("payload:     %d bytes\n", a.CompressedSize())
	if h, err := header.Parse(a.HeaderData(), a.ScalarType(), a.Dims()); err == nil {
		fmt.Printf("rate:        %g bits/value\n", float64(h.Rate.MaxBits)/float64(a.Dims().ValuesPerBlock()))
	}
	if c, ok := a.(interface{ Checksum() uint64 }); ok {
		fmt.Printf("checksum:    %016x\n", c.Checksum())
	}

	if *compress == "" {
		return
	}

	algo, err := parseAlgorithm(*compress)
	if err != nil {
		log.Fatal(err)
	}

	asm := transport.NewAssembler()
	defer asm.Release()
	snapshot := asm.Assemble(a.HeaderData(), a.CompressedData())
	inspectCompression(snapshot, algo)
}

func parseAlgorithm(s string) (format.CompressionType, error) {
	switch s {
	case "none":
		return format.CompressionNone, nil
	case "zstd":
		return format.CompressionZstd, nil
	case "s2":
		return format.CompressionS2, nil
	case "lz4":
		return format.CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression algorithm %q", s)
	}
}

func inspectCompression(payload []byte, algo format.CompressionType) {
	codec, err := transport.CreateCodec(algo, "compac-inspect")
	if err != nil {
		log.Fatal(err)
	}

	compressed, err := codec.Compress(payload)
	if err != nil {
		log.Fatal(err)
	}

	restored, err := codec.Decompress(compressed)
	if err != nil {
		log.Fatal(err)
	}
	if string(restored) != string(payload) {
		log.Fatal("round-trip through the wire codec did not reproduce the snapshot")
	}

	stats := transport.CompressionStats{
		Algorithm:      algo,
		OriginalSize:   int64(len(payload)),
		CompressedSize: int64(len(compressed)),
	}
	fmt.Printf("compressed:  %d bytes (%.1f%% smaller, %s)\n", len(compressed), stats.SpaceSavings(), algo)
}
