// safelist-dump reads one blobwire frame from a file (or stdin) and
// prints what it carries: presence, compression, element count and
// per-element sizes. Elements are not decoded; the tool only walks the
// blob's count/length layout.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/quartzbyte/safelist/internal/common"
	"github.com/quartzbyte/safelist/pkg/blobwire"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	input := pflag.StringP("input", "i", "-", "frame file, - for stdin")
	maxSize := pflag.Uint32("max-size", 16<<20, "reject frames larger than this many bytes")
	pflag.Parse()

	var r io.Reader = os.Stdin
	if *input != "-" {
		f, err := os.Open(*input)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	blob, err := blobwire.ReadBlob(r, *maxSize)
	if err != nil {
		return err
	}
	if blob == nil {
		fmt.Println("absent: no blob in frame")
		return nil
	}
	fmt.Printf("blob: %d bytes\n", len(blob))
	return dumpLayout(blob)
}

func dumpLayout(blob []byte) error {
	count, n := common.ReadVarUint(blob)
	if n == 0 {
		return fmt.Errorf("malformed element count")
	}
	blob = blob[n:]
	fmt.Printf("elements: %d\n", count)
	for i := uint64(0); i < count; i++ {
		enc, n := common.ReadVarBytes(blob)
		if n == 0 {
			return fmt.Errorf("element %d: truncated", i)
		}
		fmt.Printf("  [%d] %d bytes\n", i, len(enc))
		blob = blob[n:]
	}
	if len(blob) != 0 {
		fmt.Printf("trailing garbage: %d bytes\n", len(blob))
	}
	return nil
}
