// Command huff compresses files with static Huffman coding.
//
//     huff encode [-quiet] [-force] [-bytes] [-ext .huff] <file>[,<file>...]
//       Creates <file>.huff for each file
//
//     huff decode [-quiet] [-force] [-ext .huff] <file.huff>[,<file.huff>...]
//       Recreates <file> from each <file.huff>
//
//     huff demo [text [text2]]
//       Prints the tree and code built from text, then encodes and decodes
//       text2 with it
//
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chronos-tachyon/statichuff/internal/logger"
)

var Commands = [...]string{"encode", "decode", "demo", "help"}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 1
	}

	logg := logger.New(stderr)
	var err error
	switch args[0] {
	case "encode":
		err = encodeCommand(args[1:], stderr, logg)
	case "decode":
		err = decodeCommand(args[1:], stderr, logg)
	case "demo":
		err = demoCommand(args[1:], stdout)
	case "help", "-help", "--help", "-h":
		usage(stdout)
		return 0
	default:
		logg.Errorf("unknown command %q", args[0])
		usage(stderr)
		return 1
	}

	if err != nil {
		logg.Errorf("%v", err)
		return 1
	}
	return 0
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "Usage of huff:\n")
	fmt.Fprintf(w, "Valid commands include:\n\t%s\n", strings.Join(Commands[:], ", "))
	fmt.Fprintf(w, "Run \"huff <command> -help\" for the flags of a command.\n")
}

func splitFiles(args []string) []string {
	var files []string
	for _, arg := range args {
		for _, f := range strings.Split(arg, ",") {
			if f = strings.TrimSpace(f); f != "" {
				files = append(files, f)
			}
		}
	}
	return files
}
