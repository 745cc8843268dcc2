package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	pb "github.com/cheggaaa/pb/v3"

	"github.com/chronos-tachyon/statichuff/container"
	"github.com/chronos-tachyon/statichuff/internal/logger"
)

var errNoFiles = errors.New("no files given")

func encodeCommand(args []string, stderr io.Writer, logg logger.Logger) error {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	fs.SetOutput(stderr)
	quiet := fs.Bool("quiet", false, "Suppress progress and per-file reports")
	rawBytes := fs.Bool("bytes", false, "Code bytes instead of UTF-8 runes")
	force := fs.Bool("force", false, "Overwrite existing output files")
	ext := fs.String("ext", ".huff", "File extension used for the result")
	if err := fs.Parse(args); err != nil {
		return err
	}

	files := splitFiles(fs.Args())
	if len(files) == 0 {
		return errNoFiles
	}

	var total int64
	for _, file := range files {
		fi, err := os.Stat(file)
		if err != nil {
			return fmt.Errorf("could not open the provided file: %w", err)
		}
		total += fi.Size()
	}

	var bar *pb.ProgressBar
	if !*quiet {
		bar = pb.New64(total)
		bar.Set(pb.Bytes, true)
		bar.SetWriter(stderr)
		bar.Start()
		defer bar.Finish()
	}

	for _, file := range files {
		n, compressed, err := encodeFile(file, file+*ext, *rawBytes, *force)
		if err != nil {
			return err
		}
		if bar != nil {
			bar.Add64(int64(n))
		}
		if !*quiet {
			logg.Infof("%s: %d -> %d bytes (%.2f%%)", file, n, compressed, ratio(compressed, n))
		}
	}
	return nil
}

func encodeFile(inPath, outPath string, rawBytes, force bool) (int, int, error) {
	content, err := os.ReadFile(inPath)
	if err != nil {
		return 0, 0, err
	}

	var f *container.File
	if rawBytes || !utf8.Valid(content) {
		f, err = container.PackBytes(content)
	} else {
		f, err = container.PackText(string(content))
	}
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", inPath, err)
	}

	var buf bytes.Buffer
	if err := container.Write(&buf, f); err != nil {
		return 0, 0, fmt.Errorf("%s: %w", inPath, err)
	}
	if err := writeOutput(outPath, buf.Bytes(), force); err != nil {
		return 0, 0, err
	}
	return len(content), buf.Len(), nil
}

func ratio(compressed, original int) float64 {
	if original == 0 {
		return 0
	}
	return float64(compressed) / float64(original) * 100
}
