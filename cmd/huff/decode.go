package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	pb "github.com/cheggaaa/pb/v3"

	"github.com/chronos-tachyon/statichuff/container"
	"github.com/chronos-tachyon/statichuff/internal/logger"
)

func decodeCommand(args []string, stderr io.Writer, logg logger.Logger) error {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	fs.SetOutput(stderr)
	quiet := fs.Bool("quiet", false, "Suppress progress and per-file reports")
	force := fs.Bool("force", false, "Overwrite existing output files")
	ext := fs.String("ext", ".huff", "File extension of compressed files")
	if err := fs.Parse(args); err != nil {
		return err
	}

	files := splitFiles(fs.Args())
	if len(files) == 0 {
		return errNoFiles
	}

	var bar *pb.ProgressBar
	if !*quiet {
		bar = pb.New(len(files))
		bar.SetWriter(stderr)
		bar.Start()
		defer bar.Finish()
	}

	for _, file := range files {
		outPath := strings.TrimSuffix(file, *ext)
		if outPath == file {
			outPath = file + ".out"
		}
		n, err := decodeFile(file, outPath, *force)
		if err != nil {
			return err
		}
		if bar != nil {
			bar.Increment()
		}
		if !*quiet {
			logg.Infof("%s: restored %d bytes to %s", file, n, outPath)
		}
	}
	return nil
}

func decodeFile(inPath, outPath string, force bool) (int, error) {
	raw, err := os.ReadFile(inPath)
	if err != nil {
		return 0, err
	}

	f, err := container.Read(bytes.NewReader(raw))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", inPath, err)
	}
	content, err := f.Content()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", inPath, err)
	}

	if err := writeOutput(outPath, content, force); err != nil {
		return 0, err
	}
	return len(content), nil
}

// writeOutput refuses to replace an existing file unless force is set.
func writeOutput(path string, content []byte, force bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}
	out, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return err
	}
	if _, err := out.Write(content); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
