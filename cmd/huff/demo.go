package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/chronos-tachyon/statichuff"
)

const (
	demoTreeText   = "This is test data for generating a huffman encoding!"
	demoEncodeText = "This is test data for encoding and decoding!"
)

var errDemoAlphabet = errors.New("second text uses symbols the first text lacks")

func demoCommand(args []string, stdout io.Writer) error {
	treeText, encodeText := demoTreeText, demoEncodeText
	switch len(args) {
	case 0:
	case 1:
		treeText, encodeText = args[0], args[0]
	case 2:
		treeText, encodeText = args[0], args[1]
	default:
		return fmt.Errorf("demo takes at most 2 arguments, got %d", len(args))
	}

	tree := statichuff.Build(statichuff.Count(treeText))
	if tree == nil {
		fmt.Fprintln(stdout, "nothing to encode")
		return nil
	}
	if _, err := tree.Dump(stdout); err != nil {
		return err
	}

	e := statichuff.Derive(tree)
	if _, err := e.Dump(stdout); err != nil {
		return err
	}

	if !e.Covers(statichuff.Count(encodeText)) {
		return errDemoAlphabet
	}
	data := e.Encode(encodeText)
	fmt.Fprintf(stdout, "Encoded %s\n\t% x\n", data, data.Bytes)

	decoded, err := e.Decode(data)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, decoded)
	if decoded != encodeText {
		return fmt.Errorf("round trip mismatch: %q != %q", decoded, encodeText)
	}
	return nil
}
