package statichuff

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/icza/bitio"
)

var (
	// ErrTruncatedStream is returned when the bits run out in the middle of
	// a codeword.  The data was truncated, corrupted, or paired with the
	// wrong Encoding.
	ErrTruncatedStream = errors.New("statichuff: truncated or corrupt stream")

	// ErrCorruptStream is returned when the accumulated bits grow longer
	// than the longest codeword without matching any symbol.  This can only
	// happen when the data was produced by a different Encoding.
	ErrCorruptStream = errors.New("statichuff: bit sequence matches no symbol")
)

// Decode decodes data back into text.
func (e *Encoding) Decode(data EncodedData) (string, error) {
	symbols, err := e.DecodeSymbols(data)
	if err != nil {
		return "", err
	}
	return SymbolsToString(symbols), nil
}

// DecodeSymbols decodes data back into a Symbol sequence.
//
// The decoder reads one bit at a time, pushing it onto an accumulated path.
// Whenever that path is exactly some symbol's codeword, the symbol is emitted
// and the path starts over.  Because no codeword is a prefix of another, the
// first match is always the right one.
//
func (e *Encoding) DecodeSymbols(data EncodedData) ([]Symbol, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}

	numBits := data.BitLen()
	if numBits == 0 {
		return []Symbol{}, nil
	}

	capacity := numBits
	if e.minSize > 1 {
		capacity /= uint64(e.minSize)
	}
	out := make([]Symbol, 0, capacity)
	r := bitio.NewReader(bytes.NewReader(data.Bytes))

	var acc Steps
	for offset := uint64(0); offset < numBits; offset++ {
		bit, err := r.ReadBool()
		if err != nil {
			return nil, fmt.Errorf("statichuff: failed to read bit %d of %d: %w", offset, numBits, err)
		}

		if bit {
			acc.Push(Right)
		} else {
			acc.Push(Left)
		}

		if sym, found := e.symbols[acc]; found {
			out = append(out, sym)
			acc.Reset()
			continue
		}

		if acc.size >= e.maxSize {
			return nil, fmt.Errorf("%w: %s at bit %d", ErrCorruptStream, acc, offset)
		}
	}

	if !acc.IsEmpty() {
		return nil, fmt.Errorf("%w: %d unresolved bits %s after %d symbols", ErrTruncatedStream, acc.Len(), acc, len(out))
	}
	return out, nil
}
