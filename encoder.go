package statichuff

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// ErrInvalidLastByteLen is returned when an EncodedData's LastByteLen does
// not agree with its Bytes.
var ErrInvalidLastByteLen = errors.New("statichuff: invalid last byte length")

// EncodedData is a packed bit stream.
//
// Bits are packed most-significant-bit first.  Every byte except the last is
// fully used; only the first LastByteLen bits of the last byte are valid and
// the rest are zero.  LastByteLen is in 1..8 whenever Bytes is non-empty and
// 0 when it is empty.  It cannot be recovered from Bytes alone, so anything
// that stores Bytes must store LastByteLen alongside it.
type EncodedData struct {
	Bytes       []byte
	LastByteLen uint8
}

// BitLen returns the number of valid bits.
func (data EncodedData) BitLen() uint64 {
	if len(data.Bytes) == 0 {
		return 0
	}
	return uint64(len(data.Bytes)-1)*8 + uint64(data.LastByteLen)
}

// Validate checks the relationship between Bytes and LastByteLen.
func (data EncodedData) Validate() error {
	if len(data.Bytes) == 0 {
		if data.LastByteLen != 0 {
			return fmt.Errorf("%w: got %d for an empty buffer", ErrInvalidLastByteLen, data.LastByteLen)
		}
		return nil
	}
	if data.LastByteLen < 1 || data.LastByteLen > 8 {
		return fmt.Errorf("%w: got %d, want 1 .. 8", ErrInvalidLastByteLen, data.LastByteLen)
	}
	return nil
}

// String returns a short description of the data.
func (data EncodedData) String() string {
	return fmt.Sprintf("(%d bytes, %d bits, last byte uses %d bits)", len(data.Bytes), data.BitLen(), data.LastByteLen)
}

var _ fmt.Stringer = EncodedData{}

// Encode encodes the runes of text.
func (e *Encoding) Encode(text string) EncodedData {
	return e.EncodeSymbols(SymbolsFromString(text))
}

// EncodeSymbols emits the path of every symbol, in order, into a packed bit
// stream.
//
// Every symbol must be part of the alphabet this Encoding was derived from;
// encoding anything else is a programming error and panics.
//
func (e *Encoding) EncodeSymbols(symbols []Symbol) EncodedData {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)

	var numBits uint64
	for index, sym := range symbols {
		steps, found := e.paths[sym]
		assert.Assertf(found, "symbol %d at index %d is not in the encoding's alphabet", sym, index)

		err := w.WriteBits(uint64(steps.bits), steps.size)
		assert.Assertf(err == nil, "write to bytes.Buffer failed: %v", err)
		numBits += uint64(steps.size)
	}

	// Close pads the final partial byte with zeros and flushes it.
	err := w.Close()
	assert.Assertf(err == nil, "write to bytes.Buffer failed: %v", err)

	if numBits == 0 {
		return EncodedData{}
	}

	lastByteLen := uint8(numBits % 8)
	if lastByteLen == 0 {
		lastByteLen = 8
	}
	return EncodedData{Bytes: buf.Bytes(), LastByteLen: lastByteLen}
}
