// Package container stores Huffman-coded data in a self-describing binary
// format.
//
// An EncodedData cannot be decoded without the Encoding that produced it, and
// its valid-bit count cannot be inferred from its bytes.  A File therefore
// carries the FrequencyTable (from which the receiver rebuilds the same
// Encoding) and the LastByteLen next to the packed bytes.
//
// Layout, little-endian:
//
//     magic       [4]byte  "SHF1"
//     kind        uint8
//     lastByteLen uint8
//     numEntries  uint32
//     entries     numEntries × { symbol int32, freq uint64 }, ascending symbol
//     payloadLen  uint64
//     payload     payloadLen bytes
//
package container

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	statichuff "github.com/chronos-tachyon/statichuff"
)

// Magic identifies the start of a File.
const Magic = "SHF1"

// MaxEntries bounds the frequency table size accepted by Read.
const MaxEntries = 1 << 21

// MaxPayload bounds the payload size accepted by Read.
const MaxPayload = 1 << 34

var (
	// ErrBadMagic is returned by Read when the input does not start with
	// Magic.
	ErrBadMagic = errors.New("container: bad magic")

	// ErrBadKind is returned for a Kind other than KindText or KindBytes,
	// and when Text or Bytes is called on a File of the other kind.
	ErrBadKind = errors.New("container: unknown kind")

	// ErrBadHeader is returned when the header is well-formed but its
	// contents cannot describe a valid code.
	ErrBadHeader = errors.New("container: malformed header")

	// ErrTooDeep is returned when a frequency table is so skewed that its
	// tree has paths longer than statichuff.MaxSteps.
	ErrTooDeep = errors.New("container: code tree too deep")

	// ErrCountMismatch is returned by Unpack when the number of decoded
	// symbols differs from the total of the frequency table.
	ErrCountMismatch = errors.New("container: decoded symbol count does not match frequency table")
)

// Kind says how the decoded Symbols are turned back into content.
type Kind uint8

const (
	// KindText means each Symbol is a rune of UTF-8 text.
	KindText Kind = 0

	// KindBytes means each Symbol is a byte value.
	KindBytes Kind = 1
)

// String returns "text" or "bytes".
func (kind Kind) String() string {
	switch kind {
	case KindText:
		return "text"
	case KindBytes:
		return "bytes"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(kind))
	}
}

// File is one compressed document.
type File struct {
	Kind        Kind
	Frequencies statichuff.FrequencyTable
	Data        statichuff.EncodedData
}

// Pack counts, builds, derives and encodes symbols in one go.  It fails with
// ErrTooDeep if the symbol distribution is too skewed to be coded.
func Pack(kind Kind, symbols []statichuff.Symbol) (*File, error) {
	f := &File{Kind: kind, Frequencies: statichuff.CountSymbols(symbols)}
	e, err := f.Encoding()
	if err != nil {
		return nil, err
	}
	if e != nil {
		f.Data = e.EncodeSymbols(symbols)
	}
	return f, nil
}

// PackText packs the runes of text.
func PackText(text string) (*File, error) {
	return Pack(KindText, statichuff.SymbolsFromString(text))
}

// PackBytes packs raw bytes, one Symbol per byte.
func PackBytes(content []byte) (*File, error) {
	symbols := make([]statichuff.Symbol, len(content))
	for index, b := range content {
		symbols[index] = statichuff.Symbol(b)
	}
	return Pack(KindBytes, symbols)
}

// Encoding rebuilds the Encoding from the stored frequencies.  It returns
// nil, nil if the File is empty, and ErrTooDeep if some path would be longer
// than statichuff.MaxSteps.
func (f *File) Encoding() (*statichuff.Encoding, error) {
	tree := statichuff.Build(f.Frequencies)
	if tree == nil {
		return nil, nil
	}
	if depth := tree.Depth(); depth > statichuff.MaxSteps {
		return nil, fmt.Errorf("%w: depth %d, max %d", ErrTooDeep, depth, statichuff.MaxSteps)
	}
	return statichuff.Derive(tree), nil
}

// Unpack decodes the payload.  Besides the checks made by the decoder, the
// number of decoded symbols must equal the total of the frequency table.
func (f *File) Unpack() ([]statichuff.Symbol, error) {
	e, err := f.Encoding()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadHeader, err)
	}
	if e == nil {
		if err := f.Data.Validate(); err != nil {
			return nil, err
		}
		if f.Data.BitLen() != 0 {
			return nil, fmt.Errorf("%w: %d payload bits with an empty table", ErrCountMismatch, f.Data.BitLen())
		}
		return []statichuff.Symbol{}, nil
	}

	symbols, err := e.DecodeSymbols(f.Data)
	if err != nil {
		return nil, err
	}
	if expect := f.Frequencies.Total(); uint64(len(symbols)) != expect {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrCountMismatch, expect, len(symbols))
	}
	return symbols, nil
}

// Text unpacks a KindText file.
func (f *File) Text() (string, error) {
	if f.Kind != KindText {
		return "", fmt.Errorf("%w: want %v, have %v", ErrBadKind, KindText, f.Kind)
	}
	symbols, err := f.Unpack()
	if err != nil {
		return "", err
	}
	return statichuff.SymbolsToString(symbols), nil
}

// Bytes unpacks a KindBytes file.
func (f *File) Bytes() ([]byte, error) {
	if f.Kind != KindBytes {
		return nil, fmt.Errorf("%w: want %v, have %v", ErrBadKind, KindBytes, f.Kind)
	}
	symbols, err := f.Unpack()
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(symbols))
	for index, sym := range symbols {
		if sym < 0 || sym > 0xff {
			return nil, fmt.Errorf("%w: symbol %d at index %d is not a byte", ErrBadHeader, sym, index)
		}
		out[index] = byte(sym)
	}
	return out, nil
}

// Content unpacks either kind of file into raw bytes.
func (f *File) Content() ([]byte, error) {
	if f.Kind == KindText {
		text, err := f.Text()
		return []byte(text), err
	}
	return f.Bytes()
}

// Write serializes f to w.
func Write(w io.Writer, f *File) error {
	if err := f.Data.Validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(Magic); err != nil {
		return err
	}
	if err := bw.WriteByte(byte(f.Kind)); err != nil {
		return err
	}
	if err := bw.WriteByte(f.Data.LastByteLen); err != nil {
		return err
	}

	symbols := f.Frequencies.Symbols()
	if err := binary.Write(bw, binary.LittleEndian, uint32(len(symbols))); err != nil {
		return err
	}
	for _, sym := range symbols {
		if err := binary.Write(bw, binary.LittleEndian, int32(sym)); err != nil {
			return err
		}
		if err := binary.Write(bw, binary.LittleEndian, f.Frequencies[sym]); err != nil {
			return err
		}
	}

	if err := binary.Write(bw, binary.LittleEndian, uint64(len(f.Data.Bytes))); err != nil {
		return err
	}
	if _, err := bw.Write(f.Data.Bytes); err != nil {
		return err
	}
	return bw.Flush()
}

// Read parses a File previously written by Write.
func Read(r io.Reader) (*File, error) {
	br := bufio.NewReader(r)

	magic := make([]byte, len(Magic))
	if _, err := io.ReadFull(br, magic); err != nil {
		return nil, fmt.Errorf("container: read magic: %w", err)
	}
	if string(magic) != Magic {
		return nil, fmt.Errorf("%w: %q", ErrBadMagic, magic)
	}

	var fixed [2]byte
	if _, err := io.ReadFull(br, fixed[:]); err != nil {
		return nil, fmt.Errorf("container: read header: %w", err)
	}
	kind := Kind(fixed[0])
	if kind != KindText && kind != KindBytes {
		return nil, fmt.Errorf("%w: %d", ErrBadKind, fixed[0])
	}

	var count uint32
	if err := binary.Read(br, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("container: read entry count: %w", err)
	}
	if count > MaxEntries {
		return nil, fmt.Errorf("%w: %d entries, max %d", ErrBadHeader, count, MaxEntries)
	}

	table := make(statichuff.FrequencyTable, count)
	for i := uint32(0); i < count; i++ {
		var entry struct {
			Symbol int32
			Freq   uint64
		}
		if err := binary.Read(br, binary.LittleEndian, &entry); err != nil {
			return nil, fmt.Errorf("container: read entry %d: %w", i, err)
		}
		sym := statichuff.Symbol(entry.Symbol)
		if !sym.IsValid() || entry.Freq == 0 {
			return nil, fmt.Errorf("%w: entry %d is {%d, %d}", ErrBadHeader, i, entry.Symbol, entry.Freq)
		}
		if _, dup := table[sym]; dup {
			return nil, fmt.Errorf("%w: symbol %d listed twice", ErrBadHeader, sym)
		}
		table[sym] = entry.Freq
	}

	var payloadLen uint64
	if err := binary.Read(br, binary.LittleEndian, &payloadLen); err != nil {
		return nil, fmt.Errorf("container: read payload length: %w", err)
	}
	if payloadLen > MaxPayload {
		return nil, fmt.Errorf("%w: payload of %d bytes, max %d", ErrBadHeader, payloadLen, uint64(MaxPayload))
	}

	payload, err := io.ReadAll(io.LimitReader(br, int64(payloadLen)))
	if err != nil {
		return nil, fmt.Errorf("container: read payload: %w", err)
	}
	if uint64(len(payload)) != payloadLen {
		return nil, fmt.Errorf("container: read payload: %w", io.ErrUnexpectedEOF)
	}
	if payloadLen == 0 {
		payload = nil
	}

	f := &File{
		Kind:        kind,
		Frequencies: table,
		Data:        statichuff.EncodedData{Bytes: payload, LastByteLen: fixed[1]},
	}
	if err := f.Data.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}
