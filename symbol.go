package statichuff

// Symbol represents a symbol in an arbitrary alphabet.  Negative symbols are
// not valid.
//
// When text is a Go string, each rune is one Symbol.
type Symbol int32

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// IsValid returns true iff this Symbol may appear in an alphabet.  Every
// non-negative int32 is valid.
func (sym Symbol) IsValid() bool {
	return sym >= 0
}

// SymbolsFromString splits text into one Symbol per rune.
func SymbolsFromString(text string) []Symbol {
	out := make([]Symbol, 0, len(text))
	for _, r := range text {
		out = append(out, Symbol(r))
	}
	return out
}

// SymbolsToString is the inverse of SymbolsFromString.
func SymbolsToString(symbols []Symbol) string {
	runes := make([]rune, len(symbols))
	for index, sym := range symbols {
		runes[index] = rune(sym)
	}
	return string(runes)
}
