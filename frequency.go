package statichuff

import (
	"sort"
)

// FrequencyTable maps each distinct Symbol to its number of occurrences.
// Symbols that never occur are absent, so every stored count is >= 1.
type FrequencyTable map[Symbol]uint64

// Count tallies the runes of text.
func Count(text string) FrequencyTable {
	table := make(FrequencyTable)
	for _, r := range text {
		table[Symbol(r)]++
	}
	return table
}

// CountSymbols tallies an arbitrary Symbol sequence.
func CountSymbols(symbols []Symbol) FrequencyTable {
	table := make(FrequencyTable)
	for _, sym := range symbols {
		table[sym]++
	}
	return table
}

// Len returns the number of distinct symbols.
func (table FrequencyTable) Len() int {
	return len(table)
}

// Total returns the sum of all counts, i.e. the length of the counted text.
func (table FrequencyTable) Total() uint64 {
	var sum uint64
	for _, freq := range table {
		sum += freq
	}
	return sum
}

// Symbols returns the distinct symbols in ascending order.
func (table FrequencyTable) Symbols() []Symbol {
	out := make(bySymbol, 0, len(table))
	for sym := range table {
		out = append(out, sym)
	}
	out.Sort()
	return out
}

// type bySymbol {{{

type bySymbol []Symbol

func (list bySymbol) Sort() {
	sort.Sort(list)
}

func (list bySymbol) Len() int {
	return len(list)
}

func (list bySymbol) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySymbol) Less(i, j int) bool {
	return list[i] < list[j]
}

var _ sort.Interface = bySymbol(nil)

// }}}
