package statichuff

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// Encoding is the two-way mapping between symbols and their paths that is
// derived from a Tree.  It is immutable and does not refer back to the Tree,
// so it may be shared by any number of concurrent Encode and Decode calls.
type Encoding struct {
	paths   map[Symbol]Steps
	symbols map[Steps]Symbol
	minSize uint8
	maxSize uint8
}

// Derive walks the tree once and records the path to every leaf.
//
// A tree for a one-symbol alphabet is a lone Leaf whose path is empty.  An
// empty codeword cannot be told apart from no codeword at all, so that symbol
// is assigned the one-step path "0" instead.
//
func Derive(tree *Tree) *Encoding {
	assert.Assertf(tree != nil, "Derive called with a nil Tree")

	e := &Encoding{
		paths:   make(map[Symbol]Steps),
		symbols: make(map[Steps]Symbol),
	}

	if leaf, ok := tree.root.(*Leaf); ok {
		var steps Steps
		steps.Push(Left)
		e.record(leaf.Symbol, steps)
		return e
	}

	// Walk the tree with an explicit stack.  The stack only ever holds
	// Internal nodes; its depth equals the length of the current path.
	//
	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children

	type stackItem struct {
		node *Internal
		x    byte
	}

	var steps Steps
	stack := make([]stackItem, 0, MaxSteps)

	processChild := func(child Node) {
		switch x := child.(type) {
		case *Leaf:
			e.record(x.Symbol, steps)
		case *Internal:
			stack = append(stack, stackItem{node: x})
		}
	}

	stack = append(stack, stackItem{node: tree.root.(*Internal)})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			steps.Push(Left)
			processChild(top.node.Left)
		case 1:
			steps.Pop()
			steps.Push(Right)
			processChild(top.node.Right)
		case 2:
			steps.Pop()
			stack = stack[:len(stack)-1]
		}
	}
	return e
}

func (e *Encoding) record(sym Symbol, steps Steps) {
	_, dupSym := e.paths[sym]
	_, dupPath := e.symbols[steps]
	assert.Assertf(!dupSym, "symbol %d appears in more than one leaf", sym)
	assert.Assertf(!dupPath, "path %s assigned twice", steps)

	e.paths[sym] = steps
	e.symbols[steps] = sym

	size := uint8(steps.Len())
	if len(e.paths) == 1 || e.minSize > size {
		e.minSize = size
	}
	if e.maxSize < size {
		e.maxSize = size
	}
}

// Lookup returns the path assigned to sym.
func (e *Encoding) Lookup(sym Symbol) (Steps, bool) {
	steps, found := e.paths[sym]
	return steps, found
}

// Resolve returns the symbol whose path is exactly steps.
func (e *Encoding) Resolve(steps Steps) (Symbol, bool) {
	sym, found := e.symbols[steps]
	if !found {
		return InvalidSymbol, false
	}
	return sym, true
}

// Covers returns true iff every symbol in table has a path in e, i.e. iff e
// can encode any text that table could have been counted from.
func (e *Encoding) Covers(table FrequencyTable) bool {
	for sym := range table {
		if _, found := e.paths[sym]; !found {
			return false
		}
	}
	return true
}

// Len returns the number of symbols in the alphabet.
func (e *Encoding) Len() int {
	return len(e.paths)
}

// MinLen is the length of the shortest path.
func (e *Encoding) MinLen() int {
	return int(e.minSize)
}

// MaxLen is the length of the longest path.
func (e *Encoding) MaxLen() int {
	return int(e.maxSize)
}

// Symbols returns the alphabet in ascending order.
func (e *Encoding) Symbols() []Symbol {
	out := make(bySymbol, 0, len(e.paths))
	for sym := range e.paths {
		out = append(out, sym)
	}
	out.Sort()
	return out
}

// Dump writes a programmer-readable debugging dump of the Encoding to the
// given writer, ordered by path.
func (e *Encoding) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoding{\n")
	fmt.Fprintf(&buf, "\tMinLen() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxLen() = %d\n", e.maxSize)
	keys := make(bySteps, 0, len(e.symbols))
	for steps := range e.symbols {
		keys = append(keys, steps)
	}
	keys.Sort()
	for _, steps := range keys {
		fmt.Fprintf(&buf, "\t%q = %s\n", rune(e.symbols[steps]), steps)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// String returns the Dump output as a string.
func (e *Encoding) String() string {
	var buf bytes.Buffer
	_, _ = e.Dump(&buf)
	return buf.String()
}

// type bySteps {{{

type bySteps []Steps

func (list bySteps) Sort() {
	sort.Sort(list)
}

func (list bySteps) Len() int {
	return len(list)
}

func (list bySteps) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySteps) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.size != b.size {
		return a.size < b.size
	}
	return a.bits < b.bits
}

var _ sort.Interface = bySteps(nil)

// }}}
