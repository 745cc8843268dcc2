package statichuff

import (
	"fmt"
	"iter"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// MaxSteps is the longest path that a Steps value can hold.
const MaxSteps = 32

// Step is a single branch decision on the way from the root to a leaf.
type Step byte

const (
	// Left descends into Internal.Left and is encoded as a 0 bit.
	Left Step = 0

	// Right descends into Internal.Right and is encoded as a 1 bit.
	Right Step = 1
)

// String returns "L" or "R".
func (step Step) String() string {
	if step == Right {
		return "R"
	}
	return "L"
}

// Steps represents a root-to-leaf path, which doubles as the leaf's codeword.
//
// The most recently pushed Step is the least significant bit of bits, so the
// first pushed Step is bit (size-1).  Bits above size are always zero, which
// makes Steps values comparable with == and usable as map keys: two paths
// are equal iff both their size and their bits match.
type Steps struct {
	bits uint32
	size uint8
}

// MakeSteps constructs a Steps from the given size and bits.  Bits are read
// the same way Steps stores them: bit (size-1) is the first Step.
func MakeSteps(size uint8, bits uint32) Steps {
	assert.Assertf(size <= MaxSteps, "size %d > MaxSteps %d", size, MaxSteps)
	return Steps{bits: bits & lowMask(size), size: size}
}

// Len returns the number of Steps in the path.
func (s Steps) Len() int {
	return int(s.size)
}

// Bits returns the raw bits of the path; see the Steps type for the layout.
func (s Steps) Bits() uint32 {
	return s.bits
}

// IsEmpty returns true iff the path has no Steps.
func (s Steps) IsEmpty() bool {
	return s.size == 0
}

// Push appends one Step to the end of the path.
func (s *Steps) Push(step Step) {
	assert.Assertf(s.size < MaxSteps, "path of %d steps is already full", s.size)
	s.bits = (s.bits << 1) | uint32(step&1)
	s.size++
}

// Pop removes and returns the most recently pushed Step.
func (s *Steps) Pop() (Step, bool) {
	if s.size == 0 {
		return Left, false
	}
	step := Step(s.bits & 1)
	s.bits >>= 1
	s.size--
	return step, true
}

// Reset empties the path.
func (s *Steps) Reset() {
	*s = Steps{}
}

// At returns the index'th Step in push order.
func (s Steps) At(index int) Step {
	assert.Assertf(index >= 0 && index < int(s.size), "index %d out of range [0, %d)", index, s.size)
	shift := uint(s.size) - 1 - uint(index)
	return Step((s.bits >> shift) & 1)
}

// All iterates over the Steps in push order, oldest first.
func (s Steps) All() iter.Seq[Step] {
	return func(yield func(Step) bool) {
		for index := 0; index < int(s.size); index++ {
			if !yield(s.At(index)) {
				return
			}
		}
	}
}

// Backward iterates over the Steps from the most recently pushed to the
// oldest.
func (s Steps) Backward() iter.Seq[Step] {
	return func(yield func(Step) bool) {
		bits := s.bits
		for index := 0; index < int(s.size); index++ {
			if !yield(Step(bits & 1)) {
				return
			}
			bits >>= 1
		}
	}
}

// HasPrefix returns true iff prefix is a (not necessarily proper) prefix of
// this path.
func (s Steps) HasPrefix(prefix Steps) bool {
	if prefix.size > s.size {
		return false
	}
	return s.bits>>(s.size-prefix.size) == prefix.bits
}

// String returns the string representation of this path as quoted bits in
// push order, e.g. "\"0110\"".
func (s Steps) String() string {
	if s.size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(s.size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, s.bits))
}

var _ fmt.Stringer = Steps{}

func lowMask(size uint8) uint32 {
	if size >= 32 {
		return ^uint32(0)
	}
	return (uint32(1) << size) - 1
}
