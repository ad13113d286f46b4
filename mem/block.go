// Package mem defines the basic types shared by the memkit packages.
//
// The unit of measurement throughout memkit is the word: addresses are
// plain non-negative integers, and a Block describes a contiguous run of
// words. No real memory is touched anywhere in this module - the address
// space is purely simulated.
package mem

import "fmt"

// Block describes a contiguous range of words [Base, Base+Length).
//
// A Block with Length == 0 is never stored by any memkit container; the
// zero value exists only as a convenient "no block" placeholder.
type Block struct {
	Base   int // first word of the range
	Length int // number of words in the range
}

// End returns the first word past the range, i.e. Base+Length.
func (b Block) End() int {
	return b.Base + b.Length
}

// Contains reports whether addr falls inside the range.
func (b Block) Contains(addr int) bool {
	return addr >= b.Base && addr < b.End()
}

// Overlaps reports whether the two ranges share at least one word.
func (b Block) Overlaps(o Block) bool {
	return b.Base < o.End() && o.Base < b.End()
}

// AdjacentTo reports whether o starts exactly where b ends.
func (b Block) AdjacentTo(o Block) bool {
	return b.End() == o.Base
}

// String renders the block as "(base , length)".
func (b Block) String() string {
	return fmt.Sprintf("(%d , %d)", b.Base, b.Length)
}
