// Package printer renders diagnostic views of a memory space.
//
// The output is a debugging aid owned by the callers of the allocator, not
// part of the allocator's contract: nothing in memkit consults a rendering
// to make decisions, and the formats may change between releases.
package printer

import (
	"io"

	"github.com/joshuapare/memkit/mem/alloc"
)

// Options controls what a Printer emits.
type Options struct {
	JSON      bool // emit JSON instead of text
	ShowStats bool // append operation counters and fragmentation metrics
}

// Printer writes diagnostic renderings of a Space to a writer.
type Printer struct {
	writer io.Writer
	opts   Options
}

// New creates a Printer writing to w.
func New(w io.Writer, opts Options) *Printer {
	return &Printer{writer: w, opts: opts}
}

// PrintSpace renders the space: the free registry first, then the
// allocated registry, each in registry order.
func (p *Printer) PrintSpace(s *alloc.Space) error {
	if p.opts.JSON {
		return p.printSpaceJSON(s)
	}
	return p.printSpaceText(s)
}
