package printer

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/memkit/mem"
	"github.com/joshuapare/memkit/mem/alloc"
)

// printSpaceText writes the classic two-line rendering: the free list on
// the first line and the allocated list on the second, each block as
// "(base , length)" followed by a space.
func (p *Printer) printSpaceText(s *alloc.Space) error {
	if err := p.printBlocksLine(s.FreeBlocks()); err != nil {
		return err
	}
	if err := p.printBlocksLine(s.AllocatedBlocks()); err != nil {
		return err
	}
	if p.opts.ShowStats {
		return p.printStatsText(s)
	}
	return nil
}

func (p *Printer) printBlocksLine(blocks []mem.Block) error {
	for _, b := range blocks {
		if _, err := fmt.Fprintf(p.writer, "%s ", b); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(p.writer)
	return err
}

// printStatsText renders counters and fragmentation metrics. Word counts
// are grouped per English locale conventions so large simulated spaces
// stay readable.
func (p *Printer) printStatsText(s *alloc.Space) error {
	mp := message.NewPrinter(language.English)
	st := s.Stats()
	fs := s.Fragmentation()

	if _, err := mp.Fprintf(p.writer,
		"capacity: %d words (%d free in %d blocks, %d allocated in %d blocks)\n",
		fs.Capacity, fs.FreeWords, fs.FreeBlocks, fs.AllocatedWords, fs.AllocatedBlocks,
	); err != nil {
		return err
	}
	if _, err := mp.Fprintf(p.writer,
		"largest free block: %d words, fragmentation: %.1f%%\n",
		fs.LargestFree, fs.Fragmentation*100,
	); err != nil {
		return err
	}
	_, err := mp.Fprintf(p.writer,
		"ops: %d allocs (%d failed), %d frees (%d failed), %d compactions\n",
		st.AllocCalls, st.FailedAllocs, st.FreeCalls, st.FailedFrees, st.CompactCalls,
	)
	return err
}
