package alloc

import (
	"log/slog"
	"os"

	"github.com/joshuapare/memkit/mem"
	"github.com/joshuapare/memkit/mem/blocklist"
)

// Runtime trace flag - controlled by the MEMKIT_LOG_ALLOC env var.
var logAlloc = os.Getenv("MEMKIT_LOG_ALLOC") != ""

// trace writes to stderr at debug level so MEMKIT_LOG_ALLOC works without
// any logger configuration by the caller.
var trace = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	Level: slog.LevelDebug,
}))

// Space is a simulated memory space of a fixed number of words.
//
// Not safe for concurrent use; see the package documentation.
type Space struct {
	capacity  int
	free      *blocklist.List
	allocated *blocklist.List

	stats Stats
}

// New constructs a Space managing capacity words. The free registry starts
// as the single block {0, capacity}; nothing is allocated.
func New(capacity int) (*Space, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	free := blocklist.New()
	free.PushBack(mem.Block{Base: 0, Length: capacity})
	return &Space{
		capacity:  capacity,
		free:      free,
		allocated: blocklist.New(),
	}, nil
}

// Capacity returns the total number of addressable words.
func (s *Space) Capacity() int {
	return s.capacity
}

// Alloc reserves length words and returns the base address of the reserved
// block. The free registry is scanned in registry order and the first block
// large enough is used (first-fit).
//
// Returns ErrInvalidRequest for a non-positive length and ErrNoSpace when
// no free block is large enough; neither error mutates the Space.
func (s *Space) Alloc(length int) (int, error) {
	s.stats.AllocCalls++

	if length <= 0 {
		s.stats.FailedAllocs++
		return 0, ErrInvalidRequest
	}

	for ref := s.free.Front(); ref != blocklist.None; ref = s.free.Next(ref) {
		blk := s.free.Get(ref)
		if blk.Length < length {
			continue
		}

		base := blk.Base
		if blk.Length == length {
			// Exact fit: the free block is consumed whole.
			s.free.Remove(ref)
		} else {
			// Split: shrink the free block in place so it keeps its
			// position in the registry.
			blk.Base += length
			blk.Length -= length
			s.free.Set(ref, blk)
			s.stats.Splits++
		}

		s.allocated.PushBack(mem.Block{Base: base, Length: length})
		s.stats.WordsAllocated += int64(length)

		if logAlloc {
			trace.Debug("alloc", "base", base, "length", length, "freeBlocks", s.free.Len())
		}
		return base, nil
	}

	s.stats.FailedAllocs++
	if logAlloc {
		trace.Debug("alloc failed", "length", length, "freeBlocks", s.free.Len())
	}
	return 0, ErrNoSpace
}

// Free returns the block whose base address equals addr to the free
// registry. The block moves verbatim - same base, same length - to the end
// of the free registry; no coalescing happens until Compact.
//
// Returns ErrUnknownAddress when addr is not the base of a currently
// allocated block. Freeing twice reports the same error, since the first
// Free already removed the address from the allocated registry.
func (s *Space) Free(addr int) error {
	s.stats.FreeCalls++

	for ref := s.allocated.Front(); ref != blocklist.None; ref = s.allocated.Next(ref) {
		blk := s.allocated.Get(ref)
		if blk.Base != addr {
			continue
		}

		s.allocated.Remove(ref)
		s.free.PushBack(blk)
		s.stats.WordsFreed += int64(blk.Length)

		if logAlloc {
			trace.Debug("free", "base", blk.Base, "length", blk.Length)
		}
		return nil
	}

	s.stats.FailedFrees++
	if logAlloc {
		trace.Debug("free failed", "addr", addr)
	}
	return ErrUnknownAddress
}

// Compact eliminates external fragmentation. Adjacent free blocks are
// merged to a fixed point, every allocated block is relocated toward
// address zero (allocation order and lengths preserved), and the free
// registry is rebuilt as the single trailing block - or emptied when the
// space is fully allocated.
//
// Compact invalidates previously returned base addresses; see the package
// documentation. It never fails, and compacting an already compact Space
// is a no-op.
func (s *Space) Compact() {
	s.stats.CompactCalls++

	s.mergeFree()

	// Relocation pass: pack allocated blocks to the front of the address
	// space in allocation order. Blocks mutate in place, preserving their
	// registry identity.
	next := 0
	for ref := s.allocated.Front(); ref != blocklist.None; ref = s.allocated.Next(ref) {
		blk := s.allocated.Get(ref)
		if blk.Base != next {
			blk.Base = next
			s.allocated.Set(ref, blk)
		}
		next += blk.Length
	}

	// All free space is now the one contiguous tail.
	s.free = blocklist.New()
	if next < s.capacity {
		s.free.PushBack(mem.Block{Base: next, Length: s.capacity - next})
	}

	if logAlloc {
		trace.Debug("compact", "allocatedWords", next, "freeWords", s.capacity-next)
	}
}

// mergeFree merges directly adjacent free blocks until no adjacent pair
// remains. The registry is insertion-ordered, so a single pass is not
// enough: a merge can create adjacency with a block anywhere in the
// registry. Each merge keeps the earlier-positioned survivor and restarts
// the scan.
func (s *Space) mergeFree() {
	for merged := true; merged; {
		merged = false
	scan:
		for a := s.free.Front(); a != blocklist.None; a = s.free.Next(a) {
			ab := s.free.Get(a)
			for b := s.free.Front(); b != blocklist.None; b = s.free.Next(b) {
				if b == a {
					continue
				}
				bb := s.free.Get(b)
				if ab.AdjacentTo(bb) {
					ab.Length += bb.Length
					s.free.Set(a, ab)
					s.free.Remove(b)
					merged = true
					break scan
				}
			}
		}
	}
}

// FreeBlocks returns a snapshot of the free registry in registry order.
func (s *Space) FreeBlocks() []mem.Block {
	return s.free.Blocks()
}

// AllocatedBlocks returns a snapshot of the allocated registry in
// allocation order.
func (s *Space) AllocatedBlocks() []mem.Block {
	return s.allocated.Blocks()
}
