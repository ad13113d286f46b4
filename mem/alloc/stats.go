package alloc

import "github.com/joshuapare/memkit/mem/blocklist"

// Stats holds cumulative operation counters for a Space.
type Stats struct {
	AllocCalls     int   // Total Alloc() calls
	FailedAllocs   int   // Alloc() calls that returned an error
	FreeCalls      int   // Total Free() calls
	FailedFrees    int   // Free() calls that returned ErrUnknownAddress
	CompactCalls   int   // Total Compact() calls
	Splits         int   // Free blocks shrunk in place by a partial fit
	WordsAllocated int64 // Total words handed out
	WordsFreed     int64 // Total words returned
}

// Stats returns the cumulative operation counters.
func (s *Space) Stats() Stats {
	return s.stats
}

// FragmentationStats is a point-in-time view of how the space is carved up.
type FragmentationStats struct {
	Capacity        int     // Total addressable words
	FreeWords       int     // Words currently free
	AllocatedWords  int     // Words currently allocated
	FreeBlocks      int     // Number of blocks in the free registry
	AllocatedBlocks int     // Number of blocks in the allocated registry
	LargestFree     int     // Largest single free block
	Fragmentation   float64 // 1 - LargestFree/FreeWords; 0 when nothing is free
}

// Fragmentation computes a point-in-time fragmentation snapshot.
//
// Fragmentation is the classic external-fragmentation ratio: 0 means all
// free capacity sits in one block, values approaching 1 mean the free
// capacity is shattered into blocks too small to be individually useful.
func (s *Space) Fragmentation() FragmentationStats {
	fs := FragmentationStats{Capacity: s.capacity}

	for ref := s.free.Front(); ref != blocklist.None; ref = s.free.Next(ref) {
		blk := s.free.Get(ref)
		fs.FreeWords += blk.Length
		fs.FreeBlocks++
		if blk.Length > fs.LargestFree {
			fs.LargestFree = blk.Length
		}
	}
	for ref := s.allocated.Front(); ref != blocklist.None; ref = s.allocated.Next(ref) {
		fs.AllocatedWords += s.allocated.Get(ref).Length
		fs.AllocatedBlocks++
	}

	if fs.FreeWords > 0 {
		fs.Fragmentation = 1 - float64(fs.LargestFree)/float64(fs.FreeWords)
	}
	return fs
}
