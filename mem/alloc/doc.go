// Package alloc implements a first-fit allocator over a simulated,
// word-addressed memory space.
//
// # Overview
//
// A Space manages a fixed number of words and hands out contiguous ranges
// of them. It keeps two insertion-ordered registries:
//
//   - the free registry: disjoint ranges currently available
//   - the allocated registry: ranges currently handed out, in allocation order
//
// The free registry starts as one block covering the whole space. Alloc
// carves ranges out of it, Free returns them, and Compact reorganizes the
// space to eliminate external fragmentation.
//
// # Allocation policy
//
// Alloc scans the free registry in registry order and takes the first block
// large enough (first-fit, not best-fit). Registry order is insertion order,
// not address order, which biases reuse toward the ranges freed earliest.
// An exact fit removes the free block; a larger block is shrunk in place -
// its base advances and its length drops by the amount taken - so the block
// keeps its position in the registry.
//
// Free performs no coalescing. Freed blocks accumulate at the end of the
// free registry verbatim until a Compact call merges them. Keeping Free
// cheap and side-effect-minimal is deliberate; Compact is the only
// operation allowed to reorganize free space globally.
//
// # Compaction
//
// Compact merges adjacent free blocks to a fixed point, then relocates
// every allocated block toward address zero, preserving allocation order
// and lengths, and rebuilds the free registry as one trailing block.
//
// Compact RELOCATES allocated blocks. Any base address returned by a prior
// Alloc is invalid after Compact; callers that compact must re-derive
// addresses from AllocatedBlocks. Compact never fails and is idempotent.
//
// # Errors
//
// All failures are ordinary sentinel error values (ErrNoSpace,
// ErrInvalidRequest, ErrUnknownAddress, ErrInvalidCapacity); none of them
// leave the Space mutated, and the Space never enters an unrecoverable
// state. ErrNoSpace in particular is the expected way allocation fails on
// a fragmented or full space - the Space never compacts on its own, that
// decision belongs to the caller.
//
// # Usage Example
//
//	sp, err := alloc.New(1024)
//	if err != nil {
//	    return err
//	}
//
//	addr, err := sp.Alloc(17)
//	if err != nil {
//	    return err
//	}
//
//	// ... use [addr, addr+17) ...
//
//	if err := sp.Free(addr); err != nil {
//	    return err
//	}
//	sp.Compact()
//
// # Thread Safety
//
// A Space is not safe for concurrent use. Callers must serialize access
// externally; Alloc, Free and Compact each mutate shared registry
// structure and must be atomic end-to-end relative to one another.
//
// # Tracing
//
// Setting the MEMKIT_LOG_ALLOC environment variable enables slog debug
// traces of every allocation, free and compaction.
package alloc
