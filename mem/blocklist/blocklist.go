// Package blocklist implements the insertion-ordered block sequence used by
// the allocator for its free and allocated registries.
//
// The list is arena-backed: nodes live in a growable slice and link to each
// other through slot indices rather than pointers. A Ref names a slot and
// stays valid until that node is removed; removing a node never renumbers
// the survivors, so a caller may remove the node an iteration is currently
// standing on and keep walking from a previously captured neighbor.
//
// Freed slots are recycled through an internal chain of slot indices, so a
// list that churns (the allocator's free registry does) stops growing once
// it reaches its high-water mark.
package blocklist

import (
	"fmt"
	"strings"

	"github.com/joshuapare/memkit/mem"
)

// Ref is a position-stable handle to a node in a List.
type Ref int32

// None is the null handle. Front, Back and Next return it when the list or
// the walk is exhausted.
const None Ref = -1

// recycled marks a slot that sits on the free-slot chain. Stored in a
// node's prev field so stale Refs are caught on use.
const recycled Ref = -2

type node struct {
	block mem.Block
	prev  Ref
	next  Ref
}

// List is an insertion-ordered sequence of blocks. The zero value is not
// usable; call New.
type List struct {
	nodes    []node
	head     Ref
	tail     Ref
	freeSlot Ref // head of the recycled-slot chain, linked through next
	size     int
}

// New returns an empty list.
func New() *List {
	return &List{head: None, tail: None, freeSlot: None}
}

// Len returns the number of blocks in the list.
func (l *List) Len() int {
	return l.size
}

// Front returns the first node, or None if the list is empty.
func (l *List) Front() Ref {
	return l.head
}

// Back returns the last node, or None if the list is empty.
func (l *List) Back() Ref {
	return l.tail
}

// Next returns the node after ref, or None at the end of the list.
func (l *List) Next(ref Ref) Ref {
	return l.node(ref).next
}

// Prev returns the node before ref, or None at the front of the list.
func (l *List) Prev(ref Ref) Ref {
	return l.node(ref).prev
}

// Get returns the block stored at ref.
func (l *List) Get(ref Ref) mem.Block {
	return l.node(ref).block
}

// Set replaces the block stored at ref in place. This is the mutation
// primitive the allocator uses to shrink a free block during a split: the
// node keeps its position and identity, only its payload changes.
func (l *List) Set(ref Ref, b mem.Block) {
	l.node(ref).block = b
}

// PushBack appends a block and returns its handle.
func (l *List) PushBack(b mem.Block) Ref {
	ref := l.alloc(b)
	n := &l.nodes[ref]
	n.prev = l.tail
	n.next = None
	if l.tail != None {
		l.nodes[l.tail].next = ref
	} else {
		l.head = ref
	}
	l.tail = ref
	l.size++
	return ref
}

// PushFront prepends a block and returns its handle.
func (l *List) PushFront(b mem.Block) Ref {
	ref := l.alloc(b)
	n := &l.nodes[ref]
	n.prev = None
	n.next = l.head
	if l.head != None {
		l.nodes[l.head].prev = ref
	} else {
		l.tail = ref
	}
	l.head = ref
	l.size++
	return ref
}

// Remove unlinks the node at ref and recycles its slot. The handle becomes
// invalid; every other handle is unaffected.
func (l *List) Remove(ref Ref) {
	n := l.node(ref)
	if n.prev != None {
		l.nodes[n.prev].next = n.next
	} else {
		l.head = n.next
	}
	if n.next != None {
		l.nodes[n.next].prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.block = mem.Block{}
	n.prev = recycled
	n.next = l.freeSlot
	l.freeSlot = ref
	l.size--
}

// Blocks returns the blocks in list order as a fresh slice.
func (l *List) Blocks() []mem.Block {
	out := make([]mem.Block, 0, l.size)
	for ref := l.head; ref != None; ref = l.nodes[ref].next {
		out = append(out, l.nodes[ref].block)
	}
	return out
}

// String renders the list the way the diagnostic output expects it: each
// block as "(base , length)" followed by a single space.
func (l *List) String() string {
	var sb strings.Builder
	for ref := l.head; ref != None; ref = l.nodes[ref].next {
		sb.WriteString(l.nodes[ref].block.String())
		sb.WriteByte(' ')
	}
	return sb.String()
}

// alloc takes a slot off the recycled chain, or grows the arena.
func (l *List) alloc(b mem.Block) Ref {
	if l.freeSlot != None {
		ref := l.freeSlot
		l.freeSlot = l.nodes[ref].next
		l.nodes[ref] = node{block: b}
		return ref
	}
	l.nodes = append(l.nodes, node{block: b})
	return Ref(len(l.nodes) - 1)
}

// node validates ref and returns the backing node.
func (l *List) node(ref Ref) *node {
	if ref < 0 || int(ref) >= len(l.nodes) {
		panic(fmt.Sprintf("blocklist: ref %d out of range [0,%d)", ref, len(l.nodes)))
	}
	n := &l.nodes[ref]
	if n.prev == recycled {
		panic(fmt.Sprintf("blocklist: ref %d used after Remove", ref))
	}
	return n
}
