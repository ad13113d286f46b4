package blocklist

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/memkit/mem"
)

func blk(base, length int) mem.Block {
	return mem.Block{Base: base, Length: length}
}

func Test_List_PushBackOrder(t *testing.T) {
	l := New()
	require.Zero(t, l.Len())
	require.Equal(t, None, l.Front())
	require.Equal(t, None, l.Back())

	l.PushBack(blk(0, 1))
	l.PushBack(blk(1, 2))
	l.PushBack(blk(3, 3))

	require.Equal(t, 3, l.Len())
	require.Equal(t, []mem.Block{blk(0, 1), blk(1, 2), blk(3, 3)}, l.Blocks())
}

func Test_List_PushFront(t *testing.T) {
	l := New()
	l.PushBack(blk(5, 1))
	l.PushFront(blk(0, 1))

	require.Equal(t, []mem.Block{blk(0, 1), blk(5, 1)}, l.Blocks())
	require.Equal(t, blk(0, 1), l.Get(l.Front()))
	require.Equal(t, blk(5, 1), l.Get(l.Back()))
}

func Test_List_RemoveMiddleFrontBack(t *testing.T) {
	l := New()
	a := l.PushBack(blk(0, 1))
	b := l.PushBack(blk(1, 1))
	c := l.PushBack(blk(2, 1))

	l.Remove(b)
	require.Equal(t, []mem.Block{blk(0, 1), blk(2, 1)}, l.Blocks())

	l.Remove(a)
	require.Equal(t, []mem.Block{blk(2, 1)}, l.Blocks())
	require.Equal(t, c, l.Front())
	require.Equal(t, c, l.Back())

	l.Remove(c)
	require.Zero(t, l.Len())
	require.Equal(t, None, l.Front())
	require.Equal(t, None, l.Back())
}

func Test_List_HandlesStayValidAcrossRemovals(t *testing.T) {
	l := New()
	refs := make([]Ref, 0, 5)
	for i := 0; i < 5; i++ {
		refs = append(refs, l.PushBack(blk(i*10, 10)))
	}

	// Removing the middle node must not disturb any other handle.
	l.Remove(refs[2])
	for _, i := range []int{0, 1, 3, 4} {
		require.Equal(t, blk(i*10, 10), l.Get(refs[i]))
	}

	// Walking from a surviving handle skips the removed node.
	require.Equal(t, refs[3], l.Next(refs[1]))
	require.Equal(t, refs[1], l.Prev(refs[3]))
}

func Test_List_SetMutatesInPlace(t *testing.T) {
	l := New()
	l.PushBack(blk(0, 10))
	ref := l.PushBack(blk(10, 20))
	l.PushBack(blk(30, 5))

	got := l.Get(ref)
	got.Base += 7
	got.Length -= 7
	l.Set(ref, got)

	// Same position, new payload.
	require.Equal(t, []mem.Block{blk(0, 10), blk(17, 13), blk(30, 5)}, l.Blocks())
}

func Test_List_RecyclesSlots(t *testing.T) {
	l := New()
	a := l.PushBack(blk(0, 1))
	l.PushBack(blk(1, 1))

	l.Remove(a)
	c := l.PushBack(blk(2, 1))

	// The freed slot is reused, and the recycled handle lands at the back.
	require.Equal(t, a, c)
	require.Equal(t, []mem.Block{blk(1, 1), blk(2, 1)}, l.Blocks())
}

func Test_List_UseAfterRemovePanics(t *testing.T) {
	l := New()
	a := l.PushBack(blk(0, 1))
	l.Remove(a)

	require.Panics(t, func() { l.Get(a) })
	require.Panics(t, func() { l.Remove(a) })
}

func Test_List_OutOfRangeRefPanics(t *testing.T) {
	l := New()
	require.Panics(t, func() { l.Get(Ref(0)) })
	require.Panics(t, func() { l.Get(Ref(-5)) })
}

func Test_List_String(t *testing.T) {
	l := New()
	require.Equal(t, "", l.String())

	l.PushBack(blk(0, 10))
	l.PushBack(blk(20, 5))
	require.Equal(t, "(0 , 10) (20 , 5) ", l.String())
}
