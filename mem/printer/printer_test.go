package printer

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/memkit/mem/alloc"
)

// fragmentedSpace builds a space with holes: free [(0,10),(20,10)],
// allocated [(10,10),(30,970)].
func fragmentedSpace(t *testing.T) *alloc.Space {
	t.Helper()

	sp, err := alloc.New(1000)
	require.NoError(t, err)

	a, err := sp.Alloc(10)
	require.NoError(t, err)
	_, err = sp.Alloc(10)
	require.NoError(t, err)
	c, err := sp.Alloc(10)
	require.NoError(t, err)
	_, err = sp.Alloc(970)
	require.NoError(t, err)

	require.NoError(t, sp.Free(a))
	require.NoError(t, sp.Free(c))
	return sp
}

func Test_Printer_Text(t *testing.T) {
	sp := fragmentedSpace(t)

	var buf bytes.Buffer
	p := New(&buf, Options{})
	require.NoError(t, p.PrintSpace(sp))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "(0 , 10) (20 , 10) ", lines[0])
	require.Equal(t, "(10 , 10) (30 , 970) ", lines[1])
}

func Test_Printer_Text_EmptyRegistries(t *testing.T) {
	sp, err := alloc.New(5)
	require.NoError(t, err)
	_, err = sp.Alloc(5)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, New(&buf, Options{}).PrintSpace(sp))

	// Free registry is empty: first line is blank, not missing.
	require.Equal(t, "\n(0 , 5) \n", buf.String())
}

func Test_Printer_Text_Stats(t *testing.T) {
	sp := fragmentedSpace(t)

	var buf bytes.Buffer
	p := New(&buf, Options{ShowStats: true})
	require.NoError(t, p.PrintSpace(sp))

	out := buf.String()
	// x/text/message groups digits for the English locale.
	require.Contains(t, out, "capacity: 1,000 words")
	require.Contains(t, out, "largest free block: 10 words")
	require.Contains(t, out, "fragmentation: 50.0%")
	require.Contains(t, out, "4 allocs (0 failed), 2 frees (0 failed), 0 compactions")
}

func Test_Printer_JSON(t *testing.T) {
	sp := fragmentedSpace(t)

	var buf bytes.Buffer
	p := New(&buf, Options{JSON: true, ShowStats: true})
	require.NoError(t, p.PrintSpace(sp))

	var got jsonSpace
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	require.Equal(t, 1000, got.Capacity)
	require.Equal(t, []jsonBlock{{Base: 0, Length: 10}, {Base: 20, Length: 10}}, got.Free)
	require.Equal(t, []jsonBlock{{Base: 10, Length: 10}, {Base: 30, Length: 970}}, got.Allocated)
	require.NotNil(t, got.Stats)
	require.Equal(t, 4, got.Stats.AllocCalls)
	require.Equal(t, 20, got.Stats.FreeWords)
	require.Equal(t, 10, got.Stats.LargestFree)
	require.InDelta(t, 0.5, got.Stats.Fragmentation, 1e-9)
}

func Test_Printer_JSON_OmitsStatsByDefault(t *testing.T) {
	sp := fragmentedSpace(t)

	var buf bytes.Buffer
	require.NoError(t, New(&buf, Options{JSON: true}).PrintSpace(sp))

	require.NotContains(t, buf.String(), "stats")
}
