package printer

import (
	"encoding/json"

	"github.com/joshuapare/memkit/mem"
	"github.com/joshuapare/memkit/mem/alloc"
)

// jsonBlock represents one block in JSON output.
type jsonBlock struct {
	Base   int `json:"base"`
	Length int `json:"length"`
}

// jsonSpace represents the whole space in JSON output.
type jsonSpace struct {
	Capacity  int         `json:"capacity"`
	Free      []jsonBlock `json:"free"`
	Allocated []jsonBlock `json:"allocated"`
	Stats     *jsonStats  `json:"stats,omitempty"`
}

type jsonStats struct {
	AllocCalls    int     `json:"alloc_calls"`
	FailedAllocs  int     `json:"failed_allocs"`
	FreeCalls     int     `json:"free_calls"`
	FailedFrees   int     `json:"failed_frees"`
	CompactCalls  int     `json:"compact_calls"`
	FreeWords     int     `json:"free_words"`
	LargestFree   int     `json:"largest_free"`
	Fragmentation float64 `json:"fragmentation"`
}

func toJSONBlocks(blocks []mem.Block) []jsonBlock {
	out := make([]jsonBlock, len(blocks))
	for i, b := range blocks {
		out[i] = jsonBlock{Base: b.Base, Length: b.Length}
	}
	return out
}

// printSpaceJSON writes an indented JSON object describing the space.
func (p *Printer) printSpaceJSON(s *alloc.Space) error {
	js := jsonSpace{
		Capacity:  s.Capacity(),
		Free:      toJSONBlocks(s.FreeBlocks()),
		Allocated: toJSONBlocks(s.AllocatedBlocks()),
	}
	if p.opts.ShowStats {
		st := s.Stats()
		fs := s.Fragmentation()
		js.Stats = &jsonStats{
			AllocCalls:    st.AllocCalls,
			FailedAllocs:  st.FailedAllocs,
			FreeCalls:     st.FreeCalls,
			FailedFrees:   st.FailedFrees,
			CompactCalls:  st.CompactCalls,
			FreeWords:     fs.FreeWords,
			LargestFree:   fs.LargestFree,
			Fragmentation: fs.Fragmentation,
		}
	}

	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(js)
}
