package engine

import (
	"fmt"
	"io"
)

// Stats collects node and cutoff counts for one search.
type Stats struct {
	Nodes            uint64
	Leaves           uint64
	BetaCutoffs      uint64
	FirstMoveCutoffs uint64
	Checkmates       uint64
	Stalemates       uint64
}

// FirstMoveCutRate is the share of cutoffs produced by the first move tried,
// a measure of ordering quality.
func (st Stats) FirstMoveCutRate() float64 {
	if st.BetaCutoffs == 0 {
		return 0
	}
	return float64(st.FirstMoveCutoffs) / float64(st.BetaCutoffs)
}

// Add accumulates o into st, for benchmarks over several searches.
func (st *Stats) Add(o Stats) {
	st.Nodes += o.Nodes
	st.Leaves += o.Leaves
	st.BetaCutoffs += o.BetaCutoffs
	st.FirstMoveCutoffs += o.FirstMoveCutoffs
	st.Checkmates += o.Checkmates
	st.Stalemates += o.Stalemates
}

// Dump writes the counters as UCI "info string" lines.
func (st Stats) Dump(w io.Writer) {
	fmt.Fprintln(w, "info string Search statistics:")
	fmt.Fprintf(w, "info string   Nodes: %d\n", st.Nodes)
	fmt.Fprintf(w, "info string   Leaves: %d\n", st.Leaves)
	fmt.Fprintf(w, "info string   Beta cutoffs: %d\n", st.BetaCutoffs)
	fmt.Fprintf(w, "info string   First move cutoffs: %d (%.1f%%)\n", st.FirstMoveCutoffs, 100*st.FirstMoveCutRate())
	fmt.Fprintf(w, "info string   Checkmates: %d\n", st.Checkmates)
	fmt.Fprintf(w, "info string   Stalemates: %d\n", st.Stalemates)
}
