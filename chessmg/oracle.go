package chessmg

import (
	"fmt"

	"github.com/dylhunn/dragontoothmg"
)

// ReferencePerft counts the same tree as Perft using dragontoothmg. Promotions
// other than to a queen are skipped so the counts line up with this package,
// which only promotes to queens.
func ReferencePerft(fen string, depth int) uint64 {
	b := dragontoothmg.ParseFen(fen)
	return referencePerft(&b, depth)
}

func referencePerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var nodes uint64
	for _, m := range b.GenerateLegalMoves() {
		if p := m.Promote(); p != dragontoothmg.Nothing && p != dragontoothmg.Queen {
			continue
		}
		undo := b.Apply(m)
		nodes += referencePerft(b, depth-1)
		undo()
	}
	return nodes
}

// ReferenceMoves lists the legal moves of a position in UCI text according to
// dragontoothmg, queen promotions only.
func ReferenceMoves(fen string) []string {
	b := dragontoothmg.ParseFen(fen)
	var out []string
	for _, m := range b.GenerateLegalMoves() {
		if p := m.Promote(); p != dragontoothmg.Nothing && p != dragontoothmg.Queen {
			continue
		}
		out = append(out, m.String())
	}
	return out
}

// CrossCheck compares Perft against ReferencePerft and reports the first
// root move whose subtree differs.
func CrossCheck(fen string, depth int) error {
	b, err := ParseFEN(fen)
	if err != nil {
		return err
	}
	got := Perft(&b, depth)
	want := ReferencePerft(fen, depth)
	if got == want {
		return nil
	}
	if depth > 1 {
		for m := range PerftDivide(&b, 1) {
			child := b
			child.ApplyMove(m, b.side)
			if err := CrossCheck(child.FEN(), depth-1); err != nil {
				return fmt.Errorf("after %s: %w", m, err)
			}
		}
	}
	return fmt.Errorf("perft(%d) of %q: got %d, reference %d", depth, fen, got, want)
}
