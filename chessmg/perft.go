package chessmg

// Perft counts the leaf nodes of the legal move tree of the given depth, with
// the side to move starting.
func Perft(b *Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.LegalMoves(b.side)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		child := *b
		child.ApplyMove(m, b.side)
		nodes += Perft(&child, depth-1)
	}
	return nodes
}

// PerftDivide returns the perft count below each root move.
func PerftDivide(b *Board, depth int) map[Move]uint64 {
	out := make(map[Move]uint64)
	if depth <= 0 {
		return out
	}
	for _, m := range b.LegalMoves(b.side) {
		child := *b
		child.ApplyMove(m, b.side)
		out[m] = Perft(&child, depth-1)
	}
	return out
}
