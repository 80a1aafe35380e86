package engine

import mg "chess-core/chessmg"

// Piece values in centipawns, indexed by chessmg.PieceType. The king is not
// counted.
var PieceValues = [6]int32{100, 300, 350, 500, 1000, 0}

// MobilityWeight scales the difference in legal move counts.
const MobilityWeight int32 = 10

// evalBound keeps static scores clear of the mate range.
const evalBound = Checkmate - MaxPly - 1

// Material returns side's material minus the opponent's.
func Material(b *mg.Board, side mg.Color) int32 {
	var score int32
	for k := mg.Pawn; k < mg.King; k++ {
		own := int32(mg.PopCount(b.PieceMask(side, k)))
		opp := int32(mg.PopCount(b.PieceMask(side.Other(), k)))
		score += (own - opp) * PieceValues[k]
	}
	return score
}

// Mobility compares the number of legal moves of both sides.
func Mobility(b *mg.Board, side mg.Color) int32 {
	own := int32(len(b.LegalMoves(side)))
	opp := int32(len(b.LegalMoves(side.Other())))
	return (own - opp) * MobilityWeight
}

// Evaluate is the static score of b for side: material plus mobility.
func Evaluate(b *mg.Board, side mg.Color) int32 {
	return Clamp(Material(b, side)+Mobility(b, side), -evalBound, evalBound)
}
