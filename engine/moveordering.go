package engine

import (
	"golang.org/x/exp/slices"

	mg "chess-core/chessmg"
)

// Most valuable victim, least valuable attacker: mvvLva[victim][attacker].
var mvvLva = [6][6]int16{
	{15, 14, 13, 12, 11, 10}, // victim Pawn
	{25, 24, 23, 22, 21, 20}, // victim Knight
	{35, 34, 33, 32, 31, 30}, // victim Bishop
	{45, 44, 43, 42, 41, 40}, // victim Rook
	{55, 54, 53, 52, 51, 50}, // victim Queen
	{0, 0, 0, 0, 0, 0},       // victim King
}

const promotionOffset int16 = 100

type scoredMove struct {
	move  mg.Move
	score int16
}

// moveScore ranks captures by MVV-LVA and promotions above them; quiet moves
// score zero.
func moveScore(b *mg.Board, side mg.Color, m mg.Move) int16 {
	var score int16
	if m.IsPromotion() {
		score += promotionOffset
	}
	if !m.IsCapture() {
		return score
	}
	victim := mg.Pawn
	if !m.IsEnPassant() {
		_, victim, _ = b.PieceAt(m.To())
		if victim > mg.King {
			return score
		}
	}
	return score + mvvLva[victim][m.Piece()]
}

// orderMoves sorts moves best-first in place. The sort is stable, so moves of
// equal score keep their generation order.
func orderMoves(b *mg.Board, side mg.Color, moves []mg.Move) {
	scored := make([]scoredMove, len(moves))
	for i, m := range moves {
		scored[i] = scoredMove{m, moveScore(b, side, m)}
	}
	slices.SortStableFunc(scored, func(a, c scoredMove) bool { return a.score > c.score })
	for i := range scored {
		moves[i] = scored[i].move
	}
}

// OrderedMoves returns side's legal moves in search order.
func OrderedMoves(b *mg.Board, side mg.Color) []mg.Move {
	moves := b.LegalMoves(side)
	orderMoves(b, side, moves)
	return moves
}
