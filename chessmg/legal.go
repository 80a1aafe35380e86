package chessmg

import (
	"strings"

	"golang.org/x/exp/slices"
)

// PseudoLegalMoves enumerates side's moves without checking king safety.
// Order is fixed: piece kinds pawn to king, origins and destinations by
// ascending square, then kingside and queenside castles.
func (b *Board) PseudoLegalMoves(side Color) []Move {
	moves := make([]Move, 0, 48)
	return b.appendPseudoLegal(moves, side)
}

func (b *Board) appendPseudoLegal(moves []Move, side Color) []Move {
	own := b.Occupancy(side)
	enemy := b.Occupancy(side.Other())
	epTarget := b.enPassant[side.Other()]
	lastRank := Rank8
	if side == Black {
		lastRank = Rank1
	}

	for kind := Pawn; kind <= King; kind++ {
		gen := generators[kind]
		pieces := b.pieces[side][kind]
		for pieces != 0 {
			from := popLSB(&pieces)
			piece := from.Bit()
			dests := gen.Moves(piece, side, own, enemy)
			var ep uint64
			if kind == Pawn {
				ep = EnPassantMoves(piece, side, epTarget)
				dests |= ep
			}
			for dests != 0 {
				to := popLSB(&dests)
				toBit := to.Bit()
				var flags uint8
				if toBit&enemy != 0 {
					flags |= FlagCapture
				}
				if kind == Pawn {
					switch {
					case toBit&ep != 0:
						flags |= FlagCapture | FlagEnPassant
					case to-from == 16 || from-to == 16:
						flags |= FlagDoublePush
					}
					if toBit&lastRank != 0 {
						flags |= FlagPromotion
					}
				}
				moves = append(moves, NewMove(from, to, kind, flags))
			}
		}
	}

	for _, tag := range [...]CastleTag{KingSide, QueenSide} {
		if b.CanCastle(side, tag) {
			moves = append(moves, NewCastle(side, tag))
		}
	}
	return moves
}

// LegalMoves returns side's moves that do not leave its own king attacked.
// Each candidate is played on a copy of the board and the copy is tested.
func (b *Board) LegalMoves(side Color) []Move {
	pseudo := b.PseudoLegalMoves(side)
	legal := pseudo[:0]
	for _, m := range pseudo {
		if b.leavesKingSafe(m, side) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves reports whether side has at least one legal move.
func (b *Board) HasLegalMoves(side Color) bool {
	for _, m := range b.PseudoLegalMoves(side) {
		if b.leavesKingSafe(m, side) {
			return true
		}
	}
	return false
}

// IsLegal reports whether m is among side's legal moves.
func (b *Board) IsLegal(m Move, side Color) bool {
	return slices.Contains(b.LegalMoves(side), m)
}

// FindMove returns the legal move of side matching from and to, if any.
func (b *Board) FindMove(side Color, from, to Square) (Move, bool) {
	moves := b.LegalMoves(side)
	i := slices.IndexFunc(moves, func(m Move) bool { return m.From() == from && m.To() == to })
	if i < 0 {
		return NoMove, false
	}
	return moves[i], true
}

// ParseMove matches UCI text ("e2e4", "e7e8q") against the legal moves of the
// side to move. A promotion may omit its suffix.
func (b *Board) ParseMove(text string) (Move, bool) {
	text = strings.ToLower(strings.TrimSpace(text))
	moves := b.LegalMoves(b.side)
	i := slices.IndexFunc(moves, func(m Move) bool {
		s := m.String()
		return s == text || (m.IsPromotion() && s[:4] == text)
	})
	if i < 0 {
		return NoMove, false
	}
	return moves[i], true
}

func (b *Board) leavesKingSafe(m Move, side Color) bool {
	c := *b
	if !c.ApplyMove(m, side) {
		return false
	}
	return !c.InCheck(side)
}
