package chessmg

// ApplyMove plays m for side in place. Moves must come from LegalMoves: a move
// that was never enumerated can break the board invariants. The only defended
// case is a move whose origin holds no piece of side, which returns false and
// leaves the board untouched.
func (b *Board) ApplyMove(m Move, side Color) bool {
	if tag := m.Castle(); tag != NoCastle {
		return b.applyCastle(side, tag)
	}

	from, to := m.From(), m.To()
	kind := m.Piece()
	if kind >= pieceKinds {
		return false
	}
	fromBit, toBit := from.Bit(), to.Bit()
	if b.pieces[side][kind]&fromBit == 0 {
		return false
	}
	other := side.Other()

	// (a) captures; an en passant victim stands behind the destination
	capSq := to
	if m.IsEnPassant() {
		if side == White {
			capSq = to - 8
		} else {
			capSq = to + 8
		}
	}
	captured := b.removeAt(other, capSq)

	// (b) relocate
	b.pieces[side][kind] ^= fromBit | toBit

	// (c) castling bookkeeping; a rook captured on its corner loses its right too
	if kind == King {
		b.kingMoved[side] = true
		b.castling &^= sideRights[side]
	}
	b.castling &^= cornerRights[from] | cornerRights[to]

	// (d) promotion is always to a queen
	if kind == Pawn && toBit&(Rank1|Rank8) != 0 {
		b.pieces[side][Pawn] &^= toBit
		b.pieces[side][Queen] |= toBit
	}

	// (e) en passant targets live for one ply
	b.enPassant = [2]uint64{}
	if kind == Pawn && (to-from == 16 || from-to == 16) {
		b.enPassant[side] = Square((from + to) / 2).Bit()
	}

	if kind == Pawn || captured != NoPieceType {
		b.halfmove = 0
	} else {
		b.halfmove++
	}

	// (f)
	b.endTurn(side)
	return true
}

// endTurn hands the move to the opponent of side.
func (b *Board) endTurn(side Color) {
	if side == Black {
		b.fullmove++
	}
	b.side = side.Other()
}
