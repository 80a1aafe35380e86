package chessmg

// Attacks returns every square attacked by side. Pieces use their ordinary
// generators, the king without castling; pawns contribute their diagonal
// captures only, since a push never attacks.
func (b *Board) Attacks(side Color) uint64 {
	own := b.Occupancy(side)
	enemy := b.Occupancy(side.Other())

	var attacks uint64
	pawns := b.pieces[side][Pawn]
	for pawns != 0 {
		sq := popLSB(&pawns)
		attacks |= pawnAttacks[side][sq]
	}
	for kind := Knight; kind <= King; kind++ {
		gen := generators[kind]
		pieces := b.pieces[side][kind]
		for pieces != 0 {
			sq := popLSB(&pieces)
			attacks |= gen.Moves(sq.Bit(), side, own, enemy)
		}
	}
	return attacks
}

// IsSquareAttacked reports whether sq is attacked by side. It looks outward from
// sq instead of building the whole attack mask.
func (b *Board) IsSquareAttacked(sq Square, by Color) bool {
	them := &b.pieces[by]
	if pawnAttacks[by.Other()][sq]&them[Pawn] != 0 {
		return true
	}
	if knightMoves[sq]&them[Knight] != 0 {
		return true
	}
	if kingMoves[sq]&them[King] != 0 {
		return true
	}
	occ := b.All()
	if rookAttacks(sq, occ)&(them[Rook]|them[Queen]) != 0 {
		return true
	}
	return bishopAttacks(sq, occ)&(them[Bishop]|them[Queen]) != 0
}

// InCheck reports whether side's king is attacked.
func (b *Board) InCheck(side Color) bool {
	k := b.pieces[side][King]
	if k == 0 {
		return false
	}
	return b.IsSquareAttacked(Square(LSB(k)), side.Other())
}

// IsCheckmate reports whether side is in check with no legal move.
func (b *Board) IsCheckmate(side Color) bool {
	return b.InCheck(side) && !b.HasLegalMoves(side)
}

// IsStalemate reports whether side has no legal move while not in check.
func (b *Board) IsStalemate(side Color) bool {
	return !b.InCheck(side) && !b.HasLegalMoves(side)
}

// InCheckmate reports whether the side to move is checkmated.
func (b *Board) InCheckmate() bool { return b.IsCheckmate(b.side) }

// InStalemate reports whether the side to move is stalemated.
func (b *Board) InStalemate() bool { return b.IsStalemate(b.side) }
