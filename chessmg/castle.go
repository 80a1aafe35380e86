package chessmg

// castlePath describes one castle of one side.
type castlePath struct {
	kingFrom, kingTo Square
	rookFrom, rookTo Square
	// between must be empty; kingPath (start, transit and landing) must be unattacked.
	between  uint64
	kingPath uint64
	right    CastlingRights
}

// castlePaths[side][tag]; index NoCastle is unused.
var castlePaths = [2][3]castlePath{
	White: {
		KingSide:  {kingFrom: 4, kingTo: 6, rookFrom: 7, rookTo: 5, between: 0x60, kingPath: 0x70, right: CastlingWhiteK},
		QueenSide: {kingFrom: 4, kingTo: 2, rookFrom: 0, rookTo: 3, between: 0x0E, kingPath: 0x1C, right: CastlingWhiteQ},
	},
	Black: {
		KingSide:  {kingFrom: 60, kingTo: 62, rookFrom: 63, rookTo: 61, between: 0x60 << 56, kingPath: 0x70 << 56, right: CastlingBlackK},
		QueenSide: {kingFrom: 60, kingTo: 58, rookFrom: 56, rookTo: 59, between: 0x0E << 56, kingPath: 0x1C << 56, right: CastlingBlackQ},
	},
}

// cornerRights maps a rook home corner to the right it carries.
var cornerRights = [64]CastlingRights{
	0:  CastlingWhiteQ,
	7:  CastlingWhiteK,
	56: CastlingBlackQ,
	63: CastlingBlackK,
}

// CanCastle reports whether side may castle on the given wing. Attacks are
// taken from the current (pre-move) position.
func (b *Board) CanCastle(side Color, tag CastleTag) bool {
	if tag != KingSide && tag != QueenSide {
		return false
	}
	p := castlePaths[side][tag]
	if b.castling&p.right == 0 || b.kingMoved[side] {
		return false
	}
	if b.pieces[side][King]&p.kingFrom.Bit() == 0 || b.pieces[side][Rook]&p.rookFrom.Bit() == 0 {
		return false
	}
	if b.All()&p.between != 0 {
		return false
	}
	return b.Attacks(side.Other())&p.kingPath == 0
}

// applyCastle relocates king and rook and marks the king as moved.
func (b *Board) applyCastle(side Color, tag CastleTag) bool {
	if tag != KingSide && tag != QueenSide {
		return false
	}
	p := castlePaths[side][tag]
	if b.pieces[side][King]&p.kingFrom.Bit() == 0 || b.pieces[side][Rook]&p.rookFrom.Bit() == 0 {
		return false
	}
	b.pieces[side][King] ^= p.kingFrom.Bit() | p.kingTo.Bit()
	b.pieces[side][Rook] ^= p.rookFrom.Bit() | p.rookTo.Bit()
	b.kingMoved[side] = true
	b.castling &^= sideRights[side]
	b.enPassant = [2]uint64{}
	b.halfmove++
	b.endTurn(side)
	return true
}
