package chessmg

// Generator produces the pseudo-legal destinations of a single piece. piece
// must contain exactly one set bit. Own pieces are never destinations; king
// safety is not considered.
type Generator interface {
	Moves(piece uint64, side Color, own, enemy uint64) uint64
}

type pawnGen struct{}
type knightGen struct{}
type bishopGen struct{}
type rookGen struct{}
type queenGen struct{}
type kingGen struct{}

var generators = [pieceKinds]Generator{
	Pawn:   pawnGen{},
	Knight: knightGen{},
	Bishop: bishopGen{},
	Rook:   rookGen{},
	Queen:  queenGen{},
	King:   kingGen{},
}

// GeneratorFor returns the move generator of a piece kind, or nil.
func GeneratorFor(kind PieceType) Generator {
	if kind >= pieceKinds {
		return nil
	}
	return generators[kind]
}

func (pawnGen) Moves(piece uint64, side Color, own, enemy uint64) uint64 {
	empty := ^(own | enemy)
	sq := LSB(piece)
	var single, double uint64
	if side == White {
		single = (piece << 8) & empty
		double = ((single & Rank3) << 8) & empty
	} else {
		single = (piece >> 8) & empty
		double = ((single & Rank6) >> 8) & empty
	}
	return single | double | (pawnAttacks[side][sq] & enemy)
}

func (knightGen) Moves(piece uint64, _ Color, own, _ uint64) uint64 {
	return knightMoves[LSB(piece)] &^ own
}

func (kingGen) Moves(piece uint64, _ Color, own, _ uint64) uint64 {
	return kingMoves[LSB(piece)] &^ own
}

func (bishopGen) Moves(piece uint64, _ Color, own, enemy uint64) uint64 {
	return bishopAttacks(Square(LSB(piece)), own|enemy) &^ own
}

func (rookGen) Moves(piece uint64, _ Color, own, enemy uint64) uint64 {
	return rookAttacks(Square(LSB(piece)), own|enemy) &^ own
}

func (queenGen) Moves(piece uint64, _ Color, own, enemy uint64) uint64 {
	sq := Square(LSB(piece))
	return (rookAttacks(sq, own|enemy) | bishopAttacks(sq, own|enemy)) &^ own
}

// EnPassantMoves returns the en passant capture square for a pawn of side, given
// the opponent's en passant target. It is empty unless the pawn stands on its
// fifth rank on a file next to the target.
func EnPassantMoves(piece uint64, side Color, target uint64) uint64 {
	if target == 0 {
		return 0
	}
	fifth := Rank5
	if side == Black {
		fifth = Rank4
	}
	if piece&fifth == 0 {
		return 0
	}
	return pawnAttacks[side][LSB(piece)] & target
}
