package chessmg

// Move encodes a chess move in a 32-bit value.
type Move uint32

// Bitfield layout within Move (from LSB to MSB)
const (
	moveFromShift   = 0  // 6 bits
	moveToShift     = 6  // 6 bits
	movePieceShift  = 12 // 3 bits
	moveCastleShift = 15 // 2 bits
	moveFlagShift   = 17 // 4 bits
)

// Move flags
const (
	FlagCapture    uint8 = 1 << iota
	FlagEnPassant        // also sets FlagCapture
	FlagDoublePush
	FlagPromotion // always to a queen
)

// CastleTag selects which castle a move performs.
type CastleTag uint8

const (
	NoCastle CastleTag = iota
	KingSide
	QueenSide
)

func (t CastleTag) String() string {
	switch t {
	case KingSide:
		return "O-O"
	case QueenSide:
		return "O-O-O"
	}
	return ""
}

// NoMove is returned when a side has nothing to play.
const NoMove Move = 0

// NewMove constructs a Move value from components.
func NewMove(from, to Square, kind PieceType, flags uint8) Move {
	return Move(uint32(from&0x3F) |
		uint32(to&0x3F)<<moveToShift |
		uint32(kind&0x7)<<movePieceShift |
		uint32(flags&0xF)<<moveFlagShift)
}

// NewCastle builds the castling move of side. From and To hold the king's squares.
func NewCastle(side Color, tag CastleTag) Move {
	p := castlePaths[side][tag]
	return NewMove(p.kingFrom, p.kingTo, King, 0) | Move(uint32(tag&0x3)<<moveCastleShift)
}

// From returns the source square of the move.
func (m Move) From() Square { return Square((uint32(m) >> moveFromShift) & 0x3F) }

// To returns the destination square of the move.
func (m Move) To() Square { return Square((uint32(m) >> moveToShift) & 0x3F) }

// Piece returns the kind of the moving piece.
func (m Move) Piece() PieceType { return PieceType((uint32(m) >> movePieceShift) & 0x7) }

// Castle returns the castle tag, NoCastle for ordinary moves.
func (m Move) Castle() CastleTag { return CastleTag((uint32(m) >> moveCastleShift) & 0x3) }

// Flags returns the special move flags.
func (m Move) Flags() uint8 { return uint8((uint32(m) >> moveFlagShift) & 0xF) }

func (m Move) IsCapture() bool    { return m.Flags()&FlagCapture != 0 }
func (m Move) IsEnPassant() bool  { return m.Flags()&FlagEnPassant != 0 }
func (m Move) IsDoublePush() bool { return m.Flags()&FlagDoublePush != 0 }
func (m Move) IsPromotion() bool  { return m.Flags()&FlagPromotion != 0 }

// String produces the UCI form of the move (e.g. "e2e4", "e1g1", "e7e8q").
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += "q"
	}
	return s
}
