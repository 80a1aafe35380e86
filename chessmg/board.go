package chessmg

import (
	"errors"
	"fmt"
)

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceType is a colorless piece kind used to index the per-side masks.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King

	NoPieceType PieceType = 7
)

const pieceKinds = 6

var pieceLetters = [pieceKinds]byte{'p', 'n', 'b', 'r', 'q', 'k'}

func (k PieceType) String() string {
	if k >= pieceKinds {
		return "-"
	}
	return string(pieceLetters[k])
}

// Castling rights bit flags
type CastlingRights uint8

const (
	CastlingWhiteK CastlingRights = 1 << iota
	CastlingWhiteQ
	CastlingBlackK
	CastlingBlackQ

	CastlingNone CastlingRights = 0
	CastlingAll                 = CastlingWhiteK | CastlingWhiteQ | CastlingBlackK | CastlingBlackQ
)

// sideRights holds both rights of one side.
var sideRights = [2]CastlingRights{
	CastlingWhiteK | CastlingWhiteQ,
	CastlingBlackK | CastlingBlackQ,
}

// Bitboards exposes the per-piece masks of one side.
type Bitboards struct {
	Pawns   uint64
	Knights uint64
	Bishops uint64
	Rooks   uint64
	Queens  uint64
	Kings   uint64
	All     uint64
}

// Starting layout masks.
const (
	whitePawnsStart   uint64 = 0x000000000000FF00
	whiteKnightsStart uint64 = 0x0000000000000042
	whiteBishopsStart uint64 = 0x0000000000000024
	whiteRooksStart   uint64 = 0x0000000000000081
	whiteQueensStart  uint64 = 0x0000000000000008
	whiteKingStart    uint64 = 0x0000000000000010

	blackPawnsStart   uint64 = 0x00FF000000000000
	blackKnightsStart uint64 = 0x4200000000000000
	blackBishopsStart uint64 = 0x2400000000000000
	blackRooksStart   uint64 = 0x8100000000000000
	blackQueensStart  uint64 = 0x0800000000000000
	blackKingStart    uint64 = 0x1000000000000000
)

// ErrInvalidBoard is returned by Validate when an invariant is broken.
var ErrInvalidBoard = errors.New("invalid board")

// Board is a value type: assigning it copies the whole position, which is how
// the legality filter and the search explore moves.
type Board struct {
	// pieces[side][kind] is one of the twelve occupancy masks.
	pieces [2][pieceKinds]uint64

	castling  CastlingRights
	kingMoved [2]bool

	// enPassant[side] holds the square skipped by that side's last double push.
	enPassant [2]uint64

	side     Color
	halfmove int
	fullmove int
}

// NewBoard returns the standard initial position with White to move.
func NewBoard() Board {
	var b Board
	b.pieces[White] = [pieceKinds]uint64{whitePawnsStart, whiteKnightsStart, whiteBishopsStart, whiteRooksStart, whiteQueensStart, whiteKingStart}
	b.pieces[Black] = [pieceKinds]uint64{blackPawnsStart, blackKnightsStart, blackBishopsStart, blackRooksStart, blackQueensStart, blackKingStart}
	b.castling = CastlingAll
	b.side = White
	b.fullmove = 1
	return b
}

// Occupancy returns every square held by side.
func (b *Board) Occupancy(side Color) uint64 {
	p := &b.pieces[side]
	return p[Pawn] | p[Knight] | p[Bishop] | p[Rook] | p[Queen] | p[King]
}

// All returns the union of all twelve masks.
func (b *Board) All() uint64 { return b.Occupancy(White) | b.Occupancy(Black) }

// Empty returns the unoccupied squares.
func (b *Board) Empty() uint64 { return ^b.All() }

// PieceMask returns the mask of one piece kind of one side.
func (b *Board) PieceMask(side Color, kind PieceType) uint64 { return b.pieces[side][kind] }

// Bitboards returns a copy of the masks of side.
func (b *Board) Bitboards(side Color) Bitboards {
	p := b.pieces[side]
	return Bitboards{
		Pawns:   p[Pawn],
		Knights: p[Knight],
		Bishops: p[Bishop],
		Rooks:   p[Rook],
		Queens:  p[Queen],
		Kings:   p[King],
		All:     b.Occupancy(side),
	}
}

// PieceAt reports which piece, if any, occupies sq.
func (b *Board) PieceAt(sq Square) (Color, PieceType, bool) {
	bit := sq.Bit()
	for c := White; c <= Black; c++ {
		for k := Pawn; k <= King; k++ {
			if b.pieces[c][k]&bit != 0 {
				return c, k, true
			}
		}
	}
	return White, NoPieceType, false
}

// KingSquare returns the square of side's king, or NoSquare.
func (b *Board) KingSquare(side Color) Square {
	k := b.pieces[side][King]
	if k == 0 {
		return NoSquare
	}
	return Square(LSB(k))
}

func (b *Board) SideToMove() Color { return b.side }

// SetSideToMove updates the side to play. Normal move application toggles automatically.
func (b *Board) SetSideToMove(c Color) { b.side = c }

func (b *Board) CastlingRights() CastlingRights { return b.castling }

// SetCastlingRights replaces the castling flags.
func (b *Board) SetCastlingRights(r CastlingRights) { b.castling = r }

// KingMoved reports whether side's king has left its home square.
func (b *Board) KingMoved(side Color) bool { return b.kingMoved[side] }

// EnPassantTarget returns the square skipped by side's last double push, if any.
func (b *Board) EnPassantTarget(side Color) uint64 { return b.enPassant[side] }

// HalfmoveClock returns the number of plies since the last capture or pawn move.
func (b *Board) HalfmoveClock() int { return b.halfmove }

// FullmoveNumber returns the full move counter (incremented after Black's move).
func (b *Board) FullmoveNumber() int { return b.fullmove }

// SetPiece puts a piece on sq, replacing whatever was there.
func (b *Board) SetPiece(sq Square, side Color, kind PieceType) {
	b.ClearSquare(sq)
	b.pieces[side][kind] |= sq.Bit()
}

// ClearSquare removes any piece from sq.
func (b *Board) ClearSquare(sq Square) {
	mask := ^sq.Bit()
	for c := White; c <= Black; c++ {
		for k := Pawn; k <= King; k++ {
			b.pieces[c][k] &= mask
		}
	}
}

// removeAt clears sq from side's masks and returns the kind that was there.
func (b *Board) removeAt(side Color, sq Square) PieceType {
	bit := sq.Bit()
	for k := Pawn; k <= King; k++ {
		if b.pieces[side][k]&bit != 0 {
			b.pieces[side][k] &^= bit
			return k
		}
	}
	return NoPieceType
}

// Validate checks the structural invariants of the position.
func (b *Board) Validate() error {
	var seen uint64
	for c := White; c <= Black; c++ {
		for k := Pawn; k <= King; k++ {
			m := b.pieces[c][k]
			if seen&m != 0 {
				return fmt.Errorf("%w: %s %s mask overlaps another mask", ErrInvalidBoard, c, k)
			}
			seen |= m
		}
		if n := PopCount(b.pieces[c][King]); n != 1 {
			return fmt.Errorf("%w: %s has %d kings", ErrInvalidBoard, c, n)
		}
		if (b.pieces[c][Pawn] & (Rank1 | Rank8)) != 0 {
			return fmt.Errorf("%w: %s pawn on a back rank", ErrInvalidBoard, c)
		}
		if ep := b.enPassant[c]; ep != 0 {
			if PopCount(ep) != 1 {
				return fmt.Errorf("%w: %s has several en passant targets", ErrInvalidBoard, c)
			}
			pawn := ep << 8
			if c == Black {
				pawn = ep >> 8
			}
			if b.pieces[c][Pawn]&pawn == 0 {
				return fmt.Errorf("%w: %s en passant target %s has no pawn in front", ErrInvalidBoard, c, Square(LSB(ep)))
			}
		}
	}
	return nil
}
