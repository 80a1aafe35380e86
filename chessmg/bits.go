package chessmg

import "math/bits"

// Square is a board index in [0, 63]; a1 = 0, h1 = 7, a8 = 56.
type Square int

const NoSquare Square = -1

// File and rank masks.
const (
	FileA uint64 = 0x0101010101010101
	FileH uint64 = FileA << 7
	Rank1 uint64 = 0xFF
	Rank2 uint64 = Rank1 << 8
	Rank3 uint64 = Rank1 << 16
	Rank4 uint64 = Rank1 << 24
	Rank5 uint64 = Rank1 << 32
	Rank6 uint64 = Rank1 << 40
	Rank7 uint64 = Rank1 << 48
	Rank8 uint64 = Rank1 << 56
)

// SquareAt maps a (row, column) pair to a square index.
func SquareAt(row, col int) Square { return Square(row*8 + col) }

// Row returns the rank index (0 = first rank).
func (sq Square) Row() int { return int(sq) >> 3 }

// Col returns the file index (0 = a-file).
func (sq Square) Col() int { return int(sq) & 7 }

// Bit returns a mask with only this square set.
func (sq Square) Bit() uint64 { return 1 << uint(sq) }

func (sq Square) String() string {
	if sq < 0 || sq > 63 {
		return "-"
	}
	return string([]byte{'a' + byte(sq.Col()), '1' + byte(sq.Row())})
}

// ParseSquare converts algebraic text ("e4") to a Square.
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return NoSquare, false
	}
	f, r := s[0], s[1]
	if f >= 'A' && f <= 'H' {
		f += 'a' - 'A'
	}
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return NoSquare, false
	}
	return SquareAt(int(r-'1'), int(f-'a')), true
}

// LSB returns the index of the lowest set bit, or 64 for an empty mask.
func LSB(mask uint64) int { return bits.TrailingZeros64(mask) }

// MSB returns the index of the highest set bit, or -1 for an empty mask.
func MSB(mask uint64) int { return 63 - bits.LeadingZeros64(mask) }

// PopCount returns the number of set bits.
func PopCount(mask uint64) int { return bits.OnesCount64(mask) }

// popLSB removes and returns the least significant set bit from the mask.
func popLSB(mask *uint64) Square {
	idx := bits.TrailingZeros64(*mask)
	*mask &= *mask - 1
	return Square(idx)
}
