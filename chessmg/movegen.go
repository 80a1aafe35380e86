package chessmg

import "math/bits"

// Precomputed attack masks for knights and kings from each square.
var knightMoves [64]uint64
var kingMoves [64]uint64

// pawnAttacks[color][sq] gives the squares a pawn of color captures on from sq.
var pawnAttacks [2][64]uint64

// Slider rays for each square and direction, excluding the origin square.
// Rook directions: 0=N, 1=S, 2=E, 3=W
var rookRays [64][4]uint64

// Bishop directions: 0=NE, 1=NW, 2=SE, 3=SW
var bishopRays [64][4]uint64

// Rays that run toward higher square indices find their nearest blocker with the
// lowest set bit; the others with the highest.
var rookRayUp = [4]bool{true, false, true, false}
var bishopRayUp = [4]bool{true, true, false, false}

func init() {
	initAttackTables()
	initRays()
}

// jumpMask collects the on-board targets of a set of (rank, file) offsets.
func jumpMask(sq int, offsets [][2]int) uint64 {
	file := sq % 8
	rank := sq / 8
	var mask uint64
	for _, off := range offsets {
		rf := rank + off[0]
		ff := file + off[1]
		if rf >= 0 && rf < 8 && ff >= 0 && ff < 8 {
			mask |= uint64(1) << uint(rf*8+ff)
		}
	}
	return mask
}

// initAttackTables precomputes move masks for knights, kings and pawn captures.
func initAttackTables() {
	knightOffsets := [][2]int{
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	}
	kingOffsets := [][2]int{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	for sq := 0; sq < 64; sq++ {
		knightMoves[sq] = jumpMask(sq, knightOffsets)
		kingMoves[sq] = jumpMask(sq, kingOffsets)
		pawnAttacks[White][sq] = jumpMask(sq, [][2]int{{1, -1}, {1, 1}})
		pawnAttacks[Black][sq] = jumpMask(sq, [][2]int{{-1, -1}, {-1, 1}})
	}
}

// initRays precomputes directional rays for rook and bishop moves. Rook rays
// are the piece's full file and rank split at the piece.
func initRays() {
	for sq := 0; sq < 64; sq++ {
		s := Square(sq)
		file := FileA << uint(s.Col())
		rank := Rank1 << uint(8*s.Row())
		above := ^uint64(0) << uint(sq) << 1
		below := s.Bit() - 1

		rookRays[sq][0] = file & above
		rookRays[sq][1] = file & below
		rookRays[sq][2] = rank & above
		rookRays[sq][3] = rank & below

		dirs := [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
		for d, dir := range dirs {
			var ray uint64
			r, f := s.Row()+dir[0], s.Col()+dir[1]
			for r >= 0 && r < 8 && f >= 0 && f < 8 {
				ray |= SquareAt(r, f).Bit()
				r += dir[0]
				f += dir[1]
			}
			bishopRays[sq][d] = ray
		}
	}
}

// slide returns the union of the rays from sq, each cut after its first
// occupied square. The blocker itself is included.
func slide(sq Square, rays *[64][4]uint64, up *[4]bool, occ uint64) uint64 {
	var attacks uint64
	for dir := 0; dir < 4; dir++ {
		ray := rays[sq][dir]
		blockers := ray & occ
		if blockers == 0 {
			attacks |= ray
			continue
		}
		var first int
		if up[dir] {
			first = bits.TrailingZeros64(blockers)
		} else {
			first = 63 - bits.LeadingZeros64(blockers)
		}
		attacks |= ray ^ rays[first][dir]
	}
	return attacks
}

func rookAttacks(sq Square, occ uint64) uint64 {
	return slide(sq, &rookRays, &rookRayUp, occ)
}

func bishopAttacks(sq Square, occ uint64) uint64 {
	return slide(sq, &bishopRays, &bishopRayUp, occ)
}
