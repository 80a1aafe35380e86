package chessmg_test

import (
	"testing"

	mg "chess-core/chessmg"
)

const castleBothFEN = "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"

func hasMove(moves []mg.Move, want mg.Move) bool {
	for _, m := range moves {
		if m == want {
			return true
		}
	}
	return false
}

func TestCastlingAvailable(t *testing.T) {
	b := mustFEN(t, castleBothFEN)
	for c := mg.White; c <= mg.Black; c++ {
		for _, tag := range []mg.CastleTag{mg.KingSide, mg.QueenSide} {
			if !b.CanCastle(c, tag) {
				t.Fatalf("%s should be able to castle %s", c, tag)
			}
		}
	}
	legal := b.LegalMoves(mg.White)
	if !hasMove(legal, mg.NewCastle(mg.White, mg.KingSide)) || !hasMove(legal, mg.NewCastle(mg.White, mg.QueenSide)) {
		t.Fatalf("castles missing from legal moves")
	}
	if mg.NewCastle(mg.White, mg.KingSide).String() != "e1g1" || mg.NewCastle(mg.Black, mg.QueenSide).String() != "e8c8" {
		t.Fatalf("castle UCI text wrong")
	}
}

func TestCastlingBlockedByPiece(t *testing.T) {
	b := mustFEN(t, "r3k2r/8/8/8/8/8/8/RN2K1NR w KQkq - 0 1")
	if b.CanCastle(mg.White, mg.KingSide) || b.CanCastle(mg.White, mg.QueenSide) {
		t.Fatalf("pieces between king and rook must prevent castling")
	}
	// b1 empty but d1 occupied
	b = mustFEN(t, "r3k2r/8/8/8/8/8/8/R2QK2R w KQkq - 0 1")
	if b.CanCastle(mg.White, mg.QueenSide) {
		t.Fatalf("d1 occupied")
	}
	if !b.CanCastle(mg.White, mg.KingSide) {
		t.Fatalf("king side is free")
	}
}

func TestCastlingThroughAttack(t *testing.T) {
	// black rook on f8 covers f1
	b := mustFEN(t, "4kr2/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	if b.CanCastle(mg.White, mg.KingSide) {
		t.Fatalf("king may not pass through an attacked square")
	}
	if !b.CanCastle(mg.White, mg.QueenSide) {
		t.Fatalf("queen side is not attacked")
	}
	// in check: no castling at all
	b = mustFEN(t, "4r1k1/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	if b.CanCastle(mg.White, mg.KingSide) || b.CanCastle(mg.White, mg.QueenSide) {
		t.Fatalf("king in check may not castle")
	}
	// landing square attacked by a bishop on c5 (g1)
	b = mustFEN(t, "4k3/8/8/2b5/8/8/8/R3K2R w KQ - 0 1")
	if b.CanCastle(mg.White, mg.KingSide) {
		t.Fatalf("g1 is attacked")
	}
	// b1 may be attacked on the long side; the king never crosses it
	b = mustFEN(t, "1r2k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	if !b.CanCastle(mg.White, mg.QueenSide) {
		t.Fatalf("an attacked b1 does not prevent O-O-O")
	}
}

func TestCastlingAfterKingOrRookMoved(t *testing.T) {
	b := mustFEN(t, castleBothFEN)
	play(t, &b, "e1f1", "a8a7", "f1e1", "a7a8")
	if b.CanCastle(mg.White, mg.KingSide) || b.CanCastle(mg.White, mg.QueenSide) {
		t.Fatalf("white king has moved")
	}
	if !b.KingMoved(mg.White) {
		t.Fatalf("kingMoved flag not set")
	}
	if b.CanCastle(mg.Black, mg.QueenSide) {
		t.Fatalf("black a8 rook has moved")
	}
	if !b.CanCastle(mg.Black, mg.KingSide) {
		t.Fatalf("black king side untouched")
	}
}

func TestRookCapturedOnCornerLosesRight(t *testing.T) {
	b := mustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	play(t, &b, "a1a8")
	if b.CastlingRights()&mg.CastlingBlackQ != 0 {
		t.Fatalf("capturing the a8 rook must remove black's queen side right")
	}
	if b.CastlingRights()&mg.CastlingWhiteQ != 0 {
		t.Fatalf("the a1 rook left its corner")
	}
}

func TestApplyCastleMovesRook(t *testing.T) {
	b := mustFEN(t, castleKingFEN)
	if !b.ApplyMove(mg.NewCastle(mg.White, mg.KingSide), mg.White) {
		t.Fatalf("castle rejected")
	}
	if b.PieceMask(mg.White, mg.King) != mg.SquareAt(0, 6).Bit() {
		t.Fatalf("king not on g1")
	}
	if b.PieceMask(mg.White, mg.Rook) != mg.SquareAt(0, 5).Bit() {
		t.Fatalf("rook not on f1")
	}
	if b.CastlingRights() != mg.CastlingNone || !b.KingMoved(mg.White) {
		t.Fatalf("castling state not updated")
	}
	if b.SideToMove() != mg.Black {
		t.Fatalf("side not flipped")
	}
}

// play applies UCI moves for the side to move, failing on any illegal one.
func play(t testing.TB, b *mg.Board, moves ...string) {
	t.Helper()
	for _, s := range moves {
		m, ok := b.ParseMove(s)
		if !ok {
			t.Fatalf("%s is not legal in %s", s, b.FEN())
		}
		b.ApplyMove(m, b.SideToMove())
	}
}
