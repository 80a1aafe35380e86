package chessmg_test

import (
	"testing"

	mg "chess-core/chessmg"
)

const (
	kiwipete      = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	position3     = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	position4     = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	position5     = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
	position6     = "r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1 w - - 0 10"
	foolsMate     = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
	stalemateFEN  = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
	mateInOneFEN  = "7k/6pp/6Q1/8/8/2B5/8/6K1 w - - 0 1"
	enPassantFEN  = "k7/8/8/3pP3/8/8/8/7K w - d6 0 2"
	castleKingFEN = "4k3/8/8/8/8/8/8/4K2R w K - 0 1"
)

var testPositions = []string{mg.FENStartPos, kiwipete, position3, position4, position5, position6, enPassantFEN, castleKingFEN}

func mustFEN(t testing.TB, fen string) mg.Board {
	t.Helper()
	b, err := mg.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return b
}

func TestAttacksKnightAndPawn(t *testing.T) {
	var b mg.Board
	e4 := mg.SquareAt(3, 4)
	b.SetPiece(mg.SquareAt(1, 4), mg.White, mg.Pawn)   // e2
	b.SetPiece(mg.SquareAt(0, 6), mg.White, mg.Knight) // g1
	att := b.Attacks(mg.White)
	if att&mg.SquareAt(2, 3).Bit() == 0 || att&mg.SquareAt(2, 5).Bit() == 0 {
		t.Fatalf("pawn e2 should attack d3 and f3")
	}
	if att&mg.SquareAt(2, 4).Bit() != 0 || att&e4.Bit() != 0 {
		t.Fatalf("pawn pushes are not attacks")
	}
	if att&mg.SquareAt(2, 7).Bit() == 0 {
		t.Fatalf("knight g1 should attack h3")
	}
}

func TestAttacksThroughBlockers(t *testing.T) {
	var b mg.Board
	b.SetPiece(0, mg.White, mg.Rook)                  // a1
	b.SetPiece(mg.SquareAt(3, 0), mg.Black, mg.Pawn)  // a4
	b.SetPiece(mg.SquareAt(0, 3), mg.White, mg.Queen) // d1
	att := b.Attacks(mg.White)
	if att&mg.SquareAt(3, 0).Bit() == 0 {
		t.Fatalf("rook should attack the enemy pawn on a4")
	}
	if att&mg.SquareAt(4, 0).Bit() != 0 {
		t.Fatalf("rook should not see past a4")
	}
	if att&mg.SquareAt(0, 4).Bit() == 0 {
		t.Fatalf("queen on d1 should attack e1")
	}
	if att&mg.SquareAt(0, 3).Bit() != 0 {
		t.Fatalf("a side never attacks its own pieces")
	}
}

func TestInCheckMatchesAttackMask(t *testing.T) {
	for _, fen := range append(testPositions, foolsMate, stalemateFEN) {
		b := mustFEN(t, fen)
		for c := mg.White; c <= mg.Black; c++ {
			viaMask := b.Attacks(c.Other())&b.PieceMask(c, mg.King) != 0
			if b.InCheck(c) != viaMask {
				t.Fatalf("%s %s: InCheck=%v, attack mask says %v", fen, c, b.InCheck(c), viaMask)
			}
		}
	}
}

func TestFoolsMateIsCheckmate(t *testing.T) {
	b := mustFEN(t, foolsMate)
	if !b.InCheck(mg.White) {
		t.Fatalf("expected white in check")
	}
	if !b.IsCheckmate(mg.White) || !b.InCheckmate() {
		t.Fatalf("expected checkmate")
	}
	if b.IsCheckmate(mg.Black) {
		t.Fatalf("black is not mated")
	}
}

func TestStalemate(t *testing.T) {
	b := mustFEN(t, stalemateFEN)
	if b.InCheck(mg.Black) {
		t.Fatalf("stalemate position must not be check")
	}
	if !b.IsStalemate(mg.Black) || !b.InStalemate() {
		t.Fatalf("expected stalemate")
	}
	if b.IsCheckmate(mg.Black) {
		t.Fatalf("stalemate is not checkmate")
	}
}

func TestMateInOneLeadsToCheckmate(t *testing.T) {
	b := mustFEN(t, mateInOneFEN)
	m, ok := b.ParseMove("g6g7")
	if !ok {
		t.Fatalf("Qxg7 should be legal")
	}
	if !m.IsCapture() {
		t.Fatalf("Qxg7 is a capture")
	}
	b.ApplyMove(m, mg.White)
	if !b.IsCheckmate(mg.Black) {
		t.Fatalf("expected black to be mated after Qxg7")
	}
}
