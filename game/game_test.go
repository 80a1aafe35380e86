package game

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	mg "chess-core/chessmg"
	"chess-core/engine"
)

const (
	backRankMate = "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1"
	stalemated   = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
)

func TestFoolsMateBetweenHumans(t *testing.T) {
	script := "f2;f3\ne7;e5\ne2;e5\ng2;g4\nd8;h4\n"
	var out bytes.Buffer
	white := NewHuman(strings.NewReader(script), &out)
	black := white // both sides read the same script
	g := New(mg.NewBoard(), white, black, WithDisplay(Console{W: &out}))

	outcome, err := g.Play(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if outcome != BlackWins {
		t.Fatalf("outcome %s, want Black wins", outcome)
	}
	if len(g.Moves()) != 4 {
		t.Fatalf("%d moves played, want 4", len(g.Moves()))
	}
	if !strings.Contains(out.String(), "Illegal move, try again.") {
		t.Fatal("illegal input was not reported")
	}
	if !strings.Contains(out.String(), "Checkmate, Black wins") {
		t.Fatal("final board label missing")
	}
}

func TestHumanInputExhausted(t *testing.T) {
	h := NewHuman(strings.NewReader("e2;e4\n"), io.Discard)
	g := New(mg.NewBoard(), h, h)
	_, err := g.Play(context.Background())
	if !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF, got %v", err)
	}
	if g.SideToMove() != mg.Black {
		t.Fatal("white's move was not applied")
	}
}

func TestEngineFindsMate(t *testing.T) {
	start := mg.LoadFEN(backRankMate)
	rec, err := NewRecord(start, map[string]string{"Event": "test"})
	if err != nil {
		t.Fatal(err)
	}
	e := &Engine{Searcher: engine.NewSearcher(), Depth: 2}
	g := New(start, e, e, WithRecord(rec))
	outcome, err := g.Play(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if outcome != WhiteWins || len(g.Moves()) != 1 || g.Moves()[0].String() != "a1a8" {
		t.Fatalf("got %s after %v", outcome, g.Moves())
	}
	pgn := rec.PGN()
	for _, want := range []string{"Ra8#", "1-0", `[FEN "` + backRankMate + `"]`, `[Event "test"]`} {
		if !strings.Contains(pgn, want) {
			t.Fatalf("PGN lacks %q:\n%s", want, pgn)
		}
	}
}

func TestStalematedStart(t *testing.T) {
	e := &Engine{Depth: 1}
	g := New(mg.LoadFEN(stalemated), e, e)
	if err := g.Step(context.Background()); !errors.Is(err, ErrGameOver) {
		t.Fatalf("expected game over, got %v", err)
	}
	if g.Outcome() != Draw {
		t.Fatalf("outcome %s, want Draw", g.Outcome())
	}
	if err := g.Step(context.Background()); !errors.Is(err, ErrGameOver) {
		t.Fatal("a finished game must stay finished")
	}
}

func TestMaxPlies(t *testing.T) {
	e := &Engine{Depth: 1}
	g := New(mg.NewBoard(), e, e, WithMaxPlies(4))
	outcome, err := g.Play(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if outcome != Unfinished || len(g.Moves()) != 4 {
		t.Fatalf("got %s after %d plies", outcome, len(g.Moves()))
	}
	if outcome.Result() != "*" {
		t.Fatal(outcome.Result())
	}
}

type illegalPlayer struct{}

func (illegalPlayer) Move(context.Context, *mg.Board, mg.Color) (mg.Move, error) {
	return mg.NewMove(12, 36, mg.Pawn, 0), nil
}

func TestIllegalPlayerMoveIsRejected(t *testing.T) {
	g := New(mg.NewBoard(), illegalPlayer{}, illegalPlayer{})
	if err := g.Step(context.Background()); err == nil {
		t.Fatal("e2e5 was accepted")
	}
	if g.Board() != mg.NewBoard() {
		t.Fatal("board changed after a rejected move")
	}
}

func TestRecord(t *testing.T) {
	rec, err := NewRecord(mg.NewBoard(), nil)
	if err != nil {
		t.Fatal(err)
	}
	b := mg.NewBoard()
	for _, s := range []string{"e2e4", "e7e5", "g1f3"} {
		m, ok := b.ParseMove(s)
		if !ok {
			t.Fatalf("%s not legal", s)
		}
		b.ApplyMove(m, b.SideToMove())
		if err := rec.Add(m); err != nil {
			t.Fatal(err)
		}
	}
	if rec.Len() != 3 {
		t.Fatalf("Len = %d", rec.Len())
	}
	pgn := rec.PGN()
	if !strings.Contains(pgn, "e4") || !strings.Contains(pgn, "Nf3") || strings.Contains(pgn, "SetUp") {
		t.Fatalf("unexpected PGN:\n%s", pgn)
	}
	if err := rec.Add(mg.NewMove(1, 40, mg.Knight, 0)); err == nil {
		t.Fatal("b1a6 should not be recordable")
	}
}

func TestCancelledGamePlaysNothing(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e := &Engine{Depth: 4}
	g := New(mg.NewBoard(), e, e, WithMaxPlies(30))
	outcome, err := g.Play(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if outcome != Unfinished || len(g.Moves()) != 0 {
		t.Fatalf("got %s after %d plies", outcome, len(g.Moves()))
	}
}

func TestEngineMoveCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	b := mg.NewBoard()
	e := &Engine{Depth: 4}
	if _, err := e.Move(ctx, &b, mg.White); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestEngineMoveTimeExpiryStillPlays(t *testing.T) {
	b := mg.NewBoard()
	e := &Engine{Depth: 6, MoveTime: time.Millisecond}
	m, err := e.Move(context.Background(), &b, mg.White)
	if err != nil {
		t.Fatal(err)
	}
	if !b.IsLegal(m, mg.White) {
		t.Fatalf("%s is not legal", m)
	}
}
