package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	mg "chess-core/chessmg"
)

func TestPrintLayout(t *testing.T) {
	b := mg.NewBoard()
	var buf bytes.Buffer
	if err := Print(&buf, &b, "Board"); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// blank line, label, 8 ranks, footer
	if len(lines) != 11 {
		t.Fatalf("expected 11 lines, got %d:\n%s", len(lines), buf.String())
	}
	if lines[1] != " Board" {
		t.Fatalf("label line %q", lines[1])
	}
	for i := 0; i < 8; i++ {
		if want := byte('8' - i); lines[2+i][0] != want {
			t.Fatalf("rank line %d starts with %q, want %q", i, lines[2+i][0], want)
		}
	}
	if lines[10] != " ABCDEFGH" {
		t.Fatalf("footer %q", lines[10])
	}
	if n := strings.Count(buf.String(), "♚"); n != 2 {
		t.Fatalf("expected 2 kings, found %d", n)
	}
	if n := strings.Count(buf.String(), blackPiece); n != 16 {
		t.Fatalf("expected 16 black pieces, found %d", n)
	}
}

func TestSquareColors(t *testing.T) {
	if IsLight(0) {
		t.Fatalf("a1 is dark")
	}
	if !IsLight(7) || !IsLight(56) || IsLight(63) {
		t.Fatalf("corner colors wrong")
	}
}

func TestDrawOnSimulationScreen(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	defer s.Fini()
	s.SetSize(40, 12)

	b := mg.NewBoard()
	Draw(s, &b, "Start")
	s.Show()

	if r, _, _, _ := s.GetContent(0, 0); r != 'S' {
		t.Fatalf("label not drawn, got %q", r)
	}
	e1x, e1y := BoardLeft+4*SquareCols, BoardTop+7
	r, _, style, _ := s.GetContent(e1x, e1y)
	if r != '♚' {
		t.Fatalf("e1 shows %q", r)
	}
	if fg, _, _ := style.Decompose(); fg == tcell.PaletteColor(234) {
		t.Fatalf("white king drawn in black")
	}
	r, _, style, _ = s.GetContent(BoardLeft+3*SquareCols, BoardTop)
	if r != '♛' {
		t.Fatalf("d8 shows %q", r)
	}
	if fg, _, _ := style.Decompose(); fg != tcell.PaletteColor(234) {
		t.Fatalf("black queen foreground %v", fg)
	}
	if r, _, _, _ := s.GetContent(0, BoardTop); r != '8' {
		t.Fatalf("rank label %q", r)
	}
	if r, _, _, _ := s.GetContent(BoardLeft+7*SquareCols, BoardTop+8); r != 'H' {
		t.Fatalf("file label %q", r)
	}
}

func TestDrawMarked(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	defer s.Fini()
	s.SetSize(40, 12)
	b := mg.NewBoard()
	e2 := mg.SquareAt(1, 4)
	DrawMarked(s, &b, "", e2.Bit())
	_, _, style, _ := s.GetContent(BoardLeft+4*SquareCols, BoardTop+6)
	if _, bg, _ := style.Decompose(); bg != tcell.PaletteColor(136) {
		t.Fatalf("e2 not highlighted: %v", bg)
	}
}

func TestSquareAtCell(t *testing.T) {
	sq, ok := SquareAtCell(BoardLeft+4*SquareCols+1, BoardTop+6)
	if !ok || sq != mg.SquareAt(1, 4) {
		t.Fatalf("got %s %v, want e2", sq, ok)
	}
	if _, ok := SquareAtCell(0, BoardTop); ok {
		t.Fatalf("rank label column is not a square")
	}
}
