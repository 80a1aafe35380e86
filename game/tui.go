package game

import (
	"context"
	"errors"

	"github.com/gdamore/tcell/v2"

	mg "chess-core/chessmg"
	"chess-core/input"
	"chess-core/render"
)

// ErrQuit is returned by Screen.Move when the user presses Escape or Ctrl-C.
var ErrQuit = errors.New("quit")

// rows below the board
const (
	statusRow = render.BoardTop + 10
	promptRow = render.BoardTop + 11
)

// Screen is a Display and a Player backed by a tcell screen. Moves are typed
// at the prompt or picked with two mouse clicks.
type Screen struct {
	s        tcell.Screen
	label    string
	status   string
	selected mg.Square
}

// NewScreen wraps an initialized screen.
func NewScreen(s tcell.Screen) *Screen {
	s.EnableMouse()
	return &Screen{s: s, selected: mg.NoSquare}
}

func (t *Screen) Show(b *mg.Board, label string) error {
	t.label = label
	t.draw(b, 0, "")
	return nil
}

func (t *Screen) draw(b *mg.Board, marks uint64, typed string) {
	t.s.Clear()
	render.DrawMarked(t.s, b, t.label, marks)
	render.DrawText(t.s, 0, statusRow, t.status)
	render.DrawText(t.s, 0, promptRow, "> "+typed)
	t.s.ShowCursor(2+len([]rune(typed)), promptRow)
	t.s.Show()
}

func (t *Screen) Move(ctx context.Context, b *mg.Board, side mg.Color) (mg.Move, error) {
	var typed []rune
	var marks uint64
	t.selected = mg.NoSquare
	t.status = side.String() + " to move"
	for {
		if err := ctx.Err(); err != nil {
			return mg.NoMove, err
		}
		t.draw(b, marks, string(typed))
		ev := t.s.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return mg.NoMove, ErrQuit
		case *tcell.EventResize:
			t.s.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return mg.NoMove, ErrQuit
			case tcell.KeyEnter:
				m, err := input.ParseMove(b, side, string(typed))
				typed = typed[:0]
				if err != nil {
					t.status = "Illegal move, try again."
					continue
				}
				t.status = ""
				return m, nil
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(typed) > 0 {
					typed = typed[:len(typed)-1]
				}
			case tcell.KeyRune:
				typed = append(typed, ev.Rune())
			}
		case *tcell.EventMouse:
			if ev.Buttons()&tcell.Button1 == 0 {
				continue
			}
			sq, ok := render.SquareAtCell(ev.Position())
			if !ok {
				continue
			}
			if t.selected != mg.NoSquare {
				if m, ok := b.FindMove(side, t.selected, sq); ok {
					t.selected, t.status = mg.NoSquare, ""
					return m, nil
				}
			}
			t.selected, marks = sq, destinations(b, side, sq)
			if marks == 0 {
				t.selected = mg.NoSquare
			}
		}
	}
}

// destinations is the set of squares the piece on from can legally reach.
func destinations(b *mg.Board, side mg.Color, from mg.Square) uint64 {
	var mask uint64
	for _, m := range b.LegalMoves(side) {
		if m.From() == from {
			mask |= m.To().Bit()
		}
	}
	return mask
}
