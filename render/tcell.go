package render

import (
	"github.com/gdamore/tcell/v2"

	mg "chess-core/chessmg"
)

// Layout of Draw, in screen cells. Each square is two cells wide.
const (
	BoardTop   = 1
	BoardLeft  = 2
	SquareCols = 2
)

var (
	lightStyle = tcell.StyleDefault.Background(tcell.PaletteColor(22)).Foreground(tcell.PaletteColor(231))
	darkStyle  = tcell.StyleDefault.Background(tcell.PaletteColor(239)).Foreground(tcell.PaletteColor(231))
	markStyle  = tcell.StyleDefault.Background(tcell.PaletteColor(136)).Foreground(tcell.PaletteColor(231))
	textStyle  = tcell.StyleDefault
)

// glyphRunes are the tcell counterparts of Glyphs.
var glyphRunes = [6]rune{'♟', '♞', '♝', '♜', '♛', '♚'}

// Draw paints label and the board on screen. It does not call Show.
func Draw(s tcell.Screen, b *mg.Board, label string) {
	DrawMarked(s, b, label, 0)
}

// DrawMarked is Draw with the squares in marks highlighted.
func DrawMarked(s tcell.Screen, b *mg.Board, label string, marks uint64) {
	DrawText(s, 0, 0, label)
	for row := 7; row >= 0; row-- {
		y := BoardTop + 7 - row
		s.SetContent(0, y, rune('1'+row), nil, textStyle)
		for col := 0; col < 8; col++ {
			sq := mg.SquareAt(row, col)
			style := darkStyle
			if IsLight(sq) {
				style = lightStyle
			}
			if marks&sq.Bit() != 0 {
				style = markStyle
			}
			ch := ' '
			if side, kind, ok := b.PieceAt(sq); ok {
				ch = glyphRunes[kind]
				if side == mg.Black {
					style = style.Foreground(tcell.PaletteColor(234))
				}
			}
			x := BoardLeft + col*SquareCols
			s.SetContent(x, y, ch, nil, style)
			s.SetContent(x+1, y, ' ', nil, style)
		}
	}
	for col := 0; col < 8; col++ {
		s.SetContent(BoardLeft+col*SquareCols, BoardTop+8, rune('A'+col), nil, textStyle)
	}
}

// DrawText writes a line of text starting at (x, y), clearing the rest of the row.
func DrawText(s tcell.Screen, x, y int, text string) {
	w, _ := s.Size()
	for _, r := range text {
		s.SetContent(x, y, r, nil, textStyle)
		x++
	}
	for ; x < w; x++ {
		s.SetContent(x, y, ' ', nil, textStyle)
	}
}

// SquareAtCell maps a screen position back to a board square, for mouse input.
func SquareAtCell(x, y int) (mg.Square, bool) {
	col := (x - BoardLeft) / SquareCols
	row := 7 - (y - BoardTop)
	if x < BoardLeft || col > 7 || row < 0 || row > 7 {
		return mg.NoSquare, false
	}
	return mg.SquareAt(row, col), true
}
