// Package render draws boards for people: ANSI text for plain terminals and
// tcell cells for the full-screen interface.
package render

import (
	"bufio"
	"io"

	mg "chess-core/chessmg"
)

const (
	lightSquare = "\x1b[38;5;231;48;5;22m"
	darkSquare  = "\x1b[38;5;231;48;5;239m"
	blackPiece  = "\x1b[38;5;234m"
	reset       = "\x1b[0m"
)

// Glyphs are the filled chess symbols, indexed by piece kind. Both sides use
// them; color comes from the foreground.
var Glyphs = [6]string{"♟︎", "♞", "♝", "♜", "♛", "♚"}

// Print writes label followed by the board, rank 8 at the top, with rank
// numbers on the left and file letters underneath.
func Print(w io.Writer, b *mg.Board, label string) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("\n ")
	bw.WriteString(label)
	bw.WriteByte('\n')
	for row := 7; row >= 0; row-- {
		bw.WriteByte(byte('1' + row))
		for col := 0; col < 8; col++ {
			if IsLight(mg.SquareAt(row, col)) {
				bw.WriteString(lightSquare)
			} else {
				bw.WriteString(darkSquare)
			}
			bw.WriteString(cell(b, mg.SquareAt(row, col)))
			bw.WriteString(reset)
		}
		bw.WriteByte('\n')
	}
	bw.WriteString(" ABCDEFGH\n")
	return bw.Flush()
}

// IsLight reports whether sq is a light square (a1 is dark).
func IsLight(sq mg.Square) bool { return (sq.Row()+sq.Col())%2 == 1 }

func cell(b *mg.Board, sq mg.Square) string {
	side, kind, ok := b.PieceAt(sq)
	if !ok {
		return " "
	}
	if side == mg.Black {
		// the piece escape ends with a reset, so the square color comes back
		return blackPiece + Glyphs[kind] + reset + squareColor(sq)
	}
	return Glyphs[kind]
}

func squareColor(sq mg.Square) string {
	if IsLight(sq) {
		return lightSquare
	}
	return darkSquare
}
