// Package input turns human text into moves.
package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/notnil/chess"
	"golang.org/x/exp/slices"

	mg "chess-core/chessmg"
)

// ErrIllegalMove is returned when text names a move the side cannot play.
var ErrIllegalMove = errors.New("illegal move")

// Command is one parsed line of human input.
type Command struct {
	From, To mg.Square
	Castle   mg.CastleTag
	// SAN holds standard algebraic text ("Nf3") when the line was not
	// coordinate or castle syntax.
	SAN string
}

var castleTokens = map[string]mg.CastleTag{
	"o-o":       mg.KingSide,
	"0-0":       mg.KingSide,
	"kingside":  mg.KingSide,
	"o-o-o":     mg.QueenSide,
	"0-0-0":     mg.QueenSide,
	"queenside": mg.QueenSide,
}

// Parse reads "<file><rank>;<file><rank>" coordinates or a castle token.
// Coordinates never fail: an unreadable file or rank counts as zero, so
// "x9;e4" parses as a1 to e4. Anything without a ';' is kept as move text
// for Resolve, in SAN or UCI form.
func Parse(line string) Command {
	line = strings.TrimSpace(line)
	if tag, ok := castleTokens[strings.ToLower(line)]; ok {
		return Command{Castle: tag}
	}
	from, to, ok := strings.Cut(line, ";")
	if !ok {
		return Command{SAN: line}
	}
	return Command{From: lenientSquare(from), To: lenientSquare(to)}
}

func lenientSquare(s string) mg.Square {
	s = strings.ToLower(strings.TrimSpace(s))
	col, row := 0, 0
	if len(s) > 0 && s[0] >= 'a' && s[0] <= 'h' {
		col = int(s[0] - 'a')
	}
	if len(s) > 1 && s[1] >= '1' && s[1] <= '8' {
		row = int(s[1] - '1')
	}
	return mg.SquareAt(row, col)
}

// Resolve maps cmd onto one of side's legal moves.
func Resolve(b *mg.Board, side mg.Color, cmd Command) (mg.Move, error) {
	legal := b.LegalMoves(side)
	if cmd.SAN != "" {
		return resolveSAN(b, side, legal, cmd.SAN)
	}
	var i int
	if cmd.Castle != mg.NoCastle {
		want := mg.NewCastle(side, cmd.Castle)
		i = slices.Index(legal, want)
	} else {
		i = slices.IndexFunc(legal, func(m mg.Move) bool { return m.From() == cmd.From && m.To() == cmd.To })
	}
	if i < 0 {
		return mg.NoMove, fmt.Errorf("%w: %s", ErrIllegalMove, cmd)
	}
	return legal[i], nil
}

// ParseMove is Parse followed by Resolve.
func ParseMove(b *mg.Board, side mg.Color, line string) (mg.Move, error) {
	return Resolve(b, side, Parse(line))
}

// ParseSAN resolves standard algebraic notation ("Nf3", "exd6", "e8=Q").
func ParseSAN(b *mg.Board, side mg.Color, san string) (mg.Move, error) {
	return resolveSAN(b, side, b.LegalMoves(side), san)
}

// resolveSAN decodes algebraic notation with notnil/chess on the same
// position and matches the result by its UCI text.
func resolveSAN(b *mg.Board, side mg.Color, legal []mg.Move, san string) (mg.Move, error) {
	// UCI coordinates ("e2e4") are accepted as well.
	if i := slices.IndexFunc(legal, func(m mg.Move) bool { return m.String() == strings.ToLower(san) }); i >= 0 {
		return legal[i], nil
	}
	pos := *b
	pos.SetSideToMove(side)
	opt, err := chess.FEN(pos.FEN())
	if err != nil {
		return mg.NoMove, fmt.Errorf("%w: %q: %v", ErrIllegalMove, san, err)
	}
	g := chess.NewGame(opt)
	m, err := chess.AlgebraicNotation{}.Decode(g.Position(), san)
	if err != nil {
		return mg.NoMove, fmt.Errorf("%w: %q: %v", ErrIllegalMove, san, err)
	}
	if m.Promo() != chess.NoPieceType && m.Promo() != chess.Queen {
		return mg.NoMove, fmt.Errorf("%w: %q: pawns always promote to a queen", ErrIllegalMove, san)
	}
	uci := chess.UCINotation{}.Encode(g.Position(), m)
	i := slices.IndexFunc(legal, func(mv mg.Move) bool { return mv.String() == uci })
	if i < 0 {
		return mg.NoMove, fmt.Errorf("%w: %q", ErrIllegalMove, san)
	}
	return legal[i], nil
}

func (c Command) String() string {
	switch {
	case c.SAN != "":
		return c.SAN
	case c.Castle != mg.NoCastle:
		return c.Castle.String()
	}
	return c.From.String() + ";" + c.To.String()
}
