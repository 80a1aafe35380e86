package game

import (
	"fmt"

	"github.com/notnil/chess"

	mg "chess-core/chessmg"
)

// Record keeps a PGN transcript of a game. Moves are replayed on a
// notnil/chess game so the output carries standard algebraic notation.
type Record struct {
	game *chess.Game
}

// NewRecord starts a transcript from start. Positions other than the standard
// one get FEN and SetUp tags.
func NewRecord(start mg.Board, tags map[string]string) (*Record, error) {
	fen := start.FEN()
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("record: %w", err)
	}
	g := chess.NewGame(opt)
	for k, v := range tags {
		g.AddTagPair(k, v)
	}
	if fen != mg.FENStartPos {
		g.AddTagPair("SetUp", "1")
		g.AddTagPair("FEN", fen)
	}
	return &Record{game: g}, nil
}

// Add appends m, which must be legal in the current record position.
func (r *Record) Add(m mg.Move) error {
	mv, err := chess.UCINotation{}.Decode(r.game.Position(), m.String())
	if err != nil {
		return fmt.Errorf("record %s: %w", m, err)
	}
	if err := r.game.Move(mv); err != nil {
		return fmt.Errorf("record %s: %w", m, err)
	}
	return nil
}

// SetOutcome sets the Result tag. Checkmate and stalemate are also detected by
// the replay itself.
func (r *Record) SetOutcome(o Outcome) {
	r.game.AddTagPair("Result", o.Result())
}

// Len is the number of recorded half moves.
func (r *Record) Len() int { return len(r.game.Moves()) }

// PGN renders the transcript.
func (r *Record) PGN() string { return r.game.String() }
