// Package game runs a game between two players on a chessmg board.
package game

import (
	"context"
	"errors"
	"fmt"
	"io"

	"golang.org/x/exp/slog"

	mg "chess-core/chessmg"
	"chess-core/render"
)

// ErrGameOver is returned by Step once the side to move has no legal move.
var ErrGameOver = errors.New("game over")

type Outcome uint8

const (
	Unfinished Outcome = iota
	WhiteWins
	BlackWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case WhiteWins:
		return "White wins"
	case BlackWins:
		return "Black wins"
	case Draw:
		return "Draw"
	}
	return "Unfinished"
}

// Result is the PGN result token.
func (o Outcome) Result() string {
	switch o {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	}
	return "*"
}

// Player chooses a move for side. It is only asked when side has a legal move.
type Player interface {
	Move(ctx context.Context, b *mg.Board, side mg.Color) (mg.Move, error)
}

// Display shows the position before every turn and once at the end.
type Display interface {
	Show(b *mg.Board, label string) error
}

// Console prints boards as ANSI text.
type Console struct {
	W io.Writer
}

func (c Console) Show(b *mg.Board, label string) error {
	return render.Print(c.W, b, label)
}

type Game struct {
	board   mg.Board
	side    mg.Color
	players [2]Player
	display Display
	logger  *slog.Logger
	record  *Record

	maxPlies int
	plies    int
	moves    []mg.Move
	outcome  Outcome
}

type Option func(*Game)

func WithDisplay(d Display) Option { return func(g *Game) { g.display = d } }

func WithLogger(l *slog.Logger) Option { return func(g *Game) { g.logger = l } }

// WithMaxPlies ends the game as Unfinished after n half moves. Zero means no cap.
func WithMaxPlies(n int) Option { return func(g *Game) { g.maxPlies = n } }

// WithRecord appends every played move to r.
func WithRecord(r *Record) Option { return func(g *Game) { g.record = r } }

// New starts a game from start with its side to move.
func New(start mg.Board, white, black Player, opts ...Option) *Game {
	g := &Game{
		board:   start,
		side:    start.SideToMove(),
		players: [2]Player{white, black},
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Game) Board() mg.Board     { return g.board }
func (g *Game) SideToMove() mg.Color { return g.side }
func (g *Game) Moves() []mg.Move     { return g.moves }
func (g *Game) Outcome() Outcome     { return g.outcome }

// Step plays one turn. It returns ErrGameOver, with Outcome set, when the side
// to move is checkmated or stalemated or the ply cap is reached, and ctx.Err()
// once ctx is done.
func (g *Game) Step(ctx context.Context) error {
	if g.outcome != Unfinished {
		return ErrGameOver
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if !g.board.HasLegalMoves(g.side) {
		g.outcome = Draw
		label := "Stalemate"
		if g.board.InCheck(g.side) {
			g.outcome = winner(g.side.Other())
			label = "Checkmate"
		}
		g.logger.Info("game over", "outcome", g.outcome.String(), "plies", g.plies)
		g.show(fmt.Sprintf("%s, %s", label, g.outcome))
		return ErrGameOver
	}
	if g.maxPlies > 0 && g.plies >= g.maxPlies {
		g.logger.Info("ply cap reached", "plies", g.plies)
		return ErrGameOver
	}

	g.show(g.side.String() + " to move")
	m, err := g.players[g.side].Move(ctx, &g.board, g.side)
	if err != nil {
		return fmt.Errorf("%s: %w", g.side, err)
	}
	if !g.board.IsLegal(m, g.side) {
		return fmt.Errorf("%s played %s: %w", g.side, m, errIllegalFromPlayer)
	}
	g.board.ApplyMove(m, g.side)
	if g.record != nil {
		if err := g.record.Add(m); err != nil {
			return err
		}
	}
	g.logger.Debug("move", "side", g.side.String(), "move", m.String(), "fen", g.board.FEN())
	g.moves = append(g.moves, m)
	g.plies++
	g.side = g.side.Other()
	return nil
}

var errIllegalFromPlayer = errors.New("player returned an illegal move")

// Play runs Step until the game ends and returns the outcome. Errors other
// than ErrGameOver stop the game early.
func (g *Game) Play(ctx context.Context) (Outcome, error) {
	for {
		err := g.Step(ctx)
		if errors.Is(err, ErrGameOver) {
			if g.record != nil {
				g.record.SetOutcome(g.outcome)
			}
			return g.outcome, nil
		}
		if err != nil {
			return g.outcome, err
		}
	}
}

func (g *Game) show(label string) {
	if g.display == nil {
		return
	}
	if err := g.display.Show(&g.board, label); err != nil {
		g.logger.Warn("display failed", "err", err)
	}
}

func winner(side mg.Color) Outcome {
	if side == mg.White {
		return WhiteWins
	}
	return BlackWins
}
