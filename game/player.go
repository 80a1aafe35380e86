package game

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	mg "chess-core/chessmg"
	"chess-core/engine"
	"chess-core/input"
)

// Human reads moves from In, one per line, and prompts on Out until a legal
// move is entered.
type Human struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewHuman(in io.Reader, out io.Writer) *Human {
	return &Human{in: bufio.NewScanner(in), out: out}
}

func (h *Human) Move(ctx context.Context, b *mg.Board, side mg.Color) (mg.Move, error) {
	for {
		if err := ctx.Err(); err != nil {
			return mg.NoMove, err
		}
		fmt.Fprintf(h.out, "%s move (e2;e4, O-O or Nf3): ", side)
		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				return mg.NoMove, err
			}
			return mg.NoMove, io.EOF
		}
		m, err := input.ParseMove(b, side, h.in.Text())
		if errors.Is(err, input.ErrIllegalMove) {
			fmt.Fprintln(h.out, "Illegal move, try again.")
			continue
		}
		if err != nil {
			return mg.NoMove, err
		}
		return m, nil
	}
}

// Engine picks moves with a minimax search.
type Engine struct {
	Searcher *engine.Searcher
	Depth    int
	// MoveTime bounds each search when positive.
	MoveTime time.Duration
}

// Move searches to Depth. A search cut short by MoveTime still plays its
// best move; one cut short by ctx returns ctx.Err().
func (e *Engine) Move(ctx context.Context, b *mg.Board, side mg.Color) (mg.Move, error) {
	searchCtx := ctx
	if e.MoveTime > 0 {
		var cancel context.CancelFunc
		searchCtx, cancel = context.WithTimeout(ctx, e.MoveTime)
		defer cancel()
	}
	s := e.Searcher
	if s == nil {
		s = engine.NewSearcher()
	}
	depth := e.Depth
	if depth <= 0 {
		depth = engine.DefaultDepth
	}
	res := s.Search(searchCtx, b, side, depth)
	if res.Aborted && ctx.Err() != nil {
		return mg.NoMove, ctx.Err()
	}
	if !res.Found {
		return mg.NoMove, fmt.Errorf("no move found for %s", side)
	}
	return res.Move, nil
}
