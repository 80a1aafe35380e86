package engine

import (
	"context"
	"io"
	"time"

	"golang.org/x/exp/slog"

	mg "chess-core/chessmg"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	MaxScore  int32 = 32500
	Checkmate int32 = 30000
	DrawScore int32 = 0

	// MaxPly bounds the distance-to-mate adjustment.
	MaxPly = 100

	DefaultDepth = 6
)

// nodes between two checks of the context and the node limit
const stopCheckInterval = 2048

// Result is the outcome of a root search.
type Result struct {
	Move    mg.Move
	Score   int32
	Depth   int
	Stats   Stats
	Elapsed time.Duration
	// Found is false when the side had no legal move or the depth was zero.
	Found bool
	// Aborted is set when the context or node limit ended the search early.
	Aborted bool
}

// Searcher runs minimax searches. It is not safe for concurrent use.
type Searcher struct {
	pruning   bool
	ordering  bool
	nodeLimit uint64
	logger    *slog.Logger

	ctx     context.Context
	stats   Stats
	stopped bool
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithPruning toggles alpha-beta cutoffs. Without them the search is plain minimax.
func WithPruning(on bool) Option { return func(s *Searcher) { s.pruning = on } }

// WithOrdering toggles capture-first move ordering.
func WithOrdering(on bool) Option { return func(s *Searcher) { s.ordering = on } }

// WithNodeLimit stops the search after roughly n nodes. Zero means no limit.
func WithNodeLimit(n uint64) Option { return func(s *Searcher) { s.nodeLimit = n } }

// WithLogger sets the logger for search summaries and, at debug level, root
// move scores. The default discards everything.
func WithLogger(l *slog.Logger) Option { return func(s *Searcher) { s.logger = l } }

// NewSearcher returns a Searcher with pruning and ordering enabled.
func NewSearcher(opts ...Option) *Searcher {
	s := &Searcher{
		pruning:  true,
		ordering: true,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		ctx:      context.Background(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Stats returns the counters of the last search.
func (s *Searcher) Stats() Stats { return s.stats }

// Search returns the best move of side to the given depth. It is the fixed
// depth search with default options.
func Search(b *mg.Board, side mg.Color, depth int) mg.Move {
	return NewSearcher().Search(context.Background(), b, side, depth).Move
}

// Minimax scores b from rootSide's point of view, with sideToMove to play.
func Minimax(b *mg.Board, sideToMove, rootSide mg.Color, depth int, alpha, beta int32) int32 {
	s := NewSearcher()
	return s.minimax(b, sideToMove, rootSide, depth, 0, alpha, beta)
}

// Search runs the root of the tree. A cancelled ctx ends the search early with
// the best root move completed so far.
func (s *Searcher) Search(ctx context.Context, b *mg.Board, side mg.Color, depth int) (res Result) {
	start := time.Now()
	s.ctx = ctx
	s.stats = Stats{}
	s.stopped = false

	res = Result{Move: mg.NoMove, Depth: depth}
	defer func() {
		res.Stats = s.stats
		res.Elapsed = time.Since(start)
		s.logger.Info("search done",
			"side", side.String(),
			"depth", depth,
			"move", res.Move.String(),
			"score", ScoreString(res.Score),
			"nodes", s.stats.Nodes,
			"cutoffs", s.stats.BetaCutoffs,
			"aborted", res.Aborted,
			"elapsed", time.Since(start))
	}()

	if depth <= 0 {
		s.stats.Nodes++
		res.Score = Evaluate(b, side)
		return res
	}

	moves := b.LegalMoves(side)
	if len(moves) == 0 {
		res.Score = s.terminal(b, side, side, 0)
		return res
	}
	if s.ordering {
		orderMoves(b, side, moves)
	}

	alpha, beta := -MaxScore, MaxScore
	for _, m := range moves {
		child := *b
		child.ApplyMove(m, side)
		score := s.minimax(&child, side.Other(), side, depth-1, 1, alpha, beta)
		if s.stopped {
			res.Aborted = true
			break
		}
		s.logger.Debug("root move", "move", m.String(), "score", score)
		// Strictly greater: among equal scores the first in order wins, with
		// or without pruning.
		if !res.Found || score > res.Score {
			res.Move, res.Score, res.Found = m, score, true
		}
		if s.pruning && score > alpha {
			alpha = score
		}
	}
	if !res.Found {
		res.Move, res.Found = moves[0], true
		res.Score = 0
	}
	return res
}

func (s *Searcher) minimax(b *mg.Board, sideToMove, rootSide mg.Color, depth, ply int, alpha, beta int32) int32 {
	s.stats.Nodes++
	if s.stats.Nodes%stopCheckInterval == 0 {
		s.checkStop()
	}
	if s.stopped {
		return 0
	}

	if depth <= 0 {
		s.stats.Leaves++
		return Evaluate(b, rootSide)
	}

	moves := b.LegalMoves(sideToMove)
	if len(moves) == 0 {
		return s.terminal(b, sideToMove, rootSide, ply)
	}
	if s.ordering {
		orderMoves(b, sideToMove, moves)
	}

	maximizing := sideToMove == rootSide
	best := MaxScore
	if maximizing {
		best = -MaxScore
	}
	for i, m := range moves {
		child := *b
		child.ApplyMove(m, sideToMove)
		score := s.minimax(&child, sideToMove.Other(), rootSide, depth-1, ply+1, alpha, beta)
		if s.stopped {
			return 0
		}
		if maximizing {
			best = Max(best, score)
			alpha = Max(alpha, best)
		} else {
			best = Min(best, score)
			beta = Min(beta, best)
		}
		if s.pruning && beta <= alpha {
			s.stats.BetaCutoffs++
			if i == 0 {
				s.stats.FirstMoveCutoffs++
			}
			break
		}
	}
	return best
}

// terminal scores a node whose side to move has no legal move. Mates closer
// to the root score higher for the winner.
func (s *Searcher) terminal(b *mg.Board, sideToMove, rootSide mg.Color, ply int) int32 {
	if !b.InCheck(sideToMove) {
		s.stats.Stalemates++
		return DrawScore
	}
	s.stats.Checkmates++
	score := Checkmate - int32(Min(ply, MaxPly))
	if sideToMove == rootSide {
		return -score
	}
	return score
}

func (s *Searcher) checkStop() {
	if s.nodeLimit > 0 && s.stats.Nodes >= s.nodeLimit {
		s.stopped = true
		return
	}
	if s.ctx.Err() != nil {
		s.stopped = true
	}
}
