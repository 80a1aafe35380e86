package engine

import (
	"context"
	"time"

	mg "chess-core/chessmg"
)

// TimeHandler turns UCI clock information into a deadline for one search.
type TimeHandler struct {
	Remaining time.Duration
	Increment time.Duration
	// MoveTime, when set, is used as is.
	MoveTime time.Duration
}

// Engine-side safety knobs
const (
	overhead      = 30 * time.Millisecond // reserve for UCI/IO jitter
	minMoveTime   = 5 * time.Millisecond
	maxFrac       = 0.7 // never spend more than 70% of the remaining time
	panicThresh   = time.Second
	panicFrac     = 0.90 // use 90% of the increment in panic
	defaultMoves  = 40
	unlimitedTime = time.Duration(0)
)

// Budget returns the time to spend on the next move, or zero for no limit.
func (th TimeHandler) Budget(b *mg.Board) time.Duration {
	if th.MoveTime > 0 {
		return th.MoveTime
	}
	rem, inc := th.Remaining, th.Increment
	if rem <= 0 {
		return unlimitedTime
	}

	var moveTime time.Duration
	if inc > 0 {
		if rem < panicThresh {
			moveTime = time.Duration(float64(inc) * panicFrac)
		} else {
			moveTime = rem/time.Duration(estimateMovesRemaining(piecePhase(b))) + inc
		}
	} else {
		moveTime = rem / defaultMoves
	}

	if moveTime > time.Duration(float64(rem)*maxFrac) {
		moveTime = time.Duration(float64(rem) * maxFrac)
	}
	if moveTime > rem-overhead {
		moveTime = rem - overhead
	}
	if moveTime < minMoveTime {
		moveTime = minMoveTime
	}
	return moveTime
}

// Context derives a search context that expires after Budget.
func (th TimeHandler) Context(parent context.Context, b *mg.Board) (context.Context, context.CancelFunc) {
	budget := th.Budget(b)
	if budget == unlimitedTime {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, budget)
}

// piecePhase is 24 with all minor and major pieces on the board and 0 without.
func piecePhase(b *mg.Board) int {
	phase := 0
	for c := mg.White; c <= mg.Black; c++ {
		phase += mg.PopCount(b.PieceMask(c, mg.Knight) | b.PieceMask(c, mg.Bishop))
		phase += 2 * mg.PopCount(b.PieceMask(c, mg.Rook))
		phase += 4 * mg.PopCount(b.PieceMask(c, mg.Queen))
	}
	return Min(phase, 24)
}

func estimateMovesRemaining(phase int) int {
	// Linearly interpolate between 20 (endgame) and 45 (opening/midgame)
	return (phase*25)/24 + 20
}
