package engine

import (
	"fmt"
	"strings"

	mg "chess-core/chessmg"
)

// IsMateScore reports whether score encodes a forced mate.
func IsMateScore(score int32) bool { return abs(score) > evalBound }

// ScoreString renders a score the UCI way: "cp 35" or "mate -2" (in moves).
func ScoreString(score int32) string {
	if !IsMateScore(score) {
		return fmt.Sprintf("cp %d", score)
	}
	plies := int(Checkmate - abs(score))
	mateIn := (plies + 1) / 2
	if score < 0 {
		mateIn = -mateIn
	}
	return fmt.Sprintf("mate %d", mateIn)
}

// InfoLine formats a finished search as a UCI info line.
func InfoLine(res Result) string {
	return fmt.Sprintf("info depth %d score %s nodes %d time %d pv %s",
		res.Depth, ScoreString(res.Score), res.Stats.Nodes, res.Elapsed.Milliseconds(), res.Move)
}

// RootMoveOrdering lists the root moves in search order with their ordering
// scores, for debugging.
func RootMoveOrdering(b *mg.Board, side mg.Color) string {
	var sb strings.Builder
	for i, m := range OrderedMoves(b, side) {
		fmt.Fprintf(&sb, "%2d. %s score=%d\n", i+1, m, moveScore(b, side, m))
	}
	return sb.String()
}
