// Package logic provides the run-time side of access rules: a per-player
// cached merge evaluator and the piece-threshold predicates installed on
// locations.
package logic

import (
	"jigsaw/pkg/engine/reach"
)

// Evaluator caches the merge count for one player's held pieces. It is owned
// by that player's session state and must not be shared across players; if
// the host runtime is multi-threaded, callers serialize access per player.
type Evaluator struct {
	width  int
	height int

	stale  bool
	cached int
}

// NewEvaluator returns an evaluator for a width×height board. It starts
// stale, so the first query always computes.
func NewEvaluator(width, height int) *Evaluator {
	return &Evaluator{width: width, height: height, stale: true}
}

// Invalidate marks the cache stale. Call it on every collect or remove event
// for the player; recomputation is cheap relative to event frequency, so no
// relevance filtering is done.
func (e *Evaluator) Invalidate() {
	e.stale = true
}

// Merges returns the merge count for the player's held pieces, recomputing
// with a flood fill only when the cache is stale.
func (e *Evaluator) Merges(held []int) int {
	if e.stale {
		e.cached = reach.Merges(held, e.width, e.height)
		e.stale = false
	}
	return e.cached
}

// PieceThresholdRule returns the access predicate for a merge milestone: the
// player's piece count must reach the table's threshold for that milestone.
// The predicate never fails; the table is fully populated before queries
// begin.
func PieceThresholdRule(piecesNeededPerMerge []int, milestone int) func(pieceCount int) bool {
	needed := piecesNeededPerMerge[milestone]
	return func(pieceCount int) bool {
		return pieceCount >= needed
	}
}
