package planner

import (
	"jigsaw/pkg/game/options"
)

// Strategy picks the next piece from the pieces remaining in the current
// group. Implementations may reorder remaining.
type Strategy interface {
	Name() string

	// NextPiece removes one piece from remaining and returns the shrunk
	// slice and the chosen piece.
	NextPiece(p *picker, remaining []int) ([]int, int)
}

// Available strategies
var (
	Random         Strategy = &randomStrategy{}
	EveryPieceFits Strategy = &everyPieceFitsStrategy{}
	LeastMerges    Strategy = &leastMergesStrategy{}
)

// ForOption returns the strategy selected by the given option.
func ForOption(o options.PieceOrder) Strategy {
	switch o {
	case options.EveryPieceFits:
		return EveryPieceFits
	case options.LeastMergesPossible:
		return LeastMerges
	default:
		return Random
	}
}

type randomStrategy struct{}

func (s *randomStrategy) Name() string { return "random" }

func (s *randomStrategy) NextPiece(p *picker, remaining []int) ([]int, int) {
	return remaining[1:], remaining[0]
}

type everyPieceFitsStrategy struct{}

func (s *everyPieceFitsStrategy) Name() string { return "every-piece-fits" }

// NextPiece scans for the first remaining piece that would merge into the
// placed pieces, then reshuffles the rest. Below full strictness, a pick may
// fall back to a plain head draw instead.
func (s *everyPieceFitsStrategy) NextPiece(p *picker, remaining []int) ([]int, int) {
	if p.fallBack() {
		return remaining[1:], remaining[0]
	}

	pick := -1
	for i, piece := range remaining {
		if p.firstPiece || p.board.MergesFromAdding(piece-1) > 0 {
			pick = i
			break
		}
	}
	if pick < 0 {
		pick = 0
	}
	piece := remaining[pick]
	remaining = append(remaining[:pick], remaining[pick+1:]...)
	shuffle(remaining, p.rng)
	return remaining, piece
}

type leastMergesStrategy struct{}

func (s *leastMergesStrategy) Name() string { return "least-merges-possible" }

// NextPiece scans for the remaining piece with the smallest speculative merge
// delta. The best delta seen over the run is kept as an early-exit threshold:
// any piece at or below it is taken immediately. This is the hot loop of
// generation, so remaining pieces are probed with the non-mutating query
// only.
func (s *leastMergesStrategy) NextPiece(p *picker, remaining []int) ([]int, int) {
	if p.fallBack() {
		return remaining[1:], remaining[0]
	}

	pick := -1
	bestResult := 5
	for i, piece := range remaining {
		m := p.board.MergesFromAdding(piece - 1)
		if p.firstPiece || m <= p.bestEver {
			pick = i
			bestResult = 0
			break
		}
		if m < bestResult {
			pick = i
			bestResult = m
		}
	}
	p.bestEver = bestResult

	piece := remaining[pick]
	remaining = append(remaining[:pick], remaining[pick+1:]...)
	shuffle(remaining, p.rng)
	return remaining, piece
}
