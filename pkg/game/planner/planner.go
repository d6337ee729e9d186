// Package planner decides the order in which puzzle pieces become available
// and splits that order into pieces granted at start versus pieces that must
// be found.
package planner

import (
	"fmt"
	"math/rand"

	"jigsaw/pkg/engine/board"
	"jigsaw/pkg/game/options"
)

// Config holds the planner inputs.
type Config struct {
	Width  int
	Height int

	TypeOrder      options.PieceTypeOrder
	TypeStrictness int

	Order           options.PieceOrder
	OrderStrictness int

	// Slack is the out-of-logic budget: how far the merge count may run
	// ahead of the queued item count before pieces stop being free.
	Slack int
}

// Plan is the planner output: a permutation of all 1-indexed pieces split
// into a precollected prefix and the discoverable remainder. The
// concatenation is the canonical collection order.
type Plan struct {
	Precollected []int
	Itempool     []int
}

// Order returns the full collection order, precollected pieces first.
func (p Plan) Order() []int {
	order := make([]int, 0, len(p.Precollected)+len(p.Itempool))
	order = append(order, p.Precollected...)
	order = append(order, p.Itempool...)
	return order
}

// picker carries the per-run state the strategies consult.
type picker struct {
	board      *board.Board
	rng        *rand.Rand
	strictness int
	firstPiece bool
	bestEver   int
}

// fallBack reports whether this pick should ignore the strategy and draw the
// head of the remaining sequence instead.
func (p *picker) fallBack() bool {
	return float64(p.strictness)/100 < p.rng.Float64()
}

// Build orders all pieces of the grid and classifies each as precollected or
// discoverable. A piece joins the item pool only while there are merges left
// to gate it behind; otherwise it is free and handed out at start.
func Build(cfg Config, rng *rand.Rand) (Plan, error) {
	b, err := board.New(cfg.Width, cfg.Height)
	if err != nil {
		return Plan{}, err
	}

	groups := buildGroups(cfg.Width, cfg.Height, cfg.TypeOrder, cfg.TypeStrictness, rng)
	strategy := ForOption(cfg.Order)

	p := &picker{
		board:      b,
		rng:        rng,
		strictness: cfg.OrderStrictness,
		firstPiece: true,
	}

	var plan Plan
	for _, group := range groups {
		p.bestEver = 0
		remaining := group
		for len(remaining) > 0 {
			var piece int
			remaining, piece = strategy.NextPiece(p, remaining)

			if b.Merges() > len(plan.Itempool)+cfg.Slack {
				plan.Itempool = append(plan.Itempool, piece)
			} else {
				plan.Precollected = append(plan.Precollected, piece)
			}

			if err := b.AddPiece(piece - 1); err != nil {
				return Plan{}, fmt.Errorf("planner: %w", err)
			}
			p.firstPiece = false
		}
	}
	return plan, nil
}
