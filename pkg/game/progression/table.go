// Package progression converts a planned piece order into the access-rule
// tables that gate checks behind merge milestones.
package progression

import (
	"fmt"

	"jigsaw/pkg/engine/board"
	"jigsaw/pkg/game/planner"
)

// Table maps collected-piece counts to achievable merge counts and back.
type Table struct {
	// PossibleMerges[k] is the merge count guaranteed after collecting k
	// pieces, with the out-of-logic slack subtracted everywhere except the
	// final stretch of the pool.
	PossibleMerges []int

	// ActualPossibleMerges[k] is the same without the slack adjustment.
	ActualPossibleMerges []int

	// PiecesNeededPerMerge[m] is the smallest k with PossibleMerges[k] >= m.
	// It is non-decreasing in m.
	PiecesNeededPerMerge []int
}

// slackWindow is the number of final pool pieces whose table entries keep
// the unadjusted merge count, so the end of the puzzle is never under-gated.
const slackWindow = 10

// BuildTable replays the planned order through a fresh board, recording the
// merge count after each piece.
func BuildTable(plan planner.Plan, width, height, slack int) (Table, error) {
	b, err := board.New(width, height)
	if err != nil {
		return Table{}, err
	}

	possible := []int{-slack}
	actual := []int{0}

	replay := func(pieces []int) error {
		for i, piece := range pieces {
			if err := b.AddPiece(piece - 1); err != nil {
				return fmt.Errorf("progression: %w", err)
			}
			merges := b.Merges()
			if len(plan.Itempool)-i < slackWindow {
				possible = append(possible, merges)
			} else {
				possible = append(possible, merges-slack)
			}
			actual = append(actual, merges)
		}
		return nil
	}
	if err := replay(plan.Precollected); err != nil {
		return Table{}, err
	}
	if err := replay(plan.Itempool); err != nil {
		return Table{}, err
	}

	npieces := width * height
	needed, err := Inverse(possible, npieces)
	if err != nil {
		return Table{}, err
	}

	return Table{
		PossibleMerges:       possible,
		ActualPossibleMerges: actual,
		PiecesNeededPerMerge: needed,
	}, nil
}

// Inverse builds the pieces-needed-per-merge table from a possible-merges
// table: entry m is the smallest piece count whose possible merge count
// reaches m. Clients reconstruct this from transmitted slot data without
// re-running generation.
func Inverse(possibleMerges []int, npieces int) ([]int, error) {
	needed := []int{0}
	for m := 1; m < npieces; m++ {
		idx := -1
		for k, v := range possibleMerges {
			if v >= m {
				idx = k
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("progression: merge %d is never reachable", m)
		}
		needed = append(needed, idx)
	}
	return needed, nil
}
