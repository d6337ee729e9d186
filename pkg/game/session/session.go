// Package session assembles a jigsaw world: it runs the generation pipeline
// and owns the locations, item pool, and per-player run-time state.
package session

import (
	"fmt"
	"math/rand"

	"jigsaw/pkg/game/items"
	"jigsaw/pkg/game/layout"
	"jigsaw/pkg/game/logic"
	"jigsaw/pkg/game/options"
	"jigsaw/pkg/game/planner"
	"jigsaw/pkg/game/progression"
	"jigsaw/pkg/game/slotdata"
)

// WorldVersion is the payload compatibility version.
const WorldVersion = "0.4.0"

// locationIDBase offsets location addresses into this world's id space.
const locationIDBase = 234782000

// Location is one check bound to a merge milestone.
type Location struct {
	Name      string
	Milestone int

	// Address is the location's id, or 0 for the victory event.
	Address int

	// Access reports whether a player with the given piece count can reach
	// this location.
	Access func(pieceCount int) bool

	// Locked holds an item placed here at generation time, if any.
	Locked *items.Item
}

// World is one generated jigsaw world.
type World struct {
	Options  options.Options
	SeedName string

	Width       int
	Height      int
	Orientation float64

	Plan       planner.Plan
	Table      progression.Table
	Milestones progression.Milestones

	// Locations covers every milestone 1..npieces-1; the last is the
	// victory event.
	Locations []*Location

	// StartInventory holds the precollected piece bundles.
	StartInventory []items.Item

	// Pool holds the discoverable items the host places elsewhere.
	Pool []items.Item

	order []int
}

// NPieces returns the total piece count of the fitted grid.
func (w *World) NPieces() int {
	return w.Width * w.Height
}

// Generate runs the full generation pipeline for one world. All failures are
// fatal for this world; the caller retries with different options or another
// seed.
func Generate(opts options.Options, seedName string, seed int64) (*World, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))

	orientation := opts.OrientationOfImage.Factor()
	width, height := layout.OptimalDimensions(opts.NumberOfPieces, orientation)
	npieces := width * height

	plan, err := planner.Build(planner.Config{
		Width:           width,
		Height:          height,
		TypeOrder:       opts.PieceTypeOrder,
		TypeStrictness:  opts.StrictnessPieceTypeOrder,
		Order:           opts.PieceOrder,
		OrderStrictness: opts.StrictnessPieceOrder,
		Slack:           opts.ChecksOutOfLogic,
	}, rng)
	if err != nil {
		return nil, err
	}

	table, err := progression.BuildTable(plan, width, height, opts.ChecksOutOfLogic)
	if err != nil {
		return nil, err
	}

	milestones, err := progression.BuildMilestones(
		plan, table, npieces,
		opts.PercentageOfMergesThatAreChecks,
		opts.MaximumNumberOfChecks,
		opts.PercentageOfExtraPieces,
		rng,
	)
	if err != nil {
		return nil, err
	}

	w := &World{
		Options:        opts,
		SeedName:       seedName,
		Width:          width,
		Height:         height,
		Orientation:    orientation,
		Plan:           plan,
		Table:          table,
		Milestones:     milestones,
		StartInventory: items.Bundles(len(plan.Precollected)),
		order:          plan.Order(),
	}

	for _, n := range milestones.PiecesPerLocation {
		w.Pool = append(w.Pool, items.PieceBundle(n))
	}

	w.buildLocations(rng)
	return w, nil
}

// buildLocations creates one location per milestone, installs the access
// predicates, and locks filler and victory items in place.
func (w *World) buildLocations(rng *rand.Rand) {
	npieces := w.NPieces()

	byMilestone := make(map[int]*Location, npieces-1)
	for i := 1; i < npieces; i++ {
		loc := &Location{
			Name:      fmt.Sprintf("Merge %d times", i),
			Milestone: i,
			Address:   locationIDBase + i,
			Access:    logic.PieceThresholdRule(w.Table.PiecesNeededPerMerge, i),
		}
		w.Locations = append(w.Locations, loc)
		byMilestone[i] = loc
	}

	for _, milestone := range w.Milestones.FillerLocations {
		if loc, ok := byMilestone[milestone]; ok {
			encouragement := items.Encouragement(rng)
			loc.Locked = &encouragement
		}
	}

	// The final milestone becomes the victory event: no address, locked
	// victory item.
	victory := byMilestone[npieces-1]
	victory.Address = 0
	victoryItem := items.Victory()
	victory.Locked = &victoryItem
}

// SlotData returns the transmitted payload for this world.
func (w *World) SlotData() slotdata.SlotData {
	return slotdata.SlotData{
		SeedName:             w.SeedName,
		WorldVersion:         WorldVersion,
		Width:                w.Width,
		Height:               w.Height,
		Orientation:          w.Orientation,
		PieceOrder:           w.order,
		PossibleMerges:       w.Table.PossibleMerges,
		ActualPossibleMerges: w.Table.ActualPossibleMerges,
	}
}

// CompletionRule returns the completion predicate: the player holds the
// victory marker.
func (w *World) CompletionRule() func(p *Player) bool {
	return func(p *Player) bool {
		return p.HasVictory()
	}
}
