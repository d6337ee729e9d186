package progression

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"jigsaw/pkg/game/options"
	"jigsaw/pkg/game/planner"
)

func plannedWorld(t *testing.T, width, height, slack int, seed int64) planner.Plan {
	t.Helper()
	plan, err := planner.Build(planner.Config{
		Width:           width,
		Height:          height,
		TypeOrder:       options.TypeOrderRandom,
		TypeStrictness:  100,
		Order:           options.OrderRandom,
		OrderStrictness: 100,
		Slack:           slack,
	}, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatal(err)
	}
	return plan
}

// TestBuildTable_InverseIsMonotone verifies the pieces-needed table never
// decreases and inverts the possible-merges table.
func TestBuildTable_InverseIsMonotone(t *testing.T) {
	plan := plannedWorld(t, 5, 5, 2, 21)
	table, err := BuildTable(plan, 5, 5, 2)
	if err != nil {
		t.Fatal(err)
	}

	needed := table.PiecesNeededPerMerge
	for m := 1; m < len(needed); m++ {
		if needed[m] < needed[m-1] {
			t.Errorf("PiecesNeededPerMerge[%d] = %d < PiecesNeededPerMerge[%d] = %d",
				m, needed[m], m-1, needed[m-1])
		}
	}
	for k, merges := range table.PossibleMerges {
		if merges < 1 || merges >= len(needed) {
			continue
		}
		if needed[merges] > k {
			t.Errorf("PiecesNeededPerMerge[%d] = %d > %d pieces that already reach it",
				merges, needed[merges], k)
		}
	}
}

// TestBuildTable_ZeroSlackMatchesActual verifies that without slack the
// adjusted and unadjusted tables coincide.
func TestBuildTable_ZeroSlackMatchesActual(t *testing.T) {
	plan := plannedWorld(t, 5, 5, 0, 4)
	table, err := BuildTable(plan, 5, 5, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(table.PossibleMerges) != 26 {
		t.Fatalf("len(PossibleMerges) = %d, want 26", len(table.PossibleMerges))
	}
	for k := range table.PossibleMerges {
		if table.PossibleMerges[k] != table.ActualPossibleMerges[k] {
			t.Errorf("PossibleMerges[%d] = %d != ActualPossibleMerges[%d] = %d",
				k, table.PossibleMerges[k], k, table.ActualPossibleMerges[k])
		}
	}
	// A fully replayed board ends at npieces-1 merges.
	if last := table.ActualPossibleMerges[25]; last != 24 {
		t.Errorf("ActualPossibleMerges[25] = %d, want 24", last)
	}
}

// TestInverse_UnreachableMergeFails verifies the inverse build reports a
// table that never reaches a required merge count.
func TestInverse_UnreachableMergeFails(t *testing.T) {
	if _, err := Inverse([]int{0, 1}, 5); err == nil {
		t.Error("Inverse with unreachable merges = nil error, want error")
	}
}

// TestBuildMilestones_ZeroLocations verifies a zero-percent check count
// produces no item locations and skips the repair loop entirely.
func TestBuildMilestones_ZeroLocations(t *testing.T) {
	plan := plannedWorld(t, 5, 5, 0, 8)
	table, err := BuildTable(plan, 5, 5, 0)
	if err != nil {
		t.Fatal(err)
	}
	m, err := BuildMilestones(plan, table, 25, 0, 1000, 10, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	if m.NumberOfLocations != 0 || len(m.ItemLocations) != 0 || len(m.PiecesPerLocation) != 0 {
		t.Errorf("zero locations produced %+v", m)
	}
}

// TestBuildMilestones_PartitionIsConsistent verifies the item and filler
// locations are disjoint, sorted, in range, and that the item count matches
// the sized location count.
func TestBuildMilestones_PartitionIsConsistent(t *testing.T) {
	plan := plannedWorld(t, 5, 5, 2, 13)
	table, err := BuildTable(plan, 5, 5, 2)
	if err != nil {
		t.Fatal(err)
	}
	m, err := BuildMilestones(plan, table, 25, 70, 1000, 10, rand.New(rand.NewSource(2)))
	if err != nil {
		t.Fatal(err)
	}

	if len(m.ItemLocations) != m.NumberOfLocations {
		t.Errorf("len(ItemLocations) = %d, want %d", len(m.ItemLocations), m.NumberOfLocations)
	}
	if len(m.PiecesPerLocation) != m.NumberOfLocations {
		t.Errorf("len(PiecesPerLocation) = %d, want %d", len(m.PiecesPerLocation), m.NumberOfLocations)
	}

	seen := map[int]bool{}
	for _, lists := range [][]int{m.ItemLocations, m.FillerLocations} {
		if !sort.IntsAreSorted(lists) {
			t.Errorf("location list not sorted: %v", lists)
		}
		for _, loc := range lists {
			if loc < 1 || loc > 24 {
				t.Errorf("location %d out of milestone range 1..24", loc)
			}
			if seen[loc] {
				t.Errorf("location %d appears twice", loc)
			}
			seen[loc] = true
		}
	}
}

// TestBuildMilestones_RepairLeavesNoDeficientMilestone re-runs the
// deficiency scan over the final assignment: no milestone may sit exactly at
// the edge of the merges its granted pieces allow.
func TestBuildMilestones_RepairLeavesNoDeficientMilestone(t *testing.T) {
	plan := plannedWorld(t, 5, 5, 1, 17)
	table, err := BuildTable(plan, 5, 5, 1)
	if err != nil {
		t.Fatal(err)
	}
	m, err := BuildMilestones(plan, table, 25, 70, 1000, 10, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatal(err)
	}

	isItem := map[int]bool{}
	for _, loc := range m.ItemLocations {
		isItem[loc] = true
	}
	numPieces := len(plan.Precollected)
	for i := 1; i < 24; i++ {
		if isItem[i] {
			numPieces += m.MinPiecesPerLocation
		}
		idx := numPieces
		if idx > 25 {
			idx = 25
		}
		if i == table.PossibleMerges[idx] {
			t.Errorf("milestone %d is still deficient after repair", i)
		}
	}
}

// TestBuildMilestones_TooManyPiecesPerLocationFails verifies the sanity
// bound: a huge pool funneled into one check aborts generation.
func TestBuildMilestones_TooManyPiecesPerLocationFails(t *testing.T) {
	itempool := make([]int, 600)
	for i := range itempool {
		itempool[i] = i + 1
	}
	plan := planner.Plan{Itempool: itempool}
	_, err := BuildMilestones(plan, Table{}, 602, 100, 1, 10, rand.New(rand.NewSource(4)))
	if err == nil {
		t.Fatal("BuildMilestones = nil error, want pieces-per-location error")
	}
	if errors.Is(err, ErrInfeasible) {
		t.Fatalf("got ErrInfeasible, want the sanity-bound error: %v", err)
	}
}
