package progression

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"jigsaw/pkg/game/planner"
)

// ErrInfeasible is returned when the milestone repair loop cannot find a
// valid swap, meaning the configuration asks for more gated checks than the
// piece supply can support. Generation aborts; the caller should retry with
// different options or another seed.
var ErrInfeasible = errors.New("progression: no valid milestone swap available")

// maxPiecesPerLocation is a sanity bound on how many pieces a single check
// may grant.
const maxPiecesPerLocation = 500

// Milestones assigns item-bearing and filler checks to merge milestones.
// Milestone i is "reach i merges"; milestones run 1..npieces-1, with the last
// reserved for the victory event.
type Milestones struct {
	// NumberOfLocations is the number of item-bearing checks.
	NumberOfLocations int

	// MinPiecesPerLocation is the bundle size granted by each item check.
	MinPiecesPerLocation int

	// PiecesPerLocation lists the bundle size for every item check.
	PiecesPerLocation []int

	// ItemLocations and FillerLocations partition the check-bearing
	// milestones, sorted ascending.
	ItemLocations   []int
	FillerLocations []int
}

// BuildMilestones sizes the location set, spreads item checks as evenly as
// possible over the milestones, and repairs any milestone that is not
// reachable with the pieces granted by then.
func BuildMilestones(plan planner.Plan, table Table, npieces, percentChecks, maxChecks, percentExtra int, rng *rand.Rand) (Milestones, error) {
	piecesLeft := int(math.Ceil(float64(len(plan.Itempool)) * (1 + float64(percentExtra)/100)))

	numberOfLocations := int(float64(percentChecks) / 100 * float64(npieces-2))
	if numberOfLocations > maxChecks {
		numberOfLocations = maxChecks
	}

	m := Milestones{
		NumberOfLocations:    numberOfLocations,
		MinPiecesPerLocation: 1,
	}
	if numberOfLocations == 0 {
		return m, nil
	}

	perLocation := (piecesLeft + numberOfLocations - 1) / numberOfLocations
	m.MinPiecesPerLocation = perLocation
	if perLocation > maxPiecesPerLocation {
		return Milestones{}, fmt.Errorf("progression: %d pieces per location exceeds the sanity bound of %d", perLocation, maxPiecesPerLocation)
	}
	for i := 0; i < numberOfLocations; i++ {
		m.PiecesPerLocation = append(m.PiecesPerLocation, perLocation)
	}

	m.ItemLocations, m.FillerLocations = distribute(npieces, numberOfLocations)

	if err := m.repair(plan, table, npieces, rng); err != nil {
		return Milestones{}, err
	}
	return m, nil
}

// distribute spreads items item checks over the npieces-2 assignable
// milestones, alternating runs of item and filler checks so the spacing is as
// even as possible.
func distribute(npieces, items int) (itemLocations, fillerLocations []int) {
	maxScore := npieces - 1
	locs := maxScore - 1 // the final milestone is the win condition

	i := 1
	for i < maxScore {
		inARow := locs
		notInARow := 0
		if locs > items {
			inARow = (locs - 1) / (locs - items)
			notInARow = (locs - items) / (items + 1)
			if notInARow < 1 {
				notInARow = 1
			}
		}
		for j := 0; j < inARow; j++ {
			itemLocations = append(itemLocations, i+j)
		}
		for j := 0; j < notInARow; j++ {
			fillerLocations = append(fillerLocations, i+inARow+j)
		}
		i += inARow + notInARow
		locs -= inARow + notInARow
		items -= inARow
	}
	return itemLocations, fillerLocations
}

// repair walks the milestones in order, simulating the pieces granted by the
// item checks passed so far. A milestone whose merge requirement is exactly
// at the edge of what those pieces allow cannot be cleared, so one item check
// past it swaps places with one filler check before it and the walk restarts.
// The pass count is bounded; running out of passes or swap candidates is a
// fatal configuration error.
func (m *Milestones) repair(plan planner.Plan, table Table, npieces int, rng *rand.Rand) error {
	maxPasses := npieces * 10

	doAgain := true
	for pass := 0; doAgain; pass++ {
		if pass >= maxPasses {
			return ErrInfeasible
		}
		doAgain = false

		numPieces := len(plan.Precollected)
		for i := 1; i < npieces-1; i++ {
			if containsLocation(m.ItemLocations, i) {
				numPieces += m.MinPiecesPerLocation
			}
			idx := numPieces
			if idx > npieces {
				idx = npieces
			}
			if i != table.PossibleMerges[idx] {
				continue
			}

			doAgain = true
			var itemCandidates, fillerCandidates []int
			for _, loc := range m.ItemLocations {
				if loc > i {
					itemCandidates = append(itemCandidates, loc)
				}
			}
			for _, loc := range m.FillerLocations {
				if loc <= i {
					fillerCandidates = append(fillerCandidates, loc)
				}
			}
			if len(itemCandidates) == 0 || len(fillerCandidates) == 0 {
				return ErrInfeasible
			}

			chosenItem := itemCandidates[rng.Intn(len(itemCandidates))]
			m.ItemLocations = removeLocation(m.ItemLocations, chosenItem)
			m.FillerLocations = append(m.FillerLocations, chosenItem)

			chosenFiller := fillerCandidates[rng.Intn(len(fillerCandidates))]
			m.FillerLocations = removeLocation(m.FillerLocations, chosenFiller)
			m.ItemLocations = append(m.ItemLocations, chosenFiller)

			sort.Ints(m.ItemLocations)
			sort.Ints(m.FillerLocations)

			// The swap retroactively grants one more item check's pieces.
			numPieces += m.MinPiecesPerLocation
		}
	}
	return nil
}

func containsLocation(locations []int, loc int) bool {
	for _, l := range locations {
		if l == loc {
			return true
		}
	}
	return false
}

func removeLocation(locations []int, loc int) []int {
	for i, l := range locations {
		if l == loc {
			return append(locations[:i], locations[i+1:]...)
		}
	}
	return locations
}
