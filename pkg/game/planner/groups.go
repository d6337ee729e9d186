package planner

import (
	"math/rand"

	"jigsaw/pkg/game/options"
)

// buildGroups partitions the 1-indexed piece ids into priority groups
// according to the type order, shuffles each group, and applies the
// strictness bleed. The concatenated groups are the order in which pieces are
// offered to the picking strategy.
func buildGroups(width, height int, typeOrder options.PieceTypeOrder, strictness int, rng *rand.Rand) [][]int {
	npieces := width * height

	if typeOrder == options.TypeOrderRandom {
		all := make([]int, npieces)
		for i := range all {
			all[i] = i + 1
		}
		shuffle(all, rng)
		return [][]int{all}
	}

	corners := []int{1, width, width*(height-1) + 1, width * height}
	var edges []int
	for i := 2; i < width; i++ {
		edges = append(edges, i)
		edges = append(edges, width*(height-1)+i)
	}
	for i := 1; i < height-1; i++ {
		edges = append(edges, 1+width*i)
		edges = append(edges, width+width*i)
	}
	cornerOrEdge := make(map[int]bool, len(corners)+len(edges))
	for _, p := range corners {
		cornerOrEdge[p] = true
	}
	for _, p := range edges {
		cornerOrEdge[p] = true
	}
	var normal []int
	for p := 1; p <= npieces; p++ {
		if !cornerOrEdge[p] {
			normal = append(normal, p)
		}
	}

	shuffle(corners, rng)
	shuffle(edges, rng)
	shuffle(normal, rng)

	var groups [][]int
	switch typeOrder {
	case options.CornersEdgesNormal:
		groups = [][]int{corners, edges, normal}
	case options.NormalEdgesCorners:
		groups = [][]int{normal, edges, corners}
	case options.EdgesNormalCorners:
		groups = [][]int{edges, normal, corners}
	case options.CornersNormalEdges:
		groups = [][]int{corners, normal, edges}
	case options.NormalCornersEdges:
		groups = [][]int{normal, corners, edges}
	case options.EdgesCornersNormal:
		groups = [][]int{edges, corners, normal}
	}

	// Below full strictness, the head of each lower-priority group bleeds
	// into the next higher group, front-loading some of its pieces.
	bleed := float64(100-strictness) / 100
	if len(groups) > 2 {
		groups[2], groups[1] = movePercentage(groups[2], groups[1], bleed)
	}
	if len(groups) > 1 {
		groups[1], groups[0] = movePercentage(groups[1], groups[0], bleed)
	}

	for _, group := range groups {
		shuffle(group, rng)
	}
	return groups
}

// movePercentage moves the given fraction of from's head onto the back of to,
// preserving relative order.
func movePercentage(from, to []int, fraction float64) (newFrom, newTo []int) {
	moveCount := int(float64(len(from)) * fraction)
	for i := 0; i < moveCount && len(from) > 0; i++ {
		to = append(to, from[0])
		from = from[1:]
	}
	return from, to
}

func shuffle(pieces []int, rng *rand.Rand) {
	rng.Shuffle(len(pieces), func(i, j int) {
		pieces[i], pieces[j] = pieces[j], pieces[i]
	})
}
