// Package items defines the collectible items of a jigsaw world: bundles of
// puzzle pieces, filler encouragements, and the victory marker.
package items

import (
	"fmt"
	"math/rand"

	"github.com/leonelquinteros/gotext"
)

// Classification separates items that gate progression from filler.
type Classification int

// Classifications
const (
	Filler Classification = iota
	Progression
)

// Item is one collectible item.
type Item struct {
	Name           string
	Classification Classification

	// Pieces is the number of puzzle pieces this item grants; 0 for
	// non-piece items.
	Pieces int
}

// MaxBundle is the largest number of pieces a single item may grant.
const MaxBundle = 500

// VictoryName is the name of the victory marker item.
const VictoryName = "Victory"

// FillerName is the default filler item name.
const FillerName = "Squawks"

// PieceBundle returns a progression item granting n puzzle pieces.
func PieceBundle(n int) Item {
	name := fmt.Sprintf("%d Puzzle Pieces", n)
	if n == 1 {
		name = "1 Puzzle Piece"
	}
	return Item{Name: name, Classification: Progression, Pieces: n}
}

// Bundles splits a piece total into bundle items of at most MaxBundle pieces
// each. Used for the start inventory, which may exceed a single bundle.
func Bundles(total int) []Item {
	var result []Item
	for total > 0 {
		n := total
		if n > MaxBundle {
			n = MaxBundle
		}
		result = append(result, PieceBundle(n))
		total -= n
	}
	return result
}

// Victory returns the victory marker item.
func Victory() Item {
	return Item{Name: VictoryName, Classification: Progression}
}

const encouragementCount = 6

// encouragementText returns the translated text for one of the filler
// encouragement items. Uses gotext.Get with constant keys to satisfy vet.
func encouragementText(n int) string {
	switch n {
	case 0:
		return gotext.Get("ENCOURAGE_GREAT_FIT")
	case 1:
		return gotext.Get("ENCOURAGE_KEEP_GOING")
	case 2:
		return gotext.Get("ENCOURAGE_EDGE_FIRST")
	case 3:
		return gotext.Get("ENCOURAGE_ALMOST_THERE")
	case 4:
		return gotext.Get("ENCOURAGE_NICE_MERGE")
	default:
		return gotext.Get("ENCOURAGE_LOOKING_GOOD")
	}
}

// Encouragement returns a filler item with a translated encouragement text
// chosen by the given random source.
func Encouragement(rng *rand.Rand) Item {
	return Item{Name: encouragementText(rng.Intn(encouragementCount)), Classification: Filler}
}
