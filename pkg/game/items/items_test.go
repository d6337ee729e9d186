package items

import (
	"math/rand"
	"testing"
)

// TestPieceBundle_Names verifies singular and plural bundle names.
func TestPieceBundle_Names(t *testing.T) {
	if got := PieceBundle(1).Name; got != "1 Puzzle Piece" {
		t.Errorf("PieceBundle(1).Name = %q", got)
	}
	if got := PieceBundle(12).Name; got != "12 Puzzle Pieces" {
		t.Errorf("PieceBundle(12).Name = %q", got)
	}
	if PieceBundle(3).Classification != Progression {
		t.Error("piece bundles must be progression items")
	}
}

// TestBundles_SplitsAtMaxBundle verifies large totals split into bundles of
// at most MaxBundle pieces that sum to the total.
func TestBundles_SplitsAtMaxBundle(t *testing.T) {
	bundles := Bundles(1234)
	if len(bundles) != 3 {
		t.Fatalf("len(Bundles(1234)) = %d, want 3", len(bundles))
	}
	total := 0
	for _, b := range bundles {
		if b.Pieces > MaxBundle {
			t.Errorf("bundle of %d pieces exceeds MaxBundle", b.Pieces)
		}
		total += b.Pieces
	}
	if total != 1234 {
		t.Errorf("bundles sum to %d, want 1234", total)
	}
	if got := Bundles(0); got != nil {
		t.Errorf("Bundles(0) = %v, want nil", got)
	}
}

// TestEncouragement_IsFiller verifies encouragement items are filler with
// some text.
func TestEncouragement_IsFiller(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	item := Encouragement(rng)
	if item.Classification != Filler {
		t.Error("encouragement must be filler")
	}
	if item.Name == "" {
		t.Error("encouragement has empty name")
	}
	if item.Pieces != 0 {
		t.Errorf("encouragement grants %d pieces, want 0", item.Pieces)
	}
}

// TestVictory_IsProgression verifies the victory marker.
func TestVictory_IsProgression(t *testing.T) {
	v := Victory()
	if v.Name != VictoryName || v.Classification != Progression || v.Pieces != 0 {
		t.Errorf("Victory() = %+v", v)
	}
}
