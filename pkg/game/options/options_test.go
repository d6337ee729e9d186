package options

import (
	"os"
	"path/filepath"
	"testing"
)

// TestDefault_IsValid verifies the defaults pass their own validation.
func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v, want nil", err)
	}
}

// TestValidate_RejectsOutOfRangeValues spot-checks the range guards.
func TestValidate_RejectsOutOfRangeValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Options)
	}{
		{"too few pieces", func(o *Options) { o.NumberOfPieces = 24 }},
		{"too many pieces", func(o *Options) { o.NumberOfPieces = 1001 }},
		{"negative strictness", func(o *Options) { o.StrictnessPieceOrder = -1 }},
		{"strictness above 100", func(o *Options) { o.StrictnessPieceTypeOrder = 101 }},
		{"negative slack", func(o *Options) { o.ChecksOutOfLogic = -1 }},
		{"check percentage above 100", func(o *Options) { o.PercentageOfMergesThatAreChecks = 150 }},
	}
	for _, tc := range cases {
		o := Default()
		tc.mutate(&o)
		if err := o.Validate(); err == nil {
			t.Errorf("%s: Validate() = nil, want error", tc.name)
		}
	}
}

// TestLoad_AppliesFileOverDefaults verifies YAML values override defaults
// and untouched fields keep theirs.
func TestLoad_AppliesFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.yaml")
	content := `
number_of_pieces: 100
orientation_of_image: landscape
piece_type_order: corners_edges_normal
piece_order: every_piece_fits
strictness_piece_order: 80
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	o, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if o.NumberOfPieces != 100 {
		t.Errorf("NumberOfPieces = %d, want 100", o.NumberOfPieces)
	}
	if o.OrientationOfImage != Landscape {
		t.Errorf("OrientationOfImage = %v, want landscape", o.OrientationOfImage)
	}
	if o.PieceTypeOrder != CornersEdgesNormal {
		t.Errorf("PieceTypeOrder = %v, want corners_edges_normal", o.PieceTypeOrder)
	}
	if o.PieceOrder != EveryPieceFits {
		t.Errorf("PieceOrder = %v, want every_piece_fits", o.PieceOrder)
	}
	if o.StrictnessPieceOrder != 80 {
		t.Errorf("StrictnessPieceOrder = %d, want 80", o.StrictnessPieceOrder)
	}
	if o.ChecksOutOfLogic != Default().ChecksOutOfLogic {
		t.Errorf("ChecksOutOfLogic = %d, want default %d", o.ChecksOutOfLogic, Default().ChecksOutOfLogic)
	}
}

// TestLoad_RejectsUnknownEnumName verifies a bad enum name is a load error.
func TestLoad_RejectsUnknownEnumName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.yaml")
	if err := os.WriteFile(path, []byte("piece_order: fastest\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load with unknown piece_order = nil error, want error")
	}
}

// TestLoad_RejectsOutOfRangeFile verifies range validation applies to loaded
// files too.
func TestLoad_RejectsOutOfRangeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.yaml")
	if err := os.WriteFile(path, []byte("number_of_pieces: 5000\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load with out-of-range pieces = nil error, want error")
	}
}
