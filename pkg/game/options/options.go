// Package options defines the generation options for a jigsaw world and
// their valid ranges.
package options

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Orientation selects the aspect ratio of the puzzle image.
type Orientation int

// Orientations
const (
	Square Orientation = iota
	Landscape
	Portrait
)

// Factor returns the width/height ratio used when fitting grid dimensions.
func (o Orientation) Factor() float64 {
	switch o {
	case Landscape:
		return 1.5
	case Portrait:
		return 0.8
	default:
		return 1.0
	}
}

func (o Orientation) String() string {
	switch o {
	case Landscape:
		return "landscape"
	case Portrait:
		return "portrait"
	default:
		return "square"
	}
}

// PieceTypeOrder selects how pieces are grouped by type (corner, edge,
// interior) before ordering, or no grouping at all.
type PieceTypeOrder int

// Piece type orders
const (
	TypeOrderRandom PieceTypeOrder = iota
	CornersEdgesNormal
	NormalEdgesCorners
	EdgesNormalCorners
	CornersNormalEdges
	NormalCornersEdges
	EdgesCornersNormal
)

func (o PieceTypeOrder) String() string {
	switch o {
	case CornersEdgesNormal:
		return "corners_edges_normal"
	case NormalEdgesCorners:
		return "normal_edges_corners"
	case EdgesNormalCorners:
		return "edges_normal_corners"
	case CornersNormalEdges:
		return "corners_normal_edges"
	case NormalCornersEdges:
		return "normal_corners_edges"
	case EdgesCornersNormal:
		return "edges_corners_normal"
	default:
		return "random"
	}
}

// PieceOrder selects the strategy used to pick the next piece within a group.
type PieceOrder int

// Piece order strategies
const (
	OrderRandom PieceOrder = iota
	EveryPieceFits
	LeastMergesPossible
)

func (o PieceOrder) String() string {
	switch o {
	case EveryPieceFits:
		return "every_piece_fits"
	case LeastMergesPossible:
		return "least_merges_possible"
	default:
		return "random"
	}
}

// Options holds every generation option for one world.
type Options struct {
	// NumberOfPieces is the approximate number of pieces in the puzzle; the
	// actual count is the product of the fitted grid dimensions.
	NumberOfPieces int `yaml:"number_of_pieces"`

	// OrientationOfImage shapes the fitted grid.
	OrientationOfImage Orientation `yaml:"orientation_of_image"`

	// PieceTypeOrder groups pieces into corner/edge/interior priority groups.
	PieceTypeOrder PieceTypeOrder `yaml:"piece_type_order"`

	// StrictnessPieceTypeOrder controls how strongly the type order is
	// honored; below 100, a fraction of each lower-priority group bleeds
	// into the next higher group.
	StrictnessPieceTypeOrder int `yaml:"strictness_piece_type_order"`

	// PieceOrder selects the within-group ordering strategy.
	PieceOrder PieceOrder `yaml:"piece_order"`

	// StrictnessPieceOrder is the probability (in percent) that the strategy
	// is honored for a pick instead of falling back to a plain draw.
	StrictnessPieceOrder int `yaml:"strictness_piece_order"`

	// ChecksOutOfLogic is the out-of-logic slack: how many checks may sit
	// slightly ahead of strict logical reachability.
	ChecksOutOfLogic int `yaml:"checks_out_of_logic"`

	// PercentageOfMergesThatAreChecks sizes the location count relative to
	// the number of merge milestones.
	PercentageOfMergesThatAreChecks int `yaml:"percentage_of_merges_that_are_checks"`

	// MaximumNumberOfChecks caps the location count.
	MaximumNumberOfChecks int `yaml:"maximum_number_of_checks"`

	// PercentageOfExtraPieces adds duplicate pieces to the item pool beyond
	// the strictly required ones.
	PercentageOfExtraPieces int `yaml:"percentage_of_extra_pieces"`
}

// Default returns the default option set.
func Default() Options {
	return Options{
		NumberOfPieces:                  25,
		OrientationOfImage:              Square,
		PieceTypeOrder:                  TypeOrderRandom,
		StrictnessPieceTypeOrder:        100,
		PieceOrder:                      OrderRandom,
		StrictnessPieceOrder:            100,
		ChecksOutOfLogic:                5,
		PercentageOfMergesThatAreChecks: 70,
		MaximumNumberOfChecks:           1000,
		PercentageOfExtraPieces:         10,
	}
}

// Validate checks every option against its allowed range. Out-of-range
// values are configuration errors, not clamped.
func (o Options) Validate() error {
	if o.NumberOfPieces < 25 || o.NumberOfPieces > 1000 {
		return fmt.Errorf("options: number_of_pieces must be in 25..1000, got %d", o.NumberOfPieces)
	}
	if o.OrientationOfImage < Square || o.OrientationOfImage > Portrait {
		return fmt.Errorf("options: unknown orientation_of_image %d", o.OrientationOfImage)
	}
	if o.PieceTypeOrder < TypeOrderRandom || o.PieceTypeOrder > EdgesCornersNormal {
		return fmt.Errorf("options: unknown piece_type_order %d", o.PieceTypeOrder)
	}
	if o.StrictnessPieceTypeOrder < 0 || o.StrictnessPieceTypeOrder > 100 {
		return fmt.Errorf("options: strictness_piece_type_order must be in 0..100, got %d", o.StrictnessPieceTypeOrder)
	}
	if o.PieceOrder < OrderRandom || o.PieceOrder > LeastMergesPossible {
		return fmt.Errorf("options: unknown piece_order %d", o.PieceOrder)
	}
	if o.StrictnessPieceOrder < 0 || o.StrictnessPieceOrder > 100 {
		return fmt.Errorf("options: strictness_piece_order must be in 0..100, got %d", o.StrictnessPieceOrder)
	}
	if o.ChecksOutOfLogic < 0 || o.ChecksOutOfLogic > 50 {
		return fmt.Errorf("options: checks_out_of_logic must be in 0..50, got %d", o.ChecksOutOfLogic)
	}
	if o.PercentageOfMergesThatAreChecks < 0 || o.PercentageOfMergesThatAreChecks > 100 {
		return fmt.Errorf("options: percentage_of_merges_that_are_checks must be in 0..100, got %d", o.PercentageOfMergesThatAreChecks)
	}
	if o.MaximumNumberOfChecks < 0 || o.MaximumNumberOfChecks > 2000 {
		return fmt.Errorf("options: maximum_number_of_checks must be in 0..2000, got %d", o.MaximumNumberOfChecks)
	}
	if o.PercentageOfExtraPieces < 0 || o.PercentageOfExtraPieces > 100 {
		return fmt.Errorf("options: percentage_of_extra_pieces must be in 0..100, got %d", o.PercentageOfExtraPieces)
	}
	return nil
}

// UnmarshalYAML decodes an orientation from its name.
func (o *Orientation) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	switch name {
	case "square":
		*o = Square
	case "landscape":
		*o = Landscape
	case "portrait":
		*o = Portrait
	default:
		return fmt.Errorf("options: unknown orientation_of_image %q", name)
	}
	return nil
}

// MarshalYAML encodes an orientation as its name.
func (o Orientation) MarshalYAML() (interface{}, error) {
	return o.String(), nil
}

// UnmarshalYAML decodes a piece type order from its name.
func (o *PieceTypeOrder) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	for order := TypeOrderRandom; order <= EdgesCornersNormal; order++ {
		if order.String() == name {
			*o = order
			return nil
		}
	}
	return fmt.Errorf("options: unknown piece_type_order %q", name)
}

// MarshalYAML encodes a piece type order as its name.
func (o PieceTypeOrder) MarshalYAML() (interface{}, error) {
	return o.String(), nil
}

// UnmarshalYAML decodes a piece order strategy from its name.
func (o *PieceOrder) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	for order := OrderRandom; order <= LeastMergesPossible; order++ {
		if order.String() == name {
			*o = order
			return nil
		}
	}
	return fmt.Errorf("options: unknown piece_order %q", name)
}

// MarshalYAML encodes a piece order strategy as its name.
func (o PieceOrder) MarshalYAML() (interface{}, error) {
	return o.String(), nil
}
