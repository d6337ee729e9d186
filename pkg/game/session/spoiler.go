package session

import (
	"fmt"
	"io"
)

// WriteSpoiler writes a short human-readable summary of the generated world.
func (w *World) WriteSpoiler(out io.Writer) error {
	_, err := fmt.Fprintf(out,
		"Jigsaw world %q\nPuzzle dimensions: %d x %d (%d pieces)\nPrecollected pieces: %d\nDiscoverable pieces: %d\nItem checks: %d (%d pieces each)\n",
		w.SeedName, w.Width, w.Height, w.NPieces(),
		len(w.Plan.Precollected), len(w.Plan.Itempool),
		w.Milestones.NumberOfLocations, w.Milestones.MinPiecesPerLocation,
	)
	return err
}
