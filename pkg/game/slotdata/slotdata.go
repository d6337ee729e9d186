// Package slotdata defines the serialized configuration payload handed to
// clients. It is the only persisted artifact of generation and must round
// trip losslessly: a client rebuilds the pieces-needed-per-merge table from
// it without re-running generation.
package slotdata

import (
	"encoding/json"
	"fmt"

	"github.com/klauspost/compress/zstd"

	"jigsaw/pkg/game/progression"
)

// SlotData is the per-world payload.
type SlotData struct {
	SeedName     string `json:"seed_name"`
	WorldVersion string `json:"world_version"`

	Width       int     `json:"nx"`
	Height      int     `json:"ny"`
	Orientation float64 `json:"orientation"`

	// PieceOrder is the committed collection order, precollected prefix
	// included.
	PieceOrder []int `json:"piece_order"`

	PossibleMerges       []int `json:"possible_merges"`
	ActualPossibleMerges []int `json:"actual_possible_merges"`
}

// Encode serializes the payload as JSON.
func Encode(s SlotData) ([]byte, error) {
	return json.Marshal(s)
}

// Decode parses a JSON payload.
func Decode(raw []byte) (SlotData, error) {
	var s SlotData
	if err := json.Unmarshal(raw, &s); err != nil {
		return SlotData{}, fmt.Errorf("slotdata: %w", err)
	}
	return s, nil
}

// EncodeCompressed serializes the payload as zstd-compressed JSON for
// transport.
func EncodeCompressed(s SlotData) ([]byte, error) {
	raw, err := Encode(s)
	if err != nil {
		return nil, err
	}
	w, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("slotdata: %w", err)
	}
	defer w.Close()
	return w.EncodeAll(raw, nil), nil
}

// DecodeCompressed parses a zstd-compressed JSON payload.
func DecodeCompressed(compressed []byte) (SlotData, error) {
	r, err := zstd.NewReader(nil)
	if err != nil {
		return SlotData{}, fmt.Errorf("slotdata: %w", err)
	}
	defer r.Close()
	raw, err := r.DecodeAll(compressed, nil)
	if err != nil {
		return SlotData{}, fmt.Errorf("slotdata: %w", err)
	}
	return Decode(raw)
}

// PiecesNeededPerMerge reconstructs the inverse merge table on the client
// side from the transmitted possible-merges table.
func (s SlotData) PiecesNeededPerMerge() ([]int, error) {
	return progression.Inverse(s.PossibleMerges, s.Width*s.Height)
}
