// Package board implements an incremental connectivity tracker for a jigsaw
// board. It is optimized for adding pieces one at a time and for answering,
// without mutation, how many merges placing a piece would produce.
//
// The board stores a cluster id per cell, with Empty marking an unplaced
// cell:
//
//	_0____3_
//	____4_3_
//	__1_____
//	__1_22__
//
// A piece that touches no placed piece starts a new cluster. A piece that
// touches one cluster joins it. A piece that touches several clusters joins
// them all into the largest one, and the absorbed cluster ids are returned to
// a free pool for reuse.
package board

import (
	"fmt"

	"github.com/zyedidia/generic/stack"
)

// Empty marks a board slot with no piece placed.
const Empty = -1

// Board tracks clusters of connected pieces on a width×height grid.
type Board struct {
	width  int
	height int

	// slots holds a cluster id per cell, or Empty.
	slots []int

	adjacent AdjacencyTable

	// clusters is an arena indexed by cluster id; inactive ids hold nil.
	clusters [][]int

	// freeIDs holds the cluster ids not currently assigned to any cluster.
	// The pool is sized for the maximum number of simultaneously isolated
	// pieces, which is half the cell count rounded up.
	freeIDs *stack.Stack[int]

	activeClusters int
	placed         int
	merges         int
}

// New creates an empty board with the given dimensions.
func New(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("board: dimensions must be positive, got %dx%d", width, height)
	}

	cells := width * height
	maxIsolated := cells/2 + cells%2

	b := &Board{
		width:    width,
		height:   height,
		slots:    make([]int, cells),
		adjacent: NewAdjacencyTable(width, height),
		clusters: make([][]int, maxIsolated),
		freeIDs:  stack.New[int](),
	}
	for i := range b.slots {
		b.slots[i] = Empty
	}
	for id := 0; id < maxIsolated; id++ {
		b.freeIDs.Push(id)
	}
	return b, nil
}

// Width returns the board width.
func (b *Board) Width() int {
	return b.width
}

// Height returns the board height.
func (b *Board) Height() int {
	return b.height
}

// Merges returns the running merge count: the number of placed pieces minus
// the number of current clusters.
func (b *Board) Merges() int {
	return b.merges
}

// PlacedCount returns the number of pieces currently on the board.
func (b *Board) PlacedCount() int {
	return b.placed
}

// ClusterCount returns the number of current clusters.
func (b *Board) ClusterCount() int {
	return b.activeClusters
}

// IsPlaced reports whether the given cell holds a piece.
func (b *Board) IsPlaced(cell int) bool {
	return cell >= 0 && cell < len(b.slots) && b.slots[cell] != Empty
}

// adjacentClusters collects the distinct cluster ids among the placed
// neighbors of cell. A cell touching two pieces of the same cluster counts
// that cluster once. At most four neighbors exist, so a fixed array beats a
// set here; this is the hot loop of generation.
func (b *Board) adjacentClusters(cell int) ([4]int, int) {
	var found [4]int
	n := 0
	for _, adj := range b.adjacent[cell] {
		id := b.slots[adj]
		if id == Empty {
			continue
		}
		seen := false
		for i := 0; i < n; i++ {
			if found[i] == id {
				seen = true
				break
			}
		}
		if !seen {
			found[n] = id
			n++
		}
	}
	return found, n
}

// AddPiece places a piece on the given cell. The cell must be empty; adding
// to an occupied cell is a caller error and fails without touching the
// cluster bookkeeping.
func (b *Board) AddPiece(cell int) error {
	if cell < 0 || cell >= len(b.slots) {
		return fmt.Errorf("board: cell %d out of range for %dx%d board", cell, b.width, b.height)
	}
	if b.slots[cell] != Empty {
		return fmt.Errorf("board: cell %d is already occupied", cell)
	}

	found, n := b.adjacentClusters(cell)

	switch n {
	case 0:
		// Isolated piece, give it a fresh cluster id.
		id := b.freeIDs.Pop()
		b.slots[cell] = id
		b.clusters[id] = append(b.clusters[id][:0], cell)
		b.activeClusters++

	case 1:
		// Only one connecting cluster.
		b.merges++
		id := found[0]
		b.slots[cell] = id
		b.clusters[id] = append(b.clusters[id], cell)

	default:
		// Multiple connecting clusters. The count of distinct touched
		// clusters is the merge delta, not the number of unions; downstream
		// thresholds are calibrated against this.
		b.merges += n

		largest := found[0]
		for i := 1; i < n; i++ {
			if len(b.clusters[found[i]]) > len(b.clusters[largest]) {
				largest = found[i]
			}
		}

		b.slots[cell] = largest
		b.clusters[largest] = append(b.clusters[largest], cell)

		// Fold the smaller clusters into the largest so each piece is
		// reassigned at most O(log n) times over the board's lifetime.
		for i := 0; i < n; i++ {
			id := found[i]
			if id == largest {
				continue
			}
			for _, member := range b.clusters[id] {
				b.slots[member] = largest
			}
			b.clusters[largest] = append(b.clusters[largest], b.clusters[id]...)
			b.clusters[id] = nil
			b.freeIDs.Push(id)
			b.activeClusters--
		}
	}

	b.placed++
	return nil
}

// MergesFromAdding returns the merge delta AddPiece would produce for the
// given empty cell, without mutating the board. It is safe to call repeatedly
// and returns 0 for out-of-range cells.
func (b *Board) MergesFromAdding(cell int) int {
	if cell < 0 || cell >= len(b.slots) {
		return 0
	}
	_, n := b.adjacentClusters(cell)
	return n
}

// RemovePiece removes a piece from the board and reports whether anything was
// removed; removing from an empty cell is a no-op. The whole cluster holding
// the piece is dissolved and its remaining members are replayed, rebuilding
// whatever sub-clusters they now form. Cost is proportional to the cluster
// size, so callers should not remove pieces casually.
func (b *Board) RemovePiece(cell int) bool {
	if cell < 0 || cell >= len(b.slots) {
		return false
	}
	id := b.slots[cell]
	if id == Empty {
		return false
	}

	members := b.clusters[id]
	b.clusters[id] = nil
	b.freeIDs.Push(id)
	b.activeClusters--

	for _, member := range members {
		b.slots[member] = Empty
	}
	b.placed -= len(members)

	// A cluster of k pieces contributes k-1 to the merge count.
	b.merges -= len(members) - 1

	for _, member := range members {
		if member == cell {
			continue
		}
		// The cells were just cleared, so replaying them cannot fail.
		if err := b.AddPiece(member); err != nil {
			panic("board: replay of cleared cell failed: " + err.Error())
		}
	}
	return true
}
