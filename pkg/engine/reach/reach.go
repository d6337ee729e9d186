// Package reach computes the merge metric for an arbitrary set of held
// pieces. Unlike the incremental board tracker, it takes an unordered piece
// set with no insertion history, so it derives the count from scratch with a
// flood fill. For any piece set the result equals replaying the set through a
// fresh board in any order.
package reach

import (
	"github.com/zyedidia/generic/mapset"
)

// Merges returns the number of merges implied by holding the given pieces on
// a width×height grid: the number of distinct pieces minus the number of
// connected components under 4-neighbor adjacency. Pieces are 1-indexed
// row-major cell ids; ids outside 1..width*height are ignored. The function
// has no state and is safe to call concurrently for different inputs.
func Merges(pieces []int, width, height int) int {
	if width <= 0 || height <= 0 {
		return 0
	}

	held := mapset.New[int]()
	for _, p := range pieces {
		if p >= 1 && p <= width*height {
			held.Put(p)
		}
	}
	if held.Size() == 0 {
		return 0
	}

	visited := mapset.New[int]()
	components := 0

	held.Each(func(start int) {
		if visited.Has(start) {
			return
		}
		components++
		visited.Put(start)
		queue := []int{start}
		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]
			for _, n := range neighbors(current, width, height) {
				if held.Has(n) && !visited.Has(n) {
					visited.Put(n)
					queue = append(queue, n)
				}
			}
		}
	})

	return held.Size() - components
}

// neighbors returns the in-bounds orthogonal neighbors of a 1-indexed piece
// id, derived arithmetically from the row-major layout.
func neighbors(piece, width, height int) []int {
	idx := piece - 1
	x := idx % width
	y := idx / width
	result := make([]int, 0, 4)
	if x > 0 {
		result = append(result, piece-1)
	}
	if x < width-1 {
		result = append(result, piece+1)
	}
	if y > 0 {
		result = append(result, piece-width)
	}
	if y < height-1 {
		result = append(result, piece+width)
	}
	return result
}
