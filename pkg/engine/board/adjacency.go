package board

// AdjacencyTable holds, for each cell of a width×height grid, the in-bounds
// orthogonal neighbor cells. Cells are indexed 0..width*height-1 in row-major
// order. The table is built once and never mutated.
type AdjacencyTable [][]int

// NewAdjacencyTable precomputes the neighbor lists for a grid of the given
// dimensions.
func NewAdjacencyTable(width, height int) AdjacencyTable {
	cells := width * height
	table := make(AdjacencyTable, cells)
	for i := 0; i < cells; i++ {
		x := i % width
		y := i / width
		neighbors := make([]int, 0, 4)
		if x > 0 {
			neighbors = append(neighbors, i-1)
		}
		if x < width-1 {
			neighbors = append(neighbors, i+1)
		}
		if y > 0 {
			neighbors = append(neighbors, i-width)
		}
		if y < height-1 {
			neighbors = append(neighbors, i+width)
		}
		table[i] = neighbors
	}
	return table
}

// Neighbors returns the neighbor cells of the given cell, or nil if the cell
// is out of range.
func (t AdjacencyTable) Neighbors(cell int) []int {
	if cell < 0 || cell >= len(t) {
		return nil
	}
	return t[cell]
}
