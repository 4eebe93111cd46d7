package t2048

// Traversal returns the starting linear index (row*BoardSize + col) and the step
// between consecutive cells of line i when tiles travel in direction dir.
// Step k of the line is the cell at start + k*stride; k = 0 is the destination edge.
func Traversal(dir Direction, i int) (start, stride int) {
	switch dir {
	case DirUp:
		return i, BoardSize
	case DirDown:
		return BoardSize*(BoardSize-1) + i, -BoardSize
	case DirLeft:
		return BoardSize * i, 1
	case DirRight:
		return BoardSize*i + BoardSize - 1, -1
	}
	assert(false, "traversal for invalid direction")
	return 0, 0
}

// cellAt converts step k of a traversal into board coordinates.
func cellAt(start, stride, k int) (row, col int) {
	idx := start + k*stride
	return idx / BoardSize, idx % BoardSize
}
