package t2048

// Line is one row or column extracted from the board in travel order:
// index 0 is the edge the tiles slide toward.
type Line [BoardSize]int

// Compress slides every tile of the line toward index 0 and merges equal
// neighbours in a single pass. A tile takes part in at most one merge, so
// [2,2,2,2] becomes [4,4,0,0] and [2,2,2,0] becomes [4,2,0,0].
// Reports whether any cell changed.
func Compress(line *Line) bool {
	changed := false

	// i is the next position to settle, j scans for the tile to pull or merge.
	for i := 0; i < BoardSize-1; i++ {
		j := i + 1
		for line[i] == 0 && j < BoardSize {
			if line[j] != 0 {
				line[i], line[j] = line[j], 0
				changed = true
			}
			j++
		}
		if line[i] == 0 {
			// Nothing left to pull, the tail is empty.
			break
		}

		j = i + 1
		for j < BoardSize && line[j] == 0 {
			j++
		}
		if j == BoardSize {
			break
		}
		assert(i != j, "settle and scan index collide")

		if line[i] == line[j] {
			line[i] *= 2
			line[j] = 0
			changed = true
		}
	}

	if debugChecks {
		assert(line.dense(), "compress left a gap")
	}
	return changed
}

// dense reports whether no non-zero value follows a zero.
func (l *Line) dense() bool {
	seenZero := false
	for _, v := range l {
		if v == 0 {
			seenZero = true
		} else if seenZero {
			return false
		}
	}
	return true
}
