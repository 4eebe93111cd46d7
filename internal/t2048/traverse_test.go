package t2048

import "testing"

func TestTraversal(t *testing.T) {
	tests := []struct {
		dir    Direction
		line   int
		start  int
		stride int
	}{
		{DirUp, 0, 0, 4},
		{DirUp, 3, 3, 4},
		{DirDown, 0, 12, -4},
		{DirDown, 2, 14, -4},
		{DirLeft, 0, 0, 1},
		{DirLeft, 3, 12, 1},
		{DirRight, 0, 3, -1},
		{DirRight, 1, 7, -1},
	}

	for _, tt := range tests {
		start, stride := Traversal(tt.dir, tt.line)
		if start != tt.start || stride != tt.stride {
			t.Errorf("Traversal(%v, %d) = (%d, %d), want (%d, %d)",
				tt.dir, tt.line, start, stride, tt.start, tt.stride)
		}
	}
}

// TestTraversalCoversLine checks that each traversal visits exactly the
// intended row or column, destination edge first.
func TestTraversalCoversLine(t *testing.T) {
	for _, dir := range Directions {
		for i := range BoardSize {
			start, stride := Traversal(dir, i)
			for k := range BoardSize {
				row, col := cellAt(start, stride, k)

				var wantRow, wantCol int
				switch dir {
				case DirUp:
					wantRow, wantCol = k, i
				case DirDown:
					wantRow, wantCol = BoardSize-1-k, i
				case DirLeft:
					wantRow, wantCol = i, k
				case DirRight:
					wantRow, wantCol = i, BoardSize-1-k
				}

				if row != wantRow || col != wantCol {
					t.Errorf("%v line %d step %d = (%d, %d), want (%d, %d)",
						dir, i, k, row, col, wantRow, wantCol)
				}
			}
		}
	}
}

func TestTraversalVisitsEveryCellOnce(t *testing.T) {
	for _, dir := range Directions {
		var seen [BoardSize * BoardSize]int
		for i := range BoardSize {
			start, stride := Traversal(dir, i)
			for k := range BoardSize {
				seen[start+k*stride]++
			}
		}
		for idx, n := range seen {
			if n != 1 {
				t.Errorf("%v visits cell %d %d times", dir, idx, n)
			}
		}
	}
}

func TestCellAt(t *testing.T) {
	tests := []struct {
		start, stride, k int
		row, col         int
	}{
		{0, 1, 0, 0, 0},
		{0, 1, 3, 0, 3},
		{4, 1, 2, 1, 2},
		{0, 4, 1, 1, 0},
		{0, 4, 3, 3, 0},
		{12, -4, 0, 3, 0},
		{12, -4, 3, 0, 0},
		{13, -4, 1, 2, 1},
		{14, -4, 2, 1, 2},
		{15, -4, 3, 0, 3},
		{7, -1, 3, 1, 0},
	}

	for _, tt := range tests {
		row, col := cellAt(tt.start, tt.stride, tt.k)
		if row != tt.row || col != tt.col {
			t.Errorf("cellAt(%d, %d, %d) = (%d, %d), want (%d, %d)",
				tt.start, tt.stride, tt.k, row, col, tt.row, tt.col)
		}
	}
}
