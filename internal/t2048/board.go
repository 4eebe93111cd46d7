package t2048

import (
	"errors"
	"fmt"
	"math/bits"
	"math/rand"
	"time"
)

// BoardSize is the board dimension.
const BoardSize = 4

// spawn4Odds is the 1-in-N chance that a spawned tile is a 4 instead of a 2.
const spawn4Odds = 10

// initialTiles is the number of tiles placed on a fresh board.
const initialTiles = 2

// ErrOutOfBounds is returned when a cell query is outside the board.
var ErrOutOfBounds = errors.New("t2048: cell out of bounds")

// Grid is the raw tile matrix, indexed [row][col]. 0 means empty.
type Grid [BoardSize][BoardSize]int

// Board holds the tiles of one game together with the random source used to
// spawn new ones. A Board is not safe for concurrent use.
type Board struct {
	grid Grid
	rng  *rand.Rand
	seed uint64
}

// NewBoard creates a board with two random starting tiles.
// A seed of 0 derives one from the current time; any other seed makes the whole
// game reproducible.
func NewBoard(seed uint64) *Board {
	b := NewBoardFromGrid(Grid{}, seed)
	for range initialTiles {
		b.InsertRandom()
	}
	return b
}

// NewBoardFromGrid creates a board with the given tiles and no extra spawns.
func NewBoardFromGrid(grid Grid, seed uint64) *Board {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Board{
		grid: grid,
		rng:  rand.New(rand.NewSource(int64(seed))),
		seed: seed,
	}
}

// Seed returns the seed the board's random source was created with.
func (b *Board) Seed() uint64 {
	return b.seed
}

// Value returns the tile at (row, col), 0 for an empty cell.
func (b *Board) Value(row, col int) (int, error) {
	if !inBounds(row, col) {
		return 0, fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, row, col)
	}
	return b.grid[row][col], nil
}

// Grid returns a copy of the tiles.
func (b *Board) Grid() Grid {
	return b.grid
}

func inBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// Move applies a move in the given direction and, when any tile moved or merged,
// spawns one new tile. Returns whether the board changed.
func (b *Board) Move(dir Direction) bool {
	if !dir.valid() {
		assert(false, "move with invalid direction")
		return false
	}

	changed := b.shift(dir)
	if changed {
		b.InsertRandom()
	}
	return changed
}

// shift slides and merges every line for dir without spawning.
func (b *Board) shift(dir Direction) bool {
	changed := false
	for i := range BoardSize {
		start, stride := Traversal(dir, i)
		line := b.line(start, stride)
		if Compress(&line) {
			changed = true
		}
		b.setLine(start, stride, line)
	}
	return changed
}

// line extracts the cells of one traversal in travel order.
func (b *Board) line(start, stride int) Line {
	var l Line
	for k := range BoardSize {
		r, c := cellAt(start, stride, k)
		l[k] = b.grid[r][c]
	}
	return l
}

// setLine writes a line back along the same traversal.
func (b *Board) setLine(start, stride int, l Line) {
	for k := range BoardSize {
		r, c := cellAt(start, stride, k)
		b.grid[r][c] = l[k]
	}
}

// EmptyMask returns a bit set of empty cells; bit row*BoardSize+col is set when
// that cell is empty.
func (b *Board) EmptyMask() uint16 {
	var mask uint16
	for r := range BoardSize {
		for c := range BoardSize {
			if b.grid[r][c] == 0 {
				mask |= 1 << (r*BoardSize + c)
			}
		}
	}
	return mask
}

// EmptyCount returns the number of empty cells.
func (b *Board) EmptyCount() int {
	return bits.OnesCount16(b.EmptyMask())
}

// InsertRandom places a 2 (90%) or a 4 (10%) in a uniformly chosen empty cell.
// Returns false without touching the board when it is full.
func (b *Board) InsertRandom() bool {
	empty := b.EmptyCount()
	if empty == 0 {
		return false
	}

	spot := b.rng.Intn(empty)
	value := 2
	if b.rng.Intn(spawn4Odds) == 0 {
		value = 4
	}

	passed := 0
	for r := range BoardSize {
		for c := range BoardSize {
			if b.grid[r][c] != 0 {
				continue
			}
			if passed == spot {
				b.grid[r][c] = value
				return true
			}
			passed++
		}
	}

	assert(false, "empty cell ordinal not found")
	return false
}

// IsGameOver reports whether no move can change the board: there is no empty
// cell and no two orthogonally adjacent tiles are equal.
func (b *Board) IsGameOver() bool {
	for r := range BoardSize {
		for c := range BoardSize {
			v := b.grid[r][c]
			if v == 0 {
				return false
			}
			if c < BoardSize-1 && b.grid[r][c+1] == v {
				return false
			}
			if r < BoardSize-1 && b.grid[r+1][c] == v {
				return false
			}
		}
	}
	return true
}

// MaxTile returns the highest tile value on the board.
func (b *Board) MaxTile() int {
	maxVal := 0
	for r := range BoardSize {
		for c := range BoardSize {
			if b.grid[r][c] > maxVal {
				maxVal = b.grid[r][c]
			}
		}
	}
	return maxVal
}
