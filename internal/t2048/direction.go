package t2048

import (
	"errors"
	"fmt"
	"strings"
)

// Direction is the way tiles travel during a move.
type Direction int

// The four move directions. There is no "unknown" member; input that
// does not name one of these is rejected by ParseDirection or the key mapper.
const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every direction in a stable order.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// ErrInvalidDirection is returned when input does not name a direction.
var ErrInvalidDirection = errors.New("t2048: invalid direction")

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

func (d Direction) valid() bool {
	return d >= DirUp && d <= DirRight
}

// ParseDirection converts a name or a single movement key to a Direction.
// Accepts "up"/"w"/"k", "down"/"s"/"j", "left"/"a"/"h" and "right"/"d"/"l".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "w", "k":
		return DirUp, nil
	case "down", "s", "j":
		return DirDown, nil
	case "left", "a", "h":
		return DirLeft, nil
	case "right", "d", "l":
		return DirRight, nil
	}
	return DirUp, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}
