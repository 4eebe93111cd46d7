package t2048

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input string
		want  Direction
	}{
		{"up", DirUp},
		{"w", DirUp},
		{"K", DirUp},
		{"down", DirDown},
		{"s", DirDown},
		{"j", DirDown},
		{" Left ", DirLeft},
		{"a", DirLeft},
		{"h", DirLeft},
		{"right", DirRight},
		{"d", DirRight},
		{"l", DirRight},
	}

	for _, tt := range tests {
		got, err := ParseDirection(tt.input)
		if err != nil {
			t.Errorf("ParseDirection(%q) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDirection(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseDirectionInvalid(t *testing.T) {
	for _, input := range []string{"", "x", "upward", "q"} {
		_, err := ParseDirection(input)
		if !errors.Is(err, ErrInvalidDirection) {
			t.Errorf("ParseDirection(%q) error = %v, want ErrInvalidDirection", input, err)
		}
	}
}

func TestDirectionString(t *testing.T) {
	for _, dir := range Directions {
		got, err := ParseDirection(dir.String())
		if err != nil || got != dir {
			t.Errorf("ParseDirection(%v.String()) = %v, %v", dir, got, err)
		}
	}
	if s := Direction(9).String(); s != "Direction(9)" {
		t.Errorf("Direction(9).String() = %q", s)
	}
}

func TestActionDirection(t *testing.T) {
	tests := []struct {
		action core.Action
		want   Direction
		ok     bool
	}{
		{core.ActionUp, DirUp, true},
		{core.ActionDown, DirDown, true},
		{core.ActionLeft, DirLeft, true},
		{core.ActionRight, DirRight, true},
		{core.ActionQuit, DirUp, false},
		{core.ActionNone, DirUp, false},
	}

	for _, tt := range tests {
		got, ok := ActionDirection(tt.action)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ActionDirection(%v) = (%v, %v), want (%v, %v)", tt.action, got, ok, tt.want, tt.ok)
		}
	}
}
