package t2048

import (
	"sort"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// PaletteStep colors every tile up to and including Max.
type PaletteStep struct {
	Max   int
	Color core.Color
}

// Palette maps tile values to display colors. A value takes the color of the
// first step whose Max is >= the value; values above the last step use Fallback.
type Palette struct {
	Steps    []PaletteStep
	Fallback core.Color
}

// DefaultPalette returns the classic terminal colors, from white 2s up to
// 4096, with gray for anything larger.
func DefaultPalette() Palette {
	return Palette{
		Steps: []PaletteStep{
			{Max: 2, Color: core.ColorWhite},
			{Max: 4, Color: core.ColorYellow},
			{Max: 8, Color: core.ColorBlue},
			{Max: 16, Color: core.ColorMagenta},
			{Max: 32, Color: core.ColorRed},
			{Max: 64, Color: core.ColorBrightRed},
			{Max: 128, Color: core.ColorBrightMagenta},
			{Max: 256, Color: core.ColorBrightBlue},
			{Max: 512, Color: core.ColorBrightYellow},
			{Max: 1024, Color: core.ColorBrightWhite},
			{Max: 2048, Color: core.ColorOrange},
			{Max: 4096, Color: core.ColorCyan},
		},
		Fallback: core.ColorGray,
	}
}

// NewPalette builds a palette from a value to color table.
func NewPalette(colors map[int]core.Color, fallback core.Color) Palette {
	steps := make([]PaletteStep, 0, len(colors))
	for v, c := range colors {
		steps = append(steps, PaletteStep{Max: v, Color: c})
	}
	sort.Slice(steps, func(i, j int) bool {
		return steps[i].Max < steps[j].Max
	})
	return Palette{Steps: steps, Fallback: fallback}
}

// Color returns the display color for a tile value.
func (p Palette) Color(value int) core.Color {
	i := sort.Search(len(p.Steps), func(i int) bool {
		return p.Steps[i].Max >= value
	})
	if i == len(p.Steps) {
		return p.Fallback
	}
	return p.Steps[i].Color
}
