package t2048

import (
	"fmt"
	"strings"
)

// cellFormatWidth is the fixed column width used by Format.
const cellFormatWidth = 4

// StyleFunc decorates one formatted cell. It receives the tile value and the
// padded text and returns what should be printed, e.g. with ANSI colors.
type StyleFunc func(value int, cell string) string

// Format renders the board as text in row-major order: each value right-aligned
// in a 4-character column, " | " between columns and a newline between rows.
// Empty cells are blank. A nil style prints the cells unchanged.
func (b *Board) Format(style StyleFunc) string {
	var sb strings.Builder
	for r := range BoardSize {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range BoardSize {
			if c > 0 {
				sb.WriteString(" | ")
			}
			v := b.grid[r][c]
			text := strings.Repeat(" ", cellFormatWidth)
			if v != 0 {
				text = fmt.Sprintf("%*d", cellFormatWidth, v)
			}
			if style != nil {
				text = style(v, text)
			}
			sb.WriteString(text)
		}
	}
	return sb.String()
}
