package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HalfBlock draws the top pixel of a cell in the foreground and the bottom one in the background
const HalfBlock = "▀"

type cellColors struct {
	top    string
	bottom string
}

// Frame renders the canvas as lines of half blocks, merging runs of equally colored cells
func Frame(c *Canvas) string {
	var b strings.Builder

	styles := make(map[cellColors]lipgloss.Style)

	for row := 0; row < c.Rows(); row++ {
		if row > 0 {
			b.WriteByte('\n')
		}

		for col := 0; col < c.Cols(); {
			key := cellColors{}
			key.top, key.bottom = c.Cell(col, row)

			end := col + 1
			for end < c.Cols() {
				top, bottom := c.Cell(end, row)
				if top != key.top || bottom != key.bottom {
					break
				}
				end++
			}

			style, ok := styles[key]
			if !ok {
				style = lipgloss.NewStyle().
					Foreground(lipgloss.Color(key.top)).
					Background(lipgloss.Color(key.bottom))
				styles[key] = style
			}

			b.WriteString(style.Render(strings.Repeat(HalfBlock, end-col)))
			col = end
		}
	}

	return b.String()
}
