package ca

import (
	"strconv"
	"strings"
)

// String renders the grid as nested brackets, one row per line for the last
// two axes and a blank line between higher-axis blocks.
func (g *Grid) String() string {
	width := 1
	for _, c := range g.cells {
		width = max(width, len(strconv.Itoa(int(c))))
	}
	var sb strings.Builder
	g.write(&sb, 0, 0, width)
	return sb.String()
}

func (g *Grid) write(sb *strings.Builder, axis, base, width int) {
	last := len(g.shape) - 1
	sb.WriteByte('[')
	for i := 0; i < g.shape[axis]; i++ {
		if i > 0 {
			if axis == last {
				sb.WriteByte(' ')
			} else {
				sb.WriteString(strings.Repeat("\n", last-axis))
				sb.WriteString(strings.Repeat(" ", axis+1))
			}
		}
		if axis == last {
			s := strconv.Itoa(int(g.cells[base+i]))
			sb.WriteString(strings.Repeat(" ", width-len(s)))
			sb.WriteString(s)
			continue
		}
		g.write(sb, axis+1, base+i*g.strides[axis], width)
	}
	sb.WriteByte(']')
}
