package render

import (
	"bufio"
	"io"
)

// DefaultGlyphs draws dead cells as blanks, live cells as full blocks and any
// further state as a shaded block.
var DefaultGlyphs = []string{"  ", "██", "▒▒"}

// ClearScreen moves the cursor home and clears an ANSI terminal.
const ClearScreen = "\033[H\033[2J"

// WriteBlocks renders a row-major plane of width w as text, one glyph per
// cell. At most maxCols columns and maxRows rows are drawn when they are
// positive.
func WriteBlocks(out io.Writer, cells []uint8, w, maxCols, maxRows int, glyphs []string) error {
	if len(glyphs) == 0 {
		glyphs = DefaultGlyphs
	}
	if w <= 0 {
		return nil
	}
	h := len(cells) / w
	cols, rows := w, h
	if maxCols > 0 {
		cols = min(cols, maxCols)
	}
	if maxRows > 0 {
		rows = min(rows, maxRows)
	}
	bw := bufio.NewWriter(out)
	last := len(glyphs) - 1
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			bw.WriteString(glyphs[min(int(cells[y*w+x]), last)])
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
