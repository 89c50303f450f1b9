package colfmt

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// RuneCount measures a line's width in Unicode code points. It is the
// default measure and keeps explicit widths byte-safe for multi-byte
// text.
func RuneCount(s string) int { return utf8.RuneCountInString(s) }

// TerminalWidth measures a line's width in terminal display cells, so
// full-width characters count as two. Use it as [Renderer.Measure] when
// the output is aligned on screen rather than by character count.
func TerminalWidth(s string) int { return runewidth.StringWidth(s) }

// Renderer renders parsed columns and tagged items into an aligned
// block. The zero value is ready to use. Renderers are stateless and
// safe for concurrent use.
type Renderer struct {
	// Measure reports the width of a line of cell text. Nil means
	// [RuneCount].
	Measure func(string) int
}

// Render writes the aligned block for cols and items to w.
//
// Columns and items are paired by position and the shorter list wins;
// extras on either side are dropped. Each item renders under its
// column's mode, the cell splits into lines, and every column gets its
// explicit width or the width of its own widest line. Output is
// row-major: row N holds line N of every cell, padded or truncated to
// the column width, with each column's Sep between adjacent columns and
// a newline after the last. Rows run to the tallest cell; shorter cells
// pad with blanks.
//
// The only error is a failed write to w, returned as soon as it occurs.
func (r Renderer) Render(w io.Writer, cols []Column, items []Item) error {
	n := min(len(cols), len(items))
	if n == 0 {
		return nil
	}
	measure := r.Measure
	if measure == nil {
		measure = RuneCount
	}

	cells := make([][]string, n)
	for i := 0; i < n; i++ {
		cells[i] = splitLines(items[i].render(cols[i].Mode))
	}

	maxLines := 0
	for _, cell := range cells {
		if len(cell) > maxLines {
			maxLines = len(cell)
		}
	}

	widths := make([]int, n)
	for i := 0; i < n; i++ {
		if cols[i].Width > 0 {
			widths[i] = cols[i].Width
			continue
		}
		for _, line := range cells[i] {
			if lw := measure(line); lw > widths[i] {
				widths[i] = lw
			}
		}
	}

	for line := 0; line < maxLines; line++ {
		for i := 0; i < n; i++ {
			cell := ""
			if line < len(cells[i]) {
				cell = cells[i][line]
			}
			if _, err := io.WriteString(w, fitCell(cell, widths[i], measure)); err != nil {
				return err
			}
			if i < n-1 && cols[i].Sep != "" {
				if _, err := io.WriteString(w, cols[i].Sep); err != nil {
					return err
				}
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// Render writes the aligned block for cols and items to w using the
// default measure. See [Renderer.Render].
func Render(w io.Writer, cols []Column, items []Item) error {
	return Renderer{}.Render(w, cols, items)
}

// Marshal renders cols and items and returns the block as bytes.
func Marshal(cols []Column, items []Item) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, cols, items); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// splitLines splits rendered cell text into lines. An empty cell has no
// lines, a single trailing newline does not add one, and carriage
// returns from CRLF endings are stripped.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// fitCell pads or truncates s to exactly width under measure.
// Truncation walks whole runes, so a rune that does not fit is dropped
// and replaced by padding rather than split.
func fitCell(s string, width int, measure func(string) int) string {
	w := measure(s)
	if w > width {
		var b strings.Builder
		w = 0
		for _, r := range s {
			rw := measure(string(r))
			if w+rw > width {
				break
			}
			b.WriteRune(r)
			w += rw
		}
		s = b.String()
	}
	if pad := width - w; pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
