package colfmt

import (
	"bytes"
	"io"
	"os"
)

// Items tags each value from the corresponding format token of
// template: a token selecting [Debug] or [PrettyDebug] yields a
// [DebugItem], any other a [DisplayItem]. Tagging reuses
// [ParseTemplate], so it can never disagree with the modes a render of
// the same template uses. Values beyond the template's token count are
// dropped.
func Items(template string, values ...any) []Item {
	cols := ParseTemplate(template)
	n := min(len(cols), len(values))
	items := make([]Item, n)
	for i := 0; i < n; i++ {
		if cols[i].Mode == Display {
			items[i] = DisplayItem(values[i])
		} else {
			items[i] = DebugItem(values[i])
		}
	}
	return items
}

// Fprint parses template, tags values, and writes the aligned block
// to w.
func Fprint(w io.Writer, template string, values ...any) error {
	return Render(w, ParseTemplate(template), Items(template, values...))
}

// Print writes the aligned block for template and values to standard
// output.
func Print(template string, values ...any) error {
	return Fprint(os.Stdout, template, values...)
}

// Sprint returns the aligned block for template and values. Rendering
// into memory cannot fail, so there is no error to return.
func Sprint(template string, values ...any) string {
	var buf bytes.Buffer
	_ = Fprint(&buf, template, values...)
	return buf.String()
}
