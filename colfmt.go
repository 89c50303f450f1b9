package colfmt

// Mode selects which form of a value a column renders.
type Mode int

const (
	// Display renders the value's short form.
	Display Mode = iota
	// Debug renders the value's structured form on one line.
	Debug
	// PrettyDebug renders the value's structured form expanded and
	// indented across multiple lines.
	PrettyDebug
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Debug:
		return "debug"
	case PrettyDebug:
		return "pretty-debug"
	default:
		return "display"
	}
}

// Column describes one column parsed from a template, in template order.
type Column struct {
	// Mode selects which form of the paired value is rendered.
	Mode Mode
	// Width is the fixed column width. Zero or less means auto-size to
	// the widest line of the column's own rendered cell.
	Width int
	// Sep is the literal text that appeared in the template between this
	// column's token and the next one. It is emitted after every row
	// cell of this column except when the column is the last one
	// rendered. Empty means no separator.
	Sep string
}

type capability int

const (
	capDisplay capability = iota
	capDebug
)

// Item pairs a value with the form it has been tagged to produce.
// Build Items with [DisplayItem] and [DebugItem], or let [Items] tag a
// value list from a template. An Item is only read during a render call;
// the package never retains the wrapped value afterwards.
type Item struct {
	value any
	cap   capability
}

// DisplayItem wraps a value tagged for its short form.
func DisplayItem(v any) Item { return Item{value: v, cap: capDisplay} }

// DebugItem wraps a value tagged for its structured form.
func DebugItem(v any) Item { return Item{value: v, cap: capDebug} }

// Value returns the wrapped value.
func (it Item) Value() any { return it.value }

// render produces the cell text for the item under a column mode.
// A mode the item's tag cannot serve falls back to the form the tag
// provides; a mismatch is never an error.
func (it Item) render(m Mode) string {
	if it.cap == capDebug {
		if m == PrettyDebug {
			return prettyForm(it.value)
		}
		// Debug, and the fallback for a display column.
		return debugForm(it.value)
	}
	return shortForm(it.value)
}
