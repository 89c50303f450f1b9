// Package colfmt renders heterogeneous values side by side as aligned
// text columns.
//
// A compact template drives the layout: each "{...}" token is one
// column, literal text between tokens separates adjacent columns, and
// an optional ":N" at the end of a token (or just after its closing
// brace) fixes that column's width. Multi-line
// values align row by row, so row N of the output is row N of every
// column.
//
//	colfmt.Print("{} | {:?}", person, stats)
//	colfmt.Print("{:#?:50} || {:#?:50}", left, right)
//
// # Templates
//
// A token containing ":#?" renders its value's expanded structured
// form, one containing ":?" the one-line structured form, and any
// other token the short form. Without a width a column sizes itself to
// its widest rendered line; with one ("{:80}", "{:?:60}", "{}:5"),
// every line is padded or truncated to exactly that many characters. Parsing is permissive and never
// fails: an unclosed brace simply stops token recognition, and column
// and value counts need not match (the shorter list wins).
//
// # Value Forms
//
// Any value works. Optional interfaces replace the built-in forms:
//
//   - [Displayer] — short form (else [fmt.Stringer], else "%v")
//   - [Debugger] — structured form (else [fmt.GoStringer], else a
//     one-line go-spew dump)
//   - [PrettyDebugger] — expanded structured form (else [Debugger],
//     else an indented go-spew dump)
//
// The [JSON] and [YAML] wrappers render a value's structured forms as
// encoded documents:
//
//	colfmt.Print("{} => {:#?}", req.ID, colfmt.JSON{V: req})
//
// # Core API
//
// [Print], [Fprint], and [Sprint] cover the common case. The layers
// underneath are exported for callers that tag values themselves:
// [ParseTemplate] turns a template into [Column] descriptors,
// [DisplayItem] and [DebugItem] tag values, and [Render] or [Marshal]
// produce the block. A column mode the item's tag cannot serve falls
// back to the form the tag provides; a mismatch is never an error.
//
// # Width Measurement
//
// Widths are measured in Unicode code points by default, so multi-byte
// text is never split by truncation. Set [Renderer.Measure] to
// [TerminalWidth] to measure in terminal display cells instead, where
// full-width characters count as two:
//
//	r := colfmt.Renderer{Measure: colfmt.TerminalWidth}
//	err := r.Render(os.Stdout, cols, items)
//
// # Errors
//
// The only failure a render can report is a failed write to its sink;
// emission stops at the first write error. Template parsing and
// column/value pairing never fail.
package colfmt
