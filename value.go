package colfmt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"
)

// The package never requires an interface: any value renders. These
// optional interfaces replace the built-in forms when implemented.

// Displayer overrides a value's short form. Without it, the short form
// is [fmt.Stringer] when implemented, else fmt's "%v".
type Displayer interface {
	Display() string
}

// Debugger overrides a value's structured form. Without it, the
// structured form is [fmt.GoStringer] when implemented, else a one-line
// go-spew dump.
type Debugger interface {
	Debug() string
}

// PrettyDebugger overrides a value's expanded structured form. Without
// it, the expanded form is [Debugger] when implemented, else an
// indented go-spew dump.
type PrettyDebugger interface {
	PrettyDebug() string
}

// The default structured forms describe a value's data, not its short
// form, so spew must not route through Stringer methods.
var (
	debugSpew = &spew.ConfigState{
		DisableMethods:          true,
		DisableCapacities:       true,
		DisablePointerAddresses: true,
		SortKeys:                true,
	}
	prettySpew = &spew.ConfigState{
		Indent:                  "  ",
		DisableMethods:          true,
		DisableCapacities:       true,
		DisablePointerAddresses: true,
		SortKeys:                true,
	}
)

func shortForm(v any) string {
	switch t := v.(type) {
	case Displayer:
		return t.Display()
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func debugForm(v any) string {
	switch t := v.(type) {
	case Debugger:
		return t.Debug()
	case fmt.GoStringer:
		return t.GoString()
	default:
		return debugSpew.Sprintf("%#v", v)
	}
}

func prettyForm(v any) string {
	switch t := v.(type) {
	case PrettyDebugger:
		return t.PrettyDebug()
	case Debugger:
		// A value that chose its own structured text keeps it; dumping
		// internals would bypass that choice.
		return t.Debug()
	default:
		return strings.TrimRight(prettySpew.Sdump(v), "\n")
	}
}

// JSON wraps a value so its structured forms render as JSON: compact
// for a [Debug] column, indented for a [PrettyDebug] column.
//
//	colfmt.Fprint(w, "{} | {:#?}", name, colfmt.JSON{V: cfg})
type JSON struct {
	V any
}

func (j JSON) Debug() string {
	data, err := json.Marshal(j.V)
	if err != nil {
		return fmt.Sprintf("<json: %v>", err)
	}
	return string(data)
}

func (j JSON) PrettyDebug() string {
	data, err := json.MarshalIndent(j.V, "", "  ")
	if err != nil {
		return fmt.Sprintf("<json: %v>", err)
	}
	return string(data)
}

// String renders the compact form so a JSON value in a display column
// still shows its document.
func (j JSON) String() string { return j.Debug() }

// YAML wraps a value so its structured forms render as YAML. YAML is
// already an expanded representation, so both structured forms emit the
// same document.
type YAML struct {
	V any
}

func (y YAML) Debug() (out string) {
	// The yaml encoder panics on unmarshalable values instead of
	// returning an error; a broken value must degrade to error text,
	// never crash the render.
	defer func() {
		if r := recover(); r != nil {
			out = fmt.Sprintf("<yaml: %v>", r)
		}
	}()
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(y.V); err != nil {
		return fmt.Sprintf("<yaml: %v>", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Sprintf("<yaml: %v>", err)
	}
	return strings.TrimRight(buf.String(), "\n")
}

func (y YAML) PrettyDebug() string { return y.Debug() }

func (y YAML) String() string { return y.Debug() }
