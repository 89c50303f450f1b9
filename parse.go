package colfmt

import (
	"strconv"
	"strings"
)

// templatePart is one lexed piece of a template: either a format token
// (with any width suffix that followed it) or literal separator text.
// unterminated marks the tail of a brace that never closed.
type templatePart struct {
	text         string
	width        string
	isFormat     bool
	unterminated bool
}

// ParseTemplate parses a column template like "{} | {:?} | {:#?:80}"
// into columns.
//
// A token containing ":#?" selects [PrettyDebug], one containing ":?"
// selects [Debug], anything else selects [Display]. The check is plain
// substring containment, so a token whose inner text merely contains
// those characters is classified the same way. A column width is fixed
// by a run of ASCII digits after the token's last colon, written either
// inside the braces ("{:80}", "{:?:60}") or as a ":N" suffix
// immediately after the closing brace; the suffix wins when both are
// present and belongs to the token, not to the separator text. Literal
// text between two tokens becomes the first token's Sep.
//
// Parsing never fails. A brace that is never closed produces no column:
// the scan stops recognizing tokens there, and everything from that
// brace on becomes the preceding token's separator text when it
// directly follows one. Ordinary text before the first token and after
// the last token is consumed without being attached to any column.
func ParseTemplate(template string) []Column {
	parts := lexTemplate(template)

	var cols []Column
	for i, p := range parts {
		if !p.isFormat {
			continue
		}
		col := Column{Mode: tokenMode(p.text)}
		if n, err := strconv.Atoi(p.width); err == nil {
			col.Width = n
		} else {
			col.Width = innerWidth(p.text)
		}
		// Text following a token is its separator, except plain trailing
		// text after the last token. Text leading into an unterminated
		// brace is not plain trailing text: the dead brace swallows what
		// comes after, not what came before.
		if i+1 < len(parts) && !parts[i+1].isFormat {
			if i+1 < len(parts)-1 || parts[i+1].unterminated {
				col.Sep = parts[i+1].text
			}
		}
		cols = append(cols, col)
	}
	return cols
}

// lexTemplate splits a template into format tokens and separator runs.
// Indices track bytes, but state changes only at '{' and '}', so slices
// always land on rune boundaries.
func lexTemplate(template string) []templatePart {
	var parts []templatePart

	inFormat := false
	start := 0

	for i, c := range template {
		switch {
		case c == '{' && !inFormat:
			if i > start {
				parts = append(parts, templatePart{text: template[start:i]})
			}
			start = i
			inFormat = true
		case c == '}' && inFormat:
			inFormat = false
			end := i + 1

			if end < len(template) && template[end] == ':' {
				// Width suffix: consume the colon and any digit run.
				// An empty run still consumes the colon and leaves the
				// width unset.
				widthEnd := end + 1
				for widthEnd < len(template) && isASCIIDigit(template[widthEnd]) {
					widthEnd++
				}
				parts = append(parts, templatePart{
					text:     template[start:end],
					width:    template[end+1 : widthEnd],
					isFormat: true,
				})
				start = widthEnd
			} else {
				parts = append(parts, templatePart{
					text:     template[start:end],
					isFormat: true,
				})
				start = end
			}
		}
	}

	// Trailing text; the tail of a token that never closed is marked so
	// separator attachment can tell it apart from ordinary trailing text.
	if start < len(template) {
		parts = append(parts, templatePart{text: template[start:], unterminated: inFormat})
	}

	return parts
}

// innerWidth extracts a width written inside a token's braces: the run
// after the last colon, when it is all digits, as in "{:80}" or
// "{:?:60}". Returns 0 when the token carries no such width.
func innerWidth(token string) int {
	inner := strings.TrimSuffix(strings.TrimPrefix(token, "{"), "}")
	i := strings.LastIndex(inner, ":")
	if i < 0 {
		return 0
	}
	if n, err := strconv.Atoi(inner[i+1:]); err == nil && allASCIIDigits(inner[i+1:]) {
		return n
	}
	return 0
}

func allASCIIDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isASCIIDigit(s[i]) {
			return false
		}
	}
	return true
}

func tokenMode(token string) Mode {
	switch {
	case strings.Contains(token, ":#?"):
		return PrettyDebug
	case strings.Contains(token, ":?"):
		return Debug
	default:
		return Display
	}
}

func isASCIIDigit(b byte) bool { return b >= '0' && b <= '9' }
