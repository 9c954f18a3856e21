package commands

import (
	"strings"
	"unicode"
)

// Tokenize splits a command line on whitespace. Double-quoted fields may contain
// whitespace; the quotes themselves are dropped. An empty quoted field ("") is kept.
func Tokenize(line string) ([]string, error) {
	var (
		fields  []string
		current strings.Builder
		inField bool
		quoted  bool
	)

	for _, r := range line {
		switch {
		case quoted:
			if r == '"' {
				quoted = false
			} else {
				current.WriteRune(r)
			}
		case r == '"':
			quoted = true
			inField = true
		case unicode.IsSpace(r):
			if inField {
				fields = append(fields, current.String())
				current.Reset()
				inField = false
			}
		default:
			current.WriteRune(r)
			inField = true
		}
	}

	if quoted {
		return nil, &MalformedCommandError{Line: line, Reason: "unterminated quote"}
	}
	if inField {
		fields = append(fields, current.String())
	}
	return fields, nil
}
