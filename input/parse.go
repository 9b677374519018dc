package input

import (
	"strconv"
	"strings"
)

// separator splits tokens in the raw input.
const separator = ","

// Parse splits text on commas and parses each trimmed token as an integer.
// It returns *ValidationError for blank input and *ParseError for the first
// token that is not an integer; the returned slice is nil on error.
func Parse(text string) ([]int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &ValidationError{Reason: "no numbers provided"}
	}

	tokens := strings.Split(text, separator)
	out := make([]int, 0, len(tokens))
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, &ParseError{Token: tok, Index: i}
		}
		out = append(out, v)
	}

	return out, nil
}

// Format joins values back into the canonical "a, b, c" display form.
func Format(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ", ")
}
