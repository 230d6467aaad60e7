package parser

import (
	"regexp"
	"strings"
)

// separatorPattern matches a run of whitespace and/or commas.
var separatorPattern = regexp.MustCompile(`[\t\n\v\f\r ,]+`)

// Tokenize splits a line into alternating content and separator tokens.
//
// The result always has odd length and starts and ends with a content token,
// which may be empty when the line begins or ends with a separator. Joining
// the tokens gives back the original line, so two lines with the same layout
// produce token slices that line up position by position.
func Tokenize(line string) []string {
	locs := separatorPattern.FindAllStringIndex(line, -1)
	tokens := make([]string, 0, 2*len(locs)+1)

	prev := 0
	for _, loc := range locs {
		tokens = append(tokens, line[prev:loc[0]], line[loc[0]:loc[1]])
		prev = loc[1]
	}

	return append(tokens, line[prev:])
}

// Join concatenates tokens back into a line.
func Join(tokens []string) string {
	return strings.Join(tokens, "")
}
