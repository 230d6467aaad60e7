// Package differ compares two documents line by line with numeric tolerance.
package differ

import (
	"time"
)

// FieldDiff describes one token that did not compare equal.
type FieldDiff struct {
	// Position is the token index within the line.
	Position int `json:"position" yaml:"position"`

	// Old is the token from the first file.
	Old string `json:"old" yaml:"old"`

	// New is the token from the second file.
	New string `json:"new" yaml:"new"`

	// Delta is New - Old when both are decimal numbers, otherwise empty.
	Delta string `json:"delta,omitempty" yaml:"delta,omitempty"`
}

// LineResult is a line that still differs after tolerant comparison.
type LineResult struct {
	// Line is the 0-based line index.
	Line int `json:"line" yaml:"line"`

	// Annotated is the line from the first file with mismatching tokens
	// replaced by [-old-]{+new+}.
	Annotated string `json:"annotated" yaml:"annotated"`

	// Fields lists the mismatching tokens in order.
	Fields []FieldDiff `json:"fields" yaml:"fields"`
}

// Result contains the complete comparison output.
type Result struct {
	// Mismatches holds the mismatching lines in file order.
	Mismatches []*LineResult

	// Metadata provides context about the comparison.
	Metadata Metadata
}

// Metadata provides context about the comparison run.
type Metadata struct {
	// SourceA and SourceB are the compared file paths.
	SourceA string
	SourceB string

	// LinesCompared is the number of line pairs examined.
	LinesCompared int

	// LinesDiffering is the number of line pairs whose raw text differed,
	// whether or not they matched within tolerance.
	LinesDiffering int

	// StartTime is when comparison began.
	StartTime time.Time

	// EndTime is when comparison completed.
	EndTime time.Time
}

// HasMismatches returns true if any line mismatched.
func (r *Result) HasMismatches() bool {
	return len(r.Mismatches) > 0
}
