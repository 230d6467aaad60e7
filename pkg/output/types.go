// Package output provides formatting and output generation for comparison results.
package output

import (
	"time"

	"github.com/ccollicutt/ndiff/pkg/differ"
)

// Report is the complete comparison output.
type Report struct {
	// Summary provides aggregate statistics.
	Summary Summary `json:"summary" yaml:"summary"`

	// Mismatches lists the lines that differ beyond tolerance.
	Mismatches []*differ.LineResult `json:"mismatches" yaml:"mismatches"`

	// Metadata provides context about the comparison.
	Metadata Metadata `json:"metadata" yaml:"metadata"`
}

// Summary provides aggregate statistics.
type Summary struct {
	// LinesCompared is the number of line pairs examined.
	LinesCompared int `json:"lines_compared" yaml:"lines_compared"`

	// LinesDiffering is the number of line pairs whose raw text differed.
	LinesDiffering int `json:"lines_differing" yaml:"lines_differing"`

	// LinesMismatched is the number of lines reported as mismatching.
	LinesMismatched int `json:"lines_mismatched" yaml:"lines_mismatched"`

	// FieldsMismatched is the total number of mismatching fields.
	FieldsMismatched int `json:"fields_mismatched" yaml:"fields_mismatched"`
}

// Metadata provides context about the comparison run.
type Metadata struct {
	FileA      string        `json:"file_a" yaml:"file_a"`
	FileB      string        `json:"file_b" yaml:"file_b"`
	ComparedAt time.Time     `json:"compared_at" yaml:"compared_at"`
	Duration   time.Duration `json:"duration" yaml:"duration"`
}

// Brief is the quiet form of a report: which files, and how many lines.
type Brief struct {
	FileA   string  `json:"file_a" yaml:"file_a"`
	FileB   string  `json:"file_b" yaml:"file_b"`
	Summary Summary `json:"summary" yaml:"summary"`
}

// NewReport creates a Report from comparison results.
func NewReport(result *differ.Result) *Report {
	report := &Report{
		Mismatches: result.Mismatches,
		Metadata: Metadata{
			FileA:      result.Metadata.SourceA,
			FileB:      result.Metadata.SourceB,
			ComparedAt: result.Metadata.EndTime,
			Duration:   result.Metadata.EndTime.Sub(result.Metadata.StartTime),
		},
		Summary: Summary{
			LinesCompared:   result.Metadata.LinesCompared,
			LinesDiffering:  result.Metadata.LinesDiffering,
			LinesMismatched: len(result.Mismatches),
		},
	}

	if report.Mismatches == nil {
		report.Mismatches = []*differ.LineResult{}
	}

	for _, m := range result.Mismatches {
		report.Summary.FieldsMismatched += len(m.Fields)
	}

	return report
}

// HasMismatches returns true if any line mismatched.
func (r *Report) HasMismatches() bool {
	return r.Summary.LinesMismatched > 0
}

// Brief returns the summary together with the compared file names.
func (r *Report) Brief() Brief {
	return Brief{
		FileA:   r.Metadata.FileA,
		FileB:   r.Metadata.FileB,
		Summary: r.Summary,
	}
}
