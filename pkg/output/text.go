package output

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// TextFormatter formats reports as annotated lines, one per mismatch.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	_, err := fmt.Fprintf(w, "ndiff: %d of %d lines mismatched\n",
		report.Summary.LinesMismatched,
		report.Summary.LinesCompared)
	return err
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	// Index of the last printed entry, -1 before the first.
	last := -1

	for _, m := range report.Mismatches {
		// Blank line between runs of consecutive lines
		if last >= 0 && m.Line > last+1 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		line := m.Annotated
		if !strings.HasSuffix(line, "\n") {
			line += "\n"
		}
		if _, err := fmt.Fprintf(w, "%d: %s", m.Line, line); err != nil {
			return err
		}

		last = m.Line
	}

	if f.opts.Verbose {
		return f.formatSummary(report, w)
	}

	return nil
}

func (f *TextFormatter) formatSummary(report *Report, w io.Writer) error {
	if _, err := fmt.Fprintln(w, "---"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Summary: %d lines compared, %d differed, %d mismatched (%d fields)\n",
		report.Summary.LinesCompared,
		report.Summary.LinesDiffering,
		report.Summary.LinesMismatched,
		report.Summary.FieldsMismatched); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Duration: %s\n", report.Metadata.Duration.Round(1e6))
	return err
}
