package output

import (
	"context"
	"encoding/json"
	"io"
)

// JSONFormatter writes the report as a single indented JSON document.
// Annotated lines are written without HTML escaping so that fields
// containing <, > or & appear as they do in the input files.
type JSONFormatter struct {
	opts FormatOptions
}

// NewJSONFormatter creates a new JSON formatter with the given options.
func NewJSONFormatter(opts FormatOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// Format renders the report, or only its Brief in quiet mode.
func (f *JSONFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if f.opts.Quiet {
		return enc.Encode(report.Brief())
	}
	return enc.Encode(report)
}
