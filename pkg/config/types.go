// Package config holds the settings for a single comparison run.
package config

// OutputFormat selects how the report is rendered.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// Config describes one comparison, built from command-line arguments.
type Config struct {
	// FileA and FileB are the files to compare. Lines of FileA appear
	// as "old" values in the report, lines of FileB as "new".
	FileA string
	FileB string

	// Output is the report format.
	Output OutputFormat

	// Verbose appends summary statistics to text output.
	Verbose bool

	// Quiet prints only the summary.
	Quiet bool
}
