package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/ndiff/pkg/config"
	"github.com/ccollicutt/ndiff/pkg/differ"
	"github.com/ccollicutt/ndiff/pkg/output"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// CompareOptions holds command-line options for the compare command.
type CompareOptions struct {
	Output  string
	Verbose bool
	Quiet   bool
}

// NewCompareCommand creates the compare command.
func NewCompareCommand() *cobra.Command {
	opts := &CompareOptions{}

	cmd := &cobra.Command{
		Use:   "ndiff [flags] <file-a> <file-b>",
		Short: "Compare two files, ignoring small numeric differences",
		Long: `Compare two text files line by line and field by field.

Lines are split into fields at runs of whitespace and commas. Two fields
match if they are identical, or if both are numbers whose difference is
less than 10% of the smaller magnitude. Zero only matches zero.

Each mismatching line is printed as "<line>: <annotated line>", where
mismatching fields are shown as [-old-]{+new+}. Lines are numbered from 0.

Both files must have the same number of lines, and differing lines must
split into the same number of fields.

Exit codes:
  0 - No mismatches
  1 - Mismatches found
  2 - Usage, read, or structural error`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", string(config.DefaultOutput), "Output format (text|json|yaml)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Append summary statistics to text output")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no details")

	setVersion(cmd)

	return cmd
}

func runCompare(cmd *cobra.Command, args []string, opts *CompareOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := config.DefaultConfig()
	cfg.FileA = args[0]
	cfg.FileB = args[1]
	cfg.Output = config.OutputFormat(opts.Output)
	cfg.Verbose = opts.Verbose
	cfg.Quiet = opts.Quiet

	if err := config.Validate(cfg); err != nil {
		return err
	}

	// Compare
	result, err := differ.CompareFiles(ctx, cfg.FileA, cfg.FileB)
	if err != nil {
		return err
	}

	// Create report
	report := output.NewReport(result)

	// Create formatter
	formatter, err := output.NewFormatter(string(cfg.Output), output.FormatOptions{
		Verbose: cfg.Verbose,
		Quiet:   cfg.Quiet,
	})
	if err != nil {
		return err
	}

	// Output report
	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	// Set exit code based on results
	if report.HasMismatches() {
		ExitCode = 1
	}

	return nil
}
