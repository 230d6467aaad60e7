package commands

import (
	"github.com/spf13/cobra"
)

// Version is set via ldflags at build time.
var Version = "dev"

// setVersion enables --version on cmd. A flag rather than a subcommand,
// since every positional argument is a file path.
func setVersion(cmd *cobra.Command) {
	cmd.Version = Version
	cmd.SetVersionTemplate("ndiff {{.Version}}\n")
}
