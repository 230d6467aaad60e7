// ndiff - Numeric-Tolerant File Comparison
//
// ndiff compares two text files line by line, treating numeric fields as
// equal when they differ by less than 10% of the smaller value, and reports
// the lines that still differ with the mismatching fields annotated inline.
package main

import (
	"os"

	"github.com/ccollicutt/ndiff/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
