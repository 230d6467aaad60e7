// Package parser reads text files into lines and splits lines into fields.
package parser

// Line is a single line of an input file.
type Line struct {
	// Text is the line content including its trailing newline, if any.
	Text string

	// Source is the file path this line came from.
	Source string

	// Index is the 0-based line index in the source file.
	Index int
}

// Document is a fully read input file.
type Document struct {
	// Source is the file path the lines were read from.
	Source string

	// Lines holds every line in file order, terminators included.
	Lines []string
}

// Len returns the number of lines in the document.
func (d *Document) Len() int {
	return len(d.Lines)
}
