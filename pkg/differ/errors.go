package differ

import (
	"errors"
	"fmt"
)

var (
	// ErrLineCount is returned when the two inputs have different line counts.
	ErrLineCount = errors.New("different number of lines in files")

	// ErrFieldCount is returned when a pair of lines splits into different
	// numbers of fields.
	ErrFieldCount = errors.New("different number of fields")
)

// LineCountError reports the line counts of both inputs.
type LineCountError struct {
	LinesA int
	LinesB int
}

func (e *LineCountError) Error() string {
	return fmt.Sprintf("%v (A: %d, B: %d)", ErrLineCount, e.LinesA, e.LinesB)
}

func (e *LineCountError) Unwrap() error {
	return ErrLineCount
}

// FieldCountError identifies the line whose field counts differ.
type FieldCountError struct {
	Line    int
	FieldsA int
	FieldsB int
}

func (e *FieldCountError) Error() string {
	return fmt.Sprintf("%v in line %d (A: %d, B: %d)", ErrFieldCount, e.Line, e.FieldsA, e.FieldsB)
}

func (e *FieldCountError) Unwrap() error {
	return ErrFieldCount
}
