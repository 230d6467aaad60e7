package differ

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ccollicutt/ndiff/pkg/parser"
	"github.com/ccollicutt/ndiff/pkg/tolerance"
)

// Annotate renders a mismatching pair of tokens.
// The delimiters are not escaped if they occur in the tokens themselves.
func Annotate(oldField, newField string) string {
	return "[-" + oldField + "-]{+" + newField + "+}"
}

// DiffLine compares two lines field by field.
// Returns nil if every field is close enough. Returns a *FieldCountError if
// the lines do not split into the same number of fields.
func DiffLine(index int, a, b string) (*LineResult, error) {
	fieldsA := parser.Tokenize(a)
	fieldsB := parser.Tokenize(b)

	if len(fieldsA) != len(fieldsB) {
		return nil, &FieldCountError{Line: index, FieldsA: len(fieldsA), FieldsB: len(fieldsB)}
	}

	var (
		annotated strings.Builder
		diffs     []FieldDiff
	)

	for j := range fieldsA {
		fa, fb := fieldsA[j], fieldsB[j]
		if tolerance.CloseEnough(fa, fb) {
			annotated.WriteString(fa)
			continue
		}

		annotated.WriteString(Annotate(fa, fb))
		diff := FieldDiff{Position: j, Old: fa, New: fb}
		if delta, ok := tolerance.Delta(fa, fb); ok {
			diff.Delta = delta.String()
		}
		diffs = append(diffs, diff)
	}

	if len(diffs) == 0 {
		return nil, nil
	}

	return &LineResult{
		Line:      index,
		Annotated: annotated.String(),
		Fields:    diffs,
	}, nil
}

// Compare diffs two documents position by position.
// The line counts must match; this is checked before any line is compared.
// The first field count mismatch aborts the comparison.
func Compare(ctx context.Context, a, b *parser.Document) (*Result, error) {
	if a.Len() != b.Len() {
		return nil, &LineCountError{LinesA: a.Len(), LinesB: b.Len()}
	}

	result := &Result{
		Metadata: Metadata{
			SourceA:   a.Source,
			SourceB:   b.Source,
			StartTime: time.Now(),
		},
	}

	for i := range a.Lines {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		result.Metadata.LinesCompared++

		if a.Lines[i] == b.Lines[i] {
			continue
		}
		result.Metadata.LinesDiffering++

		lr, err := DiffLine(i, a.Lines[i], b.Lines[i])
		if err != nil {
			return nil, err
		}
		if lr != nil {
			result.Mismatches = append(result.Mismatches, lr)
		}
	}

	result.Metadata.EndTime = time.Now()

	return result, nil
}

// CompareFiles reads both files completely and compares them.
func CompareFiles(ctx context.Context, pathA, pathB string) (*Result, error) {
	a, err := parser.ReadFile(ctx, pathA)
	if err != nil {
		return nil, fmt.Errorf("reading first file: %w", err)
	}

	b, err := parser.ReadFile(ctx, pathB)
	if err != nil {
		return nil, fmt.Errorf("reading second file: %w", err)
	}

	return Compare(ctx, a, b)
}
