package output

import (
	"time"

	"github.com/ccollicutt/ndiff/pkg/differ"
)

func createTestReport() *Report {
	start := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	result := &differ.Result{
		Mismatches: []*differ.LineResult{
			{
				Line:      0,
				Annotated: "x = [-1.0-]{+1.2+}, y = 2.0\n",
				Fields:    []differ.FieldDiff{{Position: 4, Old: "1.0", New: "1.2", Delta: "0.2"}},
			},
			{
				Line:      1,
				Annotated: "[-a-]{+b+}\n",
				Fields:    []differ.FieldDiff{{Position: 0, Old: "a", New: "b"}},
			},
			{
				Line:      5,
				Annotated: "t [-100-]{+110+} [-1-]{+2+}\n",
				Fields: []differ.FieldDiff{
					{Position: 2, Old: "100", New: "110", Delta: "10"},
					{Position: 4, Old: "1", New: "2", Delta: "1"},
				},
			},
		},
		Metadata: differ.Metadata{
			SourceA:        "a.txt",
			SourceB:        "b.txt",
			LinesCompared:  8,
			LinesDiffering: 4,
			StartTime:      start,
			EndTime:        start.Add(20 * time.Millisecond),
		},
	}
	return NewReport(result)
}
