package commands

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ccollicutt/ndiff/pkg/differ"
)

func writeInputs(t *testing.T, a, b string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	pathA := filepath.Join(dir, "a.txt")
	pathB := filepath.Join(dir, "b.txt")
	if err := os.WriteFile(pathA, []byte(a), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	if err := os.WriteFile(pathB, []byte(b), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	return pathA, pathB
}

func runCompareCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	ExitCode = 0

	cmd := NewCompareCommand()
	cmd.SetArgs(args)

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestNewCompareCommand(t *testing.T) {
	cmd := NewCompareCommand()

	if cmd.Use != "ndiff [flags] <file-a> <file-b>" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}

	// Check flags exist
	flags := []string{"output", "verbose", "quiet"}
	for _, flag := range flags {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("Missing flag: %s", flag)
		}
	}
}

func TestCompareCommand_VersionFlag(t *testing.T) {
	out, err := runCompareCommand(t, "--version")
	if err != nil {
		t.Fatalf("--version failed: %v", err)
	}
	if out != "ndiff dev\n" {
		t.Errorf("Output = %q", out)
	}
}

func TestRunCompare_Mismatch(t *testing.T) {
	a, b := writeInputs(t, "x = 1.0, y = 2.0\n", "x = 1.2, y = 2.0\n")

	out, err := runCompareCommand(t, a, b)
	if err != nil {
		t.Fatalf("compare failed: %v", err)
	}

	if want := "0: x = [-1.0-]{+1.2+}, y = 2.0\n"; out != want {
		t.Errorf("Output = %q, want %q", out, want)
	}
	if ExitCode != 1 {
		t.Errorf("ExitCode = %d, want 1", ExitCode)
	}
}

func TestRunCompare_WithinTolerance(t *testing.T) {
	a, b := writeInputs(t, "x = 1.0, y = 2.0\n", "x = 1.05, y = 2.0\n")

	out, err := runCompareCommand(t, a, b)
	if err != nil {
		t.Fatalf("compare failed: %v", err)
	}

	if out != "" {
		t.Errorf("Output = %q, want empty", out)
	}
	if ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", ExitCode)
	}
}

func TestRunCompare_Spacing(t *testing.T) {
	a, b := writeInputs(t,
		"1\n2\n3\n4\n5\n6\n",
		"9\n9\n3\n4\n9\n6\n",
	)

	out, err := runCompareCommand(t, a, b)
	if err != nil {
		t.Fatalf("compare failed: %v", err)
	}

	want := "0: [-1-]{+9+}\n1: [-2-]{+9+}\n\n4: [-5-]{+9+}\n"
	if out != want {
		t.Errorf("Output = %q, want %q", out, want)
	}
}

func TestRunCompare_LineCount(t *testing.T) {
	a, b := writeInputs(t, "1\n2\n3\n", "1\n2\n3\n4\n")

	out, err := runCompareCommand(t, a, b)
	if err == nil {
		t.Fatal("Expected line count error")
	}
	if !errors.Is(err, differ.ErrLineCount) {
		t.Errorf("error = %v, want ErrLineCount", err)
	}
	if out != "" {
		t.Errorf("Output = %q, want no report", out)
	}
}

func TestRunCompare_FieldCount(t *testing.T) {
	a, b := writeInputs(t,
		"a b\nc d\ne f g\n",
		"a x\nc d\ne f g h\n",
	)

	out, err := runCompareCommand(t, a, b)
	if err == nil {
		t.Fatal("Expected field count error")
	}
	if !errors.Is(err, differ.ErrFieldCount) {
		t.Errorf("error = %v, want ErrFieldCount", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q should identify line 2", err)
	}
	if out != "" {
		t.Errorf("Output = %q, want no partial report", out)
	}
}

func TestRunCompare_JSON(t *testing.T) {
	a, b := writeInputs(t, "t 100\n", "t 110\n")

	out, err := runCompareCommand(t, "--output", "json", a, b)
	if err != nil {
		t.Fatalf("compare failed: %v", err)
	}

	if !strings.Contains(out, `"annotated": "t [-100-]{+110+}\n"`) {
		t.Errorf("JSON output missing annotated line:\n%s", out)
	}
	if !strings.Contains(out, `"delta": "10"`) {
		t.Errorf("JSON output missing delta:\n%s", out)
	}
}

func TestRunCompare_YAMLQuiet(t *testing.T) {
	a, b := writeInputs(t, "t 100\n", "t 110\n")

	out, err := runCompareCommand(t, "-o", "yaml", "-q", a, b)
	if err != nil {
		t.Fatalf("compare failed: %v", err)
	}

	if !strings.Contains(out, "lines_mismatched: 1") {
		t.Errorf("YAML output missing summary:\n%s", out)
	}
}

func TestRunCompare_Quiet(t *testing.T) {
	a, b := writeInputs(t, "1\n2\n", "1\n3\n")

	out, err := runCompareCommand(t, "-q", a, b)
	if err != nil {
		t.Fatalf("compare failed: %v", err)
	}

	if out != "ndiff: 1 of 2 lines mismatched\n" {
		t.Errorf("Output = %q", out)
	}
}

func TestRunCompare_InvalidOutput(t *testing.T) {
	a, b := writeInputs(t, "1\n", "1\n")

	_, err := runCompareCommand(t, "-o", "xml", a, b)
	if err == nil {
		t.Error("Expected error for unknown output format")
	}
}

func TestRunCompare_MissingFile(t *testing.T) {
	a, _ := writeInputs(t, "1\n", "1\n")

	_, err := runCompareCommand(t, a, "/nonexistent/b.txt")
	if err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestRunCompare_WrongArgCount(t *testing.T) {
	a, _ := writeInputs(t, "1\n", "1\n")

	if _, err := runCompareCommand(t, a); err == nil {
		t.Error("Expected error for a single argument")
	}
}
