package parser

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// MaxLineSize is the longest line a FileSource will accept. The scanner
// buffer only grows to this size when a line needs it.
const MaxLineSize = 1 << 30

// FileSource implements LineSource for reading a single text file.
type FileSource struct {
	path        string
	maxLineSize int

	file      *os.File
	scanner   *bufio.Scanner
	lineIndex int
	done      bool
}

// NewFileSource creates a LineSource that reads from the given file.
// The file is opened lazily on the first call to Next.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path, maxLineSize: MaxLineSize}
}

// Next returns the next line of the file, newline included.
// Returns io.EOF when the file has been exhausted.
func (s *FileSource) Next(ctx context.Context) (*Line, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if s.done {
		return nil, io.EOF
	}

	if s.scanner == nil {
		if err := s.open(); err != nil {
			return nil, err
		}
	}

	if s.scanner.Scan() {
		line := &Line{
			Text:   s.scanner.Text(),
			Source: s.path,
			Index:  s.lineIndex,
		}
		s.lineIndex++
		return line, nil
	}

	if err := s.scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("reading %s: line %d is longer than %d bytes: %w",
				s.path, s.lineIndex, s.maxLineSize, err)
		}
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	s.done = true
	if err := s.Close(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

// Close releases resources.
func (s *FileSource) Close() error {
	if s.file != nil {
		err := s.file.Close()
		s.file = nil
		return err
	}
	return nil
}

func (s *FileSource) open() error {
	f, err := os.Open(s.path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return fmt.Errorf("opening %s: %w", s.path, err)
	}
	s.file = f
	s.scanner = bufio.NewScanner(f)
	s.scanner.Buffer(make([]byte, 0, min(64*1024, s.maxLineSize)), s.maxLineSize)
	s.scanner.Split(scanLinesKeepNewline)
	return nil
}

// scanLinesKeepNewline is bufio.ScanLines without stripping the terminator,
// so that a line and its newline tokenize together.
func scanLinesKeepNewline(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i+1], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// ReadAll drains a LineSource into a Document.
func ReadAll(ctx context.Context, source LineSource, name string) (*Document, error) {
	doc := &Document{Source: name}
	for {
		line, err := source.Next(ctx)
		if err == io.EOF {
			return doc, nil
		}
		if err != nil {
			return nil, err
		}
		doc.Lines = append(doc.Lines, line.Text)
	}
}

// ReadFile reads the whole file at path.
func ReadFile(ctx context.Context, path string) (*Document, error) {
	source := NewFileSource(path)
	defer source.Close()

	return ReadAll(ctx, source, path)
}
