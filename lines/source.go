package lines

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	// DefaultDir is the directory FileSource reads from when Dir is empty.
	DefaultDir = "data"

	// DefaultPattern formats quest and part into a file name.
	DefaultPattern = "quest%02d_%d.txt"
)

// ErrNoInput is returned by Static for an unknown (quest, part) pair.
var ErrNoInput = errors.New("lines: no input registered")

// Source yields the ordered text rows of one quest part.
type Source interface {
	Lines(quest, part int) ([]string, error)
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func(quest, part int) ([]string, error)

// Lines calls f(quest, part).
func (f SourceFunc) Lines(quest, part int) ([]string, error) { return f(quest, part) }

// FileSource reads inputs from disk.
type FileSource struct {
	// Dir is the input directory; DefaultDir when empty.
	Dir string
	// Pattern is a fmt format taking quest then part; DefaultPattern when empty.
	Pattern string
	// Logger receives a warning for missing files; slog.Default() when nil.
	Logger *slog.Logger
}

// Compile-time assertions.
var (
	_ Source = (*FileSource)(nil)
	_ Source = Static(nil)
	_ Source = SourceFunc(nil)
)

// Path returns the file FileSource reads for (quest, part).
func (s *FileSource) Path(quest, part int) string {
	dir, pattern := s.Dir, s.Pattern
	if dir == "" {
		dir = DefaultDir
	}
	if pattern == "" {
		pattern = DefaultPattern
	}

	return filepath.Join(dir, fmt.Sprintf(pattern, quest, part))
}

// Lines reads the input file for (quest, part). A missing file yields an
// empty slice and no error; any other I/O failure is returned wrapped.
func (s *FileSource) Lines(quest, part int) ([]string, error) {
	path := s.Path(quest, part)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger().Warn("Input file not found, using empty input.", "path", path, "quest", quest, "part", part)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lines: open %s: %w", path, err)
	}
	defer f.Close()

	out, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("lines: read %s: %w", path, err)
	}
	s.logger().Debug("Input loaded.", "path", path, "lines", len(out))

	return out, nil
}

func (s *FileSource) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// Read splits r into lines. Line terminators ("\n" or "\r\n") are dropped
// and a final terminator does not produce a trailing empty line.
func Read(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// Key identifies one quest part.
type Key struct {
	Quest, Part int
}

// Static is an in-memory Source.
type Static map[Key][]string

// Lines returns a copy of the registered rows, or ErrNoInput.
func (s Static) Lines(quest, part int) ([]string, error) {
	rows, ok := s[Key{Quest: quest, Part: part}]
	if !ok {
		return nil, fmt.Errorf("quest %d part %d: %w", quest, part, ErrNoInput)
	}
	out := make([]string, len(rows))
	copy(out, rows)

	return out, nil
}
