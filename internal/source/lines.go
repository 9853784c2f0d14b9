package source

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// LineReader yields every line it holds, in order. Implementations may be
// read only once.
type LineReader interface {
	ReadLines() ([]string, error)
}

// Lines is an in-memory LineReader. Like a file handle it is drained by the
// first read.
type Lines struct {
	lines []string
}

// NewLines returns a Lines holding the given lines.
func NewLines(lines ...string) *Lines {
	return &Lines{lines: lines}
}

// Add appends a line.
func (l *Lines) Add(line string) { l.lines = append(l.lines, line) }

// ReadLines returns all remaining lines and leaves l empty.
func (l *Lines) ReadLines() ([]string, error) {
	out := l.lines
	l.lines = nil
	return out, nil
}

// maxLineSize bounds a single statement line.
const maxLineSize = 1 << 20

type readerLines struct {
	r io.Reader
}

// FromReader returns a LineReader over r. Line terminators are not included.
func FromReader(r io.Reader) LineReader {
	return &readerLines{r: r}
}

func (rl *readerLines) ReadLines() ([]string, error) {
	sc := bufio.NewScanner(rl.r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading lines: %w", err)
	}
	return lines, nil
}

type fileLines struct {
	path string
}

// FromFile returns a LineReader that opens path when read.
func FromFile(path string) LineReader {
	return &fileLines{path: path}
}

func (fl *fileLines) ReadLines() ([]string, error) {
	f, err := os.Open(fl.path)
	if err != nil {
		return nil, fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	lines, err := FromReader(f).ReadLines()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", fl.path, err)
	}
	return lines, nil
}
