package source

import (
	"sort"
	"strings"
)

// File is the contents of a single source file along with the offsets of
// the first byte of every line.
type File struct {
	ID       int
	Name     string
	Contents string

	lineStarts []int
}

// NewFile returns a file with the given contents.  A newline is appended if
// the contents do not already end in one, so the last line is terminated like
// every other.
func NewFile(id int, name, contents string) *File {
	if !strings.HasSuffix(contents, "\n") {
		contents += "\n"
	}

	f := &File{ID: id, Name: name, Contents: contents}
	f.lineStarts = make([]int, 1, strings.Count(contents, "\n")+1)
	for i := 0; i < len(contents)-1; i++ {
		if contents[i] == '\n' {
			f.lineStarts = append(f.lineStarts, i+1)
		}
	}
	return f
}

func (f *File) Len() int {
	return len(f.Contents)
}

// Text returns the text covered by span.
func (f *File) Text(span Span) (string, error) {
	if span.FileID != f.ID || span.Start < 0 || span.End < span.Start ||
		span.End >= len(f.Contents) {
		return "", SpanError{span}
	}
	return f.Contents[span.Start : span.End+1], nil
}

// LineCol returns the 1-based line and column of offset.  Columns count
// bytes.
func (f *File) LineCol(offset int) (line, col int, err error) {
	if offset < 0 || offset >= len(f.Contents) {
		return 0, 0, OffsetError{Location{FileID: f.ID, Offset: offset}}
	}
	i := sort.SearchInts(f.lineStarts, offset+1) - 1
	return i + 1, offset - f.lineStarts[i] + 1, nil
}

// Position is like LineCol but includes the name of the file.
func (f *File) Position(offset int) (Position, error) {
	line, col, err := f.LineCol(offset)
	if err != nil {
		return Position{}, err
	}
	return Position{Name: f.Name, Line: line, Col: col}, nil
}
