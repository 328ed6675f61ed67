package source

import "fmt"

// Location is a single byte offset into a source file.
type Location struct {
	FileID int
	Offset int
}

// Span is a run of bytes in a source file.  Both Start and End are inclusive.
type Span struct {
	FileID int
	Start  int
	End    int
}

func (s Span) Len() int {
	return s.End - s.Start + 1
}

// Loc returns the location of the first byte of the span.
func (s Span) Loc() Location {
	return Location{FileID: s.FileID, Offset: s.Start}
}

// Position is a human readable location.  Line and Col are 1-based.
type Position struct {
	Name      string
	Line, Col int
}

func (p Position) String() string {
	if p.Name == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Col)
	}
	return fmt.Sprintf("%s:%d:%d", p.Name, p.Line, p.Col)
}
