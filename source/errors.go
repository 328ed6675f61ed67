package source

import "fmt"

// SpanError is returned for a span that does not lie within its file.
type SpanError struct {
	Span Span
}

func (e SpanError) Error() string {
	return fmt.Sprintf("span %d–%d of file %d is out of bounds",
		e.Span.Start, e.Span.End, e.Span.FileID)
}

// OffsetError is returned for an offset past the end of its file.
type OffsetError struct {
	Loc Location
}

func (e OffsetError) Error() string {
	return fmt.Sprintf("offset %d of file %d is out of bounds",
		e.Loc.Offset, e.Loc.FileID)
}

// FileIDError is returned when a manager has no file with the given id.
type FileIDError int

func (e FileIDError) Error() string {
	return fmt.Sprintf("no source file with id %d", int(e))
}
