package document

import (
	"errors"
	"fmt"
)

var (
	// ErrNoHeaders is returned when a table is requested without header cells.
	ErrNoHeaders = errors.New("table must have at least one header")
	// ErrDocumentFinalized is returned for appends after serialization started.
	ErrDocumentFinalized = errors.New("document is finalized, no further changes allowed")
)

// UnknownStyleError reports lookup of a style name which was never registered.
type UnknownStyleError struct {
	Name string
}

func (e *UnknownStyleError) Error() string {
	return fmt.Sprintf("unknown style %q", e.Name)
}

// ColumnCountMismatchError reports a table body row whose length differs from
// the header row. Row is zero based.
type ColumnCountMismatchError struct {
	Row  int
	Got  int
	Want int
}

func (e *ColumnCountMismatchError) Error() string {
	return fmt.Sprintf("table row %d has %d cells, expected %d", e.Row, e.Got, e.Want)
}

// InvalidHeadingLevelError reports heading level outside of supported range.
type InvalidHeadingLevelError struct {
	Level int
}

func (e *InvalidHeadingLevelError) Error() string {
	return fmt.Sprintf("heading level %d is not supported (allowed %d-%d)", e.Level, MinHeadingLevel, MaxHeadingLevel)
}
