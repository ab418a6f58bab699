package sheet

import (
	"context"
	"errors"
)

// ErrOutOfRange occurs when a cell address does not fall inside the sheet.
var ErrOutOfRange = errors.New("cell address out of range")

// Store is the tabular backend the upsert engine writes to. The sheet is an
// ordered grid of string cells; row 0 of the persisted sheet is the header
// row, and Rows returns only the data rows beneath it. Implementations do not
// synchronize callers — the write coordinator serializes access.
type Store interface {
	// Headers returns the ordered column headers.
	Headers(ctx context.Context) ([]string, error)
	// Rows returns every data row as a grid aligned to the headers. Rows
	// shorter than the header row are padded with empty cells.
	Rows(ctx context.Context) ([][]string, error)
	// UpdateCell overwrites one data cell. row is a zero-based data row
	// index, col a zero-based column index.
	UpdateCell(ctx context.Context, row, col int, value string) error
	// AppendRow adds one data row at the bottom and returns its index.
	AppendRow(ctx context.Context, cells []string) (int, error)
	// AppendHeader adds a column header at the next free position and
	// returns its index.
	AppendHeader(ctx context.Context, name string) (int, error)
	// SetColumnTextFormat marks a column as text-typed so phone-like
	// strings keep leading zeros instead of being reread as numbers.
	SetColumnTextFormat(ctx context.Context, col int) error
}
