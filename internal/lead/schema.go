package lead

import (
	"context"
	"fmt"

	"github.com/leadgrid/leadgrid/internal/sheet"
)

// Columns maps canonical field names to sheet column indexes. Resolved fresh
// on every request; indexes are never cached across calls because any writer
// may have appended columns in between.
type Columns map[string]int

// ResolveColumns guarantees every canonical field has a backing column,
// appending missing headers at the next free position. Headers are persisted
// before any dependent row I/O, and the phone column is (re)marked as text so
// leading zeros and '+' prefixes survive round trips. Returns the resolved
// index map, the updated header row and how many columns were appended.
func ResolveColumns(ctx context.Context, store sheet.Store, fields FieldMap) (Columns, []string, int, error) {
	headers, err := store.Headers(ctx)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("read headers: %w", err)
	}

	index := make(map[string]int, len(headers))
	for i, h := range headers {
		if _, seen := index[h]; !seen {
			index[h] = i
		}
	}

	cols := make(Columns, len(fields))
	appended := 0
	for _, f := range fields {
		col, ok := index[f.Name]
		if !ok {
			col, err = store.AppendHeader(ctx, f.Name)
			if err != nil {
				return nil, nil, 0, fmt.Errorf("append header %q: %w", f.Name, err)
			}
			headers = append(headers, f.Name)
			index[f.Name] = col
			appended++
		}
		cols[f.Name] = col
		if f.Name == FieldPhoneNumber {
			if err := store.SetColumnTextFormat(ctx, col); err != nil {
				return nil, nil, 0, fmt.Errorf("format phone column: %w", err)
			}
		}
	}

	return cols, headers, appended, nil
}
