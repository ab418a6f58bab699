package sheet

import (
	"context"
	"sync"
)

// MemoryStore keeps the sheet in process memory. Used in development mode and
// throughout the tests.
type MemoryStore struct {
	mu       sync.RWMutex
	headers  []string
	rows     [][]string
	textCols map[int]bool
}

// NewMemoryStore builds an empty in-memory sheet.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{textCols: make(map[int]bool)}
}

func (s *MemoryStore) Headers(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.headers))
	copy(out, s.headers)
	return out, nil
}

func (s *MemoryStore) Rows(_ context.Context) ([][]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([][]string, len(s.rows))
	for i, row := range s.rows {
		padded := make([]string, len(s.headers))
		copy(padded, row)
		out[i] = padded
	}
	return out, nil
}

func (s *MemoryStore) UpdateCell(_ context.Context, row, col int, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if row < 0 || row >= len(s.rows) || col < 0 || col >= len(s.headers) {
		return ErrOutOfRange
	}
	for len(s.rows[row]) <= col {
		s.rows[row] = append(s.rows[row], "")
	}
	s.rows[row][col] = value
	return nil
}

func (s *MemoryStore) AppendRow(_ context.Context, cells []string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row := make([]string, len(cells))
	copy(row, cells)
	s.rows = append(s.rows, row)
	return len(s.rows) - 1, nil
}

func (s *MemoryStore) AppendHeader(_ context.Context, name string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.headers = append(s.headers, name)
	return len(s.headers) - 1, nil
}

func (s *MemoryStore) SetColumnTextFormat(_ context.Context, col int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if col < 0 {
		return ErrOutOfRange
	}
	s.textCols[col] = true
	return nil
}

// TextColumns reports which columns carry the text format flag. Test helper.
func (s *MemoryStore) TextColumns() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cols := make([]int, 0, len(s.textCols))
	for col := range s.textCols {
		cols = append(cols, col)
	}
	return cols
}
