package sheet

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists the sheet in PostgreSQL. The grid lives in
// sheet_rows as text arrays keyed by row index, with index 0 reserved for the
// header row; text-format flags live in sheet_text_columns.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore builds a Postgres-backed sheet store.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the backing tables when missing.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS sheet_rows (
            idx   BIGINT PRIMARY KEY,
            cells TEXT[] NOT NULL
        )`); err != nil {
		return err
	}
	_, err := s.db.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS sheet_text_columns (
            col INT PRIMARY KEY
        )`)
	return err
}

func (s *PostgresStore) Headers(ctx context.Context) ([]string, error) {
	var cells []string
	err := s.db.QueryRow(ctx, `SELECT cells FROM sheet_rows WHERE idx = 0`).Scan(&cells)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header row: %w", err)
	}
	return cells, nil
}

func (s *PostgresStore) Rows(ctx context.Context) ([][]string, error) {
	headers, err := s.Headers(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx, `SELECT cells FROM sheet_rows WHERE idx > 0 ORDER BY idx`)
	if err != nil {
		return nil, fmt.Errorf("read data rows: %w", err)
	}
	defer rows.Close()

	var grid [][]string
	for rows.Next() {
		var cells []string
		if err := rows.Scan(&cells); err != nil {
			return nil, fmt.Errorf("scan data row: %w", err)
		}
		for len(cells) < len(headers) {
			cells = append(cells, "")
		}
		grid = append(grid, cells)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate data rows: %w", err)
	}
	return grid, nil
}

func (s *PostgresStore) UpdateCell(ctx context.Context, row, col int, value string) error {
	if row < 0 || col < 0 {
		return ErrOutOfRange
	}
	// Pads the stored array out to the target column in the same statement,
	// so a row written under an older, narrower header still accepts the cell.
	cmd, err := s.db.Exec(ctx, `
        UPDATE sheet_rows
        SET cells = (
            SELECT array_agg(CASE WHEN i = $2 THEN $3 ELSE COALESCE(cells[i], '') END ORDER BY i)
            FROM generate_series(1, GREATEST(cardinality(cells), $2)) AS i
        )
        WHERE idx = $1`, row+1, col+1, value)
	if err != nil {
		return fmt.Errorf("update cell (%d,%d): %w", row, col, err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrOutOfRange
	}
	return nil
}

func (s *PostgresStore) AppendRow(ctx context.Context, cells []string) (int, error) {
	var idx int64
	err := s.db.QueryRow(ctx, `
        INSERT INTO sheet_rows (idx, cells)
        VALUES ((SELECT COALESCE(MAX(idx), 0) + 1 FROM sheet_rows), $1)
        RETURNING idx`, cells).Scan(&idx)
	if err != nil {
		return 0, fmt.Errorf("append row: %w", err)
	}
	return int(idx) - 1, nil
}

func (s *PostgresStore) AppendHeader(ctx context.Context, name string) (int, error) {
	var cells []string
	err := s.db.QueryRow(ctx, `
        INSERT INTO sheet_rows (idx, cells)
        VALUES (0, ARRAY[$1::TEXT])
        ON CONFLICT (idx) DO UPDATE SET cells = sheet_rows.cells || $1::TEXT
        RETURNING cells`, name).Scan(&cells)
	if err != nil {
		return 0, fmt.Errorf("append header %q: %w", name, err)
	}
	return len(cells) - 1, nil
}

func (s *PostgresStore) SetColumnTextFormat(ctx context.Context, col int) error {
	if col < 0 {
		return ErrOutOfRange
	}
	_, err := s.db.Exec(ctx, `INSERT INTO sheet_text_columns (col) VALUES ($1)
        ON CONFLICT (col) DO NOTHING`, col)
	if err != nil {
		return fmt.Errorf("mark text column %d: %w", col, err)
	}
	return nil
}
