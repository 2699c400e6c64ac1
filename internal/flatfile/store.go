// Package flatfile implements the record store consumed by the repositories:
// one delimited table per file, keyed by the first field of each row. Writes
// rewrite the whole table through a temp file and rename so a failed write
// never leaves a truncated table behind.
package flatfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

type Store struct {
	dir string
	mu  sync.Mutex
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// GetRecord returns the row whose first field equals key, and whether such a
// row exists. A missing table file is an empty table, not an error.
func (s *Store) GetRecord(ctx context.Context, table, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.readTable(table)
	if err != nil {
		return "", false, err
	}
	for _, row := range rows {
		if rowKey(row) == key {
			return row, true, nil
		}
	}
	return "", false, nil
}

// UpdateRecord replaces the row for key, or appends it when absent.
func (s *Store) UpdateRecord(ctx context.Context, table, key, newRow string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.readTable(table)
	if err != nil {
		return err
	}
	replaced := false
	for i, row := range rows {
		if rowKey(row) == key {
			rows[i] = newRow
			replaced = true
			break
		}
	}
	if !replaced {
		rows = append(rows, newRow)
	}
	return s.writeTable(table, rows)
}

// DeleteRecord removes the row for key. Deleting an absent row is a no-op.
func (s *Store) DeleteRecord(ctx context.Context, table, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.readTable(table)
	if err != nil {
		return err
	}
	kept := rows[:0]
	for _, row := range rows {
		if rowKey(row) != key {
			kept = append(kept, row)
		}
	}
	return s.writeTable(table, kept)
}

func (s *Store) readTable(table string) ([]string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, table))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read table %s: %w", table, err)
	}
	var rows []string
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimRight(line, "\r"); line != "" {
			rows = append(rows, line)
		}
	}
	return rows, nil
}

func (s *Store) writeTable(table string, rows []string) error {
	path := filepath.Join(s.dir, table)
	tmp := path + ".tmp"

	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(row)
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(tmp, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write table %s: %w", table, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace table %s: %w", table, err)
	}
	return nil
}

func rowKey(row string) string {
	if i := strings.IndexByte(row, ','); i >= 0 {
		return row[:i]
	}
	return row
}
