package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/noel-odero/momo-analysis/internal/category"
)

// ReadAll returns every stored record of a category as column→value maps,
// in insertion order. BLOB-free schema, so values come back as int64, string
// or nil.
func (s *Store) ReadAll(ctx context.Context, c category.Category) ([]map[string]any, error) {
	spec, ok := tableFor(c)
	if !ok {
		return nil, fmt.Errorf("unknown category %q", c)
	}

	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY rowid",
		strings.Join(spec.columns, ", "), spec.name)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", spec.name, err)
	}
	defer rows.Close()

	var records []map[string]any
	for rows.Next() {
		values := make([]any, len(spec.columns))
		ptrs := make([]any, len(spec.columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", spec.name, err)
		}

		rec := make(map[string]any, len(spec.columns))
		for i, col := range spec.columns {
			if b, ok := values[i].([]byte); ok {
				rec[col] = string(b)
			} else {
				rec[col] = values[i]
			}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s rows: %w", spec.name, err)
	}
	return records, nil
}

// Count returns the number of stored records for a category.
func (s *Store) Count(ctx context.Context, c category.Category) (int, error) {
	spec, ok := tableFor(c)
	if !ok {
		return 0, fmt.Errorf("unknown category %q", c)
	}
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+spec.name).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting %s rows: %w", spec.name, err)
	}
	return n, nil
}
