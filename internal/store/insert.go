package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/noel-odero/momo-analysis/internal/category"
)

// Outcome is the result of inserting one record.
type Outcome int

const (
	// Inserted means the record was stored.
	Inserted Outcome = iota
	// DuplicateSkipped means a record with the same natural identifier
	// already exists. Recovered locally; never surfaced as an error.
	DuplicateSkipped
	// Rejected means the storage layer refused the record for some other
	// reason. Reported per record; does not abort the batch.
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case Inserted:
		return "inserted"
	case DuplicateSkipped:
		return "duplicate_skipped"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Insert stores one record into the category's table. Record fields are
// looked up by column name; absent fields insert as NULL. A natural-key
// collision yields DuplicateSkipped and a nil error, which is what makes
// repeated full-pipeline reruns safe.
func (s *Store) Insert(ctx context.Context, c category.Category, rec map[string]any) (Outcome, error) {
	spec, ok := tableFor(c)
	if !ok {
		return Rejected, fmt.Errorf("unknown category %q", c)
	}

	args := make([]any, len(spec.columns))
	for i, col := range spec.columns {
		args[i] = rec[col]
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		spec.name,
		strings.Join(spec.columns, ", "),
		placeholders(len(spec.columns)),
	)

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return DuplicateSkipped, nil
		}
		return Rejected, fmt.Errorf("inserting into %s: %w", spec.name, err)
	}
	return Inserted, nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
