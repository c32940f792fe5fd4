package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/noel-odero/momo-analysis/internal/category"
	"github.com/noel-odero/momo-analysis/internal/export"
)

// LoadResult summarizes loading one category's exported document.
type LoadResult struct {
	Category   category.Category
	Inserted   int
	Duplicates int
	Rejected   int
}

// LoadDir loads every category's exported JSON document found under dir.
// A missing document is skipped (the category may simply not have been
// exported); an unreadable or malformed one is logged and skipped without
// aborting the remaining categories. Within a document, a rejected record
// never rolls back records already inserted.
func (s *Store) LoadDir(ctx context.Context, dir string) ([]LoadResult, error) {
	var results []LoadResult
	for _, c := range category.All() {
		path := export.Path(dir, c)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			s.logger.Debug().Str("category", c.String()).Str("path", path).
				Msg("no export for category, skipping")
			continue
		}

		result, err := s.LoadFile(ctx, c, path)
		if err != nil {
			s.logger.Error().Err(err).Str("category", c.String()).
				Msg("skipping category document")
			continue
		}
		results = append(results, result)
	}
	return results, nil
}

// LoadFile loads one category's JSON document into its table, record by
// record.
func (s *Store) LoadFile(ctx context.Context, c category.Category, path string) (LoadResult, error) {
	result := LoadResult{Category: c}

	data, err := os.ReadFile(path)
	if err != nil {
		return result, fmt.Errorf("reading %s: %w", path, err)
	}

	records, err := decodeRecords(data)
	if err != nil {
		return result, fmt.Errorf("decoding %s: %w", path, err)
	}

	for _, rec := range records {
		outcome, err := s.Insert(ctx, c, rec)
		switch outcome {
		case Inserted:
			result.Inserted++
		case DuplicateSkipped:
			result.Duplicates++
		case Rejected:
			result.Rejected++
			s.logger.Warn().Err(err).Str("category", c.String()).
				Msg("record rejected")
		}
	}

	s.logger.Info().
		Str("category", c.String()).
		Int("inserted", result.Inserted).
		Int("duplicates", result.Duplicates).
		Int("rejected", result.Rejected).
		Msg("loaded category document")
	return result, nil
}

// decodeRecords parses an exported array-of-objects document. Numbers decode
// as int64 when integral so INTEGER columns are bound without a float
// round trip.
func decodeRecords(data []byte) ([]map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw []map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}

	for _, rec := range raw {
		for k, v := range rec {
			if num, ok := v.(json.Number); ok {
				if n, err := num.Int64(); err == nil {
					rec[k] = n
				} else {
					rec[k] = num.String()
				}
			}
		}
	}
	return raw, nil
}
