// Package export serializes extracted record sets to per-category JSON
// documents.
//
// Each category gets one array-of-objects document named after its storage
// table (data/airtime_payments.json and so on). Field names and order match
// the storage schema, so the documents double as the load format. A run
// replaces the previous export for a category; exports are snapshots, not
// appends.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/noel-odero/momo-analysis/internal/category"
	"github.com/noel-odero/momo-analysis/internal/extract"
)

// FileName returns the export file name for a category.
func FileName(c category.Category) string {
	return c.Table() + ".json"
}

// Path returns the export location for a category under dir.
func Path(dir string, c category.Category) string {
	return filepath.Join(dir, FileName(c))
}

// Write serializes records to the category's document under dir, creating
// dir if needed and overwriting any previous export. An empty record set
// writes an empty array, not nothing: a zero-match run is still a run.
func Write(dir string, c category.Category, records []extract.Record) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}

	if records == nil {
		records = []extract.Record{}
	}

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return "", fmt.Errorf("encoding %s records: %w", c, err)
	}
	data = append(data, '\n')

	path := Path(dir, c)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
