package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noel-odero/momo-analysis/internal/category"
	"github.com/noel-odero/momo-analysis/internal/export"
	"github.com/noel-odero/momo-analysis/internal/extract"
)

func writeExport(t *testing.T, dir string, c category.Category, records []extract.Record) {
	t.Helper()
	_, err := export.Write(dir, c, records)
	require.NoError(t, err)
}

func TestLoadFileInsertsRecords(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	dir := t.TempDir()

	writeExport(t, dir, category.Airtime, []extract.Record{
		extract.AirtimePayment{Date: "2024-01-05 10:00:00", TxID: "123", PaymentAmount: 500, NewBalance: 9500},
		extract.AirtimePayment{Date: "2024-01-06 11:00:00", TxID: "124", PaymentAmount: 1000, NewBalance: 8500},
	})

	result, err := s.LoadFile(ctx, category.Airtime, export.Path(dir, category.Airtime))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Inserted)
	assert.Equal(t, 0, result.Duplicates)
	assert.Equal(t, 0, result.Rejected)

	records, err := s.ReadAll(ctx, category.Airtime)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, int64(500), records[0]["payment_amount"])
}

func TestLoadFileIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	dir := t.TempDir()

	writeExport(t, dir, category.Airtime, []extract.Record{
		extract.AirtimePayment{TxID: "123", PaymentAmount: 500},
	})
	path := export.Path(dir, category.Airtime)

	first, err := s.LoadFile(ctx, category.Airtime, path)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Inserted)

	before, err := s.ReadAll(ctx, category.Airtime)
	require.NoError(t, err)

	// Second pass over the same document: every insert is a duplicate and
	// the stored state is unchanged.
	second, err := s.LoadFile(ctx, category.Airtime, path)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Inserted)
	assert.Equal(t, 1, second.Duplicates)

	after, err := s.ReadAll(ctx, category.Airtime)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestLoadFileMalformedDocumentFails(t *testing.T) {
	s := newTestStore(t)
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := s.LoadFile(context.Background(), category.Airtime, path)
	assert.Error(t, err)
}

func TestLoadDirSkipsMissingDocuments(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	dir := t.TempDir()

	// Only two of nine category documents present.
	writeExport(t, dir, category.Airtime, []extract.Record{
		extract.AirtimePayment{TxID: "1"},
	})
	writeExport(t, dir, category.BankTransfers, []extract.Record{
		extract.BankTransfer{TransactionID: "9", Amount: 100},
	})

	results, err := s.LoadDir(ctx, dir)
	require.NoError(t, err)
	require.Len(t, results, 2)

	total := 0
	for _, r := range results {
		total += r.Inserted
	}
	assert.Equal(t, 2, total)
}

func TestLoadDirContinuesPastMalformedDocument(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	dir := t.TempDir()

	// Malformed airtime document alongside a good bank-transfers one.
	require.NoError(t, os.WriteFile(export.Path(dir, category.Airtime), []byte("{not json"), 0644))
	writeExport(t, dir, category.BankTransfers, []extract.Record{
		extract.BankTransfer{TransactionID: "9", Amount: 100},
	})

	results, err := s.LoadDir(ctx, dir)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, category.BankTransfers, results[0].Category)
	assert.Equal(t, 1, results[0].Inserted)
}
