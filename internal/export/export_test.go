package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noel-odero/momo-analysis/internal/category"
	"github.com/noel-odero/momo-analysis/internal/extract"
)

func TestWriteProducesArrayDocument(t *testing.T) {
	dir := t.TempDir()
	records := []extract.Record{
		extract.AirtimePayment{Date: "2024-01-05 10:00:00", TxID: "123", PaymentAmount: 500, Fee: 0, NewBalance: 9500},
		extract.AirtimePayment{Date: "2024-01-06 11:00:00", TxID: "124", PaymentAmount: 1000, Fee: 0, NewBalance: 8500},
	}

	path, err := Write(dir, category.Airtime, records)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "airtime_payments.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "123", decoded[0]["txid"])
	assert.Equal(t, float64(500), decoded[0]["payment_amount"])

	// Field order in the document follows the schema, not alphabetical.
	text := string(data)
	assert.Less(t, strings.Index(text, `"date"`), strings.Index(text, `"txid"`))
	assert.Less(t, strings.Index(text, `"txid"`), strings.Index(text, `"payment_amount"`))
}

func TestWriteOverwritesPreviousExport(t *testing.T) {
	dir := t.TempDir()

	_, err := Write(dir, category.Airtime, []extract.Record{
		extract.AirtimePayment{TxID: "old"},
		extract.AirtimePayment{TxID: "older"},
	})
	require.NoError(t, err)

	path, err := Write(dir, category.Airtime, []extract.Record{
		extract.AirtimePayment{TxID: "new"},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "new", decoded[0]["txid"])
}

func TestWriteEmptySetWritesEmptyArray(t *testing.T) {
	dir := t.TempDir()
	path, err := Write(dir, category.BankTransfers, nil)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(data)))
}

func TestFileNameDerivedFromTable(t *testing.T) {
	assert.Equal(t, "airtime_payments.json", FileName(category.Airtime))
	assert.Equal(t, "transactions_initiated_by_third_parties.json", FileName(category.ThirdPartyTransactions))
}
