package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noel-odero/momo-analysis/internal/category"
	"github.com/noel-odero/momo-analysis/internal/store"
)

func newTestServer(t *testing.T) (*store.Store, http.Handler) {
	t.Helper()
	s, err := store.Open(store.Config{Path: ":memory:"}, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, NewServer(s, zerolog.Nop()).Handler()
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestServeCategoryRecords(t *testing.T) {
	s, h := newTestServer(t)

	_, err := s.Insert(context.Background(), category.Airtime, map[string]any{
		"date":           "2024-01-05 10:00:00",
		"txid":           "123456789",
		"payment_amount": int64(500),
		"fee":            int64(0),
		"new_balance":    int64(9500),
	})
	require.NoError(t, err)

	rec := get(t, h, "/airtime-payments")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var records []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "123456789", records[0]["txid"])
	assert.Equal(t, float64(500), records[0]["payment_amount"])
}

func TestServeEmptyCategoryReturnsEmptyArray(t *testing.T) {
	_, h := newTestServer(t)

	rec := get(t, h, "/incoming-money")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestAllCategoryRoutesRegistered(t *testing.T) {
	_, h := newTestServer(t)

	// One route per category, all answering GET.
	require.Len(t, routes, len(category.All()))
	for path := range routes {
		rec := get(t, h, path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestNonGetMethodRejected(t *testing.T) {
	_, h := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/airtime-payments", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestUnknownPathNotFound(t *testing.T) {
	_, h := newTestServer(t)

	rec := get(t, h, "/no-such-category")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
