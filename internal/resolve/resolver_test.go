package resolve

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feichai0017/inquiry-reader/internal/models"
	"github.com/feichai0017/inquiry-reader/pkg/logger"
)

type fakeStore struct {
	rows    map[string]models.InvoiceRecord // keyed by stored (possibly mixed-case) invoice no
	queries [][]string
	err     error
}

func (f *fakeStore) QueryByKeys(_ context.Context, keys []string) ([]models.InvoiceRecord, error) {
	f.queries = append(f.queries, append([]string(nil), keys...))
	if f.err != nil {
		return nil, f.err
	}
	var out []models.InvoiceRecord
	for _, k := range keys {
		if rec, ok := f.rows[k]; ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

func record(no string, status string) models.InvoiceRecord {
	return models.InvoiceRecord{SupplierInvoiceNo: no, Status: &status}
}

func TestResolve_BatchCount(t *testing.T) {
	tests := []struct {
		n       int
		queries int
	}{
		{n: 1, queries: 1},
		{n: 50, queries: 1},
		{n: 51, queries: 2},
		{n: 120, queries: 3},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d ids", tt.n), func(t *testing.T) {
			store := &fakeStore{rows: map[string]models.InvoiceRecord{}}
			r := NewResolver(store, logger.NewTestLogger())

			ids := make([]string, tt.n)
			for i := range ids {
				ids[i] = fmt.Sprintf("INV%04d", i)
			}

			_, err := r.Resolve(context.Background(), ids)
			require.NoError(t, err)
			assert.Len(t, store.queries, tt.queries)
		})
	}
}

func TestResolve_KeysUpperCased(t *testing.T) {
	// The store returns its own stored casing; the mapping must not trust it.
	store := &fakeStore{rows: map[string]models.InvoiceRecord{
		"INV-1001": record("inv-1001", "Paid"),
	}}
	r := NewResolver(store, logger.NewTestLogger())

	out, err := r.Resolve(context.Background(), []string{"INV-1001"})
	require.NoError(t, err)

	require.Len(t, out, 1)
	rec, ok := out["INV-1001"]
	require.True(t, ok)
	assert.Equal(t, "inv-1001", rec.SupplierInvoiceNo)
	for key := range out {
		assert.Equal(t, key, "INV-1001")
	}
}

func TestResolve_MissingRowsAbsent(t *testing.T) {
	store := &fakeStore{rows: map[string]models.InvoiceRecord{}}
	r := NewResolver(store, logger.NewTestLogger())

	out, err := r.Resolve(context.Background(), []string{"INV1234"})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestResolve_EmptyInputIssuesNoQueries(t *testing.T) {
	store := &fakeStore{}
	r := NewResolver(store, logger.NewTestLogger())

	out, err := r.Resolve(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Empty(t, store.queries)
}

func TestResolve_StoreErrorPropagates(t *testing.T) {
	store := &fakeStore{err: errors.New("connection refused")}
	r := NewResolver(store, logger.NewTestLogger())

	_, err := r.Resolve(context.Background(), []string{"INV-1"})
	assert.Error(t, err)
}

func TestResolve_BatchesPreserveOrderAndPartition(t *testing.T) {
	store := &fakeStore{rows: map[string]models.InvoiceRecord{}}
	r := NewResolver(store, logger.NewTestLogger())

	ids := make([]string, 75)
	for i := range ids {
		ids[i] = fmt.Sprintf("ID%04d", i)
	}

	_, err := r.Resolve(context.Background(), ids)
	require.NoError(t, err)

	require.Len(t, store.queries, 2)
	assert.Len(t, store.queries[0], 50)
	assert.Len(t, store.queries[1], 25)
	assert.Equal(t, "ID0000", store.queries[0][0])
	assert.Equal(t, "ID0050", store.queries[1][0])
}
