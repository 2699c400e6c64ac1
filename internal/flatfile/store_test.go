package flatfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	store, err := New(dir)
	assert.NoError(t, err)
	assert.NotNil(t, store)
	assert.DirExists(t, dir)
}

func TestGetRecord(t *testing.T) {
	store, err := New(t.TempDir())
	assert.NoError(t, err)
	ctx := context.Background()

	tests := []struct {
		name        string
		prepare     func()
		key         string
		expectedRow string
		expectedOK  bool
	}{
		{
			name:       "Missing table is an empty table",
			prepare:    func() {},
			key:        "A1",
			expectedOK: false,
		},
		{
			name: "Existing row is found by key",
			prepare: func() {
				assert.NoError(t, store.UpdateRecord(ctx, "Accounts.csv", "A1", "A1,100.00"))
				assert.NoError(t, store.UpdateRecord(ctx, "Accounts.csv", "A2", "A2,50.00"))
			},
			key:         "A2",
			expectedRow: "A2,50.00",
			expectedOK:  true,
		},
		{
			name:       "Absent key in populated table",
			prepare:    func() {},
			key:        "A9",
			expectedOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepare()

			row, ok, err := store.GetRecord(ctx, "Accounts.csv", tt.key)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedOK, ok)
			assert.Equal(t, tt.expectedRow, row)
		})
	}
}

func TestUpdateRecord(t *testing.T) {
	store, err := New(t.TempDir())
	assert.NoError(t, err)
	ctx := context.Background()

	assert.NoError(t, store.UpdateRecord(ctx, "Accounts.csv", "A1", "A1,100.00"))
	assert.NoError(t, store.UpdateRecord(ctx, "Accounts.csv", "A2", "A2,50.00"))

	// Replacing a row must not disturb its neighbors.
	assert.NoError(t, store.UpdateRecord(ctx, "Accounts.csv", "A1", "A1,75.00"))

	row, ok, err := store.GetRecord(ctx, "Accounts.csv", "A1")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "A1,75.00", row)

	row, ok, err = store.GetRecord(ctx, "Accounts.csv", "A2")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "A2,50.00", row)
}

func TestDeleteRecord(t *testing.T) {
	store, err := New(t.TempDir())
	assert.NoError(t, err)
	ctx := context.Background()

	assert.NoError(t, store.UpdateRecord(ctx, "Loans.csv", "A1", "A1,loan-1"))
	assert.NoError(t, store.UpdateRecord(ctx, "Loans.csv", "A2", "A2,loan-2"))

	assert.NoError(t, store.DeleteRecord(ctx, "Loans.csv", "A1"))

	_, ok, err := store.GetRecord(ctx, "Loans.csv", "A1")
	assert.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = store.GetRecord(ctx, "Loans.csv", "A2")
	assert.NoError(t, err)
	assert.True(t, ok)

	// Deleting an absent row is a no-op.
	assert.NoError(t, store.DeleteRecord(ctx, "Loans.csv", "A9"))
}

func TestTablesAreIndependent(t *testing.T) {
	store, err := New(t.TempDir())
	assert.NoError(t, err)
	ctx := context.Background()

	assert.NoError(t, store.UpdateRecord(ctx, "Accounts.csv", "A1", "A1,100.00"))
	assert.NoError(t, store.UpdateRecord(ctx, "Loans.csv", "A1", "A1,loan-1"))

	assert.NoError(t, store.DeleteRecord(ctx, "Loans.csv", "A1"))

	row, ok, err := store.GetRecord(ctx, "Accounts.csv", "A1")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "A1,100.00", row)
}

func TestReadSkipsBlankAndCarriageReturns(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	assert.NoError(t, err)

	raw := "A1,100.00\r\n\r\nA2,50.00\n\n"
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "Accounts.csv"), []byte(raw), 0o644))

	row, ok, err := store.GetRecord(context.Background(), "Accounts.csv", "A2")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "A2,50.00", row)
}

func TestCanceledContext(t *testing.T) {
	store, err := New(t.TempDir())
	assert.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err = store.GetRecord(ctx, "Accounts.csv", "A1")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, store.UpdateRecord(ctx, "Accounts.csv", "A1", "A1,1.00"), context.Canceled)
	assert.ErrorIs(t, store.DeleteRecord(ctx, "Accounts.csv", "A1"), context.Canceled)
}
