package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type kvStore interface {
	ReadKey(key []byte) ([]byte, error)
	UpdateKey(key []byte, data []byte) error
	DeleteKey(key []byte) error
	Close() error
}

func TestKVStores(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		open func(dir string) (kvStore, error)
	}{
		{
			name: "bolt",
			open: func(dir string) (kvStore, error) {
				return NewBoltKVStore(filepath.Join(dir, "tally.db"), "stats")
			},
		},
		{
			name: "sqlite",
			open: func(dir string) (kvStore, error) {
				return NewSQLiteKVStore(filepath.Join(dir, "tally.sqlite"), "stats")
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			s, err := tt.open(dir)
			require.NoError(t, err)

			data, err := s.ReadKey([]byte("missing"))
			require.NoError(t, err)
			assert.Nil(t, data)

			require.NoError(t, s.UpdateKey([]byte("k"), []byte("v1")))
			require.NoError(t, s.UpdateKey([]byte("k"), []byte("v2")))
			data, err = s.ReadKey([]byte("k"))
			require.NoError(t, err)
			assert.Equal(t, []byte("v2"), data)

			require.NoError(t, s.DeleteKey([]byte("k")))
			require.NoError(t, s.DeleteKey([]byte("k")))
			data, err = s.ReadKey([]byte("k"))
			require.NoError(t, err)
			assert.Nil(t, data)

			// data survives reopening
			require.NoError(t, s.UpdateKey([]byte("persisted"), []byte("yes")))
			require.NoError(t, s.Close())

			s, err = tt.open(dir)
			require.NoError(t, err)
			defer s.Close()

			data, err = s.ReadKey([]byte("persisted"))
			require.NoError(t, err)
			assert.Equal(t, []byte("yes"), data)
		})
	}
}

func TestNewSQLiteKVStoreEmptyTable(t *testing.T) {
	_, err := NewSQLiteKVStore(filepath.Join(t.TempDir(), "tally.sqlite"), "")
	assert.Error(t, err)
}
