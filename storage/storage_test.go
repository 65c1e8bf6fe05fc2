package storage

import (
	"log/slog"
	"testing"

	"meet-lab/contract"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func backends(t *testing.T) map[string]contract.LocalStorage {
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return map[string]contract.LocalStorage{
		"badger": NewBadgerStorage(db, logs.GetLoggerFromLevel(slog.LevelDebug)),
		"memory": NewMemoryStorage(),
	}
}

func TestLocalStorage_SetGetRemove(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)

			_, ok, err := store.GetItem("authToken")
			req.NoError(err)
			req.False(ok)

			req.NoError(store.SetItem("authToken", "abc"))
			value, ok, err := store.GetItem("authToken")
			req.NoError(err)
			req.True(ok)
			req.Equal("abc", value)

			req.NoError(store.SetItem("authToken", "def"))
			value, _, err = store.GetItem("authToken")
			req.NoError(err)
			req.Equal("def", value)

			req.NoError(store.RemoveItem("authToken"))
			_, ok, err = store.GetItem("authToken")
			req.NoError(err)
			req.False(ok)

			// Removing twice is harmless
			req.NoError(store.RemoveItem("authToken"))
		})
	}
}

func TestLocalStorage_KeysByPrefix(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			for _, key := range []string{"chat_b", "userData", "chat_a", "authToken"} {
				req.NoError(store.SetItem(key, "x"))
			}

			keys, err := store.Keys("chat_")
			req.NoError(err)
			req.Equal([]string{"chat_a", "chat_b"}, keys)

			all, err := store.Keys("")
			req.NoError(err)
			req.Equal([]string{"authToken", "chat_a", "chat_b", "userData"}, all)
		})
	}
}
