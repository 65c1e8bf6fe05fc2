package storage

import (
	"errors"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

// BadgerStorage keeps local storage entries in an embedded Badger database.
// Keys are stored verbatim so the layout matches the logical key names.
type BadgerStorage struct {
	db  *badger.DB
	log *slog.Logger
}

func NewBadgerStorage(db *badger.DB, log *slog.Logger) *BadgerStorage {
	return &BadgerStorage{db: db, log: log}
}

func (s *BadgerStorage) GetItem(key string) (string, bool, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(value), true, nil
}

func (s *BadgerStorage) SetItem(key, value string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
}

func (s *BadgerStorage) RemoveItem(key string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

// Keys performs a key-only prefix scan; Badger iterates in byte order.
func (s *BadgerStorage) Keys(prefix string) ([]string, error) {
	var keys []string
	err := s.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		p := []byte(prefix)
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			keys = append(keys, string(it.Item().KeyCopy(nil)))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Debug("Listed local storage keys", "prefix", prefix, "count", len(keys))
	return keys, nil
}
