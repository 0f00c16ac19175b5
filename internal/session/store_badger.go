package session

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"whateating/internal/selection"

	badger "github.com/dgraph-io/badger/v4"
)

const keyPrefix = "session:"

// BadgerStore persists session state as JSON; entries expire after ttl.
type BadgerStore struct {
	db  *badger.DB
	ttl time.Duration
}

// OpenBadger opens a store in dir, or an in-memory one when dir is "".
func OpenBadger(dir string, ttl time.Duration) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &BadgerStore{db: db, ttl: ttl}, nil
}

func getDBKey(id string) []byte {
	return []byte(keyPrefix + id)
}

func (s *BadgerStore) Get(ctx context.Context, id string) (*selection.State, error) {
	var state selection.State

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(getDBKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &state)
		})
	})

	if err == badger.ErrKeyNotFound {
		return nil, ErrNotFound
	} else if err != nil {
		log.Println("[SESSION] could not read session:", err)
		return nil, err
	}

	return &state, nil
}

func (s *BadgerStore) Save(ctx context.Context, id string, state *selection.State) error {
	jsn, err := json.Marshal(state)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry(getDBKey(id), jsn)
		if s.ttl > 0 {
			e = e.WithTTL(s.ttl)
		}
		return txn.SetEntry(e)
	})
}

func (s *BadgerStore) Delete(ctx context.Context, id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(getDBKey(id))
	})
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}
