// Package storage persists named position snapshots in BadgerDB.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/dferris/sanboard/board"
)

// snapshotPrefix namespaces snapshot keys within the database.
const snapshotPrefix = "snapshot/"

// ErrNotFound is returned when no snapshot exists under the given name.
var ErrNotFound = errors.New("snapshot not found")

// Snapshot is the stored form of a position: the 64-character board
// encoding plus the side to move and the time of saving.
type Snapshot struct {
	Board   string    `json:"board"`
	ToMove  string    `json:"to_move"`
	SavedAt time.Time `json:"saved_at"`
}

// Store wraps BadgerDB for persistent snapshot storage.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) the database in the given directory.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save stores the position under the given name, overwriting any
// previous snapshot with that name.
func (s *Store) Save(name string, pos *board.Position) error {
	snap := Snapshot{
		Board:   pos.Encode(),
		ToMove:  pos.SideToMove().String(),
		SavedAt: time.Now(),
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(snapshotPrefix+name), data)
	})
}

// Load reconstructs the position stored under the given name.
func (s *Store) Load(name string) (*board.Position, error) {
	snap, err := s.Get(name)
	if err != nil {
		return nil, err
	}

	pos, err := board.Decode(snap.Board)
	if err != nil {
		return nil, fmt.Errorf("snapshot %q: %w", name, err)
	}
	if snap.ToMove == board.Black.String() {
		pos.SetSideToMove(board.Black)
	}
	return pos, nil
}

// Get returns the raw snapshot stored under the given name.
func (s *Store) Get(name string) (*Snapshot, error) {
	snap := &Snapshot{}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(snapshotPrefix + name))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, snap)
		})
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// Delete removes the snapshot stored under the given name. Deleting a
// name that does not exist is not an error.
func (s *Store) Delete(name string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(snapshotPrefix + name))
	})
}

// Names lists the stored snapshot names.
func (s *Store) Names() ([]string, error) {
	var names []string

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(snapshotPrefix)

		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			key := it.Item().Key()
			names = append(names, string(key[len(snapshotPrefix):]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}
