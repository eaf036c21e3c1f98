// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package store

import (
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

const (
	ORDER_PREFIX = "order:"
)

// Archive persists finalized orders in a leveldb database.
type Archive struct {
	db *leveldb.DB
}

// OpenArchive opens or creates the database at path.
func OpenArchive(path string) (*Archive, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, err
	}

	log.Info().Msgf("Opened order archive at %s", path)
	return NewArchive(db), nil
}

func NewArchive(db *leveldb.DB) *Archive {
	return &Archive{
		db: db,
	}
}

func (a *Archive) Put(id string, data []byte) error {
	return a.db.Put(orderKey(id), data, nil)
}

// Get returns the archived order or nil when no order with the id exists.
func (a *Archive) Get(id string) ([]byte, error) {
	data, err := a.db.Get(orderKey(id), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return data, nil
}

// IDs lists the ids of all archived orders.
func (a *Archive) IDs() ([]string, error) {
	iter := a.db.NewIterator(util.BytesPrefix([]byte(ORDER_PREFIX)), nil)
	defer iter.Release()

	ids := make([]string, 0)
	for iter.Next() {
		ids = append(ids, string(iter.Key()[len(ORDER_PREFIX):]))
	}
	return ids, iter.Error()
}

func (a *Archive) Close() error {
	return a.db.Close()
}

func orderKey(id string) []byte {
	return []byte(ORDER_PREFIX + id)
}
