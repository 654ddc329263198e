package lvldb

import (
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
)

// LVLDB is a key value store backed by a single leveldb file. The file is
// held open for the lifetime of the process.
type LVLDB struct {
	db *leveldb.DB
}

func NewLvlDB(path string) (*LVLDB, error) {
	ldb, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, errors.Wrap(err, "levelDB.OpenFile fail")
	}
	return &LVLDB{db: ldb}, nil
}

func (db *LVLDB) GetByKey(key []byte) ([]byte, error) {
	return db.db.Get(key, nil)
}

func (db *LVLDB) SetByKey(key []byte, value []byte) error {
	err := db.db.Put(key, value, nil)
	if err != nil {
		return errors.Wrap(err, "levelDB.Put fail")
	}
	return nil
}

func (db *LVLDB) Close() error {
	return db.db.Close()
}
