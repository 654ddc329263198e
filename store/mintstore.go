// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
)

var MINT_KEY = "mint:tx:%s"

type MintRecord struct {
	TxHash  string `json:"txHash"`
	AssetID string `json:"assetId"`
	Fee     string `json:"fee"`
}

// MintStore is a log of minted assets keyed by transaction hash.
type MintStore struct {
	db KeyValueReaderWriter
}

func NewMintStore(db KeyValueReaderWriter) *MintStore {
	return &MintStore{
		db: db,
	}
}

func (s *MintStore) StoreMint(record MintRecord) error {
	value, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return s.db.SetByKey([]byte(fmt.Sprintf(MINT_KEY, record.TxHash)), value)
}

// Mint returns the record of a mint transaction, or nil when it is not logged.
func (s *MintStore) Mint(txHash string) (*MintRecord, error) {
	v, err := s.db.GetByKey([]byte(fmt.Sprintf(MINT_KEY, txHash)))
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	record := &MintRecord{}
	if err := json.Unmarshal(v, record); err != nil {
		return nil, err
	}
	return record, nil
}
