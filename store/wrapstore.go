// Copyright 2021 ChainSafe Systems
// SPDX-License-Identifier: LGPL-3.0-only

package store

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
)

type WrapStatus string

var (
	WRAP_KEY                 = "wrap:sourceAsset:%s"
	MissingWrap   WrapStatus = "missing"
	PendingWrap   WrapStatus = "pending"
	WrappedWrap   WrapStatus = "wrapped"
	FailedWrap    WrapStatus = "failed"
	UnwrappedWrap WrapStatus = "unwrapped"
)

// WrapStore records the wrap status of every source asset so the same
// asset is never mirrored twice.
type WrapStore struct {
	db   KeyValueReaderWriter
	lock sync.Mutex
}

func NewWrapStore(db KeyValueReaderWriter) *WrapStore {
	return &WrapStore{
		db: db,
	}
}

// StoreWrapStatus stores wrap status per source asset
func (s *WrapStore) StoreWrapStatus(sourceAssetID string, status WrapStatus) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.db.SetByKey(wrapKey(sourceAssetID), []byte(status))
}

// ReserveWrap marks the source asset as pending unless it is already pending
// or wrapped. The current status is returned together with whether the
// reservation was taken.
func (s *WrapStore) ReserveWrap(sourceAssetID string) (WrapStatus, bool, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	status, err := s.wrapStatus(sourceAssetID)
	if err != nil {
		return status, false, err
	}
	if status == PendingWrap || status == WrappedWrap {
		return status, false, nil
	}

	err = s.db.SetByKey(wrapKey(sourceAssetID), []byte(PendingWrap))
	if err != nil {
		return status, false, err
	}
	return PendingWrap, true, nil
}

// WrapStatus returns MissingWrap for assets that were never wrapped
func (s *WrapStore) WrapStatus(sourceAssetID string) (WrapStatus, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.wrapStatus(sourceAssetID)
}

func (s *WrapStore) wrapStatus(sourceAssetID string) (WrapStatus, error) {
	v, err := s.db.GetByKey(wrapKey(sourceAssetID))
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return MissingWrap, nil
		}
		return MissingWrap, err
	}

	status := WrapStatus(string(v))
	return status, nil
}

func wrapKey(sourceAssetID string) []byte {
	key := bytes.Buffer{}
	key.WriteString(fmt.Sprintf(WRAP_KEY, sourceAssetID))
	return key.Bytes()
}
