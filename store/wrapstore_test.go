package store_test

import (
	"errors"
	"testing"

	"github.com/ChainSafe/nft-bridge/store"
	mock_store "github.com/ChainSafe/nft-bridge/store/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
	"github.com/syndtr/goleveldb/leveldb"
)

const assetID = "000800006203F49C21D5D6E022CB16DE3538F248662FC73C00000001"

type WrapStoreTestSuite struct {
	suite.Suite
	wrapStore            *store.WrapStore
	keyValueReaderWriter *mock_store.MockKeyValueReaderWriter
}

func TestRunWrapStoreTestSuite(t *testing.T) {
	suite.Run(t, new(WrapStoreTestSuite))
}

func (s *WrapStoreTestSuite) SetupTest() {
	gomockController := gomock.NewController(s.T())
	s.keyValueReaderWriter = mock_store.NewMockKeyValueReaderWriter(gomockController)
	s.wrapStore = store.NewWrapStore(s.keyValueReaderWriter)
}

func (s *WrapStoreTestSuite) Test_StoreWrapStatus_FailedStore() {
	key := "wrap:sourceAsset:" + assetID
	s.keyValueReaderWriter.EXPECT().SetByKey([]byte(key), []byte(store.WrappedWrap)).Return(errors.New("error"))

	err := s.wrapStore.StoreWrapStatus(assetID, store.WrappedWrap)

	s.NotNil(err)
}

func (s *WrapStoreTestSuite) Test_StoreWrapStatus_SuccessfulStore() {
	key := "wrap:sourceAsset:" + assetID
	s.keyValueReaderWriter.EXPECT().SetByKey([]byte(key), []byte(store.PendingWrap)).Return(nil)

	err := s.wrapStore.StoreWrapStatus(assetID, store.PendingWrap)

	s.Nil(err)
}

func (s *WrapStoreTestSuite) Test_WrapStatus_FailedFetch() {
	key := "wrap:sourceAsset:" + assetID
	s.keyValueReaderWriter.EXPECT().GetByKey([]byte(key)).Return(nil, errors.New("error"))

	_, err := s.wrapStore.WrapStatus(assetID)

	s.NotNil(err)
}

func (s *WrapStoreTestSuite) Test_WrapStatus_NotFound() {
	key := "wrap:sourceAsset:" + assetID
	s.keyValueReaderWriter.EXPECT().GetByKey([]byte(key)).Return(nil, leveldb.ErrNotFound)

	status, err := s.wrapStore.WrapStatus(assetID)

	s.Nil(err)
	s.Equal(status, store.MissingWrap)
}

func (s *WrapStoreTestSuite) Test_WrapStatus_SuccessfulFetch() {
	key := "wrap:sourceAsset:" + assetID
	s.keyValueReaderWriter.EXPECT().GetByKey([]byte(key)).Return([]byte(store.WrappedWrap), nil)

	status, err := s.wrapStore.WrapStatus(assetID)

	s.Nil(err)
	s.Equal(status, store.WrappedWrap)
}

func (s *WrapStoreTestSuite) Test_ReserveWrap_Missing() {
	key := "wrap:sourceAsset:" + assetID
	s.keyValueReaderWriter.EXPECT().GetByKey([]byte(key)).Return(nil, leveldb.ErrNotFound)
	s.keyValueReaderWriter.EXPECT().SetByKey([]byte(key), []byte(store.PendingWrap)).Return(nil)

	status, reserved, err := s.wrapStore.ReserveWrap(assetID)

	s.Nil(err)
	s.True(reserved)
	s.Equal(store.PendingWrap, status)
}

func (s *WrapStoreTestSuite) Test_ReserveWrap_AfterFailure() {
	key := "wrap:sourceAsset:" + assetID
	s.keyValueReaderWriter.EXPECT().GetByKey([]byte(key)).Return([]byte(store.FailedWrap), nil)
	s.keyValueReaderWriter.EXPECT().SetByKey([]byte(key), []byte(store.PendingWrap)).Return(nil)

	_, reserved, err := s.wrapStore.ReserveWrap(assetID)

	s.Nil(err)
	s.True(reserved)
}

func (s *WrapStoreTestSuite) Test_ReserveWrap_AlreadyPending() {
	key := "wrap:sourceAsset:" + assetID
	s.keyValueReaderWriter.EXPECT().GetByKey([]byte(key)).Return([]byte(store.PendingWrap), nil)

	status, reserved, err := s.wrapStore.ReserveWrap(assetID)

	s.Nil(err)
	s.False(reserved)
	s.Equal(store.PendingWrap, status)
}

func (s *WrapStoreTestSuite) Test_ReserveWrap_FailedStore() {
	key := "wrap:sourceAsset:" + assetID
	s.keyValueReaderWriter.EXPECT().GetByKey([]byte(key)).Return(nil, leveldb.ErrNotFound)
	s.keyValueReaderWriter.EXPECT().SetByKey([]byte(key), []byte(store.PendingWrap)).Return(errors.New("error"))

	_, reserved, err := s.wrapStore.ReserveWrap(assetID)

	s.NotNil(err)
	s.False(reserved)
}
