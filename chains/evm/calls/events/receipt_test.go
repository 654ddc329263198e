// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package events_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/suite"

	"github.com/ChainSafe/nft-bridge/chains/evm/calls/events"
)

var (
	contract  = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	recipient = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
)

func transferLog(address common.Address, tokenID int64) *types.Log {
	return &types.Log{
		Address: address,
		Topics: []common.Hash{
			events.TransferSig.GetTopic(),
			{},
			common.BytesToHash(recipient.Bytes()),
			common.BigToHash(big.NewInt(tokenID)),
		},
	}
}

func wrappedLog(tokenID int64, sourceAssetID string) *types.Log {
	return &types.Log{
		Address: contract,
		Topics: []common.Hash{
			events.NFTWrappedSig.GetTopic(),
			common.BigToHash(big.NewInt(tokenID)),
			crypto.Keccak256Hash([]byte(sourceAssetID)),
			common.BytesToHash(recipient.Bytes()),
		},
	}
}

type ReceiptTestSuite struct {
	suite.Suite
}

func TestRunReceiptTestSuite(t *testing.T) {
	suite.Run(t, new(ReceiptTestSuite))
}

func (s *ReceiptTestSuite) Test_TokenIDFromReceipt_NilReceipt() {
	_, ok := events.TokenIDFromReceipt(nil, contract)

	s.False(ok)
}

func (s *ReceiptTestSuite) Test_TokenIDFromReceipt_FirstTransferLog() {
	receipt := &types.Receipt{Logs: []*types.Log{
		transferLog(common.HexToAddress("0x1"), 99),
		transferLog(contract, 7),
		transferLog(contract, 8),
	}}

	tokenID, ok := events.TokenIDFromReceipt(receipt, contract)

	s.True(ok)
	s.Equal(big.NewInt(7), tokenID)
}

func (s *ReceiptTestSuite) Test_TokenIDFromReceipt_FallsBackToWrapEvent() {
	receipt := &types.Receipt{Logs: []*types.Log{wrappedLog(12, "ABCD")}}

	tokenID, ok := events.TokenIDFromReceipt(receipt, contract)

	s.True(ok)
	s.Equal(big.NewInt(12), tokenID)
}

func (s *ReceiptTestSuite) Test_TokenIDFromReceipt_NoMatchingLog() {
	receipt := &types.Receipt{Logs: []*types.Log{
		{Address: contract, Topics: []common.Hash{events.NFTUnwrappedSig.GetTopic()}},
	}}

	_, ok := events.TokenIDFromReceipt(receipt, contract)

	s.False(ok)
}

func (s *ReceiptTestSuite) Test_WrappedFromReceipt() {
	receipt := &types.Receipt{Logs: []*types.Log{wrappedLog(3, "ABCD")}}

	wrapped, ok := events.WrappedFromReceipt(receipt, contract)

	s.True(ok)
	s.Equal(recipient, wrapped.Recipient)
	s.Equal(crypto.Keccak256Hash([]byte("ABCD")), wrapped.SourceAssetHash)
	s.Equal(big.NewInt(3), wrapped.TokenID.Big())
}
