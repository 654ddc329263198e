// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package events

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

type EventSig string

func (es EventSig) GetTopic() common.Hash {
	return crypto.Keccak256Hash([]byte(es))
}

const (
	TransferSig     EventSig = "Transfer(address,address,uint256)"
	NFTWrappedSig   EventSig = "NFTWrapped(uint256,string,address)"
	NFTUnwrappedSig EventSig = "NFTUnwrapped(uint256,string,address)"
)

// Wrapped holds the indexed fields of a mirror token creation
type Wrapped struct {
	TokenID common.Hash
	// keccak256 of the source asset id, since indexed strings are hashed
	SourceAssetHash common.Hash
	Recipient       common.Address
}
