// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package events

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	ethTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog/log"
)

// TokenIDFromReceipt recovers the id of a freshly minted token from the
// third indexed topic of the first Transfer log emitted by the contract.
// The NFTWrapped log is used when no Transfer log is present.
func TokenIDFromReceipt(receipt *ethTypes.Receipt, contract common.Address) (*big.Int, bool) {
	if receipt == nil {
		return nil, false
	}

	for _, l := range receipt.Logs {
		if l.Address != contract || len(l.Topics) < 4 {
			continue
		}
		if l.Topics[0] == TransferSig.GetTopic() {
			return l.Topics[3].Big(), true
		}
	}

	wrapped, ok := WrappedFromReceipt(receipt, contract)
	if !ok {
		return nil, false
	}
	log.Debug().Str("tx", receipt.TxHash.Hex()).Msg("Token id recovered from wrap event")
	return wrapped.TokenID.Big(), true
}

func WrappedFromReceipt(receipt *ethTypes.Receipt, contract common.Address) (*Wrapped, bool) {
	for _, l := range receipt.Logs {
		if l.Address != contract || len(l.Topics) < 4 {
			continue
		}
		if l.Topics[0] == NFTWrappedSig.GetTopic() {
			return &Wrapped{
				TokenID:         l.Topics[1],
				SourceAssetHash: l.Topics[2],
				Recipient:       common.BytesToAddress(l.Topics[3].Bytes()),
			}, true
		}
	}
	return nil, false
}
