// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package wrapper_test

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/suite"

	"github.com/ChainSafe/nft-bridge/chains/evm/calls/consts"
	"github.com/ChainSafe/nft-bridge/chains/evm/calls/contracts/wrapper"
)

// backend answers contract calls with canned outputs and records sent transactions.
type backend struct {
	bind.ContractBackend
	abi     abi.ABI
	key     *ecdsa.PrivateKey
	outputs map[string][]interface{}
	sent    []*types.Transaction
}

func (b *backend) CallContract(ctx context.Context, msg ethereum.CallMsg, block *big.Int) ([]byte, error) {
	method, err := b.abi.MethodById(msg.Data[:4])
	if err != nil {
		return nil, err
	}
	return method.Outputs.Pack(b.outputs[method.Name]...)
}

func (b *backend) CodeAt(ctx context.Context, account common.Address, block *big.Int) ([]byte, error) {
	return []byte{0x1}, nil
}

func (b *backend) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	return uint64(len(b.sent)), nil
}

func (b *backend) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	b.sent = append(b.sent, tx)
	return nil
}

func (b *backend) TransactOpts(ctx context.Context, gasLimit uint64) (*bind.TransactOpts, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(b.key, big.NewInt(19))
	if err != nil {
		return nil, err
	}
	opts.Context = ctx
	opts.GasLimit = gasLimit
	opts.GasPrice = big.NewInt(25000000000)
	return opts, nil
}

type WrapperTestSuite struct {
	suite.Suite
	backend  *backend
	contract *wrapper.WrapperContract
	abi      abi.ABI
}

func TestRunWrapperTestSuite(t *testing.T) {
	suite.Run(t, new(WrapperTestSuite))
}

func (s *WrapperTestSuite) SetupTest() {
	key, _ := crypto.GenerateKey()
	s.abi, _ = abi.JSON(strings.NewReader(consts.WrapperABI))
	s.backend = &backend{abi: s.abi, key: key, outputs: make(map[string][]interface{})}
	s.contract = wrapper.NewWrapperContract(s.backend, common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"))
}

func (s *WrapperTestSuite) Test_Wrap_SendsPackedCall() {
	recipient := common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")

	tx, err := s.contract.Wrap(context.Background(), "ABCD", "ipfs://QmMeta", recipient, 150000)

	s.Nil(err)
	s.Len(s.backend.sent, 1)
	s.Equal(uint64(150000), tx.Gas())
	s.Equal(s.contract.Address(), *tx.To())
	expected, _ := s.abi.Pack("wrapXRPLNFT", "ABCD", "ipfs://QmMeta", recipient)
	s.Equal(expected, tx.Data())
}

func (s *WrapperTestSuite) Test_Unwrap_SendsPackedCall() {
	tx, err := s.contract.Unwrap(context.Background(), big.NewInt(4), 100000)

	s.Nil(err)
	expected, _ := s.abi.Pack("unwrapNFT", big.NewInt(4))
	s.Equal(expected, tx.Data())
}

func (s *WrapperTestSuite) Test_WrapperInfo() {
	s.backend.outputs["getWrapperInfo"] = []interface{}{"ABCD", true, big.NewInt(1700000000)}

	info, err := s.contract.WrapperInfo(context.Background(), big.NewInt(1))

	s.Nil(err)
	s.Equal("ABCD", info.SourceAssetID)
	s.True(info.IsWrapped)
	s.Equal(big.NewInt(1700000000), info.WrappedAt)
}

func (s *WrapperTestSuite) Test_OwnerOfAndTokenURI() {
	owner := common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	s.backend.outputs["ownerOf"] = []interface{}{owner}
	s.backend.outputs["tokenURI"] = []interface{}{"ipfs://QmMeta"}
	s.backend.outputs["getXRPLNftId"] = []interface{}{"ABCD"}

	actualOwner, err := s.contract.OwnerOf(context.Background(), big.NewInt(1))
	s.Nil(err)
	s.Equal(owner, actualOwner)

	uri, err := s.contract.TokenURI(context.Background(), big.NewInt(1))
	s.Nil(err)
	s.Equal("ipfs://QmMeta", uri)

	sourceAssetID, err := s.contract.SourceAssetID(context.Background(), big.NewInt(1))
	s.Nil(err)
	s.Equal("ABCD", sourceAssetID)
}
