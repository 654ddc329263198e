// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package bridge

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ChainSafe/nft-bridge/chains"
	"github.com/ChainSafe/nft-bridge/chains/evm/calls/contracts/wrapper"
	"github.com/ChainSafe/nft-bridge/chains/evm/calls/events"
	"github.com/ChainSafe/nft-bridge/chains/xrpl/address"
	"github.com/ChainSafe/nft-bridge/store"
)

// EtherDecimals is the number of decimals of the native currency of every
// supported destination chain.
const EtherDecimals = 18

type Operation string

const (
	WrapOperation   Operation = "wrap"
	UnwrapOperation Operation = "unwrap"
)

var networkNames = map[int64]string{
	14:  "flare",
	16:  "coston",
	19:  "songbird",
	114: "coston2",
}

// NetworkName returns the well known name of a chain id or "unknown".
func NetworkName(chainID *big.Int) string {
	if chainID == nil || !chainID.IsInt64() {
		return "unknown"
	}
	if name, ok := networkNames[chainID.Int64()]; ok {
		return name
	}
	return "unknown"
}

type Client interface {
	From() common.Address
	CachedChainID() *big.Int
	GasPrice(ctx context.Context) (*big.Int, error)
	Balance(ctx context.Context) (*big.Int, error)
	WaitAndReturnTxReceipt(ctx context.Context, h common.Hash) (*types.Receipt, error)
}

type Contract interface {
	Address() common.Address
	Wrap(ctx context.Context, sourceAssetID string, metadataURI string, recipient common.Address, gasLimit uint64) (*types.Transaction, error)
	Unwrap(ctx context.Context, tokenID *big.Int, gasLimit uint64) (*types.Transaction, error)
	SourceAssetID(ctx context.Context, tokenID *big.Int) (string, error)
	WrapperInfo(ctx context.Context, tokenID *big.Int) (*wrapper.WrapperInfo, error)
	OwnerOf(ctx context.Context, tokenID *big.Int) (common.Address, error)
	TokenURI(ctx context.Context, tokenID *big.Int) (string, error)
}

type WrapStatusStorer interface {
	StoreWrapStatus(sourceAssetID string, status store.WrapStatus) error
	WrapStatus(sourceAssetID string) (store.WrapStatus, error)
	ReserveWrap(sourceAssetID string) (store.WrapStatus, bool, error)
}

type MetadataUploader interface {
	Upload(ctx context.Context, name string, data []byte) (string, error)
}

type MetadataFetcher interface {
	FetchMetadata(ctx context.Context, uri string) (*chains.AssetMetadata, error)
}

type Metrics interface {
	TrackWrap(ctx context.Context, code string, duration time.Duration)
	TrackUnwrap(ctx context.Context, code string, duration time.Duration)
}

type WrapRequest struct {
	SourceAssetID      string               `json:"sourceAssetId"`
	SourceOwnerAddress string               `json:"sourceOwnerAddress,omitempty"`
	RecipientAddress   string               `json:"recipientAddress"`
	Metadata           chains.AssetMetadata `json:"metadata"`
}

func (r *WrapRequest) Validate() error {
	if !chains.IsAssetID(r.SourceAssetID) {
		return &chains.ValidationError{Field: "sourceAssetId", Reason: "must be 64 hex characters"}
	}
	if r.SourceOwnerAddress != "" && !address.IsValidClassicAddress(r.SourceOwnerAddress) {
		return &chains.ValidationError{Field: "sourceOwnerAddress", Reason: "not a classic address"}
	}
	if !common.IsHexAddress(r.RecipientAddress) {
		return &chains.ValidationError{Field: "recipientAddress", Reason: "not a hex address"}
	}
	return r.Metadata.Validate()
}

type WrapResult struct {
	Success            bool     `json:"success"`
	DestinationTokenID *big.Int `json:"destinationTokenId,omitempty"`
	TxHash             string   `json:"txHash,omitempty"`
	GasUsed            uint64   `json:"gasUsed,omitempty"`
	ErrorCode          string   `json:"errorCode,omitempty"`
	Err                error    `json:"-"`
}

func failure(err error) WrapResult {
	return WrapResult{ErrorCode: chains.ErrorCode(err), Err: err}
}

type UnwrapResult struct {
	SourceAssetID string `json:"sourceAssetId"`
	TxHash        string `json:"txHash"`
	GasUsed       uint64 `json:"gasUsed"`
}

type WrappedInfo struct {
	SourceAssetID string                `json:"sourceAssetId"`
	IsWrapped     bool                  `json:"isWrapped"`
	Owner         string                `json:"owner"`
	MetadataURI   string                `json:"metadataUri"`
	Metadata      *chains.AssetMetadata `json:"metadata,omitempty"`
}

type GasEstimate struct {
	GasLimit      uint64   `json:"gasLimit"`
	GasPrice      *big.Int `json:"gasPrice"`
	EstimatedCost *big.Int `json:"estimatedCost"`
	FormattedCost string   `json:"formattedCost"`
}

type Status struct {
	Connected       bool   `json:"connected"`
	Network         string `json:"network,omitempty"`
	ChainID         string `json:"chainId,omitempty"`
	WalletAddress   string `json:"walletAddress,omitempty"`
	ContractAddress string `json:"contractAddress,omitempty"`
	Balance         string `json:"balance,omitempty"`
}

type Opts struct {
	WrapGasLimit       uint64
	UnwrapGasLimit     uint64
	PlaceholderBaseURI string
	NativeSymbol       string
}

// Bridge mirrors source ledger assets as custodial tokens on the destination chain.
type Bridge struct {
	client   Client
	contract Contract
	wraps    WrapStatusStorer
	uploader MetadataUploader
	fetcher  MetadataFetcher
	metrics  Metrics
	opts     Opts
	log      zerolog.Logger
}

// NewBridge creates a bridge. A nil client or contract yields a disconnected
// bridge whose operations fail with a NotInitializedError.
func NewBridge(
	client Client,
	contract Contract,
	wraps WrapStatusStorer,
	uploader MetadataUploader,
	fetcher MetadataFetcher,
	metrics Metrics,
	opts Opts,
) *Bridge {
	return &Bridge{
		client:   client,
		contract: contract,
		wraps:    wraps,
		uploader: uploader,
		fetcher:  fetcher,
		metrics:  metrics,
		opts:     opts,
		log:      log.With().Str("component", "bridge").Logger(),
	}
}

func (b *Bridge) IsConnected() bool {
	return b.client != nil && b.contract != nil
}

// Status reports the destination chain connection and never fails.
func (b *Bridge) Status(ctx context.Context) Status {
	if !b.IsConnected() {
		return Status{Connected: false}
	}

	balance, err := b.client.Balance(ctx)
	if err != nil {
		b.log.Error().Err(err).Msg("Failed reading bridge status")
		return Status{Connected: false}
	}

	chainID := b.client.CachedChainID()
	return Status{
		Connected:       true,
		Network:         NetworkName(chainID),
		ChainID:         chainID.String(),
		WalletAddress:   b.client.From().Hex(),
		ContractAddress: b.contract.Address().Hex(),
		Balance:         fmt.Sprintf("%s %s", chains.FormatUnits(balance, EtherDecimals), b.opts.NativeSymbol),
	}
}

// Wrap mints a mirror token for a source asset. The source asset is
// reserved as pending before any upload or submission, and only one
// concurrent caller can take that reservation.
func (b *Bridge) Wrap(ctx context.Context, req WrapRequest) WrapResult {
	start := time.Now()
	result := b.wrap(ctx, req)
	if b.metrics != nil {
		b.metrics.TrackWrap(ctx, result.ErrorCode, time.Since(start))
	}
	return result
}

func (b *Bridge) wrap(ctx context.Context, req WrapRequest) WrapResult {
	if !b.IsConnected() {
		return failure(&chains.NotInitializedError{Component: "destination chain client"})
	}
	if err := req.Validate(); err != nil {
		return failure(err)
	}

	status, reserved, err := b.wraps.ReserveWrap(req.SourceAssetID)
	if err != nil {
		return failure(err)
	}
	if !reserved {
		return failure(&chains.AlreadyWrappedError{SourceAssetID: req.SourceAssetID, Status: string(status)})
	}

	uri, err := b.metadataURI(ctx, req)
	if err != nil {
		b.markWrap(req.SourceAssetID, store.FailedWrap)
		return failure(err)
	}

	tx, err := b.contract.Wrap(ctx, req.SourceAssetID, uri, common.HexToAddress(req.RecipientAddress), b.opts.WrapGasLimit)
	if err != nil {
		b.markWrap(req.SourceAssetID, store.FailedWrap)
		return failure(classifyTxError(err))
	}
	b.log.Info().Str("tx", tx.Hash().Hex()).Str("sourceAsset", req.SourceAssetID).Msg("Wrap transaction sent")

	receipt, err := b.client.WaitAndReturnTxReceipt(ctx, tx.Hash())
	if err != nil {
		// the transaction may still be included, so the asset stays pending
		b.log.Warn().Err(err).Str("tx", tx.Hash().Hex()).Msg("Wrap confirmation unknown")
		return failure(err)
	}
	if receipt.Status == types.ReceiptStatusFailed {
		b.markWrap(req.SourceAssetID, store.FailedWrap)
		return failure(&chains.ContractRevertedError{TxHash: tx.Hash().Hex()})
	}

	b.markWrap(req.SourceAssetID, store.WrappedWrap)
	tokenID, ok := events.TokenIDFromReceipt(receipt, b.contract.Address())
	if !ok {
		b.log.Warn().Str("tx", tx.Hash().Hex()).Msg("Mirror token id could not be recovered from logs")
	} else {
		b.log.Info().Str("tx", tx.Hash().Hex()).Msgf("Wrapped %s as token %s", req.SourceAssetID, tokenID)
	}

	return WrapResult{
		Success:            true,
		DestinationTokenID: tokenID,
		TxHash:             tx.Hash().Hex(),
		GasUsed:            receipt.GasUsed,
	}
}

// Unwrap retires a mirror token and returns the source asset it represented,
// as recorded by the contract.
func (b *Bridge) Unwrap(ctx context.Context, tokenID *big.Int) (*UnwrapResult, error) {
	start := time.Now()
	result, err := b.unwrap(ctx, tokenID)
	if b.metrics != nil {
		b.metrics.TrackUnwrap(ctx, chains.ErrorCode(err), time.Since(start))
	}
	return result, err
}

func (b *Bridge) unwrap(ctx context.Context, tokenID *big.Int) (*UnwrapResult, error) {
	if !b.IsConnected() {
		return nil, &chains.NotInitializedError{Component: "destination chain client"}
	}
	if tokenID == nil || tokenID.Sign() < 0 {
		return nil, &chains.ValidationError{Field: "tokenId", Reason: "must be a non negative integer"}
	}

	sourceAssetID, err := b.contract.SourceAssetID(ctx, tokenID)
	if err != nil {
		return nil, classifyCallError(err, tokenID)
	}

	tx, err := b.contract.Unwrap(ctx, tokenID, b.opts.UnwrapGasLimit)
	if err != nil {
		return nil, classifyTxError(err)
	}
	receipt, err := b.client.WaitAndReturnTxReceipt(ctx, tx.Hash())
	if err != nil {
		return nil, err
	}
	if receipt.Status == types.ReceiptStatusFailed {
		return nil, &chains.ContractRevertedError{TxHash: tx.Hash().Hex()}
	}

	recorded, err := b.contract.SourceAssetID(ctx, tokenID)
	if err == nil && recorded != "" {
		sourceAssetID = recorded
	}
	if sourceAssetID != "" {
		b.markWrap(sourceAssetID, store.UnwrappedWrap)
	}
	b.log.Info().Str("tx", tx.Hash().Hex()).Msgf("Unwrapped token %s into %s", tokenID, sourceAssetID)

	return &UnwrapResult{
		SourceAssetID: sourceAssetID,
		TxHash:        tx.Hash().Hex(),
		GasUsed:       receipt.GasUsed,
	}, nil
}

// WrappedInfo reads the mirror state of a token. Metadata is omitted when
// the token URI cannot be dereferenced.
func (b *Bridge) WrappedInfo(ctx context.Context, tokenID *big.Int) (*WrappedInfo, error) {
	if !b.IsConnected() {
		return nil, &chains.NotInitializedError{Component: "destination chain client"}
	}
	if tokenID == nil || tokenID.Sign() < 0 {
		return nil, &chains.ValidationError{Field: "tokenId", Reason: "must be a non negative integer"}
	}

	info, err := b.contract.WrapperInfo(ctx, tokenID)
	if err != nil {
		return nil, classifyCallError(err, tokenID)
	}
	owner, err := b.contract.OwnerOf(ctx, tokenID)
	if err != nil {
		return nil, classifyCallError(err, tokenID)
	}
	uri, err := b.contract.TokenURI(ctx, tokenID)
	if err != nil {
		return nil, classifyCallError(err, tokenID)
	}

	wrapped := &WrappedInfo{
		SourceAssetID: info.SourceAssetID,
		IsWrapped:     info.IsWrapped,
		Owner:         owner.Hex(),
		MetadataURI:   uri,
	}
	if uri != "" && b.fetcher != nil {
		metadata, err := b.fetcher.FetchMetadata(ctx, uri)
		if err != nil {
			b.log.Warn().Err(err).Msgf("Could not fetch metadata from %s", uri)
		} else {
			wrapped.Metadata = metadata
		}
	}
	return wrapped, nil
}

// EstimateGas prices an operation with its configured gas limit and the
// current gas price.
func (b *Bridge) EstimateGas(ctx context.Context, op Operation) (*GasEstimate, error) {
	if !b.IsConnected() {
		return nil, &chains.NotInitializedError{Component: "destination chain client"}
	}

	var gasLimit uint64
	switch op {
	case WrapOperation:
		gasLimit = b.opts.WrapGasLimit
	case UnwrapOperation:
		gasLimit = b.opts.UnwrapGasLimit
	default:
		return nil, &chains.ValidationError{Field: "operation", Reason: fmt.Sprintf("unknown operation %s", op)}
	}

	gasPrice, err := b.client.GasPrice(ctx)
	if err != nil {
		return nil, err
	}
	cost := new(big.Int).Mul(new(big.Int).SetUint64(gasLimit), gasPrice)

	return &GasEstimate{
		GasLimit:      gasLimit,
		GasPrice:      gasPrice,
		EstimatedCost: cost,
		FormattedCost: fmt.Sprintf("%s %s", chains.FormatUnits(cost, EtherDecimals), b.opts.NativeSymbol),
	}, nil
}

func (b *Bridge) metadataURI(ctx context.Context, req WrapRequest) (string, error) {
	data, err := req.Metadata.Encode()
	if err != nil {
		return "", err
	}
	if b.uploader == nil {
		return PlaceholderURI(b.opts.PlaceholderBaseURI, data), nil
	}
	return b.uploader.Upload(ctx, fmt.Sprintf("%s.json", req.SourceAssetID), data)
}

func (b *Bridge) markWrap(sourceAssetID string, status store.WrapStatus) {
	err := b.wraps.StoreWrapStatus(sourceAssetID, status)
	if err != nil {
		b.log.Error().Err(err).Str("sourceAsset", sourceAssetID).Msgf("Failed storing wrap status %s", status)
	}
}

// PlaceholderURI derives a deterministic metadata URI from the content hash
// of the metadata document.
func PlaceholderURI(baseURI string, data []byte) string {
	id := hexutil.Encode(crypto.Keccak256(data))[:10]
	return fmt.Sprintf("%s/%s", strings.TrimRight(baseURI, "/"), id)
}

func classifyTxError(err error) error {
	if chains.ErrorCode(err) != chains.UnknownErrorCode {
		return err
	}
	if strings.Contains(err.Error(), "revert") {
		return &chains.ContractRevertedError{Reason: err.Error()}
	}
	return &chains.NetworkError{Op: "send transaction", Err: err}
}

func classifyCallError(err error, tokenID *big.Int) error {
	if chains.ErrorCode(err) != chains.UnknownErrorCode {
		return err
	}
	if strings.Contains(err.Error(), "revert") {
		return &chains.NotFoundError{Kind: "wrapped token", ID: tokenID.String()}
	}
	return &chains.NetworkError{Op: "contract call", Err: err}
}
