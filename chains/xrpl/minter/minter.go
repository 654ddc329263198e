// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package minter

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"github.com/ChainSafe/nft-bridge/chains"
	"github.com/ChainSafe/nft-bridge/chains/xrpl/address"
	"github.com/ChainSafe/nft-bridge/chains/xrpl/connection"
	"github.com/ChainSafe/nft-bridge/chains/xrpl/reserve"
	"github.com/ChainSafe/nft-bridge/store"
)

const (
	TfBurnable     uint32 = 0x00000001
	TfOnlyXRP      uint32 = 0x00000002
	TfTransferable uint32 = 0x00000008

	MaxTransferFee uint32 = 50000
	// MaxURILength is the ledger limit on the decoded URI field in bytes.
	MaxURILength = 256

	holderPageLimit = 400
)

type Session interface {
	Request(ctx context.Context, command string, params map[string]interface{}, result interface{}) error
	SubmitAndWait(ctx context.Context, tx map[string]interface{}) (*connection.TxResponse, error)
	Account() string
}

type ReserveChecker interface {
	Check(ctx context.Context) (reserve.Balance, error)
}

type MintLogger interface {
	StoreMint(record store.MintRecord) error
}

type Metrics interface {
	TrackMint(ctx context.Context, code string, duration time.Duration)
}

type MintRequest struct {
	Metadata    chains.AssetMetadata `json:"metadata"`
	TransferFee *uint32              `json:"transferFee,omitempty"`
	Flags       *uint32              `json:"flags,omitempty"`
	Recipient   string               `json:"recipient,omitempty"`
	Taxon       *uint32              `json:"taxon,omitempty"`
}

// Validate checks the request without touching the network.
func (r *MintRequest) Validate() error {
	if r.TransferFee != nil && *r.TransferFee > MaxTransferFee {
		return &chains.ValidationError{Field: "transferFee", Reason: fmt.Sprintf("must be between 0 and %d", MaxTransferFee)}
	}
	if r.TransferFee != nil && *r.TransferFee > 0 && r.flags()&TfTransferable == 0 {
		return &chains.ValidationError{Field: "transferFee", Reason: "requires the transferable flag"}
	}
	if r.Recipient != "" && !address.IsValidClassicAddress(r.Recipient) {
		return &chains.ValidationError{Field: "recipient", Reason: "not a classic address"}
	}
	return r.Metadata.Validate()
}

func (r *MintRequest) flags() uint32 {
	if r.Flags == nil {
		return TfTransferable
	}
	return *r.Flags
}

type MintResult struct {
	Success   bool   `json:"success"`
	TxHash    string `json:"txHash,omitempty"`
	AssetID   string `json:"assetId,omitempty"`
	Fee       string `json:"fee,omitempty"`
	ErrorCode string `json:"errorCode,omitempty"`
	Err       error  `json:"-"`
}

func failure(err error) MintResult {
	return MintResult{
		ErrorCode: chains.ErrorCode(err),
		Err:       err,
	}
}

type AssetRecord struct {
	AssetID     string                `json:"assetId"`
	Owner       string                `json:"owner"`
	Issuer      string                `json:"issuer"`
	Flags       uint32                `json:"flags"`
	TransferFee uint32                `json:"transferFee"`
	Taxon       uint32                `json:"taxon"`
	Serial      uint32                `json:"serial"`
	URI         string                `json:"uri"`
	Metadata    *chains.AssetMetadata `json:"metadata,omitempty"`
	IsBurned    bool                  `json:"isBurned"`
}

type Minter struct {
	session Session
	reserve ReserveChecker
	mints   MintLogger
	metrics Metrics
	taxon   uint32
	log     zerolog.Logger

	// serializes submissions so concurrent callers never race the account sequence
	submitSlot *semaphore.Weighted
}

func NewMinter(session Session, reserve ReserveChecker, mints MintLogger, metrics Metrics, taxon uint32) *Minter {
	return &Minter{
		session:    session,
		reserve:    reserve,
		mints:      mints,
		metrics:    metrics,
		taxon:      taxon,
		log:        log.With().Str("component", "minter").Logger(),
		submitSlot: semaphore.NewWeighted(1),
	}
}

// Mint issues a single asset on the source ledger and waits for validation.
func (m *Minter) Mint(ctx context.Context, req MintRequest) MintResult {
	start := time.Now()
	result := m.mint(ctx, req)
	if m.metrics != nil {
		m.metrics.TrackMint(ctx, result.ErrorCode, time.Since(start))
	}
	return result
}

func (m *Minter) mint(ctx context.Context, req MintRequest) MintResult {
	if m.session == nil {
		return failure(&chains.NotInitializedError{Component: "ledger session"})
	}
	if err := req.Validate(); err != nil {
		return failure(err)
	}
	uri, err := EncodeURI(&req.Metadata)
	if err != nil {
		return failure(err)
	}

	tx := m.transaction(req, uri)

	if err := m.submitSlot.Acquire(ctx, 1); err != nil {
		return failure(&chains.NetworkError{Op: "wait for submission slot", Err: err})
	}
	resp, err := m.session.SubmitAndWait(ctx, tx)
	m.submitSlot.Release(1)
	if err != nil {
		m.log.Error().Err(err).Msgf("Failed minting %s", req.Metadata.Name)
		return failure(err)
	}

	code, err := resp.TransactionResult()
	if err != nil {
		return failure(err)
	}
	if code != "tesSUCCESS" {
		return failure(&chains.LedgerRejectedError{Code: code, TxHash: resp.Hash})
	}

	assetID, ok := RecoverAssetID(resp.Meta)
	if !ok {
		m.log.Warn().Str("tx", resp.Hash).Msg("Minted asset id could not be recovered from metadata")
	}
	m.log.Info().Str("tx", resp.Hash).Str("asset", assetID).Msgf("Minted %s", req.Metadata.Name)

	if m.mints != nil {
		err = m.mints.StoreMint(store.MintRecord{TxHash: resp.Hash, AssetID: assetID, Fee: resp.Fee})
		if err != nil {
			m.log.Warn().Err(err).Str("tx", resp.Hash).Msg("Failed logging mint")
		}
	}

	return MintResult{
		Success: true,
		TxHash:  resp.Hash,
		AssetID: assetID,
		Fee:     resp.Fee,
	}
}

func (m *Minter) transaction(req MintRequest, uri string) map[string]interface{} {
	taxon := m.taxon
	if req.Taxon != nil {
		taxon = *req.Taxon
	}

	tx := map[string]interface{}{
		"TransactionType": "NFTokenMint",
		"NFTokenTaxon":    taxon,
		"Flags":           req.flags(),
		"URI":             uri,
	}
	if req.TransferFee != nil {
		tx["TransferFee"] = *req.TransferFee
	}
	if req.Recipient != "" {
		// a Destination is only accepted together with an offer amount
		tx["Destination"] = req.Recipient
		tx["Amount"] = "0"
	}
	return tx
}

// QueryAsset reads the current state of an asset.
func (m *Minter) QueryAsset(ctx context.Context, assetID string) (*AssetRecord, error) {
	if m.session == nil {
		return nil, &chains.NotInitializedError{Component: "ledger session"}
	}
	if !chains.IsAssetID(assetID) {
		return nil, &chains.ValidationError{Field: "assetId", Reason: "must be 64 hex characters"}
	}

	var info struct {
		NFTID       string `json:"nft_id"`
		Owner       string `json:"owner"`
		Issuer      string `json:"issuer"`
		Flags       uint32 `json:"flags"`
		TransferFee uint32 `json:"transfer_fee"`
		Taxon       uint32 `json:"nft_taxon"`
		Serial      uint32 `json:"nft_serial"`
		URI         string `json:"uri"`
		IsBurned    bool   `json:"is_burned"`
	}
	err := m.session.Request(ctx, "nft_info", map[string]interface{}{"nft_id": assetID}, &info)
	if err != nil {
		if chains.ErrorCode(err) == "objectNotFound" {
			return nil, &chains.NotFoundError{Kind: "asset", ID: assetID}
		}
		return nil, err
	}

	return &AssetRecord{
		AssetID:     info.NFTID,
		Owner:       info.Owner,
		Issuer:      info.Issuer,
		Flags:       info.Flags,
		TransferFee: info.TransferFee,
		Taxon:       info.Taxon,
		Serial:      info.Serial,
		URI:         info.URI,
		Metadata:    DecodeURI(info.URI),
		IsBurned:    info.IsBurned,
	}, nil
}

// QueryHolderAssets lists every asset held by an account, following pagination.
func (m *Minter) QueryHolderAssets(ctx context.Context, holder string) ([]AssetRecord, error) {
	if m.session == nil {
		return nil, &chains.NotInitializedError{Component: "ledger session"}
	}
	if !address.IsValidClassicAddress(holder) {
		return nil, &chains.ValidationError{Field: "address", Reason: "not a classic address"}
	}

	records := make([]AssetRecord, 0)
	var marker interface{}
	for {
		params := map[string]interface{}{
			"account":      holder,
			"ledger_index": "validated",
			"limit":        holderPageLimit,
		}
		if marker != nil {
			params["marker"] = marker
		}

		var page struct {
			AccountNFTs []struct {
				NFTokenID    string `json:"NFTokenID"`
				Issuer       string `json:"Issuer"`
				Flags        uint32 `json:"Flags"`
				TransferFee  uint32 `json:"TransferFee"`
				NFTokenTaxon uint32 `json:"NFTokenTaxon"`
				Serial       uint32 `json:"nft_serial"`
				URI          string `json:"URI"`
			} `json:"account_nfts"`
			Marker interface{} `json:"marker"`
		}
		err := m.session.Request(ctx, "account_nfts", params, &page)
		if err != nil {
			if chains.ErrorCode(err) == "actNotFound" {
				return nil, &chains.NotFoundError{Kind: "account", ID: holder}
			}
			return nil, err
		}

		for _, nft := range page.AccountNFTs {
			records = append(records, AssetRecord{
				AssetID:     nft.NFTokenID,
				Owner:       holder,
				Issuer:      nft.Issuer,
				Flags:       nft.Flags,
				TransferFee: nft.TransferFee,
				Taxon:       nft.NFTokenTaxon,
				Serial:      nft.Serial,
				URI:         nft.URI,
				Metadata:    DecodeURI(nft.URI),
			})
		}

		if page.Marker == nil {
			return records, nil
		}
		marker = page.Marker
	}
}

func (m *Minter) CheckReserve(ctx context.Context) (reserve.Balance, error) {
	if m.reserve == nil {
		return reserve.Balance{}, &chains.NotInitializedError{Component: "ledger session"}
	}
	return m.reserve.Check(ctx)
}

// EncodeURI encodes metadata as the upper-case hex URI field of a mint.
func EncodeURI(metadata *chains.AssetMetadata) (string, error) {
	data, err := metadata.Encode()
	if err != nil {
		return "", err
	}
	if len(data) > MaxURILength {
		return "", &chains.ValidationError{
			Field:  "metadata",
			Reason: fmt.Sprintf("encoded metadata is %d bytes, the ledger accepts at most %d", len(data), MaxURILength),
		}
	}
	return strings.ToUpper(hex.EncodeToString(data)), nil
}

// DecodeURI decodes metadata embedded in a hex URI field, returning nil when
// the URI does not hold a metadata document.
func DecodeURI(uri string) *chains.AssetMetadata {
	data, err := hex.DecodeString(uri)
	if err != nil {
		return nil
	}
	metadata, err := chains.DecodeMetadata(data)
	if err != nil {
		return nil
	}
	return metadata
}
