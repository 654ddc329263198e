// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package app

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ChainSafe/nft-bridge/chains"
	"github.com/ChainSafe/nft-bridge/chains/evm"
	"github.com/ChainSafe/nft-bridge/chains/evm/bridge"
	"github.com/ChainSafe/nft-bridge/chains/evm/calls/contracts/wrapper"
	"github.com/ChainSafe/nft-bridge/chains/evm/calls/evmclient"
	"github.com/ChainSafe/nft-bridge/chains/xrpl"
	"github.com/ChainSafe/nft-bridge/chains/xrpl/batch"
	"github.com/ChainSafe/nft-bridge/chains/xrpl/connection"
	"github.com/ChainSafe/nft-bridge/chains/xrpl/faucet"
	"github.com/ChainSafe/nft-bridge/chains/xrpl/minter"
	"github.com/ChainSafe/nft-bridge/chains/xrpl/reserve"
	"github.com/ChainSafe/nft-bridge/config"
	"github.com/ChainSafe/nft-bridge/health"
	"github.com/ChainSafe/nft-bridge/lvldb"
	"github.com/ChainSafe/nft-bridge/metrics"
	"github.com/ChainSafe/nft-bridge/store"
	"github.com/ChainSafe/nft-bridge/uploader"
)

// Core owns the ledger session, the destination chain client and every
// component built on them. It is created once at startup.
type Core struct {
	config     *config.Config
	xrplConfig *xrpl.XRPLConfig
	evmConfig  *evm.EVMConfig

	db        *lvldb.LVLDB
	session   *connection.Connection
	evmClient *evmclient.EVMClient
	telemetry *metrics.Telemetry
	shutdown  metrics.ShutdownFunc

	reserve      *reserve.Accessor
	mints        *store.MintStore
	minter       *minter.Minter
	orchestrator *batch.Orchestrator
	bridge       *bridge.Bridge
	fetcher      *uploader.GatewayFetcher
	faucet       *faucet.FaucetAPI
}

// NewCore connects to the configured domains. The ledger domain is required.
// Without an EVM domain the bridge is created disconnected.
func NewCore(ctx context.Context, configuration *config.Config, blockstorePath string) (core *Core, err error) {
	rawXRPLConfig, ok := configuration.DomainConfig(config.XRPLDomain)
	if !ok {
		return nil, fmt.Errorf("no %s domain configured", config.XRPLDomain)
	}
	xrplConfig, err := xrpl.NewXRPLConfig(rawXRPLConfig)
	if err != nil {
		return nil, err
	}

	c := &Core{
		config:     configuration,
		xrplConfig: xrplConfig,
	}
	defer func() {
		if err != nil {
			c.Close()
		}
	}()

	meter, shutdown, err := metrics.DefaultMeter(ctx, configuration.CoreConfig.OpenTelemetryCollectorURL)
	if err != nil {
		return nil, err
	}
	c.shutdown = shutdown
	c.telemetry, err = metrics.NewTelemetry(meter, configuration.CoreConfig.Env)
	if err != nil {
		return nil, err
	}

	if blockstorePath == "" {
		blockstorePath = configuration.CoreConfig.BlockstorePath
	}
	c.db, err = lvldb.NewLvlDB(blockstorePath)
	if err != nil {
		return nil, err
	}
	c.mints = store.NewMintStore(c.db)
	wraps := store.NewWrapStore(c.db)

	opts := connection.DefaultOpts()
	opts.MaxFee = xrplConfig.MaxFee
	opts.LedgerOffset = xrplConfig.LedgerOffset
	opts.PollInterval = xrplConfig.PollInterval
	c.session, err = connection.NewConnection(ctx, xrplConfig.GeneralChainConfig.Endpoint, xrplConfig.Network, xrplConfig.Wallet, opts)
	if err != nil {
		return nil, err
	}
	log.Info().Str("domain", xrplConfig.GeneralChainConfig.Name).Str("account", xrplConfig.Wallet.Address).Msg("Registered ledger domain")

	c.reserve = reserve.NewAccessor(c.session, xrplConfig.Wallet.Address)
	c.minter = minter.NewMinter(c.session, c.reserve, c.mints, c.telemetry, xrplConfig.Taxon)
	c.orchestrator = batch.NewOrchestrator(c.minter, c.telemetry, configuration.CoreConfig.BatchInterval)
	c.faucet = faucet.NewFaucetAPI(xrplConfig.FaucetURL, xrplConfig.Network)

	metadataUploader, err := uploader.NewUploader(configuration.CoreConfig.UploaderConfig)
	if err != nil {
		return nil, err
	}
	c.fetcher = uploader.NewGatewayFetcher(configuration.CoreConfig.UploaderConfig.Gateways, configuration.CoreConfig.UploaderConfig.FetchTimeout)

	rawEVMConfig, ok := configuration.DomainConfig(config.EVMDomain)
	if !ok {
		log.Warn().Msg("No EVM domain configured, bridge operations are unavailable")
		c.bridge = bridge.NewBridge(nil, nil, wraps, metadataUploader, c.fetcher, c.telemetry, bridge.Opts{})
		return c, nil
	}

	c.evmConfig, err = evm.NewEVMConfig(rawEVMConfig)
	if err != nil {
		return nil, err
	}
	c.evmClient, err = evmclient.NewEVMClient(ctx, c.evmConfig.GeneralChainConfig.Endpoint, c.evmConfig.GeneralChainConfig.Key, evmclient.Opts{
		MaxGasPrice:   c.evmConfig.MaxGasPrice,
		GasMultiplier: c.evmConfig.GasMultiplier,
		PollInterval:  c.evmConfig.ReceiptPollInterval,
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("domain", c.evmConfig.GeneralChainConfig.Name).Str("contract", c.evmConfig.Contract.Hex()).Msg("Registered EVM domain")

	contract := wrapper.NewWrapperContract(c.evmClient, c.evmConfig.Contract)
	c.bridge = bridge.NewBridge(c.evmClient, contract, wraps, metadataUploader, c.fetcher, c.telemetry, bridge.Opts{
		WrapGasLimit:       c.evmConfig.WrapGasLimit,
		UnwrapGasLimit:     c.evmConfig.UnwrapGasLimit,
		PlaceholderBaseURI: c.evmConfig.PlaceholderBaseURI,
		NativeSymbol:       c.evmConfig.NativeSymbol,
	})
	return c, nil
}

func (c *Core) txContext(ctx context.Context, n int) (context.Context, context.CancelFunc) {
	timeout := c.config.CoreConfig.TxTimeout
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, time.Duration(n)*timeout)
}

func (c *Core) Mint(ctx context.Context, req minter.MintRequest) minter.MintResult {
	ctx, cancel := c.txContext(ctx, 1)
	defer cancel()
	return c.minter.Mint(ctx, req)
}

// BatchMint allows one transaction timeout per item.
func (c *Core) BatchMint(ctx context.Context, reqs []minter.MintRequest) (*batch.Report, error) {
	ctx, cancel := c.txContext(ctx, len(reqs)+1)
	defer cancel()
	return c.orchestrator.BatchMint(ctx, reqs)
}

func (c *Core) QueryAsset(ctx context.Context, assetID string) (*minter.AssetRecord, error) {
	return c.minter.QueryAsset(ctx, assetID)
}

func (c *Core) QueryHolderAssets(ctx context.Context, holder string) ([]minter.AssetRecord, error) {
	return c.minter.QueryHolderAssets(ctx, holder)
}

func (c *Core) CheckReserve(ctx context.Context) (reserve.Balance, error) {
	return c.minter.CheckReserve(ctx)
}

// Balance returns the balance of any ledger account in XRP.
func (c *Core) Balance(ctx context.Context, account string) (string, error) {
	drops, err := c.reserve.Balance(ctx, account)
	if err != nil {
		return "", err
	}
	return reserve.DropsToXRP(drops), nil
}

// MintLog returns the persisted record of a mint transaction.
func (c *Core) MintLog(txHash string) (*store.MintRecord, error) {
	return c.mints.Mint(txHash)
}

func (c *Core) Wrap(ctx context.Context, req bridge.WrapRequest) bridge.WrapResult {
	ctx, cancel := c.txContext(ctx, 1)
	defer cancel()
	return c.bridge.Wrap(ctx, req)
}

func (c *Core) Unwrap(ctx context.Context, tokenID *big.Int) (*bridge.UnwrapResult, error) {
	ctx, cancel := c.txContext(ctx, 1)
	defer cancel()
	return c.bridge.Unwrap(ctx, tokenID)
}

func (c *Core) WrappedInfo(ctx context.Context, tokenID *big.Int) (*bridge.WrappedInfo, error) {
	return c.bridge.WrappedInfo(ctx, tokenID)
}

func (c *Core) EstimateGas(ctx context.Context, op bridge.Operation) (*bridge.GasEstimate, error) {
	return c.bridge.EstimateGas(ctx, op)
}

func (c *Core) BridgeStatus(ctx context.Context) bridge.Status {
	return c.bridge.Status(ctx)
}

func (c *Core) FundWallet(ctx context.Context, account string) (*faucet.Funding, error) {
	return c.faucet.FundWallet(ctx, account)
}

// Availability probes the gateways serving an IPFS metadata URI.
func (c *Core) Availability(ctx context.Context, uri string) (uploader.Availability, error) {
	cid := uploader.ExtractCID(uri)
	if cid == "" {
		return uploader.Availability{}, &chains.ValidationError{Field: "uri", Reason: "not an IPFS URI"}
	}
	return c.fetcher.Availability(ctx, cid), nil
}

// HealthCheckers returns the connections reported by the health endpoint.
// The bridge is only reported when an EVM domain is configured.
func (c *Core) HealthCheckers() map[string]health.ConnectionChecker {
	checkers := map[string]health.ConnectionChecker{
		"ledger": c.session,
	}
	if c.evmConfig != nil {
		checkers["bridge"] = c.bridge
	}
	return checkers
}

// Close releases the connections and the key-value store.
func (c *Core) Close() {
	if c.session != nil {
		if err := c.session.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed closing ledger session")
		}
	}
	if c.evmClient != nil {
		c.evmClient.Close()
	}
	if c.db != nil {
		if err := c.db.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed closing key-value store")
		}
	}
	if c.shutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = c.shutdown(ctx)
	}
}
