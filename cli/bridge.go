// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/ChainSafe/nft-bridge/app"
	"github.com/ChainSafe/nft-bridge/chains"
	"github.com/ChainSafe/nft-bridge/chains/evm/bridge"
)

var bridgeCMD = &cobra.Command{
	Use:   "bridge",
	Short: "Mirror source ledger assets on the destination chain",
}

var wrapCMD = &cobra.Command{
	Use:   "wrap",
	Short: "Mint a wrapped token representing a source ledger asset",
	Long:  "The wrap command uploads the asset metadata and mints its mirror token to the recipient",
	RunE:  wrap,
}

var unwrapCMD = &cobra.Command{
	Use:   "unwrap [token-id]",
	Short: "Burn a wrapped token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tokenID, err := parseTokenID(args[0])
		if err != nil {
			return err
		}

		core, err := app.Initialize(cmd.Context())
		if err != nil {
			return err
		}
		defer core.Close()

		result, err := core.Unwrap(cmd.Context(), tokenID)
		if err != nil {
			return err
		}
		return printResult(result)
	},
}

var wrappedInfoCMD = &cobra.Command{
	Use:   "info [token-id]",
	Short: "Show the source asset and owner of a wrapped token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tokenID, err := parseTokenID(args[0])
		if err != nil {
			return err
		}

		core, err := app.Initialize(cmd.Context())
		if err != nil {
			return err
		}
		defer core.Close()

		info, err := core.WrappedInfo(cmd.Context(), tokenID)
		if err != nil {
			return err
		}
		return printResult(info)
	},
}

var estimateGasCMD = &cobra.Command{
	Use:       "estimate [wrap|unwrap]",
	Short:     "Estimate the cost of a bridge operation",
	Args:      cobra.ExactValidArgs(1),
	ValidArgs: []string{string(bridge.WrapOperation), string(bridge.UnwrapOperation)},
	RunE: func(cmd *cobra.Command, args []string) error {
		core, err := app.Initialize(cmd.Context())
		if err != nil {
			return err
		}
		defer core.Close()

		estimate, err := core.EstimateGas(cmd.Context(), bridge.Operation(args[0]))
		if err != nil {
			return err
		}
		return printResult(estimate)
	},
}

var bridgeStatusCMD = &cobra.Command{
	Use:   "status",
	Short: "Show destination chain connectivity and wallet balance",
	RunE: func(cmd *cobra.Command, args []string) error {
		core, err := app.Initialize(cmd.Context())
		if err != nil {
			return err
		}
		defer core.Close()

		return printResult(core.BridgeStatus(cmd.Context()))
	},
}

// flag vars
var (
	sourceAssetID string
	sourceOwner   string
	destination   string
)

func init() {
	BindMetadataFlags(wrapCMD)
	wrapCMD.Flags().StringVar(&sourceAssetID, "asset", "", "Source ledger asset id")
	wrapCMD.Flags().StringVar(&sourceOwner, "owner", "", "Classic address owning the source asset")
	wrapCMD.Flags().StringVar(&destination, "recipient", "", "Destination chain recipient address")
	_ = wrapCMD.MarkFlagRequired("asset")
	_ = wrapCMD.MarkFlagRequired("recipient")

	bridgeCMD.AddCommand(wrapCMD, unwrapCMD, wrappedInfoCMD, estimateGasCMD, bridgeStatusCMD)
}

func wrap(cmd *cobra.Command, args []string) error {
	metadata, err := readMetadata()
	if err != nil {
		return err
	}

	core, err := app.Initialize(cmd.Context())
	if err != nil {
		return err
	}
	defer core.Close()

	result := core.Wrap(cmd.Context(), bridge.WrapRequest{
		SourceAssetID:      sourceAssetID,
		SourceOwnerAddress: sourceOwner,
		RecipientAddress:   destination,
		Metadata:           metadata,
	})
	if err := printResult(result); err != nil {
		return err
	}
	return result.Err
}

func parseTokenID(value string) (*big.Int, error) {
	tokenID, ok := new(big.Int).SetString(value, 10)
	if !ok || tokenID.Sign() < 0 {
		return nil, &chains.ValidationError{Field: "tokenId", Reason: fmt.Sprintf("%s is not a token id", value)}
	}
	return tokenID, nil
}
