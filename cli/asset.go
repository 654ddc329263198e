// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"github.com/spf13/cobra"

	"github.com/ChainSafe/nft-bridge/app"
)

var assetCMD = &cobra.Command{
	Use:   "asset",
	Short: "Query assets on the source ledger",
}

var assetInfoCMD = &cobra.Command{
	Use:   "info [asset-id]",
	Short: "Show an asset with its decoded metadata",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		core, err := app.Initialize(cmd.Context())
		if err != nil {
			return err
		}
		defer core.Close()

		record, err := core.QueryAsset(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printResult(record)
	},
}

var holderAssetsCMD = &cobra.Command{
	Use:   "holder [address]",
	Short: "List every asset held by an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		core, err := app.Initialize(cmd.Context())
		if err != nil {
			return err
		}
		defer core.Close()

		records, err := core.QueryHolderAssets(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printResult(records)
	},
}

var mintLogCMD = &cobra.Command{
	Use:   "log [tx-hash]",
	Short: "Show the locally recorded result of a mint transaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		core, err := app.Initialize(cmd.Context())
		if err != nil {
			return err
		}
		defer core.Close()

		record, err := core.MintLog(args[0])
		if err != nil {
			return err
		}
		return printResult(record)
	},
}

var availabilityCMD = &cobra.Command{
	Use:   "availability [ipfs-uri]",
	Short: "Probe which IPFS gateways serve a metadata document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		core, err := app.Initialize(cmd.Context())
		if err != nil {
			return err
		}
		defer core.Close()

		availability, err := core.Availability(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printResult(availability)
	},
}

func init() {
	assetCMD.AddCommand(assetInfoCMD, holderAssetsCMD, mintLogCMD, availabilityCMD)
}
