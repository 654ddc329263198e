// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"github.com/spf13/cobra"

	"github.com/ChainSafe/nft-bridge/app"
	"github.com/ChainSafe/nft-bridge/chains/xrpl/address"
	"github.com/ChainSafe/nft-bridge/chains/xrpl/reserve"
)

var walletCMD = &cobra.Command{
	Use:   "wallet",
	Short: "Source ledger wallet utilities",
}

var generateWalletCMD = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new ed25519 wallet",
	Long:  "Generates a new wallet offline and prints its seed and classic address",
	RunE: func(cmd *cobra.Command, args []string) error {
		wallet, err := address.GenerateWallet()
		if err != nil {
			return err
		}
		return printResult(struct {
			Address   string `json:"address"`
			Seed      string `json:"seed"`
			PublicKey string `json:"publicKey"`
		}{wallet.Address, wallet.Seed, wallet.PublicKey})
	},
}

var fundWalletCMD = &cobra.Command{
	Use:   "fund [address]",
	Short: "Fund an account from the test network faucet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		core, err := app.Initialize(cmd.Context())
		if err != nil {
			return err
		}
		defer core.Close()

		funding, err := core.FundWallet(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printResult(funding)
	},
}

var reserveCMD = &cobra.Command{
	Use:   "reserve",
	Short: "Show the custodial account balance above the reserve",
	RunE: func(cmd *cobra.Command, args []string) error {
		core, err := app.Initialize(cmd.Context())
		if err != nil {
			return err
		}
		defer core.Close()

		balance, err := core.CheckReserve(cmd.Context())
		if err != nil {
			return err
		}
		return printResult(struct {
			Balance   string `json:"balance"`
			Available string `json:"available"`
		}{reserve.DropsToXRP(balance.Balance), reserve.DropsToXRP(balance.Available)})
	},
}

var balanceCMD = &cobra.Command{
	Use:   "balance [address]",
	Short: "Show the XRP balance of any account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		core, err := app.Initialize(cmd.Context())
		if err != nil {
			return err
		}
		defer core.Close()

		balance, err := core.Balance(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printResult(map[string]string{"address": args[0], "balance": balance})
	},
}

func init() {
	walletCMD.AddCommand(generateWalletCMD, fundWalletCMD, reserveCMD, balanceCMD)
}
