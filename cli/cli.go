// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ChainSafe/nft-bridge/flags"
)

var (
	rootCMD = &cobra.Command{
		Use:           "nft-bridge",
		Short:         "Ledger NFT issuance and EVM mirror bridge",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	flags.BindFlags(rootCMD)
}

func Execute() {
	rootCMD.AddCommand(runCMD, mintCMD, assetCMD, bridgeCMD, walletCMD)
	if err := rootCMD.ExecuteContext(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("failed to execute root cmd")
	}
}

// printResult writes v to stdout in the format selected by the output flag.
func printResult(v interface{}) error {
	if viper.GetString(flags.OutputFlagName) == "text" {
		fmt.Printf("%+v\n", v)
		return nil
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
