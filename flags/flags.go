// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package flags

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	ConfigFlagName     = "config"
	ConfigURLFlagName  = "config-url"
	BlockstoreFlagName = "blockstore"
	OutputFlagName     = "output"
)

// BindFlags registers the persistent flags shared by every command and binds
// them into viper
func BindFlags(rootCMD *cobra.Command) {
	rootCMD.PersistentFlags().String(ConfigFlagName, ".", "Path to JSON configuration file or 'env' to read configuration from environment")
	_ = viper.BindPFlag(ConfigFlagName, rootCMD.PersistentFlags().Lookup(ConfigFlagName))

	rootCMD.PersistentFlags().String(ConfigURLFlagName, "", "URL of shared domain configuration")
	_ = viper.BindPFlag(ConfigURLFlagName, rootCMD.PersistentFlags().Lookup(ConfigURLFlagName))

	rootCMD.PersistentFlags().String(BlockstoreFlagName, "", "Overrides the configured key-value store path")
	_ = viper.BindPFlag(BlockstoreFlagName, rootCMD.PersistentFlags().Lookup(BlockstoreFlagName))

	rootCMD.PersistentFlags().String(OutputFlagName, "json", "Command output format (json|text)")
	_ = viper.BindPFlag(OutputFlagName, rootCMD.PersistentFlags().Lookup(OutputFlagName))
}
