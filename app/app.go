// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package app

import (
	"context"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/ChainSafe/nft-bridge/config"
	"github.com/ChainSafe/nft-bridge/flags"
	"github.com/ChainSafe/nft-bridge/health"
	"github.com/ChainSafe/nft-bridge/jobs"
	"github.com/ChainSafe/nft-bridge/logger"
)

// LoadConfig reads the configuration selected by the config flags and
// configures the global logger from it.
func LoadConfig(ctx context.Context, logOut io.Writer, logToFile bool) (*config.Config, error) {
	var err error

	configFlag := viper.GetString(flags.ConfigFlagName)
	configURL := viper.GetString(flags.ConfigURLFlagName)

	configuration := &config.Config{}
	if configURL != "" {
		configuration, err = config.GetSharedConfigFromNetwork(ctx, configURL, configuration)
		if err != nil {
			return nil, err
		}
	}

	if strings.ToLower(configFlag) == "env" {
		configuration, err = config.GetConfigFromENV(configuration)
	} else {
		configuration, err = config.GetConfigFromFile(configFlag, configuration)
	}
	if err != nil {
		return nil, err
	}

	logFile := ""
	if logToFile {
		logFile = configuration.CoreConfig.LogFile
	}
	err = logger.ConfigureLogger(configuration.CoreConfig.LogLevel, logOut, logFile)
	if err != nil {
		return nil, err
	}

	log.Info().Msg("Successfully loaded configuration")
	return configuration, nil
}

// Initialize loads configuration and builds the core for one-shot commands.
// Logs go to stderr so command output stays machine readable.
func Initialize(ctx context.Context) (*Core, error) {
	configuration, err := LoadConfig(ctx, os.Stderr, false)
	if err != nil {
		return nil, err
	}
	return NewCore(ctx, configuration, viper.GetString(flags.BlockstoreFlagName))
}

// Run starts the long running service: health endpoint and reserve monitor,
// until a termination signal is received.
func Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	configuration, err := LoadConfig(ctx, os.Stdout, true)
	if err != nil {
		return err
	}

	core, err := NewCore(ctx, configuration, viper.GetString(flags.BlockstoreFlagName))
	if err != nil {
		return err
	}
	defer core.Close()

	go health.StartHealthEndpoint(configuration.CoreConfig.HealthPort, core.HealthCheckers())
	go jobs.StartReserveMonitorJob(
		ctx, core, core.telemetry,
		configuration.CoreConfig.ReserveCheckInterval, core.xrplConfig.MinReserveWarning,
	)

	sysErr := make(chan os.Signal, 1)
	signal.Notify(sysErr,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGHUP,
		syscall.SIGQUIT)

	log.Info().Str("account", core.xrplConfig.Wallet.Address).Msgf("Started nft bridge on %s", core.xrplConfig.Network)

	sig := <-sysErr
	log.Info().Msgf("terminating got ` [%v] signal", sig)
	return nil
}
