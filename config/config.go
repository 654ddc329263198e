// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/creasty/defaults"
	"github.com/imdario/mergo"
	"github.com/spf13/viper"

	"github.com/ChainSafe/nft-bridge/config/core"
)

const (
	XRPLDomain = "xrpl"
	EVMDomain  = "evm"
)

type Config struct {
	CoreConfig   core.CoreConfig
	ChainConfigs []map[string]interface{}
}

type RawConfig struct {
	CoreConfig   core.RawCoreConfig       `mapstructure:"core" json:"core"`
	ChainConfigs []map[string]interface{} `mapstructure:"domains" json:"domains"`
}

// GetConfigFromENV reads config from Env variables, validates it and parses
// it into config suitable for application
//
// Properties of CoreConfig are expected to be defined as separate Env variables
// where Env variable name reflects properties position in structure. Each Env variable needs to be prefixed with NFB.
//
// For example, if you want to set Config.CoreConfig.UploaderConfig.AuthToken this would
// translate to Env variable named NFB_CORE_UPLOADERCONFIG_AUTHTOKEN.
func GetConfigFromENV(config *Config) (*Config, error) {
	rawConfig, err := loadFromEnv()
	if err != nil {
		return config, err
	}

	return processRawConfig(rawConfig, config)
}

// GetConfigFromFile reads config from file, validates it and parses
// it into config suitable for application
func GetConfigFromFile(path string, config *Config) (*Config, error) {
	rawConfig := RawConfig{}

	viper.SetConfigFile(path)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		return config, err
	}

	err = viper.Unmarshal(&rawConfig)
	if err != nil {
		return config, err
	}

	return processRawConfig(rawConfig, config)
}

// GetSharedConfigFromNetwork fetches shared domain configuration from URL and parses it.
func GetSharedConfigFromNetwork(ctx context.Context, url string, config *Config) (*Config, error) {
	rawConfig := RawConfig{}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &Config{}, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return &Config{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Config{}, err
	}

	err = json.Unmarshal(body, &rawConfig)
	if err != nil {
		return &Config{}, err
	}

	config.ChainConfigs = rawConfig.ChainConfigs
	return config, err
}

// DomainConfig returns the first configured domain of the given type.
func (c *Config) DomainConfig(domainType string) (map[string]interface{}, bool) {
	for _, chain := range c.ChainConfigs {
		if chain["type"] == domainType {
			return chain, true
		}
	}
	return nil, false
}

func processRawConfig(rawConfig RawConfig, config *Config) (*Config, error) {
	if err := defaults.Set(&rawConfig); err != nil {
		return config, err
	}

	coreConfig, err := core.NewCoreConfig(rawConfig.CoreConfig)
	if err != nil {
		return config, err
	}

	chainConfigs := make([]map[string]interface{}, 0)
	for i, chain := range rawConfig.ChainConfigs {
		if i < len(config.ChainConfigs) {
			err := mergo.Merge(&chain, config.ChainConfigs[i])
			if err != nil {
				return config, err
			}
		}

		switch chain["type"] {
		case XRPLDomain, EVMDomain:
		case "", nil:
			return config, fmt.Errorf("domain 'type' must be provided for every configured domain")
		default:
			return config, fmt.Errorf("unsupported domain type %v", chain["type"])
		}
		chainConfigs = append(chainConfigs, chain)
	}

	config.ChainConfigs = chainConfigs
	config.CoreConfig = coreConfig
	return config, nil
}
