// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package chains

import "fmt"

// GeneralChainConfig holds the fields shared by every configured domain.
type GeneralChainConfig struct {
	Name     string `mapstructure:"name"`
	Type     string `mapstructure:"type"`
	Endpoint string `mapstructure:"endpoint"`
	Key      string `mapstructure:"key"`
}

func (c *GeneralChainConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("required field domain.Name empty")
	}
	if c.Endpoint == "" {
		return fmt.Errorf("required field domain.Endpoint empty for domain %s", c.Name)
	}
	if c.Key == "" {
		return fmt.Errorf("required field domain.Key empty for domain %s", c.Name)
	}
	return nil
}

func (c *GeneralChainConfig) String() string {
	return fmt.Sprintf("Name: '%s', Type: '%s', Endpoint: '%s'", c.Name, c.Type, c.Endpoint)
}
