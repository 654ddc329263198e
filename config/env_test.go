// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/ChainSafe/nft-bridge/config/core"
)

const (
	xrplDomain = `{"name":"xrpl","type":"xrpl","endpoint":"wss://s.altnet.rippletest.net:51233","key":"snoPBrXtMeMyMHUVTgbuqAfg1SUTb","network":"testnet"}`
	evmDomain  = `{"name":"songbird","type":"evm","endpoint":"https://songbird-api.flare.network/ext/bc/C/rpc","key":"ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80","contract":"0x5FbDB2315678afecb367f032d93F642f64180aa3","wrapGasLimit":150000}`
)

type LoadFromEnvTestSuite struct {
	suite.Suite
}

func (s *LoadFromEnvTestSuite) TearDownTest() {
	os.Clearenv()
}

func TestRunLoadFromEnvTestSuite(t *testing.T) {
	suite.Run(t, new(LoadFromEnvTestSuite))
}

func (s *LoadFromEnvTestSuite) SetupTest() {
	os.Clearenv()
}

func (s *LoadFromEnvTestSuite) Test_ValidCoreConfig() {
	_ = os.Setenv("NFB_CORE_OPENTELEMETRYCOLLECTORURL", "test.opentelemetry.url")
	_ = os.Setenv("NFB_CORE_LOGLEVEL", "debug")
	_ = os.Setenv("NFB_CORE_LOGFILE", "test.log")
	_ = os.Setenv("NFB_CORE_HEALTHPORT", "4000")
	_ = os.Setenv("NFB_CORE_BATCHINTERVAL", "1s")

	_ = os.Setenv("NFB_CORE_UPLOADERCONFIG_TYPE", "s3")
	_ = os.Setenv("NFB_CORE_UPLOADERCONFIG_GATEWAYS", "https://ipfs.io,https://dweb.link")
	_ = os.Setenv("NFB_CORE_UPLOADERCONFIG_S3_ENDPOINT", "localhost:9000")
	_ = os.Setenv("NFB_CORE_UPLOADERCONFIG_S3_BUCKET", "metadata")
	_ = os.Setenv("NFB_CORE_UPLOADERCONFIG_S3_INSECURE", "true")

	env, err := loadFromEnv()

	s.Nil(err)
	s.Equal(core.RawCoreConfig{
		OpenTelemetryCollectorURL: "test.opentelemetry.url",
		LogLevel:                  "debug",
		LogFile:                   "test.log",
		HealthPort:                "4000",
		BatchInterval:             "1s",
		UploaderConfig: core.RawUploaderConfig{
			Type:     "s3",
			Gateways: "https://ipfs.io,https://dweb.link",
			S3: core.RawS3Config{
				Endpoint: "localhost:9000",
				Bucket:   "metadata",
				Insecure: "true",
			},
		},
	}, env.CoreConfig)
}

func (s *LoadFromEnvTestSuite) Test_ValidDomainConfig() {
	_ = os.Setenv("NFB_CORE_LOGLEVEL", "info")
	_ = os.Setenv("NFB_DOM_1", xrplDomain)
	_ = os.Setenv("NFB_DOM_2", evmDomain)

	env, err := loadFromEnv()

	s.Nil(err)
	s.Equal([]map[string]interface{}{
		{
			"name":     "xrpl",
			"type":     "xrpl",
			"endpoint": "wss://s.altnet.rippletest.net:51233",
			"key":      "snoPBrXtMeMyMHUVTgbuqAfg1SUTb",
			"network":  "testnet",
		},
		{
			"name":         "songbird",
			"type":         "evm",
			"endpoint":     "https://songbird-api.flare.network/ext/bc/C/rpc",
			"key":          "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80",
			"contract":     "0x5FbDB2315678afecb367f032d93F642f64180aa3",
			"wrapGasLimit": float64(150000),
		},
	}, env.ChainConfigs)
}

func (s *LoadFromEnvTestSuite) Test_DomainsStopAtFirstGap() {
	_ = os.Setenv("NFB_DOM_1", xrplDomain)
	_ = os.Setenv("NFB_DOM_3", evmDomain)

	env, err := loadFromEnv()

	s.Nil(err)
	s.Len(env.ChainConfigs, 1)
}

func (s *LoadFromEnvTestSuite) Test_InvalidDomainConfig() {
	_ = os.Setenv("NFB_CORE_LOGLEVEL", "info")
	_ = os.Setenv("NFB_DOM_1", "{\"name\": \"xrpl\",")

	_, err := loadFromEnv()

	s.NotNil(err)
}

func (s *LoadFromEnvTestSuite) Test_EnvTreeSkipsDomainsAndForeignVariables() {
	tree := envTree([]string{
		"NFB_CORE_LOGLEVEL=debug",
		"NFB_CORE_UPLOADERCONFIG_TYPE=ipfs",
		"NFB_DOM_1={}",
		"PATH=/usr/bin",
		"XNFB_CORE_LOGLEVEL=trace",
	})

	s.Equal(map[string]interface{}{
		"NFB": map[string]interface{}{
			"CORE": map[string]interface{}{
				"LOGLEVEL": "debug",
				"UPLOADERCONFIG": map[string]interface{}{
					"TYPE": "ipfs",
				},
			},
		},
	}, tree)
}
