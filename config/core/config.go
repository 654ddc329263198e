// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package core

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	IPFSUploader = "ipfs"
	S3Uploader   = "s3"
)

type CoreConfig struct {
	OpenTelemetryCollectorURL string
	Env                       string
	LogLevel                  zerolog.Level
	LogFile                   string
	BlockstorePath            string
	HealthPort                uint16
	TxTimeout                 time.Duration
	BatchInterval             time.Duration
	ReserveCheckInterval      time.Duration
	UploaderConfig            UploaderConfig
}

type UploaderConfig struct {
	Type         string
	URL          string
	AuthToken    string
	Gateways     []string
	FetchTimeout time.Duration
	S3           S3Config
}

type S3Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	PublicURL string
	Secure    bool
}

type RawCoreConfig struct {
	OpenTelemetryCollectorURL string            `mapstructure:"OpenTelemetryCollectorURL" json:"opentelemetryCollectorURL"`
	Env                       string            `mapstructure:"Env" json:"env" default:"local"`
	LogLevel                  string            `mapstructure:"LogLevel" json:"logLevel" default:"info"`
	LogFile                   string            `mapstructure:"LogFile" json:"logFile" default:"out.log"`
	BlockstorePath            string            `mapstructure:"BlockstorePath" json:"blockstorePath" default:"./lvldbdata"`
	HealthPort                string            `mapstructure:"HealthPort" json:"healthPort" default:"9001"`
	TxTimeout                 string            `mapstructure:"TxTimeout" json:"txTimeout" default:"2m"`
	BatchInterval             string            `mapstructure:"BatchInterval" json:"batchInterval" default:"500ms"`
	ReserveCheckInterval      string            `mapstructure:"ReserveCheckInterval" json:"reserveCheckInterval" default:"10m"`
	UploaderConfig            RawUploaderConfig `mapstructure:"UploaderConfig" json:"uploaderConfig"`
}

type RawUploaderConfig struct {
	Type         string      `mapstructure:"Type" json:"type"`
	URL          string      `mapstructure:"URL" json:"url" default:"https://api.pinata.cloud/pinning/pinFileToIPFS"`
	AuthToken    string      `mapstructure:"AuthToken" json:"authToken"`
	// Gateways is a comma separated list of IPFS gateway base URLs
	Gateways     string      `mapstructure:"Gateways" json:"gateways"`
	FetchTimeout string      `mapstructure:"FetchTimeout" json:"fetchTimeout" default:"5s"`
	S3           RawS3Config `mapstructure:"S3" json:"s3"`
}

type RawS3Config struct {
	Endpoint  string `mapstructure:"Endpoint" json:"endpoint"`
	AccessKey string `mapstructure:"AccessKey" json:"accessKey"`
	SecretKey string `mapstructure:"SecretKey" json:"secretKey"`
	Bucket    string `mapstructure:"Bucket" json:"bucket"`
	Region    string `mapstructure:"Region" json:"region"`
	PublicURL string `mapstructure:"PublicURL" json:"publicURL"`
	Insecure  string `mapstructure:"Insecure" json:"insecure" default:"false"`
}

func (c *RawCoreConfig) Validate() error {
	switch c.UploaderConfig.Type {
	case "":
	case IPFSUploader:
		if c.UploaderConfig.AuthToken == "" {
			return fmt.Errorf("uploader auth token is required for ipfs uploads")
		}
	case S3Uploader:
		if c.UploaderConfig.S3.Endpoint == "" || c.UploaderConfig.S3.Bucket == "" {
			return fmt.Errorf("s3 endpoint and bucket are required for s3 uploads")
		}
	default:
		return fmt.Errorf("unknown uploader type: %s", c.UploaderConfig.Type)
	}
	return nil
}

// NewCoreConfig parses RawCoreConfig into CoreConfig
func NewCoreConfig(rawConfig RawCoreConfig) (CoreConfig, error) {
	config := CoreConfig{}
	err := rawConfig.Validate()
	if err != nil {
		return config, err
	}

	logLevel, err := zerolog.ParseLevel(rawConfig.LogLevel)
	if err != nil {
		return config, fmt.Errorf("unknown log level: %s", rawConfig.LogLevel)
	}
	config.LogLevel = logLevel

	config.LogFile = rawConfig.LogFile
	config.Env = rawConfig.Env
	config.OpenTelemetryCollectorURL = rawConfig.OpenTelemetryCollectorURL
	config.BlockstorePath = rawConfig.BlockstorePath

	healthPort, err := strconv.ParseUint(rawConfig.HealthPort, 10, 16)
	if err != nil {
		return CoreConfig{}, fmt.Errorf("unable to parse health port: %w", err)
	}
	config.HealthPort = uint16(healthPort)

	txTimeout, err := time.ParseDuration(rawConfig.TxTimeout)
	if err != nil {
		return CoreConfig{}, fmt.Errorf("unable to parse transaction timeout: %w", err)
	}

	batchInterval, err := time.ParseDuration(rawConfig.BatchInterval)
	if err != nil {
		return CoreConfig{}, fmt.Errorf("unable to parse batch interval: %w", err)
	}

	reserveCheckInterval, err := time.ParseDuration(rawConfig.ReserveCheckInterval)
	if err != nil {
		return CoreConfig{}, fmt.Errorf("unable to parse reserve check interval: %w", err)
	}
	if reserveCheckInterval <= 0 {
		return CoreConfig{}, fmt.Errorf("reserve check interval has to be > 0, got %s", reserveCheckInterval)
	}

	fetchTimeout, err := time.ParseDuration(rawConfig.UploaderConfig.FetchTimeout)
	if err != nil {
		return CoreConfig{}, fmt.Errorf("unable to parse fetch timeout: %w", err)
	}

	insecure, err := strconv.ParseBool(rawConfig.UploaderConfig.S3.Insecure)
	if err != nil {
		return CoreConfig{}, fmt.Errorf("unable to parse s3 insecure flag: %w", err)
	}

	var gateways []string
	for _, gateway := range strings.Split(rawConfig.UploaderConfig.Gateways, ",") {
		if gateway = strings.TrimSpace(gateway); gateway != "" {
			gateways = append(gateways, gateway)
		}
	}

	config.TxTimeout = txTimeout
	config.BatchInterval = batchInterval
	config.ReserveCheckInterval = reserveCheckInterval
	config.UploaderConfig = UploaderConfig{
		Type:         rawConfig.UploaderConfig.Type,
		URL:          rawConfig.UploaderConfig.URL,
		AuthToken:    rawConfig.UploaderConfig.AuthToken,
		Gateways:     gateways,
		FetchTimeout: fetchTimeout,
		S3: S3Config{
			Endpoint:  rawConfig.UploaderConfig.S3.Endpoint,
			AccessKey: rawConfig.UploaderConfig.S3.AccessKey,
			SecretKey: rawConfig.UploaderConfig.S3.SecretKey,
			Bucket:    rawConfig.UploaderConfig.S3.Bucket,
			Region:    rawConfig.UploaderConfig.S3.Region,
			PublicURL: rawConfig.UploaderConfig.S3.PublicURL,
			Secure:    !insecure,
		},
	}

	return config, nil
}
