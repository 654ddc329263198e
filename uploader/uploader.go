// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package uploader

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/ChainSafe/nft-bridge/config/core"
)

type Uploader interface {
	Upload(ctx context.Context, name string, data []byte) (string, error)
}

var DefaultGateways = []string{
	"https://gateway.pinata.cloud",
	"https://ipfs.io",
	"https://cloudflare-ipfs.com",
	"https://dweb.link",
	"https://w3s.link",
	"https://nftstorage.link",
}

var cidPattern = regexp.MustCompile(`(?:/ipfs/|ipfs://)([a-zA-Z0-9]+)`)

// NewUploader creates the uploader selected by config. Without a configured
// uploader type a nil Uploader is returned.
func NewUploader(config core.UploaderConfig) (Uploader, error) {
	switch config.Type {
	case core.IPFSUploader:
		gateway := DefaultGateways[0]
		if len(config.Gateways) > 0 {
			gateway = config.Gateways[0]
		}
		return NewIPFSUploader(config, gateway), nil
	case core.S3Uploader:
		return NewS3Uploader(config.S3)
	case "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown uploader type %s", config.Type)
	}
}

// ExtractCID returns the content id of an IPFS URI or gateway URL, or an
// empty string for other URIs.
func ExtractCID(uri string) string {
	match := cidPattern.FindStringSubmatch(uri)
	if match == nil {
		return ""
	}
	return match[1]
}

func IsIPFSURI(uri string) bool {
	return strings.HasPrefix(uri, "ipfs://") || strings.Contains(uri, "/ipfs/")
}

func GatewayURL(gateway, cid string) string {
	return fmt.Sprintf("%s/ipfs/%s", strings.TrimRight(gateway, "/"), cid)
}

// RedundantGateways returns the URL of cid on every gateway.
func RedundantGateways(gateways []string, cid string) []string {
	urls := make([]string, len(gateways))
	for i, gateway := range gateways {
		urls[i] = GatewayURL(gateway, cid)
	}
	return urls
}
