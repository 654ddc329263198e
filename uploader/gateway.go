// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package uploader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"

	"github.com/ChainSafe/nft-bridge/chains"
)

type Availability struct {
	Available       bool     `json:"available"`
	WorkingGateways []string `json:"workingGateways"`
	FailedGateways  []string `json:"failedGateways"`
}

// GatewayFetcher dereferences metadata URIs, falling back across redundant
// IPFS gateways.
type GatewayFetcher struct {
	gateways []string
	client   *http.Client
}

func NewGatewayFetcher(gateways []string, timeout time.Duration) *GatewayFetcher {
	if len(gateways) == 0 {
		gateways = DefaultGateways
	}
	return &GatewayFetcher{
		gateways: gateways,
		client:   &http.Client{Timeout: timeout},
	}
}

// Fetch returns the document behind uri. IPFS URIs are tried on every
// gateway in order until one answers.
func (f *GatewayFetcher) Fetch(ctx context.Context, uri string) ([]byte, error) {
	if !IsIPFSURI(uri) {
		return f.get(ctx, uri)
	}
	cid := ExtractCID(uri)
	if cid == "" {
		return nil, &chains.ValidationError{Field: "uri", Reason: "IPFS URI without content identifier"}
	}

	var lastErr error
	for _, url := range RedundantGateways(f.gateways, cid) {
		data, err := f.get(ctx, url)
		if err == nil {
			return data, nil
		}
		log.Debug().Err(err).Msgf("Gateway %s failed", url)
		lastErr = err
	}
	return nil, &chains.NetworkError{Op: "fetch metadata", Err: lastErr}
}

func (f *GatewayFetcher) FetchMetadata(ctx context.Context, uri string) (*chains.AssetMetadata, error) {
	data, err := f.Fetch(ctx, uri)
	if err != nil {
		return nil, err
	}
	return chains.DecodeMetadata(data)
}

// Availability probes cid on every gateway concurrently.
func (f *GatewayFetcher) Availability(ctx context.Context, cid string) Availability {
	urls := RedundantGateways(f.gateways, cid)
	working := make([]bool, len(urls))

	p := pool.New().WithContext(ctx)
	for i, url := range urls {
		i, url := i, url
		p.Go(func(ctx context.Context) error {
			working[i] = f.head(ctx, url) == nil
			return nil
		})
	}
	_ = p.Wait()

	availability := Availability{
		WorkingGateways: make([]string, 0),
		FailedGateways:  make([]string, 0),
	}
	for i, url := range urls {
		if working[i] {
			availability.WorkingGateways = append(availability.WorkingGateways, url)
		} else {
			availability.FailedGateways = append(availability.FailedGateways, url)
		}
	}
	availability.Available = len(availability.WorkingGateways) > 0
	log.Info().Str("cid", cid).Msgf("%d of %d gateways serve content", len(availability.WorkingGateways), len(urls))
	return availability
}

func (f *GatewayFetcher) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s responded with %d", url, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (f *GatewayFetcher) head(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s responded with %d", url, resp.StatusCode)
	}
	return nil
}
