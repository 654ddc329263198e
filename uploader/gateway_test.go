// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package uploader_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/ChainSafe/nft-bridge/chains"
	"github.com/ChainSafe/nft-bridge/uploader"
)

const document = `{"name":"Top Dog #1","description":"Arena champion","image":"ipfs://` + cid + `"}`

type GatewayFetcherTestSuite struct {
	suite.Suite
	healthy *httptest.Server
	broken  *httptest.Server
}

func TestRunGatewayFetcherTestSuite(t *testing.T) {
	suite.Run(t, new(GatewayFetcherTestSuite))
}

func (s *GatewayFetcherTestSuite) SetupTest() {
	s.healthy = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ipfs/"+cid && r.URL.Path != "/metadata/1.json" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(document))
	}))
	s.broken = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGatewayTimeout)
	}))
}

func (s *GatewayFetcherTestSuite) TearDownTest() {
	s.healthy.Close()
	s.broken.Close()
}

func (s *GatewayFetcherTestSuite) Test_Fetch_FallsBackAcrossGateways() {
	fetcher := uploader.NewGatewayFetcher([]string{s.broken.URL, s.healthy.URL}, time.Second)

	data, err := fetcher.Fetch(context.Background(), "ipfs://"+cid)

	s.Nil(err)
	s.Equal(document, string(data))
}

func (s *GatewayFetcherTestSuite) Test_Fetch_AllGatewaysFail() {
	fetcher := uploader.NewGatewayFetcher([]string{s.broken.URL}, time.Second)

	_, err := fetcher.Fetch(context.Background(), "ipfs://"+cid)

	s.Equal(chains.NetworkErrorCode, chains.ErrorCode(err))
}

func (s *GatewayFetcherTestSuite) Test_Fetch_DirectURL() {
	fetcher := uploader.NewGatewayFetcher([]string{s.broken.URL}, time.Second)

	data, err := fetcher.Fetch(context.Background(), s.healthy.URL+"/metadata/1.json")

	s.Nil(err)
	s.Equal(document, string(data))
}

func (s *GatewayFetcherTestSuite) Test_Fetch_IPFSURIWithoutCID() {
	fetcher := uploader.NewGatewayFetcher([]string{s.healthy.URL}, time.Second)

	_, err := fetcher.Fetch(context.Background(), "ipfs://")

	s.Equal(chains.ValidationErrorCode, chains.ErrorCode(err))
}

func (s *GatewayFetcherTestSuite) Test_FetchMetadata() {
	fetcher := uploader.NewGatewayFetcher([]string{s.healthy.URL}, time.Second)

	metadata, err := fetcher.FetchMetadata(context.Background(), s.healthy.URL+"/ipfs/"+cid)

	s.Nil(err)
	s.Equal("Top Dog #1", metadata.Name)
	s.Equal("Arena champion", metadata.Description)
}

func (s *GatewayFetcherTestSuite) Test_Availability() {
	fetcher := uploader.NewGatewayFetcher([]string{s.healthy.URL, s.broken.URL}, time.Second)

	availability := fetcher.Availability(context.Background(), cid)

	s.True(availability.Available)
	s.Equal([]string{uploader.GatewayURL(s.healthy.URL, cid)}, availability.WorkingGateways)
	s.Equal([]string{uploader.GatewayURL(s.broken.URL, cid)}, availability.FailedGateways)
}
