// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package uploader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ChainSafe/nft-bridge/chains"
	"github.com/ChainSafe/nft-bridge/config/core"
)

const MAX_RETRIES = 3

type IPFSUploader struct {
	config  core.UploaderConfig
	gateway string
	client  *http.Client
	backoff time.Duration
}

func NewIPFSUploader(config core.UploaderConfig, gateway string) *IPFSUploader {
	return &IPFSUploader{
		config:  config,
		gateway: gateway,
		client:  &http.Client{Timeout: 60 * time.Second},
		backoff: time.Second,
	}
}

type IPFSResponse struct {
	IpfsHash string `json:"IpfsHash"`
}

// Upload pins data as a file and returns its gateway URL.
func (s *IPFSUploader) Upload(ctx context.Context, name string, data []byte) (string, error) {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", name)
	if err != nil {
		return "", err
	}
	_, err = part.Write(data)
	if err != nil {
		return "", err
	}
	writer.Close()

	var respBody []byte
	for attempt := 1; attempt <= MAX_RETRIES; attempt++ {
		respBody, err = s.post(ctx, body.Bytes(), writer.FormDataContentType())
		if err == nil {
			break
		}
		log.Warn().Err(err).Int("attempt", attempt).Msgf("Failed uploading %s", name)

		select {
		case <-ctx.Done():
			return "", &chains.NetworkError{Op: "upload metadata", Err: ctx.Err()}
		case <-time.After(time.Duration(attempt) * s.backoff):
		}
	}
	if err != nil {
		return "", &chains.NetworkError{Op: "upload metadata", Err: err}
	}

	var ipfsResponse IPFSResponse
	if err := json.Unmarshal(respBody, &ipfsResponse); err != nil {
		return "", err
	}

	uri := GatewayURL(s.gateway, ipfsResponse.IpfsHash)
	log.Info().Str("cid", ipfsResponse.IpfsHash).Msgf("Uploaded %s", name)
	return uri, nil
}

func (s *IPFSUploader) post(ctx context.Context, payload []byte, contentType string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.URL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Add("Authorization", "Bearer "+s.config.AuthToken)
	req.Header.Add("Content-Type", contentType)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pinning service responded with %d", resp.StatusCode)
	}
	return respBody, nil
}
