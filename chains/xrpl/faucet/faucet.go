// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package faucet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/ChainSafe/nft-bridge/chains"
	"github.com/ChainSafe/nft-bridge/chains/xrpl/address"
)

type Funding struct {
	Address string `json:"address"`
	// Amount is the funded balance in XRP as reported by the faucet.
	Amount string `json:"amount"`
}

type FaucetAPI struct {
	url     string
	network string
	client  *http.Client
}

func NewFaucetAPI(url, network string) *FaucetAPI {
	return &FaucetAPI{
		url:     url,
		network: network,
		client:  &http.Client{},
	}
}

// FundWallet asks the test network faucet to fund an account, creating it
// when it does not exist yet.
func (f *FaucetAPI) FundWallet(ctx context.Context, account string) (*Funding, error) {
	if f.network != "testnet" && f.network != "devnet" {
		return nil, &chains.UnsupportedOperationError{Op: "fund wallet", Network: f.network}
	}
	if !address.IsValidClassicAddress(account) {
		return nil, &chains.ValidationError{Field: "address", Reason: "not a classic address"}
	}

	payload, err := json.Marshal(map[string]string{"destination": account})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Add("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &chains.NetworkError{Op: "fund wallet", Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &chains.NetworkError{Op: "fund wallet", Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &chains.NetworkError{Op: "fund wallet", Err: fmt.Errorf("faucet responded with %d: %s", resp.StatusCode, data)}
	}

	var body struct {
		Account struct {
			Address string `json:"address"`
		} `json:"account"`
		Amount json.Number `json:"amount"`
	}
	err = json.Unmarshal(data, &body)
	if err != nil {
		return nil, err
	}

	log.Info().Str("account", body.Account.Address).Msgf("Funded wallet with %s XRP", body.Amount)
	return &Funding{
		Address: body.Account.Address,
		Amount:  body.Amount.String(),
	}, nil
}
