// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package connection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ChainSafe/nft-bridge/chains"
)

const (
	MaxLedgerCode = "tefMAX_LEDGER"
	PastSeqCode   = "tefPAST_SEQ"
	PreSeqCode    = "terPRE_SEQ"
)

// TxResponse is the validated transaction as returned by the tx command.
type TxResponse struct {
	Hash        string          `json:"hash"`
	Fee         string          `json:"Fee"`
	LedgerIndex uint32          `json:"ledger_index"`
	Validated   bool            `json:"validated"`
	Meta        json.RawMessage `json:"meta"`
}

// TransactionResult returns the final engine result stored in the metadata.
func (r *TxResponse) TransactionResult() (string, error) {
	var meta struct {
		TransactionResult string `json:"TransactionResult"`
	}
	if err := json.Unmarshal(r.Meta, &meta); err != nil {
		return "", fmt.Errorf("failed decoding transaction metadata: %w", err)
	}
	return meta.TransactionResult, nil
}

type submitResult struct {
	EngineResult        string `json:"engine_result"`
	EngineResultMessage string `json:"engine_result_message"`
	TxJSON              struct {
		Hash string `json:"hash"`
	} `json:"tx_json"`
}

// SubmitAndWait fills in Account, Sequence, Fee and LastLedgerSequence, signs
// and submits tx through the node, then waits until the transaction is part of
// a validated ledger or can no longer be included in one.
func (c *Connection) SubmitAndWait(ctx context.Context, tx map[string]interface{}) (*TxResponse, error) {
	lastLedger, err := c.autofill(ctx, tx)
	if err != nil {
		return nil, err
	}

	var sub submitResult
	err = c.Request(ctx, "submit", map[string]interface{}{
		"tx_json": tx,
		"secret":  c.wallet.Seed,
	}, &sub)
	if err != nil {
		return nil, err
	}

	hash := sub.TxJSON.Hash
	c.log.Debug().Str("tx", hash).Msgf("Submitted %v with preliminary result %s", tx["TransactionType"], sub.EngineResult)
	if isTerminalPreliminary(sub.EngineResult) {
		return nil, &chains.LedgerRejectedError{Code: sub.EngineResult, TxHash: hash}
	}

	return c.waitValidated(ctx, hash, lastLedger)
}

// isTerminalPreliminary reports whether a preliminary engine result means the
// transaction can never be applied.
func isTerminalPreliminary(code string) bool {
	if code == PreSeqCode {
		return true
	}
	return strings.HasPrefix(code, "tef") || strings.HasPrefix(code, "tem") || strings.HasPrefix(code, "tel")
}

func (c *Connection) waitValidated(ctx context.Context, hash string, lastLedger uint32) (*TxResponse, error) {
	ticker := time.NewTicker(c.opts.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, &chains.NetworkError{Op: "wait for validation", Err: ctx.Err()}
		case <-ticker.C:
		}

		resp := &TxResponse{}
		err := c.Request(ctx, "tx", map[string]interface{}{"transaction": hash}, resp)
		if err != nil {
			var reqErr *chains.LedgerRequestError
			if !errors.As(err, &reqErr) || reqErr.Code != "txnNotFound" {
				return nil, err
			}
		} else if resp.Validated {
			return resp, nil
		}

		validated, err := c.validatedLedgerIndex(ctx)
		if err != nil {
			return nil, err
		}
		if validated > lastLedger {
			return nil, &chains.LedgerRejectedError{Code: MaxLedgerCode, TxHash: hash}
		}
	}
}

func (c *Connection) autofill(ctx context.Context, tx map[string]interface{}) (uint32, error) {
	tx["Account"] = c.wallet.Address

	var info struct {
		AccountData struct {
			Sequence uint32 `json:"Sequence"`
		} `json:"account_data"`
	}
	err := c.Request(ctx, "account_info", map[string]interface{}{
		"account":      c.wallet.Address,
		"ledger_index": "current",
	}, &info)
	if err != nil {
		return 0, err
	}
	tx["Sequence"] = info.AccountData.Sequence

	fee, err := c.openLedgerFee(ctx)
	if err != nil {
		return 0, err
	}
	if fee > c.opts.MaxFee {
		c.log.Warn().Msgf("Open ledger fee %d exceeds cap, using %d drops", fee, c.opts.MaxFee)
		fee = c.opts.MaxFee
	}
	tx["Fee"] = strconv.FormatInt(fee, 10)

	validated, err := c.validatedLedgerIndex(ctx)
	if err != nil {
		return 0, err
	}
	lastLedger := validated + c.opts.LedgerOffset
	tx["LastLedgerSequence"] = lastLedger

	return lastLedger, nil
}

func (c *Connection) openLedgerFee(ctx context.Context) (int64, error) {
	var fee struct {
		Drops struct {
			OpenLedgerFee string `json:"open_ledger_fee"`
		} `json:"drops"`
	}
	err := c.Request(ctx, "fee", nil, &fee)
	if err != nil {
		return 0, err
	}

	drops, err := strconv.ParseInt(fee.Drops.OpenLedgerFee, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid open ledger fee %q: %w", fee.Drops.OpenLedgerFee, err)
	}
	return drops, nil
}

func (c *Connection) validatedLedgerIndex(ctx context.Context) (uint32, error) {
	var ledger struct {
		LedgerIndex uint32 `json:"ledger_index"`
	}
	err := c.Request(ctx, "ledger", map[string]interface{}{"ledger_index": "validated"}, &ledger)
	if err != nil {
		return 0, err
	}
	return ledger.LedgerIndex, nil
}
