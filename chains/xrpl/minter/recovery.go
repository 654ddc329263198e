// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package minter

import (
	"encoding/json"
	"fmt"
)

const nftokenPageType = "NFTokenPage"

// AssetIDEvidence is one shape of transaction metadata from which the
// identifier of a freshly minted asset can be recovered.
type AssetIDEvidence interface {
	evidence()
}

// DirectField is the identifier reported by the node in meta.nftoken_id.
type DirectField struct {
	ID string
}

// ModifiedPage is an existing token page that grew by the mint. The minted
// id is taken from the tail of Final.
type ModifiedPage struct {
	Previous []string
	Final    []string
}

// CreatedPage is a token page created by the mint.
type CreatedPage struct {
	Initial []string
}

func (DirectField) evidence()  {}
func (ModifiedPage) evidence() {}
func (CreatedPage) evidence()  {}

type tokenEntry struct {
	NFToken struct {
		NFTokenID string `json:"NFTokenID"`
	} `json:"NFToken"`
}

type pageFields struct {
	NFTokens []tokenEntry `json:"NFTokens"`
}

type affectedNode struct {
	ModifiedNode *struct {
		LedgerEntryType string      `json:"LedgerEntryType"`
		FinalFields     *pageFields `json:"FinalFields"`
		PreviousFields  *pageFields `json:"PreviousFields"`
	} `json:"ModifiedNode"`
	CreatedNode *struct {
		LedgerEntryType string      `json:"LedgerEntryType"`
		NewFields       *pageFields `json:"NewFields"`
	} `json:"CreatedNode"`
}

type transactionMeta struct {
	NFTokenID     string         `json:"nftoken_id"`
	AffectedNodes []affectedNode `json:"AffectedNodes"`
}

// CollectEvidence decodes every recognised evidence shape from transaction
// metadata, ordered by priority: direct field, modified pages, created pages.
func CollectEvidence(meta json.RawMessage) ([]AssetIDEvidence, error) {
	var m transactionMeta
	if err := json.Unmarshal(meta, &m); err != nil {
		return nil, fmt.Errorf("failed decoding transaction metadata: %w", err)
	}

	evidence := make([]AssetIDEvidence, 0)
	if m.NFTokenID != "" {
		evidence = append(evidence, DirectField{ID: m.NFTokenID})
	}

	created := make([]AssetIDEvidence, 0)
	for _, node := range m.AffectedNodes {
		switch {
		case node.ModifiedNode != nil && node.ModifiedNode.LedgerEntryType == nftokenPageType:
			final := tokenIDs(node.ModifiedNode.FinalFields)
			previous := tokenIDs(node.ModifiedNode.PreviousFields)
			// a page whose token list did not change has no NFTokens in PreviousFields
			if previous != nil && len(final) > len(previous) {
				evidence = append(evidence, ModifiedPage{Previous: previous, Final: final})
			}
		case node.CreatedNode != nil && node.CreatedNode.LedgerEntryType == nftokenPageType:
			initial := tokenIDs(node.CreatedNode.NewFields)
			if len(initial) > 0 {
				created = append(created, CreatedPage{Initial: initial})
			}
		}
	}

	return append(evidence, created...), nil
}

// RecoverAssetID returns the identifier of the minted asset, or false when
// the metadata carries no recognised evidence.
func RecoverAssetID(meta json.RawMessage) (string, bool) {
	evidence, err := CollectEvidence(meta)
	if err != nil {
		return "", false
	}

	for _, e := range evidence {
		if id, ok := resolve(e); ok {
			return id, true
		}
	}
	return "", false
}

func resolve(e AssetIDEvidence) (string, bool) {
	switch ev := e.(type) {
	case DirectField:
		return ev.ID, ev.ID != ""
	case ModifiedPage:
		if len(ev.Final) <= len(ev.Previous) {
			return "", false
		}
		return ev.Final[len(ev.Final)-1], true
	case CreatedPage:
		if len(ev.Initial) == 0 {
			return "", false
		}
		return ev.Initial[0], true
	default:
		return "", false
	}
}

func tokenIDs(fields *pageFields) []string {
	if fields == nil || fields.NFTokens == nil {
		return nil
	}
	ids := make([]string, 0, len(fields.NFTokens))
	for _, t := range fields.NFTokens {
		ids = append(ids, t.NFToken.NFTokenID)
	}
	return ids
}
