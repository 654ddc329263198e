// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package address

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ripemd160"
)

const (
	alphabet = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"

	AccountIDLength = 20
	checksumLength  = 4
)

var (
	xrplAlphabet = base58.NewAlphabet(alphabet)

	accountIDPrefix = []byte{0x00}
)

// EncodeClassicAddress encodes a 20 byte account ID as a classic "r..." address.
func EncodeClassicAddress(accountID []byte) (string, error) {
	if len(accountID) != AccountIDLength {
		return "", fmt.Errorf("account ID must be %d bytes, got %d", AccountIDLength, len(accountID))
	}
	return encodeCheck(accountIDPrefix, accountID), nil
}

// DecodeClassicAddress returns the account ID of a classic address,
// verifying its version byte and checksum.
func DecodeClassicAddress(address string) ([]byte, error) {
	payload, err := decodeCheck(address, accountIDPrefix)
	if err != nil {
		return nil, err
	}
	if len(payload) != AccountIDLength {
		return nil, fmt.Errorf("invalid account ID length %d", len(payload))
	}
	return payload, nil
}

func IsValidClassicAddress(address string) bool {
	if len(address) < 25 || len(address) > 35 || address[0] != 'r' {
		return false
	}
	_, err := DecodeClassicAddress(address)
	return err == nil
}

// AccountID derives the account ID of a public key: RIPEMD160(SHA256(pubKey)).
func AccountID(publicKey []byte) []byte {
	sha := sha256.Sum256(publicKey)
	h := ripemd160.New()
	_, _ = h.Write(sha[:])
	return h.Sum(nil)
}

func encodeCheck(prefix []byte, payload []byte) string {
	data := make([]byte, 0, len(prefix)+len(payload)+checksumLength)
	data = append(data, prefix...)
	data = append(data, payload...)
	data = append(data, checksum(data)...)
	return base58.EncodeAlphabet(data, xrplAlphabet)
}

func decodeCheck(encoded string, prefix []byte) ([]byte, error) {
	data, err := base58.DecodeAlphabet(encoded, xrplAlphabet)
	if err != nil {
		return nil, fmt.Errorf("invalid base58 encoding: %w", err)
	}
	if len(data) < len(prefix)+checksumLength {
		return nil, fmt.Errorf("encoded value too short")
	}

	body := data[:len(data)-checksumLength]
	if !bytes.Equal(checksum(body), data[len(data)-checksumLength:]) {
		return nil, fmt.Errorf("checksum mismatch")
	}
	if !bytes.HasPrefix(body, prefix) {
		return nil, fmt.Errorf("unexpected version prefix")
	}
	return body[len(prefix):], nil
}

func checksum(data []byte) []byte {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return second[:checksumLength]
}
