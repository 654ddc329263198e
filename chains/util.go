// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package chains

import (
	"encoding/hex"
	"math/big"
	"strings"
)

// AssetIDLength is the length of a hex encoded source ledger asset identifier.
const AssetIDLength = 64

// IsAssetID reports whether id is a 64 character hex string.
func IsAssetID(id string) bool {
	if len(id) != AssetIDLength {
		return false
	}
	_, err := hex.DecodeString(id)
	return err == nil
}

// FormatUnits renders amount with the given number of decimals, trimming
// trailing zeros of the fractional part.
func FormatUnits(amount *big.Int, decimals int) string {
	if amount == nil {
		return "0"
	}

	negative := amount.Sign() < 0
	digits := new(big.Int).Abs(amount).String()
	if len(digits) <= decimals {
		digits = strings.Repeat("0", decimals-len(digits)+1) + digits
	}

	whole := digits[:len(digits)-decimals]
	fraction := strings.TrimRight(digits[len(digits)-decimals:], "0")

	result := whole
	if fraction != "" {
		result = whole + "." + fraction
	}
	if negative {
		result = "-" + result
	}
	return result
}
