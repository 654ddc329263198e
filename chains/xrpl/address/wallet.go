// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package address

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha512"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
)

type KeyType string

const (
	Secp256k1 KeyType = "secp256k1"
	Ed25519   KeyType = "ed25519"

	seedEntropyLength = 16
)

var (
	secp256k1SeedPrefix = []byte{0x21}
	ed25519SeedPrefix   = []byte{0x01, 0xE1, 0x4B}
	ed25519KeyPrefix    = byte(0xED)
)

// Wallet is a source ledger account derived from a family seed.
type Wallet struct {
	Seed       string
	KeyType    KeyType
	PublicKey  string
	PrivateKey string
	Address    string
}

// GenerateWallet creates a new ed25519 wallet from random entropy.
func GenerateWallet() (*Wallet, error) {
	entropy := make([]byte, seedEntropyLength)
	if _, err := rand.Read(entropy); err != nil {
		return nil, err
	}
	return walletFromEntropy(entropy, Ed25519)
}

// WalletFromSeed derives the keys and classic address of a family seed.
func WalletFromSeed(seed string) (*Wallet, error) {
	entropy, keyType, err := DecodeSeed(seed)
	if err != nil {
		return nil, err
	}
	return walletFromEntropy(entropy, keyType)
}

func IsValidSeed(seed string) bool {
	_, _, err := DecodeSeed(seed)
	return err == nil
}

// EncodeSeed encodes 16 bytes of entropy as a family seed of the given key type.
func EncodeSeed(entropy []byte, keyType KeyType) (string, error) {
	if len(entropy) != seedEntropyLength {
		return "", fmt.Errorf("seed entropy must be %d bytes", seedEntropyLength)
	}
	switch keyType {
	case Ed25519:
		return encodeCheck(ed25519SeedPrefix, entropy), nil
	case Secp256k1:
		return encodeCheck(secp256k1SeedPrefix, entropy), nil
	default:
		return "", fmt.Errorf("unsupported key type %s", keyType)
	}
}

func DecodeSeed(seed string) ([]byte, KeyType, error) {
	if entropy, err := decodeCheck(seed, ed25519SeedPrefix); err == nil && len(entropy) == seedEntropyLength {
		return entropy, Ed25519, nil
	}
	entropy, err := decodeCheck(seed, secp256k1SeedPrefix)
	if err != nil {
		return nil, "", fmt.Errorf("invalid seed: %w", err)
	}
	if len(entropy) != seedEntropyLength {
		return nil, "", fmt.Errorf("invalid seed length %d", len(entropy))
	}
	return entropy, Secp256k1, nil
}

func walletFromEntropy(entropy []byte, keyType KeyType) (*Wallet, error) {
	seed, err := EncodeSeed(entropy, keyType)
	if err != nil {
		return nil, err
	}

	var publicKey, privateKey []byte
	switch keyType {
	case Ed25519:
		publicKey, privateKey = deriveEd25519(entropy)
	case Secp256k1:
		publicKey, privateKey = deriveSecp256k1(entropy)
	}

	address, err := EncodeClassicAddress(AccountID(publicKey))
	if err != nil {
		return nil, err
	}

	return &Wallet{
		Seed:       seed,
		KeyType:    keyType,
		PublicKey:  strings.ToUpper(hex.EncodeToString(publicKey)),
		PrivateKey: strings.ToUpper(hex.EncodeToString(privateKey)),
		Address:    address,
	}, nil
}

func deriveEd25519(entropy []byte) ([]byte, []byte) {
	raw := sha512Half(entropy)
	key := ed25519.NewKeyFromSeed(raw)

	publicKey := append([]byte{ed25519KeyPrefix}, key.Public().(ed25519.PublicKey)...)
	privateKey := append([]byte{ed25519KeyPrefix}, raw...)
	return publicKey, privateKey
}

// deriveSecp256k1 derives the account keypair at index 0 of the seed's root generator.
func deriveSecp256k1(entropy []byte) ([]byte, []byte) {
	order := crypto.S256().Params().N

	rootPrivate := deriveScalar(entropy, nil, order)
	rootPublic := compressedPoint(rootPrivate)

	index := uint32(0)
	private := deriveScalar(rootPublic, &index, order)
	private.Add(private, rootPrivate)
	private.Mod(private, order)

	return compressedPoint(private), math.PaddedBigBytes(private, 32)
}

func deriveScalar(data []byte, discriminator *uint32, order *big.Int) *big.Int {
	for i := uint32(0); ; i++ {
		buf := make([]byte, 0, len(data)+8)
		buf = append(buf, data...)
		if discriminator != nil {
			buf = binary.BigEndian.AppendUint32(buf, *discriminator)
		}
		buf = binary.BigEndian.AppendUint32(buf, i)

		key := new(big.Int).SetBytes(sha512Half(buf))
		if key.Sign() > 0 && key.Cmp(order) < 0 {
			return key
		}
	}
}

func compressedPoint(scalar *big.Int) []byte {
	x, y := crypto.S256().ScalarBaseMult(math.PaddedBigBytes(scalar, 32))
	prefix := byte(0x02)
	if y.Bit(0) == 1 {
		prefix = 0x03
	}
	return append([]byte{prefix}, math.PaddedBigBytes(x, 32)...)
}

func sha512Half(data []byte) []byte {
	sum := sha512.Sum512(data)
	return sum[:32]
}
