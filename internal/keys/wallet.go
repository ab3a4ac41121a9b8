// Package keys derives EVM wallets from BIP-39 mnemonics.
package keys

import (
	"crypto/ecdsa"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"walletapi/internal/constant"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/tyler-smith/go-bip32"
	"github.com/tyler-smith/go-bip39"
)

var ErrInvalidMnemonic = errors.New("invalid mnemonic")

// Wallet is a freshly derived account. It is handed to the caller once and
// never stored.
type Wallet struct {
	Address    string
	PrivateKey string
	Mnemonic   string

	key *ecdsa.PrivateKey
}

// ECDSA returns the signing key behind the wallet.
func (w *Wallet) ECDSA() *ecdsa.PrivateKey {
	return w.key
}

// Generate creates a wallet from 128 bits of fresh entropy. Entropy and
// derivation cannot fail for well-formed input, so a failure here is a bug.
func Generate() *Wallet {
	entropy, err := bip39.NewEntropy(constant.MnemonicEntropyBits)
	if err != nil {
		panic(fmt.Sprintf("keys: read entropy: %v", err))
	}
	w, err := FromEntropy(entropy)
	if err != nil {
		panic(fmt.Sprintf("keys: derive wallet: %v", err))
	}
	return w
}

// FromEntropy encodes entropy as a mnemonic and derives the wallet from it.
// The same entropy always yields the same wallet.
func FromEntropy(entropy []byte) (*Wallet, error) {
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, fmt.Errorf("encode mnemonic: %w", err)
	}
	return FromMnemonic(mnemonic)
}

// FromMnemonic re-derives the wallet at the standard path without passphrase.
func FromMnemonic(mnemonic string) (*Wallet, error) {
	mnemonic = strings.Join(strings.Fields(mnemonic), " ")
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidMnemonic
	}
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, "")
	if err != nil {
		return nil, fmt.Errorf("derive seed: %w", err)
	}

	key, err := deriveKey(seed, constant.DerivationPath)
	if err != nil {
		return nil, err
	}

	return &Wallet{
		Address:    crypto.PubkeyToAddress(key.PublicKey).Hex(),
		PrivateKey: hex.EncodeToString(crypto.FromECDSA(key)),
		Mnemonic:   mnemonic,
		key:        key,
	}, nil
}

func deriveKey(seed []byte, path string) (*ecdsa.PrivateKey, error) {
	indices, err := parsePath(path)
	if err != nil {
		return nil, err
	}

	node, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, fmt.Errorf("create master key: %w", err)
	}
	for _, idx := range indices {
		node, err = node.NewChildKey(idx)
		if err != nil {
			return nil, fmt.Errorf("derive child %d: %w", idx, err)
		}
	}

	// bip32 may hand back 33 bytes with a leading zero, or fewer than 32.
	raw := node.Key
	if len(raw) == 33 && raw[0] == 0 {
		raw = raw[1:]
	}
	key, err := crypto.ToECDSA(common.LeftPadBytes(raw, 32))
	if err != nil {
		return nil, fmt.Errorf("load derived key: %w", err)
	}
	return key, nil
}

// parsePath turns "m/44'/60'/0'/0/0" into child indices.
func parsePath(path string) ([]uint32, error) {
	path = strings.TrimSpace(path)
	if !strings.HasPrefix(path, "m/") {
		return nil, fmt.Errorf("invalid derivation path %q", path)
	}

	segments := strings.Split(path[2:], "/")
	indices := make([]uint32, 0, len(segments))
	for _, seg := range segments {
		hardened := strings.HasSuffix(seg, "'") || strings.HasSuffix(seg, "h")
		if hardened {
			seg = seg[:len(seg)-1]
		}
		v, err := strconv.ParseUint(seg, 10, 31)
		if err != nil {
			return nil, fmt.Errorf("invalid path segment %q: %w", seg, err)
		}
		idx := uint32(v)
		if hardened {
			idx += bip32.FirstHardenedChild
		}
		indices = append(indices, idx)
	}
	return indices, nil
}
