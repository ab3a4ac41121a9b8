package chain

import (
	"crypto/ecdsa"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// ParseAddress accepts a 20-byte hex address with or without the 0x prefix,
// in any letter case.
func ParseAddress(s string) (common.Address, bool) {
	if !common.IsHexAddress(s) {
		return common.Address{}, false
	}
	return common.HexToAddress(s), true
}

// ChecksumAddress returns the EIP-55 mixed-case form of a valid address.
func ChecksumAddress(s string) string {
	return common.HexToAddress(s).Hex()
}

// LowercaseAddress returns the 0x-prefixed lowercase hex form.
func LowercaseAddress(addr common.Address) string {
	return strings.ToLower(addr.Hex())
}

// IsChecksumValid reports whether the caller's casing is exactly the
// canonical checksum encoding.
func IsChecksumValid(s string) bool {
	if !common.IsHexAddress(s) {
		return false
	}
	if !has0xPrefix(s) {
		s = "0x" + s
	}
	return s == ChecksumAddress(s)
}

// ParseTxHash accepts a 32-byte hex hash with or without the 0x prefix.
func ParseTxHash(s string) (common.Hash, bool) {
	if !has0xPrefix(s) {
		s = "0x" + s
	}
	b, err := hexutil.Decode(s)
	if err != nil || len(b) != common.HashLength {
		return common.Hash{}, false
	}
	return common.BytesToHash(b), true
}

// ParsePrivateKey decodes a hex secp256k1 scalar, 0x prefix optional.
func ParsePrivateKey(s string) (*ecdsa.PrivateKey, error) {
	if has0xPrefix(s) {
		s = s[2:]
	}
	return crypto.HexToECDSA(s)
}

func has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
