package chain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const vitalik = "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"

func TestParseAddress(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{"checksummed", vitalik, true},
		{"lowercase", strings.ToLower(vitalik), true},
		{"no prefix", strings.TrimPrefix(vitalik, "0x"), true},
		{"not an address", "not-an-address", false},
		{"too short", "0x1234", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ParseAddress(tt.input)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestChecksumAddressIdempotent(t *testing.T) {
	inputs := []string{
		vitalik,
		strings.ToLower(vitalik),
		strings.ToUpper("0x" + strings.TrimPrefix(vitalik, "0x")[:40]),
		"0x0000000000000000000000000000000000000000",
	}
	for _, in := range inputs {
		once := ChecksumAddress(in)
		assert.Equal(t, once, ChecksumAddress(once), in)
		assert.Equal(t, strings.ToLower(once), strings.ToLower("0x"+strings.TrimPrefix(strings.TrimPrefix(in, "0x"), "0X")), in)
	}
}

func TestChecksumMatchesLowercase(t *testing.T) {
	addr, ok := ParseAddress(vitalik)
	require.True(t, ok)
	assert.Equal(t, strings.ToLower(ChecksumAddress(vitalik)), LowercaseAddress(addr))
}

func TestIsChecksumValid(t *testing.T) {
	assert.True(t, IsChecksumValid(vitalik))
	assert.True(t, IsChecksumValid(strings.TrimPrefix(vitalik, "0x")))
	assert.False(t, IsChecksumValid(strings.ToLower(vitalik)))
	assert.False(t, IsChecksumValid("0xD8dA6BF26964aF9D7eEd9e03E53415D37aA96045"))
	assert.False(t, IsChecksumValid("garbage"))
}

func TestParseTxHash(t *testing.T) {
	const h = "0x88df016429689c079f3b2f6ad39fa052532c56795b733da78a91ebe6a713944b"

	got, ok := ParseTxHash(h)
	require.True(t, ok)
	assert.Equal(t, h, got.Hex())

	_, ok = ParseTxHash(strings.TrimPrefix(h, "0x"))
	assert.True(t, ok)

	for _, bad := range []string{"", "0x", "0x1234", h + "00", "0xzz" + h[4:]} {
		_, ok := ParseTxHash(bad)
		assert.False(t, ok, bad)
	}
}

func TestParsePrivateKey(t *testing.T) {
	const key = "1ab42cc412b618bdea3a599e3c9bae199ebf030895b039e9db1e30dafb12b727"

	for _, in := range []string{key, "0x" + key} {
		pk, err := ParsePrivateKey(in)
		require.NoError(t, err, in)
		assert.NotNil(t, pk)
	}

	for _, bad := range []string{"", "0x", "zz", key[:60]} {
		_, err := ParsePrivateKey(bad)
		assert.Error(t, err, bad)
	}
}
