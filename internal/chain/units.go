package chain

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// maxUintBits is the width of an EVM word; values must fit in it.
const maxUintBits = 256

var (
	ErrNegativeAmount   = errors.New("amount must not be negative")
	ErrTooManyDecimals  = errors.New("too many decimal places")
	ErrAmountOverflow   = errors.New("amount overflows 256 bits")
	ErrMalformedAmount  = errors.New("amount is not a decimal number")
	errNegativeDecimals = errors.New("decimals must not be negative")
)

// ParseUnits converts a display-unit decimal string ("0.1") into the smallest
// unit integer using the given number of fractional digits.
func ParseUnits(amount string, decimals int32) (*big.Int, error) {
	if decimals < 0 {
		return nil, errNegativeDecimals
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrMalformedAmount, amount)
	}
	if d.Sign() < 0 {
		return nil, ErrNegativeAmount
	}
	if d.Exponent() < -decimals {
		return nil, ErrTooManyDecimals
	}
	// 10^78 > 2^256, reject before materialising a huge integer.
	if int64(d.Exponent())+int64(decimals) > 78 {
		return nil, ErrAmountOverflow
	}

	v := d.Shift(decimals).BigInt()
	if v.BitLen() > maxUintBits {
		return nil, ErrAmountOverflow
	}
	return v, nil
}

// FormatUnits renders a smallest-unit integer with exactly decimals
// fractional digits, e.g. 10^17 with 18 decimals is "0.100000000000000000".
func FormatUnits(v *big.Int, decimals int32) string {
	if v == nil {
		v = new(big.Int)
	}
	return decimal.NewFromBigInt(v, -decimals).StringFixed(decimals)
}
