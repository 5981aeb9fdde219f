package utils

import (
	"fmt"
	"math/big"
	"strings"
)

// MaxUint256 is the largest value a uint256 argument can carry.
var MaxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

// ParseBigInt parses a decimal or 0x-prefixed hex integer.
func ParseBigInt(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty integer")
	}
	base := 10
	digits := s
	negative := false
	if strings.HasPrefix(digits, "-") {
		negative = true
		digits = digits[1:]
	}
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		base = 16
		digits = digits[2:]
	}
	// SetString accepts its own sign, which would let "--5" or "0x-5" through.
	if digits == "" || digits[0] == '-' || digits[0] == '+' {
		return nil, fmt.Errorf("%q is not an integer", s)
	}
	v, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, fmt.Errorf("%q is not an integer", s)
	}
	if negative {
		v.Neg(v)
	}
	return v, nil
}

// ParseUint256 parses an integer and checks it fits an unsigned 256-bit word.
func ParseUint256(s string) (*big.Int, error) {
	v, err := ParseBigInt(s)
	if err != nil {
		return nil, err
	}
	if v.Sign() < 0 || v.Cmp(MaxUint256) > 0 {
		return nil, fmt.Errorf("%s is out of uint256 range", s)
	}
	return v, nil
}

// FormatBigInt converts a big.Int value to a human-readable string,
// considering the given number of decimals.
// Example: amount=1234500000000000000, decimals=18 => "1.2345"
func FormatBigInt(amount *big.Int, decimals uint8) (string, error) {
	if amount == nil {
		return "0", nil
	}
	if decimals == 0 {
		return amount.String(), nil
	}

	amountFloat := new(big.Float).SetPrec(256).SetInt(amount)
	divisor := new(big.Float).SetPrec(256).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil))
	value := new(big.Float).SetPrec(256).Quo(amountFloat, divisor)

	formattedStr := value.Text('f', int(decimals))
	if strings.Contains(formattedStr, ".") {
		formattedStr = strings.TrimRight(formattedStr, "0")
		formattedStr = strings.TrimRight(formattedStr, ".")
	}
	if formattedStr == "" || formattedStr == "-0" {
		if amount.Sign() == 0 {
			return "0", nil
		}
		return value.Text('f', 2), fmt.Errorf("formatting resulted in empty string for non-zero value")
	}
	return formattedStr, nil
}
