package decimal_math

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// ToUIAmount renders a raw token amount with the mint's decimals.
func ToUIAmount(raw *big.Int, decimals uint8) decimal.Decimal {
	if raw == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(raw, -int32(decimals))
}

// FromUIAmount converts a human amount back to raw units. Digits beyond the
// mint's precision are dropped.
func FromUIAmount(ui decimal.Decimal, decimals uint8) *big.Int {
	return ui.Shift(int32(decimals)).Truncate(0).BigInt()
}

// FixedToDecimal interprets v as a fixed-point number with scale fractional digits.
func FixedToDecimal(v *big.Int, scale int32) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(v, -scale)
}

// SqrtPriceToPrice squares a fixed-point sqrt price and adjusts it to a
// human price of token Y per token X.
func SqrtPriceToPrice(sqrtPrice *big.Int, scale int32, decimalsX, decimalsY uint8, places int32) decimal.Decimal {
	s := FixedToDecimal(sqrtPrice, scale)
	return s.Mul(s).Shift(int32(decimalsX) - int32(decimalsY)).Round(places)
}
