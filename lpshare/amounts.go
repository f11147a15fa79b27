package lpshare

import (
	"fmt"

	"github.com/krazyTry/invariant-lp-go/decimals"
)

// TokenAmounts is a pair of raw token amounts.
type TokenAmounts struct {
	X decimals.Decimal `json:"x"`
	Y decimals.Decimal `json:"y"`
}

func (a TokenAmounts) IsZero() bool {
	return a.X.IsZero() && a.Y.IsZero()
}

// CalculateAmountDelta returns the token amounts backing liquidityDelta over
// [lowerTick, upperTick) at the current price. liquiditySign only picks the
// rounding direction: adding liquidity rounds up, removing rounds down.
func (c *Calculator) CalculateAmountDelta(
	currentSqrtPrice decimals.Decimal,
	liquidityDelta decimals.Decimal,
	liquiditySign bool,
	currentTickIndex int32,
	lowerTick int32,
	upperTick int32,
) (TokenAmounts, error) {
	if lowerTick >= upperTick {
		return TokenAmounts{}, fmt.Errorf("%w: lower %d >= upper %d", ErrInvalidRange, lowerTick, upperTick)
	}

	lower, upper, err := c.priceBounds(lowerTick, upperTick)
	if err != nil {
		return TokenAmounts{}, err
	}

	var amounts TokenAmounts
	switch {
	case currentTickIndex < lowerTick:
		amounts.X, err = c.curve.GetDeltaX(lower, upper, liquidityDelta, liquiditySign)
	case currentTickIndex < upperTick:
		if amounts.X, err = c.curve.GetDeltaX(currentSqrtPrice, upper, liquidityDelta, liquiditySign); err != nil {
			return TokenAmounts{}, err
		}
		amounts.Y, err = c.curve.GetDeltaY(lower, currentSqrtPrice, liquidityDelta, liquiditySign)
	default:
		amounts.Y, err = c.curve.GetDeltaY(lower, upper, liquidityDelta, liquiditySign)
	}
	if err != nil {
		return TokenAmounts{}, err
	}
	return amounts, nil
}

func (c *Calculator) priceBounds(lowerTick, upperTick int32) (lower, upper decimals.Decimal, err error) {
	if lower, err = c.curve.CalculatePriceSqrt(lowerTick); err != nil {
		return
	}
	upper, err = c.curve.CalculatePriceSqrt(upperTick)
	return
}
