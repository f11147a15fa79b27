package invariant

import "github.com/krazyTry/invariant-lp-go/decimals"

// Math exposes the package functions as a value so they can be injected
// wherever a price curve is expected.
type Math struct{}

func (Math) CalculatePriceSqrt(tickIndex int32) (decimals.Decimal, error) {
	return CalculatePriceSqrt(tickIndex)
}

func (Math) GetDeltaX(sqrtPriceA, sqrtPriceB, liquidity decimals.Decimal, roundingUp bool) (decimals.Decimal, error) {
	return GetDeltaX(sqrtPriceA, sqrtPriceB, liquidity, roundingUp)
}

func (Math) GetDeltaY(sqrtPriceA, sqrtPriceB, liquidity decimals.Decimal, roundingUp bool) (decimals.Decimal, error) {
	return GetDeltaY(sqrtPriceA, sqrtPriceB, liquidity, roundingUp)
}

func (Math) GetLiquidityByXPrice(x, lowerSqrtPrice, upperSqrtPrice, currentSqrtPrice decimals.Decimal, roundingUp bool) (liquidity, y decimals.Decimal, err error) {
	r, err := GetLiquidityByXPrice(x, lowerSqrtPrice, upperSqrtPrice, currentSqrtPrice, roundingUp)
	return r.Liquidity, r.Amount, err
}

func (Math) GetLiquidityByYPrice(y, lowerSqrtPrice, upperSqrtPrice, currentSqrtPrice decimals.Decimal, roundingUp bool) (liquidity, x decimals.Decimal, err error) {
	r, err := GetLiquidityByYPrice(y, lowerSqrtPrice, upperSqrtPrice, currentSqrtPrice, roundingUp)
	return r.Liquidity, r.Amount, err
}

func (Math) GetMinTick(tickSpacing uint16) int32 { return GetMinTick(tickSpacing) }
func (Math) GetMaxTick(tickSpacing uint16) int32 { return GetMaxTick(tickSpacing) }
func (Math) MaxTick() int32 { return MAX_TICK }
