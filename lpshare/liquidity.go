package lpshare

import (
	"fmt"

	"github.com/krazyTry/invariant-lp-go/decimals"
)

// LiquidityByX is the liquidity a token X amount provides and the token Y it requires.
type LiquidityByX struct {
	Liquidity decimals.Decimal `json:"liquidity"`
	Y         decimals.Decimal `json:"y"`
}

// LiquidityByY is the liquidity a token Y amount provides and the token X it requires.
type LiquidityByY struct {
	Liquidity decimals.Decimal `json:"liquidity"`
	X         decimals.Decimal `json:"x"`
}

// MaxLiquidity is the largest liquidity a pair of budgets supports and the
// amounts it consumes.
type MaxLiquidity struct {
	X         decimals.Decimal `json:"x"`
	Y         decimals.Decimal `json:"y"`
	Liquidity decimals.Decimal `json:"liquidity"`
}

func (c *Calculator) GetLiquidityByXInFullRange(
	x decimals.Decimal,
	currentSqrtPrice decimals.Decimal,
	roundingUp bool,
	tickSpacing uint16,
) (LiquidityByX, error) {
	lower, upper, err := c.fullRangePrices(tickSpacing)
	if err != nil {
		return LiquidityByX{}, err
	}
	liquidity, y, err := c.curve.GetLiquidityByXPrice(x, lower, upper, currentSqrtPrice, roundingUp)
	if err != nil {
		return LiquidityByX{}, err
	}
	return LiquidityByX{Liquidity: liquidity, Y: y}, nil
}

func (c *Calculator) GetLiquidityByYInFullRange(
	y decimals.Decimal,
	currentSqrtPrice decimals.Decimal,
	roundingUp bool,
	tickSpacing uint16,
) (LiquidityByY, error) {
	lower, upper, err := c.fullRangePrices(tickSpacing)
	if err != nil {
		return LiquidityByY{}, err
	}
	liquidity, x, err := c.curve.GetLiquidityByYPrice(y, lower, upper, currentSqrtPrice, roundingUp)
	if err != nil {
		return LiquidityByY{}, err
	}
	return LiquidityByY{Liquidity: liquidity, X: x}, nil
}

func (c *Calculator) fullRangePrices(tickSpacing uint16) (lower, upper decimals.Decimal, err error) {
	minTick, maxTick, err := c.fullRange(tickSpacing)
	if err != nil {
		return
	}
	return c.priceBounds(minTick, maxTick)
}

// GetMaxLiquidity returns the largest liquidity obtainable over
// [lowerTick, upperTick] without spending more than x or y.
//
// Each budget is converted on its own. The side promising more liquidity is
// taken when the other token it requires fits the other budget; otherwise
// the other side's full-budget solution is used. The result never exceeds
// either budget and spends one of them in full.
func (c *Calculator) GetMaxLiquidity(
	x decimals.Decimal,
	y decimals.Decimal,
	lowerTick int32,
	upperTick int32,
	currentSqrtPrice decimals.Decimal,
	roundingUp bool,
) (MaxLiquidity, error) {
	maxTick := c.curve.MaxTick()
	if lowerTick < -maxTick || upperTick > maxTick {
		return MaxLiquidity{}, fmt.Errorf("%w: [%d, %d] outside [%d, %d]", ErrInvalidRange, lowerTick, upperTick, -maxTick, maxTick)
	}
	if lowerTick >= upperTick {
		return MaxLiquidity{}, fmt.Errorf("%w: lower %d >= upper %d", ErrInvalidRange, lowerTick, upperTick)
	}

	lower, upper, err := c.priceBounds(lowerTick, upperTick)
	if err != nil {
		return MaxLiquidity{}, err
	}

	byYLiquidity, byYX, err := c.curve.GetLiquidityByYPrice(y, lower, upper, currentSqrtPrice, roundingUp)
	if err != nil {
		return MaxLiquidity{}, fmt.Errorf("liquidity by y: %w", err)
	}
	byXLiquidity, byXY, err := c.curve.GetLiquidityByXPrice(x, lower, upper, currentSqrtPrice, roundingUp)
	if err != nil {
		return MaxLiquidity{}, fmt.Errorf("liquidity by x: %w", err)
	}

	if byXLiquidity.GreaterThan(byYLiquidity) {
		if byXY.LessThanOrEqual(y) {
			return MaxLiquidity{X: x, Y: byXY, Liquidity: byXLiquidity}, nil
		}
		return MaxLiquidity{X: byYX, Y: y, Liquidity: byYLiquidity}, nil
	}
	if byYX.LessThanOrEqual(x) {
		return MaxLiquidity{X: byYX, Y: y, Liquidity: byYLiquidity}, nil
	}
	return MaxLiquidity{X: x, Y: byXY, Liquidity: byXLiquidity}, nil
}

// ComputeMaxLiquidityPosition finds the largest liquidity the budgets support
// and the exact amounts, rounded up, that back it.
func (c *Calculator) ComputeMaxLiquidityPosition(
	xBefore decimals.Decimal,
	yBefore decimals.Decimal,
	minTick int32,
	maxTick int32,
	currentTickIndex int32,
	currentSqrtPrice decimals.Decimal,
) (TokenAmounts, decimals.Decimal, error) {
	best, err := c.GetMaxLiquidity(xBefore, yBefore, minTick, maxTick, currentSqrtPrice, true)
	if err != nil {
		return TokenAmounts{}, decimals.Decimal{}, err
	}
	amounts, err := c.CalculateAmountDelta(currentSqrtPrice, best.Liquidity, true, currentTickIndex, minTick, maxTick)
	if err != nil {
		return TokenAmounts{}, decimals.Decimal{}, err
	}
	return amounts, best.Liquidity, nil
}
