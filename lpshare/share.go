package lpshare

import (
	"fmt"
	"log/slog"

	"github.com/krazyTry/invariant-lp-go/decimals"
)

type PositionDetails struct {
	LowerTick int32            `json:"lowerTick"`
	UpperTick int32            `json:"upperTick"`
	Liquidity decimals.Decimal `json:"liquidity"`
}

// ShareChange is the outcome of minting or burning liquidity on the pool's
// full-range position.
type ShareChange struct {
	PositionDetails    PositionDetails   `json:"positionDetails"`
	LpTokenChange      *decimals.Decimal `json:"lpTokenChange"`      // nil when quoting with a zero delta
	TransferredAmounts TokenAmounts      `json:"transferredAmounts"` // paid in on mint, paid out on burn
	LeftoverAmounts    TokenAmounts      `json:"leftoverAmounts"`    // budget not backing liquidity
}

// ComputeLpShareChange applies a liquidity delta to the full-range position
// backed by xBefore and yBefore.
//
// The current liquidity is recovered from the budgets rather than trusted
// from the caller, so the amounts compared before and after the change are
// computed the same way. A zero delta only reports the current state.
func (c *Calculator) ComputeLpShareChange(
	provideLiquidity bool,
	lpTokenSupply decimals.Decimal,
	liquidityDelta decimals.Decimal,
	xBefore decimals.Decimal,
	yBefore decimals.Decimal,
	tickSpacing uint16,
	currentTickIndex int32,
	currentSqrtPrice decimals.Decimal,
) (*ShareChange, error) {
	if liquidityDelta.Sign() < 0 {
		return nil, ErrNegativeLiquidityDelta
	}
	minTick, maxTick, err := c.fullRange(tickSpacing)
	if err != nil {
		return nil, err
	}

	oldAmounts, currentLiquidity, err := c.ComputeMaxLiquidityPosition(xBefore, yBefore, minTick, maxTick, currentTickIndex, currentSqrtPrice)
	if err != nil {
		return nil, fmt.Errorf("current position: %w", err)
	}
	leftover := TokenAmounts{
		X: xBefore.Sub(oldAmounts.X),
		Y: yBefore.Sub(oldAmounts.Y),
	}

	if liquidityDelta.IsZero() {
		return &ShareChange{
			PositionDetails: PositionDetails{LowerTick: minTick, UpperTick: maxTick, Liquidity: currentLiquidity},
			LeftoverAmounts: leftover,
		}, nil
	}

	var newLiquidity decimals.Decimal
	if provideLiquidity {
		newLiquidity = currentLiquidity.Add(liquidityDelta)
	} else {
		if liquidityDelta.GreaterThan(currentLiquidity) {
			return nil, fmt.Errorf("%w: delta %s, liquidity %s", ErrLiquidityUnderflow, liquidityDelta, currentLiquidity)
		}
		newLiquidity = currentLiquidity.Sub(liquidityDelta)
	}

	newAmounts, err := c.CalculateAmountDelta(currentSqrtPrice, newLiquidity, true, currentTickIndex, minTick, maxTick)
	if err != nil {
		return nil, fmt.Errorf("new position: %w", err)
	}

	var transferred TokenAmounts
	if provideLiquidity {
		transferred = TokenAmounts{X: newAmounts.X.Sub(oldAmounts.X), Y: newAmounts.Y.Sub(oldAmounts.Y)}
	} else {
		transferred = TokenAmounts{X: oldAmounts.X.Sub(newAmounts.X), Y: oldAmounts.Y.Sub(newAmounts.Y)}
	}
	if transferred.IsZero() {
		return nil, fmt.Errorf("%w: no tokens transferred", ErrInsufficientLiquidityDelta)
	}

	// minting rounds the share count up, burning rounds it down
	lpTokenChange := LiquidityToLpTokenAmount(lpTokenSupply, currentLiquidity, liquidityDelta, provideLiquidity)
	if lpTokenChange.IsZero() {
		return nil, fmt.Errorf("%w: no lp tokens change", ErrInsufficientLiquidityDelta)
	}

	c.logger.Debug("lp share change",
		slog.Bool("provide", provideLiquidity),
		slog.String("liquidityDelta", liquidityDelta.String()),
		slog.String("currentLiquidity", currentLiquidity.String()),
		slog.String("newLiquidity", newLiquidity.String()),
		slog.String("lpTokenChange", lpTokenChange.String()),
		slog.String("transferredX", transferred.X.String()),
		slog.String("transferredY", transferred.Y.String()),
	)

	return &ShareChange{
		PositionDetails:    PositionDetails{LowerTick: minTick, UpperTick: maxTick, Liquidity: newLiquidity},
		LpTokenChange:      &lpTokenChange,
		TransferredAmounts: transferred,
		LeftoverAmounts:    leftover,
	}, nil
}
