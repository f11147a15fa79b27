package lpshare

import (
	"github.com/krazyTry/invariant-lp-go/decimals"
)

// ONE_LP_TOKEN is the liquidity one LP token stands for when the pool is
// empty. A full-range position holds at most about 2^85 liquidity and the
// token keeps 64 bits of accuracy.
const ONE_LP_TOKEN = 1 << (85 - 64)

var oneLpToken = decimals.New(ONE_LP_TOKEN)

// LiquidityToLpTokenAmount converts a liquidity change into LP tokens at the
// rate set by the current supply and liquidity. An empty pool mints at
// ONE_LP_TOKEN liquidity per token, truncated.
func LiquidityToLpTokenAmount(
	lpTokenSupply decimals.Decimal,
	currentLiquidity decimals.Decimal,
	liquidityDelta decimals.Decimal,
	roundingUp bool,
) decimals.Decimal {
	if currentLiquidity.IsZero() {
		return decimals.DivRound(liquidityDelta, oneLpToken, false)
	}
	return decimals.MulDivRound(liquidityDelta, lpTokenSupply, currentLiquidity, roundingUp)
}

// LpTokenAmountToLiquidity is the inverse of LiquidityToLpTokenAmount for a
// non-empty pool.
func LpTokenAmountToLiquidity(
	lpTokenAmount decimals.Decimal,
	currentLiquidity decimals.Decimal,
	lpTokenSupply decimals.Decimal,
	roundingUp bool,
) (decimals.Decimal, error) {
	if lpTokenSupply.IsZero() {
		return decimals.Decimal{}, ErrZeroLpTokenSupply
	}
	return decimals.MulDiv(lpTokenAmount, currentLiquidity, lpTokenSupply, roundingUp)
}
