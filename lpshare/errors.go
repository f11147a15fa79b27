package lpshare

import "errors"

var (
	ErrInvalidRange               = errors.New("invalid tick range")
	ErrInsufficientLiquidityDelta = errors.New("insufficient liquidity delta")
	ErrNegativeLiquidityDelta     = errors.New("liquidity delta cannot be negative")
	ErrLiquidityUnderflow         = errors.New("liquidity delta exceeds position liquidity")
	ErrZeroLpTokenSupply          = errors.New("lp token supply is zero")
	ErrInvalidTickSpacing         = errors.New("tick spacing must be positive")
	ErrInconsistentSnapshot       = errors.New("lp token supply and position liquidity disagree")
	ErrNoPosition                 = errors.New("pool has no position")
)
