package lpshare

import (
	"log/slog"

	"github.com/krazyTry/invariant-lp-go/decimals"
	"github.com/krazyTry/invariant-lp-go/invariant"
)

// Curve is the concentrated-liquidity price curve the share accounting runs on.
type Curve interface {
	CalculatePriceSqrt(tickIndex int32) (decimals.Decimal, error)
	GetDeltaX(sqrtPriceA, sqrtPriceB, liquidity decimals.Decimal, roundingUp bool) (decimals.Decimal, error)
	GetDeltaY(sqrtPriceA, sqrtPriceB, liquidity decimals.Decimal, roundingUp bool) (decimals.Decimal, error)
	GetLiquidityByXPrice(x, lowerSqrtPrice, upperSqrtPrice, currentSqrtPrice decimals.Decimal, roundingUp bool) (liquidity, y decimals.Decimal, err error)
	GetLiquidityByYPrice(y, lowerSqrtPrice, upperSqrtPrice, currentSqrtPrice decimals.Decimal, roundingUp bool) (liquidity, x decimals.Decimal, err error)
	GetMinTick(tickSpacing uint16) int32
	GetMaxTick(tickSpacing uint16) int32
	MaxTick() int32
}

var _ Curve = invariant.Math{}

// Calculator computes LP share changes for a single full-range position.
// It holds no mutable state and is safe for concurrent use.
type Calculator struct {
	curve  Curve
	logger *slog.Logger
}

// New returns a Calculator on the given curve. A nil curve selects the
// Invariant protocol math.
func New(
	curve Curve,
	opts ...Option,
) *Calculator {
	if curve == nil {
		curve = invariant.Math{}
	}
	c := &Calculator{
		curve:  curve,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, fn := range opts {
		fn(c)
	}
	return c
}

type Option func(*Calculator)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Calculator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// fullRange returns the widest tick range a position may span for the spacing.
func (c *Calculator) fullRange(tickSpacing uint16) (minTick, maxTick int32, err error) {
	if tickSpacing == 0 {
		return 0, 0, ErrInvalidTickSpacing
	}
	return c.curve.GetMinTick(tickSpacing), c.curve.GetMaxTick(tickSpacing), nil
}
