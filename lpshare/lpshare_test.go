package lpshare

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krazyTry/invariant-lp-go/decimals"
	"github.com/krazyTry/invariant-lp-go/invariant"
)

var (
	priceOne       = decimals.FromInteger(1, decimals.PriceScale)
	priceAtTick100 = decimals.MustFromString("1005012269622000000000000")
)

func dec(s string) decimals.Decimal { return decimals.MustFromString(s) }

func randomBelow(t *testing.T, limit *big.Int) decimals.Decimal {
	t.Helper()
	v, err := rand.Int(rand.Reader, limit)
	require.NoError(t, err)
	return decimals.NewFromBigInt(v)
}

func TestGetLiquidityInFullRange(t *testing.T) {
	c := New(invariant.Math{})

	byX, err := c.GetLiquidityByXInFullRange(decimals.New(430000), priceAtTick100, true, 1)
	require.NoError(t, err)
	assert.Equal(t, "485223000000", byX.Liquidity.String())
	assert.Equal(t, "434852", byX.Y.String())

	byY, err := c.GetLiquidityByYInFullRange(decimals.New(430000), priceAtTick100, true, 1)
	require.NoError(t, err)
	assert.Equal(t, "479808979700", byY.Liquidity.String())
	assert.Equal(t, "425203", byY.X.String())

	_, err = c.GetLiquidityByXInFullRange(decimals.New(430000), priceAtTick100, true, 0)
	assert.ErrorIs(t, err, ErrInvalidTickSpacing)
}

func TestCalculateAmountDelta(t *testing.T) {
	c := New(nil)
	minTick, maxTick := invariant.GetMinTick(1), invariant.GetMaxTick(1)

	amounts, err := c.CalculateAmountDelta(priceAtTick100, dec("485223000000"), true, 100, minTick, maxTick)
	require.NoError(t, err)
	assert.Equal(t, "430000", amounts.X.String())
	assert.Equal(t, "434852", amounts.Y.String())

	amounts, err = c.CalculateAmountDelta(priceAtTick100, dec("485223000000"), false, 100, minTick, maxTick)
	require.NoError(t, err)
	assert.Equal(t, "429999", amounts.X.String())
	assert.Equal(t, "434851", amounts.Y.String())

	amounts, err = c.CalculateAmountDelta(priceAtTick100, dec("485220000000"), true, 100, -invariant.TICK_LIMIT, invariant.TICK_LIMIT)
	require.NoError(t, err)
	assert.Equal(t, "430000", amounts.X.String())
	assert.Equal(t, "434852", amounts.Y.String())
}

func TestCalculateAmountDeltaRegimes(t *testing.T) {
	c := New(nil)
	liquidity := dec("1000000000000")

	below, err := c.CalculateAmountDelta(priceOne, liquidity, true, -10, -5, 5)
	require.NoError(t, err)
	assert.True(t, below.X.Sign() > 0)
	assert.True(t, below.Y.IsZero())

	inside, err := c.CalculateAmountDelta(priceOne, liquidity, true, 0, -5, 5)
	require.NoError(t, err)
	assert.True(t, inside.X.Sign() > 0)
	assert.True(t, inside.Y.Sign() > 0)

	// the upper tick itself is outside the range
	above, err := c.CalculateAmountDelta(priceOne, liquidity, true, 5, -5, 5)
	require.NoError(t, err)
	assert.True(t, above.X.IsZero())
	assert.True(t, above.Y.Sign() > 0)

	_, err = c.CalculateAmountDelta(priceOne, liquidity, true, 0, 5, 5)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestGetMaxLiquidity(t *testing.T) {
	c := New(nil)
	budget := dec("18446744073692774399") // 2^64 - 1 - 2^24
	maxTick := invariant.GetMaxTick(100)

	result, err := c.GetMaxLiquidity(budget, budget, -maxTick, maxTick, priceOne, true)
	require.NoError(t, err)
	assert.Equal(t, "18447025809048884511436060", result.Liquidity.String())
	assert.True(t, result.X.LessThanOrEqual(budget))
	assert.True(t, result.Y.LessThanOrEqual(budget))

	minTick1, maxTick1 := invariant.GetMinTick(1), invariant.GetMaxTick(1)
	result, err = c.GetMaxLiquidity(decimals.New(430000), decimals.New(434852), minTick1, maxTick1, priceAtTick100, true)
	require.NoError(t, err)
	assert.Equal(t, "485223010326", result.Liquidity.String())
	assert.Equal(t, "430000", result.X.String())
	assert.Equal(t, "434852", result.Y.String())

	// X would need more Y than available, so Y limits the position
	result, err = c.GetMaxLiquidity(decimals.New(3_000_000), decimals.New(1_000_000), minTick1, maxTick1, priceOne, true)
	require.NoError(t, err)
	assert.Equal(t, "1122110649953", result.Liquidity.String())
	assert.Equal(t, "1000000", result.X.String())
	assert.Equal(t, "1000000", result.Y.String())
}

func TestGetMaxLiquidityInvalidRange(t *testing.T) {
	c := New(nil)
	tests := []struct {
		name         string
		lower, upper int32
	}{
		{"equal", 10, 10},
		{"inverted", 10, -10},
		{"below min", -invariant.MAX_TICK - 1, 0},
		{"above max", 0, invariant.MAX_TICK + 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.GetMaxLiquidity(decimals.New(100), decimals.New(100), tt.lower, tt.upper, priceOne, true)
			assert.ErrorIs(t, err, ErrInvalidRange)
		})
	}
}

func TestGetMaxLiquidityPriceOutOfRange(t *testing.T) {
	c := New(nil)
	tests := []struct {
		name         string
		lower, upper int32
	}{
		{"price above range", -20, -10},
		{"price below range", 10, 20},
		{"at lower", 0, 10},
		{"at upper", -10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.GetMaxLiquidity(decimals.New(1_000_000), decimals.New(1_000_000), tt.lower, tt.upper, priceOne, true)
			assert.ErrorIs(t, err, invariant.ErrPriceOutOfRange)
		})
	}
}

func TestGetMaxLiquidityWithinBudget(t *testing.T) {
	c := New(nil)
	limit := new(big.Int).Lsh(big.NewInt(1), 64)
	spacings := []uint16{1, 2, 10, 100}

	for i := 0; i < 200; i++ {
		x := randomBelow(t, limit)
		y := randomBelow(t, limit)
		spacing := spacings[i%len(spacings)]
		maxTick := invariant.GetMaxTick(spacing)
		// strictly inside the range, where both tokens can be deposited
		tick := int32(randomBelow(t, big.NewInt(int64(2*maxTick-1))).BigInt().Int64()) - maxTick + 1
		sqrtPrice, err := invariant.CalculatePriceSqrt(tick)
		require.NoError(t, err)

		result, err := c.GetMaxLiquidity(x, y, -maxTick, maxTick, sqrtPrice, true)
		require.NoError(t, err)
		require.True(t, result.X.LessThanOrEqual(x), "x %s > budget %s at tick %d", result.X, x, tick)
		require.True(t, result.Y.LessThanOrEqual(y), "y %s > budget %s at tick %d", result.Y, y, tick)
		require.True(t, result.X.Equal(x) || result.Y.Equal(y))
	}
}

func TestComputeMaxLiquidityPosition(t *testing.T) {
	c := New(nil)
	minTick, maxTick := invariant.GetMinTick(1), invariant.GetMaxTick(1)

	amounts, liquidity, err := c.ComputeMaxLiquidityPosition(decimals.New(430000), decimals.New(434852), minTick, maxTick, 100, priceAtTick100)
	require.NoError(t, err)
	assert.Equal(t, "485223010326", liquidity.String())
	assert.Equal(t, "430000", amounts.X.String())
	assert.Equal(t, "434852", amounts.Y.String())
}
