package lpshare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krazyTry/invariant-lp-go/decimals"
	"github.com/krazyTry/invariant-lp-go/invariant"
)

// seededPool holds one full-range position minted with 1000 LP tokens at price 1.
func seededPool() *PoolSnapshot {
	return &PoolSnapshot{
		TickSpacing:   1,
		SqrtPrice:     priceOne,
		LpTokenSupply: decimals.New(1000),
		Position:      &PositionState{Liquidity: decimals.New(ONE_LP_TOKEN * 1000)},
	}
}

func TestBudget(t *testing.T) {
	c := New(nil)

	budget, err := c.Budget(seededPool())
	require.NoError(t, err)
	assert.Equal(t, "1868", budget.X.String())
	assert.Equal(t, "1868", budget.Y.String())

	s := &PoolSnapshot{
		TickSpacing:      1,
		CurrentTickIndex: 100,
		SqrtPrice:        priceAtTick100,
		LpTokenSupply:    decimals.New(1234),
		LeftoverX:        decimals.New(5),
		LeftoverY:        decimals.New(7),
		Position: &PositionState{
			Liquidity:   dec("1000000000000"),
			TokensOwedX: decimals.New(3),
			TokensOwedY: decimals.New(4),
		},
	}
	budget, err = c.Budget(s)
	require.NoError(t, err)
	assert.Equal(t, "886198", budget.X.String())
	assert.Equal(t, "896200", budget.Y.String())

	empty := &PoolSnapshot{TickSpacing: 1, SqrtPrice: priceOne, LeftoverX: decimals.New(9)}
	budget, err = c.Budget(empty)
	require.NoError(t, err)
	assert.Equal(t, "9", budget.X.String())
	assert.True(t, budget.Y.IsZero())
}

func TestSnapshotValidate(t *testing.T) {
	c := New(nil)

	s := seededPool()
	s.LpTokenSupply = decimals.Decimal{}
	_, err := c.Budget(s)
	assert.ErrorIs(t, err, ErrInconsistentSnapshot)

	s = &PoolSnapshot{TickSpacing: 1, SqrtPrice: priceOne, LpTokenSupply: decimals.New(1)}
	_, err = c.QuoteMint(s, decimals.New(ONE_LP_TOKEN))
	assert.ErrorIs(t, err, ErrInconsistentSnapshot)

	s = seededPool()
	s.TickSpacing = 0
	assert.ErrorIs(t, s.Validate(), ErrInvalidTickSpacing)
}

func TestQuoteMintAndBurn(t *testing.T) {
	c := New(nil)

	mint, err := c.QuoteMint(seededPool(), decimals.New(ONE_LP_TOKEN))
	require.NoError(t, err)
	assert.Equal(t, "2098199846", mint.PositionDetails.Liquidity.String())
	assert.Equal(t, "2", mint.LpTokenChange.String())
	assert.Equal(t, "2", mint.TransferredAmounts.X.String())
	assert.Equal(t, "2", mint.TransferredAmounts.Y.String())

	burn, err := c.QuoteBurn(seededPool(), decimals.New(ONE_LP_TOKEN*10))
	require.NoError(t, err)
	assert.Equal(t, "2075131174", burn.PositionDetails.Liquidity.String())
	assert.Equal(t, "10", burn.LpTokenChange.String())
	assert.Equal(t, "18", burn.TransferredAmounts.X.String())
	assert.Equal(t, "18", burn.TransferredAmounts.Y.String())

	empty := &PoolSnapshot{TickSpacing: 1, SqrtPrice: priceOne}
	_, err = c.QuoteBurn(empty, decimals.New(1))
	assert.ErrorIs(t, err, ErrNoPosition)

	state, err := c.QuoteState(seededPool())
	require.NoError(t, err)
	assert.Nil(t, state.LpTokenChange)
	assert.Equal(t, "2096102694", state.PositionDetails.Liquidity.String())
}

func TestQuoteDeposit(t *testing.T) {
	c := New(nil)
	empty := &PoolSnapshot{TickSpacing: 1, SqrtPrice: priceOne}

	q, err := c.QuoteDeposit(empty, decimals.New(1_000_000), true)
	require.NoError(t, err)
	assert.True(t, q.ByX)
	assert.Equal(t, "1122110000000", q.Liquidity.String())
	assert.Equal(t, "1000000", q.PairedAmount.String())
	assert.Equal(t, "535063", q.Share.LpTokenChange.String())
	assert.Equal(t, "1000000", q.Share.TransferredAmounts.X.String())
	assert.Equal(t, "1000000", q.Share.TransferredAmounts.Y.String())

	q, err = c.QuoteDeposit(empty, decimals.New(1_000_000), false)
	require.NoError(t, err)
	assert.False(t, q.ByX)
	assert.Equal(t, "1122110649953", q.Liquidity.String())
	assert.Equal(t, "1000000", q.PairedAmount.String())

	q, err = c.QuoteDeposit(seededPool(), decimals.New(1_000_000), true)
	require.NoError(t, err)
	assert.Equal(t, "535332", q.Share.LpTokenChange.String())
}

func TestQuoteDepositFallsBack(t *testing.T) {
	c := New(failingXCurve{err: invariant.ErrPriceOutOfRange})
	empty := &PoolSnapshot{TickSpacing: 1, SqrtPrice: priceOne}

	q, err := c.QuoteDeposit(empty, decimals.New(1_000_000), true)
	require.NoError(t, err)
	assert.False(t, q.ByX)
	assert.Equal(t, "1122110649953", q.Liquidity.String())
	assert.True(t, q.PairedAmount.IsZero())
	require.NotNil(t, q.Share)
}

func TestQuoteDepositKeepsErrors(t *testing.T) {
	c := New(failingXCurve{err: invariant.ErrOverflow})
	empty := &PoolSnapshot{TickSpacing: 1, SqrtPrice: priceOne}

	_, err := c.QuoteDeposit(empty, decimals.New(1_000_000), true)
	assert.ErrorIs(t, err, invariant.ErrOverflow)

	// the full-range position cannot be priced at its own upper bound
	c = New(nil)
	top, err := c.curve.CalculatePriceSqrt(c.curve.GetMaxTick(1))
	require.NoError(t, err)
	s := &PoolSnapshot{TickSpacing: 1, CurrentTickIndex: c.curve.GetMaxTick(1), SqrtPrice: top}
	_, err = c.QuoteDeposit(s, decimals.New(1_000_000), true)
	assert.ErrorIs(t, err, invariant.ErrPriceOutOfRange)
}

func TestQuoteWithdraw(t *testing.T) {
	c := New(nil)

	q, err := c.QuoteWithdraw(seededPool(), decimals.New(10))
	require.NoError(t, err)
	assert.Equal(t, int64(ONE_LP_TOKEN*10), q.Liquidity.BigInt().Int64())
	assert.Equal(t, "10", q.Share.LpTokenChange.String())
	assert.Equal(t, "18", q.Share.TransferredAmounts.X.String())

	_, err = c.QuoteWithdraw(seededPool(), decimals.New(1001))
	assert.ErrorIs(t, err, ErrLiquidityUnderflow)

	_, err = c.QuoteWithdraw(&PoolSnapshot{TickSpacing: 1, SqrtPrice: priceOne}, decimals.New(1))
	assert.ErrorIs(t, err, ErrNoPosition)
}
