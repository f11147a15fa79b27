package lpshare

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/krazyTry/invariant-lp-go/decimals"
	"github.com/krazyTry/invariant-lp-go/invariant"
)

// PositionState is the part of the pool's full-range position the share
// accounting reads.
type PositionState struct {
	Liquidity   decimals.Decimal `json:"liquidity"`
	TokensOwedX decimals.Decimal `json:"tokensOwedX"`
	TokensOwedY decimals.Decimal `json:"tokensOwedY"`
}

// PoolSnapshot is a consistent read of the Invariant pool, its LpPool
// account and the position the LpPool owns.
type PoolSnapshot struct {
	TickSpacing      uint16           `json:"tickSpacing"`
	CurrentTickIndex int32            `json:"currentTickIndex"`
	SqrtPrice        decimals.Decimal `json:"sqrtPrice"`
	LpTokenSupply    decimals.Decimal `json:"lpTokenSupply"`
	LeftoverX        decimals.Decimal `json:"leftoverX"`
	LeftoverY        decimals.Decimal `json:"leftoverY"`
	Position         *PositionState   `json:"position,omitempty"` // nil before the first mint
}

func (s *PoolSnapshot) liquidity() decimals.Decimal {
	if s.Position == nil {
		return decimals.Decimal{}
	}
	return s.Position.Liquidity
}

// Validate checks that the LP supply is zero exactly when the position is empty.
func (s *PoolSnapshot) Validate() error {
	if s.TickSpacing == 0 {
		return ErrInvalidTickSpacing
	}
	if s.LpTokenSupply.IsZero() != s.liquidity().IsZero() {
		return fmt.Errorf("%w: supply %s, liquidity %s", ErrInconsistentSnapshot, s.LpTokenSupply, s.liquidity())
	}
	return nil
}

// Budget returns the tokens the LpPool controls: its leftovers, the amounts
// backing the position rounded down, and the fees the position has not
// claimed yet.
func (c *Calculator) Budget(s *PoolSnapshot) (TokenAmounts, error) {
	if err := s.Validate(); err != nil {
		return TokenAmounts{}, err
	}
	budget := TokenAmounts{X: s.LeftoverX, Y: s.LeftoverY}
	if s.Position == nil {
		return budget, nil
	}

	minTick, maxTick, err := c.fullRange(s.TickSpacing)
	if err != nil {
		return TokenAmounts{}, err
	}
	amounts, err := c.CalculateAmountDelta(s.SqrtPrice, s.Position.Liquidity, false, s.CurrentTickIndex, minTick, maxTick)
	if err != nil {
		return TokenAmounts{}, err
	}
	budget.X = budget.X.Add(amounts.X).Add(s.Position.TokensOwedX)
	budget.Y = budget.Y.Add(amounts.Y).Add(s.Position.TokensOwedY)
	return budget, nil
}

func (c *Calculator) quote(s *PoolSnapshot, provideLiquidity bool, liquidityDelta decimals.Decimal) (*ShareChange, error) {
	budget, err := c.Budget(s)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("quote",
		slog.Bool("provide", provideLiquidity),
		slog.String("budgetX", budget.X.String()),
		slog.String("budgetY", budget.Y.String()),
	)
	return c.ComputeLpShareChange(
		provideLiquidity,
		s.LpTokenSupply,
		liquidityDelta,
		budget.X,
		budget.Y,
		s.TickSpacing,
		s.CurrentTickIndex,
		s.SqrtPrice,
	)
}

// QuoteState reports the position the pool's budget currently supports.
func (c *Calculator) QuoteState(s *PoolSnapshot) (*ShareChange, error) {
	return c.quote(s, true, decimals.Decimal{})
}

// QuoteMint quotes adding liquidityDelta to the pool's position.
func (c *Calculator) QuoteMint(s *PoolSnapshot, liquidityDelta decimals.Decimal) (*ShareChange, error) {
	return c.quote(s, true, liquidityDelta)
}

// QuoteBurn quotes removing liquidityDelta from the pool's position.
func (c *Calculator) QuoteBurn(s *PoolSnapshot, liquidityDelta decimals.Decimal) (*ShareChange, error) {
	if s.Position == nil {
		return nil, ErrNoPosition
	}
	return c.quote(s, false, liquidityDelta)
}

// DepositQuote is the liquidity a single-sided deposit buys and the mint it
// leads to. When ByX is false the amount was read as token Y.
type DepositQuote struct {
	ByX          bool             `json:"byX"`          // side the liquidity was computed from
	Liquidity    decimals.Decimal `json:"liquidity"`    // liquidity to mint
	PairedAmount decimals.Decimal `json:"pairedAmount"` // other token required alongside the amount
	Share        *ShareChange     `json:"share"`
}

// QuoteDeposit quotes a single-sided deposit of amount into the full range.
// When the price is outside the range for the requested side, the amount is
// treated as the other token instead and no paired amount is required. Any
// other failure is returned as is.
func (c *Calculator) QuoteDeposit(s *PoolSnapshot, amount decimals.Decimal, byX bool) (*DepositQuote, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	q, err := c.depositSide(s, amount, byX)
	if err == nil {
		return c.finishDeposit(s, q)
	}
	if !errors.Is(err, invariant.ErrPriceOutOfRange) {
		return nil, err
	}
	c.logger.Debug("deposit side out of range, trying the other token", slog.Bool("byX", byX))

	q, err = c.depositSide(s, amount, !byX)
	if err != nil {
		return nil, err
	}
	q.PairedAmount = decimals.Decimal{}
	return c.finishDeposit(s, q)
}

func (c *Calculator) depositSide(s *PoolSnapshot, amount decimals.Decimal, byX bool) (*DepositQuote, error) {
	if byX {
		r, err := c.GetLiquidityByXInFullRange(amount, s.SqrtPrice, true, s.TickSpacing)
		if err != nil {
			return nil, err
		}
		return &DepositQuote{ByX: true, Liquidity: r.Liquidity, PairedAmount: r.Y}, nil
	}
	r, err := c.GetLiquidityByYInFullRange(amount, s.SqrtPrice, true, s.TickSpacing)
	if err != nil {
		return nil, err
	}
	return &DepositQuote{ByX: false, Liquidity: r.Liquidity, PairedAmount: r.X}, nil
}

func (c *Calculator) finishDeposit(s *PoolSnapshot, q *DepositQuote) (*DepositQuote, error) {
	share, err := c.QuoteMint(s, q.Liquidity)
	if err != nil {
		return nil, err
	}
	q.Share = share
	return q, nil
}

// WithdrawQuote is the liquidity a number of LP tokens redeems and the burn
// that pays it out.
type WithdrawQuote struct {
	Liquidity decimals.Decimal `json:"liquidity"` // liquidity the LP tokens redeem
	Share     *ShareChange     `json:"share"`
}

// QuoteWithdraw quotes redeeming lpTokenAmount for the liquidity it backs,
// rounded down.
func (c *Calculator) QuoteWithdraw(s *PoolSnapshot, lpTokenAmount decimals.Decimal) (*WithdrawQuote, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.Position == nil {
		return nil, ErrNoPosition
	}
	if lpTokenAmount.GreaterThan(s.LpTokenSupply) {
		return nil, fmt.Errorf("%w: %s lp tokens, supply %s", ErrLiquidityUnderflow, lpTokenAmount, s.LpTokenSupply)
	}

	liquidity, err := LpTokenAmountToLiquidity(lpTokenAmount, s.Position.Liquidity, s.LpTokenSupply, false)
	if err != nil {
		return nil, err
	}
	share, err := c.QuoteBurn(s, liquidity)
	if err != nil {
		return nil, err
	}
	return &WithdrawQuote{Liquidity: liquidity, Share: share}, nil
}
