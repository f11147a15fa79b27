package invariant

import (
	"github.com/holiman/uint256"

	"github.com/krazyTry/invariant-lp-go/decimals"
)

// SingleTokenLiquidity is the liquidity obtainable from one token amount and
// the amount of the other token it requires.
type SingleTokenLiquidity struct {
	Liquidity decimals.Decimal
	Amount    decimals.Decimal
}

type priceRange struct {
	lower, upper, current *uint256.Int
}

func newPriceRange(lower, upper, current decimals.Decimal) (*priceRange, error) {
	lo, err := toU256(lower)
	if err != nil {
		return nil, err
	}
	hi, err := toU256(upper)
	if err != nil {
		return nil, err
	}
	cur, err := toU256(current)
	if err != nil {
		return nil, err
	}
	if !lo.Lt(hi) {
		return nil, ErrInvalidPriceRange
	}
	return &priceRange{lower: lo, upper: hi, current: cur}, nil
}

// GetLiquidityByXPrice returns the liquidity that x units of token X provide
// over [lowerSqrtPrice, upperSqrtPrice] and the token Y needed alongside.
// Liquidity is truncated to whole units. At or above the upper price no X can
// be deposited and ErrPriceOutOfRange is returned.
func GetLiquidityByXPrice(x, lowerSqrtPrice, upperSqrtPrice, currentSqrtPrice decimals.Decimal, roundingUp bool) (SingleTokenLiquidity, error) {
	r, err := newPriceRange(lowerSqrtPrice, upperSqrtPrice, currentSqrtPrice)
	if err != nil {
		return SingleTokenLiquidity{}, err
	}
	amount, err := toU256(x)
	if err != nil {
		return SingleTokenLiquidity{}, err
	}

	if !r.current.Lt(r.upper) {
		return SingleTokenLiquidity{}, ErrPriceOutOfRange
	}

	below := r.current.Lt(r.lower)
	base := r.current
	if below {
		base = r.lower
	}
	nominator, err := mulDiv(base, r.upper, priceOne, false)
	if err != nil {
		return SingleTokenLiquidity{}, err
	}
	denominator := new(uint256.Int).Sub(r.upper, base)

	units, err := mulDiv(amount, nominator, denominator, false)
	if err != nil {
		return SingleTokenLiquidity{}, err
	}
	l, overflow := new(uint256.Int).MulOverflow(units, liquidityOne)
	if overflow {
		return SingleTokenLiquidity{}, ErrOverflow
	}
	liquidity := fromU256(l)

	if below {
		return SingleTokenLiquidity{Liquidity: liquidity}, nil
	}

	diff := new(uint256.Int).Sub(r.current, r.lower)
	y, err := calculateY(diff, l, roundingUp)
	if err != nil {
		return SingleTokenLiquidity{}, err
	}
	return SingleTokenLiquidity{Liquidity: liquidity, Amount: fromU256(y)}, nil
}

// GetLiquidityByYPrice returns the liquidity that y units of token Y provide
// over [lowerSqrtPrice, upperSqrtPrice] and the token X needed alongside.
// At or below the lower price no Y can be deposited and ErrPriceOutOfRange is
// returned.
func GetLiquidityByYPrice(y, lowerSqrtPrice, upperSqrtPrice, currentSqrtPrice decimals.Decimal, roundingUp bool) (SingleTokenLiquidity, error) {
	r, err := newPriceRange(lowerSqrtPrice, upperSqrtPrice, currentSqrtPrice)
	if err != nil {
		return SingleTokenLiquidity{}, err
	}
	amount, err := toU256(y)
	if err != nil {
		return SingleTokenLiquidity{}, err
	}

	if !r.current.Gt(r.lower) {
		return SingleTokenLiquidity{}, ErrPriceOutOfRange
	}

	scaled, overflow := new(uint256.Int).MulOverflow(amount, priceOne)
	if overflow {
		return SingleTokenLiquidity{}, ErrOverflow
	}

	if !r.current.Lt(r.upper) {
		l, err := mulDiv(scaled, liquidityOne, new(uint256.Int).Sub(r.upper, r.lower), false)
		if err != nil {
			return SingleTokenLiquidity{}, err
		}
		return SingleTokenLiquidity{Liquidity: fromU256(l)}, nil
	}

	l, err := mulDiv(scaled, liquidityOne, new(uint256.Int).Sub(r.current, r.lower), false)
	if err != nil {
		return SingleTokenLiquidity{}, err
	}
	denominator, err := mulDiv(r.current, r.upper, priceOne, false)
	if err != nil {
		return SingleTokenLiquidity{}, err
	}
	nominator := new(uint256.Int).Sub(r.upper, r.current)
	x, err := calculateX(nominator, denominator, l, roundingUp)
	if err != nil {
		return SingleTokenLiquidity{}, err
	}
	return SingleTokenLiquidity{Liquidity: fromU256(l), Amount: fromU256(x)}, nil
}

// CalculateY is the token Y backing liquidity over a sqrt-price span of diff.
func CalculateY(diff, liquidity decimals.Decimal, roundingUp bool) (decimals.Decimal, error) {
	d, err := toU256(diff)
	if err != nil {
		return decimals.Decimal{}, err
	}
	l, err := toU256(liquidity)
	if err != nil {
		return decimals.Decimal{}, err
	}
	y, err := calculateY(d, l, roundingUp)
	if err != nil {
		return decimals.Decimal{}, err
	}
	return fromU256(y), nil
}

// CalculateX is the token X backing liquidity for nominator/denominator, the
// sqrt-price span over the sqrt-price product.
func CalculateX(nominator, denominator, liquidity decimals.Decimal, roundingUp bool) (decimals.Decimal, error) {
	n, err := toU256(nominator)
	if err != nil {
		return decimals.Decimal{}, err
	}
	d, err := toU256(denominator)
	if err != nil {
		return decimals.Decimal{}, err
	}
	l, err := toU256(liquidity)
	if err != nil {
		return decimals.Decimal{}, err
	}
	x, err := calculateX(n, d, l, roundingUp)
	if err != nil {
		return decimals.Decimal{}, err
	}
	return fromU256(x), nil
}

func calculateY(diff, liquidity *uint256.Int, roundingUp bool) (*uint256.Int, error) {
	units := new(uint256.Int).Div(liquidity, liquidityOne)
	return mulDiv(diff, units, priceOne, roundingUp)
}

func calculateX(nominator, denominator, liquidity *uint256.Int, roundingUp bool) (*uint256.Int, error) {
	common, err := mulDiv(liquidity, nominator, priceOne, false)
	if err != nil {
		return nil, err
	}
	common, err = mulDiv(common, priceOne, denominator, false)
	if err != nil {
		return nil, err
	}
	return divRound(common, liquidityOne, roundingUp)
}
