package invariant

import (
	"github.com/holiman/uint256"

	"github.com/krazyTry/invariant-lp-go/decimals"
)

var (
	priceOne     = unit(decimals.PriceScale)
	liquidityOne = unit(decimals.LiquidityScale)
	// fixedPointOne is 1.0 at the reduced precision used by the tick table.
	fixedPointOne = unit(decimals.FixedPointScale)
)

// unit is 1.0 at the given decimal scale.
func unit(scale int64) *uint256.Int {
	return uint256.MustFromBig(decimals.FromInteger(1, scale).BigInt())
}

func toU256(d decimals.Decimal) (*uint256.Int, error) {
	if d.Sign() < 0 {
		return nil, ErrNegativeValue
	}
	z, overflow := uint256.FromBig(d.BigInt())
	if overflow {
		return nil, ErrOverflow
	}
	return z, nil
}

func fromU256(z *uint256.Int) decimals.Decimal {
	return decimals.NewFromBigInt(z.ToBig())
}

func absDiff(a, b *uint256.Int) *uint256.Int {
	if a.Gt(b) {
		return new(uint256.Int).Sub(a, b)
	}
	return new(uint256.Int).Sub(b, a)
}

// divRound returns x/y, rounded up when roundingUp is set and the division is inexact.
func divRound(x, y *uint256.Int, roundingUp bool) (*uint256.Int, error) {
	if y.IsZero() {
		return nil, ErrDivisionByZero
	}
	q := new(uint256.Int).Div(x, y)
	if roundingUp && !new(uint256.Int).Mod(x, y).IsZero() {
		q.AddUint64(q, 1)
	}
	return q, nil
}

// mulDiv returns x*y/d with a checked 256-bit product.
func mulDiv(x, y, d *uint256.Int, roundingUp bool) (*uint256.Int, error) {
	product, overflow := new(uint256.Int).MulOverflow(x, y)
	if overflow {
		return nil, ErrOverflow
	}
	return divRound(product, d, roundingUp)
}
