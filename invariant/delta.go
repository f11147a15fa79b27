package invariant

import (
	"github.com/krazyTry/invariant-lp-go/decimals"
)

// GetDeltaX returns the amount of token X spanned by liquidity between two
// sqrt prices:
//
//	Δx = L·|√a - √b| / (√a·√b)
//
// The denominator is rounded against the requested direction so that the
// final amount is rounded consistently.
func GetDeltaX(sqrtPriceA, sqrtPriceB, liquidity decimals.Decimal, roundingUp bool) (decimals.Decimal, error) {
	a, err := toU256(sqrtPriceA)
	if err != nil {
		return decimals.Decimal{}, err
	}
	b, err := toU256(sqrtPriceB)
	if err != nil {
		return decimals.Decimal{}, err
	}
	l, err := toU256(liquidity)
	if err != nil {
		return decimals.Decimal{}, err
	}

	nominator, err := mulDiv(absDiff(a, b), l, liquidityOne, false)
	if err != nil {
		return decimals.Decimal{}, err
	}
	denominator, err := mulDiv(a, b, priceOne, !roundingUp)
	if err != nil {
		return decimals.Decimal{}, err
	}

	amount, err := mulDiv(nominator, priceOne, denominator, roundingUp)
	if err != nil {
		return decimals.Decimal{}, err
	}
	amount, err = divRound(amount, priceOne, roundingUp)
	if err != nil {
		return decimals.Decimal{}, err
	}
	return fromU256(amount), nil
}

// GetDeltaY returns the amount of token Y spanned by liquidity between two
// sqrt prices:
//
//	Δy = L·|√a - √b|
func GetDeltaY(sqrtPriceA, sqrtPriceB, liquidity decimals.Decimal, roundingUp bool) (decimals.Decimal, error) {
	a, err := toU256(sqrtPriceA)
	if err != nil {
		return decimals.Decimal{}, err
	}
	b, err := toU256(sqrtPriceB)
	if err != nil {
		return decimals.Decimal{}, err
	}
	l, err := toU256(liquidity)
	if err != nil {
		return decimals.Decimal{}, err
	}

	amount, err := mulDiv(absDiff(a, b), l, liquidityOne, roundingUp)
	if err != nil {
		return decimals.Decimal{}, err
	}
	amount, err = divRound(amount, priceOne, roundingUp)
	if err != nil {
		return decimals.Decimal{}, err
	}
	return fromU256(amount), nil
}
