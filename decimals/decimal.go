package decimals

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"

	binary "github.com/gagliardetto/binary"
	"github.com/shopspring/decimal"

	dmath "github.com/krazyTry/invariant-lp-go/decimal_math"
	"github.com/krazyTry/invariant-lp-go/u128"
)

// Fixed-point scales used by the pool. Token amounts are raw integers.
const (
	PriceScale      = 24
	LiquidityScale  = 6
	FixedPointScale = 12
)

var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrInvalidDecimal = errors.New("invalid decimal")

	zero = big.NewInt(0)
	one  = big.NewInt(1)
)

func pow10(n int64) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(n), nil)
}

// Decimal is a fixed-point value stored as a raw integer. The scale is implied
// by what the value measures. The zero value is 0.
//
// A Decimal never shares its integer with callers: constructors copy their
// input and BigInt returns a copy.
type Decimal struct {
	v *big.Int
}

// New returns a Decimal holding the raw value v.
func New(v int64) Decimal {
	return Decimal{v: big.NewInt(v)}
}

// NewFromUint64 returns a Decimal holding the raw value v.
func NewFromUint64(v uint64) Decimal {
	return Decimal{v: new(big.Int).SetUint64(v)}
}

// NewFromBigInt copies v into a Decimal. nil is read as zero.
func NewFromBigInt(v *big.Int) Decimal {
	if v == nil {
		return Decimal{}
	}
	return Decimal{v: new(big.Int).Set(v)}
}

// NewFromString parses a base-10 raw integer.
func NewFromString(s string) (Decimal, error) {
	v, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return Decimal{}, fmt.Errorf("%w: %q", ErrInvalidDecimal, s)
	}
	return Decimal{v: v}, nil
}

// MustFromString is NewFromString that panics. Intended for constants and tests.
func MustFromString(s string) Decimal {
	d, err := NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// NewFromUint128 reads an on-chain u128 field.
func NewFromUint128(v binary.Uint128) Decimal {
	return Decimal{v: u128.ToBig(v)}
}

// FromInteger returns integer expressed at the given scale, e.g.
// FromInteger(1, PriceScale) is a price of exactly one.
func FromInteger(integer int64, scale int64) Decimal {
	v := big.NewInt(integer)
	return Decimal{v: v.Mul(v, pow10(scale))}
}

func (d Decimal) raw() *big.Int {
	if d.v == nil {
		return zero
	}
	return d.v
}

// BigInt returns a copy of the raw value.
func (d Decimal) BigInt() *big.Int {
	return new(big.Int).Set(d.raw())
}

// Uint128 converts d for an on-chain u128 field.
func (d Decimal) Uint128() (binary.Uint128, error) {
	return u128.FromBig(d.raw())
}

func (d Decimal) Sign() int { return d.raw().Sign() }
func (d Decimal) IsZero() bool { return d.Sign() == 0 }
func (d Decimal) String() string { return d.raw().String() }

// Cmp compares raw values: -1 if d < o, 0 if equal, +1 if d > o.
func (d Decimal) Cmp(o Decimal) int { return d.raw().Cmp(o.raw()) }

func (d Decimal) Equal(o Decimal) bool { return d.Cmp(o) == 0 }
func (d Decimal) GreaterThan(o Decimal) bool { return d.Cmp(o) > 0 }
func (d Decimal) LessThanOrEqual(o Decimal) bool { return d.Cmp(o) <= 0 }

func (d Decimal) Add(o Decimal) Decimal {
	return Decimal{v: new(big.Int).Add(d.raw(), o.raw())}
}

// Sub may return a negative value; callers that need an unsigned result check Sign.
func (d Decimal) Sub(o Decimal) Decimal {
	return Decimal{v: new(big.Int).Sub(d.raw(), o.raw())}
}

// MulDiv returns a*b/c rounded in the requested direction. All operands must
// be non-negative.
func MulDiv(a, b, c Decimal, roundingUp bool) (Decimal, error) {
	if c.IsZero() {
		return Decimal{}, ErrDivisionByZero
	}
	return MulDivRound(a, b, c, roundingUp), nil
}

// MulDivRound is MulDiv for a divisor the caller knows to be non-zero. Like
// integer division it panics when c is zero.
func MulDivRound(a, b, c Decimal, roundingUp bool) Decimal {
	product := new(big.Int).Mul(a.raw(), b.raw())
	return Decimal{v: divRound(product, c.raw(), roundingUp)}
}

// DivRound returns a/b rounded in the requested direction. It panics when b
// is zero.
func DivRound(a, b Decimal, roundingUp bool) Decimal {
	return Decimal{v: divRound(new(big.Int).Set(a.raw()), b.raw(), roundingUp)}
}

// divRound divides num by den in place.
func divRound(num, den *big.Int, roundingUp bool) *big.Int {
	q, r := num.QuoRem(num, den, new(big.Int))
	if roundingUp && r.Sign() > 0 {
		q.Add(q, one)
	}
	return q
}

// ToUI renders d as a human number with the given number of fractional digits.
func (d Decimal) ToUI(scale int32) decimal.Decimal {
	return dmath.FixedToDecimal(d.raw(), scale)
}

// MarshalJSON encodes the raw value as a JSON string so that values beyond
// 2^53 survive JavaScript consumers.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts both a JSON string and a bare JSON number.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		*d = Decimal{}
		return nil
	}
	v, err := NewFromString(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}
