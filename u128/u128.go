package u128

import (
	"errors"
	"fmt"
	"math/big"

	binary "github.com/gagliardetto/binary"
)

var (
	ErrNegative = errors.New("value cannot be negative")
	ErrOverflow = errors.New("value overflows Uint128")

	mask64 = new(big.Int).SetUint64(^uint64(0))
)

type Uint128 binary.Uint128

func (u *Uint128) Scan(s fmt.ScanState, ch rune) error {
	i := new(big.Int)
	if err := i.Scan(s, ch); err != nil {
		return err
	}
	v, err := FromBig(i)
	if err != nil {
		return err
	}
	*u = Uint128(v)
	return nil
}

// GenUint128FromString parses a base-10 string and panics on invalid input.
// Intended for constants and tests.
func GenUint128FromString(num string) binary.Uint128 {
	u128 := binary.NewUint128LittleEndian()
	if _, err := fmt.Sscan(num, (*Uint128)(u128)); err != nil {
		panic(err)
	}
	return *u128
}

// FromBig converts v into a little-endian Uint128, rejecting values outside [0, 2^128).
func FromBig(v *big.Int) (binary.Uint128, error) {
	out := binary.NewUint128LittleEndian()
	if v == nil {
		return *out, nil
	}
	if v.Sign() < 0 {
		return binary.Uint128{}, ErrNegative
	}
	if v.BitLen() > 128 {
		return binary.Uint128{}, ErrOverflow
	}
	out.Lo = new(big.Int).And(v, mask64).Uint64()
	out.Hi = new(big.Int).Rsh(v, 64).Uint64()
	return *out, nil
}

// ToBig returns the value of u as a new big.Int.
func ToBig(u binary.Uint128) *big.Int {
	hi := new(big.Int).SetUint64(u.Hi)
	hi.Lsh(hi, 64)
	return hi.Or(hi, new(big.Int).SetUint64(u.Lo))
}
