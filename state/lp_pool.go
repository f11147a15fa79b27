package state

import (
	"bytes"
	"errors"
	"fmt"

	binary "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"

	"github.com/krazyTry/invariant-lp-go/decimals"
)

var (
	ErrInvalidDiscriminator = errors.New("invalid account discriminator")
	ErrInvalidOwner         = errors.New("account not owned by the lp program")
	ErrInvalidSnapshot      = errors.New("invalid snapshot")
)

// LpPoolDiscriminator prefixes every LpPool account.
var LpPoolDiscriminator = binary.SighashTypeID(binary.SIGHASH_ACCOUNT_NAMESPACE, "LpPool")

// LpPool is the program account that owns one full-range Invariant position
// and mints the LP token backed by it.
type LpPool struct {
	InvariantPosition solana.PublicKey
	PositionBump      uint8
	// Tokens held by the pool that do not back liquidity.
	LeftoverX   uint64
	LeftoverY   uint64
	TokenX      solana.PublicKey
	TokenY      solana.PublicKey
	TickSpacing uint16
	// Fee tier of the Invariant pool, FixedPoint with 12 decimals.
	Fee       binary.Uint128
	TokenBump uint8
	Bump      uint8
}

// FeeDecimal returns the fee tier as a fixed-point value.
func (p *LpPool) FeeDecimal() decimals.Decimal {
	return decimals.NewFromUint128(p.Fee)
}

// DecodeLpPool parses the packed LpPool account data.
func DecodeLpPool(data []byte) (*LpPool, error) {
	if len(data) < len(LpPoolDiscriminator) {
		return nil, fmt.Errorf("%w: account data is %d bytes", ErrInvalidDiscriminator, len(data))
	}
	if !bytes.Equal(data[:len(LpPoolDiscriminator)], LpPoolDiscriminator[:]) {
		return nil, ErrInvalidDiscriminator
	}

	pool := &LpPool{}
	if err := binary.NewBorshDecoder(data[len(LpPoolDiscriminator):]).Decode(pool); err != nil {
		return nil, fmt.Errorf("decode lp pool: %w", err)
	}
	return pool, nil
}

// EncodeLpPool is the inverse of DecodeLpPool.
func EncodeLpPool(pool *LpPool) ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.Write(LpPoolDiscriminator[:])
	if err := binary.NewBorshEncoder(buf).Encode(pool); err != nil {
		return nil, fmt.Errorf("encode lp pool: %w", err)
	}
	return buf.Bytes(), nil
}
