package state

import (
	"encoding/json"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/tidwall/gjson"

	"github.com/krazyTry/invariant-lp-go/decimals"
	"github.com/krazyTry/invariant-lp-go/invariant"
	"github.com/krazyTry/invariant-lp-go/lpshare"
)

// Snapshot is a pool snapshot read from a JSON file, plus the decoded LpPool
// account when the file carries one.
type Snapshot struct {
	Pool   *lpshare.PoolSnapshot
	LpPool *LpPool
}

type parseOptions struct {
	programID solana.PublicKey
}

type ParseOption func(*parseOptions)

// WithProgramID accepts LpPool accounts owned by a program other than ProgramID,
// e.g. a devnet deployment.
func WithProgramID(programID solana.PublicKey) ParseOption {
	return func(o *parseOptions) {
		o.programID = programID
	}
}

// ParseSnapshot reads a snapshot of the form
//
//	{"tickSpacing": 1, "currentTickIndex": 0, "sqrtPrice": "1000000000000000000000000",
//	 "lpTokenSupply": "0", "leftoverX": "0", "leftoverY": "0",
//	 "position": {"liquidity": "0", "tokensOwedX": "0", "tokensOwedY": "0"},
//	 "lpPoolAccount": {"owner": "...", "data": ["...", "base64"]}}
//
// lpPoolAccount is a getAccountInfo value. When present, leftovers and tick
// spacing come from the decoded account and the top-level fields are ignored.
// Numbers may be given as JSON strings or integers.
func ParseSnapshot(data []byte, opts ...ParseOption) (*Snapshot, error) {
	o := &parseOptions{programID: ProgramID}
	for _, fn := range opts {
		fn(o)
	}

	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed json", ErrInvalidSnapshot)
	}
	root := gjson.ParseBytes(data)

	pool := &lpshare.PoolSnapshot{}
	var err error
	if pool.SqrtPrice, err = requiredDecimal(root, "sqrtPrice"); err != nil {
		return nil, err
	}
	tick := root.Get("currentTickIndex")
	if !tick.Exists() {
		return nil, fmt.Errorf("%w: missing currentTickIndex", ErrInvalidSnapshot)
	}
	tickIndex := tick.Int()
	if tickIndex < -int64(invariant.MAX_TICK) || tickIndex > int64(invariant.MAX_TICK) {
		return nil, fmt.Errorf("%w: currentTickIndex %d outside [%d, %d]", ErrInvalidSnapshot, tickIndex, -invariant.MAX_TICK, invariant.MAX_TICK)
	}
	pool.CurrentTickIndex = int32(tickIndex)
	if pool.LpTokenSupply, err = optionalDecimal(root, "lpTokenSupply"); err != nil {
		return nil, err
	}

	if position := root.Get("position"); position.Exists() && position.Type != gjson.Null {
		pos := &lpshare.PositionState{}
		if pos.Liquidity, err = optionalDecimal(position, "liquidity"); err != nil {
			return nil, err
		}
		if pos.TokensOwedX, err = optionalDecimal(position, "tokensOwedX"); err != nil {
			return nil, err
		}
		if pos.TokensOwedY, err = optionalDecimal(position, "tokensOwedY"); err != nil {
			return nil, err
		}
		pool.Position = pos
	}

	snapshot := &Snapshot{Pool: pool}
	if account := root.Get("lpPoolAccount"); account.Exists() {
		lpPool, err := parseLpPoolAccount(account, o.programID)
		if err != nil {
			return nil, err
		}
		snapshot.LpPool = lpPool
		pool.TickSpacing = lpPool.TickSpacing
		pool.LeftoverX = decimals.NewFromUint64(lpPool.LeftoverX)
		pool.LeftoverY = decimals.NewFromUint64(lpPool.LeftoverY)
	} else {
		spacing := root.Get("tickSpacing").Uint()
		if spacing == 0 || spacing > 0xffff {
			return nil, fmt.Errorf("%w: tickSpacing %d", ErrInvalidSnapshot, spacing)
		}
		pool.TickSpacing = uint16(spacing)
		if pool.LeftoverX, err = optionalDecimal(root, "leftoverX"); err != nil {
			return nil, err
		}
		if pool.LeftoverY, err = optionalDecimal(root, "leftoverY"); err != nil {
			return nil, err
		}
	}

	if err := pool.Validate(); err != nil {
		return nil, err
	}
	return snapshot, nil
}

func parseLpPoolAccount(account gjson.Result, programID solana.PublicKey) (*LpPool, error) {
	var acc rpc.Account
	if err := json.Unmarshal([]byte(account.Raw), &acc); err != nil {
		return nil, fmt.Errorf("%w: lpPoolAccount: %v", ErrInvalidSnapshot, err)
	}
	if !acc.Owner.Equals(programID) {
		return nil, fmt.Errorf("%w: owner %s", ErrInvalidOwner, acc.Owner)
	}
	if acc.Data == nil {
		return nil, fmt.Errorf("%w: lpPoolAccount has no data", ErrInvalidSnapshot)
	}
	return DecodeLpPool(acc.Data.GetBinary())
}

func requiredDecimal(r gjson.Result, path string) (decimals.Decimal, error) {
	v := r.Get(path)
	if !v.Exists() {
		return decimals.Decimal{}, fmt.Errorf("%w: missing %s", ErrInvalidSnapshot, path)
	}
	return toDecimal(v, path)
}

func optionalDecimal(r gjson.Result, path string) (decimals.Decimal, error) {
	v := r.Get(path)
	if !v.Exists() || v.Type == gjson.Null {
		return decimals.Decimal{}, nil
	}
	return toDecimal(v, path)
}

func toDecimal(v gjson.Result, path string) (decimals.Decimal, error) {
	if v.Type != gjson.String && v.Type != gjson.Number {
		return decimals.Decimal{}, fmt.Errorf("%w: %s is %s", ErrInvalidSnapshot, path, v.Type)
	}
	d, err := decimals.NewFromString(v.String())
	if err != nil {
		return decimals.Decimal{}, fmt.Errorf("%w: %s: %v", ErrInvalidSnapshot, path, err)
	}
	if d.Sign() < 0 {
		return decimals.Decimal{}, fmt.Errorf("%w: %s is negative", ErrInvalidSnapshot, path)
	}
	return d, nil
}
