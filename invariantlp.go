package invariantlp

import (
	"github.com/krazyTry/invariant-lp-go/lpshare"
	"github.com/krazyTry/invariant-lp-go/state"
)

// NewCalculator creates an LP share calculator. A nil curve uses the
// Invariant protocol math.
//
// Example:
//
// calc := NewCalculator(nil, lpshare.WithLogger(logger))
//
// change, _ := calc.QuoteMint(snapshot.Pool, liquidityDelta)
//
// change, _ = calc.ComputeLpShareChange(false, supply, liquidityDelta, xBefore, yBefore, tickSpacing, tick, sqrtPrice)
var NewCalculator = lpshare.New

// ParseSnapshot reads a pool snapshot JSON file's contents.
//
// Example:
//
// snapshot, _ := ParseSnapshot(data)
//
// quote, _ := calc.QuoteWithdraw(snapshot.Pool, lpTokenAmount)
var ParseSnapshot = state.ParseSnapshot
