package main

import (
	"github.com/shopspring/decimal"

	"github.com/krazyTry/invariant-lp-go/cmd/lpquote/config"
	dmath "github.com/krazyTry/invariant-lp-go/decimal_math"
	"github.com/krazyTry/invariant-lp-go/lpshare"
	"github.com/krazyTry/invariant-lp-go/state"
)

type report struct {
	Op       string                 `json:"op"`
	Price    decimal.Decimal        `json:"price"` // token Y per token X
	LpPool   *lpPoolView            `json:"lpPool,omitempty"`
	Budget   lpshare.TokenAmounts   `json:"budget"`
	Share    *lpshare.ShareChange   `json:"share"`
	Deposit  *lpshare.DepositQuote  `json:"deposit,omitempty"`
	Withdraw *lpshare.WithdrawQuote `json:"withdraw,omitempty"`
	Human    *humanAmounts          `json:"human"`
}

type lpPoolView struct {
	TokenX      string          `json:"tokenX"`
	TokenY      string          `json:"tokenY"`
	Position    string          `json:"position"`
	TickSpacing uint16          `json:"tickSpacing"`
	Fee         decimal.Decimal `json:"fee"`
}

type humanAmounts struct {
	TransferredX  string `json:"transferredX"`
	TransferredY  string `json:"transferredY"`
	LeftoverX     string `json:"leftoverX"`
	LeftoverY     string `json:"leftoverY"`
	LpTokenChange string `json:"lpTokenChange,omitempty"`
}

func humanize(share *lpshare.ShareChange, cfg *config.Config) *humanAmounts {
	format := func(v decimal.Decimal, symbol string) string {
		return v.String() + " " + symbol
	}
	h := &humanAmounts{
		TransferredX: format(dmath.ToUIAmount(share.TransferredAmounts.X.BigInt(), cfg.TokenX.Decimals), cfg.TokenX.Symbol),
		TransferredY: format(dmath.ToUIAmount(share.TransferredAmounts.Y.BigInt(), cfg.TokenY.Decimals), cfg.TokenY.Symbol),
		LeftoverX:    format(dmath.ToUIAmount(share.LeftoverAmounts.X.BigInt(), cfg.TokenX.Decimals), cfg.TokenX.Symbol),
		LeftoverY:    format(dmath.ToUIAmount(share.LeftoverAmounts.Y.BigInt(), cfg.TokenY.Decimals), cfg.TokenY.Symbol),
	}
	if share.LpTokenChange != nil {
		h.LpTokenChange = format(dmath.ToUIAmount(share.LpTokenChange.BigInt(), state.LpTokenDecimals), "LP")
	}
	return h
}
