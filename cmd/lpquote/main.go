package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/shopspring/decimal"

	"github.com/krazyTry/invariant-lp-go/cmd/lpquote/config"
	dmath "github.com/krazyTry/invariant-lp-go/decimal_math"
	"github.com/krazyTry/invariant-lp-go/decimals"
	"github.com/krazyTry/invariant-lp-go/invariant"
	"github.com/krazyTry/invariant-lp-go/lpshare"
	"github.com/krazyTry/invariant-lp-go/state"
)

const (
	OpState    = "state"
	OpMint     = "mint"
	OpBurn     = "burn"
	OpDepositX = "deposit-x"
	OpDepositY = "deposit-y"
	OpWithdraw = "withdraw"
)

var errUsage = errors.New("usage")

type options struct {
	configPath   string
	snapshotPath string
	op           string
	amount       string
	ui           bool
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			logger.Error("Invalid arguments", "error", err)
		}
		os.Exit(2)
	}

	if err := run(opts, os.Stdout, os.Stderr); err != nil {
		logger.Error("Quote failed", "op", opts.op, "error", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("lpquote", flag.ContinueOnError)
	fs.SetOutput(stderr)

	o := &options{}
	fs.StringVar(&o.configPath, "config", "", "Path to the YAML configuration file.")
	fs.StringVar(&o.snapshotPath, "snapshot", "", "Path to the pool snapshot JSON.")
	fs.StringVar(&o.op, "op", OpState, "One of state, mint, burn, deposit-x, deposit-y, withdraw.")
	fs.StringVar(&o.amount, "amount", "0", "Liquidity for mint/burn, token amount for deposits, LP tokens for withdraw.")
	fs.BoolVar(&o.ui, "ui", false, "Read -amount in token units instead of raw units.")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if o.snapshotPath == "" {
		return nil, fmt.Errorf("%w: -snapshot is required", errUsage)
	}
	return o, nil
}

func run(opts *options, stdout, stderr io.Writer) error {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewJSONHandler(stderr, &slog.HandlerOptions{Level: level}))

	data, err := os.ReadFile(opts.snapshotPath)
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}
	var parseOpts []state.ParseOption
	if programID, ok := cfg.ProgramKey(); ok {
		parseOpts = append(parseOpts, state.WithProgramID(programID))
	}
	snapshot, err := state.ParseSnapshot(data, parseOpts...)
	if err != nil {
		return err
	}
	logger.Debug("Loaded snapshot",
		"path", opts.snapshotPath,
		"tick_spacing", snapshot.Pool.TickSpacing,
		"current_tick", snapshot.Pool.CurrentTickIndex,
		"lp_pool_account", snapshot.LpPool != nil,
	)

	amount, err := parseAmount(opts, cfg)
	if err != nil {
		return err
	}

	calc := lpshare.New(invariant.Math{}, lpshare.WithLogger(logger.With("component", "lpshare")))
	out := &report{
		Op:    opts.op,
		Price: dmath.SqrtPriceToPrice(snapshot.Pool.SqrtPrice.BigInt(), decimals.PriceScale, cfg.TokenX.Decimals, cfg.TokenY.Decimals, cfg.PricePlaces),
	}

	var share *lpshare.ShareChange
	switch opts.op {
	case OpState:
		share, err = calc.QuoteState(snapshot.Pool)
		if err == nil {
			out.Budget, err = calc.Budget(snapshot.Pool)
		}
	case OpMint:
		share, err = calc.QuoteMint(snapshot.Pool, amount)
	case OpBurn:
		share, err = calc.QuoteBurn(snapshot.Pool, amount)
	case OpDepositX, OpDepositY:
		var q *lpshare.DepositQuote
		q, err = calc.QuoteDeposit(snapshot.Pool, amount, opts.op == OpDepositX)
		if err == nil {
			out.Deposit, share = q, q.Share
		}
	case OpWithdraw:
		var q *lpshare.WithdrawQuote
		q, err = calc.QuoteWithdraw(snapshot.Pool, amount)
		if err == nil {
			out.Withdraw, share = q, q.Share
		}
	default:
		return fmt.Errorf("%w: unknown op %q", errUsage, opts.op)
	}
	if err != nil {
		return err
	}

	out.Share = share
	out.Human = humanize(share, cfg)
	if snapshot.LpPool != nil {
		out.LpPool = &lpPoolView{
			TokenX:      snapshot.LpPool.TokenX.String(),
			TokenY:      snapshot.LpPool.TokenY.String(),
			Position:    snapshot.LpPool.InvariantPosition.String(),
			TickSpacing: snapshot.LpPool.TickSpacing,
			Fee:         snapshot.LpPool.FeeDecimal().ToUI(decimals.FixedPointScale),
		}
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// parseAmount reads -amount in raw units. With -ui, deposits use the token's
// decimals and withdrawals the LP token's.
func parseAmount(opts *options, cfg *config.Config) (decimals.Decimal, error) {
	if !opts.ui {
		amount, err := decimals.NewFromString(opts.amount)
		if err != nil {
			return decimals.Decimal{}, fmt.Errorf("%w: -amount: %v", errUsage, err)
		}
		return amount, nil
	}

	ui, err := decimal.NewFromString(opts.amount)
	if err != nil {
		return decimals.Decimal{}, fmt.Errorf("%w: -amount: %v", errUsage, err)
	}
	var places uint8
	switch opts.op {
	case OpDepositX:
		places = cfg.TokenX.Decimals
	case OpDepositY:
		places = cfg.TokenY.Decimals
	case OpWithdraw:
		places = state.LpTokenDecimals
	default:
		return decimals.Decimal{}, fmt.Errorf("%w: -ui does not apply to %s", errUsage, opts.op)
	}
	return decimals.NewFromBigInt(dmath.FromUIAmount(ui, places)), nil
}
