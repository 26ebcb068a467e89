package balance

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"

	"github.com/MAYZGitHub/mayz-tools/internal/cardano"
	"github.com/MAYZGitHub/mayz-tools/internal/datum"
	"github.com/MAYZGitHub/mayz-tools/internal/ledger"
	"github.com/MAYZGitHub/mayz-tools/internal/pkg/logger"
	"github.com/MAYZGitHub/mayz-tools/internal/pkg/resilience/retry"
	"github.com/MAYZGitHub/mayz-tools/internal/pkg/telemetry"
	"github.com/MAYZGitHub/mayz-tools/internal/pkg/types"
	"github.com/MAYZGitHub/mayz-tools/internal/pkg/x/chflow"
)

// Service aggregates wallet balances.
type Service interface {
	// Aggregate processes wallets in order against every contract. A wallet
	// that fails is reported with its error and the run goes on; only
	// context cancellation aborts the run.
	Aggregate(ctx context.Context, wallets []WalletRef, contracts []ContractSpec) (Report, error)

	// AggregateWallet processes one wallet within state. It returns the
	// error that stopped the wallet, if any. It does not touch the run
	// totals of state.
	AggregateWallet(ctx context.Context, state *RunState, wallet WalletRef, contracts []ContractSpec) (WalletReport, error)

	// GovernanceBalances breaks down the governance token unit for every
	// wallet of report that completed. Funds lookup failures stay on their
	// row; only context cancellation fails the call.
	GovernanceBalances(ctx context.Context, report Report, unit string) ([]GovernanceBalance, error)
}

type service struct {
	utxos  UtxoSource
	datums DatumResolver
	funds  FundsSource

	retry               retry.Retry
	policy              datum.MatchPolicy
	contractConcurrency int

	scanned metric.Int64Counter
	matched metric.Int64Counter
}

// Compile-time check to ensure *service implements the Service interface.
var _ Service = (*service)(nil)

func (s *service) Aggregate(ctx context.Context, wallets []WalletRef, contracts []ContractSpec) (Report, error) {
	state := NewRunState()
	ctx = logger.Derive(ctx, "run_id", state.ID)

	ctx, span := telemetry.Tracer().Start(ctx, "balance.Aggregate", trace.WithAttributes(
		attribute.String("run.id", state.ID),
		attribute.Int("wallets", len(wallets)),
		attribute.Int("contracts", len(contracts)),
	))
	defer span.End()

	logger.Info(ctx, "balance run started", "wallets", len(wallets), "contracts", len(contracts), "match_policy", s.policy.String())

	reports := make([]WalletReport, 0, len(wallets))
	for _, w := range wallets {
		report, err := s.AggregateWallet(ctx, state, w, contracts)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				span.SetStatus(codes.Error, ctxErr.Error())
				return Report{}, ctxErr
			}

			logger.Error(ctx, "wallet skipped", "wallet", w.Name, "error", err)
			report.Err = err
			reports = append(reports, report)
			continue
		}

		state.record(report)
		reports = append(reports, report)
	}

	out := state.snapshot(reports)
	logger.Info(ctx, "balance run finished",
		"wallets.failed", len(out.Failed()),
		"duration", out.FinishedAt.Sub(out.StartedAt).String(),
	)

	return out, nil
}

func (s *service) AggregateWallet(ctx context.Context, state *RunState, w WalletRef, contracts []ContractSpec) (WalletReport, error) {
	ctx = logger.Derive(ctx, "wallet", w.Name)

	ctx, span := telemetry.Tracer().Start(ctx, "balance.AggregateWallet", trace.WithAttributes(
		attribute.String("wallet.name", w.Name),
	))
	defer span.End()

	report := WalletReport{
		Wallet:   w,
		Holdings: ledger.New(),
		Locked:   ledger.New(),
	}

	err := s.aggregateWallet(ctx, state, &report, contracts)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return report, err
}

func (s *service) aggregateWallet(ctx context.Context, state *RunState, report *WalletReport, contracts []ContractSpec) error {
	id, err := cardano.DeriveIdentity(report.Wallet.Address)
	if err != nil {
		return fmt.Errorf("identify wallet %q: %w", report.Wallet.Name, err)
	}
	report.Identity = id

	utxos, err := s.fetchUtxos(ctx, report.Wallet.Address)
	if err != nil {
		return fmt.Errorf("fetch wallet utxos: %w", err)
	}

	for _, u := range utxos {
		if err := report.Holdings.MergeAssets(u.Amount); err != nil {
			return fmt.Errorf("wallet utxo %s: %w", u.Ref(), err)
		}
	}

	logger.Debug(ctx, "wallet holdings loaded", "utxos", len(utxos), "units", len(report.Holdings))

	results, err := chflow.OrderedMap(ctx, s.contractConcurrency, contracts, func(ctx context.Context, c ContractSpec) contractScan {
		return s.scanContract(ctx, state, id, c)
	})
	if err != nil {
		return err
	}

	for _, r := range results {
		if r.err != nil {
			return r.err
		}

		report.Contracts = append(report.Contracts, r.report)
		report.Locked.Merge(r.report.Ledger)
	}

	return nil
}

// contractScan is the outcome of scanning one contract for one wallet.
type contractScan struct {
	report ContractReport
	err    error
}

// scanContract matches every datum-carrying UTxO of c against id. It only
// writes to its own report so scans of different contracts can run in
// parallel.
func (s *service) scanContract(ctx context.Context, state *RunState, id cardano.Identity, c ContractSpec) contractScan {
	ctx = logger.Derive(ctx, "contract", c.Name)
	scan := contractScan{report: ContractReport{Contract: c, Ledger: ledger.New()}}

	utxos, err := state.contractUtxos(ctx, c.Address, s.fetchUtxos)
	if err != nil {
		scan.err = fmt.Errorf("fetch utxos of contract %q: %w", c.Name, err)
		return scan
	}

	attrs := metric.WithAttributes(attribute.String("contract", c.Name))
	seen := types.NewSet[string]()

	for _, u := range utxos {
		if !seen.TryAdd(u.Ref()) {
			logger.Warn(ctx, "duplicate utxo in contract listing", "utxo", u.Ref())
			continue
		}
		if !u.HasDatum() {
			continue
		}

		s.scanned.Add(ctx, 1, attrs)

		d := state.resolveDatum(ctx, u, s.datums)
		if d == nil {
			logger.Debug(ctx, "utxo datum unresolvable, skipped", "utxo", u.Ref())
			continue
		}

		result := datum.Match(d, id, c.PaymentPath, c.StakePath)
		if !s.policy.Accepts(result) {
			if result.Any() {
				logger.Debug(ctx, "partial owner match ignored", "utxo", u.Ref(),
					"payment", result.PaymentMatched,
					"stake", result.StakeMatched,
				)
			}
			continue
		}

		if err := scan.report.Ledger.MergeAssets(u.Amount); err != nil {
			scan.err = fmt.Errorf("contract %q utxo %s: %w", c.Name, u.Ref(), err)
			return scan
		}

		scan.report.Utxos = append(scan.report.Utxos, u.Ref())
		s.matched.Add(ctx, 1, attrs)
	}

	logger.Debug(ctx, "contract scanned", "utxos", len(utxos), "matched", len(scan.report.Utxos))
	return scan
}

// fetchUtxos lists address, retrying when a retry policy is configured.
func (s *service) fetchUtxos(ctx context.Context, address string) ([]Utxo, error) {
	if s.retry == nil {
		return s.utxos.FetchUtxos(ctx, address)
	}

	var utxos []Utxo
	err := s.retry.Execute(ctx, func() error {
		var err error
		utxos, err = s.utxos.FetchUtxos(ctx, address)
		return err
	})
	return utxos, err
}

type config struct {
	retry               retry.Retry
	policy              datum.MatchPolicy
	contractConcurrency int
	funds               FundsSource
}

// Option configures the balance service.
type Option func(*config)

// New creates a balance service reading UTxOs from utxos and datums from
// datums.
//
// Defaults: no retries, full match policy, contracts scanned one at a time
// and no funds source.
func New(utxos UtxoSource, datums DatumResolver, opts ...Option) *service {
	cfg := config{
		retry:               nil,
		policy:              datum.MatchFull,
		contractConcurrency: 1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	meter := telemetry.Meter()
	scanned, err := meter.Int64Counter("balance.utxos.scanned",
		metric.WithDescription("Contract UTxOs with a datum checked against a wallet"),
	)
	if err != nil {
		scanned = noop.Int64Counter{}
	}
	matched, err := meter.Int64Counter("balance.utxos.matched",
		metric.WithDescription("Contract UTxOs attributed to a wallet"),
	)
	if err != nil {
		matched = noop.Int64Counter{}
	}

	return &service{
		utxos:               utxos,
		datums:              datums,
		funds:               cfg.funds,
		retry:               cfg.retry,
		policy:              cfg.policy,
		contractConcurrency: cfg.contractConcurrency,
		scanned:             scanned,
		matched:             matched,
	}
}

// WithRetry retries UTxO fetches with r.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithMatchPolicy sets which datum matches count as ownership.
func WithMatchPolicy(p datum.MatchPolicy) Option {
	return func(c *config) {
		c.policy = p
	}
}

// WithContractConcurrency scans up to n contracts of a wallet at once. Values
// below 1 are treated as 1.
func WithContractConcurrency(n int) Option {
	return func(c *config) {
		c.contractConcurrency = max(n, 1)
	}
}

// WithFundsSource enables the funds column of GovernanceBalances.
func WithFundsSource(f FundsSource) Option {
	return func(c *config) {
		c.funds = f
	}
}

// isCanceled reports whether err comes from a canceled or expired context.
func isCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
