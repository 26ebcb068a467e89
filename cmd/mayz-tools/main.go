package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/MAYZGitHub/mayz-tools/internal/balance"
	"github.com/MAYZGitHub/mayz-tools/internal/config"
	"github.com/MAYZGitHub/mayz-tools/internal/funds"
	"github.com/MAYZGitHub/mayz-tools/internal/handlers/cli"
	"github.com/MAYZGitHub/mayz-tools/internal/holders"
	"github.com/MAYZGitHub/mayz-tools/internal/infra/blockfrost"
	"github.com/MAYZGitHub/mayz-tools/internal/infra/mayzapi"
	"github.com/MAYZGitHub/mayz-tools/internal/infra/storage/memory"
	"github.com/MAYZGitHub/mayz-tools/internal/infra/storage/redis"
	"github.com/MAYZGitHub/mayz-tools/internal/pkg/logger"
	"github.com/MAYZGitHub/mayz-tools/internal/pkg/resilience/retry"
	"github.com/MAYZGitHub/mayz-tools/internal/pkg/telemetry"
	transporthttp "github.com/MAYZGitHub/mayz-tools/internal/pkg/transport/http"
	"github.com/MAYZGitHub/mayz-tools/internal/pkg/transport/rest"
	"github.com/MAYZGitHub/mayz-tools/internal/utxodump"
	"github.com/MAYZGitHub/mayz-tools/internal/valuation"
)

// cache keeps quotes and datums across runs.
type cache interface {
	valuation.PriceCache
	blockfrost.DatumCache
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}

	if err := run(ctx, cfg); err != nil {
		logger.Error(ctx, "command failed", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}

	_ = logger.Sync()
}

func run(ctx context.Context, cfg config.Config) error {
	shutdown, err := telemetry.Init(ctx, telemetry.Config{
		Enabled:     cfg.OTelEnabled,
		ServiceName: cfg.OTelServiceName,
	})
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	defer func() {
		if err := shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Warn(ctx, "telemetry shutdown failed", "error", err)
		}
	}()

	store, closeStore, err := newCache(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	httpClient := transporthttp.NewClient(
		transporthttp.WithTimeout(cfg.HTTPTimeout),
		transporthttp.WithRetryMax(cfg.HTTPRetryMax),
		transporthttp.WithLogging(),
	).StandardClient()

	chain := blockfrost.New(
		rest.NewClient(httpClient, cfg.BlockfrostURL, rest.WithHeader(blockfrost.ProjectIDHeader, cfg.BlockfrostAPIKey)),
		blockfrost.WithDatumCache(store),
	)

	dapp := mayzapi.New(
		rest.NewClient(httpClient, cfg.DAppAPIURL),
		rest.NewClient(httpClient, cfg.CoinGeckoURL),
	)

	balances := balance.New(chain, chain,
		balance.WithRetry(retry.New(retry.WithRetryIf(retryable))),
		balance.WithMatchPolicy(cfg.MatchPolicy),
		balance.WithContractConcurrency(cfg.ContractConcurrency),
		balance.WithFundsSource(dapp),
	)

	return cli.Run(ctx, cli.Services{
		Balance:   balances,
		Holders:   holders.New(chain),
		Dumper:    utxodump.New(chain, chain, utxodump.WithNetwork(cfg.CardanoNetwork())),
		Funds:     funds.New(dapp),
		Valuer:    valuation.New(dapp, valuation.WithCache(store, cfg.PriceCacheTTL)),
		Wallets:   cfg.Wallets,
		Contracts: cfg.Contracts,
		GovUnit:   cfg.GovTokenUnit(),
		Network:   cfg.CardanoNetwork(),
	})
}

// newCache connects to Redis when REDIS_ADDR is set and falls back to an
// in-process store otherwise.
func newCache(ctx context.Context, cfg config.Config) (cache, func(), error) {
	if cfg.RedisAddr == "" {
		return memory.NewStore(), func() {}, nil
	}

	client, err := redis.NewClient(ctx, redis.Options{
		Addr:      cfg.RedisAddr,
		Username:  cfg.RedisUsername,
		Password:  cfg.RedisPassword,
		DB:        cfg.RedisDB,
		KeyPrefix: cfg.RedisKeyPrefix,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("connect to redis: %w", err)
	}

	return client, func() {
		if err := client.Close(); err != nil {
			logger.Warn(ctx, "redis close failed", "error", err)
		}
	}, nil
}

// retryable retries a UTxO listing whose response body broke off after a 2xx
// status. Rate limits, server errors and failed connections are retried per
// request by the HTTP client and are not retried again here.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if !errors.Is(err, rest.ErrBody) {
		return false
	}

	var netErr net.Error
	return errors.Is(err, io.ErrUnexpectedEOF) || errors.As(err, &netErr)
}
