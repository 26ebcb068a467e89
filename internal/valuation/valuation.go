// Package valuation prices ledgers in ADA and USD.
//
// Token prices are quoted as ADA x 10^6 for one unit of the token (the dApp
// price endpoint's priceADAx1e6); lovelace is fixed at 10^6. The ADA value
// of a ledger is sum(price x quantity) / 10^12 and its USD value is the ADA
// value times the ADA/USD rate.
package valuation

import (
	"context"
	"math/big"
	"strconv"
	"sync"
	"time"

	"github.com/MAYZGitHub/mayz-tools/internal/ledger"
	"github.com/MAYZGitHub/mayz-tools/internal/pkg/logger"
)

// adaUSDKey is the cache key of the ADA/USD rate.
const adaUSDKey = "adausd"

var (
	lovelacePrice = big.NewInt(1_000_000)
	priceScale    = new(big.Int).Exp(big.NewInt(10), big.NewInt(12), nil)
)

// PriceOracle quotes token prices.
type PriceOracle interface {
	// TokenPriceADAx1e6 returns the ADA price of one unit of the token,
	// multiplied by 10^6.
	TokenPriceADAx1e6(ctx context.Context, unit string) (*big.Int, error)
	// ADAUSD returns the USD price of one ADA.
	ADAUSD(ctx context.Context) (float64, error)
}

// PriceCache keeps quotes across runs.
type PriceCache interface {
	GetPrice(ctx context.Context, key string) (string, bool, error)
	SetPrice(ctx context.Context, key, value string, ttl time.Duration) error
}

// UnitValue is the valuation of one unit of a ledger.
type UnitValue struct {
	Unit         string
	Quantity     *big.Int
	PriceADAx1e6 *big.Int // zero when no price is known
	ADA          *big.Rat
	USD          *big.Rat
}

// Valuation is the value of a ledger.
type Valuation struct {
	Units  []UnitValue // in ledger.Units order
	ADA    *big.Rat
	USD    *big.Rat
	ADAUSD float64
}

// Service prices ledgers. Quotes are memoized for the lifetime of the
// service; a failed token quote is memoized as zero so it is reported once.
type Service struct {
	oracle PriceOracle
	cache  PriceCache
	ttl    time.Duration

	mu     sync.Mutex
	prices map[string]*big.Int
	adaUSD *float64
}

type config struct {
	cache PriceCache
	ttl   time.Duration
}

// Option configures the valuation service.
type Option func(*config)

// WithCache keeps quotes in c for ttl.
func WithCache(c PriceCache, ttl time.Duration) Option {
	return func(cfg *config) {
		cfg.cache = c
		cfg.ttl = ttl
	}
}

// New returns a valuation service quoting from oracle.
func New(oracle PriceOracle, opts ...Option) *Service {
	cfg := config{
		ttl: 10 * time.Minute,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Service{
		oracle: oracle,
		cache:  cfg.cache,
		ttl:    cfg.ttl,
		prices: make(map[string]*big.Int),
	}
}

// Price returns the ADA x 10^6 price of unit, or zero when it cannot be
// quoted.
func (s *Service) Price(ctx context.Context, unit string) *big.Int {
	if unit == ledger.Lovelace {
		return new(big.Int).Set(lovelacePrice)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.prices[unit]; ok {
		return new(big.Int).Set(p)
	}

	p := s.quoteToken(ctx, unit)
	s.prices[unit] = p
	return new(big.Int).Set(p)
}

func (s *Service) quoteToken(ctx context.Context, unit string) *big.Int {
	key := "token:" + unit

	if cached, ok := s.cached(ctx, key); ok {
		if p, ok := new(big.Int).SetString(cached, 10); ok {
			return p
		}
	}

	p, err := s.oracle.TokenPriceADAx1e6(ctx, unit)
	if err != nil || p == nil || p.Sign() < 0 {
		logger.Warn(ctx, "token price unavailable, valued at zero", "unit", unit, "error", err)
		return new(big.Int)
	}

	s.store(ctx, key, p.String())
	return p
}

// ADAUSD returns the USD price of one ADA, or zero when it cannot be quoted.
// Failures are not memoized.
func (s *Service) ADAUSD(ctx context.Context) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.adaUSD != nil {
		return *s.adaUSD
	}

	if cached, ok := s.cached(ctx, adaUSDKey); ok {
		if rate, err := strconv.ParseFloat(cached, 64); err == nil {
			s.adaUSD = &rate
			return rate
		}
	}

	rate, err := s.oracle.ADAUSD(ctx)
	if err != nil {
		logger.Warn(ctx, "ADA/USD rate unavailable", "error", err)
		return 0
	}

	s.store(ctx, adaUSDKey, strconv.FormatFloat(rate, 'f', -1, 64))
	s.adaUSD = &rate
	return rate
}

func (s *Service) cached(ctx context.Context, key string) (string, bool) {
	if s.cache == nil {
		return "", false
	}

	v, ok, err := s.cache.GetPrice(ctx, key)
	if err != nil {
		logger.Warn(ctx, "price cache read failed", "key", key, "error", err)
		return "", false
	}
	return v, ok
}

func (s *Service) store(ctx context.Context, key, value string) {
	if s.cache == nil {
		return
	}

	if err := s.cache.SetPrice(ctx, key, value, s.ttl); err != nil {
		logger.Warn(ctx, "price cache write failed", "key", key, "error", err)
	}
}

// Value prices every unit of l. It only fails when ctx is done.
func (s *Service) Value(ctx context.Context, l ledger.Ledger) (Valuation, error) {
	rate := s.ADAUSD(ctx)
	usdRate := new(big.Rat)
	if r := new(big.Rat).SetFloat64(rate); r != nil {
		usdRate = r
	}

	out := Valuation{
		ADA:    new(big.Rat),
		USD:    new(big.Rat),
		ADAUSD: rate,
	}

	for _, unit := range l.Units() {
		if err := ctx.Err(); err != nil {
			return Valuation{}, err
		}

		qty := l.Get(unit)
		price := s.Price(ctx, unit)

		ada := new(big.Rat).SetFrac(new(big.Int).Mul(price, qty), priceScale)
		usd := new(big.Rat).Mul(ada, usdRate)

		out.Units = append(out.Units, UnitValue{
			Unit:         unit,
			Quantity:     qty,
			PriceADAx1e6: price,
			ADA:          ada,
			USD:          usd,
		})
		out.ADA.Add(out.ADA, ada)
		out.USD.Add(out.USD, usd)
	}

	return out, nil
}
