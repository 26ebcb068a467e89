// Package config loads the tools configuration from the environment.
//
// A .env.local file, or .env when there is none, is read first; variables
// already set in the environment win over the file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/MAYZGitHub/mayz-tools/internal/balance"
	"github.com/MAYZGitHub/mayz-tools/internal/cardano"
	"github.com/MAYZGitHub/mayz-tools/internal/datum"
	"github.com/MAYZGitHub/mayz-tools/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// DotEnvFiles are the files read before the environment, first match wins.
var DotEnvFiles = []string{".env.local", ".env"}

// Config holds every setting of the tools.
type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	BlockfrostAPIKey string `envconfig:"BLOCKFROST_API_KEY" validate:"required"`
	BlockfrostURL    string `envconfig:"BLOCKFROST_URL" default:"https://cardano-mainnet.blockfrost.io/api/v0" validate:"required,url"`
	DAppAPIURL       string `envconfig:"DAPP_API_URL" default:"https://dapp.mayz.io/api" validate:"required,url"`
	CoinGeckoURL     string `envconfig:"COINGECKO_URL" default:"https://api.coingecko.com/api/v3" validate:"required,url"`
	Network          string `envconfig:"NETWORK" default:"mainnet" validate:"oneof=mainnet testnet preprod preview"`

	Wallets       Wallets `envconfig:"WALLETS"`
	ContractsFile string  `envconfig:"CONTRACTS_FILE"`

	GovTokenPolicy string `envconfig:"GOV_TOKEN_POLICY" default:"e46f629f31e4a3c4ba16dd3bc396f24fb222f2776e7d698f2bda5018" validate:"cardano_hash"`
	GovTokenName   string `envconfig:"GOV_TOKEN_NAME" default:"674d41595a" validate:"omitempty,hexadecimal,max=64"`

	RedisAddr      string        `envconfig:"REDIS_ADDR" validate:"omitempty,hostname_port"`
	RedisUsername  string        `envconfig:"REDIS_USERNAME"`
	RedisPassword  string        `envconfig:"REDIS_PASSWORD"`
	RedisDB        int           `envconfig:"REDIS_DB" default:"0" validate:"min=0"`
	RedisKeyPrefix string        `envconfig:"REDIS_KEY_PREFIX" default:"mayz-tools"`
	PriceCacheTTL  time.Duration `envconfig:"PRICE_CACHE_TTL" default:"10m" validate:"min=0"`

	HTTPTimeout         time.Duration     `envconfig:"HTTP_TIMEOUT" default:"30s" validate:"gt=0"`
	HTTPRetryMax        int               `envconfig:"HTTP_RETRY_MAX" default:"3" validate:"min=0"`
	ContractConcurrency int               `envconfig:"CONTRACT_CONCURRENCY" default:"1" validate:"min=1"`
	MatchPolicy         datum.MatchPolicy `envconfig:"MATCH_POLICY" default:"full"`

	OTelEnabled     bool   `envconfig:"OTEL_ENABLED" default:"false"`
	OTelServiceName string `envconfig:"OTEL_SERVICE_NAME" default:"mayz-tools" validate:"required"`

	// Contracts is the contract registry: CONTRACTS_FILE when set, the
	// built-in MAYZ contracts otherwise.
	Contracts []balance.ContractSpec `ignored:"true" validate:"required,dive"`
}

// GovTokenUnit returns the governance token unit (policy id + asset name).
func (c Config) GovTokenUnit() string {
	return c.GovTokenPolicy + c.GovTokenName
}

// CardanoNetwork returns the parsed network.
func (c Config) CardanoNetwork() cardano.Network {
	n, err := cardano.ParseNetwork(c.Network)
	if err != nil {
		return cardano.Mainnet
	}
	return n
}

// Load reads the first existing dotenv file, then the environment, then the
// contract registry, and validates the result.
func Load() (Config, error) {
	if err := LoadDotEnv(DotEnvFiles...); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}

	cfg.Contracts = DefaultContracts()
	if cfg.ContractsFile != "" {
		contracts, err := LoadContracts(cfg.ContractsFile)
		if err != nil {
			return Config{}, err
		}
		cfg.Contracts = contracts
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Wallets decodes WALLETS, a comma separated list of NAME:address entries.
// Underscores in names become spaces; incomplete entries are skipped.
type Wallets []balance.WalletRef

// Decode implements envconfig.Decoder.
func (w *Wallets) Decode(value string) error {
	var out Wallets
	for _, entry := range strings.Split(value, ",") {
		name, address, _ := strings.Cut(strings.TrimSpace(entry), ":")
		name = strings.ReplaceAll(strings.TrimSpace(name), "_", " ")
		address = strings.TrimSpace(address)
		if name == "" || address == "" {
			continue
		}

		out = append(out, balance.WalletRef{Name: name, Address: address})
	}

	*w = out
	return nil
}

// LoadContracts reads a JSON contract registry: an array of objects with
// name, address, pkhPath and stakePath (paths as arrays or dotted strings).
func LoadContracts(path string) ([]balance.ContractSpec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read contracts file: %w", err)
	}

	var contracts []balance.ContractSpec
	if err := json.Unmarshal(raw, &contracts); err != nil {
		return nil, fmt.Errorf("decode contracts file %s: %w", path, err)
	}

	for _, c := range contracts {
		if err := validator.Validate(c); err != nil {
			return nil, fmt.Errorf("contract %q: %w", c.Name, err)
		}
	}

	return contracts, nil
}

var (
	offerPKH   = datum.MustParsePath("fields.0.fields.3")
	offerStake = datum.MustParsePath("fields.0.fields.4.fields.0")
)

// DefaultContracts returns the MAYZ protocol contracts.
func DefaultContracts() []balance.ContractSpec {
	return []balance.ContractSpec{
		{
			Name:        "SwapOffer Dapp",
			Address:     "addr1w8eewkl3zrrlu9mp0gw7lvtd5zavaghsukmf6ynq9668ajc6pzu77",
			PaymentPath: offerPKH,
			StakePath:   offerStake,
		},
		{
			Name:        "SwapOffer Gov",
			Address:     "addr1w8yev93jyze583nnnvfung94kfxu86wsrexh7m2ylexcqfs7s4kyn",
			PaymentPath: offerPKH,
			StakePath:   offerStake,
		},
		{
			Name:        "Delegation Dapp",
			Address:     "addr1wxjk575g7dt7efpa74druyyx0ufcnm8wku9gnxust0rsacs8zldfg",
			PaymentPath: offerPKH,
			StakePath:   offerStake,
		},
		{
			Name:        "Staking MAYZ",
			Address:     "addr1w9cplc68n2q4x3kjaf6djfsm4zhczkuftmx3nqtcpw6rvts74alaf",
			PaymentPath: datum.MustParsePath("fields.0.fields.0"),
			StakePath:   datum.MustParsePath("fields.0.fields.1.fields.0"),
		},
		{
			Name:        "Script Dapp",
			Address:     "addr1wyq0h2qnx6gz8f652ey92la34h39s8an0m0hmawm0s6qlccl65jxk",
			PaymentPath: datum.MustParsePath("fields.0.fields.2"),
			StakePath:   datum.MustParsePath("fields.0.fields.3.fields.0"),
		},
		{
			Name:        "Script Gov",
			Address:     "addr1wy6q84t6yuz6878wje04t2mgmtekuqm7kjf6rqsncluleeg8jn37e",
			PaymentPath: datum.MustParsePath("fields.0.fields.2"),
			StakePath:   datum.MustParsePath("fields.0.fields.3.fields.0"),
		},
	}
}
