package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MAYZGitHub/mayz-tools/internal/balance"
	"github.com/MAYZGitHub/mayz-tools/internal/cardano"
	"github.com/MAYZGitHub/mayz-tools/internal/datum"
	"github.com/MAYZGitHub/mayz-tools/internal/pkg/validator"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("BLOCKFROST_API_KEY", "mainnetKey")
		t.Setenv("WALLETS", "MANU_MAYZ:addr1q8nx,FEDE:addr1qyaz")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "mainnetKey", cfg.BlockfrostAPIKey)
		assert.Equal(t, "https://cardano-mainnet.blockfrost.io/api/v0", cfg.BlockfrostURL)
		assert.Equal(t, "https://dapp.mayz.io/api", cfg.DAppAPIURL)
		assert.Equal(t, 10*time.Minute, cfg.PriceCacheTTL)
		assert.Equal(t, "mayz-tools", cfg.RedisKeyPrefix)
		assert.Equal(t, 1, cfg.ContractConcurrency)
		assert.Equal(t, datum.MatchFull, cfg.MatchPolicy)
		assert.Equal(t, cardano.Mainnet, cfg.CardanoNetwork())
		assert.Equal(t, "e46f629f31e4a3c4ba16dd3bc396f24fb222f2776e7d698f2bda5018674d41595a", cfg.GovTokenUnit())
		assert.Equal(t, Wallets{
			{Name: "MANU MAYZ", Address: "addr1q8nx"},
			{Name: "FEDE", Address: "addr1qyaz"},
		}, cfg.Wallets)
		assert.Len(t, cfg.Contracts, 6)
	})

	t.Run("should require the blockfrost key", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("BLOCKFROST_API_KEY", "")

		_, err := Load()
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})

	t.Run("should read the dotenv file without overriding the environment", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		t.Setenv("LOG_LEVEL", "warn")
		t.Setenv("BLOCKFROST_API_KEY", "")
		t.Setenv("MATCH_POLICY", "")
		os.Unsetenv("MATCH_POLICY")

		writeFile(t, dir, ".env", "BLOCKFROST_API_KEY=fromDotEnv\n")
		writeFile(t, dir, ".env.local", `
# local overrides
export BLOCKFROST_API_KEY="fromLocal"
LOG_LEVEL=debug
MATCH_POLICY='any'
`)
		os.Unsetenv("BLOCKFROST_API_KEY")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "fromLocal", cfg.BlockfrostAPIKey)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, datum.MatchAny, cfg.MatchPolicy)
	})

	t.Run("should replace the registry with the contracts file", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		t.Setenv("BLOCKFROST_API_KEY", "key")
		t.Setenv("CONTRACTS_FILE", writeFile(t, dir, "contracts.json", `[
			{"name": "Staking", "address": "addr1w9cplc", "pkhPath": ["fields", 0, "fields", 0], "stakePath": "fields.0.fields.1.fields.0"}
		]`))

		cfg, err := Load()
		require.NoError(t, err)

		require.Len(t, cfg.Contracts, 1)
		assert.Equal(t, balance.ContractSpec{
			Name:        "Staking",
			Address:     "addr1w9cplc",
			PaymentPath: datum.MustParsePath("fields.0.fields.0"),
			StakePath:   datum.MustParsePath("fields.0.fields.1.fields.0"),
		}, cfg.Contracts[0])
	})

	t.Run("should reject invalid settings", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("BLOCKFROST_API_KEY", "key")
		t.Setenv("CONTRACT_CONCURRENCY", "0")

		_, err := Load()
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})

	t.Run("should reject unknown match policies", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("BLOCKFROST_API_KEY", "key")
		t.Setenv("MATCH_POLICY", "some")

		_, err := Load()
		assert.ErrorContains(t, err, "unknown match policy")
	})
}

func TestWalletsDecode(t *testing.T) {
	var w Wallets
	require.NoError(t, w.Decode(" A_B :addr1x, broken, :addr1y,C:, D:addr1z "))

	assert.Equal(t, Wallets{
		{Name: "A B", Address: "addr1x"},
		{Name: "D", Address: "addr1z"},
	}, w)

	require.NoError(t, w.Decode(""))
	assert.Empty(t, w)
}

func TestLoadContracts(t *testing.T) {
	t.Run("should fail on a missing file", func(t *testing.T) {
		_, err := LoadContracts(filepath.Join(t.TempDir(), "nope.json"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("should fail on incomplete contracts", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "c.json", `[{"name": "NoAddress", "pkhPath": [], "stakePath": []}]`)

		_, err := LoadContracts(path)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.ErrorContains(t, err, "NoAddress")
	})

	t.Run("should fail on bad paths", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "c.json", `[{"name": "X", "address": "a", "pkhPath": [-1], "stakePath": []}]`)

		_, err := LoadContracts(path)
		assert.Error(t, err)
	})
}

func TestDefaultContracts(t *testing.T) {
	for _, c := range DefaultContracts() {
		t.Run("should validate "+c.Name, func(t *testing.T) {
			assert.NoError(t, validator.Validate(c))
			assert.Equal(t, 4, len(c.PaymentPath))
			assert.Equal(t, 6, len(c.StakePath))
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	t.Run("should ignore missing files", func(t *testing.T) {
		assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))
	})

	t.Run("should reject unterminated values", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), ".env", "BLOCKFROST_API_KEY=\"unterminated\n")
		assert.ErrorContains(t, LoadDotEnv(path), "load "+path)
	})

	t.Run("should load only the first existing file", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("MAYZ_DOTENV_FIRST", "")
		t.Setenv("MAYZ_DOTENV_SECOND", "")
		os.Unsetenv("MAYZ_DOTENV_FIRST")
		os.Unsetenv("MAYZ_DOTENV_SECOND")

		first := writeFile(t, dir, ".env.local", "MAYZ_DOTENV_FIRST=local\n")
		second := writeFile(t, dir, ".env", "MAYZ_DOTENV_SECOND=shared\n")

		require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing"), first, second))

		assert.Equal(t, "local", os.Getenv("MAYZ_DOTENV_FIRST"))
		_, set := os.LookupEnv("MAYZ_DOTENV_SECOND")
		assert.False(t, set)
	})
}
