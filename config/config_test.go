package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/minaorangina/cardtable/game"
	utils "github.com/minaorangina/cardtable/internal"
	"github.com/minaorangina/cardtable/store"
	"github.com/minaorangina/cardtable/uno"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cardtable.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("defaults without a file", func(t *testing.T) {
		cfg, err := Load("")

		utils.AssertNoError(t, err)
		assert.Equal(t, Default(), cfg)
		utils.AssertEqual(t, cfg.GameVariant(), game.Blackjack)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := writeConfig(t, `
variant: uno
seats: [Ada, Bo, Cy, Di]
seed: 42
table:
  initial_points: 250
store:
  backend: memory
  cache_size: 16
variant_options:
  hand_size: 5
`)

		cfg, err := Load(path)

		utils.AssertNoError(t, err)
		utils.AssertEqual(t, cfg.GameVariant(), game.Uno)
		assert.Equal(t, []string{"Ada", "Bo", "Cy", "Di"}, cfg.SeatNames())
		utils.AssertEqual(t, cfg.Seed, int64(42))
		utils.AssertEqual(t, cfg.Table.InitialPoints, 250)
		utils.AssertEqual(t, cfg.Table.MaxBet, 100)
		utils.AssertEqual(t, cfg.Store.CacheSize, 16)
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "variant: uno\n")
		t.Setenv("CARDTABLE_VARIANT", "poker")
		t.Setenv("CARDTABLE_SEATS", "Ana;Ben")
		t.Setenv("CARDTABLE_MAX_BET", "500")

		cfg, err := Load(path)

		utils.AssertNoError(t, err)
		utils.AssertEqual(t, cfg.GameVariant(), game.Poker)
		assert.Equal(t, []string{"Ana", "Ben"}, cfg.Seats)
		utils.AssertEqual(t, cfg.Table.MaxBet, 500)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		utils.AssertErrored(t, err)
	})

	t.Run("malformed file", func(t *testing.T) {
		_, err := Load(writeConfig(t, "variant: [uno"))
		utils.AssertErrored(t, err)
	})

	t.Run("unknown variant", func(t *testing.T) {
		_, err := Load(writeConfig(t, "variant: snap\n"))
		utils.AssertErrorIs(t, err, game.ErrInvalidConfiguration)
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, err := Load(writeConfig(t, "store:\n  backend: floppy\n"))
		utils.AssertErrorIs(t, err, game.ErrInvalidConfiguration)
	})

	t.Run("postgres needs a dsn", func(t *testing.T) {
		_, err := Load(writeConfig(t, "store:\n  backend: postgres\n"))
		utils.AssertErrorIs(t, err, game.ErrInvalidConfiguration)
	})
}

func TestSeatNames(t *testing.T) {
	tests := []struct {
		variant string
		want    []string
	}{
		{"blackjack", []string{"Ada", "Bo", "Dealer"}},
		{"uno", []string{"Ada", "Bo", "Cy"}},
		{"poker", []string{"Ada", "Bo", "Cy", "Di"}},
		{"baccarat", []string{"Punto", "Banco"}},
	}
	for _, tt := range tests {
		t.Run(tt.variant, func(t *testing.T) {
			cfg := Default()
			cfg.Variant = tt.variant
			assert.Equal(t, tt.want, cfg.SeatNames())
		})
	}
}

func TestTableOptions(t *testing.T) {
	t.Run("carries table limits and variant options", func(t *testing.T) {
		cfg := Default()
		cfg.Variant = "uno"
		cfg.VariantOptions = map[string]interface{}{"hand_size": 5}

		opts, err := cfg.TableOptions()

		utils.AssertNoError(t, err)
		utils.AssertEqual(t, opts.MinPlayers(), 1)
		utils.AssertEqual(t, opts.MaxPlayers(), 10)
		utils.AssertEqual(t, opts.InitialPoints().Value(), 100)
		utils.AssertEqual(t, opts.MinBet().Value(), 1)
		utils.AssertEqual(t, opts.MaxBet().Value(), 100)
		utils.AssertTrue(t, opts.AllowsBet(mustBet(t, 50)))
		utils.AssertEqual(t, opts.Extra(), game.VariantOptions(uno.Options{HandSize: 5}))
	})

	t.Run("rejects an inverted table", func(t *testing.T) {
		cfg := Default()
		cfg.Table.MinBet, cfg.Table.MaxBet = 10, 5

		_, err := cfg.TableOptions()

		utils.AssertErrorIs(t, err, game.ErrInvalidOptions)
	})

	t.Run("rejects negative points", func(t *testing.T) {
		cfg := Default()
		cfg.Table.InitialPoints = -1

		_, err := cfg.TableOptions()

		utils.AssertErrorIs(t, err, game.ErrInvalidPoints)
	})
}

func mustBet(t *testing.T, n int) game.BetAmount {
	t.Helper()
	b, err := game.NewBetAmount(n)
	require.NoError(t, err)
	return b
}

func TestDecodeVariantOptions(t *testing.T) {
	t.Run("decodes strings into numbers", func(t *testing.T) {
		opts, err := DecodeVariantOptions(game.Uno, map[string]interface{}{"hand_size": "9"})

		utils.AssertNoError(t, err)
		utils.AssertEqual(t, opts, game.VariantOptions(uno.Options{HandSize: 9}))
	})

	t.Run("an empty mapping gives default uno options", func(t *testing.T) {
		opts, err := DecodeVariantOptions(game.Uno, nil)

		utils.AssertNoError(t, err)
		utils.AssertEqual(t, opts, game.VariantOptions(uno.Options{}))
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		_, err := DecodeVariantOptions(game.Uno, map[string]interface{}{"hand_sise": 9})
		utils.AssertErrorIs(t, err, game.ErrInvalidOptions)
	})

	t.Run("negative hand sizes are rejected", func(t *testing.T) {
		_, err := DecodeVariantOptions(game.Uno, map[string]interface{}{"hand_size": -2})
		utils.AssertErrorIs(t, err, game.ErrInvalidOptions)
	})

	t.Run("variants without options", func(t *testing.T) {
		opts, err := DecodeVariantOptions(game.Poker, nil)
		utils.AssertNoError(t, err)
		assert.Nil(t, opts)

		_, err = DecodeVariantOptions(game.Baccarat, map[string]interface{}{"decks": 8})
		utils.AssertErrorIs(t, err, game.ErrInvalidOptions)
	})
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		st, err := Default().OpenStore(ctx)

		utils.AssertNoError(t, err)
		assert.IsType(t, &store.InMemoryStore{}, st)
	})

	t.Run("memory behind a cache", func(t *testing.T) {
		cfg := Default()
		cfg.Store.CacheSize = 4

		st, err := cfg.OpenStore(ctx)

		utils.AssertNoError(t, err)
		assert.IsType(t, &store.CachedStore{}, st)
		utils.AssertEqual(t, st.Backend(), "memory")
	})
}
