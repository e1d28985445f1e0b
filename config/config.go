package config

import (
	"context"
	"math/rand"
	"os"

	"github.com/joeshaw/envdecode"
	"github.com/minaorangina/cardtable/deck"
	"github.com/minaorangina/cardtable/game"
	"github.com/minaorangina/cardtable/store"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	MemoryBackend   = "memory"
	RedisBackend    = "redis"
	PostgresBackend = "postgres"
)

type Config struct {
	Variant  string   `yaml:"variant" env:"CARDTABLE_VARIANT"`
	Seats    []string `yaml:"seats" env:"CARDTABLE_SEATS"`
	LogLevel string   `yaml:"log_level" env:"CARDTABLE_LOG_LEVEL"`
	// Seed fixes the shuffle; 0 seeds from the clock.
	Seed int64 `yaml:"seed" env:"CARDTABLE_SEED"`

	Table Table `yaml:"table"`
	Store Store `yaml:"store"`

	// VariantOptions is decoded into the variant's own options type.
	VariantOptions map[string]interface{} `yaml:"variant_options"`
}

type Table struct {
	MinPlayers    int `yaml:"min_players" env:"CARDTABLE_MIN_PLAYERS"`
	MaxPlayers    int `yaml:"max_players" env:"CARDTABLE_MAX_PLAYERS"`
	InitialPoints int `yaml:"initial_points" env:"CARDTABLE_INITIAL_POINTS"`
	MinBet        int `yaml:"min_bet" env:"CARDTABLE_MIN_BET"`
	MaxBet        int `yaml:"max_bet" env:"CARDTABLE_MAX_BET"`
}

type Store struct {
	Backend       string `yaml:"backend" env:"CARDTABLE_STORE"`
	CacheSize     int    `yaml:"cache_size" env:"CARDTABLE_CACHE_SIZE"`
	RedisAddr     string `yaml:"redis_addr" env:"CARDTABLE_REDIS_ADDR"`
	RedisPassword string `yaml:"redis_password" env:"CARDTABLE_REDIS_PASSWORD"`
	RedisDB       int    `yaml:"redis_db" env:"CARDTABLE_REDIS_DB"`
	RedisPrefix   string `yaml:"redis_prefix" env:"CARDTABLE_REDIS_PREFIX"`
	PostgresDSN   string `yaml:"postgres_dsn" env:"CARDTABLE_POSTGRES_DSN"`
}

func Default() Config {
	return Config{
		Variant:  game.Blackjack.String(),
		LogLevel: "info",
		Table: Table{
			MinPlayers:    1,
			MaxPlayers:    10,
			InitialPoints: 100,
			MinBet:        1,
			MaxBet:        100,
		},
		Store: Store{
			Backend:   MemoryBackend,
			RedisAddr: "localhost:6379",
		},
	}
}

// Load layers the YAML file at path (skipped when path is empty) and then the
// CARDTABLE_* environment over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		bytes, err := os.ReadFile(path)
		if err != nil {
			return Config{}, errors.Wrapf(err, "Error reading config file [%s]", path)
		}
		if err := yaml.Unmarshal(bytes, &cfg); err != nil {
			return Config{}, errors.Wrapf(err, "Error parsing config file [%s]", path)
		}
	}

	if err := envdecode.Decode(&cfg); err != nil && err != envdecode.ErrNoTargetFieldsAreSet {
		return Config{}, errors.Wrap(err, "Error reading config from environment")
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if _, err := game.ParseVariant(c.Variant); err != nil {
		return errors.Wrapf(game.ErrInvalidConfiguration, "unknown variant %q", c.Variant)
	}
	switch c.Store.Backend {
	case MemoryBackend, RedisBackend, PostgresBackend:
	default:
		return errors.Wrapf(game.ErrInvalidConfiguration, "unknown store backend %q", c.Store.Backend)
	}
	if c.Store.Backend == PostgresBackend && c.Store.PostgresDSN == "" {
		return errors.Wrap(game.ErrInvalidConfiguration, "postgres store needs a DSN")
	}
	if c.Store.CacheSize < 0 {
		return errors.Wrapf(game.ErrInvalidConfiguration, "negative cache size %d", c.Store.CacheSize)
	}
	return nil
}

func (c Config) GameVariant() game.Variant {
	v, _ := game.ParseVariant(c.Variant)
	return v
}

// SeatNames returns the configured seats, or a default table for the variant.
func (c Config) SeatNames() []string {
	if len(c.Seats) > 0 {
		return c.Seats
	}
	switch c.GameVariant() {
	case game.Blackjack:
		return []string{"Ada", "Bo", "Dealer"}
	case game.Baccarat:
		return []string{"Punto", "Banco"}
	case game.Poker:
		return []string{"Ada", "Bo", "Cy", "Di"}
	}
	return []string{"Ada", "Bo", "Cy"}
}

func (c Config) Source() rand.Source {
	return deck.NewSource(c.Seed)
}

// TableOptions builds validated game options, variant options included.
func (c Config) TableOptions() (game.Options, error) {
	points, err := game.NewPoints(c.Table.InitialPoints)
	if err != nil {
		return game.Options{}, err
	}
	minBet, err := game.NewBetAmount(c.Table.MinBet)
	if err != nil {
		return game.Options{}, err
	}
	maxBet, err := game.NewBetAmount(c.Table.MaxBet)
	if err != nil {
		return game.Options{}, err
	}
	extra, err := DecodeVariantOptions(c.GameVariant(), c.VariantOptions)
	if err != nil {
		return game.Options{}, err
	}
	return game.NewOptions(c.Table.MinPlayers, c.Table.MaxPlayers, points, minBet, maxBet, extra)
}

// OpenStore connects the configured snapshot backend, behind an LRU cache when
// a cache size is set.
func (c Config) OpenStore(ctx context.Context) (store.Store, error) {
	var st store.Store
	switch c.Store.Backend {
	case RedisBackend:
		rs := store.NewRedisStore(c.Store.RedisAddr, c.Store.RedisPassword, c.Store.RedisDB, c.Store.RedisPrefix)
		if err := rs.Ping(ctx); err != nil {
			return nil, err
		}
		st = rs
	case PostgresBackend:
		ps, err := store.NewPostgresStore(ctx, c.Store.PostgresDSN)
		if err != nil {
			return nil, err
		}
		st = ps
	default:
		st = store.NewInMemoryStore()
	}

	if c.Store.CacheSize == 0 {
		return st, nil
	}
	return store.NewCachedStore(st, c.Store.CacheSize)
}
