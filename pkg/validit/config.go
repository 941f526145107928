package validit

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/validit/pkg/logger"
	"github.com/dmitrymomot/validit/pkg/message"
	"github.com/dmitrymomot/validit/pkg/predicate"
)

// Config holds the environment driven engine settings.
type Config struct {
	SkipEmptyRules bool          `env:"VALIDIT_SKIP_EMPTY_RULES" envDefault:"false"`
	DisableNetwork bool          `env:"VALIDIT_DISABLE_NETWORK" envDefault:"false"`
	DNSTimeout     time.Duration `env:"VALIDIT_DNS_TIMEOUT" envDefault:"3s"`
	PhoneRegion    string        `env:"VALIDIT_PHONE_REGION"`
	MessagesFile   string        `env:"VALIDIT_MESSAGES_FILE"`
	LogLevel       string        `env:"VALIDIT_LOG_LEVEL" envDefault:"info"`
	LogFormat      string        `env:"VALIDIT_LOG_FORMAT" envDefault:"json"`
}

var dotenvLoaded sync.Once

// LoadConfig reads Config from the environment. A .env file in the working
// directory is loaded once first, if present.
func LoadConfig() (Config, error) {
	dotenvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// NewFromConfig builds an engine from cfg. Options are applied last and win
// over the configured values.
func NewFromConfig(ctx context.Context, cfg Config, opts ...Option) (*Engine, error) {
	builtinOpts := []predicate.BuiltinOption{
		predicate.WithDNSTimeout(cfg.DNSTimeout),
		predicate.WithPhoneRegion(cfg.PhoneRegion),
	}
	if cfg.DisableNetwork {
		builtinOpts = append(builtinOpts, predicate.WithoutNetwork())
	}

	catalog := message.Default()
	if cfg.MessagesFile != "" {
		if err := catalog.LoadFile(ctx, cfg.MessagesFile); err != nil {
			return nil, fmt.Errorf("load messages: %w", err)
		}
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Join(ErrParsingConfig, err)
	}
	format := logger.Format(cfg.LogFormat)
	if format != logger.FormatJSON && format != logger.FormatText {
		return nil, errors.Join(ErrParsingConfig, fmt.Errorf("unknown log format %q", cfg.LogFormat))
	}

	base := []Option{
		WithRegistry(predicate.Builtin(builtinOpts...)),
		WithCatalog(catalog),
		WithLogger(logger.New(
			logger.WithLevel(level),
			logger.WithFormat(format),
			logger.WithOutput(os.Stderr),
		)),
	}
	if cfg.SkipEmptyRules {
		base = append(base, WithSkipEmptyRules())
	}

	return New(append(base, opts...)...), nil
}
