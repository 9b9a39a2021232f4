package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type options struct {
	files  []string
	prefix string
}

type Option func(*options)

// WithEnvFiles sets the dotenv files read before parsing. Missing files are
// skipped. Defaults to ".env".
func WithEnvFiles(paths ...string) Option {
	return func(o *options) { o.files = paths }
}

// WithPrefix prepends prefix to every env tag, e.g. "RULECHAIN_".
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// Load reads the dotenv files, then parses environment variables into T
// according to its `env` and `envDefault` field tags.
// Variables already present in the process environment win over the files.
//
// Example:
//
//	type Config struct {
//		Addr     string `env:"HTTP_ADDR" envDefault:":8080"`
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	cfg, err := config.Load[Config]()
func Load[T any](opts ...Option) (T, error) {
	o := &options{files: []string{".env"}}
	for _, opt := range opts {
		opt(o)
	}

	var cfg T
	for _, path := range o.files {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return cfg, errors.Join(ErrLoadingEnvFile, err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: o.prefix}); err != nil {
		return cfg, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustLoad works like Load but panics if loading fails.
func MustLoad[T any](opts ...Option) T {
	cfg, err := Load[T](opts...)
	if err != nil {
		panic("failed to load required configuration: " + err.Error())
	}
	return cfg
}
