package main

import (
	"time"

	"github.com/dmitrymomot/rulechain/pkg/httpserver"
	"github.com/dmitrymomot/rulechain/pkg/mongo"
	"github.com/dmitrymomot/rulechain/pkg/pg"
	"github.com/dmitrymomot/rulechain/pkg/redis"
)

// Config is read from the environment. Store sections without a connection
// URL are skipped, and `unique` steps naming them fail to load.
type Config struct {
	Env           string        `env:"APP_ENV" envDefault:"development"`
	LogLevel      string        `env:"LOG_LEVEL"`
	RulesFile     string        `env:"RULES_FILE" envDefault:"rules.yaml"`
	LookupTimeout time.Duration `env:"LOOKUP_TIMEOUT" envDefault:"5s"`

	HTTP     httpserver.Config
	Redis    redis.Config
	Postgres pg.Config
	Mongo    mongo.Config
}
