package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/rulechain/pkg/httpserver"
	"github.com/dmitrymomot/rulechain/pkg/logger"
	"github.com/dmitrymomot/rulechain/pkg/mongo"
	"github.com/dmitrymomot/rulechain/pkg/pg"
	"github.com/dmitrymomot/rulechain/pkg/redis"
	"github.com/dmitrymomot/rulechain/pkg/ruleset"
	"github.com/dmitrymomot/rulechain/pkg/validator"
)

var errRedisNotConfigured = errors.New("redis is not configured: set REDIS_URL")

// stores holds the lookup backends opened for the configured connections.
type stores struct {
	cfg     Config
	lookups []ruleset.Option
	checks  map[string]httpserver.HealthCheck
	claim   func(ctx context.Context, target string, values ...any) error
	closers []func(context.Context)
}

// openStores connects every store with a connection URL.
func openStores(ctx context.Context, cfg Config, log *slog.Logger) (*stores, error) {
	s := &stores{cfg: cfg, checks: make(map[string]httpserver.HealthCheck)}

	if cfg.Redis.ConnectionURL != "" {
		client, err := redis.Connect(ctx, cfg.Redis, log)
		if err != nil {
			s.close(ctx)
			return nil, err
		}
		s.closers = append(s.closers, func(context.Context) { _ = client.Close() })
		s.checks["redis"] = redis.Healthcheck(client)

		setLookup := func(target string) (*redis.SetLookup, error) {
			return redis.NewSetLookup(client, cfg.Redis.SetPrefix+target)
		}
		s.lookups = append(s.lookups, ruleset.WithLookup("redis", func(target string) (validator.Lookup, error) {
			return setLookup(target)
		}))
		s.claim = func(ctx context.Context, target string, values ...any) error {
			l, err := setLookup(target)
			if err != nil {
				return err
			}
			return l.Claim(ctx, values...)
		}
		log.DebugContext(ctx, "lookup registered", logger.Store("redis"))
	}

	if cfg.Postgres.ConnectionString != "" {
		pool, err := pg.Connect(ctx, cfg.Postgres, log)
		if err != nil {
			s.close(ctx)
			return nil, err
		}
		s.closers = append(s.closers, func(context.Context) { pool.Close() })
		s.checks["postgres"] = pg.Healthcheck(pool)
		s.lookups = append(s.lookups, ruleset.WithLookup("postgres", func(target string) (validator.Lookup, error) {
			return pg.NewColumnLookup(pool, target)
		}))
		log.DebugContext(ctx, "lookup registered", logger.Store("postgres"))
	}

	if cfg.Mongo.ConnectionURL != "" {
		client, err := mongo.Connect(ctx, cfg.Mongo, log)
		if err != nil {
			s.close(ctx)
			return nil, err
		}
		s.closers = append(s.closers, func(ctx context.Context) { _ = client.Disconnect(ctx) })
		s.checks["mongo"] = mongo.Healthcheck(client)
		db := client.Database(cfg.Mongo.Database)
		s.lookups = append(s.lookups, ruleset.WithLookup("mongo", func(target string) (validator.Lookup, error) {
			return mongo.NewTargetLookup(db, target)
		}))
		log.DebugContext(ctx, "lookup registered", logger.Store("mongo"))
	}

	return s, nil
}

// loadRules reads the rule file with every opened store available to `unique`.
func (s *stores) loadRules(path string) (*ruleset.Set, error) {
	opts := append([]ruleset.Option{ruleset.WithLookupTimeout(s.cfg.LookupTimeout)}, s.lookups...)
	set, err := ruleset.LoadFile(path, opts...)
	if err != nil {
		return nil, fmt.Errorf("load rules from %s: %w", path, err)
	}
	return set, nil
}

func (s *stores) close(ctx context.Context) {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i](context.WithoutCancel(ctx))
	}
	s.closers = nil
}
