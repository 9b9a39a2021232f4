// Package redis connects to Redis and backs uniqueness rules with Redis sets.
//
// The package wraps the go-redis client and adds:
//
//   - `Connect`, which pings the server with retries and optional logging.
//   - `SetLookup`, which reports a value as taken when it is a member of a set.
//     It satisfies validator.Lookup and can be handed to validator.Unique.
//   - `Healthcheck`, for readiness probes.
//
// Configuration is described by the `Config` struct whose fields can be
// populated from environment variables via github.com/caarlos0/env.
//
// # Usage
//
//	client, err := redis.Connect(ctx, cfg, logger)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	nicknames, err := redis.NewSetLookup(client, cfg.SetPrefix+"nicknames")
//	if err != nil {
//	    return err
//	}
//	rule := validator.Unique(nicknames)
//
// # Errors
//
// Sentinel errors (ErrRedisNotReady, ErrLookupFailed, ...) wrap the underlying
// go-redis errors using errors.Join, so both can be matched with errors.Is.
package redis
