// Package logger builds *slog.Logger instances from functional options.
//
// New picks a text or JSON handler, applies static attributes and, when
// ContextExtractor callbacks are registered, wraps the handler so values
// stored in context.Context (a request id, for instance) are attached to
// every record logged with that context.
//
// WithEnvironment applies per-environment defaults: JSON at info level for
// production and staging, text at debug level otherwise.
//
// Helper constructors in attr.go (Error, Rule, Value, Valid, Store, ...) keep
// attribute keys consistent across the code base.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "rulechain"),
//	    logger.WithLevelName(cfg.LogLevel),
//	)
//	log.InfoContext(ctx, "rule evaluated", logger.Rule("username"), logger.Valid(ok))
package logger
