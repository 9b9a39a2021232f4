// Package config loads typed configuration from environment variables.
//
// Load reads optional dotenv files with github.com/joho/godotenv and then
// fills a struct from its `env` tags with github.com/caarlos0/env/v11.
// Values already present in the process environment take precedence over the
// files, so deployments can override anything a checked-in .env provides.
//
// # Usage
//
//	type Config struct {
//	    Env       string `env:"APP_ENV" envDefault:"development"`
//	    RulesFile string `env:"RULES_FILE" envDefault:"rules.yaml"`
//	}
//
//	cfg, err := config.Load[Config](config.WithEnvFiles(".env", ".env.local"))
//	if err != nil {
//	    return err
//	}
//
// # Errors
//
// Parsing failures are joined with ErrParsingConfig and unreadable env files
// with ErrLoadingEnvFile, so callers can use errors.Is.
package config
