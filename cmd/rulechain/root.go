package main

import (
	"errors"
	"log/slog"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rulechain/pkg/config"
	"github.com/dmitrymomot/rulechain/pkg/logger"
)

// errCheckFailed signals a value that did not pass; main exits with 1 without
// printing it again.
var errCheckFailed = errors.New("check failed")

// cli carries state shared by the subcommands once the root pre-run has loaded it.
type cli struct {
	envFiles  []string
	rulesFile string
	cfg       Config
	log       *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "rulechain",
		Short:         "Check values against named validation rules",
		Long:          `Load named rule chains from a YAML or JSON file and check values against them from the command line or over HTTP.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.init(cmd)
		},
	}

	root.PersistentFlags().StringSliceVar(&c.envFiles, "env-file", []string{".env"}, "Dotenv files read before the environment")
	root.PersistentFlags().StringVarP(&c.rulesFile, "file", "f", "", "Rule file (default $RULES_FILE or rules.yaml)")

	root.AddCommand(
		c.newCheckCmd(),
		c.newListCmd(),
		c.newServeCmd(),
		c.newClaimCmd(),
	)
	return root
}

func (c *cli) init(cmd *cobra.Command) error {
	cfg, err := config.Load[Config](config.WithEnvFiles(c.envFiles...))
	if err != nil {
		return err
	}
	c.cfg = cfg
	if c.rulesFile == "" {
		c.rulesFile = cfg.RulesFile
	}

	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "rulechain"),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextValue("request_id", middleware.RequestIDKey),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(cfg.LogLevel))
	}
	c.log = logger.New(opts...)
	return nil
}
