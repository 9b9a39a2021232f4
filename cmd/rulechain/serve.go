package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rulechain/internal/api"
	"github.com/dmitrymomot/rulechain/pkg/httpserver"
	"github.com/dmitrymomot/rulechain/pkg/logger"
)

func (c *cli) newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve rule checks over HTTP",
		Long: `Serve the rule file over HTTP until SIGINT or SIGTERM.

  GET  /health              dependency health
  GET  /rules               rule names
  POST /rules/{name}/check  {"value": ...} -> {"rule", "valid", "error"}`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			st, err := openStores(ctx, c.cfg, c.log)
			if err != nil {
				return err
			}
			defer st.close(ctx)

			set, err := st.loadRules(c.rulesFile)
			if err != nil {
				return err
			}
			c.log.InfoContext(ctx, "rules loaded", logger.Component("serve"), "file", c.rulesFile, "count", len(set.Names()))

			opts := []httpserver.Option{httpserver.WithLogger(c.log)}
			if addr != "" {
				opts = append(opts, httpserver.WithAddr(addr))
			}
			srv := httpserver.NewFromConfig(c.cfg.HTTP, opts...)
			return srv.Run(ctx, api.NewRouter(set, c.log, st.checks))
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default $HTTP_ADDR or :8080)")
	return cmd
}
