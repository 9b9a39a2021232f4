package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rulechain/pkg/logger"
)

func (c *cli) newClaimCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "claim TARGET VALUE...",
		Short: "Mark values as taken in a redis unique target",
		Long: `Add values to the redis set backing "unique: redis" steps for TARGET,
so later checks report them as already taken. TARGET is the rule name unless
the step sets its own target.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := openStores(ctx, c.cfg, c.log)
			if err != nil {
				return err
			}
			defer st.close(ctx)

			if st.claim == nil {
				return errRedisNotConfigured
			}
			values := decodeValues(args[1:])
			if err := st.claim(ctx, args[0], values...); err != nil {
				return err
			}
			c.log.InfoContext(ctx, "values claimed", logger.Store("redis"), "target", args[0], "count", len(values))
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "claimed %d value(s) in %s\n", len(values), args[0])
			return err
		},
	}
}
