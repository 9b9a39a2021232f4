package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rulechain/pkg/ruleset"
)

func (c *cli) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List rule names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// unique steps are listed without connecting to their stores
			set, err := ruleset.LoadFile(c.rulesFile, ruleset.WithDeferredLookups())
			if err != nil {
				return fmt.Errorf("load rules from %s: %w", c.rulesFile, err)
			}
			for _, name := range set.Names() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
