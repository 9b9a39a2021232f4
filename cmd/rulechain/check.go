package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rulechain/pkg/logger"
	"github.com/dmitrymomot/rulechain/pkg/ruleset"
)

func (c *cli) newCheckCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "check NAME VALUE...",
		Short: "Check values against a rule",
		Long: `Check every VALUE against the rule NAME concurrently.

Each VALUE is decoded as JSON when it parses (42, true, null, "", [1,2]),
otherwise it is taken as a plain string. Exits with status 1 when any value
fails or cannot be checked.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			results := set.CheckAll(ctx, args[0], decodeValues(args[1:])...)
			for _, res := range results {
				if res.Err != nil {
					c.log.DebugContext(ctx, "check fault", logger.Rule(res.Rule), logger.Value(res.Value), logger.Error(res.Err))
				}
			}
			if err := printResults(cmd.OutOrStdout(), results, asJSON); err != nil {
				return err
			}
			for _, res := range results {
				if !res.Valid {
					return errCheckFailed
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print results as JSON")
	return cmd
}

// decodeValues turns command line arguments into values.
func decodeValues(args []string) []any {
	values := make([]any, len(args))
	for i, arg := range args {
		var v any
		if err := json.Unmarshal([]byte(arg), &v); err != nil {
			v = arg
		}
		values[i] = v
	}
	return values
}

type jsonResult struct {
	Value any    `json:"value"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
	Fault bool   `json:"fault,omitempty"`
}

func printResults(w io.Writer, results []ruleset.Result, asJSON bool) error {
	if asJSON {
		out := make([]jsonResult, len(results))
		for i, res := range results {
			out[i] = jsonResult{Value: res.Value, Valid: res.Valid, Error: res.Message}
			if res.Err != nil {
				out[i].Error, out[i].Fault = res.Err.Error(), true
			}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for _, res := range results {
		var err error
		switch {
		case res.Err != nil:
			_, err = fmt.Fprintf(w, "error\t%v\t%v\n", res.Value, res.Err)
		case !res.Valid:
			_, err = fmt.Fprintf(w, "fail\t%v\t%s\n", res.Value, res.Message)
		default:
			_, err = fmt.Fprintf(w, "ok\t%v\n", res.Value)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
