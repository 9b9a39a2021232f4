// Command rulechain checks values against named validation rules.
//
//	rulechain check -f rules.yaml username neo '""' 42
//	rulechain list -f rules.yaml
//	rulechain serve -f rules.yaml
//	rulechain claim nickname neo trinity
//
// Configuration comes from the environment and optional .env files, see Config.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		if !errors.Is(err, errCheckFailed) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}
