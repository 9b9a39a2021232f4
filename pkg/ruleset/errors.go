package ruleset

import "errors"

var (
	ErrUnknownRule    = errors.New("ruleset: unknown rule")
	ErrInvalidArgs    = errors.New("ruleset: invalid rule arguments")
	ErrUnknownLookup  = errors.New("ruleset: unknown lookup")
	ErrInvalidDoc     = errors.New("ruleset: invalid document")
	ErrFailedToRead   = errors.New("ruleset: failed to read file")
	ErrRuleNotDefined = errors.New("ruleset: rule is not defined")
)
