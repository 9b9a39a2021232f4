// Package validator provides small, composable field rules and a chain
// evaluator that runs several rules against one value in order.
//
// Every rule satisfies the Validator interface: Validate reports through a
// callback so store-backed rules can complete on another goroutine, while
// ValidateSync, Err and Message cover the common synchronous case.
//
// # Architecture
//
// Each source file groups a family of rules (`string_rules.go`,
// `numeric_rules.go`, `pattern_rules.go`, etc.). Constructors capture their
// configuration in closures and return a *Rule; the only state a Rule keeps
// between calls is the last validation failure, exposed via Err.
//
// Core building blocks:
//   - Validator        – the contract shared by rules and chains
//   - Rule             – a single predicate with a failure message
//   - ChainValidator   – ordered composition with first-failure short-circuit
//   - ValidatorError   – the message payload of a failed validation
//   - UsageError       – a fault raised for input a rule cannot evaluate
//
// # Usage
//
//	username := validator.Chain(
//	    validator.Required(),
//	    validator.Length(3, 20),
//	    validator.MustRegexp(`^\w+$`),
//	)
//
//	ok, err := username.ValidateSync(input)
//	if err != nil {
//	    // usage fault or store failure, not a validation result
//	}
//	if !ok {
//	    fmt.Println(username.Err()) // first failing rule's message
//	}
//
// # Chains
//
// A chain evaluates its members in insertion order and stops at the first
// failure, whose *ValidatorError is reported verbatim. Members after it are
// never evaluated. An empty chain always passes. Length and Range are
// two-member chains (MinLength then MaxLength, Min then Max), so with
// min > max the lower-bound failure is the one reported.
//
// # Error Handling
//
// A validation failure is a value: Validate reports (false, *ValidatorError)
// and ValidateSync returns (false, nil) while Err holds the failure. Faults
// are errors: a UsageError (errors.Is(err, ErrUsage)) for input of the wrong
// shape, an error wrapping ErrLookupFailed for store failures, or a context
// error. Chains propagate faults immediately and never record them as
// failures.
//
// # Asynchronous rules
//
// Unique queries a Lookup on its own goroutine. ValidateSync and Await block
// until the first report, so synchronous use of such rules returns the real
// result rather than a default. Go runs an evaluation as an async.Future.
package validator
