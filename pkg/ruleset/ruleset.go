package ruleset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/rulechain/pkg/async"
	"github.com/dmitrymomot/rulechain/pkg/validator"
)

// LookupFactory opens a lookup for target, e.g. a set key suffix,
// "table.column" or "collection.field" depending on the store.
type LookupFactory func(target string) (validator.Lookup, error)

type builder struct {
	lookups  map[string]LookupFactory
	timeout  time.Duration
	deferred bool
}

type Option func(*builder)

// WithLookup registers a store for `unique` steps under name.
func WithLookup(name string, factory LookupFactory) Option {
	return func(b *builder) {
		if factory != nil {
			b.lookups[name] = factory
		}
	}
}

// WithLookupTimeout bounds every store call made by `unique` steps.
func WithLookupTimeout(d time.Duration) Option {
	return func(b *builder) { b.timeout = d }
}

// WithDeferredLookups accepts `unique` steps naming unregistered stores.
// Such steps fail with ErrUnknownLookup when evaluated instead of at load time,
// which lets a rule file be inspected without connecting to its stores.
func WithDeferredLookups() Option {
	return func(b *builder) { b.deferred = true }
}

// Set holds one chain per rule name.
type Set struct {
	chains map[string]*validator.ChainValidator
	names  []string
}

// Result is the outcome of checking one value.
type Result struct {
	Rule  string
	Value any
	Valid bool
	// Message is the failure message when the value did not pass.
	Message string
	// Err is a fault: unknown rule, usage fault or lookup failure.
	Err error
}

type document struct {
	Rules map[string][]any `yaml:"rules" json:"rules"`
}

// New builds a Set from already decoded definitions.
func New(defs map[string][]any, opts ...Option) (*Set, error) {
	b := &builder{lookups: make(map[string]LookupFactory), timeout: 5 * time.Second}
	for _, opt := range opts {
		opt(b)
	}

	s := &Set{chains: make(map[string]*validator.ChainValidator, len(defs))}
	for name, steps := range defs {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("%w: empty rule name", ErrInvalidDoc)
		}
		members := make([]validator.Validator, 0, len(steps))
		for i, raw := range steps {
			st, err := parseStep(raw)
			if err != nil {
				return nil, fmt.Errorf("rule %q step %d: %w", name, i+1, err)
			}
			v, err := b.build(name, st)
			if err != nil {
				return nil, fmt.Errorf("rule %q step %d: %w", name, i+1, err)
			}
			members = append(members, v)
		}
		s.chains[name] = validator.Chain(members...)
		s.names = append(s.names, name)
	}
	slices.Sort(s.names)
	return s, nil
}

// Parse builds a Set from a YAML document.
func Parse(data []byte, opts ...Option) (*Set, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrInvalidDoc, err)
	}
	return New(doc.Rules, opts...)
}

// ParseJSON builds a Set from a JSON document.
func ParseJSON(data []byte, opts ...Option) (*Set, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrInvalidDoc, err)
	}
	return New(doc.Rules, opts...)
}

// LoadFile reads a document from path, picking the decoder by extension.
func LoadFile(path string, opts ...Option) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToRead, err)
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ParseJSON(data, opts...)
	}
	return Parse(data, opts...)
}

// Get returns the chain registered under name.
func (s *Set) Get(name string) (*validator.ChainValidator, bool) {
	c, ok := s.chains[name]
	return c, ok
}

// Names returns the rule names in sorted order.
func (s *Set) Names() []string {
	return slices.Clone(s.names)
}

// Check evaluates value against the named chain and waits for the outcome.
func (s *Set) Check(ctx context.Context, name string, value any) Result {
	res := Result{Rule: name, Value: value}
	chain, ok := s.chains[name]
	if !ok {
		res.Err = fmt.Errorf("%w: %q", ErrRuleNotDefined, name)
		return res
	}
	res.Valid, res.Err = validator.Await(ctx, chain, value)
	if verr, ok := validator.AsValidationError(res.Err); ok {
		res.Message, res.Err = verr.Message, nil
	}
	return res
}

// CheckAll evaluates every value against the named chain concurrently.
// Results keep the order of values.
func (s *Set) CheckAll(ctx context.Context, name string, values ...any) []Result {
	futures := make([]*async.Future[Result], len(values))
	for i, v := range values {
		futures[i] = async.Async(ctx, v, func(ctx context.Context, v any) (Result, error) {
			return s.Check(ctx, name, v), nil
		})
	}

	results := make([]Result, len(values))
	for i, out := range async.Settle(futures...) {
		results[i] = out.Value
		if out.Err != nil {
			results[i] = Result{Rule: name, Value: values[i], Err: out.Err}
		}
	}
	return results
}
