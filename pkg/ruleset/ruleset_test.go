package ruleset_test

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp/syntax"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulechain/pkg/ruleset"
	"github.com/dmitrymomot/rulechain/pkg/validator"
)

const rulesYAML = `
rules:
  username:
    - required
    - length: [3, 8]
    - regexp: '^\w+$'
      message: letters and digits only
  role:
    - any: [admin, member]
  age:
    - range: [18, 130]
  tags:
    - every
  id:
    - uuid
  nickname:
    - unique: memory
  contact:
    - email
    - unique: {store: memory, target: emails}
`

// memoryStore returns a lookup factory recording the targets it was opened for.
func memoryStore(taken map[string][]any, opened *[]string) ruleset.LookupFactory {
	return func(target string) (validator.Lookup, error) {
		*opened = append(*opened, target)
		return validator.LookupFunc(func(_ context.Context, value any) (bool, error) {
			for _, v := range taken[target] {
				if v == value {
					return true, nil
				}
			}
			return false, nil
		}), nil
	}
}

func newTestSet(t *testing.T) (*ruleset.Set, []string) {
	t.Helper()
	var opened []string
	taken := map[string][]any{
		"nickname": {"neo"},
		"emails":   {"neo@matrix.io"},
	}
	set, err := ruleset.Parse([]byte(rulesYAML), ruleset.WithLookup("memory", memoryStore(taken, &opened)))
	require.NoError(t, err)
	return set, opened
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("builds one chain per rule", func(t *testing.T) {
		set, opened := newTestSet(t)
		assert.Equal(t, []string{"age", "contact", "id", "nickname", "role", "tags", "username"}, set.Names())

		chain, ok := set.Get("username")
		require.True(t, ok)
		assert.Len(t, chain.Rules(), 3)

		_, ok = set.Get("missing")
		assert.False(t, ok)

		assert.ElementsMatch(t, []string{"nickname", "emails"}, opened)
	})

	t.Run("rejects unknown rule kind", func(t *testing.T) {
		_, err := ruleset.Parse([]byte("rules:\n  x:\n    - shiny\n"))
		assert.ErrorIs(t, err, ruleset.ErrUnknownRule)
	})

	t.Run("rejects unregistered lookup", func(t *testing.T) {
		_, err := ruleset.Parse([]byte("rules:\n  x:\n    - unique: redis\n"))
		assert.ErrorIs(t, err, ruleset.ErrUnknownLookup)
	})

	t.Run("reports lookup factory errors", func(t *testing.T) {
		badTarget := errors.New("bad target")
		failing := ruleset.WithLookup("pg", func(string) (validator.Lookup, error) {
			return nil, badTarget
		})
		_, err := ruleset.Parse([]byte("rules:\n  x:\n    - unique: pg\n"), failing)
		assert.ErrorIs(t, err, ruleset.ErrInvalidArgs)
		assert.ErrorIs(t, err, badTarget)
	})

	t.Run("keeps the regexp compile error", func(t *testing.T) {
		_, err := ruleset.Parse([]byte("rules:\n  x:\n    - regexp: '('\n"))
		assert.ErrorIs(t, err, ruleset.ErrInvalidArgs)
		var syntaxErr *syntax.Error
		assert.ErrorAs(t, err, &syntaxErr)
	})

	t.Run("rejects malformed arguments", func(t *testing.T) {
		docs := []string{
			"rules:\n  x:\n    - min_length: abc\n",
			"rules:\n  x:\n    - min_length: 2.5\n",
			"rules:\n  x:\n    - length: [1]\n",
			"rules:\n  x:\n    - range: [1, b]\n",
			"rules:\n  x:\n    - regexp: '('\n",
			"rules:\n  x:\n    - any: admin\n",
			"rules:\n  x:\n    - required: yes\n",
			"rules:\n  x:\n    - {min: 1, max: 2}\n",
			"rules:\n  x:\n    - message: lonely\n",
			"rules:\n  x:\n    - 42\n",
			"rules:\n  x:\n    - unique: {target: t}\n",
		}
		for _, doc := range docs {
			_, err := ruleset.Parse([]byte(doc))
			assert.ErrorIs(t, err, ruleset.ErrInvalidArgs, doc)
		}
	})

	t.Run("rejects invalid documents", func(t *testing.T) {
		_, err := ruleset.Parse([]byte("rules: ["))
		assert.ErrorIs(t, err, ruleset.ErrInvalidDoc)

		_, err = ruleset.ParseJSON([]byte(`{"rules":`))
		assert.ErrorIs(t, err, ruleset.ErrInvalidDoc)
		var syntaxErr *json.SyntaxError
		assert.ErrorAs(t, err, &syntaxErr)
	})

	t.Run("allows empty rules", func(t *testing.T) {
		set, err := ruleset.Parse([]byte("rules:\n  anything: []\n"))
		require.NoError(t, err)
		res := set.Check(t.Context(), "anything", nil)
		assert.True(t, res.Valid)
	})
}

func TestParseJSON(t *testing.T) {
	t.Parallel()

	set, err := ruleset.ParseJSON([]byte(`{"rules":{"qty":[{"min":1},{"max_length":3}],"level":[{"any":[1,2,3]}]}}`))
	require.NoError(t, err)

	res := set.Check(t.Context(), "qty", 0)
	assert.False(t, res.Valid)
	assert.Equal(t, "should be at least 1", res.Message)

	res = set.Check(t.Context(), "level", 2)
	assert.True(t, res.Valid)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "rules.yaml")
	jsonPath := filepath.Join(dir, "rules.json")
	require.NoError(t, os.WriteFile(yamlPath, []byte("rules:\n  name:\n    - required\n"), 0o600))
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"rules":{"name":["required"]}}`), 0o600))

	for _, path := range []string{yamlPath, jsonPath} {
		set, err := ruleset.LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"name"}, set.Names())
	}

	_, err := ruleset.LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, ruleset.ErrFailedToRead)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestSet_Check(t *testing.T) {
	t.Parallel()

	set, _ := newTestSet(t)
	ctx := t.Context()

	tests := []struct {
		name    string
		rule    string
		value   any
		valid   bool
		message string
	}{
		{"passes valid username", "username", "neo_1", true, ""},
		{"reports required first", "username", "", false, "is required"},
		{"reports length", "username", "ab", false, "should be at least 3 character long"},
		{"uses custom message", "username", "a-b-c", false, "letters and digits only"},
		{"accepts listed role", "role", "admin", true, ""},
		{"rejects unlisted role", "role", "root", false, "should be one of: admin,member"},
		{"passes age in range", "age", 30, true, ""},
		{"rejects age above range", "age", 200, false, "should be at most 130"},
		{"accepts uuid", "id", "6ba7b810-9dad-11d1-80b4-00c04fd430c8", true, ""},
		{"rejects free text as uuid", "id", "nope", false, "should be a valid uuid"},
		{"accepts free nickname", "nickname", "trinity", true, ""},
		{"rejects taken nickname", "nickname", "neo", false, "is already taken"},
		{"checks unique target", "contact", "neo@matrix.io", false, "is already taken"},
		{"passes free contact", "contact", "trinity@matrix.io", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := set.Check(ctx, tt.rule, tt.value)
			require.NoError(t, res.Err)
			assert.Equal(t, tt.valid, res.Valid)
			assert.Equal(t, tt.message, res.Message)
			assert.Equal(t, tt.rule, res.Rule)
		})
	}

	t.Run("reports undefined rule", func(t *testing.T) {
		res := set.Check(ctx, "missing", "x")
		assert.False(t, res.Valid)
		assert.ErrorIs(t, res.Err, ruleset.ErrRuleNotDefined)
	})

	t.Run("reports usage fault", func(t *testing.T) {
		res := set.Check(ctx, "tags", "not a list")
		assert.False(t, res.Valid)
		assert.True(t, validator.IsUsageError(res.Err))
		assert.Empty(t, res.Message)
	})
}

func TestSet_CheckAll(t *testing.T) {
	t.Parallel()

	set, _ := newTestSet(t)
	results := set.CheckAll(t.Context(), "nickname", "trinity", "neo", "")
	require.Len(t, results, 3)

	assert.True(t, results[0].Valid)
	assert.Equal(t, "trinity", results[0].Value)
	assert.False(t, results[1].Valid)
	assert.Equal(t, "is already taken", results[1].Message)
	assert.True(t, results[2].Valid)
}

func TestSet_CheckAll_CanceledContext(t *testing.T) {
	t.Parallel()

	set, _ := newTestSet(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, res := range set.CheckAll(ctx, "role", "admin", "member") {
		assert.False(t, res.Valid)
		assert.ErrorIs(t, res.Err, context.Canceled)
	}
}

func TestWithDeferredLookups(t *testing.T) {
	t.Parallel()

	set, err := ruleset.Parse([]byte("rules:\n  nickname:\n    - unique: redis\n"), ruleset.WithDeferredLookups())
	require.NoError(t, err)
	assert.Equal(t, []string{"nickname"}, set.Names())

	res := set.Check(t.Context(), "nickname", "neo")
	assert.False(t, res.Valid)
	assert.ErrorIs(t, res.Err, ruleset.ErrUnknownLookup)
	assert.ErrorIs(t, res.Err, validator.ErrLookupFailed)
}
