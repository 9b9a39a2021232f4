package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Rule records the rule set name under the key "rule".
func Rule(name string) slog.Attr {
	return slog.String("rule", name)
}

// Value records the evaluated value under the key "value".
func Value(v any) slog.Attr {
	return slog.Any("value", v)
}

// Valid records an evaluation outcome under the key "valid".
func Valid(ok bool) slog.Attr {
	return slog.Bool("valid", ok)
}

// Store records the lookup backend under the key "store".
func Store(name string) slog.Attr {
	return slog.String("store", name)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
