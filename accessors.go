package krona

import (
	"time"

	"github.com/spf13/cast"
)

// Typed accessors combine Get with best-effort type coercion. They
// return the zero value when the path is absent or the value cannot be
// coerced; use Get directly when that distinction matters.

// GetString resolves path and coerces the result to a string.
func GetString(tree Tree, path string) string {
	return cast.ToString(Get(tree, path))
}

// GetInt resolves path and coerces the result to an int.
func GetInt(tree Tree, path string) int {
	return cast.ToInt(Get(tree, path))
}

// GetBool resolves path and coerces the result to a bool.
func GetBool(tree Tree, path string) bool {
	return cast.ToBool(Get(tree, path))
}

// GetFloat64 resolves path and coerces the result to a float64.
func GetFloat64(tree Tree, path string) float64 {
	return cast.ToFloat64(Get(tree, path))
}

// GetDuration resolves path and coerces the result to a time.Duration.
// String values use time.ParseDuration syntax ("1h30m").
func GetDuration(tree Tree, path string) time.Duration {
	return cast.ToDuration(Get(tree, path))
}

// GetStringSlice resolves path and coerces the result to a []string.
func GetStringSlice(tree Tree, path string) []string {
	return cast.ToStringSlice(Get(tree, path))
}
