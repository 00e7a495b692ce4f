package fakesmith

import (
	"encoding/json"
	"math"
)

// GenOptions is the per-field option bag passed to a generator. All getters
// substitute the given default for missing or invalid values; generators
// never fail because of bad options.
type GenOptions map[string]any

// Int returns the integer under key, or def. JSON numbers arrive as
// float64; fractional values fall back to def.
func (o GenOptions) Int(key string, def int) int {
	switch v := o[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		if v == math.Trunc(v) {
			return int(v)
		}
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
	}
	return def
}

// Float returns the number under key, or def.
func (o GenOptions) Float(key string, def float64) float64 {
	switch v := o[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f
		}
	}
	return def
}

// String returns the string under key, or def.
func (o GenOptions) String(key, def string) string {
	if v, ok := o[key].(string); ok {
		return v
	}
	return def
}

// Truthy reports whether the value under key is truthy in the loose sense
// callers of the original interface expect: true, a non-zero number, or a
// non-empty string other than "false".
func (o GenOptions) Truthy(key string) bool {
	switch v := o[key].(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case int:
		return v != 0
	case string:
		return v != "" && v != "false"
	}
	return false
}

// intRange reads min/max with defaults and swaps them when inverted, so a
// generator always receives a valid inclusive range.
func (o GenOptions) intRange(defMin, defMax int) (int, int) {
	lo := o.Int("min", defMin)
	hi := o.Int("max", defMax)
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi
}

// floatRange is intRange for float bounds.
func (o GenOptions) floatRange(defMin, defMax float64) (float64, float64) {
	lo := o.Float("min", defMin)
	hi := o.Float("max", defMax)
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi
}
