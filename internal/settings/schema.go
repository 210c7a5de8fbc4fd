package settings

import (
	"slices"

	"github.com/wizzomafizzo/frontsettings/internal/constants"
)

// Predicate reports whether a decoded JSON value has the shape a key expects.
type Predicate func(value any) bool

// field pairs a recognized key with its predicate.
type field struct {
	valid Predicate
	key   string
}

// schema is the closed set of recognized keys. Order is the order keys are
// checked in, which only affects which key an error names.
var schema = []field{
	{key: constants.KeyTimeframeSetting, valid: IsTimeframeSetting},
	{key: constants.KeyDefiSetupDone, valid: IsBool},
	{key: constants.KeyLastKnownTimeframe, valid: IsTimeframe},
}

// IsBool accepts JSON booleans only. Numbers and strings are rejected.
func IsBool(value any) bool {
	_, ok := value.(bool)
	return ok
}

// IsTimeframe accepts one of the concrete timeframes.
func IsTimeframe(value any) bool {
	s, ok := value.(string)
	return ok && slices.Contains(constants.Timeframes, s)
}

// IsTimeframeSetting accepts a concrete timeframe or the "remember last" mode.
func IsTimeframeSetting(value any) bool {
	s, ok := value.(string)
	return ok && (s == constants.TimeframeRemember || slices.Contains(constants.Timeframes, s))
}

// Recognized reports whether key belongs to the closed set of setting keys.
func Recognized(key string) bool {
	return lookup(key) != nil
}

// Keys returns the recognized keys in schema order.
func Keys() []string {
	keys := make([]string, 0, len(schema))
	for _, f := range schema {
		keys = append(keys, f.key)
	}
	return keys
}

func lookup(key string) Predicate {
	for _, f := range schema {
		if f.key == key {
			return f.valid
		}
	}
	return nil
}
