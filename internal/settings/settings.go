// Package settings restores persisted frontend settings into the application store.
//
// A blob that fails to decode, has the wrong shape, or carries no recognized
// keys is dropped without error; restoring settings must never block startup.
package settings

import (
	"maps"

	"github.com/wizzomafizzo/frontsettings/internal/constants"
)

// Payload is the settings mapping handed to the store.
type Payload map[string]any

// DispatchOptions controls how the store routes an action.
type DispatchOptions struct {
	// Root targets the root store instead of the caller's namespace.
	Root bool
}

// Dispatcher delivers actions to a state store.
type Dispatcher interface {
	Dispatch(action string, payload Payload, opts DispatchOptions)
}

// DispatcherFunc adapts a plain function to the Dispatcher interface.
type DispatcherFunc func(action string, payload Payload, opts DispatchOptions)

// Dispatch calls f.
func (f DispatcherFunc) Dispatch(action string, payload Payload, opts DispatchOptions) {
	f(action, payload, opts)
}

// Defaults returns a fresh copy of the values restored when a blob omits the
// timeframe keys.
func Defaults() Payload {
	return Payload{
		constants.KeyTimeframeSetting:   constants.TimeframeRemember,
		constants.KeyLastKnownTimeframe: constants.TimeframeAll,
	}
}

// Clone returns a shallow copy of p.
func (p Payload) Clone() Payload {
	if p == nil {
		return nil
	}
	return maps.Clone(p)
}
