package store

import (
	"context"
	"fmt"

	"github.com/wizzomafizzo/frontsettings/internal/constants"
	"github.com/wizzomafizzo/frontsettings/internal/settings"
)

// SessionSettings is the settings module state.
type SessionSettings struct {
	TimeframeSetting   string `json:"timeframe_setting" yaml:"timeframe_setting"`
	LastKnownTimeframe string `json:"last_known_timeframe" yaml:"last_known_timeframe"`
	DefiSetupDone      bool   `json:"defi_setup_done" yaml:"defi_setup_done"`
	Restored           bool   `json:"-" yaml:"restored"`
}

// DefaultSessionSettings is the state before anything is restored.
func DefaultSessionSettings() SessionSettings {
	return SessionSettings{
		TimeframeSetting:   constants.TimeframeRemember,
		LastKnownTimeframe: constants.TimeframeAll,
	}
}

// RegisterSettings installs the settings module and its restore action.
func (s *Store) RegisterSettings() error {
	s.mu.Lock()
	state := DefaultSessionSettings()
	s.state = &state
	s.mu.Unlock()

	return s.Register(constants.ActionRestoreSettings, s.restoreSettings)
}

// Settings returns a snapshot of the settings module state. ok is false when
// the module is not registered.
func (s *Store) Settings() (state SessionSettings, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return SessionSettings{}, false
	}
	return *s.state, true
}

// restoreSettings overlays the payload on the current state. The payload was
// validated by the loader; the type assertions guard against other callers.
func (s *Store) restoreSettings(_ context.Context, payload settings.Payload) error {
	next := *s.state

	for key, value := range payload {
		switch key {
		case constants.KeyTimeframeSetting:
			v, ok := value.(string)
			if !ok {
				return fmt.Errorf("%s: want string, got %T", key, value)
			}
			next.TimeframeSetting = v
		case constants.KeyLastKnownTimeframe:
			v, ok := value.(string)
			if !ok {
				return fmt.Errorf("%s: want string, got %T", key, value)
			}
			next.LastKnownTimeframe = v
		case constants.KeyDefiSetupDone:
			v, ok := value.(bool)
			if !ok {
				return fmt.Errorf("%s: want bool, got %T", key, value)
			}
			next.DefiSetupDone = v
		}
	}

	next.Restored = true
	*s.state = next
	return nil
}
