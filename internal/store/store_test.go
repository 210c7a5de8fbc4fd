package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wizzomafizzo/frontsettings/internal/constants"
	"github.com/wizzomafizzo/frontsettings/internal/settings"
	"github.com/wizzomafizzo/frontsettings/internal/testutil"
)

func newSettingsStore(t *testing.T) (*Store, func() string) {
	t.Helper()

	ctx, logs := testutil.NewTestContext(t)
	s := New(ctx)
	require.NoError(t, s.RegisterSettings())
	return s, logs
}

func TestRegisterDuplicate(t *testing.T) {
	t.Parallel()

	s := New(context.Background())
	noop := func(context.Context, settings.Payload) error { return nil }

	require.NoError(t, s.Register("a/b", noop))
	require.Error(t, s.Register("a/b", noop))
}

func TestDispatchUnknownActionLogs(t *testing.T) {
	t.Parallel()

	s, logs := newSettingsStore(t)
	s.Dispatch("missing/action", nil, settings.DispatchOptions{Root: true})

	assert.Contains(t, logs(), "no handler for dispatched action")
	assert.Empty(t, s.History())
}

func TestDispatchHandlerErrorLogs(t *testing.T) {
	t.Parallel()

	ctx, logs := testutil.NewTestContext(t)
	s := New(ctx)
	require.NoError(t, s.Register("broken/action", func(context.Context, settings.Payload) error {
		return errors.New("boom")
	}))

	s.Dispatch("broken/action", settings.Payload{}, settings.DispatchOptions{Root: true})

	assert.Contains(t, logs(), "action handler failed")
	assert.Equal(t, []string{"broken/action"}, s.History())
}

func TestSettingsBeforeRegistration(t *testing.T) {
	t.Parallel()

	_, ok := New(context.Background()).Settings()
	assert.False(t, ok)
}

func TestLoadIntoStore(t *testing.T) {
	t.Parallel()

	s, _ := newSettingsStore(t)
	settings.Load(s, `{"defi_setup_done":true}`)

	state, ok := s.Settings()
	require.True(t, ok)
	assert.Equal(t, SessionSettings{
		TimeframeSetting:   constants.TimeframeRemember,
		LastKnownTimeframe: constants.TimeframeAll,
		DefiSetupDone:      true,
		Restored:           true,
	}, state)
	assert.Equal(t, []string{constants.ActionRestoreSettings}, s.History())
}

func TestLoadInvalidBlobLeavesDefaults(t *testing.T) {
	t.Parallel()

	s, _ := newSettingsStore(t)
	settings.Load(s, `{"defi_setup_done":1}`)

	state, ok := s.Settings()
	require.True(t, ok)
	assert.Equal(t, DefaultSessionSettings(), state)
	assert.Empty(t, s.History())
}

func TestNamespacedDispatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		namespace string
		action    string
		wantState bool
		root      bool
	}{
		{name: "root ignores namespace", namespace: "session", action: constants.ActionRestoreSettings, root: true, wantState: true},
		{name: "local action prefixed", namespace: constants.NamespaceSettings, action: "restore", wantState: true},
		{name: "local action in wrong namespace", namespace: "session", action: "restore"},
		{name: "trailing slash namespace", namespace: constants.NamespaceSettings + "/", action: "restore", wantState: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, _ := newSettingsStore(t)
			s.Namespace(tt.namespace).Dispatch(tt.action, settings.Payload{
				constants.KeyTimeframeSetting: constants.TimeframeMonth,
			}, settings.DispatchOptions{Root: tt.root})

			state, _ := s.Settings()
			assert.Equal(t, tt.wantState, state.Restored)
			if tt.wantState {
				assert.Equal(t, constants.TimeframeMonth, state.TimeframeSetting)
			}
		})
	}
}

func TestLoadThroughNamespacedDispatcherTargetsRoot(t *testing.T) {
	t.Parallel()

	s, _ := newSettingsStore(t)
	settings.Load(s.Namespace("dashboard"), `{"last_known_timeframe":"1Y"}`)

	state, _ := s.Settings()
	assert.True(t, state.Restored)
	assert.Equal(t, constants.TimeframeYear, state.LastKnownTimeframe)
}

func TestRestoreSettingsRejectsWrongTypes(t *testing.T) {
	t.Parallel()

	s, logs := newSettingsStore(t)
	s.Dispatch(constants.ActionRestoreSettings, settings.Payload{
		constants.KeyDefiSetupDone: "yes",
	}, settings.DispatchOptions{Root: true})

	state, _ := s.Settings()
	assert.False(t, state.Restored)
	assert.Contains(t, logs(), "action handler failed")
}

func TestConcurrentDispatch(t *testing.T) {
	t.Parallel()

	s, _ := newSettingsStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			settings.Load(s, `{"defi_setup_done":true}`)
		}()
	}
	wg.Wait()

	assert.Len(t, s.History(), 20)
}
