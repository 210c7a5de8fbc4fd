package settings

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wizzomafizzo/frontsettings/internal/constants"
)

type dispatchCall struct {
	payload Payload
	action  string
	opts    DispatchOptions
}

type recordingDispatcher struct {
	calls []dispatchCall
}

func (r *recordingDispatcher) Dispatch(action string, payload Payload, opts DispatchOptions) {
	r.calls = append(r.calls, dispatchCall{action: action, payload: payload, opts: opts})
}

func TestLoadDoesNotDispatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{name: "unrecognized keys only", raw: `{"random":1}`},
		{name: "not json", raw: `not json`},
		{name: "wrong type for defi setup done", raw: `{"defi_setup_done":1}`},
		{name: "empty string", raw: ``},
		{name: "empty object", raw: `{}`},
		{name: "null", raw: `null`},
		{name: "array", raw: `[{"defi_setup_done":true}]`},
		{name: "json string", raw: `"defi_setup_done"`},
		{name: "trailing garbage", raw: `{"defi_setup_done":true} x`},
		{name: "string bool", raw: `{"defi_setup_done":"true"}`},
		{name: "null value", raw: `{"defi_setup_done":null}`},
		{name: "unknown timeframe", raw: `{"timeframe_setting":"5Y"}`},
		{name: "remember is not a timeframe", raw: `{"last_known_timeframe":"REMEMBER"}`},
		{name: "timeframe as number", raw: `{"last_known_timeframe":1}`},
		{name: "one invalid among valid", raw: `{"defi_setup_done":true,"timeframe_setting":false}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			recorder := &recordingDispatcher{}
			Load(recorder, tt.raw)

			assert.Empty(t, recorder.calls)
		})
	}
}

func TestLoadDispatchesMergedDefaults(t *testing.T) {
	t.Parallel()

	recorder := &recordingDispatcher{}
	Load(recorder, `{"defi_setup_done":true}`)

	require.Len(t, recorder.calls, 1)
	call := recorder.calls[0]
	assert.Equal(t, "settings/restore", call.action)
	assert.Equal(t, DispatchOptions{Root: true}, call.opts)

	want := Payload{
		constants.KeyTimeframeSetting:   "REMEMBER",
		constants.KeyDefiSetupDone:      true,
		constants.KeyLastKnownTimeframe: "ALL",
	}
	if diff := cmp.Diff(want, call.payload); diff != "" {
		t.Errorf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadPresentValuesOverrideDefaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		want Payload
		name string
		raw  string
	}{
		{
			name: "timeframe setting only",
			raw:  `{"timeframe_setting":"1M"}`,
			want: Payload{
				constants.KeyTimeframeSetting:   "1M",
				constants.KeyLastKnownTimeframe: "ALL",
			},
		},
		{
			name: "last known timeframe only",
			raw:  `{"last_known_timeframe":"2W"}`,
			want: Payload{
				constants.KeyTimeframeSetting:   "REMEMBER",
				constants.KeyLastKnownTimeframe: "2W",
			},
		},
		{
			name: "all keys with extras dropped",
			raw:  `{"timeframe_setting":"1W","defi_setup_done":false,"last_known_timeframe":"3M","theme":"dark"}`,
			want: Payload{
				constants.KeyTimeframeSetting:   "1W",
				constants.KeyDefiSetupDone:      false,
				constants.KeyLastKnownTimeframe: "3M",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			recorder := &recordingDispatcher{}
			Load(recorder, tt.raw)

			require.Len(t, recorder.calls, 1)
			if diff := cmp.Diff(tt.want, recorder.calls[0].payload); diff != "" {
				t.Errorf("payload mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadNilDispatcher(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		Load(nil, `{"defi_setup_done":true}`)
	})
}

func TestLoadWithDispatcherFunc(t *testing.T) {
	t.Parallel()

	count := 0
	Load(DispatcherFunc(func(action string, _ Payload, opts DispatchOptions) {
		count++
		assert.Equal(t, constants.ActionRestoreSettings, action)
		assert.True(t, opts.Root)
	}), `{"timeframe_setting":"REMEMBER"}`)

	assert.Equal(t, 1, count)
}

func TestRestoreErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		want error
		name string
		raw  string
	}{
		{name: "syntax", raw: `{`, want: ErrSyntax},
		{name: "top level number", raw: `42`, want: ErrShape},
		{name: "wrong type", raw: `{"defi_setup_done":1}`, want: ErrShape},
		{name: "no recognized keys", raw: `{"random":1}`, want: ErrNoRecognizedKeys},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			payload, err := Restore(tt.raw)
			require.ErrorIs(t, err, tt.want)
			assert.Nil(t, payload)
		})
	}
}

func TestRestoreShapeErrorNamesKey(t *testing.T) {
	t.Parallel()

	_, err := Restore(`{"defi_setup_done":1}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"defi_setup_done"`)
	assert.Contains(t, err.Error(), "number")
}

func TestDefaultsReturnsFreshCopy(t *testing.T) {
	t.Parallel()

	first := Defaults()
	first[constants.KeyTimeframeSetting] = constants.TimeframeWeek

	assert.Equal(t, constants.TimeframeRemember, Defaults()[constants.KeyTimeframeSetting])
}
