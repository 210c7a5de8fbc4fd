package constants

// Recognized keys of the persisted frontend settings blob. These must match the
// consuming store exactly.
const (
	// KeyTimeframeSetting holds the dashboard timeframe mode.
	KeyTimeframeSetting = "timeframe_setting"

	// KeyDefiSetupDone flags whether the DeFi setup wizard was completed.
	KeyDefiSetupDone = "defi_setup_done"

	// KeyLastKnownTimeframe holds the timeframe in use when the mode is "remember last".
	KeyLastKnownTimeframe = "last_known_timeframe"
)

// Timeframe values.
const (
	TimeframeAll        = "ALL"
	TimeframeYear       = "1Y"
	TimeframeThreeMonth = "3M"
	TimeframeMonth      = "1M"
	TimeframeTwoWeeks   = "2W"
	TimeframeWeek       = "1W"

	// TimeframeRemember is only valid for KeyTimeframeSetting.
	TimeframeRemember = "REMEMBER"
)

// Timeframes lists every concrete timeframe, longest first.
var Timeframes = []string{
	TimeframeAll,
	TimeframeYear,
	TimeframeThreeMonth,
	TimeframeMonth,
	TimeframeTwoWeeks,
	TimeframeWeek,
}

const (
	// ActionRestoreSettings is the store action dispatched with restored settings.
	ActionRestoreSettings = "settings/restore"

	// NamespaceSettings is the store module owning the session settings.
	NamespaceSettings = "settings"
)
