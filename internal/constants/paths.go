// Package constants contains the setting keys, action names and file names used by frontsettings.
package constants

const (
	// AppName is the application name used for XDG directory paths.
	AppName = "frontsettings"

	// LogFilename is the default log file name.
	LogFilename = "frontsettings.log"

	// DatabaseFilename is the SQLite database holding persisted blobs.
	DatabaseFilename = "frontsettings.db"

	// BlobFilename is the default file the settings blob is persisted to.
	BlobFilename = "settings.json"

	// ConfigFilename is the default config file name.
	ConfigFilename = "frontsettings.yml"

	// StateKeySettings is the state table key the settings blob is stored under.
	StateKeySettings = "frontend:settings"
)
