// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Network - these keys tune the HTTP client used to query the live API.
const (
	NetworkTimeout     = "network.timeout"
	NetworkUserAgent   = "network.user_agent"
	NetworkFingerprint = "network.fingerprint"
)

// History Tracking - these keys configure the recently resolved rooms list.
const (
	HistoryRememberRooms = "history.remember_rooms"
	HistorySuggestRooms  = "history.suggest_rooms"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Media Playback - used by the --open flag.
const (
	Player = "player.default"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the terminal behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
	CliLanguage     = "cli.language"
	CliPauseOnExit  = "cli.pause_on_exit"
)
