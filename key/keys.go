// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Player Process - these keys locate the external player binary and its control channel.
const (
	PlayerPath   = "player.path"
	PlayerSocket = "player.socket"
)

// Media Resolution - these keys govern the external resolver invocation.
const (
	ResolverPath   = "resolver.path"
	ResolverFormat = "resolver.format"
)

// Network - these keys configure outbound connectivity for the spawned player.
const (
	NetworkProxy = "network.proxy"
)

// Playlist Confirmation - these keys shape the fetch-count question for playlists.
const (
	ConfirmEnabled = "confirm.enabled"
	ConfirmTimeout = "confirm.timeout"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern terminal output behavior.
const (
	CliColored = "cli.colored"
)
