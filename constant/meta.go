// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Mpvlink is the canonical application identifier used for filesystem paths and CLI branding.
	Mpvlink = "mpvlink"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// DefaultResolver is the resolver binary name used when no explicit path is configured.
	// Resolution is deferred to the OS executable search path.
	DefaultResolver = "yt-dlp"

	// DefaultFormat is the conservative format selector handed to the resolver when
	// neither the user configuration nor the player's own config file supplies one.
	DefaultFormat = "bestvideo[height<=?1920][fps<=?30][vcodec^=avc]+bestaudio/best"
)

// Build metadata, injected at link time via -ldflags.
var (
	Revision = "unknown"
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
)
