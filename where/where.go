// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/mpvlink-cli/mpvlink/constant"
	"github.com/mpvlink-cli/mpvlink/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "MPVLINK_CONFIG_PATH"

// ensureDir guarantees the existence of a directory at the specified path, creating it if necessary.
func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the absolute path to the primary application configuration directory.
// It prioritizes the XDG_CONFIG_HOME specification on Linux and equivalent user profile paths on Darwin and Windows.
// Direct override: The path resolution can be explicitly specified via the MPVLINK_CONFIG_PATH environment variable.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Mpvlink))
}

// Logs resolves the absolute path to the directory used for application diagnostic logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Cookies resolves the absolute path to the directory holding named cookies files
// referenced by playback links.
func Cookies() string {
	return ensureDir(filepath.Join(Config(), "cookies"))
}

// Temp resolves a unique, volatile filesystem path for transient application artifacts.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.Mpvlink))
}

// PlayerConfig resolves the location of the player's own configuration file (mpv.conf).
// The file is optional; callers treat a lookup failure as absence.
func PlayerConfig() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "mpv", "mpv.conf"), nil
}

// DefaultSocket returns the platform default control-socket address: a Unix
// domain socket path on POSIX systems, a named pipe on Windows.
func DefaultSocket() string {
	if runtime.GOOS == constant.Windows {
		return `\\.\pipe\mpvsocket`
	}
	return "/tmp/mpvsocket"
}
