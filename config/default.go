// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"strings"

	"github.com/mpvlink-cli/mpvlink/constant"
	"github.com/mpvlink-cli/mpvlink/key"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Mpvlink + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	// register validates and adds a new configuration field to the global registry.
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.PlayerPath, "", "Path to the player binary.\nWhen empty, \"mpv\" (\"mpv.com\" on Windows) is resolved via the executable search path")
	register(key.PlayerSocket, "", "Control-socket address of the player.\nA Unix socket path on POSIX, a named pipe on Windows.\nWhen empty, the platform default is used")
	register(key.ResolverPath, "", "Path to the resolver binary.\nWhen empty, \""+constant.DefaultResolver+"\" is resolved via the executable search path")
	register(key.ResolverFormat, "", "Format selector passed to the resolver.\nWhen empty, the player's own config file is consulted before falling back to a conservative default")
	register(key.NetworkProxy, "", "HTTP(S) proxy URL injected into the spawned player's environment")
	register(key.ConfirmEnabled, true, "Ask how many playlist entries to fetch when a playlist is detected")
	register(key.ConfirmTimeout, 10, "Seconds to wait for the fetch-count answer before fetching everything")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
}
