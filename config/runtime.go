package config

import (
	"runtime"

	"github.com/mpvlink-cli/mpvlink/constant"
	"github.com/mpvlink-cli/mpvlink/key"
	"github.com/mpvlink-cli/mpvlink/where"
	"github.com/spf13/viper"
)

// Runtime is the resolved, read-only configuration snapshot for a single
// invocation. Absent values have already been replaced by their fallbacks,
// including the lazily sourced resolver format selector.
type Runtime struct {
	// Player is the player binary path or bare command name.
	Player string
	// Resolver is the resolver binary path or bare command name.
	Resolver string
	// Proxy is the HTTP(S) proxy URL, empty when none is configured.
	Proxy string
	// Socket is the player's control-socket address.
	Socket string
	// Format is the effective resolver format selector.
	Format string
}

// Resolve snapshots the global configuration into a Runtime. The format
// selector lookup against the player's own config file happens here, once.
func Resolve() Runtime {
	r := Runtime{
		Player:   viper.GetString(key.PlayerPath),
		Resolver: viper.GetString(key.ResolverPath),
		Proxy:    viper.GetString(key.NetworkProxy),
		Socket:   viper.GetString(key.PlayerSocket),
		Format:   viper.GetString(key.ResolverFormat),
	}

	if r.Player == "" {
		r.Player = defaultPlayer()
	}
	if r.Resolver == "" {
		r.Resolver = constant.DefaultResolver
	}
	if r.Socket == "" {
		r.Socket = where.DefaultSocket()
	}
	if r.Format == "" {
		r.Format = PlayerConfigFormat()
	}

	return r
}

// defaultPlayer returns the bare player command name. Windows installs expose
// the console wrapper as mpv.com; the .exe detaches and breaks exit-status mapping.
func defaultPlayer() string {
	if runtime.GOOS == constant.Windows {
		return "mpv.com"
	}
	return "mpv"
}
