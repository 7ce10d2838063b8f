package player

import (
	"path/filepath"
	"strings"

	"github.com/mpvlink-cli/mpvlink/filesystem"
	"github.com/mpvlink-cli/mpvlink/log"
	"github.com/mpvlink-cli/mpvlink/protocol"
	"github.com/mpvlink-cli/mpvlink/util"
	"github.com/mpvlink-cli/mpvlink/where"
	"github.com/samber/mo"
)

// Flag prefixes understood by the player. Cookies and format-sort ride on the
// ytdl hook's raw option passthrough rather than first-class player flags.
const (
	optCookies  = "--ytdl-raw-options-append=cookies="
	optProfile  = "--profile="
	optFormats  = "--ytdl-raw-options-append=format-sort="
	optTitle    = "--title="
	optSubFile  = "--sub-file="
	optStartAt  = "--start="
	optYtdlPath = "--script-opts=ytdl_hook-ytdl_path="

	// OptIdle starts the player without media, waiting for control commands.
	OptIdle = "--idle=yes"
	// OptSocket exposes the player's control channel at the given address.
	OptSocket = "--input-ipc-server="
)

// BuildArgs deterministically maps an intent onto the player's flag vector.
// Absent optional fields are omitted entirely rather than passed empty. The
// resolver path is injected as a script option so the player's own extraction
// hook agrees with the dispatcher's resolver choice.
func BuildArgs(intent protocol.Intent, resolverPath string) []string {
	var args []string

	if name, ok := intent.Cookies.Get(); ok {
		if opt, ok := cookiesOpt(name); ok {
			args = append(args, opt)
		}
	}
	if v, ok := intent.Profile.Get(); ok {
		args = append(args, optProfile+v)
	}
	if opt, ok := formatSortOpt(intent.Quality, intent.VCodec); ok {
		args = append(args, opt)
	}
	if v, ok := intent.Title.Get(); ok {
		args = append(args, optTitle+v)
	}
	if v, ok := intent.SubFile.Get(); ok {
		args = append(args, optSubFile+v)
	}
	if v, ok := intent.StartAt.Get(); ok {
		args = append(args, optStartAt+v)
	}
	if resolverPath != "" {
		args = append(args, optYtdlPath+resolverPath)
	}

	return args
}

// cookiesOpt resolves a cookies file name against the cookies directory. A
// missing file drops the option instead of handing the player a dead path.
func cookiesOpt(name string) (string, bool) {
	path := filepath.Join(where.Cookies(), name)
	exists, err := filesystem.API().Exists(path)
	if err != nil || !exists {
		log.Warnf("cookies file not found: %s", path)
		return "", false
	}
	return optCookies + path, true
}

// formatSortOpt merges the quality and codec hints into a single format-sort
// option. The quality hint is reduced to its numeric substring.
func formatSortOpt(quality, codec mo.Option[string]) (string, bool) {
	var parts []string
	if q, ok := quality.Get(); ok {
		parts = append(parts, "res:"+util.Digits(q))
	}
	if c, ok := codec.Get(); ok {
		parts = append(parts, "+vcodec:"+c)
	}

	if len(parts) == 0 {
		return "", false
	}
	return optFormats + strings.Join(parts, ","), true
}
