package config

import (
	"strings"

	"github.com/mpvlink-cli/mpvlink/constant"
	"github.com/mpvlink-cli/mpvlink/filesystem"
	"github.com/mpvlink-cli/mpvlink/log"
	"github.com/mpvlink-cli/mpvlink/where"
)

// formatOption is the player config key whose value doubles as the resolver's format selector.
const formatOption = "ytdl-format"

// PlayerConfigFormat reads the format selector from the player's own config
// file (mpv.conf). A missing file, unreadable file, or absent option all fall
// back to the conservative default; this lookup never fails.
func PlayerConfigFormat() string {
	path, err := where.PlayerConfig()
	if err != nil {
		log.Debugf("player config dir unavailable: %v", err)
		return constant.DefaultFormat
	}

	content, err := filesystem.API().ReadFile(path)
	if err != nil {
		log.Debugf("player config not readable at %s, using default format", path)
		return constant.DefaultFormat
	}

	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name, value, found := strings.Cut(line, "=")
		if !found || strings.TrimSpace(name) != formatOption {
			continue
		}

		format := strings.TrimSpace(value)
		log.Debugf("found %s in %s: %s", formatOption, path, format)
		return format
	}

	log.Debugf("%s not found in %s, using default format", formatOption, path)
	return constant.DefaultFormat
}
