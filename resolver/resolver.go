// Package resolver invokes the external media-resolution tool (yt-dlp) to turn
// source URLs into direct, player-consumable streams.
//
// The gateway is deliberately fail-soft: a broken resolver degrades playback
// to the raw source URL, it never aborts the invocation.
package resolver

import (
	"encoding/json"
	"os/exec"
	"strings"

	"github.com/mpvlink-cli/mpvlink/log"
	"github.com/samber/mo"
)

// Entry is one playlist item in playback order. Ordering is significant.
type Entry struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Media is a fully resolved item. When both video and audio URLs are present
// they must be loaded together so the player demuxes them as one logical item.
type Media struct {
	Title    string
	VideoURL string
	AudioURL mo.Option[string]
}

// Titles the resolver substitutes for entries that cannot be played.
var unavailableTitles = map[string]struct{}{
	"[Deleted video]": {},
	"[Private video]": {},
}

// runFunc executes the resolver binary and returns its stdout. Injectable for tests.
type runFunc func(name string, args ...string) ([]byte, error)

// Gateway is a stateless request/response boundary to the resolver binary.
type Gateway struct {
	path string
	run  runFunc
}

// New creates a gateway around the given resolver binary path or command name.
func New(path string) *Gateway {
	return &Gateway{path: path, run: runCommand}
}

func runCommand(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

// Enumerate flat-expands a playlist URL into its ordered entries without
// downloading anything. Any failure (non-zero exit, malformed output) yields
// an empty result; callers treat that as "not a playlist".
func (g *Gateway) Enumerate(sourceURL string) []Entry {
	out, err := g.run(g.path, "--flat-playlist", "--dump-json", sourceURL)
	if err != nil {
		log.Warnf("playlist enumeration of %s failed: %v", sourceURL, err)
		return nil
	}

	var entries []Entry
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var e Entry
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			log.Debugf("skipping malformed enumeration line: %v", err)
			continue
		}
		if e.Title == "" || e.URL == "" {
			continue
		}
		if _, gone := unavailableTitles[e.Title]; gone {
			log.Infof("skipping unavailable entry: %s", e.Title)
			continue
		}

		entries = append(entries, e)
	}

	return entries
}

// Resolve extracts the direct stream URLs and title for one item under the
// given format selector. On any failure the raw source URL passes through
// with the caller-supplied default title.
func (g *Gateway) Resolve(sourceURL, format, defaultTitle string) Media {
	fallback := Media{
		Title:    defaultTitle,
		VideoURL: sourceURL,
		AudioURL: mo.None[string](),
	}

	out, err := g.run(g.path, "-f", format, "--get-url", "--check-formats", "--get-title", sourceURL)
	if err != nil {
		log.Warnf("resolving %s failed: %v, passing the raw URL through", sourceURL, err)
		return fallback
	}

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) < 2 {
		log.Warnf("resolver returned insufficient output for %s, passing the raw URL through", sourceURL)
		return fallback
	}

	media := Media{
		Title:    strings.TrimSpace(lines[0]),
		VideoURL: strings.TrimSpace(lines[1]),
		AudioURL: mo.None[string](),
	}
	if len(lines) >= 3 {
		media.AudioURL = mo.Some(strings.TrimSpace(lines[2]))
	}

	log.Debugf("resolved %s: %s", sourceURL, media.Title)
	return media
}
