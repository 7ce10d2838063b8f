// Package player drives an mpv instance: it builds the launch argument vector,
// supervises the spawned process, and speaks the newline-delimited JSON
// control protocol over the player's IPC channel.
package player

import (
	"encoding/json"

	"github.com/samber/mo"
)

// Command is a single control instruction for the player. The wire form is
// one JSON document per line of the shape {"command": [verb, ...args]}.
// The set of variants is closed; the dispatcher needs exactly these three.
type Command interface {
	args() []any
}

// LoadReplace takes over the player's current playback with a new item.
type LoadReplace struct {
	URL   string
	Title string
}

// LoadAppend queues an item after the current playlist, optionally carrying a
// separate audio stream the player demuxes alongside the video.
type LoadAppend struct {
	URL      string
	Title    string
	AudioURL mo.Option[string]
}

// SetLastTitle names the most recently appended playlist entry. The loadfile
// title option covers display only; the playlist slot needs its own.
type SetLastTitle struct {
	Title string
}

func (c LoadReplace) args() []any {
	return []any{"loadfile", c.URL, "replace", map[string]any{"title": c.Title}}
}

func (c LoadAppend) args() []any {
	opts := map[string]any{"title": c.Title}
	if audio, ok := c.AudioURL.Get(); ok {
		opts["audio-file"] = audio
	}
	return []any{"loadfile", c.URL, "append", opts}
}

func (c SetLastTitle) args() []any {
	return []any{"set_property", "playlist/-1/title", c.Title}
}

// Marshal serializes a command to its newline-terminated wire form.
func Marshal(c Command) ([]byte, error) {
	payload, err := json.Marshal(struct {
		Command []any `json:"command"`
	}{Command: c.args()})
	if err != nil {
		return nil, err
	}
	return append(payload, '\n'), nil
}
