// Package dispatch is the playback orchestrator: it classifies a source URL,
// decides between enqueuing onto a running player and launching a fresh one,
// and drives the resolved control commands in order.
package dispatch

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mpvlink-cli/mpvlink/config"
	"github.com/mpvlink-cli/mpvlink/confirm"
	"github.com/mpvlink-cli/mpvlink/key"
	"github.com/mpvlink-cli/mpvlink/log"
	"github.com/mpvlink-cli/mpvlink/player"
	"github.com/mpvlink-cli/mpvlink/protocol"
	"github.com/mpvlink-cli/mpvlink/resolver"
	"github.com/mpvlink-cli/mpvlink/util"
	"github.com/spf13/viper"
)

// Resolver is the boundary to the external media-resolution tool. Both calls
// are fail-soft: they degrade to fallback data instead of returning errors.
type Resolver interface {
	Enumerate(sourceURL string) []resolver.Entry
	Resolve(sourceURL, format, defaultTitle string) resolver.Media
}

// conn is the write side of a player control connection.
type conn interface {
	Send(player.Command) error
	Close() error
}

// handle supervises a spawned player process.
type handle interface {
	Wait() error
	Kill() error
}

// Inter-write gaps. The player applies queue mutations asynchronously; an
// existing instance is busy playing and gets a far wider berth than a freshly
// spawned idle one.
const (
	existingWriteGap = 500 * time.Millisecond
	launchWriteGap   = 50 * time.Millisecond
)

// Dispatcher runs one playback intent to completion. Exactly one session
// (attached socket or owned process) exists per invocation; there is no
// cross-invocation state.
type Dispatcher struct {
	cfg      config.Runtime
	resolver Resolver
	prompt   confirm.Prompter
	out      io.Writer

	probe   func(addr string, writeGap time.Duration) (conn, error)
	connect func(addr string, writeGap time.Duration) (conn, error)
	spawn   func(path string, args []string, proxy string) (handle, error)
}

// New wires a dispatcher against the real resolver, prompt and player seams.
func New(cfg config.Runtime) *Dispatcher {
	var prompt confirm.Prompter = confirm.Always{}
	if viper.GetBool(key.ConfirmEnabled) {
		prompt = confirm.Survey{
			Timeout: time.Duration(viper.GetInt(key.ConfirmTimeout)) * time.Second,
		}
	}

	return &Dispatcher{
		cfg:      cfg,
		resolver: resolver.New(cfg.Resolver),
		prompt:   prompt,
		out:      os.Stdout,
		probe: func(addr string, writeGap time.Duration) (conn, error) {
			return player.Probe(addr, writeGap)
		},
		connect: func(addr string, writeGap time.Duration) (conn, error) {
			return player.Connect(addr, writeGap)
		},
		spawn: func(path string, args []string, proxy string) (handle, error) {
			return player.Spawn(path, args, proxy)
		},
	}
}

// Run executes the full intent lifecycle and returns the invocation outcome.
func (d *Dispatcher) Run(intent protocol.Intent) error {
	entries := d.resolver.Enumerate(intent.URL)
	isPlaylist := len(entries) > 1

	if isPlaylist {
		entries, isPlaylist = d.confirmCount(entries)
	}

	if intent.Enqueue {
		if c, err := d.probe(d.cfg.Socket, existingWriteGap); err == nil {
			log.Infof("enqueuing on the existing player at %s", d.cfg.Socket)
			return d.enqueueExisting(c, intent, entries, isPlaylist)
		}
		log.Infof("no reachable player at %s, launching a new instance", d.cfg.Socket)
	}

	if isPlaylist {
		return d.launchPlaylist(intent, entries)
	}
	return d.launchSingle(intent)
}

// confirmCount surfaces the entry total and applies the user's decision.
// A truncated list is never re-expanded.
func (d *Dispatcher) confirmCount(entries []resolver.Entry) ([]resolver.Entry, bool) {
	res := d.prompt.AskCount(len(entries))
	switch res.Outcome {
	case confirm.Count:
		// A non-positive count from a prompter keeps everything, same as an
		// explicit zero reply.
		if res.Count >= 1 && res.Count < len(entries) {
			entries = entries[:res.Count]
		}
		log.Infof("fetching the first %s", util.Quantify(len(entries), "playlist entry", "playlist entries"))
		return entries, true
	case confirm.All, confirm.Timeout:
		log.Infof("fetching all %s", util.Quantify(len(entries), "playlist entry", "playlist entries"))
		return entries, true
	default:
		log.Info("playlist demoted to its first entry")
		return entries[:1], false
	}
}

// enqueueExisting appends every item onto the running player. The first item
// of a playlist still appends here; an existing player is never told to
// replace its current playback. Each item resolves just-in-time.
func (d *Dispatcher) enqueueExisting(c conn, intent protocol.Intent, entries []resolver.Entry, isPlaylist bool) error {
	defer util.Ignore(c.Close)

	items := entries
	if !isPlaylist {
		items = []resolver.Entry{{
			Title: intent.Title.OrElse(intent.URL),
			URL:   intent.URL,
		}}
	}

	loaded := 0
	for i, item := range items {
		media := d.resolver.Resolve(item.URL, d.cfg.Format, item.Title)

		// Enumeration already produced the canonical playlist title; a
		// single item takes whatever the resolver extracted.
		title := media.Title
		if isPlaylist {
			title = item.Title
		}

		log.Infof("enqueuing item [%d]: %s", i+1, title)
		if err := c.Send(player.LoadAppend{URL: media.VideoURL, Title: title, AudioURL: media.AudioURL}); err != nil {
			return d.burstFailure(err, loaded)
		}
		loaded++
		if err := c.Send(player.SetLastTitle{Title: title}); err != nil {
			return d.burstFailure(err, loaded)
		}

		fmt.Fprintf(d.out, "Enqueued: %s\n", title)
	}

	return nil
}

// burstFailure applies the partial-burst policy: a write failure stops the
// burst, but playback proceeds if the player already accepted anything.
func (d *Dispatcher) burstFailure(err error, loaded int) error {
	if loaded > 0 {
		log.Warnf("enqueue burst aborted after %s: %v", util.Quantify(loaded, "item", "items"), err)
		return nil
	}
	return err
}

// launchSingle starts a new player with the raw intent URL as its positional
// argument; the player's own extraction hook handles resolution.
func (d *Dispatcher) launchSingle(intent protocol.Intent) error {
	args := player.BuildArgs(intent, d.cfg.Resolver)
	if intent.Enqueue {
		// Expose the control channel so later invocations can enqueue onto us.
		args = append(args, player.OptSocket+d.cfg.Socket)
	}
	args = append(args, "--", intent.URL)

	h, err := d.spawn(d.cfg.Player, args, d.cfg.Proxy)
	if err != nil {
		return err
	}

	fmt.Fprintf(d.out, "Playing: %s\n", intent.URL)
	return h.Wait()
}

// launchPlaylist starts an idle player, connects to its control channel with
// the retry policy, replaces playback with the first entry, then appends the
// rest just-in-time. The connection stays open until the player itself exits;
// closing it mid-queue has no defined recovery.
func (d *Dispatcher) launchPlaylist(intent protocol.Intent, entries []resolver.Entry) error {
	args := player.BuildArgs(intent, d.cfg.Resolver)
	args = append(args, player.OptIdle)
	if intent.Enqueue {
		args = append(args, player.OptSocket+d.cfg.Socket)
	}

	h, err := d.spawn(d.cfg.Player, args, d.cfg.Proxy)
	if err != nil {
		return err
	}

	c, err := d.connect(d.cfg.Socket, launchWriteGap)
	if err != nil {
		// An idle player nobody can reach is useless.
		_ = h.Kill()
		return err
	}
	defer util.Ignore(c.Close)

	d.fillQueue(c, entries)

	// The invocation always proceeds to wait once the player is up; its
	// exit status is the outcome regardless of how the burst went.
	return h.Wait()
}

// fillQueue issues the command burst for a freshly launched playlist. The
// first entry replaces the (empty) playback without pre-extraction; the
// remaining entries resolve lazily. The first write failure ends the burst.
func (d *Dispatcher) fillQueue(c conn, entries []resolver.Entry) {
	first := entries[0]
	fmt.Fprintf(d.out, "Playing: %s\n", first.URL)
	if err := c.Send(player.LoadReplace{URL: first.URL, Title: first.Title}); err != nil {
		log.Warnf("control write failed for the opening item: %v", err)
		return
	}

	for _, entry := range entries[1:] {
		media := d.resolver.Resolve(entry.URL, d.cfg.Format, entry.Title)

		if err := c.Send(player.LoadAppend{URL: media.VideoURL, Title: media.Title, AudioURL: media.AudioURL}); err != nil {
			log.Warnf("failed to enqueue %q: %v", entry.Title, err)
			return
		}
		if err := c.Send(player.SetLastTitle{Title: media.Title}); err != nil {
			log.Warnf("failed to set playlist title for %q: %v", entry.Title, err)
			return
		}

		fmt.Fprintf(d.out, "Enqueued: %s\n", media.Title)
	}
}
