// Package protocol parses mpv:// playback links into structured intents.
//
// A link has the shape mpv://play/<base64-url>/?param=value&... where the
// source URL (and the v_title and subfile parameters) are URL-safe base64.
// The mpv-debug:// variant carries the same payload but requests verbose
// diagnostics for the invocation.
package protocol

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	"github.com/samber/mo"
)

// Scheme identifies the link variant that produced an intent.
type Scheme int

const (
	SchemePlay Scheme = iota
	SchemeDebug
)

const (
	prefixPlay  = "mpv://"
	prefixDebug = "mpv-debug://"

	plugin = "play"
)

// Intent is the structured description of what to play and how. It is
// immutable once constructed; optional fields that were absent from the link
// are None rather than empty strings.
type Intent struct {
	Scheme Scheme

	// URL is the decoded source URL and the only required field.
	URL string

	// Cookies names a cookies file under the cookies directory.
	Cookies mo.Option[string]
	// Profile selects a player configuration profile.
	Profile mo.Option[string]
	// Quality is a quality hint such as "720p".
	Quality mo.Option[string]
	// VCodec is a video codec hint such as "vp9".
	VCodec mo.Option[string]
	// Title overrides the display title.
	Title mo.Option[string]
	// SubFile is a subtitle file URL loaded alongside the stream.
	SubFile mo.Option[string]
	// StartAt is the playback start offset in seconds.
	StartAt mo.Option[string]

	// Enqueue requests appending onto a running player instead of launching one.
	Enqueue bool
}

// IsHandlerLink reports whether the argument uses one of the handler schemes.
func IsHandlerLink(raw string) bool {
	return strings.HasPrefix(raw, prefixPlay) || strings.HasPrefix(raw, prefixDebug)
}

// Parse decodes a handler link into an Intent.
func Parse(raw string) (Intent, error) {
	var intent Intent

	rest, ok := strings.CutPrefix(raw, prefixPlay)
	if !ok {
		if rest, ok = strings.CutPrefix(raw, prefixDebug); !ok {
			return intent, fmt.Errorf("unsupported link scheme: %s", raw)
		}
		intent.Scheme = SchemeDebug
	}

	path, query, _ := strings.Cut(rest, "?")

	encoded, ok := strings.CutPrefix(path, plugin+"/")
	if !ok {
		return intent, fmt.Errorf("unsupported link plugin: %s", path)
	}
	encoded = strings.TrimSuffix(encoded, "/")
	if encoded == "" {
		return intent, fmt.Errorf("link carries no source URL")
	}

	decoded, err := decode(encoded)
	if err != nil {
		return intent, fmt.Errorf("decode source URL: %w", err)
	}
	intent.URL = decoded

	if query == "" {
		return intent, nil
	}

	params, err := url.ParseQuery(query)
	if err != nil {
		return intent, fmt.Errorf("parse link parameters: %w", err)
	}

	intent.Cookies = param(params, "cookies")
	intent.Profile = param(params, "profile")
	intent.Quality = param(params, "quality")
	intent.VCodec = param(params, "v_codec")
	intent.StartAt = param(params, "startat")
	intent.Enqueue = params.Get("enqueue") == "1"

	// Free-form text parameters ride base64-encoded to survive the URL layer.
	if intent.Title, err = encodedParam(params, "v_title"); err != nil {
		return intent, err
	}
	if intent.SubFile, err = encodedParam(params, "subfile"); err != nil {
		return intent, err
	}

	return intent, nil
}

func param(params url.Values, name string) mo.Option[string] {
	if v := params.Get(name); v != "" {
		return mo.Some(v)
	}
	return mo.None[string]()
}

func encodedParam(params url.Values, name string) (mo.Option[string], error) {
	v := params.Get(name)
	if v == "" {
		return mo.None[string](), nil
	}

	decoded, err := decode(v)
	if err != nil {
		return mo.None[string](), fmt.Errorf("decode %s parameter: %w", name, err)
	}
	return mo.Some(decoded), nil
}

// decode accepts URL-safe base64 with or without padding; senders disagree.
func decode(s string) (string, error) {
	if b, err := base64.URLEncoding.DecodeString(s); err == nil {
		return string(b), nil
	}

	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
