package resolver

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

// fakeRun returns a gateway whose resolver binary is replaced by canned output.
func fakeRun(out string, err error) *Gateway {
	g := New("yt-dlp")
	g.run = func(name string, args ...string) ([]byte, error) {
		return []byte(out), err
	}
	return g
}

func TestEnumerate(t *testing.T) {
	Convey("Enumerate", t, func() {
		Convey("Parses entries in order", func() {
			g := fakeRun(`{"title":"First","url":"https://x/1"}
{"title":"Second","url":"https://x/2"}
{"title":"Third","url":"https://x/3"}
`, nil)
			entries := g.Enumerate("https://x/list")
			So(entries, ShouldHaveLength, 3)
			So(entries[0], ShouldResemble, Entry{Title: "First", URL: "https://x/1"})
			So(entries[1].Title, ShouldEqual, "Second")
			So(entries[2].URL, ShouldEqual, "https://x/3")
		})

		Convey("Drops unavailable entries", func() {
			g := fakeRun(`{"title":"[Deleted video]","url":"https://x/1"}
{"title":"Kept","url":"https://x/2"}
{"title":"[Private video]","url":"https://x/3"}
`, nil)
			entries := g.Enumerate("https://x/list")
			So(entries, ShouldHaveLength, 1)
			So(entries[0].Title, ShouldEqual, "Kept")
		})

		Convey("Skips malformed lines", func() {
			g := fakeRun(`not json
{"title":"Kept","url":"https://x/2"}
{"title":"No URL"}
`, nil)
			entries := g.Enumerate("https://x/list")
			So(entries, ShouldHaveLength, 1)
		})

		Convey("Resolver failure yields an empty sequence", func() {
			g := fakeRun("", errors.New("exit status 1"))
			So(g.Enumerate("https://x/list"), ShouldBeEmpty)
		})

		Convey("Empty output yields an empty sequence", func() {
			g := fakeRun("", nil)
			So(g.Enumerate("https://x/list"), ShouldBeEmpty)
		})
	})
}

func TestResolve(t *testing.T) {
	Convey("Resolve", t, func() {
		Convey("Extracts title, video and audio URLs", func() {
			g := fakeRun("Some Title\nhttps://cdn/video.m3u8\nhttps://cdn/audio.m4a\n", nil)
			media := g.Resolve("https://x/1", "best", "fallback")
			So(media.Title, ShouldEqual, "Some Title")
			So(media.VideoURL, ShouldEqual, "https://cdn/video.m3u8")
			So(media.AudioURL.MustGet(), ShouldEqual, "https://cdn/audio.m4a")
		})

		Convey("Audio URL is optional", func() {
			g := fakeRun("Some Title\nhttps://cdn/muxed.mp4\n", nil)
			media := g.Resolve("https://x/1", "best", "fallback")
			So(media.VideoURL, ShouldEqual, "https://cdn/muxed.mp4")
			So(media.AudioURL.IsAbsent(), ShouldBeTrue)
		})

		Convey("Resolver failure passes the raw URL through", func() {
			g := fakeRun("", errors.New("exit status 1"))
			media := g.Resolve("https://x/1", "best", "fallback")
			So(media, ShouldResemble, Media{Title: "fallback", VideoURL: "https://x/1"})
		})

		Convey("Insufficient output passes the raw URL through", func() {
			g := fakeRun("Only A Title\n", nil)
			media := g.Resolve("https://x/1", "best", "fallback")
			So(media.Title, ShouldEqual, "fallback")
			So(media.VideoURL, ShouldEqual, "https://x/1")
			So(media.AudioURL.IsAbsent(), ShouldBeTrue)
		})
	})
}
