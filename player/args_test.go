package player

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mpvlink-cli/mpvlink/filesystem"
	"github.com/mpvlink-cli/mpvlink/protocol"
	"github.com/mpvlink-cli/mpvlink/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFormatSortOpt(t *testing.T) {
	Convey("formatSortOpt", t, func() {
		Convey("Quality hint reduces to its numeric substring", func() {
			opt, ok := formatSortOpt(mo.Some("720p"), mo.None[string]())
			So(ok, ShouldBeTrue)
			So(opt, ShouldEqual, "--ytdl-raw-options-append=format-sort=res:720")
		})

		Convey("Codec hint passes through", func() {
			opt, ok := formatSortOpt(mo.None[string](), mo.Some("vp9"))
			So(ok, ShouldBeTrue)
			So(opt, ShouldEqual, "--ytdl-raw-options-append=format-sort=+vcodec:vp9")
		})

		Convey("Both hints merge into one flag", func() {
			opt, ok := formatSortOpt(mo.Some("720p"), mo.Some("vp9"))
			So(ok, ShouldBeTrue)
			So(opt, ShouldEqual, "--ytdl-raw-options-append=format-sort=res:720,+vcodec:vp9")
		})

		Convey("No hints, no flag", func() {
			_, ok := formatSortOpt(mo.None[string](), mo.None[string]())
			So(ok, ShouldBeFalse)
		})
	})
}

func TestBuildArgs(t *testing.T) {
	Convey("BuildArgs", t, func() {
		Convey("Hints produce a single format-sort flag", func() {
			intent := protocol.Intent{
				URL:     "https://example.com",
				Quality: mo.Some("720p"),
				VCodec:  mo.Some("vp9"),
			}
			args := BuildArgs(intent, "")
			So(args, ShouldResemble, []string{"--ytdl-raw-options-append=format-sort=res:720,+vcodec:vp9"})
		})

		Convey("Absent optional fields are omitted entirely", func() {
			args := BuildArgs(protocol.Intent{URL: "https://example.com"}, "")
			So(args, ShouldBeEmpty)
		})

		Convey("Text options carry their prefixes", func() {
			intent := protocol.Intent{
				URL:     "https://example.com",
				Profile: mo.Some("low-latency"),
				Title:   mo.Some("Hello World!"),
				SubFile: mo.Some("http://example.com/en.ass"),
				StartAt: mo.Some("233"),
			}
			args := BuildArgs(intent, "")
			So(args, ShouldResemble, []string{
				"--profile=low-latency",
				"--title=Hello World!",
				"--sub-file=http://example.com/en.ass",
				"--start=233",
			})
		})

		Convey("The resolver path rides on the extraction hook", func() {
			args := BuildArgs(protocol.Intent{URL: "https://example.com"}, "/usr/bin/yt-dlp")
			So(args, ShouldResemble, []string{"--script-opts=ytdl_hook-ytdl_path=/usr/bin/yt-dlp"})
		})
	})
}

func TestCookiesOpt(t *testing.T) {
	Convey("cookiesOpt", t, func() {
		filesystem.SetMemMapFs()
		defer filesystem.SetOsFs()

		Convey("Existing file yields the raw option", func() {
			path := filepath.Join(where.Cookies(), "site.txt")
			lo.Must0(filesystem.API().WriteFile(path, []byte("# cookies"), os.ModePerm))

			opt, ok := cookiesOpt("site.txt")
			So(ok, ShouldBeTrue)
			So(opt, ShouldEqual, "--ytdl-raw-options-append=cookies="+path)
		})

		Convey("Missing file drops the option", func() {
			_, ok := cookiesOpt("nope.txt")
			So(ok, ShouldBeFalse)
		})

		Convey("BuildArgs omits an unusable cookies reference", func() {
			args := BuildArgs(protocol.Intent{
				URL:     "https://example.com",
				Cookies: mo.Some("nope.txt"),
			}, "")
			So(args, ShouldBeEmpty)
		})
	})
}
