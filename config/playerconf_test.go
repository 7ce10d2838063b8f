package config

import (
	"os"
	"testing"

	"github.com/mpvlink-cli/mpvlink/constant"
	"github.com/mpvlink-cli/mpvlink/filesystem"
	"github.com/mpvlink-cli/mpvlink/where"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func writePlayerConfig(content string) {
	path := lo.Must(where.PlayerConfig())
	lo.Must0(filesystem.API().WriteFile(path, []byte(content), os.ModePerm))
}

func TestPlayerConfigFormat(t *testing.T) {
	Convey("PlayerConfigFormat", t, func() {
		filesystem.SetMemMapFs()

		Convey("Missing file falls back to the default", func() {
			So(PlayerConfigFormat(), ShouldEqual, constant.DefaultFormat)
		})

		Convey("Reads the format option", func() {
			writePlayerConfig("fullscreen=yes\nytdl-format=bestvideo+bestaudio\n")
			So(PlayerConfigFormat(), ShouldEqual, "bestvideo+bestaudio")
		})

		Convey("Tolerates whitespace around the option", func() {
			writePlayerConfig("  ytdl-format = best[height<=720]  \n")
			So(PlayerConfigFormat(), ShouldEqual, "best[height<=720]")
		})

		Convey("Ignores commented-out options", func() {
			writePlayerConfig("# ytdl-format=best\nvolume=50\n")
			So(PlayerConfigFormat(), ShouldEqual, constant.DefaultFormat)
		})

		Convey("Ignores unrelated options", func() {
			writePlayerConfig("ytdl-raw-options=cookies=c.txt\n")
			So(PlayerConfigFormat(), ShouldEqual, constant.DefaultFormat)
		})
	})
}
