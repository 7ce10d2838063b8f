package where

import (
	"testing"

	"github.com/mpvlink-cli/mpvlink/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Use in-memory filesystem for tests to avoid creating real directories
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs()", func() {
			path := Logs()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Cookies()", func() {
			path := Cookies()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Config() honors the environment override", func() {
			t.Setenv(EnvConfigPath, "/custom/mpvlink")
			So(Config(), ShouldEqual, "/custom/mpvlink")
		})
	})
}

func TestDefaultSocket(t *testing.T) {
	Convey("DefaultSocket", t, func() {
		So(DefaultSocket(), ShouldNotBeEmpty)
	})
}
