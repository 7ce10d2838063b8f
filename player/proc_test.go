package player

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBuildEnv(t *testing.T) {
	Convey("buildEnv", t, func() {
		base := []string{
			"PATH=/usr/bin",
			"LD_LIBRARY_PATH=/opt/app/lib",
			"LD_PRELOAD=/opt/app/hook.so",
			"HOME=/home/u",
		}

		Convey("Scrubs dynamic-loader overrides", func() {
			env := buildEnv(base, "")
			So(env, ShouldResemble, []string{"PATH=/usr/bin", "HOME=/home/u"})
		})

		Convey("Injects the proxy under every spelling", func() {
			env := buildEnv(base, "http://proxy:8080")
			So(env, ShouldContain, "http_proxy=http://proxy:8080")
			So(env, ShouldContain, "HTTP_PROXY=http://proxy:8080")
			So(env, ShouldContain, "https_proxy=http://proxy:8080")
			So(env, ShouldContain, "HTTPS_PROXY=http://proxy:8080")
		})

		Convey("No proxy, no injection", func() {
			env := buildEnv(base, "")
			for _, kv := range env {
				So(kv, ShouldNotContainSubstring, "proxy")
				So(kv, ShouldNotContainSubstring, "PROXY")
			}
		})
	})
}
