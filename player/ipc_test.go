package player

import (
	"bufio"
	"errors"
	"net"
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestConnSend(t *testing.T) {
	Convey("Conn Send", t, func() {
		Convey("Writes one JSON document per line", func() {
			client, server := net.Pipe()
			defer server.Close()

			lines := make(chan string, 2)
			go func() {
				scanner := bufio.NewScanner(server)
				for scanner.Scan() {
					lines <- scanner.Text()
				}
			}()

			c := &Conn{conn: client}
			So(c.Send(LoadReplace{URL: "https://cdn/v", Title: "First"}), ShouldBeNil)
			So(c.Send(SetLastTitle{Title: "First"}), ShouldBeNil)
			So(c.Close(), ShouldBeNil)

			So(<-lines, ShouldEqual, `{"command":["loadfile","https://cdn/v","replace",{"title":"First"}]}`)
			So(<-lines, ShouldEqual, `{"command":["set_property","playlist/-1/title","First"]}`)
		})

		Convey("A closed peer surfaces a write failure", func() {
			client, server := net.Pipe()
			So(server.Close(), ShouldBeNil)

			c := &Conn{conn: client}
			err := c.Send(LoadAppend{URL: "https://cdn/v", Title: "Next"})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "control socket write")
		})

		Convey("Consecutive writes are spaced by the configured gap", func() {
			client, server := net.Pipe()
			defer server.Close()

			go func() {
				scanner := bufio.NewScanner(server)
				for scanner.Scan() {
				}
			}()

			gap := 120 * time.Millisecond
			c := &Conn{conn: client, writeGap: gap}

			start := time.Now()
			So(c.Send(LoadReplace{URL: "https://cdn/v", Title: "First"}), ShouldBeNil)
			So(c.Send(SetLastTitle{Title: "First"}), ShouldBeNil)
			So(time.Since(start), ShouldBeGreaterThanOrEqualTo, gap)

			So(c.Close(), ShouldBeNil)
		})
	})
}

func TestConnect(t *testing.T) {
	Convey("Connect", t, func() {
		addr := filepath.Join(t.TempDir(), "absent.sock")

		Convey("A dead address exhausts the attempt budget", func() {
			start := time.Now()
			c, err := Connect(addr, 0)

			So(c, ShouldBeNil)
			So(errors.Is(err, ErrSocketConnect), ShouldBeTrue)
			So(time.Since(start), ShouldBeGreaterThanOrEqualTo, connectRetries*connectDelay)
		})
	})
}

func TestProbe(t *testing.T) {
	Convey("Probe", t, func() {
		Convey("A dead address fails after a single attempt", func() {
			addr := filepath.Join(t.TempDir(), "absent.sock")

			start := time.Now()
			c, err := Probe(addr, 0)

			So(c, ShouldBeNil)
			So(err, ShouldNotBeNil)
			So(errors.Is(err, ErrSocketConnect), ShouldBeFalse)
			So(time.Since(start), ShouldBeLessThan, connectDelay)
		})
	})
}
