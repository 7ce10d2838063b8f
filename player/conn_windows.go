//go:build windows

package player

import (
	"net"

	"github.com/Microsoft/go-winio"
)

// dialControl connects to the player's named-pipe control channel.
func dialControl(addr string) (net.Conn, error) {
	timeout := dialTimeout
	return winio.DialPipe(addr, &timeout)
}
