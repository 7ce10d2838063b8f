//go:build !windows

package player

import "net"

// dialControl connects to the player's Unix domain control socket.
func dialControl(addr string) (net.Conn, error) {
	return net.DialTimeout("unix", addr, dialTimeout)
}
