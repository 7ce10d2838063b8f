package player

import (
	"fmt"
	"net"
	"time"

	"github.com/mpvlink-cli/mpvlink/log"
)

const (
	connectRetries = 15
	connectDelay   = 200 * time.Millisecond
	dialTimeout    = 500 * time.Millisecond
)

// Conn is a write-only control connection to a running player. The player's
// acknowledgement stream is never read. Consecutive writes are spaced by
// writeGap because the player applies queue mutations asynchronously and
// racing writes get dropped or misordered.
type Conn struct {
	conn     net.Conn
	writeGap time.Duration
	lastSend time.Time
}

// Probe makes a single connection attempt against addr. Used to detect an
// already-running instance; absence is expected and not retried.
func Probe(addr string, writeGap time.Duration) (*Conn, error) {
	c, err := dialControl(addr)
	if err != nil {
		return nil, fmt.Errorf("probe %s: %w", addr, err)
	}
	return &Conn{conn: c, writeGap: writeGap}, nil
}

// Connect waits for a just-spawned player to start accepting control
// connections, retrying on a fixed cadence. The total wait is hard-capped at
// retries times delay, roughly three seconds.
func Connect(addr string, writeGap time.Duration) (*Conn, error) {
	for attempt := 0; attempt < connectRetries; attempt++ {
		c, err := dialControl(addr)
		if err == nil {
			log.Debugf("control socket %s ready after %v", addr, time.Duration(attempt)*connectDelay)
			return &Conn{conn: c, writeGap: writeGap}, nil
		}
		time.Sleep(connectDelay)
	}
	return nil, fmt.Errorf("%w: %s not accepting after %d attempts", ErrSocketConnect, addr, connectRetries)
}

// Send serializes one command and writes it as a single line.
func (c *Conn) Send(cmd Command) error {
	payload, err := Marshal(cmd)
	if err != nil {
		return err
	}

	if !c.lastSend.IsZero() {
		if gap := c.writeGap - time.Since(c.lastSend); gap > 0 {
			time.Sleep(gap)
		}
	}

	if _, err := c.conn.Write(payload); err != nil {
		return fmt.Errorf("control socket write: %w", err)
	}
	c.lastSend = time.Now()
	return nil
}

// Close releases the underlying connection.
func (c *Conn) Close() error {
	return c.conn.Close()
}
