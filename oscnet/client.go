package oscnet

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/chabad360/oscwire/osc"
)

// Dialer holds the options used to open a Conn. The zero value is usable.
type Dialer struct {
	// LocalAddr binds the local end of the connection, e.g. "127.0.0.1:9000".
	// Empty picks an ephemeral port.
	LocalAddr string
	// Codec encodes and decodes the datagrams.
	Codec osc.Codec
	// Logger receives debug output for every datagram. Nil disables logging.
	Logger *zap.Logger
}

// Conn is a connected UDP socket carrying one OSC message per datagram.
// Send may be called from several goroutines; Receive must only be called
// from one goroutine at a time.
type Conn struct {
	conn   *net.UDPConn
	codec  osc.Codec
	logger *zap.Logger

	rmu  sync.Mutex
	rbuf []byte
}

// Dial creates a new Conn with a connection to the specified server.
func Dial(addr string) (*Conn, error) {
	var d Dialer
	return d.Dial(context.Background(), addr)
}

// Dial connects to raddr. Messages from any other address are dropped by the
// operating system.
func (d *Dialer) Dial(ctx context.Context, raddr string) (*Conn, error) {
	nd := net.Dialer{}
	if d.LocalAddr != "" {
		laddr, err := net.ResolveUDPAddr("udp", d.LocalAddr)
		if err != nil {
			return nil, fmt.Errorf("Dial: %w", err)
		}
		nd.LocalAddr = laddr
	}

	c, err := nd.DialContext(ctx, "udp", raddr)
	if err != nil {
		return nil, fmt.Errorf("Dial: %w", err)
	}

	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Conn{
		conn:   c.(*net.UDPConn),
		codec:  d.Codec,
		logger: logger.With(zap.Stringer("local", c.LocalAddr()), zap.Stringer("remote", c.RemoteAddr())),
		rbuf:   make([]byte, osc.MaxPacketSize),
	}, nil
}

// Send encodes m and writes it as a single datagram.
func (c *Conn) Send(m *osc.Message) error {
	data, err := c.codec.Marshal(m)
	if err != nil {
		return err
	}

	n, err := c.conn.Write(data)
	if err != nil {
		return err
	}
	recordSent(n)
	c.logger.Debug("sent osc message", zap.Stringer("message", m), zap.Int("bytes", n))
	return nil
}

// Receive blocks until a datagram arrives and decodes it. A datagram that
// doesn't hold exactly one message is reported as an error; the Conn stays
// usable.
func (c *Conn) Receive() (*osc.Message, error) {
	c.rmu.Lock()
	defer c.rmu.Unlock()

	n, err := c.conn.Read(c.rbuf)
	if err != nil {
		return nil, err
	}

	m, err := c.codec.Unmarshal(c.rbuf[:n])
	if err != nil {
		recordDecodeError(err)
		c.logger.Debug("dropped malformed datagram", zap.Int("bytes", n), zap.Error(err))
		return nil, err
	}
	recordReceived(n)
	c.logger.Debug("received osc message", zap.Stringer("message", m), zap.Int("bytes", n))
	return m, nil
}

// SetReadDeadline sets the deadline for Receive.
func (c *Conn) SetReadDeadline(t time.Time) error {
	return c.conn.SetReadDeadline(t)
}

// LocalAddr returns the local network address.
func (c *Conn) LocalAddr() net.Addr {
	return c.conn.LocalAddr()
}

// RemoteAddr returns the address of the peer.
func (c *Conn) RemoteAddr() net.Addr {
	return c.conn.RemoteAddr()
}

// Close closes the connection to the server.
func (c *Conn) Close() error {
	return c.conn.Close()
}
