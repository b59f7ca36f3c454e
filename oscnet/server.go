package oscnet

import (
	"context"
	"errors"
	"net"
	"time"

	"go.uber.org/zap"

	"github.com/chabad360/oscwire/osc"
)

// HandlerFunc is called once for every message the server decodes.
type HandlerFunc func(msg *osc.Message, addr net.Addr)

// Server represents an OSC server. The server listens on Addr for incoming
// datagrams and hands every decoded message to Handler.
type Server struct {
	Addr        string
	Handler     HandlerFunc
	ReadTimeout time.Duration
	Codec       osc.Codec
	Logger      *zap.Logger
}

// ListenAndServe serves OSC messages on addr until an unrecoverable network
// error occurs.
func ListenAndServe(addr string, handler HandlerFunc) error {
	s := &Server{Addr: addr, Handler: handler}
	return s.ListenAndServe(context.Background())
}

// ListenAndServe retrieves incoming OSC messages and dispatches them to the
// Handler until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.ListenPacket(ctx, "udp", s.Addr)
	if err != nil {
		return err
	}
	defer ln.Close()

	return s.Serve(ctx, ln)
}

// Serve retrieves incoming OSC messages from the given connection and
// dispatches them. Datagrams that fail to decode are logged and dropped.
// Serve returns ctx.Err() once ctx is done, or the first read error that
// isn't a timeout.
func (s *Server) Serve(ctx context.Context, c net.PacketConn) error {
	logger := s.logger()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			// Unblock the pending read.
			_ = c.SetReadDeadline(time.Now())
		case <-done:
		}
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		msg, addr, err := s.readFromConnection(ctx, c)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				continue
			}

			var pe *PacketError
			if errors.As(err, &pe) {
				logger.Warn("dropped malformed osc datagram", zap.Stringer("from", pe.Addr), zap.Error(pe.Err))
				continue
			}
			return err
		}
		go s.serve(msg, addr)
	}
}

func (s *Server) serve(m *osc.Message, a net.Addr) {
	defer func() {
		if err := recover(); err != nil {
			s.logger().Error("osc: panic in handler",
				zap.Stringer("from", a),
				zap.Any("panic", err),
				zap.Stack("stack"))
		}
	}()
	if s.Handler != nil {
		s.Handler(m, a)
	}
}

// ReceivePacket reads a single datagram from c and decodes it.
func (s *Server) ReceivePacket(c net.PacketConn) (*osc.Message, net.Addr, error) {
	return s.readFromConnection(context.Background(), c)
}

// readFromConnection retrieves one OSC message. Decode failures are returned
// as a *PacketError.
func (s *Server) readFromConnection(ctx context.Context, c net.PacketConn) (*osc.Message, net.Addr, error) {
	if s.ReadTimeout != 0 {
		if err := c.SetReadDeadline(time.Now().Add(s.ReadTimeout)); err != nil {
			return nil, nil, err
		}
		// The deadline above may have replaced the one set on cancel.
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
	}

	b := make([]byte, osc.MaxPacketSize)
	n, a, err := c.ReadFrom(b)
	if err != nil {
		return nil, a, err
	}

	m, err := s.Codec.Unmarshal(b[:n])
	if err != nil {
		recordDecodeError(err)
		return nil, a, &PacketError{Addr: a, Err: err}
	}
	recordReceived(n)
	return m, a, nil
}

func (s *Server) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// PacketError reports a datagram that could not be decoded.
type PacketError struct {
	Addr net.Addr
	Err  error
}

func (e *PacketError) Error() string {
	return "oscnet: malformed packet from " + addrString(e.Addr) + ": " + e.Err.Error()
}

func (e *PacketError) Unwrap() error { return e.Err }

func addrString(a net.Addr) string {
	if a == nil {
		return "<nil>"
	}
	return a.String()
}
