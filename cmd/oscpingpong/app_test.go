package main

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/chabad360/oscwire/internal/config"
	"github.com/chabad360/oscwire/osc"
)

func TestPingPong(t *testing.T) {
	peer, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	defer peer.Close()

	cfg := config.Default()
	cfg.Listen = "127.0.0.1:0"
	cfg.Send = peer.LocalAddr().String()
	cfg.Interval = 10 * time.Millisecond
	cfg.ReadTimeout = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- pingPong(ctx, cfg, zaptest.NewLogger(t)) }()

	buf := make([]byte, osc.MaxPacketSize)
	require.NoError(t, peer.SetReadDeadline(time.Now().Add(5*time.Second)))
	for i := 0; i < 2; i++ {
		n, from, err := peer.ReadFrom(buf)
		require.NoError(t, err)

		msg, err := osc.NewMessageFromData(buf[:n])
		require.NoError(t, err)
		assert.True(t, osc.NewMessage("/test", osc.String("Hello"), osc.Int32(4)).Equals(msg), "got %v", msg)

		// Answer so the receive loop has something to log.
		_, err = peer.WriteTo(buf[:n], from)
		require.NoError(t, err)
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("pingPong did not stop")
	}
}

func TestPingPongDialError(t *testing.T) {
	cfg := config.Default()
	cfg.Send = "not an address"
	err := pingPong(context.Background(), cfg, zaptest.NewLogger(t))
	assert.Error(t, err)
}
