package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/chabad360/oscwire/internal/config"
	"github.com/chabad360/oscwire/internal/logging"
	"github.com/chabad360/oscwire/osc"
	"github.com/chabad360/oscwire/oscnet"
)

// run is the main entry point after CLI parsing.
func run(opts Options) int {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return 1
	}
	applyOptions(cfg, opts)

	logger, err := logging.New(cfg.Log)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		return 1
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := pingPong(ctx, cfg, logger); err != nil {
		logger.Error("oscpingpong failed", zap.Error(err))
		return 1
	}
	return 0
}

// applyOptions lets the positional ports override the configured addresses.
// Both ends are on the loopback interface.
func applyOptions(cfg *config.Config, opts Options) {
	if opts.ListenPort != 0 {
		cfg.Listen = net.JoinHostPort("127.0.0.1", strconv.Itoa(int(opts.ListenPort)))
	}
	if opts.SendPort != 0 {
		cfg.Send = net.JoinHostPort("127.0.0.1", strconv.Itoa(int(opts.SendPort)))
	}
}

// pingPong runs the receive and send loops until ctx is done.
func pingPong(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	d := oscnet.Dialer{
		LocalAddr: cfg.Listen,
		Codec:     osc.Codec{PadBlobs: cfg.Codec.PadBlobs},
		Logger:    logger,
	}
	conn, err := d.Dial(ctx, cfg.Send)
	if err != nil {
		return err
	}
	logger.Info("oscpingpong started",
		zap.Stringer("listen", conn.LocalAddr()),
		zap.Stringer("send", conn.RemoteAddr()),
		zap.Duration("interval", cfg.Interval))

	if cfg.Metrics.Listen != "" {
		srv := serveMetrics(cfg.Metrics.Listen, logger)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		receiveLoop(ctx, conn, cfg.ReadTimeout, logger)
	}()
	go func() {
		defer wg.Done()
		msg := osc.NewMessage(cfg.Address, osc.String("Hello"), osc.Int32(4))
		sendLoop(ctx, conn, msg, cfg.Interval, logger)
	}()

	<-ctx.Done()
	// Unblocks the pending Receive.
	err = conn.Close()
	wg.Wait()
	logger.Info("oscpingpong stopped")
	return err
}

// receiveLoop logs every message that arrives on conn. Malformed datagrams
// and refused sends reported by the socket are logged and skipped. A non-zero
// timeout bounds each read so that ctx is checked even when nothing arrives.
func receiveLoop(ctx context.Context, conn *oscnet.Conn, timeout time.Duration, logger *zap.Logger) {
	for {
		if timeout > 0 {
			_ = conn.SetReadDeadline(time.Now().Add(timeout))
		}
		msg, err := conn.Receive()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return
			}
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				continue
			}
			logger.Warn("recv failed", zap.Error(err))
			continue
		}
		logger.Info("recv", zap.String("address", msg.Address), zap.Stringer("message", msg))
	}
}

// sendLoop sends msg immediately and then once per interval.
func sendLoop(ctx context.Context, conn *oscnet.Conn, msg *osc.Message, interval time.Duration, logger *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := conn.Send(msg); err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return
			}
			logger.Warn("send failed", zap.Error(err))
		} else {
			logger.Info("send", zap.String("address", msg.Address), zap.Stringer("message", msg))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func serveMetrics(addr string, logger *zap.Logger) *http.Server {
	oscnet.RegisterMetrics()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()
	logger.Info("serving metrics", zap.String("addr", addr))
	return srv
}
