package oscnet

import (
	"errors"
	"io"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/chabad360/oscwire/osc"
)

const (
	directionIn  = "in"
	directionOut = "out"
)

var (
	registerOnce sync.Once

	messagesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "oscwire",
			Subsystem: "oscnet",
			Name:      "messages_total",
			Help:      "OSC messages sent and received.",
		},
		[]string{"direction"},
	)
	bytesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "oscwire",
			Subsystem: "oscnet",
			Name:      "bytes_total",
			Help:      "Bytes of OSC messages sent and received.",
		},
		[]string{"direction"},
	)
	decodeErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "oscwire",
			Subsystem: "oscnet",
			Name:      "decode_errors_total",
			Help:      "Received datagrams that did not decode to an OSC message.",
		},
		[]string{"reason"},
	)
)

// RegisterMetrics registers the oscnet collectors with the default
// Prometheus registry. It is safe to call more than once.
func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(messagesTotal, bytesTotal, decodeErrorsTotal)
	})
}

func recordSent(n int) {
	messagesTotal.WithLabelValues(directionOut).Inc()
	bytesTotal.WithLabelValues(directionOut).Add(float64(n))
}

func recordReceived(n int) {
	messagesTotal.WithLabelValues(directionIn).Inc()
	bytesTotal.WithLabelValues(directionIn).Add(float64(n))
}

func recordDecodeError(err error) {
	decodeErrorsTotal.WithLabelValues(decodeErrorReason(err)).Inc()
}

// decodeErrorReason maps a decode error to a low cardinality label.
func decodeErrorReason(err error) string {
	switch {
	case errors.Is(err, osc.ErrUnknownTypeTag):
		return "unknown_type_tag"
	case errors.Is(err, osc.ErrMalformedTypeTags):
		return "malformed_type_tags"
	case errors.Is(err, osc.ErrInvalidEncoding):
		return "invalid_encoding"
	case errors.Is(err, osc.ErrInvalidBlobLength):
		return "invalid_blob_length"
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return "truncated"
	default:
		return "other"
	}
}
