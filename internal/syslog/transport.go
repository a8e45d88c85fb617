package syslog

import (
	"context"
	"fmt"
	"net"
	"strconv"

	"github.com/seralba/devsink/internal/metrics"
)

// DefaultPort is the collector port used when none is configured.
const DefaultPort = 514

// ConnectionError reports a socket-level failure while delivering a message.
type ConnectionError struct {
	Op   string // "dial" or "write"
	Addr string
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("syslog %s %s: %v", e.Op, e.Addr, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// Option configures a Transport.
type Option func(*Transport)

// WithTCP switches delivery to TCP with the given framing mode.
// Default is UDP.
func WithTCP(f Framing) Option {
	return func(t *Transport) {
		t.useTCP = true
		t.framing = f
	}
}

// WithMaxLen caps the encoded message size in bytes. Default: DefaultMaxLen.
// 0 disables the cap.
func WithMaxLen(n int) Option {
	return func(t *Transport) { t.maxLen = n }
}

// Transport delivers encoded messages to a syslog collector. Each Send dials
// a fresh connection and closes it before returning — no pooling, no retries.
// Blocking calls honor the context via the dialer; write deadlines are left
// to the OS defaults.
type Transport struct {
	addr    string
	useTCP  bool
	framing Framing
	maxLen  int
	dialer  net.Dialer
}

// NewTransport creates a Transport targeting host:port. Zero port means
// DefaultPort.
func NewTransport(host string, port int, opts ...Option) *Transport {
	if port == 0 {
		port = DefaultPort
	}
	t := &Transport{
		addr:   net.JoinHostPort(host, strconv.Itoa(port)),
		maxLen: DefaultMaxLen,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Addr returns the resolved collector address.
func (t *Transport) Addr() string { return t.addr }

// Send encodes and delivers a single message. One dial, one write, then the
// connection is closed. Connection failures are returned as *ConnectionError.
func (t *Transport) Send(ctx context.Context, m Message) error {
	network := "udp"
	if t.useTCP {
		network = "tcp"
	}

	var payload []byte
	var truncated bool
	if t.useTCP {
		payload, truncated = m.EncodeFrame(t.framing, t.maxLen)
	} else {
		payload, truncated = m.EncodeDatagram(t.maxLen)
	}
	if truncated {
		metrics.MessagesTruncated.WithLabelValues(network).Inc()
	}

	conn, err := t.dialer.DialContext(ctx, network, t.addr)
	if err != nil {
		return &ConnectionError{Op: "dial", Addr: t.addr, Err: err}
	}
	defer conn.Close()

	if _, err := conn.Write(payload); err != nil {
		return &ConnectionError{Op: "write", Addr: t.addr, Err: err}
	}
	metrics.BytesSent.Add(float64(len(payload)))
	return nil
}
