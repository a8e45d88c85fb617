package syslogout

import (
	"context"
	"strconv"

	"github.com/phuslu/log"

	"github.com/seralba/devsink/internal/metrics"
	"github.com/seralba/devsink/internal/model"
	"github.com/seralba/devsink/internal/output"
	"github.com/seralba/devsink/internal/syslog"
)

// Sender delivers one wire message. *syslog.Transport satisfies this; tests
// substitute a fake.
type Sender interface {
	Send(ctx context.Context, m syslog.Message) error
}

// Option configures a syslog Output.
type Option func(*Output)

// WithPassThrough makes delivery failures non-fatal: the error is logged and
// counted, Write returns nil, and downstream sinks still see the message.
func WithPassThrough() Option {
	return func(o *Output) { o.passThrough = true }
}

// Output delivers messages to a syslog collector through a Sender.
type Output struct {
	sender      Sender
	passThrough bool
}

// New creates a syslog output over the given sender.
func New(sender Sender, opts ...Option) *Output {
	o := &Output{sender: sender}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Write resolves the message to its wire form and sends it.
func (o *Output) Write(ctx context.Context, msg model.Message) error {
	err := o.sender.Send(ctx, syslog.Build(msg))
	if err != nil {
		metrics.SendErrors.WithLabelValues("syslog").Inc()
		if o.passThrough {
			log.Warn().Err(err).Msg("syslog delivery failed, passing message through")
			return nil
		}
		return err
	}
	metrics.MessagesSent.WithLabelValues("syslog").Inc()
	return nil
}

// Close is a no-op; the transport holds no long-lived connection.
func (o *Output) Close() error { return nil }

func init() {
	output.Register("syslog", func(cfg output.SinkConfig) (output.Output, error) {
		host := cfg.Setting("host", "127.0.0.1")
		port, err := strconv.Atoi(cfg.Setting("port", "514"))
		if err != nil {
			return nil, err
		}
		var opts []syslog.Option
		if cfg.Setting("protocol", "udp") == "tcp" {
			framing, err := syslog.ParseFraming(cfg.Setting("framing", ""))
			if err != nil {
				return nil, err
			}
			opts = append(opts, syslog.WithTCP(framing))
		}
		if v := cfg.Setting("max_len", ""); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, err
			}
			opts = append(opts, syslog.WithMaxLen(n))
		}
		t := syslog.NewTransport(host, port, opts...)
		var oopts []Option
		if cfg.Setting("pass_through", "false") == "true" {
			oopts = append(oopts, WithPassThrough())
		}
		return New(t, oopts...), nil
	})
}
