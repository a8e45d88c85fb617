package devsink

import (
	"context"
	"time"

	"github.com/seralba/devsink/internal/devname"
	"github.com/seralba/devsink/internal/model"
	"github.com/seralba/devsink/internal/syslog"
)

// Message is a device-management event on its way to a collector.
// Severity and Facility carry plain RFC 5424 numeric codes; the zero values
// are overridden by the client defaults (informational/user).
type Message struct {
	Timestamp time.Time // zero = time of send
	Hostname  string    // zero = client name, then local host name
	Component string
	Device    string // normalized device identifier, when known
	Severity  int
	Facility  int
	Body      string
}

// Client sends device-management messages to a syslog collector.
// Safe for concurrent use; each send owns its own connection.
type Client struct {
	transport   *syslog.Transport
	hostname    string
	severity    model.Severity
	facility    model.Facility
	passThrough bool
}

// New creates a Client. Without options it targets 127.0.0.1:514 over UDP
// with a 2048-byte message cap.
func New(opts ...Option) (*Client, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	topts := []syslog.Option{syslog.WithMaxLen(o.maxLen)}
	if o.useTCP {
		f, err := syslog.ParseFraming(o.framing)
		if err != nil {
			return nil, err
		}
		topts = append(topts, syslog.WithTCP(f))
	}

	return &Client{
		transport:   syslog.NewTransport(o.host, o.port, topts...),
		hostname:    o.clientName,
		severity:    model.Severity(o.severity),
		facility:    model.Facility(o.facility),
		passThrough: o.passThrough,
	}, nil
}

// Send delivers a message body using the client defaults.
func (c *Client) Send(ctx context.Context, body string) error {
	return c.SendMessage(ctx, Message{Body: body})
}

// SendMessage delivers a fully specified message. Zero-value fields fall
// back to the client defaults. With pass-through enabled, delivery failures
// are returned as a *DeliveryError that still carries the encoded message,
// so callers can chain it onward.
func (c *Client) SendMessage(ctx context.Context, m Message) error {
	sev := model.Severity(m.Severity)
	if m.Severity == 0 {
		sev = c.severity
	}
	fac := model.Facility(m.Facility)
	if m.Facility == 0 {
		fac = c.facility
	}
	host := m.Hostname
	if host == "" {
		host = c.hostname
	}

	wire := syslog.Build(model.Message{
		Timestamp: m.Timestamp,
		Hostname:  host,
		Component: m.Component,
		Device:    m.Device,
		Severity:  sev,
		Facility:  fac,
		Body:      m.Body,
	})

	if err := c.transport.Send(ctx, wire); err != nil {
		if c.passThrough {
			return &DeliveryError{Message: m, Err: err}
		}
		return err
	}
	return nil
}

// Normalize validates a device identifier and returns its canonical
// CTE-nnn-Vnnnnn form. Invalid identifiers return an error, never a partial
// result.
func Normalize(raw string) (string, error) {
	return devname.Normalize(raw)
}

// DeliveryError reports a pass-through delivery failure. The original
// message is preserved for chaining.
type DeliveryError struct {
	Message Message
	Err     error
}

func (e *DeliveryError) Error() string { return "devsink: delivery failed: " + e.Err.Error() }

func (e *DeliveryError) Unwrap() error { return e.Err }
