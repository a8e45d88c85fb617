//go:build windows

package eventlog

import (
	"context"
	"fmt"

	"golang.org/x/sys/windows/svc/eventlog"

	"github.com/seralba/devsink/internal/metrics"
	"github.com/seralba/devsink/internal/model"
)

// defaultEventID is the generic event id used for forwarded messages.
// The source has no message catalog, so the id only groups entries.
const defaultEventID = 1000

// Output writes messages to the Windows Event Log under a registered source.
type Output struct {
	log *eventlog.Log
}

// New opens the event log for the given source. The source must already be
// registered (e.g. by the installer); opening an unregistered source falls
// back to the Application log with a decorated message.
func New(source string) (*Output, error) {
	l, err := eventlog.Open(source)
	if err != nil {
		return nil, fmt.Errorf("eventlog: open %s: %w", source, err)
	}
	return &Output{log: l}, nil
}

// Write records the message at the event-log level closest to its severity.
func (o *Output) Write(_ context.Context, msg model.Message) error {
	text := msg.Body
	if msg.Component != "" {
		text = msg.Component + ": " + text
	}

	var err error
	switch {
	case msg.Severity <= model.SeverityError:
		err = o.log.Error(defaultEventID, text)
	case msg.Severity == model.SeverityWarning:
		err = o.log.Warning(defaultEventID, text)
	default:
		err = o.log.Info(defaultEventID, text)
	}
	if err != nil {
		metrics.SendErrors.WithLabelValues("eventlog").Inc()
		return fmt.Errorf("eventlog: write: %w", err)
	}
	metrics.MessagesSent.WithLabelValues("eventlog").Inc()
	return nil
}

// Close releases the event log handle.
func (o *Output) Close() error {
	return o.log.Close()
}
