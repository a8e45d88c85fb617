package simple

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/seralba/devsink/internal/metrics"
	"github.com/seralba/devsink/internal/model"
	"github.com/seralba/devsink/internal/output"
	"github.com/seralba/devsink/internal/output/logfile"
)

// Output writes plain single-line log records:
//
//	2026-08-28 13:04:05 INFO [component] message
type Output struct {
	w         *logfile.Writer
	component string
}

// New creates a simple-format output appending to path.
func New(path, component string, opts ...logfile.Option) (*Output, error) {
	w, err := logfile.New(path, opts...)
	if err != nil {
		return nil, fmt.Errorf("simple: %w", err)
	}
	return &Output{w: w, component: component}, nil
}

// Write appends the message as one line.
func (o *Output) Write(_ context.Context, msg model.Message) error {
	ts := msg.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	component := msg.Component
	if component == "" {
		component = o.component
	}
	line := fmt.Sprintf("%s %s [%s] %s",
		ts.Format("2006-01-02 15:04:05"),
		strings.ToUpper(msg.Severity.String()),
		component,
		msg.Body,
	)
	if err := o.w.WriteLine([]byte(line)); err != nil {
		metrics.SendErrors.WithLabelValues("simple").Inc()
		return fmt.Errorf("simple: %w", err)
	}
	metrics.MessagesSent.WithLabelValues("simple").Inc()
	return nil
}

// Close flushes and closes the backing file.
func (o *Output) Close() error {
	return o.w.Close()
}

func init() {
	output.Register("simple", func(cfg output.SinkConfig) (output.Output, error) {
		path := cfg.Setting("path", "devsink.log")
		component := cfg.Setting("component", "devsink")
		var opts []logfile.Option
		if v := cfg.Setting("max_size", ""); v != "" {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return nil, err
			}
			opts = append(opts, logfile.WithMaxSize(n))
		}
		return New(path, component, opts...)
	})
}
