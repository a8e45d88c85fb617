package cmtrace

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/seralba/devsink/internal/metrics"
	"github.com/seralba/devsink/internal/model"
	"github.com/seralba/devsink/internal/output"
	"github.com/seralba/devsink/internal/output/logfile"
)

// Output writes CMTrace-format log lines, the XML-tagged format the
// Configuration Manager log viewer consumes:
//
//	<![LOG[message]LOG]!><time="HH:mm:ss.fff+offset" date="MM-dd-yyyy" component="c" context="" type="N" thread="pid" file="">
type Output struct {
	w         *logfile.Writer
	component string
	pid       int
}

// New creates a CMTrace output appending to path. component appears in the
// viewer's Component column when the message carries none of its own.
func New(path, component string, opts ...logfile.Option) (*Output, error) {
	w, err := logfile.New(path, opts...)
	if err != nil {
		return nil, fmt.Errorf("cmtrace: %w", err)
	}
	return &Output{w: w, component: component, pid: os.Getpid()}, nil
}

// Write appends the message as one CMTrace line.
func (o *Output) Write(_ context.Context, msg model.Message) error {
	if err := o.w.WriteLine(o.formatLine(msg)); err != nil {
		metrics.SendErrors.WithLabelValues("cmtrace").Inc()
		return fmt.Errorf("cmtrace: %w", err)
	}
	metrics.MessagesSent.WithLabelValues("cmtrace").Inc()
	return nil
}

// Close flushes and closes the backing file.
func (o *Output) Close() error {
	return o.w.Close()
}

func (o *Output) formatLine(msg model.Message) []byte {
	ts := msg.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	component := msg.Component
	if component == "" {
		component = o.component
	}
	// The viewer expects the UTC offset in minutes appended to the time field.
	_, offsetSec := ts.Zone()
	line := fmt.Sprintf(
		`<![LOG[%s]LOG]!><time="%02d:%02d:%02d.%03d%+d" date="%s" component="%s" context="" type="%d" thread="%d" file="">`,
		msg.Body,
		ts.Hour(), ts.Minute(), ts.Second(), ts.Nanosecond()/1e6, offsetSec/60,
		ts.Format("01-02-2006"),
		component,
		severityType(msg.Severity),
		o.pid,
	)
	return []byte(line)
}

// severityType maps syslog severity onto the viewer's three level codes:
// 1 info, 2 warning, 3 error.
func severityType(s model.Severity) int {
	switch {
	case s <= model.SeverityError:
		return 3
	case s == model.SeverityWarning:
		return 2
	default:
		return 1
	}
}

func init() {
	output.Register("cmtrace", func(cfg output.SinkConfig) (output.Output, error) {
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
