package stdout

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/seralba/devsink/internal/model"
	"github.com/seralba/devsink/internal/output"
)

// Output prints messages as plain lines, one per message. Used for
// interactive runs and dry-run inspection of a forward topology.
type Output struct {
	w io.Writer
}

// New creates a stdout Output writing to w. Pass os.Stdout for normal use.
func New(w io.Writer) *Output {
	return &Output{w: w}
}

func (o *Output) Write(_ context.Context, msg model.Message) error {
	ts := msg.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err := fmt.Fprintf(o.w, "%s %s %s %s\n",
		ts.Format(time.RFC3339), msg.Severity, msg.Component, msg.Body)
	if err != nil {
		return fmt.Errorf("stdout output: %w", err)
	}
	return nil
}

func (o *Output) Close() error {
	return nil
}

func init() {
	output.Register("stdout", func(output.SinkConfig) (output.Output, error) {
		return New(os.Stdout), nil
	})
}
