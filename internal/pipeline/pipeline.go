package pipeline

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/seralba/devsink/internal/model"
	"github.com/seralba/devsink/internal/output"
)

const maxLineSize = 1024 * 1024 // 1MB

// Pipeline reads raw lines from a source and delivers them to an output.
type Pipeline struct {
	out       output.Output
	component string
	hostname  string
	facility  model.Facility
}

// New creates a Pipeline writing to out. component and hostname stamp every
// message; empty hostname falls back to the local host name downstream.
func New(out output.Output, component, hostname string, facility model.Facility) *Pipeline {
	return &Pipeline{
		out:       out,
		component: component,
		hostname:  hostname,
		facility:  facility,
	}
}

// Run reads r line by line until EOF or context cancellation, building one
// message per non-empty line. A delivery failure stops the run.
func (p *Pipeline) Run(ctx context.Context, r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		msg := model.Message{
			Timestamp: time.Now(),
			Hostname:  p.hostname,
			Component: p.component,
			Severity:  detectSeverity(line),
			Facility:  p.facility,
			Body:      line,
		}
		if err := p.out.Write(ctx, msg); err != nil {
			return fmt.Errorf("pipeline output: %w", err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("pipeline read: %w", err)
	}
	return nil
}

// Close shuts down the output.
func (p *Pipeline) Close() error {
	return p.out.Close()
}

// detectSeverity guesses a severity from a leading level token, e.g.
// "ERROR: disk offline" or "[warn] fan speed". Lines with no recognizable
// token default to informational.
func detectSeverity(line string) model.Severity {
	token := strings.ToLower(strings.Trim(firstToken(line), "[]:"))
	if s, err := model.ParseSeverity(token); err == nil {
		return s
	}
	return model.SeverityInformational
}

func firstToken(line string) string {
	line = strings.TrimSpace(line)
	if i := strings.IndexAny(line, " \t"); i > 0 {
		return line[:i]
	}
	return line
}
