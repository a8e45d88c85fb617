package cmtrace

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/seralba/devsink/internal/model"
	"github.com/seralba/devsink/internal/output/logfile"
)

var linePattern = regexp.MustCompile(
	`^<!\[LOG\[(.*)\]LOG\]!><time="(\d{2}:\d{2}:\d{2}\.\d{3}[+-]\d+)" date="(\d{2}-\d{2}-\d{4})" component="([^"]*)" context="" type="(\d)" thread="(\d+)" file="">$`)

func writeOne(t *testing.T, msg model.Message) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cm.log")
	o, err := New(path, "installer")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := o.Write(context.Background(), msg); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := o.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return strings.TrimSuffix(string(data), "\n")
}

func TestWriteFormatsCMTraceLine(t *testing.T) {
	ts := time.Date(2026, 8, 28, 13, 4, 5, 250e6, time.UTC)
	line := writeOne(t, model.Message{
		Timestamp: ts,
		Component: "enrollment",
		Severity:  model.SeverityInformational,
		Body:      "device registered",
	})

	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		t.Fatalf("line does not match CMTrace format: %q", line)
	}
	if m[1] != "device registered" {
		t.Errorf("body = %q", m[1])
	}
	if m[2] != "13:04:05.250+0" {
		t.Errorf("time field = %q, want 13:04:05.250+0", m[2])
	}
	if m[3] != "08-28-2026" {
		t.Errorf("date field = %q, want 08-28-2026", m[3])
	}
	if m[4] != "enrollment" {
		t.Errorf("component = %q", m[4])
	}
	if m[6] != fmt.Sprint(os.Getpid()) {
		t.Errorf("thread = %q, want pid %d", m[6], os.Getpid())
	}
}

func TestWriteUsesDefaultComponent(t *testing.T) {
	line := writeOne(t, model.Message{Timestamp: time.Now(), Body: "hello"})
	if !strings.Contains(line, `component="installer"`) {
		t.Errorf("default component missing: %q", line)
	}
}

func TestSeverityTypeMapping(t *testing.T) {
	tests := []struct {
		sev  model.Severity
		want int
	}{
		{model.SeverityEmergency, 3},
		{model.SeverityCritical, 3},
		{model.SeverityError, 3},
		{model.SeverityWarning, 2},
		{model.SeverityNotice, 1},
		{model.SeverityInformational, 1},
		{model.SeverityDebug, 1},
	}
	for _, tt := range tests {
		if got := severityType(tt.sev); got != tt.want {
			t.Errorf("severityType(%v) = %d, want %d", tt.sev, got, tt.want)
		}
	}
}

func TestWriteRotatesAtMaxSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cm.log")
	o, err := New(path, "installer", logfile.WithMaxSize(256), logfile.WithBufSize(1))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < 10; i++ {
		err := o.Write(context.Background(), model.Message{
			Timestamp: time.Now(),
			Body:      strings.Repeat("x", 64),
		})
		if err != nil {
			t.Fatalf("Write %d: %v", i, err)
		}
	}
	if err := o.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if _, err := os.Stat(path + ".1"); err != nil {
		t.Errorf("expected rotated file %s.1: %v", path, err)
	}
}
