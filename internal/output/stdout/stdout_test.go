package stdout

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/seralba/devsink/internal/model"
)

func TestWritePrintsLine(t *testing.T) {
	var buf bytes.Buffer
	o := New(&buf)
	ts := time.Date(2026, 8, 28, 13, 4, 5, 0, time.UTC)
	err := o.Write(context.Background(), model.Message{
		Timestamp: ts,
		Component: "enrollment",
		Severity:  model.SeverityInformational,
		Body:      "device registered",
	})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := "2026-08-28T13:04:05Z info enrollment device registered\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestWriteStampsMissingTimestamp(t *testing.T) {
	var buf bytes.Buffer
	o := New(&buf)
	if err := o.Write(context.Background(), model.Message{Body: "hello"}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if strings.HasPrefix(buf.String(), "0001-01-01") {
		t.Errorf("zero timestamp not replaced: %q", buf.String())
	}
}

func TestCloseIsNoOp(t *testing.T) {
	o := New(&bytes.Buffer{})
	if err := o.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
