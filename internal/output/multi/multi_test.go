package multi

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/seralba/devsink/internal/model"
)

// mockOutput records calls for test assertions.
type mockOutput struct {
	msgs   []model.Message
	closed bool
	err    error // if set, Write returns this error
}

func (m *mockOutput) Write(_ context.Context, msg model.Message) error {
	m.msgs = append(m.msgs, msg)
	return m.err
}

func (m *mockOutput) Close() error {
	m.closed = true
	return m.err
}

func testMessage(body string) model.Message {
	return model.Message{
		Timestamp: time.Now(),
		Hostname:  "host01",
		Component: "agent",
		Severity:  model.SeverityInformational,
		Facility:  model.FacilityUser,
		Body:      body,
	}
}

func TestFanOutDeliversToAll(t *testing.T) {
	a := &mockOutput{}
	b := &mockOutput{}
	c := &mockOutput{}
	m := New(a, b, c)

	msg := testMessage("policy applied")
	if err := m.Write(context.Background(), msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, out := range []*mockOutput{a, b, c} {
		if len(out.msgs) != 1 {
			t.Errorf("output %d: got %d messages, want 1", i, len(out.msgs))
		}
		if out.msgs[0].Body != "policy applied" {
			t.Errorf("output %d: got body %q, want %q", i, out.msgs[0].Body, "policy applied")
		}
	}
}

func TestErrorDoesNotPreventDelivery(t *testing.T) {
	failing := &mockOutput{err: errors.New("disk full")}
	healthy := &mockOutput{}
	m := New(failing, healthy)

	err := m.Write(context.Background(), testMessage("drive offline"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	// Healthy output still received the message despite earlier failure.
	if len(healthy.msgs) != 1 {
		t.Fatalf("healthy output got %d messages, want 1", len(healthy.msgs))
	}

	// Failing output also received the call (error returned after).
	if len(failing.msgs) != 1 {
		t.Fatalf("failing output got %d messages, want 1", len(failing.msgs))
	}
}

func TestCloseCallsAllOutputs(t *testing.T) {
	a := &mockOutput{}
	b := &mockOutput{}
	m := New(a, b)

	if err := m.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !a.closed || !b.closed {
		t.Errorf("Close not called on all outputs: a=%v b=%v", a.closed, b.closed)
	}
}

func TestCloseCollectsErrors(t *testing.T) {
	a := &mockOutput{err: errors.New("err-a")}
	b := &mockOutput{err: errors.New("err-b")}
	m := New(a, b)

	err := m.Close()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !a.closed || !b.closed {
		t.Error("Close should be called on all outputs even when errors occur")
	}
}

func TestSingleOutputIdentity(t *testing.T) {
	inner := &mockOutput{}
	m := New(inner)

	if err := m.Write(context.Background(), testMessage("heartbeat")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(inner.msgs) != 1 || inner.msgs[0].Body != "heartbeat" {
		t.Error("single-output Multi did not behave identically to wrapped output")
	}
	if !inner.closed {
		t.Error("single-output Multi did not close inner output")
	}
}
