package syslog

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/seralba/devsink/internal/model"
)

func fixedTime() time.Time {
	return time.Date(2026, 8, 28, 13, 4, 5, 0, time.UTC)
}

func TestPriorityUserInformational(t *testing.T) {
	// facility user(1) * 8 + severity informational(6) = 14
	if got := Priority(model.FacilityUser, model.SeverityInformational); got != 14 {
		t.Fatalf("Priority = %d, want 14", got)
	}
}

func TestPriorityTable(t *testing.T) {
	tests := []struct {
		facility model.Facility
		severity model.Severity
		want     int
	}{
		{model.FacilityKernel, model.SeverityEmergency, 0},
		{model.FacilityUser, model.SeverityError, 11},
		{model.FacilityDaemon, model.SeverityWarning, 28},
		{model.FacilityLocal7, model.SeverityDebug, 191},
	}
	for _, tt := range tests {
		if got := Priority(tt.facility, tt.severity); got != tt.want {
			t.Errorf("Priority(%d, %d) = %d, want %d", tt.facility, tt.severity, got, tt.want)
		}
	}
}

func TestEncodeWireFormat(t *testing.T) {
	m := Message{
		Priority:  14,
		Timestamp: fixedTime(),
		Hostname:  "host01",
		Body:      "smart experiences enabled",
	}
	got := string(m.Encode())
	want := "<14>2026:08:28:-13:04:05 +00:00 host01 smart experiences enabled"
	if got != want {
		t.Fatalf("Encode = %q, want %q", got, want)
	}
}

func TestBuildFillsDefaults(t *testing.T) {
	m := Build(model.Message{
		Severity: model.SeverityInformational,
		Facility: model.FacilityUser,
		Body:     "hello",
	})
	if m.Priority != 14 {
		t.Errorf("Priority = %d, want 14", m.Priority)
	}
	if m.Timestamp.IsZero() {
		t.Error("Timestamp not defaulted")
	}
	if m.Hostname == "" {
		t.Error("Hostname not defaulted")
	}
}

func TestBuildKeepsExplicitFields(t *testing.T) {
	ts := fixedTime()
	m := Build(model.Message{Timestamp: ts, Hostname: "cte-gw", Body: "x"})
	if !m.Timestamp.Equal(ts) {
		t.Errorf("Timestamp = %v, want %v", m.Timestamp, ts)
	}
	if m.Hostname != "cte-gw" {
		t.Errorf("Hostname = %q, want cte-gw", m.Hostname)
	}
}

func TestFramePrefixes(t *testing.T) {
	if got := string(frame([]byte("hi"), OctetCounting)); got != "2 hi" {
		t.Errorf("octet-counting frame = %q, want %q", got, "2 hi")
	}
	if got := string(frame([]byte("hi"), NonTransparent)); got != "2hi" {
		t.Errorf("non-transparent frame = %q, want %q", got, "2hi")
	}
}

func TestEncodeDatagramTruncatesAtMaxLenMinusOne(t *testing.T) {
	m := Message{Priority: 14, Timestamp: fixedTime(), Hostname: "h", Body: strings.Repeat("x", 500)}
	got, truncated := m.EncodeDatagram(100)
	if !truncated {
		t.Fatal("expected truncation")
	}
	// Hard cut at byte maxLen-1, no prefix accounting.
	if len(got) != 99 {
		t.Fatalf("len = %d, want 99", len(got))
	}
	full := m.Encode()
	if string(got) != string(full[:99]) {
		t.Error("truncation did not preserve the encoded prefix")
	}
}

func TestEncodeDatagramNoCutWhenWithinCap(t *testing.T) {
	m := Message{Priority: 14, Timestamp: fixedTime(), Hostname: "h", Body: "ok"}
	got, truncated := m.EncodeDatagram(2048)
	if truncated {
		t.Fatal("unexpected truncation")
	}
	if string(got) != string(m.Encode()) {
		t.Error("payload altered without truncation")
	}
}

func TestEncodeFramePrefixMatchesPayloadLength(t *testing.T) {
	m := Message{Priority: 14, Timestamp: fixedTime(), Hostname: "host01", Body: "disk online"}
	payload := m.Encode()

	got, truncated := m.EncodeFrame(OctetCounting, 2048)
	if truncated {
		t.Fatal("unexpected truncation")
	}
	wantPrefix := strconv.Itoa(len(payload)) + " "
	if !strings.HasPrefix(string(got), wantPrefix) {
		t.Fatalf("frame %q does not start with %q", got, wantPrefix)
	}
	if !strings.HasSuffix(string(got), string(payload)) {
		t.Fatal("frame does not carry the full payload")
	}
}

func TestEncodeFrameTruncationNeverExceedsMaxLen(t *testing.T) {
	for _, framing := range []Framing{OctetCounting, NonTransparent} {
		for _, maxLen := range []int{32, 64, 100, 1000} {
			m := Message{
				Priority:  14,
				Timestamp: fixedTime(),
				Hostname:  "host01",
				Body:      strings.Repeat("y", 2*maxLen),
			}
			got, truncated := m.EncodeFrame(framing, maxLen)
			if !truncated {
				t.Errorf("%s maxLen=%d: expected truncation", framing, maxLen)
			}
			if len(got) > maxLen {
				t.Errorf("%s maxLen=%d: frame length %d exceeds cap", framing, maxLen, len(got))
			}
		}
	}
}

func TestEncodeFrameTruncationKeepsValidPrefix(t *testing.T) {
	m := Message{Priority: 14, Timestamp: fixedTime(), Hostname: "host01", Body: strings.Repeat("y", 500)}
	got, _ := m.EncodeFrame(OctetCounting, 128)

	// Frame must still parse: "<len> <payload>" with len matching payload.
	s := string(got)
	i := strings.IndexByte(s, ' ')
	if i < 1 {
		t.Fatalf("frame %q has no length prefix", s)
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		t.Fatalf("prefix %q is not a number: %v", s[:i], err)
	}
	payload := s[i+1:]
	if len(payload) != n {
		t.Fatalf("prefix says %d bytes, payload has %d", n, len(payload))
	}
	if !strings.HasPrefix(payload, "<14>") {
		t.Errorf("truncated payload lost its priority prefix: %q", payload[:10])
	}
}

func TestEncodeFrameZeroMaxLenDisablesCap(t *testing.T) {
	m := Message{Priority: 14, Timestamp: fixedTime(), Hostname: "h", Body: strings.Repeat("z", 5000)}
	_, truncated := m.EncodeFrame(OctetCounting, 0)
	if truncated {
		t.Fatal("maxLen 0 must disable truncation")
	}
}

func TestParseFraming(t *testing.T) {
	tests := []struct {
		in      string
		want    Framing
		wantErr bool
	}{
		{"", OctetCounting, false},
		{"octet-counting", OctetCounting, false},
		{"non-transparent-framing", NonTransparent, false},
		{"non-transparent", NonTransparent, false},
		{"length-prefixed", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseFraming(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseFraming(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFraming(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFraming(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
