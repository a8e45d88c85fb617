package syslog

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/seralba/devsink/internal/model"
)

// TimestampLayout is the wire timestamp format carried in every message.
const TimestampLayout = "2006:01:02:-15:04:05 -07:00"

// DefaultMaxLen is the encoded-message size cap applied when none is configured.
const DefaultMaxLen = 2048

// Framing selects the RFC 6587 TCP framing mode.
type Framing int

const (
	// OctetCounting prefixes each frame with its byte length and a space.
	OctetCounting Framing = iota
	// NonTransparent prefixes the byte length with no separator.
	NonTransparent
)

// String returns the framing name as used in configuration.
func (f Framing) String() string {
	if f == NonTransparent {
		return "non-transparent-framing"
	}
	return "octet-counting"
}

// ParseFraming converts a configuration string to a Framing mode.
func ParseFraming(s string) (Framing, error) {
	switch s {
	case "", "octet-counting":
		return OctetCounting, nil
	case "non-transparent-framing", "non-transparent":
		return NonTransparent, nil
	}
	return 0, fmt.Errorf("unknown framing %q", s)
}

// Message is a fully resolved wire message. Construct with Build; immutable
// once built.
type Message struct {
	Priority  int // facility*8 + severity
	Timestamp time.Time
	Hostname  string
	Body      string
}

// Priority combines facility and severity into the single wire priority value.
func Priority(f model.Facility, s model.Severity) int {
	return int(f)*8 + int(s)
}

// Build resolves a model.Message into a wire Message, filling defaults for
// zero-value fields: current time and the local host name.
func Build(m model.Message) Message {
	ts := m.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	host := m.Hostname
	if host == "" {
		host = localHostname()
	}
	return Message{
		Priority:  Priority(m.Facility, m.Severity),
		Timestamp: ts,
		Hostname:  host,
		Body:      m.Body,
	}
}

// Encode renders the message in its wire form:
//
//	<priority>timestamp hostname message
func (m Message) Encode() []byte {
	return []byte(fmt.Sprintf("<%d>%s %s %s",
		m.Priority, m.Timestamp.Format(TimestampLayout), m.Hostname, m.Body))
}

// EncodeDatagram returns the UDP payload. Oversize payloads are hard-cut at
// byte maxLen-1, with no prefix accounting. The second return reports whether
// a cut happened.
func (m Message) EncodeDatagram(maxLen int) ([]byte, bool) {
	b := m.Encode()
	if maxLen > 0 && len(b) > maxLen {
		return b[:maxLen-1], true
	}
	return b, false
}

// EncodeFrame returns the TCP frame: the payload byte length, the framing
// separator, then the payload. When the full frame would exceed maxLen, the
// payload is cut so the frame fits.
//
// The cut point budgets the prefix at the digit width of maxLen rather than
// of the resulting length, so a truncated frame can land a byte or two under
// maxLen when the actual prefix is narrower. The frame never exceeds maxLen.
func (m Message) EncodeFrame(framing Framing, maxLen int) ([]byte, bool) {
	payload := m.Encode()
	truncated := false
	if maxLen > 0 && frameLen(len(payload), framing) > maxLen {
		width := len(strconv.Itoa(maxLen))
		if framing == OctetCounting {
			width++ // the separating space
		}
		cut := maxLen - width
		if cut < 0 {
			cut = 0
		}
		payload = payload[:cut]
		truncated = true
	}
	return frame(payload, framing), truncated
}

// frame prepends the payload byte length: "2 hi" under octet-counting,
// "2hi" under non-transparent framing.
func frame(payload []byte, framing Framing) []byte {
	prefix := strconv.Itoa(len(payload))
	if framing == OctetCounting {
		prefix += " "
	}
	return append([]byte(prefix), payload...)
}

// frameLen is the encoded frame size for a payload of n bytes.
func frameLen(n int, framing Framing) int {
	l := len(strconv.Itoa(n)) + n
	if framing == OctetCounting {
		l++
	}
	return l
}

func localHostname() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		return "localhost"
	}
	return host
}
