package devsink

// RFC 5424 severity codes, usable in Message.Severity.
const (
	SeverityEmergency = iota
	SeverityAlert
	SeverityCritical
	SeverityError
	SeverityWarning
	SeverityNotice
	SeverityInformational
	SeverityDebug
)

// Common facility codes, usable in Message.Facility. The full 0–23 range is
// accepted; these are the ones device tooling actually uses.
const (
	FacilityKernel = 0
	FacilityUser   = 1
	FacilityDaemon = 3
	FacilityLocal0 = 16
	FacilityLocal7 = 23
)

type options struct {
	host        string
	port        int
	useTCP      bool
	framing     string
	maxLen      int
	clientName  string
	severity    int
	facility    int
	passThrough bool
}

// Option configures a Client.
type Option func(*options)

// WithTarget sets the collector host and port. Default: 127.0.0.1:514.
func WithTarget(host string, port int) Option {
	return func(o *options) {
		o.host = host
		o.port = port
	}
}

// WithTCP switches delivery to TCP with the given framing:
// "octet-counting" (default) or "non-transparent-framing".
func WithTCP(framing string) Option {
	return func(o *options) {
		o.useTCP = true
		o.framing = framing
	}
}

// WithMaxLen caps the encoded message size in bytes. Default: 2048.
// 0 disables the cap.
func WithMaxLen(n int) Option {
	return func(o *options) { o.maxLen = n }
}

// WithClientName sets the hostname stamped into messages.
// Default: the local host name at send time.
func WithClientName(name string) Option {
	return func(o *options) { o.clientName = name }
}

// WithDefaults sets the severity and facility applied to messages that
// carry none. Default: informational/user.
func WithDefaults(severity, facility int) Option {
	return func(o *options) {
		o.severity = severity
		o.facility = facility
	}
}

// WithPassThrough makes delivery failures non-fatal: SendMessage returns a
// *DeliveryError carrying the original message instead of a bare transport
// error.
func WithPassThrough() Option {
	return func(o *options) { o.passThrough = true }
}

func defaultOptions() options {
	return options{
		host:     "127.0.0.1",
		port:     514,
		maxLen:   2048,
		severity: SeverityInformational,
		facility: FacilityUser,
	}
}
