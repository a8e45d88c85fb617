package model

import "time"

// Message is the unit of work flowing through devsink — one device-management
// event on its way to one or more sinks.
type Message struct {
	Timestamp time.Time
	Hostname  string // reporting host; sinks fall back to os.Hostname when empty
	Component string // originating component/app name
	Device    string // normalized device identifier, when known
	Severity  Severity
	Facility  Facility
	Body      string // message text
}
