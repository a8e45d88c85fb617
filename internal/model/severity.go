package model

import (
	"fmt"
	"strings"
)

// Severity is an RFC 5424 severity code. The numeric values are wire values
// (priority = facility*8 + severity) and must not be reordered.
type Severity int

const (
	SeverityEmergency Severity = iota // 0
	SeverityAlert                     // 1
	SeverityCritical                  // 2
	SeverityError                     // 3
	SeverityWarning                   // 4
	SeverityNotice                    // 5
	SeverityInformational             // 6
	SeverityDebug                     // 7
)

// Facility is an RFC 5424 facility code. Wire values, same rule as Severity.
type Facility int

const (
	FacilityKernel   Facility = iota // 0
	FacilityUser                     // 1
	FacilityMail                     // 2
	FacilityDaemon                   // 3
	FacilityAuth                     // 4
	FacilitySyslog                   // 5
	FacilityLPR                      // 6
	FacilityNews                     // 7
	FacilityUUCP                     // 8
	FacilityCron                     // 9
	FacilityAuthPriv                 // 10
	FacilityFTP                      // 11
	FacilityNTP                      // 12
	FacilityAudit                    // 13
	FacilityAlert                    // 14
	FacilityClock                    // 15
	FacilityLocal0                   // 16
	FacilityLocal1                   // 17
	FacilityLocal2                   // 18
	FacilityLocal3                   // 19
	FacilityLocal4                   // 20
	FacilityLocal5                   // 21
	FacilityLocal6                   // 22
	FacilityLocal7                   // 23
)

var severityNames = []string{
	"emergency", "alert", "critical", "error", "warning", "notice", "info", "debug",
}

// String returns the lowercase severity name, or "unknown" for out-of-range values.
func (s Severity) String() string {
	if s >= 0 && int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "unknown"
}

// ParseSeverity converts a severity name to its numeric code.
// Accepts the common abbreviations ("err", "warn", "informational").
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToLower(name) {
	case "emergency", "emerg":
		return SeverityEmergency, nil
	case "alert":
		return SeverityAlert, nil
	case "critical", "crit":
		return SeverityCritical, nil
	case "error", "err":
		return SeverityError, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "notice":
		return SeverityNotice, nil
	case "info", "informational":
		return SeverityInformational, nil
	case "debug":
		return SeverityDebug, nil
	}
	return 0, fmt.Errorf("unknown severity %q", name)
}

var facilityNames = map[string]Facility{
	"kernel":   FacilityKernel,
	"user":     FacilityUser,
	"mail":     FacilityMail,
	"daemon":   FacilityDaemon,
	"auth":     FacilityAuth,
	"syslog":   FacilitySyslog,
	"lpr":      FacilityLPR,
	"news":     FacilityNews,
	"uucp":     FacilityUUCP,
	"cron":     FacilityCron,
	"authpriv": FacilityAuthPriv,
	"ftp":      FacilityFTP,
	"ntp":      FacilityNTP,
	"audit":    FacilityAudit,
	"alert":    FacilityAlert,
	"clock":    FacilityClock,
	"local0":   FacilityLocal0,
	"local1":   FacilityLocal1,
	"local2":   FacilityLocal2,
	"local3":   FacilityLocal3,
	"local4":   FacilityLocal4,
	"local5":   FacilityLocal5,
	"local6":   FacilityLocal6,
	"local7":   FacilityLocal7,
}

// ParseFacility converts a facility name to its numeric code.
func ParseFacility(name string) (Facility, error) {
	if f, ok := facilityNames[strings.ToLower(name)]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("unknown facility %q", name)
}

// String returns the lowercase facility name, or "unknown" for out-of-range values.
func (f Facility) String() string {
	for name, v := range facilityNames {
		if v == f {
			return name
		}
	}
	return "unknown"
}
