package devname

import (
	"fmt"
	"regexp"
	"strings"
)

// Name is a validated device identifier.
type Name struct {
	Raw        string
	Normalized string
	Canonical  bool // raw already equaled its normalized form
}

// ValidationError reports an identifier that matches none of the accepted
// patterns. Validation failures are fatal — no partial normalization is
// ever returned.
type ValidationError struct {
	Raw string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("device name %q matches no accepted pattern", e.Raw)
}

// Accepted patterns, checked in order; first match wins. All matching is
// case-insensitive and anchored to the whole string.
var (
	canonical       = regexp.MustCompile(`^(?i)CTE-(\d{3})-V(\d{4,5})$`)
	canonicalExt    = regexp.MustCompile(`^(?i)CTE-V(\d{3,4})-V(\d{5})$`)
	compact         = regexp.MustCompile(`^(?i)CTE(\d{3})V(\d{4,5})$`)
	extendedCompact = regexp.MustCompile(`^(?i)CTEV(\d{3,4})V(\d{5})$`)
)

// Parse validates raw against the accepted device-name patterns and returns
// its canonical form. Already-canonical names are uppercased as-is; compact
// forms are rewritten with hyphens; the extended compact form
// CTEVdddVddddd becomes CTE-Vddd-Vddddd.
func Parse(raw string) (Name, error) {
	switch {
	case canonical.MatchString(raw), canonicalExt.MatchString(raw):
		norm := strings.ToUpper(raw)
		return Name{Raw: raw, Normalized: norm, Canonical: raw == norm}, nil
	case compact.MatchString(raw):
		m := compact.FindStringSubmatch(raw)
		return Name{Raw: raw, Normalized: fmt.Sprintf("CTE-%s-V%s", m[1], m[2])}, nil
	case extendedCompact.MatchString(raw):
		m := extendedCompact.FindStringSubmatch(raw)
		return Name{Raw: raw, Normalized: fmt.Sprintf("CTE-V%s-V%s", m[1], m[2])}, nil
	}
	return Name{}, &ValidationError{Raw: raw}
}

// Normalize returns the canonical form of raw, or a *ValidationError when it
// matches no accepted pattern. Idempotent over all accepted inputs.
func Normalize(raw string) (string, error) {
	n, err := Parse(raw)
	if err != nil {
		return "", err
	}
	return n.Normalized, nil
}
