package types

import "strings"

// Severity is the patient transport priority. Exactly one value is
// active at a time; the demo defaults to critical.
type Severity string

const (
	Critical Severity = "critical"
	Stable   Severity = "stable"
)

// ParseSeverity normalizes free-form input to a known severity.
// Anything unrecognized falls back to Critical, matching the default.
func ParseSeverity(s string) Severity {
	if strings.EqualFold(strings.TrimSpace(s), string(Stable)) {
		return Stable
	}
	return Critical
}
