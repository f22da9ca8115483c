// Package severity provides the severity levels attached to lint findings.
//
// The levels are ordered from least to most severe: Info < Warning.
package severity

// Severity indicates how much attention a finding deserves.
type Severity int

const (
	// SeverityInfo marks a legal but unusual construct, such as a
	// non-standard HTTP status code.
	SeverityInfo Severity = iota

	// SeverityWarning marks a construct that decodes cleanly but is likely
	// a mistake, such as a required property that is never declared.
	SeverityWarning
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}
