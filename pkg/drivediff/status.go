// SPDX-License-Identifier: GPL-3.0-or-later

package drivediff

import "fmt"

// Status is a Nagios plugin state; its value is the process exit code.
type Status int

const (
	StatusOK Status = iota
	StatusWarning
	StatusCritical
	StatusUnknown
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusWarning:
		return "WARNING"
	case StatusCritical:
		return "CRITICAL"
	case StatusUnknown:
		return "UNKNOWN"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

func (s Status) ExitCode() int { return int(s) }

type Verdict uint8

const (
	VerdictOK Verdict = iota
	VerdictBad
)

func (v Verdict) String() string {
	if v == VerdictBad {
		return "BAD"
	}
	return "OK"
}

func (v Verdict) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}
