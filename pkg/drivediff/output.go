// SPDX-License-Identifier: GPL-3.0-or-later

package drivediff

import (
	"fmt"
	"io"
	"maps"
	"slices"
)

// Summary returns the single status line of a check.
func (r *Result) Summary() string {
	counter := r.Meta.Counter

	switch r.Status {
	case StatusUnknown:
		if len(r.Records) > 0 {
			return fmt.Sprintf("UNKNOWN: '%s' decreased on all %d disks, counters may have been reset",
				counter, len(r.Records))
		}
		return fmt.Sprintf("UNKNOWN: no '%s' values found, check the counter name", counter)
	case StatusCritical:
		if r.Bad == 0 {
			return fmt.Sprintf("CRITICAL: '%s' decreased on %d of %d disks, counters may have been reset",
				counter, r.Decreased, len(r.Records))
		}
		return fmt.Sprintf("CRITICAL: '%s' regressed on %d of %d disks: %s",
			counter, r.Bad, len(r.Records), r.BadRanges())
	case StatusWarning:
		return fmt.Sprintf("WARNING: no regression of '%s' on %d disks, but chassis serial numbers differ",
			counter, len(r.Records))
	default:
		return fmt.Sprintf("OK: no regression of '%s' on %d disks", counter, len(r.Records))
	}
}

// WriteLines writes the human readable result to w. In verbose mode every disk
// whose counter changed is listed as "disk, value2, value1, diff" before the summary.
// A chassis mismatch is reported after the summary so a terse run always starts
// with the status line.
func WriteLines(w io.Writer, r *Result, verbose bool) error {
	if verbose {
		if _, err := fmt.Fprintln(w, "disk, value2, value1, diff"); err != nil {
			return err
		}
		for _, disk := range slices.Sorted(maps.Keys(r.Records)) {
			rec := r.Records[disk]
			if rec.Delta == 0 {
				continue
			}
			if _, err := fmt.Fprintf(w, "%s, %d, %d, %d\n", disk, rec.After, rec.Before, rec.Delta); err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprintln(w, r.Summary()); err != nil {
		return err
	}

	if r.ChassisMismatch {
		if _, err := fmt.Fprintf(w, "comparing different chassis: %v vs %v\n", r.ChassisBefore, r.ChassisAfter); err != nil {
			return err
		}
	}
	return nil
}
