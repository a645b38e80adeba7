// SPDX-License-Identifier: GPL-3.0-or-later

package drivediff

import (
	"errors"
	"fmt"
)

var (
	ErrDiskMissing  = errors.New("disk missing from the earlier report")
	ErrCounterValue = errors.New("counter value is not hexadecimal")
)

type DiskMissingError struct {
	Disk string
}

func (e *DiskMissingError) Error() string {
	return fmt.Sprintf("disk '%s' is in the later report but not in the earlier one", e.Disk)
}

func (e *DiskMissingError) Unwrap() error { return ErrDiskMissing }

type CounterValueError struct {
	Disk   string
	Report string // "earlier" or "later"
	Value  string
	Err    error
}

func (e *CounterValueError) Error() string {
	return fmt.Sprintf("disk '%s': %s report value '%s' is not a hexadecimal counter: %v",
		e.Disk, e.Report, e.Value, e.Err)
}

func (e *CounterValueError) Unwrap() []error { return []error{ErrCounterValue, e.Err} }
