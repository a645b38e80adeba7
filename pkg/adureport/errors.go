// SPDX-License-Identifier: GPL-3.0-or-later

package adureport

import (
	"errors"
	"fmt"
)

var (
	ErrNotADUReport = errors.New("not an ADU report")
	ErrLabelFormat  = errors.New("unexpected physical drive label format")
)

// LabelError is returned when a physical drive label does not carry the
// "Physical Drive (<size> <unit> <bus> <media>) <location>" prefix.
type LabelError struct {
	Label  string
	Tokens int
}

func (e *LabelError) Error() string {
	return fmt.Sprintf("physical drive label '%s': want at least %d fields, got %d",
		e.Label, shortIDField+1, e.Tokens)
}

func (e *LabelError) Unwrap() error { return ErrLabelFormat }
