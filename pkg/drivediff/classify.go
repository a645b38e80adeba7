// SPDX-License-Identifier: GPL-3.0-or-later

package drivediff

import (
	"errors"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/netdata/aducheck/logger"
	"github.com/netdata/aducheck/pkg/adureport"
	"github.com/netdata/aducheck/pkg/rangefmt"
)

// rebootDelta is the increase commonly seen on a drive across a controller reboot.
const rebootDelta = 6

type Options struct {
	Counter string
	Host    string

	// NegativeIsBad counts a decreasing counter as a regression.
	NegativeIsBad bool
	// SixIsBad is accepted for compatibility; a delta of 6 is always bad.
	SixIsBad bool
	// ChassisMismatchIsWarning raises an OK result to WARNING when the
	// reports list different chassis serial numbers.
	ChassisMismatchIsWarning bool
}

type DiffRecord struct {
	Disk    string
	Before  int64
	After   int64
	Delta   int64
	Verdict Verdict
}

type Meta struct {
	Counter string `json:"counter"`
	Time1   string `json:"time1"`
	Time2   string `json:"time2"`
	Host    string `json:"host"`
}

type Result struct {
	Status Status
	Meta   Meta

	// BadDisks is sorted by label.
	BadDisks  []string
	NoChange  int
	Bad       int
	Decreased int

	Records map[string]DiffRecord

	ChassisMismatch bool
	ChassisBefore   []string
	ChassisAfter    []string
}

// BadRanges returns BadDisks compacted into range expressions.
func (r *Result) BadRanges() string {
	return rangefmt.Compact(r.BadDisks)
}

// Classify compares the counter of every disk in after with its value in before.
//
// A disk that is only in after, or a value that is not hexadecimal, aborts the
// comparison: no partial result is returned.
func Classify(before, after *adureport.Summary, opts Options, log *logger.Logger) (*Result, error) {
	if before == nil || after == nil {
		return nil, errors.New("both report summaries are required")
	}

	res := &Result{
		Meta: Meta{
			Counter: opts.Counter,
			Time1:   before.GeneratedAt,
			Time2:   after.GeneratedAt,
			Host:    opts.Host,
		},
		Records:       make(map[string]DiffRecord, len(after.Counters)),
		ChassisBefore: before.ChassisSerials,
		ChassisAfter:  after.ChassisSerials,
	}

	if !slices.Equal(before.ChassisSerials, after.ChassisSerials) {
		res.ChassisMismatch = true
		log.Warningf("comparing different chassis: %v vs %v", before.ChassisSerials, after.ChassisSerials)
	}

	checkReportOrder(before.GeneratedAt, after.GeneratedAt, log)

	for _, disk := range slices.Sorted(maps.Keys(after.Counters)) {
		rawBefore, ok := before.Counters[disk]
		if !ok {
			return nil, &DiskMissingError{Disk: disk}
		}

		v1, err := parseCounter(rawBefore)
		if err != nil {
			return nil, &CounterValueError{Disk: disk, Report: "earlier", Value: rawBefore, Err: err}
		}
		v2, err := parseCounter(after.Counters[disk])
		if err != nil {
			return nil, &CounterValueError{Disk: disk, Report: "later", Value: after.Counters[disk], Err: err}
		}

		rec := DiffRecord{Disk: disk, Before: v1, After: v2, Delta: v2 - v1}

		switch {
		case rec.Delta == 0:
			res.NoChange++
		case rec.Delta < 0:
			res.Decreased++
			if opts.NegativeIsBad {
				rec.Verdict = VerdictBad
			} else {
				log.Debugf("'%s': %s decreased by %d, ignored", disk, opts.Counter, -rec.Delta)
			}
		case rec.Delta == rebootDelta:
			log.Debugf("'%s': delta of %d (six-is-bad=%t)", disk, rebootDelta, opts.SixIsBad)
			rec.Verdict = VerdictBad
		default:
			rec.Verdict = VerdictBad
		}

		if rec.Verdict == VerdictBad {
			res.Bad++
			res.BadDisks = append(res.BadDisks, disk)
		}
		res.Records[disk] = rec
	}

	// An empty comparison and one where every counter went down are both
	// UNKNOWN: either the counter name is wrong or the counters were reset.
	switch {
	case res.Bad == 0 && res.NoChange == 0:
		res.Status = StatusUnknown
	case res.Bad == 0 && res.NoChange == len(res.Records):
		res.Status = StatusOK
		if res.ChassisMismatch && opts.ChassisMismatchIsWarning {
			res.Status = StatusWarning
		}
	default:
		res.Status = StatusCritical
	}

	return res, nil
}

// parseCounter parses an ADU counter such as "0x00000027".
func parseCounter(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	v, err := strconv.ParseUint(s, 16, 63)
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}
