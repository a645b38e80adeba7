// SPDX-License-Identifier: GPL-3.0-or-later

package drivediff

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/netdata/aducheck/logger"
)

// checkReportOrder warns when the earlier report was generated after the later one.
func checkReportOrder(time1, time2 string, log *logger.Logger) {
	t1, err := parseGeneratedAt(time1)
	if err != nil {
		log.Debugf("can not parse report time '%s': %v", time1, err)
		return
	}
	t2, err := parseGeneratedAt(time2)
	if err != nil {
		log.Debugf("can not parse report time '%s': %v", time2, err)
		return
	}
	if t1.After(t2) {
		log.Warningf("the earlier report (%s) was generated after the later one (%s)", time1, time2)
	}
}

// parseGeneratedAt parses the ADU "Time Generated" value, e.g. "Monday November 14, 2016 10:37:26AM".
func parseGeneratedAt(s string) (time.Time, error) {
	return dateparse.ParseIn(normalizeGeneratedAt(s), time.UTC)
}

func normalizeGeneratedAt(s string) string {
	fields := strings.Fields(s)
	if len(fields) > 1 && isWeekday(strings.TrimSuffix(fields[0], ",")) {
		fields = fields[1:]
	}
	if n := len(fields); n > 0 {
		last := fields[n-1]
		upper := strings.ToUpper(last)
		if len(last) > 2 && (strings.HasSuffix(upper, "AM") || strings.HasSuffix(upper, "PM")) {
			fields = append(fields[:n-1], last[:len(last)-2], upper[len(upper)-2:])
		}
	}
	return strings.Join(fields, " ")
}

func isWeekday(s string) bool {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(s, d.String()) || strings.EqualFold(s, d.String()[:3]) {
			return true
		}
	}
	return false
}
