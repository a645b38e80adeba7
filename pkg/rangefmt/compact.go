// SPDX-License-Identifier: GPL-3.0-or-later

// Package rangefmt compacts lists of labels that differ only in a trailing
// number, e.g. drive locations, into bracketed range expressions:
//
//	Physical Drive (4 TB SAS HDD) 1I:1:32
//	Physical Drive (4 TB SAS HDD) 1I:1:33      =>  Physical Drive (4 TB SAS HDD) 1I:1:[32-34,37]
//	Physical Drive (4 TB SAS HDD) 1I:1:34
//	Physical Drive (4 TB SAS HDD) 1I:1:37
package rangefmt

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

type group struct {
	prefix string
	width  int // zero unless the numbers are zero padded
	nums   []int
}

func (g *group) key() string {
	return g.prefix + "\x00" + strconv.Itoa(g.width)
}

// Compact returns labels as a ", " separated list of range expressions.
// Groups keep the order in which their first label appears; duplicate labels collapse.
func Compact(labels []string) string {
	var (
		groups []*group
		byKey  = make(map[string]*group)
		seen   = make(map[string]bool)
		parts  []string
	)

	for _, label := range labels {
		prefix, num, width, ok := splitTrailingNumber(label)
		if !ok {
			if seen[label] {
				continue
			}
			seen[label] = true
			parts = append(parts, label)
			groups = append(groups, nil)
			continue
		}

		g := &group{prefix: prefix, width: width}
		if v, ok := byKey[g.key()]; ok {
			v.nums = append(v.nums, num)
			continue
		}
		g.nums = []int{num}
		byKey[g.key()] = g
		groups = append(groups, g)
		parts = append(parts, "")
	}

	for i, g := range groups {
		if g != nil {
			parts[i] = g.format()
		}
	}

	return strings.Join(parts, ", ")
}

func (g *group) format() string {
	slices.Sort(g.nums)
	nums := slices.Compact(g.nums)

	if len(nums) == 1 {
		return g.prefix + g.itoa(nums[0])
	}

	var spans []string
	for start := 0; start < len(nums); {
		end := start
		for end+1 < len(nums) && nums[end+1] == nums[end]+1 {
			end++
		}
		if start == end {
			spans = append(spans, g.itoa(nums[start]))
		} else {
			spans = append(spans, g.itoa(nums[start])+"-"+g.itoa(nums[end]))
		}
		start = end + 1
	}

	return g.prefix + "[" + strings.Join(spans, ",") + "]"
}

func (g *group) itoa(n int) string {
	if g.width > 0 {
		return fmt.Sprintf("%0*d", g.width, n)
	}
	return strconv.Itoa(n)
}

func splitTrailingNumber(s string) (prefix string, num, width int, ok bool) {
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	digits := s[i:]
	if digits == "" || len(digits) > 9 {
		return "", 0, 0, false
	}

	n, err := strconv.Atoi(digits)
	if err != nil {
		return "", 0, 0, false
	}
	if len(digits) > 1 && digits[0] == '0' {
		width = len(digits)
	}

	return s[:i], n, width, true
}
