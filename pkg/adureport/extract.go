// SPDX-License-Identifier: GPL-3.0-or-later

package adureport

import (
	"strings"

	"github.com/netdata/aducheck/logger"
)

const (
	StatsAreaSinceReset   = "Monitor and Performance Statistics (Since Reset)"
	StatsAreaSinceFactory = "Monitor and Performance Statistics (Since Factory)"

	idTimeGenerated       = "Time Generated"
	idSubSystemParameters = "SubSystem Parameters"
	idChassisSerialNumber = "Chassis Serial Number"

	deviceTypePhysicalDrive = "PhysicalDrive"
)

// shortIDField is the position of the port:box:bay location in
// "Physical Drive (4 TB SAS HDD) 1I:1:32".
const shortIDField = 6

// Summary is the per drive counter view of one report.
type Summary struct {
	// Counters maps the full drive label to the raw counter value ("0x00000027").
	Counters map[string]string
	// ShortCounters maps the drive location ("1I:1:32") to the same value.
	ShortCounters  map[string]string
	ChassisSerials []string
	GeneratedAt    string
}

func newSummary() *Summary {
	return &Summary{
		Counters:      make(map[string]string),
		ShortCounters: make(map[string]string),
	}
}

// ShortID returns the drive location part of a physical drive label.
func ShortID(label string) (string, error) {
	fields := strings.Fields(label)
	if len(fields) <= shortIDField {
		return "", &LabelError{Label: label, Tokens: len(fields)}
	}
	return fields[shortIDField], nil
}

// Extract collects the value of counter from the statsArea block of every
// physical drive in the report.
//
// Drives without the block or the counter are left out. The only error is a
// physical drive label that ShortID cannot split.
func Extract(root *Node, counter, statsArea string, log *logger.Logger) (*Summary, error) {
	sum := newSummary()

	err := walkPhysicalDrives(root, sum, log, func(label string, pd *Node) error {
		shortID, err := ShortID(label)
		if err != nil {
			return err
		}

		area := pd.ChildByID(statsArea)
		if area == nil {
			log.Debugf("'%s': no '%s' block", label, statsArea)
			return nil
		}

		entry := area.ChildByID(counter)
		if entry == nil {
			log.Debugf("'%s': no '%s' entry in '%s'", label, counter, statsArea)
			return nil
		}

		value, ok := entry.Value()
		if !ok {
			log.Debugf("'%s': '%s' entry has no value", label, counter)
			return nil
		}

		log.Debugf("%s : %s", label, value)

		if prev, ok := sum.ShortCounters[shortID]; ok {
			log.Warningf("drive location '%s' seen twice (previous value %s, label '%s')", shortID, prev, label)
		}
		sum.Counters[label] = value
		sum.ShortCounters[shortID] = value

		return nil
	})
	if err != nil {
		return nil, err
	}

	return sum, nil
}

// ExtractAll returns every counter with a value in the statsArea block, per
// physical drive label.
func ExtractAll(root *Node, statsArea string, log *logger.Logger) map[string]map[string]string {
	drives := make(map[string]map[string]string)

	_ = walkPhysicalDrives(root, newSummary(), log, func(label string, pd *Node) error {
		counters := make(map[string]string)
		drives[label] = counters

		for _, e := range pd.ChildByID(statsArea).childrenOrNil() {
			id, ok := e.ID()
			if !ok {
				continue
			}
			v, ok := e.Value()
			if !ok {
				log.Debugf("'%s': no value for '%s'", label, id)
				continue
			}
			counters[id] = v
		}
		return nil
	})

	return drives
}

func (n *Node) childrenOrNil() []*Node {
	if n == nil {
		return nil
	}
	return n.Children
}

// walkPhysicalDrives fills the report level fields of sum and calls fn for
// every labelled physical drive found under a controller's arrays and enclosures.
func walkPhysicalDrives(root *Node, sum *Summary, log *logger.Logger, fn func(label string, pd *Node) error) error {
	if root == nil {
		return nil
	}

	for _, top := range root.Children {
		switch top.Kind {
		case KindMetaProperty:
			if id, _ := top.ID(); id == idTimeGenerated {
				sum.GeneratedAt, _ = top.Value()
			}
		case KindDevice:
			if err := walkController(top, sum, log, fn); err != nil {
				return err
			}
		}
	}

	return nil
}

func walkController(cntrl *Node, sum *Summary, log *logger.Logger, fn func(string, *Node) error) error {
	for _, child := range cntrl.Children {
		switch child.Kind {
		case KindMetaStructure:
			if id, _ := child.ID(); id != idSubSystemParameters {
				continue
			}
			for _, param := range child.Children {
				if id, _ := param.ID(); id != idChassisSerialNumber {
					continue
				}
				if v, ok := param.Value(); ok {
					sum.ChassisSerials = append(sum.ChassisSerials, v)
				}
			}
		case KindDevice:
			for _, dev := range child.Children {
				devType, ok := dev.DeviceType()
				if !ok {
					if len(dev.Attrs) > 0 {
						log.Debugf("no deviceType for: %v", dev.Attrs)
					}
					continue
				}
				if devType != deviceTypePhysicalDrive {
					continue
				}

				label, ok := dev.MarketingName()
				if !ok {
					log.Warningf("skipping physical drive without marketingName: %v", dev.Attrs)
					continue
				}

				if err := fn(label, dev); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
