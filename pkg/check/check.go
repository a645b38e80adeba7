// SPDX-License-Identifier: GPL-3.0-or-later

// Package check runs one comparison of two ADU reports end to end.
package check

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/netdata/aducheck/logger"
	"github.com/netdata/aducheck/pkg/aduconfig"
	"github.com/netdata/aducheck/pkg/adureport"
	"github.com/netdata/aducheck/pkg/drivediff"
)

// Run compares the configured reports and writes the result to stdout and,
// if configured, to the JSON history file.
//
// The history file is appended last, so a run that fails on stdout leaves no
// record behind. On error the returned status is UNKNOWN.
func Run(cfg aduconfig.Config, stdout io.Writer, log *logger.Logger) (drivediff.Status, error) {
	area, err := cfg.StatsAreaLabel()
	if err != nil {
		return drivediff.StatusUnknown, err
	}

	before, err := loadSummary(cfg.BeforeReport, cfg.Counter, area, log)
	if err != nil {
		return drivediff.StatusUnknown, err
	}
	after, err := loadSummary(cfg.AfterReport, cfg.Counter, area, log)
	if err != nil {
		return drivediff.StatusUnknown, err
	}

	host := cfg.Host
	if host == "" {
		if host, err = os.Hostname(); err != nil {
			log.Debugf("hostname: %v", err)
		}
	}

	res, err := drivediff.Classify(before, after, drivediff.Options{
		Counter:                  cfg.Counter,
		Host:                     host,
		NegativeIsBad:            cfg.NegativeIsBad,
		SixIsBad:                 cfg.SixIsBad,
		ChassisMismatchIsWarning: cfg.ChassisMismatchIsWarning,
	}, log)
	if err != nil {
		return drivediff.StatusUnknown, err
	}

	log.Debugf("%s: %d disks, %d unchanged, %d decreased, %d bad",
		res.Status, len(res.Records), res.NoChange, res.Decreased, res.Bad)

	var record []byte
	if cfg.JSONStdout || cfg.JSONFile != "" {
		if record, err = res.Record(); err != nil {
			return drivediff.StatusUnknown, err
		}
	}

	if err := drivediff.WriteLines(stdout, res, cfg.Verbose); err != nil {
		return drivediff.StatusUnknown, err
	}
	if cfg.JSONStdout {
		if _, err := fmt.Fprintf(stdout, "%s\n", record); err != nil {
			return drivediff.StatusUnknown, err
		}
	}

	if cfg.JSONFile != "" {
		if err := drivediff.AppendRecord(cfg.JSONFile, record); err != nil {
			return drivediff.StatusUnknown, err
		}
	}

	return res.Status, nil
}

// Dump writes every counter of the later report's stats area as indented JSON.
func Dump(cfg aduconfig.Config, stdout io.Writer, log *logger.Logger) error {
	area, err := cfg.StatsAreaLabel()
	if err != nil {
		return err
	}

	root, err := adureport.ParseFile(cfg.AfterReport)
	if err != nil {
		return err
	}

	bs, err := json.MarshalIndent(adureport.ExtractAll(root, area, log.With("report", cfg.AfterReport)), "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(stdout, "%s\n", bs)
	return err
}

func loadSummary(path, counter, area string, log *logger.Logger) (*adureport.Summary, error) {
	root, err := adureport.ParseFile(path)
	if err != nil {
		return nil, err
	}

	sum, err := adureport.Extract(root, counter, area, log.With("report", path))
	if err != nil {
		return nil, fmt.Errorf("'%s': %w", path, err)
	}

	log.Debugf("'%s': %d disks with '%s', generated '%s'", path, len(sum.Counters), counter, sum.GeneratedAt)

	return sum, nil
}
