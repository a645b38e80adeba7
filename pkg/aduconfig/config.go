// SPDX-License-Identifier: GPL-3.0-or-later

package aduconfig

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/netdata/aducheck/pkg/adureport"
	"github.com/netdata/aducheck/pkg/cli"
)

const (
	StatsAreaReset   = "reset"
	StatsAreaFactory = "factory"
)

type Config struct {
	Counter                  string `yaml:"counter" json:"counter"`
	StatsArea                string `yaml:"stats_area,omitempty" json:"stats_area"`
	JSONFile                 string `yaml:"json_file,omitempty" json:"json_file"`
	JSONStdout               bool   `yaml:"json_stdout" json:"json_stdout"`
	NegativeIsBad            bool   `yaml:"negative_is_bad" json:"negative_is_bad"`
	SixIsBad                 bool   `yaml:"six_is_bad" json:"six_is_bad"`
	ChassisMismatchIsWarning bool   `yaml:"chassis_mismatch_is_warning" json:"chassis_mismatch_is_warning"`
	Host                     string `yaml:"host,omitempty" json:"host"`
	Verbose                  bool   `yaml:"verbose" json:"verbose"`
	BeforeReport             string `yaml:"before_report,omitempty" json:"before_report"`
	AfterReport              string `yaml:"after_report,omitempty" json:"after_report"`

	Dump bool `yaml:"-" json:"-"`
}

func Default() Config {
	return Config{
		StatsArea: StatsAreaReset,
	}
}

// Load reads a YAML config file on top of the defaults. Unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()

	bs, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.UnmarshalStrict(bs, &cfg); err != nil {
		return cfg, fmt.Errorf("config '%s': %v", path, err)
	}

	return cfg, nil
}

// FromOptions builds the run configuration: defaults, then the config file
// if one is given, then command line options. Boolean options can only switch a setting on.
func FromOptions(opt *cli.Option) (Config, error) {
	cfg := Default()
	if opt.ConfigFile != "" {
		v, err := Load(opt.ConfigFile)
		if err != nil {
			return cfg, err
		}
		cfg = v
	}

	if opt.Counter != "" {
		cfg.Counter = opt.Counter
	}
	if opt.Factory {
		cfg.StatsArea = StatsAreaFactory
	}
	if opt.JSONFile != "" {
		cfg.JSONFile = opt.JSONFile
	}
	if opt.Host != "" {
		cfg.Host = opt.Host
	}
	cfg.JSONStdout = cfg.JSONStdout || opt.JSON
	cfg.NegativeIsBad = cfg.NegativeIsBad || opt.NegativeIsBad
	cfg.SixIsBad = cfg.SixIsBad || opt.SixIsBad
	cfg.ChassisMismatchIsWarning = cfg.ChassisMismatchIsWarning || opt.ChassisWarning
	cfg.Verbose = cfg.Verbose || opt.Verbose || opt.Debug
	cfg.Dump = opt.Dump

	switch n := len(opt.Reports); {
	case n == 2:
		cfg.BeforeReport, cfg.AfterReport = opt.Reports[0], opt.Reports[1]
	case n == 1 && opt.Dump:
		cfg.AfterReport = opt.Reports[0]
	case n > 2 || n == 1:
		return cfg, fmt.Errorf("want two report paths, got %d", n)
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if _, err := c.StatsAreaLabel(); err != nil {
		return err
	}
	if c.AfterReport == "" {
		return errors.New("'after_report' not set")
	}
	if c.Dump {
		return nil
	}
	if c.BeforeReport == "" {
		return errors.New("'before_report' not set")
	}
	if strings.TrimSpace(c.Counter) == "" {
		return errors.New("'counter' not set")
	}
	return nil
}

// StatsAreaLabel returns the report block name selected by StatsArea.
func (c Config) StatsAreaLabel() (string, error) {
	switch strings.ToLower(c.StatsArea) {
	case "", StatsAreaReset:
		return adureport.StatsAreaSinceReset, nil
	case StatsAreaFactory:
		return adureport.StatsAreaSinceFactory, nil
	default:
		return "", fmt.Errorf("invalid 'stats_area' value '%s' (want '%s' or '%s')",
			c.StatsArea, StatsAreaReset, StatsAreaFactory)
	}
}
