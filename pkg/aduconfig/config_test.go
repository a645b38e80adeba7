// SPDX-License-Identifier: GPL-3.0-or-later

package aduconfig

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netdata/aducheck/pkg/adureport"
	"github.com/netdata/aducheck/pkg/cli"
)

var (
	dataConfigYAML, _     = os.ReadFile("testdata/config.yaml")
	dataUnknownKeyYAML, _ = os.ReadFile("testdata/unknown-key.yaml")
)

func Test_testDataIsValid(t *testing.T) {
	for name, data := range map[string][]byte{
		"dataConfigYAML":     dataConfigYAML,
		"dataUnknownKeyYAML": dataUnknownKeyYAML,
	} {
		require.NotNil(t, data, name)
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load("testdata/config.yaml")
	require.NoError(t, err)

	assert.Equal(t, Config{
		Counter:                  "Bus Faults",
		StatsArea:                StatsAreaFactory,
		JSONFile:                 "/var/lib/aducheck/history.json",
		JSONStdout:               true,
		NegativeIsBad:            true,
		ChassisMismatchIsWarning: true,
		Host:                     "storage-01",
		BeforeReport:             "/var/lib/aducheck/5ADUReport.xml",
		AfterReport:              "/var/lib/aducheck/6ADUReport.xml",
	}, cfg)

	_, err = Load("testdata/unknown-key.yaml")
	assert.Error(t, err)

	_, err = Load("testdata/missing.yaml")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFromOptions(t *testing.T) {
	tests := map[string]struct {
		opt     cli.Option
		want    Config
		wantErr bool
	}{
		"command line only": {
			opt: cli.Option{Counter: "Bus Faults", Reports: []string{"a.xml", "b.xml"}},
			want: Config{
				Counter:      "Bus Faults",
				StatsArea:    StatsAreaReset,
				BeforeReport: "a.xml",
				AfterReport:  "b.xml",
			},
		},
		"debug implies verbose": {
			opt: cli.Option{Counter: "Bus Faults", Debug: true, Factory: true, Reports: []string{"a.xml", "b.xml"}},
			want: Config{
				Counter:      "Bus Faults",
				StatsArea:    StatsAreaFactory,
				Verbose:      true,
				BeforeReport: "a.xml",
				AfterReport:  "b.xml",
			},
		},
		"command line overrides config file": {
			opt: cli.Option{
				ConfigFile: "testdata/config.yaml",
				Counter:    "Hardware Errors",
				Host:       "storage-02",
				SixIsBad:   true,
				Reports:    []string{"a.xml", "b.xml"},
			},
			want: Config{
				Counter:                  "Hardware Errors",
				StatsArea:                StatsAreaFactory,
				JSONFile:                 "/var/lib/aducheck/history.json",
				JSONStdout:               true,
				NegativeIsBad:            true,
				SixIsBad:                 true,
				ChassisMismatchIsWarning: true,
				Host:                     "storage-02",
				BeforeReport:             "a.xml",
				AfterReport:              "b.xml",
			},
		},
		"reports from config file": {
			opt: cli.Option{ConfigFile: "testdata/config.yaml"},
			want: Config{
				Counter:                  "Bus Faults",
				StatsArea:                StatsAreaFactory,
				JSONFile:                 "/var/lib/aducheck/history.json",
				JSONStdout:               true,
				NegativeIsBad:            true,
				ChassisMismatchIsWarning: true,
				Host:                     "storage-01",
				BeforeReport:             "/var/lib/aducheck/5ADUReport.xml",
				AfterReport:              "/var/lib/aducheck/6ADUReport.xml",
			},
		},
		"dump with a single report": {
			opt: cli.Option{Dump: true, Reports: []string{"b.xml"}},
			want: Config{
				StatsArea:   StatsAreaReset,
				AfterReport: "b.xml",
				Dump:        true,
			},
		},
		"missing counter": {
			opt:     cli.Option{Reports: []string{"a.xml", "b.xml"}},
			wantErr: true,
		},
		"single report": {
			opt:     cli.Option{Counter: "Bus Faults", Reports: []string{"a.xml"}},
			wantErr: true,
		},
		"three reports": {
			opt:     cli.Option{Counter: "Bus Faults", Reports: []string{"a.xml", "b.xml", "c.xml"}},
			wantErr: true,
		},
		"no reports": {
			opt:     cli.Option{Counter: "Bus Faults"},
			wantErr: true,
		},
		"bad config file": {
			opt:     cli.Option{ConfigFile: "testdata/unknown-key.yaml", Reports: []string{"a.xml", "b.xml"}},
			wantErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			cfg, err := FromOptions(&test.opt)

			if test.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.want, cfg)
		})
	}
}

func TestConfig_StatsAreaLabel(t *testing.T) {
	tests := map[string]struct {
		area    string
		want    string
		wantErr bool
	}{
		"default": {area: "", want: adureport.StatsAreaSinceReset},
		"reset":   {area: "reset", want: adureport.StatsAreaSinceReset},
		"factory": {area: "Factory", want: adureport.StatsAreaSinceFactory},
		"invalid": {area: "boot", wantErr: true},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			label, err := Config{StatsArea: test.area}.StatsAreaLabel()

			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, label)
		})
	}
}
