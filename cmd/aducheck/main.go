// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"fmt"
	"log/slog"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/netdata/aducheck/logger"
	"github.com/netdata/aducheck/pkg/aduconfig"
	"github.com/netdata/aducheck/pkg/buildinfo"
	"github.com/netdata/aducheck/pkg/check"
	"github.com/netdata/aducheck/pkg/cli"
)

// exitFatal is returned for usage and input errors; it differs from every Nagios state.
const exitFatal = 4

const envLogLevel = "ADUCHECK_LOG_LEVEL"

func main() {
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	opts := parseCLI()

	if opts.Version {
		fmt.Printf("%s, version: %s\n", cli.Name, buildinfo.Version)
		return
	}

	if lvl := os.Getenv(envLogLevel); lvl != "" && !logger.Level.SetByName(lvl) {
		fmt.Fprintf(os.Stderr, "%s: ignoring unknown %s '%s'\n", cli.Name, envLogLevel, lvl)
	}
	if opts.Debug {
		logger.Level.Set(slog.LevelDebug)
	}

	log := logger.New().With("component", cli.Name)
	log.Debugf("build: %s", buildinfo.Info())

	cfg, err := aduconfig.FromOptions(opts)
	if err != nil {
		fatal(err)
	}

	if cfg.Dump {
		if err := check.Dump(cfg, os.Stdout, log); err != nil {
			fatal(err)
		}
		return
	}

	status, err := check.Run(cfg, os.Stdout, log)
	if err != nil {
		fatal(err)
	}

	os.Exit(status.ExitCode())
}

func parseCLI() *cli.Option {
	opt, err := cli.Parse(os.Args[1:])
	if err != nil {
		if cli.IsHelp(err) {
			os.Exit(0)
		}
		os.Exit(exitFatal)
	}

	return opt
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", cli.Name, err)
	os.Exit(exitFatal)
}
