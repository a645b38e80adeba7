// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"github.com/jessevdk/go-flags"
)

const Name = "aducheck"

// Option defines command line options.
type Option struct {
	Counter        string `short:"c" long:"counter" description:"counter to track, e.g. 'Bus Faults'"`
	Factory        bool   `short:"f" long:"factory" description:"use the 'Since Factory' statistics instead of 'Since Reset'"`
	ConfigFile     string `short:"C" long:"config" description:"YAML config file"`
	JSONFile       string `short:"j" long:"json-file" description:"append a JSON record to this file"`
	JSON           bool   `short:"J" long:"json" description:"print the JSON record to stdout"`
	NegativeIsBad  bool   `short:"n" long:"negative-is-bad" description:"treat a decreasing counter as a regression"`
	SixIsBad       bool   `short:"6" long:"six-is-bad" description:"accepted for compatibility, a delta of 6 is always bad"`
	ChassisWarning bool   `short:"w" long:"chassis-warning" description:"exit WARNING when chassis serial numbers differ"`
	Host           string `short:"H" long:"host" description:"host identifier for the JSON record (default: hostname)"`
	Dump           bool   `short:"D" long:"dump" description:"print every counter of the later report and exit"`
	Verbose        bool   `short:"v" long:"verbose" description:"print one line per changed disk"`
	Debug          bool   `short:"d" long:"debug" description:"debug mode"`
	Version        bool   `short:"V" long:"version" description:"display the version and exit"`

	// Reports holds the positional report paths, earlier first.
	Reports []string
}

// Parse returns parsed command-line flags in Option struct.
// args must not include the program name.
func Parse(args []string) (*Option, error) {
	opt := &Option{}
	parser := flags.NewParser(opt, flags.Default)
	parser.Name = Name
	parser.Usage = "[OPTIONS] <before.xml> <after.xml>"

	rest, err := parser.ParseArgs(args)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		opt.Reports = rest
	}

	return opt, nil
}

func IsHelp(err error) bool {
	return flags.WroteHelp(err)
}
