// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/seedgrind/util"
)

type metadata struct {
	file    string
	config  *Configuration
	verbose bool
	quiet   bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "seedgrind"
	app.Usage = "search for program derived addresses with a chosen prefix"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.BoolFlag{
			Name:  "quiet, q",
			Usage: " suppress console status output",
		},
		cli.StringFlag{
			Name:  "config-file, c",
			Value: "",
			Usage: " configuration `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "grind",
			Usage:     "scan the seed space for matching addresses",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner public `KEY` in base58",
				},
				cli.StringFlag{
					Name:  "target, t",
					Value: "",
					Usage: " address prefix `TEXT` to search for",
				},
				cli.IntFlag{
					Name:  "threads, n",
					Value: 0,
					Usage: " number of parallel workers `COUNT`",
				},
				cli.StringFlag{
					Name:  "results-file, r",
					Value: "",
					Usage: " append matches to `FILE`",
				},
				cli.BoolFlag{
					Name:  "timing",
					Usage: " accumulate per stage timing in progress reports",
				},
			},
			Action: runGrind,
		},
		{
			Name:      "check",
			Usage:     "derive the address for one owner and seed",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner public `KEY` in base58",
				},
				cli.Uint64Flag{
					Name:  "seed, s",
					Value: 0,
					Usage: "*seed `NUMBER` to derive",
				},
			},
			Action: runCheck,
		},
		{
			Name:  "version",
			Usage: "display seedgrind version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file for certain commands
		command := c.Args().Get(0)
		if "version" == command {
			return nil
		}

		file := c.GlobalString("config-file")

		var config *Configuration
		var err error
		if "" == file {
			config, err = defaultConfiguration()
		} else {
			if verbose {
				fmt.Fprintf(e, "reading config file: %s\n", file)
			}
			if !util.EnsureFileExists(file) {
				return fmt.Errorf("configuration file missing: %q", file)
			}
			config, err = getConfiguration(file)
		}
		if nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			file:    file,
			config:  config,
			verbose: verbose,
			quiet:   c.GlobalBool("quiet"),
			e:       e,
			w:       w,
		}

		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}
