// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/seedgrind/fault"
	"github.com/bitmark-inc/seedgrind/grinder"
	"github.com/bitmark-inc/seedgrind/matcher"
)

func runGrind(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)
	cfg := m.config

	// flags override the configuration file
	ownerText := cfg.Owner
	if c.IsSet("owner") {
		ownerText = c.String("owner")
	}
	target := cfg.Target
	if c.IsSet("target") {
		target = c.String("target")
	}
	threads := cfg.Threads
	if c.IsSet("threads") {
		threads = c.Int("threads")
	}
	resultsFile := cfg.ResultsFile
	if c.IsSet("results-file") {
		resultsFile = c.String("results-file")
	}
	timing := cfg.Timing
	if c.IsSet("timing") {
		timing = c.Bool("timing")
	}

	owner, err := checkOwner(ownerText)
	if nil != err {
		return err
	}

	if 0 == threads {
		threads = 1
	}
	if threads < 1 {
		return fault.InvalidThreadCount
	}

	// start logging
	if err = logger.Initialise(cfg.Logging); nil != err {
		return err
	}
	defer logger.Finalise()

	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != cfg.PidFile {
		lockFile, err := os.OpenFile(cfg.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if nil != err {
			if os.IsExist(err) {
				return fmt.Errorf("another instance is already running: %q", cfg.PidFile)
			}
			return err
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(cfg.PidFile)
	}

	// a too long target still runs, it just can never match
	if matcher.New(target).Impossible() {
		fmt.Fprintf(m.e, "warning: target %q is longer than any encoded address\n", target)
		log.Warnf("impossible target: %q", target)
	}

	fmt.Fprintf(m.w, "looking for u64 seeds that give %s... for program %s\n", target, owner)

	err = grinder.Initialise(&grinder.Configuration{
		Owner:       owner,
		Target:      target,
		Threads:     threads,
		ResultsFile: resultsFile,
		Timing:      timing,
	})
	if nil != err {
		return err
	}
	defer grinder.Finalise()

	// wait for CTRL-C before shutting down to allow manual testing
	if !m.quiet {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if !m.quiet {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down...\n")
	}

	return nil
}
