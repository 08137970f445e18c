// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package grinder

import (
	"fmt"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/seedgrind/background"
	"github.com/bitmark-inc/seedgrind/counter"
	"github.com/bitmark-inc/seedgrind/derivation"
	"github.com/bitmark-inc/seedgrind/fault"
	"github.com/bitmark-inc/seedgrind/matcher"
	"github.com/bitmark-inc/seedgrind/version"
)

// a block of configuration data
// this is filled in from the configuration file and command flags
type Configuration struct {
	Owner       derivation.Owner
	Target      string
	Threads     int
	ResultsFile string
	Timing      bool
}

const (
	batchSize       = 1000000 // seeds per progress accounting step
	lookAheadWindow = 1       // speculative candidates per seed
)

// globals for background processes
type grinderData struct {
	sync.RWMutex // to allow locking

	// logger
	log *logger.L

	// match output shared by all workers
	sink *sink

	// only set when stage timing was requested
	timer *stageTimer

	// advisory counters
	iterations counter.Counter
	matches    counter.Counter

	startTime time.Time

	// for background
	background *background.T

	// set once during initialise
	initialised bool
}

// global data
var globalData grinderData

// Initialise - start the search workers
func Initialise(configuration *Configuration) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("grinder")
	globalData.log.Info("starting…")
	globalData.log.Infof("version: %s", version.Version)

	if configuration.Threads < 1 {
		return fault.InvalidThreadCount
	}

	globalData.log.Infof("target: %q  threads: %d", configuration.Target, configuration.Threads)

	globalData.iterations = 0
	globalData.matches = 0

	s, err := newSink(globalData.log, configuration.ResultsFile, &globalData.matches)
	if nil != err {
		return err
	}
	globalData.sink = s

	globalData.timer = nil
	if configuration.Timing {
		globalData.timer = new(stageTimer)
	}

	// one random shift for the whole run so separate invocations
	// cover different parts of the space
	offset, err := randomOffset()
	if nil != err {
		return err
	}

	match := matcher.New(configuration.Target)
	threads := uint64(configuration.Threads)

	processes := make(background.Processes, 0, configuration.Threads)
	for i := 0; i < configuration.Threads; i += 1 {
		w := &worker{
			index: i,
			log:   logger.New(fmt.Sprintf("worker-%d", i)),
			owner: configuration.Owner,
			match: match,
			start: StartingSeed(threads, uint64(i), offset),
			sink:  globalData.sink,
		}
		if nil != globalData.timer {
			w.timer = globalData.timer
		}
		processes = append(processes, w)
	}

	globalData.startTime = time.Now()

	// all data initialised
	globalData.initialised = true

	// start background processes
	globalData.log.Info("start background…")

	globalData.background = background.Start(processes, globalData.log)

	return nil
}

// Finalise - stop all background tasks
func Finalise() error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	// stop background
	globalData.background.Stop()

	// release the results file
	globalData.sink.close()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
