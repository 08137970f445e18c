// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package grinder

import (
	"fmt"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/seedgrind/derivation"
	"github.com/bitmark-inc/seedgrind/matcher"
)

// one independent search unit
//
// everything here is private to the worker except the sink and the
// optional timer
type worker struct {
	index int
	log   *logger.L
	owner derivation.Owner
	match matcher.Matcher
	start uint64
	sink  *sink
	timer derivation.Timer
}

// Run - scan the partition until shutdown
//
// the shutdown channel is only checked between batches so the inner
// loop stays branch free
func (w *worker) Run(args interface{}, shutdown <-chan struct{}) {

	log := w.log
	log.Info("starting…")
	log.Debugf("partition start: %d", w.start)

	preimage := derivation.NewPreimage(w.owner)
	match := w.match.Match
	seed := w.start
	batches := uint64(0)

loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}

		for i := 0; i < batchSize; i += 1 {
			seed += 1
			address, _, matched, ok := derivation.FindCanonicalWindow(&preimage, seed, lookAheadWindow, match, w.timer)
			if !ok {
				// no off-curve candidate for this seed
				continue
			}
			if matched {
				w.sink.submit(address, seed)
			}
		}
		batches += 1

		// partition zero reports for everyone, the rest publish
		// their totals through the shared counter
		if 0 == w.index {
			w.report(batches)
		} else {
			globalData.iterations.Add(batchSize)
		}
	}

	log.Info("finished")
}

// aggregate throughput of all workers
//
// the shared counter lags the other workers by up to one batch each,
// close enough for a liveness indicator
func (w *worker) report(batches uint64) {

	total := batches*batchSize + globalData.iterations.Uint64()
	seconds := uint64(time.Since(globalData.startTime) / time.Second)
	matches := globalData.matches.Uint64()

	var line string
	if nil == globalData.timer {
		line = fmt.Sprintf("%d iters in %ds; matches %d", total, seconds, matches)
	} else {
		digest, curve, encode := globalData.timer.snapshot()
		line = fmt.Sprintf("%d iters in %ds; hash %d; bs58 %d; offc %d; matches %d",
			total, seconds,
			uint64(digest/time.Second), uint64(encode/time.Second), uint64(curve/time.Second),
			matches)
	}

	fmt.Println(line)
	w.log.Info(line)
}
