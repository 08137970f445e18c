// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package grinder

import (
	"time"

	"github.com/bitmark-inc/seedgrind/counter"
)

// per stage wall clock accumulators shared by all workers
//
// durations are summed as nanosecond counts so the hot path never
// takes a lock; a nil timer disables all measurement
type stageTimer struct {
	digest counter.Counter
	curve  counter.Counter
	encode counter.Counter
}

func (st *stageTimer) AddDigest(d time.Duration) {
	st.digest.Add(uint64(d))
}

func (st *stageTimer) AddCurve(d time.Duration) {
	st.curve.Add(uint64(d))
}

func (st *stageTimer) AddEncode(d time.Duration) {
	st.encode.Add(uint64(d))
}

// snapshot - accumulated stage times so far
func (st *stageTimer) snapshot() (time.Duration, time.Duration, time.Duration) {
	return time.Duration(st.digest.Uint64()),
		time.Duration(st.curve.Uint64()),
		time.Duration(st.encode.Uint64())
}
