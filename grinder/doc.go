// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package grinder - parallel search over the 64 bit seed space
//
// the space is split evenly across a fixed set of workers, each
// shifted by one random offset drawn at startup.  every worker scans
// its partition seed by seed, derives the canonical address and hands
// any prefix match to a shared sink.  workers only share the sink,
// two advisory counters and an optional stage timer; everything else
// is worker private so the hot loop never contends.
//
// the search has no natural end, it runs until Finalise closes the
// shutdown channel which each worker checks once per batch.
package grinder
