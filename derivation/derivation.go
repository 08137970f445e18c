// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package derivation

import (
	"math"
	"time"
)

// bump scan limits
const (
	// highest offset tried, giving bump values 255 down to 1
	maxBumpOffset = 254

	// MaxLookAhead - upper limit for the speculative window of
	// FindCanonicalWindow; window sizes above this are clamped
	MaxLookAhead = 8
)

// Timer - optional stage instrumentation for the bump scan
//
// a nil Timer disables instrumentation and keeps the clock out of the
// scan entirely; implementations accumulate wall-clock durations and
// must be safe for concurrent callers
type Timer interface {
	AddDigest(time.Duration)
	AddCurve(time.Duration)
	AddEncode(time.Duration)
}

// FindCanonical - the canonical address for one seed
//
// scan offsets 0..254 (bump 255 descending) and stop at the first
// off-curve digest; ok is false when every bump value gives an
// on-curve digest and the seed has no derived address, which is not
// an error, merely a seed to skip
func FindCanonical(p *Preimage, seed uint64) (Address, uint8, bool) {
	address, bump, _, ok := FindCanonicalWindow(p, seed, 1, nil, nil)
	return address, bump, ok
}

// FindCanonicalWindow - canonical scan with a speculative match window
//
// the first window candidates are digested, encoded and matched ahead
// of the off-curve determination; a match signal from a speculative
// candidate is discarded unless that candidate turns out to be the
// canonical one, so the result is identical for every window size and
// matched is only ever true for the canonical address
//
// window is clamped to 1..MaxLookAhead; match may be nil to skip all
// encoding; timer may be nil to disable instrumentation
func FindCanonicalWindow(p *Preimage, seed uint64, window int, match func(string) bool, timer Timer) (Address, uint8, bool, bool) {
	if window < 1 {
		window = 1
	} else if window > MaxLookAhead {
		window = MaxLookAhead
	}

	p.SetSeed(seed)

	var aheadAddress [MaxLookAhead]Address
	var aheadMatched [MaxLookAhead]bool

	for offset := 0; offset < window; offset += 1 {
		p.SetBump(uint8(offset))
		aheadAddress[offset] = timedDigest(p, timer)
		if nil != match {
			aheadMatched[offset] = timedMatch(aheadAddress[offset], match, timer)
		}
	}

	for offset := 0; offset <= maxBumpOffset; offset += 1 {
		var address Address
		if offset < window {
			address = aheadAddress[offset]
		} else {
			p.SetBump(uint8(offset))
			address = timedDigest(p, timer)
		}

		if !timedOffCurve(address, timer) {
			continue
		}

		// first off-curve digest is the canonical address
		matched := false
		if nil != match {
			if offset < window {
				matched = aheadMatched[offset]
			} else {
				matched = timedMatch(address, match, timer)
			}
		}
		return address, uint8(math.MaxUint8 - offset), matched, true
	}

	// on-curve for the whole range: seed has no canonical address
	return Address{}, 0, false, false
}

// Derive - the canonical address for an owner and seed
//
// convenience for one-shot checks; the search engine reuses a single
// preimage instead
func Derive(owner Owner, seed uint64) (Address, uint8, bool) {
	p := NewPreimage(owner)
	return FindCanonical(&p, seed)
}

// DeriveWithBump - the candidate address for one specific bump value
func DeriveWithBump(owner Owner, seed uint64, bump uint8) Address {
	p := NewPreimage(owner)
	p.SetSeed(seed)
	p.SetBump(math.MaxUint8 - bump)
	return NewAddress(p.Bytes())
}

func timedDigest(p *Preimage, timer Timer) Address {
	if nil == timer {
		return NewAddress(p.Bytes())
	}
	begin := time.Now()
	address := NewAddress(p.Bytes())
	timer.AddDigest(time.Since(begin))
	return address
}

func timedOffCurve(address Address, timer Timer) bool {
	if nil == timer {
		return address.IsOffCurve()
	}
	begin := time.Now()
	off := address.IsOffCurve()
	timer.AddCurve(time.Since(begin))
	return off
}

func timedMatch(address Address, match func(string) bool, timer Timer) bool {
	if nil == timer {
		return match(address.String())
	}
	begin := time.Now()
	matched := match(address.String())
	timer.AddEncode(time.Since(begin))
	return matched
}
