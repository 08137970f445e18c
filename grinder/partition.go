// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package grinder

import (
	"crypto/rand"
	"encoding/binary"
	"math"
)

// StartingSeed - first seed of a worker partition
//
// the full 64 bit space divided by the thread count gives the
// partition stride; the shared random offset shifts all partitions
// together, wrapping modulo 2^64.  threads must be at least 1 and
// index below threads
func StartingSeed(threads uint64, index uint64, offset uint64) uint64 {
	stride := (math.MaxUint64-threads+1)/threads + 1
	return stride*index + offset
}

// the one random shift drawn at startup
func randomOffset() (uint64, error) {
	buffer := make([]byte, 8)
	if _, err := rand.Read(buffer); nil != err {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buffer), nil
}
