// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package derivation

import (
	"encoding/binary"
	"math"
)

// marker - constant bytes that separate derived address preimages
// from real public key material
const marker = "ProgramDerivedAddress"

// sizes of the preimage fields
const (
	seedSize   = 8
	bumpSize   = 1
	markerSize = len(marker) // 21

	// PreimageLength - total number of bytes in a preimage
	PreimageLength = seedSize + bumpSize + OwnerLength + markerSize // 62
)

// offsets of the preimage fields
const (
	seedStart   = 0
	bumpStart   = seedStart + seedSize     // 8
	ownerStart  = bumpStart + bumpSize     // 9
	markerStart = ownerStart + OwnerLength // 41
)

// Preimage - hashing buffer for one candidate address
//
// the owner and marker fields are written once by NewPreimage; only
// the seed and bump fields change afterwards so the buffer can be
// reused for every candidate without further allocation
type Preimage [PreimageLength]byte

// NewPreimage - create a preimage with the constant fields filled in
func NewPreimage(owner Owner) Preimage {
	var p Preimage
	copy(p[ownerStart:markerStart], owner[:])
	copy(p[markerStart:], marker)
	return p
}

// SetSeed - overwrite the seed field
func (p *Preimage) SetSeed(seed uint64) {
	binary.LittleEndian.PutUint64(p[seedStart:bumpStart], seed)
}

// SetBump - overwrite the bump field with 255 - offset
//
// offset counts 0..254 giving a strictly descending bump sequence
// starting at 255
func (p *Preimage) SetBump(offset uint8) {
	p[bumpStart] = math.MaxUint8 - offset
}

// Bytes - the read window for hashing
func (p *Preimage) Bytes() []byte {
	return p[:]
}
