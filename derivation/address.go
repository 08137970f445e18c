// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package derivation

import (
	"crypto/sha256"

	"filippo.io/edwards25519"
	"github.com/mr-tron/base58"
)

// Length - number of bytes in an address
const Length = 32

// Address - type for a candidate derived address
// stored as the raw digest bytes
// represented as Base58 text for print and JSON encoding
type Address [Length]byte

// NewAddress - create an address by hashing a preimage record
func NewAddress(record []byte) Address {
	return Address(sha256.Sum256(record))
}

// IsOffCurve - check that the address cannot collide with a real public key
//
// true iff the 32 bytes are not a valid ed25519 point encoding, so no
// private key can ever produce this value
func (address Address) IsOffCurve() bool {
	_, err := new(edwards25519.Point).SetBytes(address[:])
	return nil != err
}

// String - convert a binary address to Base58 text for use by the fmt package (for %s)
func (address Address) String() string {
	return base58.Encode(address[:])
}

// GoString - convert a binary address to Base58 text for use by the fmt package (for %#v)
func (address Address) GoString() string {
	return "<address:" + base58.Encode(address[:]) + ">"
}

// MarshalText - convert an address to Base58 text
func (address Address) MarshalText() ([]byte, error) {
	return []byte(base58.Encode(address[:])), nil
}
