// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package derivation

import (
	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/seedgrind/fault"
)

// OwnerLength - number of bytes in an owner public key
const OwnerLength = 32

// Owner - the public key that derived addresses belong to
type Owner [OwnerLength]byte

// OwnerFromBase58 - convert a Base58 encoded string to an owner key
func OwnerFromBase58(ownerBase58Encoded string) (Owner, error) {
	var owner Owner

	decoded, err := base58.Decode(ownerBase58Encoded)
	if nil != err {
		return owner, fault.CannotDecodeOwner
	}
	if OwnerLength != len(decoded) {
		return owner, fault.InvalidOwnerLength
	}

	copy(owner[:], decoded)
	return owner, nil
}

// String - convert an owner key to its Base58 text for use by the fmt package (for %s)
func (owner Owner) String() string {
	return base58.Encode(owner[:])
}

// MarshalText - convert an owner key to Base58 text
func (owner Owner) MarshalText() ([]byte, error) {
	return []byte(base58.Encode(owner[:])), nil
}
