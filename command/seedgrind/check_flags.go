// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/seedgrind/derivation"
	"github.com/bitmark-inc/seedgrind/fault"
)

var (
	ErrRequiredOwner = fault.InvalidError("owner is required")
	ErrRequiredSeed  = fault.InvalidError("seed is required")
)

// owner is required and must decode to a 32 byte key
func checkOwner(ownerText string) (derivation.Owner, error) {
	if "" == ownerText {
		return derivation.Owner{}, ErrRequiredOwner
	}

	return derivation.OwnerFromBase58(ownerText)
}
