// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package derivation - compute program derived addresses
//
// a derived address is the SHA-256 digest of a fixed 62 byte preimage
// holding a 64 bit seed, a bump byte, the 32 byte owner public key and
// a constant domain separation marker
//
// for one seed the bump byte is scanned in descending order from 255
// and the first digest that is not a valid ed25519 curve point is the
// canonical address for that seed; a digest that is a valid point
// could collide with a real public key and is never accepted
//
// this package is pure computation: no logging, no i/o and no shared
// state, so all operations are safe for concurrent callers as long as
// each caller owns its preimage
package derivation
