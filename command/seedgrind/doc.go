// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Vanity miner for program derived addresses
//
// This program scans the 64 bit seed space for seeds whose derived
// address starts with a chosen base58 prefix.  It runs until
// interrupted, printing matches and periodic progress, optionally
// appending each match to a results file.
//
// e.g. to search with four workers:
//
//   seedgrind grind --owner=KEY --target=Burn --threads=4
//
// a single derivation can be verified with:
//
//   seedgrind check --owner=KEY --seed=1234
package main
