// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package matcher - prefix test for base58 encoded addresses
//
// the target is operator supplied text compared byte for byte against
// the encoded address, so targets longer than the longest possible
// encoding can never match
package matcher

import (
	"strings"
)

// MaxEncodedLength - longest base58 text produced by a 32 byte address
const MaxEncodedLength = 44

// Matcher - holds the target prefix for repeated comparisons
type Matcher struct {
	target string
}

// New - create a matcher for an operator supplied prefix
//
// the target is taken verbatim, no alphabet validation is performed
func New(target string) Matcher {
	return Matcher{
		target: target,
	}
}

// Match - true if the encoded text starts with the target
func (m Matcher) Match(text string) bool {
	if len(m.target) > MaxEncodedLength {
		return false
	}
	return strings.HasPrefix(text, m.target)
}

// Impossible - true if no encoded address can ever match
func (m Matcher) Impossible() bool {
	return len(m.target) > MaxEncodedLength
}

// Target - the configured prefix
func (m Matcher) Target() string {
	return m.target
}
