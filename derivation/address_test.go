// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package derivation_test

import (
	"crypto/ed25519"
	"crypto/rand"
	"strings"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/seedgrind/derivation"
	"github.com/bitmark-inc/seedgrind/fault"
)

func TestAddressEncoding(t *testing.T) {

	// every zero byte maps to a single leading "1"
	zero := derivation.Address{}
	assert.Equal(t, strings.Repeat("1", 32), zero.String(), "all-zero address")

	// the largest possible value needs the full 44 characters
	var high derivation.Address
	for i := 0; i < derivation.Length; i += 1 {
		high[i] = 0xff
	}
	assert.Equal(t, 44, len(high.String()), "all-0xff address length")

	// text round-trip recovers the digest exactly
	testAddresses := []derivation.Address{
		zero,
		high,
		derivation.NewAddress([]byte("round trip one")),
		derivation.NewAddress([]byte("round trip two")),
		{0, 0, 0, 1}, // leading zero bytes inside a value
	}

	for i, address := range testAddresses {
		text := address.String()
		assert.True(t, len(text) <= 44, "%d: text too long: %d", i, len(text))

		decoded, err := base58.Decode(text)
		assert.Nil(t, err, "%d: decode error: %v", i, err)
		assert.Equal(t, address[:], decoded, "%d: round trip", i)

		marshalled, err := address.MarshalText()
		assert.Nil(t, err, "%d: marshal error: %v", i, err)
		assert.Equal(t, text, string(marshalled), "%d: marshal text", i)
	}
}

func TestAddressGoString(t *testing.T) {
	address := derivation.NewAddress([]byte("go string"))
	assert.Equal(t, "<address:"+address.String()+">", address.GoString(), "go string format")
}

// real public keys are valid curve points and must never be accepted
// as derived addresses
func TestIsOffCurveRejectsPublicKeys(t *testing.T) {

	for i := 0; i < 16; i += 1 {
		publicKey, _, err := ed25519.GenerateKey(rand.Reader)
		if nil != err {
			t.Fatalf("key generation failed: %v", err)
		}

		var address derivation.Address
		copy(address[:], publicKey)

		assert.False(t, address.IsOffCurve(), "%d: public key treated as off-curve: %s", i, address)
	}
}

func TestOwnerFromBase58(t *testing.T) {

	var raw [derivation.OwnerLength]byte
	for i := 0; i < derivation.OwnerLength; i += 1 {
		raw[i] = byte(200 - i)
	}
	valid := base58.Encode(raw[:])

	owner, err := derivation.OwnerFromBase58(valid)
	assert.Nil(t, err, "valid owner rejected: %v", err)
	assert.Equal(t, raw[:], owner[:], "owner bytes")
	assert.Equal(t, valid, owner.String(), "owner text round trip")

	marshalled, err := owner.MarshalText()
	assert.Nil(t, err, "marshal error: %v", err)
	assert.Equal(t, valid, string(marshalled), "owner marshal text")

	invalidItems := []struct {
		text string
		err  error
	}{
		{"0contains-forbidden-characters!", fault.CannotDecodeOwner},
		{"lIO0", fault.CannotDecodeOwner},
		{base58.Encode(raw[:31]), fault.InvalidOwnerLength},
		{base58.Encode(append(raw[:], 0x01)), fault.InvalidOwnerLength},
		{"2", fault.InvalidOwnerLength}, // single byte
	}

	for i, item := range invalidItems {
		_, err := derivation.OwnerFromBase58(item.text)
		assert.Equal(t, item.err, err, "%d: owner: %q", i, item.text)
	}

	// empty text can never be an owner key
	_, err = derivation.OwnerFromBase58("")
	assert.NotNil(t, err, "empty owner accepted")
}
