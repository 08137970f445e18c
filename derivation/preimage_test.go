// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package derivation_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/seedgrind/derivation"
)

// owner key with recognisable bytes for layout checks
func testOwner() derivation.Owner {
	var owner derivation.Owner
	for i := 0; i < derivation.OwnerLength; i += 1 {
		owner[i] = byte(0x40 + i)
	}
	return owner
}

func TestPreimageLayout(t *testing.T) {

	assert.Equal(t, 62, derivation.PreimageLength, "preimage length")

	owner := testOwner()
	p := derivation.NewPreimage(owner)
	p.SetSeed(0x1122334455667788)
	p.SetBump(3)

	b := p.Bytes()
	assert.Equal(t, derivation.PreimageLength, len(b), "read window length")

	// seed is little-endian at the start of the buffer
	assert.Equal(t, []byte{0x88, 0x77, 0x66, 0x55, 0x44, 0x33, 0x22, 0x11}, b[0:8], "seed field")

	// bump byte is 255 - offset
	assert.Equal(t, byte(252), b[8], "bump field")

	// owner key occupies the middle of the buffer
	assert.True(t, bytes.Equal(owner[:], b[9:41]), "owner field")

	// constant marker terminates the buffer
	assert.Equal(t, "ProgramDerivedAddress", string(b[41:62]), "marker field")
}

func TestPreimageMutation(t *testing.T) {

	owner := testOwner()
	p := derivation.NewPreimage(owner)

	p.SetSeed(1)
	p.SetBump(0)
	first := make([]byte, derivation.PreimageLength)
	copy(first, p.Bytes())

	// a second mutation only touches the seed and bump fields
	p.SetSeed(0xffffffffffffffff)
	p.SetBump(254)
	second := p.Bytes()

	assert.NotEqual(t, first[0:8], second[0:8], "seed field unchanged")
	assert.NotEqual(t, first[8], second[8], "bump field unchanged")
	assert.True(t, bytes.Equal(first[9:], second[9:]), "constant fields changed")

	// restoring the mutable fields restores the whole buffer
	p.SetSeed(1)
	p.SetBump(0)
	assert.True(t, bytes.Equal(first, p.Bytes()), "buffer not restored")
}

func TestSetBumpRange(t *testing.T) {

	p := derivation.NewPreimage(testOwner())

	bumpValues := []struct {
		offset uint8
		bump   byte
	}{
		{0, 255},
		{1, 254},
		{100, 155},
		{254, 1},
	}

	for _, item := range bumpValues {
		p.SetBump(item.offset)
		assert.Equal(t, item.bump, p.Bytes()[8], "offset: %d", item.offset)
	}
}
