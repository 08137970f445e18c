// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package grinder

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/seedgrind/background"
	"github.com/bitmark-inc/seedgrind/counter"
	"github.com/bitmark-inc/seedgrind/derivation"
	"github.com/bitmark-inc/seedgrind/fixtures"
	"github.com/bitmark-inc/seedgrind/matcher"
)

func testOwner() derivation.Owner {
	owner := derivation.Owner{}
	for i := 0; i < derivation.OwnerLength; i += 1 {
		owner[i] = byte(0x40 + i)
	}
	return owner
}

// a worker advances its counter before deriving, so the first seed it
// processes is the partition start plus one
func TestWorkerFirstSeed(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	owner := testOwner()
	start := uint64(12345)

	expected, _, ok := derivation.Derive(owner, start+1)
	assert.True(t, ok, "no canonical address for first seed")

	dir, err := ioutil.TempDir("", "worker-test")
	assert.Nil(t, err, "temporary directory")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "results.log")

	matches := counter.Counter(0)
	s, err := newSink(logger.New("testing"), fileName, &matches)
	assert.Nil(t, err, "create sink")

	// the full address text as target: only this one seed can match
	w := &worker{
		index: 1,
		log:   logger.New("worker-test"),
		owner: owner,
		match: matcher.New(expected.String()),
		start: start,
		sink:  s,
	}

	bg := background.Start(background.Processes{w}, nil)

	// wait for the match, the worker finds it on its first seed
	for i := 0; i < 300; i += 1 {
		if matches.Uint64() > 0 {
			break
		}
		time.Sleep(100 * time.Millisecond)
	}

	// blocks until the current batch completes
	bg.Stop()
	s.close()

	assert.Equal(t, uint64(1), matches.Uint64(), "match count")

	data, err := ioutil.ReadFile(fileName)
	assert.Nil(t, err, "read results")
	assert.Equal(t, fmt.Sprintf("%s: %d\n", expected, start+1), string(data), "results record")
}
