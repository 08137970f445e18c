// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package grinder_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/seedgrind/derivation"
	"github.com/bitmark-inc/seedgrind/fault"
	"github.com/bitmark-inc/seedgrind/fixtures"
	"github.com/bitmark-inc/seedgrind/grinder"
)

func lifecycleOwner() derivation.Owner {
	owner := derivation.Owner{}
	for i := 0; i < derivation.OwnerLength; i += 1 {
		owner[i] = byte(i + 1)
	}
	return owner
}

// initialise and finalise must pair up and reject wrong ordering; an
// impossible target runs without recording anything
func TestInitialiseAndFinalise(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	err := grinder.Finalise()
	assert.Equal(t, fault.NotInitialised, err, "finalise before initialise")

	dir, err := ioutil.TempDir("", "grinder-test")
	assert.Nil(t, err, "temporary directory")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "results.log")

	configuration := &grinder.Configuration{
		Owner:       lifecycleOwner(),
		Target:      strings.Repeat("z", 50), // longer than any encoding
		Threads:     0,
		ResultsFile: fileName,
		Timing:      true,
	}

	err = grinder.Initialise(configuration)
	assert.Equal(t, fault.InvalidThreadCount, err, "zero threads")

	configuration.Threads = 1
	configuration.ResultsFile = filepath.Join(dir, "no-such-directory", "results.log")
	err = grinder.Initialise(configuration)
	assert.NotNil(t, err, "unwritable results file")

	configuration.ResultsFile = fileName
	err = grinder.Initialise(configuration)
	assert.Nil(t, err, "initialise")

	err = grinder.Initialise(configuration)
	assert.Equal(t, fault.AlreadyInitialised, err, "double initialise")

	// waits for the worker to finish its current batch
	err = grinder.Finalise()
	assert.Nil(t, err, "finalise")

	// a whole batch was scanned and nothing can have matched
	info, err := os.Stat(fileName)
	assert.Nil(t, err, "results file missing")
	assert.Equal(t, int64(0), info.Size(), "impossible target produced output")

	err = grinder.Finalise()
	assert.Equal(t, fault.NotInitialised, err, "double finalise")
}
