// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package grinder

import (
	"fmt"
	"os"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/seedgrind/counter"
	"github.com/bitmark-inc/seedgrind/derivation"
)

// collects confirmed matches from all workers
type sink struct {
	sync.Mutex // exclusive access to the results file

	log     *logger.L
	file    *os.File // nil when no results file was configured
	matches *counter.Counter
}

func newSink(log *logger.L, fileName string, matches *counter.Counter) (*sink, error) {

	s := &sink{
		log:     log,
		matches: matches,
	}

	if "" != fileName {
		f, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
		if nil != err {
			return nil, err
		}
		s.file = f
	}

	return s, nil
}

// submit - externalise one confirmed match
//
// the whole line is written under the lock so concurrent workers
// never interleave partial records; a failed write aborts the
// process as matches must not be silently lost
func (s *sink) submit(address derivation.Address, seed uint64) {

	text := address.String()

	s.Lock()
	defer s.Unlock()

	s.matches.Increment()

	fmt.Printf("found %s with seed %d\n", text, seed)
	s.log.Infof("found %s with seed %d", text, seed)

	if nil != s.file {
		if _, err := fmt.Fprintf(s.file, "%s: %d\n", text, seed); nil != err {
			logger.Panicf("write to results file failed: %s", err)
		}
	}
}

func (s *sink) close() {
	s.Lock()
	defer s.Unlock()

	if nil != s.file {
		s.file.Close()
		s.file = nil
	}
}
