// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/seedgrind/derivation"
	"github.com/bitmark-inc/seedgrind/fault"
)

func runCheck(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	ownerText := m.config.Owner
	if c.IsSet("owner") {
		ownerText = c.String("owner")
	}

	owner, err := checkOwner(ownerText)
	if nil != err {
		return err
	}

	if !c.IsSet("seed") {
		return ErrRequiredSeed
	}
	seed := c.Uint64("seed")

	address, bump, ok := derivation.Derive(owner, seed)
	if !ok {
		return fault.NoCanonicalAddress
	}

	if m.verbose {
		fmt.Fprintf(m.e, "bump: %d\n", bump)
	}

	fmt.Fprintf(m.w, "seed %d for owner %s gives key %s\n", seed, owner, address)
	return nil
}
