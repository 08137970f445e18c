// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// a configuration file is a Lua script that builds a table of
// settings and finishes with: return M
//
// most of base Lua is available such as reading files to set key data
// and getenv to extract environment supplied items; the global arg[0]
// holds the name of the configuration file itself so a script can
// derive paths relative to its own location.
package configuration
