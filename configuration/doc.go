// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file and keep
// persistent runtime settings
//
// most of base Lua is available such as reading files to set key data
// and getenv to extract environment supplied items.  Settings are
// section/key/value strings held in a storage pool.
package configuration
