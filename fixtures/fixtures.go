// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared helpers for package tests
package fixtures

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/YCoro/opentxs/identifier"
	"github.com/YCoro/opentxs/storage"
)

const (
	dir          = "testing"
	LogCategory  = "testing"
	DatabaseName = "testing/test.leveldb"
)

// SetupTestLogger - start logging to a scratch directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

// SetupTestDatabase - open an empty database inside the scratch directory
func SetupTestDatabase() error {
	_ = os.RemoveAll(DatabaseName)
	return storage.Initialise(DatabaseName, storage.ReadWrite)
}

// TeardownTestDatabase - close and remove the test database
func TeardownTestDatabase() {
	storage.Finalise()
	_ = os.RemoveAll(DatabaseName)
}

// ID - a stable identifier for a readable name
func ID(name string) identifier.Identifier {
	return identifier.FromContent([]byte(name))
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
