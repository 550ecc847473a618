// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"os"
	"testing"

	"github.com/YCoro/opentxs/storage"
)

// test database file
const (
	databaseFileName = "notary-test.leveldb"
)

// common test setup routines

// remove all files created by test
func removeFiles() {
	os.RemoveAll(databaseFileName)
}

// configure for testing
func setup(t *testing.T) {
	removeFiles()
	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

// post test cleanup
func teardown(t *testing.T) {
	storage.Finalise()
	removeFiles()
}

// a nym to account mapping
type stringElement struct {
	key   string
	value string
}

// make an element array
func makeElements(input []stringElement) []storage.Element {
	output := make([]storage.Element, 0, len(input))
	for _, e := range input {
		output = append(output, storage.Element{
			Key:   []byte(e.key),
			Value: []byte(e.value),
		})
	}
	return output
}

// data for various test routines

// this is the expected order
var expectedElements = makeElements([]stringElement{
	{"nym-alice", "acct-alice(NEW)"},
	{"nym-bob", "acct-bob"},
	{"nym-carol", "acct-carol"},
	{"nym-dave", "acct-dave"},
	{"nym-erin", "acct-erin"},
	{"nym-frank", "acct-frank"},
	{"nym-grace", "acct-grace"},
})

// a key that must not exist
var nonExistantKey = []byte("/nonexistant")
