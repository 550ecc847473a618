// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/YCoro/opentxs/util"
)

func TestEnsureAbsolute(t *testing.T) {
	tests := []struct {
		directory string
		path      string
		expected  string
	}{
		{"/var/notary", "data", "/var/notary/data"},
		{"/var/notary", "log/../data", "/var/notary/data"},
		{"/var/notary", "/tmp/notary.pid", "/tmp/notary.pid"},
		{"/var/notary/", "./notary.leveldb", "/var/notary/notary.leveldb"},
	}

	for i, test := range tests {
		assert.Equal(t, test.expected, util.EnsureAbsolute(test.directory, test.path), "case: %d", i)
	}
}

func TestEnsureFileExists(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "present")
	assert.False(t, util.EnsureFileExists(name), "before create")

	err := os.WriteFile(name, []byte("x"), 0600)
	assert.Nil(t, err, "create")
	assert.True(t, util.EnsureFileExists(name), "after create")
}
