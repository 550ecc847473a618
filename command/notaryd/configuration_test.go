// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YCoro/opentxs/identifier"
)

// copy a test configuration to a fresh data directory
func stage(t *testing.T, name string) string {
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.Nil(t, err, "read")

	dir := t.TempDir()
	file := filepath.Join(dir, "notaryd.conf")
	require.Nil(t, os.WriteFile(file, data, 0600), "write")
	return file
}

func identities() (identifier.Identifier, identifier.Identifier, map[string]string) {
	server := identifier.Random()
	nym := identifier.Random()
	return server, nym, map[string]string{
		"server_id":  server.String(),
		"server_nym": nym.String(),
	}
}

func TestGetConfiguration(t *testing.T) {
	file := stage(t, "good.conf")
	dir := filepath.Dir(file)
	server, nym, variables := identities()

	c, err := getConfiguration(file, variables)
	require.Nil(t, err, "configuration")

	assert.Equal(t, server, c.server, "server")
	assert.Equal(t, nym, c.serverNym, "server nym")
	assert.Equal(t, filepath.Join(dir, defaultLevelDBDirectory), c.Database.Directory, "database directory")
	assert.Equal(t, filepath.Join(dir, defaultLevelDBDirectory, defaultNotaryDatabase), c.Database.Name, "database name")
	assert.Equal(t, filepath.Join(dir, defaultLogDirectory, defaultLogFile), c.Logging.File, "log file")
	assert.Equal(t, []string{"tcp://127.0.0.1:5566"}, c.AccountUpdates.Publish, "publish")
	assert.Equal(t, "info", c.Logging.Levels["DEFAULT"], "log level")
	assert.Equal(t, defaultLogCount, c.Logging.Count, "default log count")

	assert.DirExists(t, c.Database.Directory, "database directory created")
	assert.DirExists(t, c.Logging.Directory, "log directory created")
}

func TestGetConfigurationMissingIdentity(t *testing.T) {
	file := stage(t, "good.conf")

	_, err := getConfiguration(file, nil)
	assert.NotNil(t, err, "no identity")

	_, err = getConfiguration(file, map[string]string{
		"server_id":  "not*base58",
		"server_nym": identifier.Random().String(),
	})
	assert.NotNil(t, err, "bad server id")
}

func TestGetConfigurationDataDirectory(t *testing.T) {
	file := stage(t, "nodir.conf")
	_, _, variables := identities()

	_, err := getConfiguration(file, variables)
	assert.NotNil(t, err, "empty data directory")
}

func TestGetConfigurationMissingFile(t *testing.T) {
	_, _, variables := identities()
	_, err := getConfiguration(filepath.Join(t.TempDir(), "absent.conf"), variables)
	assert.NotNil(t, err, "missing file")
}
