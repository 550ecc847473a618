// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/YCoro/opentxs/configuration"
	"github.com/YCoro/opentxs/fault"
	"github.com/YCoro/opentxs/fixtures"
	"github.com/YCoro/opentxs/storage"
)

type databaseType struct {
	Directory string `gluamapper:"directory"`
	Name      string `gluamapper:"name"`
}

type updatesType struct {
	Publish []string `gluamapper:"publish"`
}

type loggingType struct {
	Size   int               `gluamapper:"size"`
	Count  int               `gluamapper:"count"`
	Levels map[string]string `gluamapper:"levels"`
}

type testConfiguration struct {
	DataDirectory  string       `gluamapper:"data_directory"`
	Database       databaseType `gluamapper:"database"`
	AccountUpdates updatesType  `gluamapper:"account_updates"`
	Servers        []string     `gluamapper:"servers"`
	Logging        loggingType  `gluamapper:"logging"`
}

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func TestParseConfigurationFile(t *testing.T) {
	c := &testConfiguration{}
	err := configuration.ParseConfigurationFile("testdata/notaryd.conf", c, map[string]string{"port": "7000"})
	assert.Nil(t, err, "parse")

	assert.Equal(t, "testdata/", c.DataDirectory, "arg[0] directory")
	assert.Equal(t, "data", c.Database.Directory, "database directory")
	assert.Equal(t, "notary.leveldb", c.Database.Name, "database name")
	assert.Equal(t, []string{"tcp://127.0.0.1:7000"}, c.AccountUpdates.Publish, "variable substituted")
	assert.Equal(t, []string{"alpha", "beta"}, c.Servers, "list")
	assert.Equal(t, 1048576, c.Logging.Size, "size")
	assert.Equal(t, "info", c.Logging.Levels["notary"], "levels")
}

func TestParseDefaultVariable(t *testing.T) {
	c := &testConfiguration{}
	err := configuration.ParseConfigurationFile("testdata/notaryd.conf", c, nil)
	assert.Nil(t, err, "parse")
	assert.Equal(t, []string{"tcp://127.0.0.1:5555"}, c.AccountUpdates.Publish, "lua default")
}

func TestParseErrors(t *testing.T) {
	c := testConfiguration{}
	assert.Equal(t, fault.InvalidStructPointer, configuration.ParseConfigurationFile("testdata/notaryd.conf", c, nil), "not a pointer")
	assert.Equal(t, fault.InvalidConfiguration, configuration.ParseConfigurationFile("testdata/bad.conf", &c, nil), "not a table")
	assert.NotNil(t, configuration.ParseConfigurationFile("testdata/missing.conf", &c, nil), "missing file")
}

func TestSettingsMemory(t *testing.T) {
	s, err := configuration.NewSettings(nil)
	assert.Nil(t, err, "new")

	_, ok := s.Get(configuration.MasterSection, configuration.IntroductionServerID)
	assert.False(t, ok, "unset")

	assert.True(t, s.Set(configuration.MasterSection, configuration.IntroductionServerID, "abc"), "set")
	v, ok := s.Get(configuration.MasterSection, configuration.IntroductionServerID)
	assert.True(t, ok, "set")
	assert.Equal(t, "abc", v, "value")
	assert.Nil(t, s.Save(), "save")
}

func TestSettingsPersist(t *testing.T) {
	err := fixtures.SetupTestDatabase()
	assert.Nil(t, err, "database")
	defer fixtures.TeardownTestDatabase()

	s, err := configuration.NewSettings(storage.Pool.Settings)
	assert.Nil(t, err, "new")
	s.Set(configuration.MasterSection, configuration.IntroductionServerID, "server-one")
	s.Set("Other", "key", "value")

	before, err := configuration.NewSettings(storage.Pool.Settings)
	assert.Nil(t, err, "reload before save")
	_, ok := before.Get("Other", "key")
	assert.False(t, ok, "not yet saved")

	assert.Nil(t, s.Save(), "save")

	after, err := configuration.NewSettings(storage.Pool.Settings)
	assert.Nil(t, err, "reload")
	v, ok := after.Get(configuration.MasterSection, configuration.IntroductionServerID)
	assert.True(t, ok, "restored")
	assert.Equal(t, "server-one", v, "value")
	v, _ = after.Get("Other", "key")
	assert.Equal(t, "value", v, "second section")
}
