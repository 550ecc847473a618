// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"bytes"
	"sync"

	"github.com/YCoro/opentxs/storage"
)

// separates section from key in a stored key
const keySeparator = 0x00

// well known settings
const (
	MasterSection        = "Master"
	IntroductionServerID = "introduction_server_id"
)

type settingKey struct {
	section string
	key     string
}

// Settings - section/key string values kept in a storage pool
//
// Set changes only memory; Save writes the changed values.  A nil
// handle gives memory only settings.
type Settings struct {
	sync.Mutex
	handle storage.Handle
	values map[settingKey]string
	dirty  map[settingKey]struct{}
}

// NewSettings - load all settings from a pool
func NewSettings(handle storage.Handle) (*Settings, error) {
	s := &Settings{
		handle: handle,
		values: make(map[settingKey]string),
		dirty:  make(map[settingKey]struct{}),
	}
	if nil == handle {
		return s, nil
	}

	err := handle.Map(func(key []byte, value []byte) error {
		n := bytes.IndexByte(key, keySeparator)
		if n < 0 {
			return nil
		}
		k := settingKey{
			section: string(key[:n]),
			key:     string(key[n+1:]),
		}
		s.values[k] = string(value)
		return nil
	})
	if nil != err {
		return nil, err
	}
	return s, nil
}

// Get - a value and whether it exists
func (s *Settings) Get(section string, key string) (string, bool) {
	s.Lock()
	defer s.Unlock()

	v, ok := s.values[settingKey{section, key}]
	return v, ok
}

// Set - change a value in memory
func (s *Settings) Set(section string, key string, value string) bool {
	s.Lock()
	defer s.Unlock()

	k := settingKey{section, key}
	if v, ok := s.values[k]; ok && v == value {
		return true
	}
	s.values[k] = value
	s.dirty[k] = struct{}{}
	return true
}

// Save - write changed values to the pool
func (s *Settings) Save() error {
	s.Lock()
	defer s.Unlock()

	if nil == s.handle {
		s.dirty = make(map[settingKey]struct{})
		return nil
	}

	for k := range s.dirty {
		key := make([]byte, 0, len(k.section)+len(k.key)+1)
		key = append(key, k.section...)
		key = append(key, keySeparator)
		key = append(key, k.key...)
		if err := s.handle.Put(key, []byte(s.values[k])); nil != err {
			return err
		}
		delete(s.dirty, k)
	}
	return nil
}
