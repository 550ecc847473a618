// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package accountindex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/YCoro/opentxs/account"
	"github.com/YCoro/opentxs/accountindex"
	"github.com/YCoro/opentxs/fault"
	"github.com/YCoro/opentxs/fixtures"
)

func TestSerialiseRoundTrip(t *testing.T) {
	ix := newMemoryIndex(t)

	entries := []entry{
		makeEntry("one", "alice", account.USD),
		makeEntry("two", "alice", account.Bitcoin),
		makeEntry("three", "bob", account.Unknown),
	}
	entries[2].server = fixtures.ID("server-two")
	for _, e := range entries {
		assert.Nil(t, store(ix, e), "store")
	}

	// leaves empty value-sets behind in memory
	deleted := makeEntry("four", "carol", account.Gold)
	assert.Nil(t, store(ix, deleted), "store")
	assert.Nil(t, ix.Delete(deleted.id), "delete")

	packed, err := ix.Pack()
	assert.Nil(t, err, "pack")

	back := newMemoryIndex(t)
	assert.Nil(t, back.Unpack(packed), "unpack")

	for _, e := range entries {
		assert.Equal(t, e.owner, back.AccountOwner(e.id), "owner")
		assert.Equal(t, e.signer, back.AccountSigner(e.id), "signer")
		assert.Equal(t, e.issuer, back.AccountIssuer(e.id), "issuer")
		assert.Equal(t, e.server, back.AccountServer(e.id), "server")
		assert.Equal(t, e.contract, back.AccountContract(e.id), "contract")
		assert.Equal(t, e.unit, back.AccountUnit(e.id), "unit")
		assert.Contains(t, back.AccountsByOwner(e.owner), e.id, "inverted owner")
	}
	assert.Equal(t, ix.AccountList(), back.AccountList(), "items")
	assert.Empty(t, back.AccountsByOwner(deleted.owner), "deleted owner")
	assert.Empty(t, back.AccountsByUnit(account.Gold), "deleted unit")

	s := back.Serialise()
	assert.Equal(t, uint32(1), s.Version, "version")
	for _, lists := range [][]*accountindex.StorageIDList{s.Owner, s.Signer, s.Issuer, s.Server, s.Unit} {
		for _, l := range lists {
			assert.NotEmpty(t, l.List, "empty list for key: %s", l.ID)
			assert.NotEqual(t, fixtures.ID("carol").String(), l.ID, "pruned key")
		}
	}
	assert.Equal(t, 2, len(s.Owner), "owners alice and bob")
	assert.Equal(t, 2, len(s.Index), "unknown unit is not indexed")
	assert.Equal(t, 3, len(s.Account), "items")
}

func TestDeserialiseErrors(t *testing.T) {
	_, err := accountindex.Deserialise(nil)
	assert.Equal(t, fault.IncompatibleVersion, err, "nil")

	_, err = accountindex.Deserialise(&accountindex.StorageAccounts{Version: 99})
	assert.Equal(t, fault.IncompatibleVersion, err, "future version")

	_, err = accountindex.Deserialise(&accountindex.StorageAccounts{
		Version: 1,
		Owner: []*accountindex.StorageIDList{
			{Version: 1, ID: "not-base58-0OIl", List: []string{"x"}},
		},
	})
	assert.NotNil(t, err, "bad owner id")

	_, err = accountindex.Deserialise(&accountindex.StorageAccounts{
		Version: 1,
		Index: []*accountindex.StorageUnitIndex{
			{Version: 1, Type: 1000},
		},
	})
	assert.Equal(t, fault.InvalidUnitType, err, "bad unit type")

	ix, err := accountindex.Deserialise(&accountindex.StorageAccounts{Version: 1})
	assert.Nil(t, err, "empty index")
	assert.Empty(t, ix.AccountList(), "no accounts")
}

func TestUnpackGarbage(t *testing.T) {
	ix := newMemoryIndex(t)
	e := makeEntry("one", "alice", account.USD)
	assert.Nil(t, store(ix, e), "store")

	assert.NotNil(t, ix.Unpack([]byte{0xff, 0xff, 0xff, 0xff}), "garbage")
	assert.Equal(t, e.owner, ix.AccountOwner(e.id), "contents kept on failure")
}
