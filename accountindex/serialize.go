// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package accountindex

import (
	"sort"

	proto "github.com/gogo/protobuf/proto"

	"github.com/YCoro/opentxs/account"
	"github.com/YCoro/opentxs/fault"
	"github.com/YCoro/opentxs/identifier"
)

const (
	accountVersion = 1
	indexVersion   = 1
)

// Serialise - versioned structured form of the whole index
//
// keys whose value-set is empty are not emitted
func (ix *Index) Serialise() *StorageAccounts {
	ix.RLock()
	defer ix.RUnlock()
	return ix.serialise()
}

// must hold lock
func (ix *Index) serialise() *StorageAccounts {
	s := &StorageAccounts{
		Version: accountVersion,
	}

	for _, item := range ix.itemList() {
		s.Account = append(s.Account, &StorageItem{
			Version: accountVersion,
			ItemID:  item.ID.String(),
			Alias:   item.Alias,
		})
	}

	s.Owner = serialiseIndex(ix.index[ownerField])
	s.Signer = serialiseIndex(ix.index[signerField])
	s.Issuer = serialiseIndex(ix.index[issuerField])
	s.Server = serialiseIndex(ix.index[serverField])
	s.Unit = serialiseIndex(ix.index[contractField])

	units := make([]account.UnitType, 0, len(ix.units))
	for u := range ix.units {
		units = append(units, u)
	}
	sort.Slice(units, func(i, j int) bool { return units[i] < units[j] })

	for _, u := range units {
		accounts := sorted(ix.units[u])
		if 0 == len(accounts) {
			continue
		}
		s.Index = append(s.Index, &StorageUnitIndex{
			Version: indexVersion,
			Type:    uint32(u),
			Account: toStrings(accounts),
		})
	}
	return s
}

func serialiseIndex(index map[identifier.Identifier]idSet) []*StorageIDList {
	keys := make([]identifier.Identifier, 0, len(index))
	for k := range index {
		if k.IsEmpty() {
			continue
		}
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	var result []*StorageIDList
	for _, k := range keys {
		accounts := sorted(index[k])
		if 0 == len(accounts) {
			continue
		}
		result = append(result, &StorageIDList{
			Version: indexVersion,
			ID:      k.String(),
			List:    toStrings(accounts),
		})
	}
	return result
}

func toStrings(ids []identifier.Identifier) []string {
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if id.IsEmpty() {
			continue
		}
		result = append(result, id.String())
	}
	return result
}

// must hold lock
func (ix *Index) itemList() []Item {
	result := make([]Item, 0, len(ix.items))
	for id, alias := range ix.items {
		if id.IsEmpty() {
			continue
		}
		result = append(result, Item{ID: id, Alias: alias})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID.Less(result[j].ID)
	})
	return result
}

// Deserialise - build an index from its structured form
func Deserialise(s *StorageAccounts) (*Index, error) {
	ix := newIndex()
	if err := ix.restore(s); nil != err {
		return nil, err
	}
	return ix, nil
}

// must hold lock, or be on a fresh index
func (ix *Index) restore(s *StorageAccounts) error {
	if nil == s || s.Version > accountVersion {
		return fault.IncompatibleVersion
	}

	for _, item := range s.Account {
		id, err := identifier.FromString(item.ItemID)
		if nil != err {
			return err
		}
		ix.items[id] = item.Alias
	}

	for _, f := range []struct {
		field field
		lists []*StorageIDList
	}{
		{ownerField, s.Owner},
		{signerField, s.Signer},
		{issuerField, s.Issuer},
		{serverField, s.Server},
		{contractField, s.Unit},
	} {
		for _, list := range f.lists {
			key, err := identifier.FromString(list.ID)
			if nil != err {
				return err
			}
			for _, a := range list.List {
				accountID, err := identifier.FromString(a)
				if nil != err {
					return err
				}
				add(ix.index[f.field], key, accountID)
				ix.tuple(accountID).ids[f.field] = key
			}
		}
	}

	for _, list := range s.Index {
		unit := account.UnitType(list.Type)
		if !unit.IsValid() {
			return fault.InvalidUnitType
		}
		for _, a := range list.Account {
			accountID, err := identifier.FromString(a)
			if nil != err {
				return err
			}
			set, ok := ix.units[unit]
			if !ok {
				set = make(idSet)
				ix.units[unit] = set
			}
			set[accountID] = struct{}{}
			ix.tuple(accountID).unit = unit
		}
	}
	return nil
}

// Pack - serialise the index to bytes
func (ix *Index) Pack() ([]byte, error) {
	ix.RLock()
	defer ix.RUnlock()
	return ix.pack()
}

// must hold lock
func (ix *Index) pack() ([]byte, error) {
	return proto.Marshal(ix.serialise())
}

// Unpack - replace the contents of the index from bytes
func (ix *Index) Unpack(buffer []byte) error {
	s := &StorageAccounts{}
	if err := proto.Unmarshal(buffer, s); nil != err {
		return err
	}

	fresh := newIndex()
	if err := fresh.restore(s); nil != err {
		return err
	}

	ix.Lock()
	defer ix.Unlock()
	ix.items = fresh.items
	ix.data = fresh.data
	ix.index = fresh.index
	ix.units = fresh.units
	return nil
}
