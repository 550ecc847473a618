// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package accountindex

import (
	"sort"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/YCoro/opentxs/account"
	"github.com/YCoro/opentxs/fault"
	"github.com/YCoro/opentxs/identifier"
	"github.com/YCoro/opentxs/storage"
)

// positions of the identifier fields in an account tuple
type field int

const (
	ownerField    field = iota
	signerField   field = iota
	issuerField   field = iota
	serverField   field = iota
	contractField field = iota
	fieldCount          = iota
)

var fieldNames = [fieldCount]string{"owner", "signer", "issuer", "server", "contract"}

// the invalid error to return for an empty value in each field
var fieldErrors = [fieldCount]error{
	fault.InvalidNymID,
	fault.InvalidSignerID,
	fault.InvalidIssuerID,
	fault.InvalidServerID,
	fault.InvalidContractID,
}

type idSet map[identifier.Identifier]struct{}

// forward record of one account
type tuple struct {
	ids  [fieldCount]identifier.Identifier
	unit account.UnitType
}

// key under which the serialised index is kept
var rootKey = []byte("root")

// Item - an indexed account and its alias
type Item struct {
	ID    identifier.Identifier
	Alias string
}

// Index - account metadata with inverted indices by owner, signer,
// issuer, server, contract and unit type
//
// every account in an inverted value-set has that value in its
// forward tuple and vice versa
type Index struct {
	sync.RWMutex

	log   *logger.L
	blobs storage.Handle
	root  storage.Handle

	items map[identifier.Identifier]string
	data  map[identifier.Identifier]*tuple
	index [fieldCount]map[identifier.Identifier]idSet
	units map[account.UnitType]idSet
}

// New - create an index persisting account blobs in one pool and
// the index root in another, loading any saved root
func New(blobs storage.Handle, root storage.Handle) (*Index, error) {
	ix := newIndex()
	ix.blobs = blobs
	ix.root = root

	if nil == root {
		return ix, nil
	}

	buffer := root.Get(rootKey)
	if nil == buffer {
		ix.log.Info("empty account index")
		return ix, nil
	}
	if err := ix.Unpack(buffer); nil != err {
		ix.log.Errorf("load account index error: %s", err)
		return nil, err
	}
	ix.log.Infof("loaded account index: %d accounts", len(ix.items))
	return ix, nil
}

func newIndex() *Index {
	ix := &Index{
		log:   logger.New("account-index"),
		items: make(map[identifier.Identifier]string),
		data:  make(map[identifier.Identifier]*tuple),
		units: make(map[account.UnitType]idSet),
	}
	for i := range ix.index {
		ix.index[i] = make(map[identifier.Identifier]idSet)
	}
	return ix
}

// Store - save an account blob and index its metadata
//
// every field is checked before anything changes: an empty
// identifier or a value that differs from one already indexed for
// this account rejects the whole call
func (ix *Index) Store(
	accountID identifier.Identifier,
	data []byte,
	alias string,
	owner identifier.Identifier,
	signer identifier.Identifier,
	issuer identifier.Identifier,
	server identifier.Identifier,
	contract identifier.Identifier,
	unit account.UnitType,
) error {
	ids := [fieldCount]identifier.Identifier{owner, signer, issuer, server, contract}

	ix.Lock()
	defer ix.Unlock()

	err := ix.check(accountID, ids, unit)
	if nil != err {
		ix.log.Errorf("store account: %s  error: %s", accountID, err)
		return err
	}

	// previous state, restored if the root cannot be saved
	var previousBlob []byte
	var previousTuple *tuple
	if t, ok := ix.data[accountID]; ok {
		saved := *t
		previousTuple = &saved
	}
	previousAlias, indexed := ix.items[accountID]

	if nil != ix.blobs {
		previousBlob = ix.blobs.Get(accountID[:])
		err = ix.blobs.Put(accountID[:], data)
		if nil != err {
			ix.log.Errorf("store account: %s  blob error: %s", accountID, err)
			return err
		}
	}

	ix.apply(accountID, ids, unit)
	ix.items[accountID] = alias

	err = ix.save()
	if nil == err {
		return nil
	}

	ix.unindex(accountID)
	if nil != previousTuple {
		ix.apply(accountID, previousTuple.ids, previousTuple.unit)
	}
	if indexed {
		ix.items[accountID] = previousAlias
	} else {
		delete(ix.items, accountID)
	}

	if nil != ix.blobs {
		var rollback error
		if nil == previousBlob {
			rollback = ix.blobs.Delete(accountID[:])
		} else {
			rollback = ix.blobs.Put(accountID[:], previousBlob)
		}
		if nil != rollback {
			ix.log.Errorf("store account: %s  restore blob error: %s", accountID, rollback)
		}
	}
	return err
}

// StoreAccount - pack and store an account value
func (ix *Index) StoreAccount(a *account.Account) error {
	if err := a.Validate(); nil != err {
		return err
	}
	data, err := a.Pack()
	if nil != err {
		return err
	}
	return ix.Store(a.ID, data, a.Alias, a.Owner, a.Signer, a.Issuer, a.Server, a.Contract, a.UnitType)
}

// must hold lock
func (ix *Index) check(accountID identifier.Identifier, ids [fieldCount]identifier.Identifier, unit account.UnitType) error {
	if accountID.IsEmpty() {
		return fault.InvalidAccountID
	}
	for i, id := range ids {
		if id.IsEmpty() {
			return fieldErrors[i]
		}
	}
	if !unit.IsValid() {
		return fault.InvalidUnitType
	}

	t, ok := ix.data[accountID]
	if !ok {
		return nil
	}
	for i, id := range ids {
		if !t.ids[i].IsEmpty() && t.ids[i] != id {
			ix.log.Warnf("account: %s  %s: %s  conflicts with: %s", accountID, fieldNames[i], id, t.ids[i])
			return fault.AccountConflict
		}
	}
	if account.Unknown != t.unit && account.Unknown != unit && t.unit != unit {
		ix.log.Warnf("account: %s  unit: %s  conflicts with: %s", accountID, unit, t.unit)
		return fault.UnitTypeAlreadySet
	}
	return nil
}

// must hold lock
func (ix *Index) apply(accountID identifier.Identifier, ids [fieldCount]identifier.Identifier, unit account.UnitType) {
	t := ix.tuple(accountID)
	for i, id := range ids {
		t.ids[i] = id
		add(ix.index[i], id, accountID)
	}
	if account.Unknown != unit {
		t.unit = unit
		set, ok := ix.units[unit]
		if !ok {
			set = make(idSet)
			ix.units[unit] = set
		}
		set[accountID] = struct{}{}
	}
}

// must hold lock
func (ix *Index) tuple(accountID identifier.Identifier) *tuple {
	t, ok := ix.data[accountID]
	if !ok {
		t = &tuple{}
		ix.data[accountID] = t
	}
	return t
}

func add(index map[identifier.Identifier]idSet, key identifier.Identifier, accountID identifier.Identifier) {
	set, ok := index[key]
	if !ok {
		set = make(idSet)
		index[key] = set
	}
	set[accountID] = struct{}{}
}

func remove(index map[identifier.Identifier]idSet, key identifier.Identifier, accountID identifier.Identifier) {
	set, ok := index[key]
	if !ok {
		return
	}
	delete(set, accountID)
	if 0 == len(set) {
		delete(index, key)
	}
}

// must hold lock
func (ix *Index) unindex(accountID identifier.Identifier) {
	t, ok := ix.data[accountID]
	if !ok {
		return
	}
	for i, id := range t.ids {
		remove(ix.index[i], id, accountID)
	}
	if set, ok := ix.units[t.unit]; ok {
		delete(set, accountID)
		if 0 == len(set) {
			delete(ix.units, t.unit)
		}
	}
	delete(ix.data, accountID)
}

// Delete - remove an account from every index and delete its blob
//
// an account absent from the index still has its blob deleted
func (ix *Index) Delete(accountID identifier.Identifier) error {
	ix.Lock()
	defer ix.Unlock()

	ix.unindex(accountID)
	delete(ix.items, accountID)

	if nil != ix.blobs {
		if err := ix.blobs.Delete(accountID[:]); nil != err {
			ix.log.Errorf("delete account: %s  error: %s", accountID, err)
			return err
		}
	}
	return ix.save()
}

// Load - fetch the stored blob and alias of an account
func (ix *Index) Load(accountID identifier.Identifier) ([]byte, string, error) {
	ix.RLock()
	alias, ok := ix.items[accountID]
	ix.RUnlock()

	if !ok || nil == ix.blobs {
		return nil, "", fault.AccountNotFound
	}
	data := ix.blobs.Get(accountID[:])
	if nil == data {
		return nil, "", fault.AccountNotFound
	}
	return data, alias, nil
}

// LoadAccount - fetch and unpack an account
func (ix *Index) LoadAccount(accountID identifier.Identifier) (*account.Account, error) {
	data, _, err := ix.Load(accountID)
	if nil != err {
		return nil, err
	}
	return account.Unpack(data)
}

// Alias - the display name of an account
func (ix *Index) Alias(accountID identifier.Identifier) string {
	ix.RLock()
	defer ix.RUnlock()
	return ix.items[accountID]
}

// SetAlias - rename an indexed account
func (ix *Index) SetAlias(accountID identifier.Identifier, alias string) error {
	ix.Lock()
	defer ix.Unlock()

	previous, ok := ix.items[accountID]
	if !ok {
		return fault.AccountNotFound
	}
	ix.items[accountID] = alias
	err := ix.save()
	if nil != err {
		ix.items[accountID] = previous
	}
	return err
}

// AccountList - all indexed accounts sorted by id
func (ix *Index) AccountList() []Item {
	ix.RLock()
	defer ix.RUnlock()

	result := make([]Item, 0, len(ix.items))
	for id, alias := range ix.items {
		result = append(result, Item{ID: id, Alias: alias})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID.Less(result[j].ID)
	})
	return result
}

// AccountsByOwner - accounts owned by a nym
func (ix *Index) AccountsByOwner(owner identifier.Identifier) []identifier.Identifier {
	return ix.by(ownerField, owner)
}

// AccountsBySigner - accounts signed by a nym
func (ix *Index) AccountsBySigner(signer identifier.Identifier) []identifier.Identifier {
	return ix.by(signerField, signer)
}

// AccountsByIssuer - accounts for units issued by a nym
func (ix *Index) AccountsByIssuer(issuer identifier.Identifier) []identifier.Identifier {
	return ix.by(issuerField, issuer)
}

// AccountsByServer - accounts held on a notary
func (ix *Index) AccountsByServer(server identifier.Identifier) []identifier.Identifier {
	return ix.by(serverField, server)
}

// AccountsByContract - accounts denominated in a unit definition
func (ix *Index) AccountsByContract(contract identifier.Identifier) []identifier.Identifier {
	return ix.by(contractField, contract)
}

// AccountsByUnit - accounts of a unit type
func (ix *Index) AccountsByUnit(unit account.UnitType) []identifier.Identifier {
	ix.RLock()
	defer ix.RUnlock()
	return sorted(ix.units[unit])
}

func (ix *Index) by(f field, key identifier.Identifier) []identifier.Identifier {
	ix.RLock()
	defer ix.RUnlock()
	return sorted(ix.index[f][key])
}

func sorted(set idSet) []identifier.Identifier {
	result := make([]identifier.Identifier, 0, len(set))
	for id := range set {
		result = append(result, id)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Less(result[j])
	})
	return result
}

// AccountOwner - forward lookup, empty if not indexed
func (ix *Index) AccountOwner(accountID identifier.Identifier) identifier.Identifier {
	return ix.field(accountID, ownerField)
}

// AccountSigner - forward lookup, empty if not indexed
func (ix *Index) AccountSigner(accountID identifier.Identifier) identifier.Identifier {
	return ix.field(accountID, signerField)
}

// AccountIssuer - forward lookup, empty if not indexed
func (ix *Index) AccountIssuer(accountID identifier.Identifier) identifier.Identifier {
	return ix.field(accountID, issuerField)
}

// AccountServer - forward lookup, empty if not indexed
func (ix *Index) AccountServer(accountID identifier.Identifier) identifier.Identifier {
	return ix.field(accountID, serverField)
}

// AccountContract - forward lookup, empty if not indexed
func (ix *Index) AccountContract(accountID identifier.Identifier) identifier.Identifier {
	return ix.field(accountID, contractField)
}

// AccountUnit - forward lookup, Unknown if not indexed
func (ix *Index) AccountUnit(accountID identifier.Identifier) account.UnitType {
	ix.RLock()
	defer ix.RUnlock()
	if t, ok := ix.data[accountID]; ok {
		return t.unit
	}
	return account.Unknown
}

func (ix *Index) field(accountID identifier.Identifier, f field) identifier.Identifier {
	ix.RLock()
	defer ix.RUnlock()
	if t, ok := ix.data[accountID]; ok {
		return t.ids[f]
	}
	return identifier.Empty
}

// must hold lock
func (ix *Index) save() error {
	if nil == ix.root {
		return nil
	}
	buffer, err := ix.pack()
	if nil != err {
		ix.log.Errorf("serialise account index error: %s", err)
		return err
	}
	err = ix.root.Put(rootKey, buffer)
	if nil != err {
		ix.log.Errorf("save account index error: %s", err)
	}
	return err
}
