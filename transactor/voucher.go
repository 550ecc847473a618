// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactor

import (
	"sync"

	"github.com/YCoro/opentxs/account"
	"github.com/YCoro/opentxs/fault"
	"github.com/YCoro/opentxs/identifier"
	"github.com/YCoro/opentxs/storage"
)

// one reserve account and the lock giving exclusive access to it
type voucherEntry struct {
	sync.Mutex
	account *account.Account
}

type voucherAccounts struct {
	sync.Mutex
	t       *Transactor
	handle  storage.Handle
	entries map[identifier.Identifier]*voucherEntry
}

func newVoucherAccounts(t *Transactor, handle storage.Handle) *voucherAccounts {
	return &voucherAccounts{
		t:       t,
		handle:  handle,
		entries: make(map[identifier.Identifier]*voucherEntry),
	}
}

// the map lock is never held while waiting for an entry lock
func (v *voucherAccounts) get(unitID identifier.Identifier) (*ExclusiveAccount, error) {
	if unitID.IsEmpty() {
		return nil, fault.InvalidUnitID
	}

	v.Lock()
	e, ok := v.entries[unitID]
	if !ok {
		a, err := v.load(unitID)
		if nil != err {
			v.Unlock()
			return nil, err
		}
		e = &voucherEntry{
			account: a,
		}
		v.entries[unitID] = e
	}
	v.Unlock()

	e.Lock()
	return &ExclusiveAccount{
		entry:  e,
		handle: v.handle,
		unitID: unitID,
	}, nil
}

// must hold lock
func (v *voucherAccounts) load(unitID identifier.Identifier) (*account.Account, error) {
	if nil != v.handle {
		if buffer := v.handle.Get(unitID[:]); nil != buffer {
			return account.Unpack(buffer)
		}
	}

	t := v.t
	a := &account.Account{
		ID:       VoucherAccountID(t.server, unitID),
		Owner:    t.serverNym,
		Signer:   t.serverNym,
		Issuer:   t.serverNym,
		Server:   t.server,
		Contract: unitID,
		UnitType: account.Unknown,
		Type:     account.Voucher,
		Alias:    "voucher reserve",
	}
	t.log.Infof("created voucher account: %s  for unit: %s", a.ID, unitID)
	return a, nil
}

// VoucherAccountID - the fixed id of a notary's voucher reserve for a unit
func VoucherAccountID(server identifier.Identifier, unitID identifier.Identifier) identifier.Identifier {
	record := make([]byte, 0, 2*identifier.Length+7)
	record = append(record, server[:]...)
	record = append(record, unitID[:]...)
	record = append(record, "voucher"...)
	return identifier.FromContent(record)
}

// ExclusiveAccount - checked out voucher reserve
//
// only one handle per unit exists at a time; Release returns it
type ExclusiveAccount struct {
	entry    *voucherEntry
	handle   storage.Handle
	unitID   identifier.Identifier
	once     sync.Once
	released bool
}

// Account - the underlying reserve account
func (x *ExclusiveAccount) Account() *account.Account {
	x.check()
	return x.entry.account
}

// Balance - current reserve balance
func (x *ExclusiveAccount) Balance() int64 {
	x.check()
	return x.entry.account.Balance
}

// Credit - add funds to the reserve
func (x *ExclusiveAccount) Credit(amount int64) error {
	x.check()
	return x.entry.account.Credit(amount)
}

// Debit - pay out of the reserve
func (x *ExclusiveAccount) Debit(amount int64) error {
	x.check()
	return x.entry.account.Debit(amount)
}

// Save - persist the reserve account
func (x *ExclusiveAccount) Save() error {
	x.check()
	if nil == x.handle {
		return nil
	}
	buffer, err := x.entry.account.Pack()
	if nil != err {
		return err
	}
	return x.handle.Put(x.unitID[:], buffer)
}

// Release - give up exclusive access, safe to call more than once
func (x *ExclusiveAccount) Release() {
	x.once.Do(func() {
		x.released = true
		x.entry.Unlock()
	})
}

func (x *ExclusiveAccount) check() {
	if x.released {
		fault.Panic("voucher account used after release")
	}
}
