// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactor_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/YCoro/opentxs/account"
	"github.com/YCoro/opentxs/fault"
	"github.com/YCoro/opentxs/fixtures"
	"github.com/YCoro/opentxs/identifier"
	"github.com/YCoro/opentxs/transactor"
)

func TestVoucherAccountShared(t *testing.T) {
	tr := newMemoryTransactor(t)
	unit := fixtures.ID("gold")

	first, err := tr.GetVoucherAccount(unit)
	assert.Nil(t, err, "first")
	a := first.Account()
	assert.Equal(t, account.Voucher, a.Type, "voucher type")
	assert.Equal(t, serverNym, a.Owner, "owned by notary")
	assert.Equal(t, unit, a.Contract, "unit")
	assert.Equal(t, transactor.VoucherAccountID(serverID, unit), a.ID, "fixed id")
	first.Release()

	second, err := tr.GetVoucherAccount(unit)
	assert.Nil(t, err, "second")
	defer second.Release()
	assert.True(t, a == second.Account(), "same underlying account")

	other, err := tr.GetVoucherAccount(fixtures.ID("silver"))
	assert.Nil(t, err, "other unit does not wait")
	assert.False(t, a == other.Account(), "different unit different account")
	other.Release()

	_, err = tr.GetVoucherAccount(identifier.Empty)
	assert.Equal(t, fault.InvalidUnitID, err, "empty unit")
}

func TestVoucherAccountExclusive(t *testing.T) {
	tr := newMemoryTransactor(t)
	unit := fixtures.ID("gold")

	held, err := tr.GetVoucherAccount(unit)
	assert.Nil(t, err, "hold")

	var mu sync.Mutex
	acquired := false
	done := make(chan struct{})
	go func() {
		defer close(done)
		v, err := tr.GetVoucherAccount(unit)
		assert.Nil(t, err, "waiter")
		mu.Lock()
		acquired = true
		mu.Unlock()
		v.Release()
	}()

	time.Sleep(50 * time.Millisecond)
	mu.Lock()
	assert.False(t, acquired, "second holder blocked")
	mu.Unlock()

	held.Release()
	held.Release() // idempotent

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("waiter never acquired the account")
	}
	mu.Lock()
	assert.True(t, acquired, "acquired after release")
	mu.Unlock()
}

func TestVoucherUseAfterRelease(t *testing.T) {
	tr := newMemoryTransactor(t)
	v, err := tr.GetVoucherAccount(fixtures.ID("gold"))
	assert.Nil(t, err, "get")
	v.Release()
	assert.Panics(t, func() { _ = v.Credit(1) }, "use after release")
}

func TestVoucherBalance(t *testing.T) {
	tr := newMemoryTransactor(t)
	v, err := tr.GetVoucherAccount(fixtures.ID("gold"))
	assert.Nil(t, err, "get")
	defer v.Release()

	assert.Equal(t, fault.InsufficientFunds, v.Debit(1), "empty reserve")
	assert.Nil(t, v.Credit(10), "credit")
	assert.Nil(t, v.Debit(4), "debit")
	assert.Equal(t, int64(6), v.Balance(), "balance")
	assert.Nil(t, v.Save(), "save without pool")
}
