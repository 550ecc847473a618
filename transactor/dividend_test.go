// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactor_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/YCoro/opentxs/account"
	"github.com/YCoro/opentxs/fault"
	"github.com/YCoro/opentxs/fixtures"
	"github.com/YCoro/opentxs/identifier"
	"github.com/YCoro/opentxs/transactor"
)

// in memory shareholder list
type shareholders map[identifier.Identifier]*account.Account

func (s shareholders) AccountsByContract(contract identifier.Identifier) []identifier.Identifier {
	result := []identifier.Identifier{}
	for id, a := range s {
		if a.Contract == contract {
			result = append(result, id)
		}
	}
	return result
}

func (s shareholders) LoadAccount(accountID identifier.Identifier) (*account.Account, error) {
	if a, ok := s[accountID]; ok {
		return a, nil
	}
	return nil, fault.AccountNotFound
}

func holder(name string, accountType account.Type, balance int64) *account.Account {
	return &account.Account{
		ID:       fixtures.ID("account-" + name),
		Owner:    fixtures.ID(name),
		Contract: fixtures.ID("shares"),
		Type:     accountType,
		Balance:  balance,
	}
}

func TestPayDividend(t *testing.T) {
	tr := newMemoryTransactor(t)
	payout := fixtures.ID("usd")

	alice := holder("alice", account.User, 10)
	bob := holder("bob", account.User, 5)
	carol := holder("carol", account.User, 0)
	issuer := holder("issuer", account.Issuer, -15)
	source := shareholders{alice.ID: alice, bob.ID: bob, carol.ID: carol, issuer.ID: issuer}

	reserve, err := tr.GetVoucherAccount(payout)
	assert.Nil(t, err, "reserve")
	assert.Nil(t, reserve.Credit(100), "fund")
	reserve.Release()

	paid := map[identifier.Identifier]int64{}
	deliver := func(p transactor.DividendPayment) error {
		if p.Recipient == bob.Owner {
			return fault.InvalidNymID
		}
		paid[p.Recipient] = p.Amount
		assert.NotZero(t, p.TransactionNumber, "number issued")
		assert.Equal(t, "q3", p.Memo, "memo")
		return nil
	}

	result, err := tr.PayDividend(transactor.Dividend{
		Payer:          fixtures.ID("issuer"),
		ShareContract:  fixtures.ID("shares"),
		PayoutUnit:     payout,
		PayoutPerShare: 3,
		Memo:           "q3",
	}, source, deliver)
	assert.Nil(t, err, "pay")

	assert.Equal(t, int64(30), result.PaidOut, "paid out")
	assert.Equal(t, int64(15), result.Returned, "returned")
	assert.Equal(t, map[identifier.Identifier]int64{alice.Owner: 30}, paid, "only alice paid")
	assert.Equal(t, 1, len(result.Payments), "payments")
	assert.Equal(t, uint64(2), tr.TransactionNumber(), "one number per attempted payout")

	reserve, err = tr.GetVoucherAccount(payout)
	assert.Nil(t, err, "reserve after")
	defer reserve.Release()
	assert.Equal(t, int64(70), reserve.Balance(), "returned payout back in reserve")
}

func TestPayDividendInsufficientReserve(t *testing.T) {
	tr := newMemoryTransactor(t)
	alice := holder("alice", account.User, 10)

	_, err := tr.PayDividend(transactor.Dividend{
		ShareContract:  fixtures.ID("shares"),
		PayoutUnit:     fixtures.ID("usd"),
		PayoutPerShare: 1,
	}, shareholders{alice.ID: alice}, func(transactor.DividendPayment) error { return nil })
	assert.Equal(t, fault.InsufficientFunds, err, "empty reserve")

	// handle was released
	v, err := tr.GetVoucherAccount(fixtures.ID("usd"))
	assert.Nil(t, err, "reserve available")
	v.Release()
}

func TestPayDividendValidation(t *testing.T) {
	tr := newMemoryTransactor(t)
	nop := func(transactor.DividendPayment) error { return nil }

	_, err := tr.PayDividend(transactor.Dividend{PayoutUnit: fixtures.ID("usd"), PayoutPerShare: 1}, shareholders{}, nop)
	assert.Equal(t, fault.InvalidUnitID, err, "no share unit")

	_, err = tr.PayDividend(transactor.Dividend{ShareContract: fixtures.ID("s"), PayoutUnit: fixtures.ID("usd")}, shareholders{}, nop)
	assert.Equal(t, fault.InvalidAmount, err, "no amount")
}

func TestDividendAmount(t *testing.T) {
	tests := []struct {
		shares  int64
		payout  int64
		amount  int64
		invalid bool
	}{
		{10, 3, 30, false},
		{1, math.MaxInt64, math.MaxInt64, false},
		{math.MaxInt64 / 2, 2, math.MaxInt64 - 1, false},
		{math.MaxInt64/2 + 1, 2, 0, true},
		{math.MaxInt64, math.MaxInt64, 0, true},
		{0, 3, 0, true},
		{10, 0, 0, true},
		{-10, 3, 0, true},
	}

	for i, test := range tests {
		amount, err := transactor.DividendAmount(test.shares, test.payout)
		if test.invalid {
			assert.Equal(t, fault.InvalidAmount, err, "%d: overflow accepted", i)
			continue
		}
		assert.Nil(t, err, "%d: error", i)
		assert.Equal(t, test.amount, amount, "%d: wrong amount", i)
	}

	total, err := transactor.AddAmount(math.MaxInt64-1, 1)
	assert.Nil(t, err, "sum at limit")
	assert.Equal(t, int64(math.MaxInt64), total, "wrong sum")

	_, err = transactor.AddAmount(math.MaxInt64, 1)
	assert.Equal(t, fault.InvalidAmount, err, "sum overflow accepted")
}

func TestPayDividendOverflow(t *testing.T) {
	tr := newMemoryTransactor(t)
	payout := fixtures.ID("usd")
	whale := holder("whale", account.User, math.MaxInt64/2+1)

	reserve, err := tr.GetVoucherAccount(payout)
	assert.Nil(t, err, "reserve")
	assert.Nil(t, reserve.Credit(100), "fund")
	reserve.Release()

	result, err := tr.PayDividend(transactor.Dividend{
		ShareContract:  fixtures.ID("shares"),
		PayoutUnit:     payout,
		PayoutPerShare: 2,
	}, shareholders{whale.ID: whale}, func(transactor.DividendPayment) error { return nil })
	assert.Equal(t, fault.InvalidAmount, err, "overflow accepted")
	assert.Equal(t, int64(0), result.PaidOut, "paid out")
	assert.Equal(t, uint64(0), tr.TransactionNumber(), "number issued")

	reserve, err = tr.GetVoucherAccount(payout)
	assert.Nil(t, err, "reserve after")
	defer reserve.Release()
	assert.Equal(t, int64(100), reserve.Balance(), "reserve changed")
}
