// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/YCoro/opentxs/account"
	"github.com/YCoro/opentxs/fault"
	"github.com/YCoro/opentxs/identifier"
)

func makeAccount(accountType account.Type) *account.Account {
	return &account.Account{
		ID:       identifier.FromContent([]byte("account")),
		Owner:    identifier.FromContent([]byte("owner")),
		Signer:   identifier.FromContent([]byte("signer")),
		Issuer:   identifier.FromContent([]byte("issuer")),
		Server:   identifier.FromContent([]byte("server")),
		Contract: identifier.FromContent([]byte("contract")),
		UnitType: account.USD,
		Type:     accountType,
		Alias:    "savings",
		Balance:  100,
	}
}

func TestPackUnpack(t *testing.T) {
	a := makeAccount(account.User)

	packed, err := a.Pack()
	assert.Nil(t, err, "pack")

	b, err := account.Unpack(packed)
	assert.Nil(t, err, "unpack")
	assert.Equal(t, a, b, "round trip")
}

func TestUnpackErrors(t *testing.T) {
	_, err := account.Unpack([]byte{0xff, 0xff, 0xff})
	assert.NotNil(t, err, "garbage")

	empty := &account.Account{}
	packed, err := empty.Pack()
	assert.Nil(t, err, "pack empty")
	b, err := account.Unpack(packed)
	assert.Nil(t, err, "empty identifiers survive")
	assert.True(t, b.ID.IsEmpty(), "empty id")
}

func TestDebit(t *testing.T) {
	a := makeAccount(account.User)

	assert.Equal(t, fault.InvalidAmount, a.Debit(0), "zero")
	assert.Equal(t, fault.InsufficientFunds, a.Debit(101), "overdraw")
	assert.Nil(t, a.Debit(100), "exact")
	assert.Equal(t, int64(0), a.Balance, "balance")

	issuer := makeAccount(account.Issuer)
	assert.Nil(t, issuer.Debit(1000), "issuer may go negative")
	assert.Equal(t, int64(-900), issuer.Balance, "issuer balance")
}

func TestCredit(t *testing.T) {
	a := makeAccount(account.Voucher)
	assert.Equal(t, fault.InvalidAmount, a.Credit(-5), "negative")
	assert.Nil(t, a.Credit(5), "credit")
	assert.Equal(t, int64(105), a.Balance, "balance")
}

func TestValidate(t *testing.T) {
	a := makeAccount(account.User)
	assert.Nil(t, a.Validate(), "valid")

	a.UnitType = account.Unknown
	assert.Nil(t, a.Validate(), "unknown unit type is allowed")

	a.Signer = identifier.Empty
	assert.Equal(t, fault.InvalidSignerID, a.Validate(), "missing signer")

	b := makeAccount(account.User)
	b.UnitType = account.UnitType(9999)
	assert.Equal(t, fault.InvalidUnitType, b.Validate(), "bad unit type")
}

func TestUnitTypeNames(t *testing.T) {
	u, err := account.UnitTypeFromString("BTC")
	assert.Nil(t, err, "parse")
	assert.Equal(t, account.Bitcoin, u, "bitcoin")
	assert.Equal(t, "btc", u.String(), "name")

	_, err = account.UnitTypeFromString("doubloon")
	assert.Equal(t, fault.InvalidUnitType, err, "unknown name")
}
