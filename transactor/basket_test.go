// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/YCoro/opentxs/fault"
	"github.com/YCoro/opentxs/fixtures"
	"github.com/YCoro/opentxs/identifier"
)

func TestBasketMapping(t *testing.T) {
	tr := newMemoryTransactor(t)
	basket := fixtures.ID("basket")
	reserve := fixtures.ID("reserve")
	contract := fixtures.ID("contract")

	_, ok := tr.LookupBasketAccountID(basket)
	assert.False(t, ok, "not mapped yet")

	assert.Nil(t, tr.AddBasketAccountID(basket, reserve, contract), "map")
	assert.Nil(t, tr.AddBasketAccountID(basket, reserve, contract), "same mapping again")

	a, ok := tr.LookupBasketAccountID(basket)
	assert.True(t, ok, "by basket")
	assert.Equal(t, reserve, a, "account by basket")

	a, ok = tr.LookupBasketAccountIDByContractID(contract)
	assert.True(t, ok, "by contract")
	assert.Equal(t, reserve, a, "account by contract")

	c, ok := tr.LookupBasketContractIDByAccountID(reserve)
	assert.True(t, ok, "by account")
	assert.Equal(t, contract, c, "contract by account")

	_, ok = tr.LookupBasketContractIDByAccountID(fixtures.ID("other"))
	assert.False(t, ok, "unknown account")
	_, ok = tr.LookupBasketAccountIDByContractID(fixtures.ID("other"))
	assert.False(t, ok, "unknown contract")
}

func TestBasketNeverRemapped(t *testing.T) {
	tr := newMemoryTransactor(t)
	basket := fixtures.ID("basket")
	reserve := fixtures.ID("reserve")
	contract := fixtures.ID("contract")
	assert.Nil(t, tr.AddBasketAccountID(basket, reserve, contract), "map")

	assert.Equal(t, fault.BasketAlreadyMapped, tr.AddBasketAccountID(basket, fixtures.ID("r2"), contract), "new account")
	assert.Equal(t, fault.BasketAlreadyMapped, tr.AddBasketAccountID(basket, reserve, fixtures.ID("c2")), "new contract")
	assert.Equal(t, fault.BasketAlreadyMapped, tr.AddBasketAccountID(fixtures.ID("b2"), reserve, fixtures.ID("c2")), "account reused")
	assert.Equal(t, fault.BasketAlreadyMapped, tr.AddBasketAccountID(fixtures.ID("b2"), fixtures.ID("r2"), contract), "contract reused")

	a, _ := tr.LookupBasketAccountID(basket)
	assert.Equal(t, reserve, a, "unchanged")
}

func TestBasketValidation(t *testing.T) {
	tr := newMemoryTransactor(t)
	id := fixtures.ID("x")
	assert.Equal(t, fault.InvalidUnitID, tr.AddBasketAccountID(identifier.Empty, id, id), "basket")
	assert.Equal(t, fault.InvalidAccountID, tr.AddBasketAccountID(id, identifier.Empty, id), "account")
	assert.Equal(t, fault.InvalidContractID, tr.AddBasketAccountID(id, id, identifier.Empty), "contract")
}
