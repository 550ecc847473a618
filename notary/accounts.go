// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package notary

import (
	"github.com/YCoro/opentxs/account"
	"github.com/YCoro/opentxs/fault"
	"github.com/YCoro/opentxs/identifier"
)

// NewAccount - what a nym asks for when opening an account
type NewAccount struct {
	Owner    identifier.Identifier
	Issuer   identifier.Identifier // issuer nym of the unit
	Contract identifier.Identifier // unit definition
	UnitType account.UnitType
	Type     account.Type
	Alias    string
}

// CreateAccount - open an account with a zero balance
//
// the account is signed by the server nym and its initial balance
// is published
func (n *Notary) CreateAccount(request NewAccount) (*account.Account, error) {
	if account.Voucher == request.Type || "invalid" == request.Type.String() {
		return nil, fault.InvalidAccountType
	}

	a := &account.Account{
		ID:       identifier.Random(),
		Owner:    request.Owner,
		Signer:   n.transactor.ServerNym(),
		Issuer:   request.Issuer,
		Server:   n.transactor.Server(),
		Contract: request.Contract,
		UnitType: request.UnitType,
		Type:     request.Type,
		Alias:    request.Alias,
	}
	if err := a.Validate(); nil != err {
		return nil, err
	}

	n.Lock()
	defer n.Unlock()

	if err := n.store(a); nil != err {
		return nil, err
	}
	n.log.Infof("created %s account: %s  owner: %s  unit: %s", a.Type, a.ID, a.Owner, a.Contract)
	return a, nil
}

// Account - current state of an account
func (n *Notary) Account(accountID identifier.Identifier) (*account.Account, error) {
	n.Lock()
	defer n.Unlock()
	return n.load(accountID)
}

// Accounts - ids of accounts owned by a nym
func (n *Notary) Accounts(owner identifier.Identifier) []identifier.Identifier {
	return n.index.AccountsByOwner(owner)
}

// DeleteAccount - close an empty account of its owner
func (n *Notary) DeleteAccount(owner identifier.Identifier, accountID identifier.Identifier) error {
	n.Lock()
	defer n.Unlock()

	a, err := n.load(accountID)
	if nil != err {
		return err
	}
	if owner != a.Owner {
		return fault.NotAccountOwner
	}
	if 0 != a.Balance {
		return fault.AccountNotEmpty
	}
	if _, ok := n.transactor.LookupBasketContractIDByAccountID(accountID); ok {
		n.log.Errorf("delete account: %s  is a basket reserve", accountID)
		return fault.BasketAlreadyMapped
	}

	if err := n.index.Delete(accountID); nil != err {
		return err
	}
	n.log.Infof("deleted account: %s", accountID)
	return nil
}

// Credit - add to an account, returning the new balance
func (n *Notary) Credit(accountID identifier.Identifier, amount int64) (int64, error) {
	return n.change(accountID, func(a *account.Account) error {
		return a.Credit(amount)
	})
}

// Debit - take from an account, returning the new balance
func (n *Notary) Debit(accountID identifier.Identifier, amount int64) (int64, error) {
	return n.change(accountID, func(a *account.Account) error {
		return a.Debit(amount)
	})
}

func (n *Notary) change(accountID identifier.Identifier, apply func(*account.Account) error) (int64, error) {
	n.Lock()
	defer n.Unlock()

	a, err := n.load(accountID)
	if nil != err {
		return 0, err
	}
	if err := apply(a); nil != err {
		return 0, err
	}
	if err := n.store(a); nil != err {
		return 0, err
	}
	return a.Balance, nil
}

// Transfer - move funds between two accounts of the same unit
//
// the number must have been issued to the owner of the source
func (n *Notary) Transfer(nym identifier.Identifier, number uint64, source identifier.Identifier, target identifier.Identifier, amount int64) error {
	n.Lock()
	defer n.Unlock()

	from, err := n.load(source)
	if nil != err {
		return err
	}
	to, err := n.load(target)
	if nil != err {
		return err
	}
	switch {
	case source == target:
		return fault.InvalidAccountID
	case nym != from.Owner:
		return fault.NotAccountOwner
	case from.Contract != to.Contract:
		return fault.UnitMismatch
	}

	if err := from.Debit(amount); nil != err {
		return err
	}
	if err := to.Credit(amount); nil != err {
		return err
	}
	if err := n.consumeNumber(nym, number); nil != err {
		return err
	}

	if err := n.store(from); nil != err {
		return err
	}
	fault.PanicIfError("transfer: store target", n.store(to))

	n.log.Debugf("transfer: %d  from: %s  to: %s", amount, source, target)
	return nil
}

// RegisterBasket - open the reserve account backing a basket
// currency and record the mapping
//
// registering the same basket and contract again returns the
// existing reserve
func (n *Notary) RegisterBasket(basketID identifier.Identifier, contract identifier.Identifier, unit account.UnitType) (*account.Account, error) {
	if basketID.IsEmpty() {
		return nil, fault.InvalidAccountID
	}

	if accountID, ok := n.transactor.LookupBasketAccountID(basketID); ok {
		if existing, _ := n.transactor.LookupBasketContractIDByAccountID(accountID); existing != contract {
			return nil, fault.BasketAlreadyMapped
		}
		return n.Account(accountID)
	}

	server := n.transactor.ServerNym()
	reserve, err := n.CreateAccount(NewAccount{
		Owner:    server,
		Issuer:   server,
		Contract: contract,
		UnitType: unit,
		Type:     account.Reserve,
		Alias:    "basket reserve",
	})
	if nil != err {
		return nil, err
	}

	if err := n.transactor.AddBasketAccountID(basketID, reserve.ID, contract); nil != err {
		n.log.Errorf("basket: %s  mapping error: %s", basketID, err)
		n.Lock()
		_ = n.index.Delete(reserve.ID)
		n.Unlock()
		return nil, err
	}
	return reserve, nil
}

// BasketAccount - the reserve backing a basket currency
func (n *Notary) BasketAccount(basketID identifier.Identifier) (identifier.Identifier, bool) {
	return n.transactor.LookupBasketAccountID(basketID)
}
