// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"github.com/YCoro/opentxs/fault"
	"github.com/YCoro/opentxs/identifier"
)

// Type - role of an account on the notary
type Type uint32

// account roles
const (
	User    Type = iota
	Issuer  Type = iota
	Voucher Type = iota
	Reserve Type = iota // backing account of a basket currency
)

func (t Type) String() string {
	switch t {
	case User:
		return "user"
	case Issuer:
		return "issuer"
	case Voucher:
		return "voucher"
	case Reserve:
		return "reserve"
	default:
		return "invalid"
	}
}

// Account - a ledger account held on a notary
type Account struct {
	ID       identifier.Identifier
	Owner    identifier.Identifier
	Signer   identifier.Identifier
	Issuer   identifier.Identifier
	Server   identifier.Identifier
	Contract identifier.Identifier
	UnitType UnitType
	Type     Type
	Alias    string
	Balance  int64
}

// CanGoNegative - only the issuer's account may be overdrawn, it
// represents the outstanding supply of the unit
func (a *Account) CanGoNegative() bool {
	return Issuer == a.Type
}

// Credit - add to the balance
func (a *Account) Credit(amount int64) error {
	if amount <= 0 {
		return fault.InvalidAmount
	}
	a.Balance += amount
	return nil
}

// Debit - remove from the balance
func (a *Account) Debit(amount int64) error {
	if amount <= 0 {
		return fault.InvalidAmount
	}
	if !a.CanGoNegative() && a.Balance < amount {
		return fault.InsufficientFunds
	}
	a.Balance -= amount
	return nil
}

// Validate - all identifying fields must be set
func (a *Account) Validate() error {
	switch {
	case a.ID.IsEmpty():
		return fault.InvalidAccountID
	case a.Owner.IsEmpty():
		return fault.InvalidNymID
	case a.Signer.IsEmpty():
		return fault.InvalidSignerID
	case a.Issuer.IsEmpty():
		return fault.InvalidIssuerID
	case a.Server.IsEmpty():
		return fault.InvalidServerID
	case a.Contract.IsEmpty():
		return fault.InvalidContractID
	case !a.UnitType.IsValid():
		return fault.InvalidUnitType
	}
	return nil
}
