// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package synchronise

import (
	"time"

	"github.com/YCoro/opentxs/account"
	"github.com/YCoro/opentxs/accountindex"
	"github.com/YCoro/opentxs/identifier"
	"github.com/YCoro/opentxs/instrument"
)

// NymInfo - credentials of a nym held in the wallet
type NymInfo struct {
	ID              identifier.Identifier
	CanSign         bool
	PreferredServer identifier.Identifier // empty if no server claim
}

// ServerContext - state of a local nym on one server
type ServerContext struct {
	Nym            identifier.Identifier
	Server         identifier.Identifier
	Request        uint64 // zero until the first registration
	StaleNym       bool   // local nym revision is newer than the registered one
	AdminPassword  string
	Admin          bool
	AdminAttempted bool
}

// Wallet - nyms, contracts, accounts and server contexts
type Wallet interface {
	Nym(id identifier.Identifier) (*NymInfo, bool)
	AddPreferredServer(nym identifier.Identifier, server identifier.Identifier, primary bool) bool
	HasServer(id identifier.Identifier) bool
	ImportServerContract(document []byte) (identifier.Identifier, error)
	Account(id identifier.Identifier) (*account.Account, bool)
	ServerContext(nym identifier.Identifier, server identifier.Identifier) (ServerContext, bool)
	SetAdminAttempted(nym identifier.Identifier, server identifier.Identifier)
	SetAdminGranted(nym identifier.Identifier, server identifier.Identifier)
	ServerList() []identifier.Identifier
	LocalNyms() []identifier.Identifier
}

// Contact - an address book entry
type Contact struct {
	ID          identifier.Identifier
	Nyms        []identifier.Identifier
	Servers     []identifier.Identifier // claimed communication servers
	LastUpdated time.Time
}

// Contacts - address book
type Contacts interface {
	ContactList() []identifier.Identifier
	Contact(id identifier.Identifier) (*Contact, bool)
	Update(nym *NymInfo)
}

// AccountStorage - read access to the locally indexed accounts
type AccountStorage interface {
	AccountList() []accountindex.Item
	AccountOwner(accountID identifier.Identifier) identifier.Identifier
	AccountServer(accountID identifier.Identifier) identifier.Identifier
	AccountContract(accountID identifier.Identifier) identifier.Identifier
}

// Settings - persistent string settings
type Settings interface {
	Get(section string, key string) (string, bool)
	Set(section string, key string, value string) bool
	Save() error
}

// Workflow - incoming cheque bookkeeping
type Workflow interface {
	ConveyedCheques(nym identifier.Identifier) []identifier.Identifier

	// LoadCheque - second result is false unless the cheque is in the
	// conveyed state
	LoadCheque(nym identifier.Identifier, chequeID identifier.Identifier) (*instrument.Payment, bool)
}
