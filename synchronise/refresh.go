// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package synchronise

import (
	"time"

	"github.com/YCoro/opentxs/identifier"
)

// Refresh - queue a nymbox download for every registered local nym on
// every known server and an account download for every local account,
// then refresh stale contacts
func (e *Engine) Refresh() {
	e.refreshAccounts()
	if e.stopping() {
		return
	}
	e.refreshContacts()
	e.refreshes.Increment()
}

func (e *Engine) refreshAccounts() {
	log := e.log
	log.Debug("refresh accounts: begin")

	nyms := e.wallet.LocalNyms()
	for _, server := range e.wallet.ServerList() {
		for _, nym := range nyms {
			if e.stopping() {
				return
			}
			if !e.registered(nym, server) {
				log.Tracef("nym: %s  not registered on server: %s", nym, server)
				continue
			}
			q := e.operationsFor(identifier.NewContextID(nym, server))
			q.downloadNymbox.Push(identifier.Random(), true)
		}
	}

	for _, item := range e.storage.AccountList() {
		if e.stopping() {
			return
		}
		owner := e.storage.AccountOwner(item.ID)
		server := e.storage.AccountServer(item.ID)
		if owner.IsEmpty() || server.IsEmpty() {
			log.Warnf("account: %s  incomplete index entry", item.ID)
			continue
		}
		log.Tracef("account: %s  owner: %s  server: %s", item.ID, owner, server)
		q := e.operationsFor(identifier.NewContextID(owner, server))
		q.downloadAccount.Push(identifier.Random(), item.ID)
	}

	log.Debug("refresh accounts: end")
}

// nyms we hold are pushed to the contact manager, others are searched
// for; once a contact is older than the refresh window its nyms are
// also fetched from each server it claims
func (e *Engine) refreshContacts() {
	log := e.log

	for _, contactID := range e.contacts.ContactList() {
		if e.stopping() {
			return
		}

		contact, ok := e.contacts.Contact(contactID)
		if !ok {
			log.Warnf("contact: %s  listed but not loaded", contactID)
			continue
		}
		if 0 == len(contact.Nyms) {
			log.Tracef("contact: %s  has no nyms", contactID)
			continue
		}

		stale := time.Since(contact.LastUpdated) > e.tuning.contactRefresh

		for _, nymID := range contact.Nyms {
			if e.stopping() {
				return
			}

			nym, ok := e.wallet.Nym(nymID)
			if !ok {
				log.Debugf("contact: %s  nym: %s  search all servers", contactID, nymID)
				e.missingNyms.Push(identifier.Random(), nymID)
				continue
			}
			e.contacts.Update(nym)

			if !stale {
				continue
			}
			if 0 == len(contact.Servers) {
				e.missingNyms.Push(identifier.Random(), nymID)
				continue
			}
			for _, server := range contact.Servers {
				if server.IsEmpty() {
					continue
				}
				log.Debugf("contact: %s  fetch nym: %s  from server: %s", contactID, nymID, server)
				e.nymFetchFor(server).Push(identifier.Random(), nymID)
			}
		}
	}
}
