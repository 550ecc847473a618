// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package notary - server side ledger operations
//
// accounts are kept in the account index, transaction numbers,
// voucher reserves and basket mappings come from the transactor and
// every balance change is published to account update subscribers
package notary

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/YCoro/opentxs/account"
	"github.com/YCoro/opentxs/accountindex"
	"github.com/YCoro/opentxs/fault"
	"github.com/YCoro/opentxs/identifier"
	"github.com/YCoro/opentxs/storage"
	"github.com/YCoro/opentxs/transactor"
)

// Publisher - receives the new balance after every change
type Publisher interface {
	Send(accountID identifier.Identifier, balance int64) error
}

// Notary - ledger service of one server
type Notary struct {
	sync.Mutex // serialises balance changes

	log        *logger.L
	transactor *transactor.Transactor
	contexts   *transactor.Contexts
	index      *accountindex.Index
	vouchers   storage.Handle
	publisher  Publisher
}

// New - create the service
//
// vouchers holds the outstanding voucher records and publisher may
// be nil when there are no subscribers
func New(t *transactor.Transactor, contexts *transactor.Contexts, index *accountindex.Index, vouchers storage.Handle, publisher Publisher) (*Notary, error) {
	log := logger.New("notary")
	if nil == log {
		return nil, fault.InvalidLoggerChannel
	}
	if nil == t || nil == contexts || nil == index || nil == vouchers {
		return nil, fault.NotInitialised
	}

	log.Infof("server: %s  nym: %s", t.Server(), t.ServerNym())

	return &Notary{
		log:        log,
		transactor: t,
		contexts:   contexts,
		index:      index,
		vouchers:   vouchers,
		publisher:  publisher,
	}, nil
}

// Server - id of the notary
func (n *Notary) Server() identifier.Identifier {
	return n.transactor.Server()
}

// IssueTransactionNumber - give a nym a fresh number to sign with
func (n *Notary) IssueTransactionNumber(nym identifier.Identifier) (uint64, error) {
	ctx, err := n.contexts.Get(nym)
	if nil != err {
		return 0, err
	}
	number, err := n.transactor.IssueNextTransactionNumberToNym(ctx)
	if nil != err {
		return 0, err
	}
	n.log.Debugf("nym: %s  issued number: %d", nym, number)
	return number, nil
}

// IssuedNumbers - the numbers a nym has not yet used
func (n *Notary) IssuedNumbers(nym identifier.Identifier) ([]uint64, error) {
	ctx, err := n.contexts.Get(nym)
	if nil != err {
		return nil, err
	}
	return ctx.IssuedNumbers(), nil
}

// a request is only accepted with a number issued to its nym
func (n *Notary) consumeNumber(nym identifier.Identifier, number uint64) error {
	ctx, err := n.contexts.Get(nym)
	if nil != err {
		return err
	}
	if !ctx.VerifyIssuedNumber(number) {
		n.log.Warnf("nym: %s  number: %d  not issued", nym, number)
		return fault.TransactionNumberNotFound
	}
	return ctx.ConsumeIssuedNumber(number)
}

// must hold lock
func (n *Notary) load(accountID identifier.Identifier) (*account.Account, error) {
	if accountID.IsEmpty() {
		return nil, fault.InvalidAccountID
	}
	return n.index.LoadAccount(accountID)
}

// must hold lock
func (n *Notary) store(a *account.Account) error {
	if err := n.index.StoreAccount(a); nil != err {
		n.log.Errorf("store account: %s  error: %s", a.ID, err)
		return err
	}
	n.publish(a.ID, a.Balance)
	return nil
}

// a failed publication is logged, the ledger is already updated
func (n *Notary) publish(accountID identifier.Identifier, balance int64) {
	if nil == n.publisher {
		return
	}
	if err := n.publisher.Send(accountID, balance); nil != err {
		n.log.Warnf("publish account: %s  balance: %d  error: %s", accountID, balance, err)
	}
}
