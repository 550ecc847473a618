// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package synchronise

import (
	"github.com/YCoro/opentxs/fault"
	"github.com/YCoro/opentxs/identifier"
	"github.com/YCoro/opentxs/instrument"
	"github.com/YCoro/opentxs/uniquequeue"
)

// CanDeposit - whether recipient can deposit the payment
//
// accountHint may be empty; an unregistered recipient gets a nymbox
// download queued and a recipient without a matching account gets an
// account registration queued
func (e *Engine) CanDeposit(recipient identifier.Identifier, accountHint identifier.Identifier, payment *instrument.Payment) Depositability {
	status, _, _ := e.canDeposit(payment, recipient, accountHint)
	return status
}

// DepositAccount - like CanDeposit, also returning the account the
// payment would be deposited to when ready
func (e *Engine) DepositAccount(recipient identifier.Identifier, accountHint identifier.Identifier, payment *instrument.Payment) (Depositability, identifier.Identifier) {
	status, _, accountID := e.canDeposit(payment, recipient, accountHint)
	return status, accountID
}

// returns the deposit server and, when ready, the deposit account
func (e *Engine) canDeposit(payment *instrument.Payment, recipient identifier.Identifier, accountHint identifier.Identifier) (Depositability, identifier.Identifier, identifier.Identifier) {
	log := e.log

	nym, server, unit, err := payment.Extract()
	if nil != err {
		log.Errorf("deposit: %s", err)
		return InvalidInstrument, identifier.Empty, identifier.Empty
	}

	if status := validRecipient(nym, recipient); DepositReady != status {
		log.Errorf("deposit: payment for: %s  not for: %s", nym, recipient)
		return status, server, identifier.Empty
	}

	if !e.registered(recipient, server) {
		e.ScheduleDownloadNymbox(recipient, server)
		log.Errorf("deposit: recipient: %s  not registered on server: %s", recipient, server)
		return NotRegistered, server, identifier.Empty
	}

	status, accountID := e.validAccount(recipient, server, unit, accountHint)
	switch status {
	case AccountNotSpecified:
		log.Errorf("deposit: multiple accounts for unit: %s  cannot choose one", unit)
	case WrongAccount:
		log.Errorf("deposit: account: %s  not valid for this payment", accountHint)
	case NoAccount:
		log.Warnf("deposit: recipient: %s  needs an account for unit: %s  on server: %s", recipient, unit, server)
		e.ScheduleRegisterAccount(recipient, server, unit)
	case DepositReady:
		log.Debugf("deposit: payment: %s  account: %s", payment.ID, accountID)
	default:
		fault.Panicf("deposit: unexpected status: %s", status)
	}
	return status, server, accountID
}

// an empty specified recipient can be deposited by anyone
func validRecipient(specified identifier.Identifier, recipient identifier.Identifier) Depositability {
	if specified.IsEmpty() || specified == recipient {
		return DepositReady
	}
	return WrongRecipient
}

// match the hint against the local accounts of (recipient, server, unit)
func (e *Engine) validAccount(recipient identifier.Identifier, server identifier.Identifier, unit identifier.Identifier, accountHint identifier.Identifier) (Depositability, identifier.Identifier) {
	matches := make(map[identifier.Identifier]struct{})
	first := identifier.Empty

	for _, item := range e.storage.AccountList() {
		if recipient != e.storage.AccountOwner(item.ID) {
			continue
		}
		if server != e.storage.AccountServer(item.ID) {
			continue
		}
		if unit != e.storage.AccountContract(item.ID) {
			continue
		}
		if 0 == len(matches) {
			first = item.ID
		}
		matches[item.ID] = struct{}{}
	}

	if 0 == len(matches) {
		return NoAccount, identifier.Empty
	}

	if accountHint.IsEmpty() {
		if 1 == len(matches) {
			return DepositReady, first
		}
		return AccountNotSpecified, identifier.Empty
	}

	if _, ok := matches[accountHint]; ok {
		return DepositReady, accountHint
	}
	return WrongAccount, identifier.Empty
}

// DepositPayment - queue a deposit
//
// queued when the payment is ready to deposit and also when the
// recipient still needs registering or an account, which the worker
// takes care of before retrying
func (e *Engine) DepositPayment(recipient identifier.Identifier, accountHint identifier.Identifier, payment *instrument.Payment) identifier.Identifier {
	if recipient.IsEmpty() {
		e.log.Errorf("deposit payment: %s", fault.InvalidNymID)
		return identifier.Empty
	}
	if nil == payment {
		e.log.Errorf("deposit payment: %s", fault.InvalidInstrument)
		return identifier.Empty
	}

	status, server, _ := e.canDeposit(payment, recipient, accountHint)
	if DepositReady != status && !status.retryable() {
		e.log.Errorf("deposit payment: %s  cannot be queued: %s", payment.ID, status)
		return identifier.Empty
	}

	e.startIntroductionServer(recipient)
	return push(e, identifier.NewContextID(recipient, server),
		func(q *operationQueue) *uniquequeue.Queue[depositTask] { return q.depositPayment },
		depositTask{accountHint: accountHint, payment: payment})
}

// DepositCheques - queue deposits of conveyed incoming cheques
//
// with no ids every conveyed cheque of the nym is considered; returns
// the number of deposits queued
func (e *Engine) DepositCheques(nym identifier.Identifier, chequeIDs ...identifier.Identifier) int {
	if nil == e.workflow {
		e.log.Warn("deposit cheques: no workflow")
		return 0
	}
	if nym.IsEmpty() {
		e.log.Errorf("deposit cheques: %s", fault.InvalidNymID)
		return 0
	}

	if 0 == len(chequeIDs) {
		chequeIDs = e.workflow.ConveyedCheques(nym)
	}

	n := 0
	for _, id := range chequeIDs {
		cheque, conveyed := e.workflow.LoadCheque(nym, id)
		if !conveyed {
			continue
		}
		if nil == cheque {
			fault.Panicf("deposit cheques: conveyed cheque: %s  not loaded", id)
		}
		if e.queueChequeDeposit(nym, cheque) {
			n += 1
		}
	}
	return n
}

// a bearer cheque is deposited for the nym holding it
func (e *Engine) queueChequeDeposit(nym identifier.Identifier, cheque *instrument.Payment) bool {
	payment := *cheque
	if payment.Recipient.IsEmpty() {
		payment.Recipient = nym
	}
	taskID := e.DepositPayment(nym, identifier.Empty, &payment)
	return !taskID.IsEmpty()
}
