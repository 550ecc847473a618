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

type requirement struct {
	id  identifier.Identifier
	err error
}

func required(id identifier.Identifier, err error) requirement {
	return requirement{id: id, err: err}
}

// validate - error of the first empty identifier
func validate(requirements ...requirement) error {
	for _, r := range requirements {
		if r.id.IsEmpty() {
			return r.err
		}
	}
	return nil
}

// push a value into one queue of a context and track the new task
func push[T comparable](e *Engine, id identifier.ContextID, queue func(*operationQueue) *uniquequeue.Queue[T], value T) identifier.Identifier {
	q := e.operationsFor(id)
	taskID := identifier.Random()
	return e.tasks.Start(taskID, queue(q).Push(taskID, value))
}

// schedule - validate, make sure the introduction server context is
// live, then push
func schedule[T comparable](e *Engine, operation string, nym identifier.Identifier, server identifier.Identifier, target requirement, queue func(*operationQueue) *uniquequeue.Queue[T], value T) identifier.Identifier {
	err := validate(
		required(nym, fault.InvalidNymID),
		required(server, fault.InvalidServerID),
		target,
	)
	if nil != err {
		e.log.Errorf("%s: %s", operation, err)
		return identifier.Empty
	}

	e.startIntroductionServer(nym)
	return push(e, identifier.NewContextID(nym, server), queue, value)
}

// FindNym - search every registered server for the credentials of a nym
func (e *Engine) FindNym(nym identifier.Identifier) identifier.Identifier {
	if nym.IsEmpty() {
		e.log.Errorf("find nym: %s", fault.InvalidNymID)
		return identifier.Empty
	}

	taskID := identifier.Random()
	return e.tasks.Start(taskID, e.missingNyms.Push(taskID, nym))
}

// FindNymOnServer - ask one server for the credentials of a nym
func (e *Engine) FindNymOnServer(nym identifier.Identifier, serverHint identifier.Identifier) identifier.Identifier {
	err := validate(
		required(nym, fault.InvalidNymID),
		required(serverHint, fault.InvalidServerID),
	)
	if nil != err {
		e.log.Errorf("find nym: %s", err)
		return identifier.Empty
	}

	taskID := identifier.Random()
	return e.tasks.Start(taskID, e.nymFetchFor(serverHint).Push(taskID, nym))
}

// FindServer - search every registered server for a server contract
func (e *Engine) FindServer(server identifier.Identifier) identifier.Identifier {
	if server.IsEmpty() {
		e.log.Errorf("find server: %s", fault.InvalidServerID)
		return identifier.Empty
	}

	taskID := identifier.Random()
	return e.tasks.Start(taskID, e.missingServers.Push(taskID, server))
}

// RegisterNym - schedule registration of a nym on a server
//
// with setContactData the server is also added to the server claims
// of the nym
func (e *Engine) RegisterNym(nym identifier.Identifier, server identifier.Identifier, setContactData bool) identifier.Identifier {
	err := validate(
		required(nym, fault.InvalidNymID),
		required(server, fault.InvalidServerID),
	)
	if nil != err {
		e.log.Errorf("register nym: %s", err)
		return identifier.Empty
	}

	e.startIntroductionServer(nym)

	if setContactData && !e.wallet.AddPreferredServer(nym, server, false) {
		e.log.Warnf("nym: %s  could not claim server: %s", nym, server)
	}
	return e.ScheduleRegisterNym(nym, server)
}

// ScheduleRegisterNym - queue a registration of the nym
func (e *Engine) ScheduleRegisterNym(nym identifier.Identifier, server identifier.Identifier) identifier.Identifier {
	return schedule(e, "register nym", nym, server, required(server, fault.InvalidServerID),
		func(q *operationQueue) *uniquequeue.Queue[bool] { return q.registerNym }, true)
}

// ScheduleDownloadNymbox - queue a nymbox download
func (e *Engine) ScheduleDownloadNymbox(nym identifier.Identifier, server identifier.Identifier) identifier.Identifier {
	return schedule(e, "download nymbox", nym, server, required(server, fault.InvalidServerID),
		func(q *operationQueue) *uniquequeue.Queue[bool] { return q.downloadNymbox }, true)
}

// ScheduleDownloadAccount - queue an account download
func (e *Engine) ScheduleDownloadAccount(nym identifier.Identifier, server identifier.Identifier, accountID identifier.Identifier) identifier.Identifier {
	return schedule(e, "download account", nym, server, required(accountID, fault.InvalidAccountID),
		func(q *operationQueue) *uniquequeue.Queue[identifier.Identifier] { return q.downloadAccount }, accountID)
}

// ScheduleRegisterAccount - queue creation of an account for a unit
func (e *Engine) ScheduleRegisterAccount(nym identifier.Identifier, server identifier.Identifier, unit identifier.Identifier) identifier.Identifier {
	return schedule(e, "register account", nym, server, required(unit, fault.InvalidUnitID),
		func(q *operationQueue) *uniquequeue.Queue[identifier.Identifier] { return q.registerAccount }, unit)
}

// ScheduleDownloadContract - queue a contract download
func (e *Engine) ScheduleDownloadContract(nym identifier.Identifier, server identifier.Identifier, contract identifier.Identifier) identifier.Identifier {
	return schedule(e, "download contract", nym, server, required(contract, fault.InvalidContractID),
		func(q *operationQueue) *uniquequeue.Queue[identifier.Identifier] { return q.downloadContract }, contract)
}

// ScheduleDownloadNym - queue a download of another nym's credentials
func (e *Engine) ScheduleDownloadNym(nym identifier.Identifier, server identifier.Identifier, target identifier.Identifier) identifier.Identifier {
	return schedule(e, "download nym", nym, server, required(target, fault.InvalidNymID),
		func(q *operationQueue) *uniquequeue.Queue[identifier.Identifier] { return q.checkNym }, target)
}

// SchedulePublishServerContract - queue an upload of a server contract
func (e *Engine) SchedulePublishServerContract(nym identifier.Identifier, server identifier.Identifier, contract identifier.Identifier) identifier.Identifier {
	return schedule(e, "publish server contract", nym, server, required(contract, fault.InvalidContractID),
		func(q *operationQueue) *uniquequeue.Queue[identifier.Identifier] { return q.publishServerContract }, contract)
}

// CanMessage - whether sender can reach the contact
//
// may queue nym searches, or a nymbox download when the sender is not
// registered on the recipient's server
func (e *Engine) CanMessage(sender identifier.Identifier, contact identifier.Identifier) Messagability {
	if sender.IsEmpty() {
		e.log.Errorf("can message: %s", fault.InvalidNymID)
		return InvalidSender
	}
	if contact.IsEmpty() {
		e.log.Errorf("can message: %s", fault.InvalidContactID)
		return MissingContact
	}

	e.startIntroductionServer(sender)
	status, _, _ := e.canMessage(sender, contact)
	return status
}

// returns the recipient nym and its server when ready
func (e *Engine) canMessage(sender identifier.Identifier, contactID identifier.Identifier) (Messagability, identifier.Identifier, identifier.Identifier) {
	log := e.log

	senderNym, ok := e.wallet.Nym(sender)
	if !ok {
		log.Errorf("sender nym: %s  not loaded", sender)
		return MissingSender, identifier.Empty, identifier.Empty
	}
	if !senderNym.CanSign {
		log.Errorf("sender nym: %s  cannot sign messages", sender)
		return InvalidSender, identifier.Empty, identifier.Empty
	}

	contact, ok := e.contacts.Contact(contactID)
	if !ok {
		log.Errorf("contact: %s  does not exist", contactID)
		return MissingContact, identifier.Empty, identifier.Empty
	}
	if 0 == len(contact.Nyms) {
		log.Errorf("contact: %s  has no nym", contactID)
		return ContactLacksNym, identifier.Empty, identifier.Empty
	}

	var recipient *NymInfo
	for _, id := range contact.Nyms {
		if nym, ok := e.wallet.Nym(id); ok {
			recipient = nym
			break
		}
	}
	if nil == recipient {
		for _, id := range contact.Nyms {
			e.missingNyms.Push(identifier.Random(), id)
		}
		log.Errorf("contact: %s  credentials not available", contactID)
		return MissingRecipient, identifier.Empty, identifier.Empty
	}

	server := recipient.PreferredServer
	if server.IsEmpty() {
		log.Errorf("contact: %s  nym: %s  has no server claim", contactID, recipient.ID)
		e.missingNyms.Push(identifier.Random(), recipient.ID)
		return NoServerClaim, identifier.Empty, identifier.Empty
	}

	if !e.registered(sender, server) {
		e.ScheduleDownloadNymbox(sender, server)
		log.Errorf("sender nym: %s  not registered on server: %s", sender, server)
		return Unregistered, identifier.Empty, identifier.Empty
	}

	return MessageReady, recipient.ID, server
}

// resolve the context for sending to a contact
func (e *Engine) messageContext(operation string, sender identifier.Identifier, contact identifier.Identifier) (identifier.ContextID, identifier.Identifier, bool) {
	err := validate(
		required(sender, fault.InvalidNymID),
		required(contact, fault.InvalidContactID),
	)
	if nil != err {
		e.log.Errorf("%s: %s", operation, err)
		return identifier.ContextID{}, identifier.Empty, false
	}

	e.startIntroductionServer(sender)

	status, recipient, server := e.canMessage(sender, contact)
	if MessageReady != status {
		e.log.Warnf("%s: sender: %s  contact: %s  status: %s", operation, sender, contact, status)
		return identifier.ContextID{}, identifier.Empty, false
	}
	return identifier.NewContextID(sender, server), recipient, true
}

// MessageContact - queue a message to a contact
func (e *Engine) MessageContact(sender identifier.Identifier, contact identifier.Identifier, text string) identifier.Identifier {
	id, recipient, ok := e.messageContext("message contact", sender, contact)
	if !ok {
		return identifier.Empty
	}
	return push(e, id, func(q *operationQueue) *uniquequeue.Queue[messageTask] { return q.sendMessage },
		messageTask{recipient: recipient, text: text})
}

// PayContact - queue delivery of a payment instrument to a contact
func (e *Engine) PayContact(sender identifier.Identifier, contact identifier.Identifier, payment *instrument.Payment) identifier.Identifier {
	if nil == payment {
		e.log.Errorf("pay contact: %s", fault.InvalidInstrument)
		return identifier.Empty
	}
	id, recipient, ok := e.messageContext("pay contact", sender, contact)
	if !ok {
		return identifier.Empty
	}
	return push(e, id, func(q *operationQueue) *uniquequeue.Queue[paymentTask] { return q.sendPayment },
		paymentTask{recipient: recipient, payment: payment})
}

// PayContactCash - queue delivery of a cash purse to a contact
func (e *Engine) PayContactCash(sender identifier.Identifier, contact identifier.Identifier, recipientCopy *instrument.Purse, senderCopy *instrument.Purse) identifier.Identifier {
	if nil == recipientCopy || nil == senderCopy {
		e.log.Errorf("pay contact cash: %s", fault.InvalidInstrument)
		return identifier.Empty
	}
	id, recipient, ok := e.messageContext("pay contact cash", sender, contact)
	if !ok {
		return identifier.Empty
	}
	return push(e, id, func(q *operationQueue) *uniquequeue.Queue[cashTask] { return q.sendCash },
		cashTask{recipient: recipient, recipientCopy: recipientCopy, senderCopy: senderCopy})
}

// SendTransfer - queue a transfer between two local accounts with the
// same owner, server and unit
func (e *Engine) SendTransfer(nym identifier.Identifier, server identifier.Identifier, source identifier.Identifier, target identifier.Identifier, amount int64, memo string) identifier.Identifier {
	log := e.log

	err := validate(
		required(nym, fault.InvalidNymID),
		required(server, fault.InvalidServerID),
		required(target, fault.InvalidAccountID),
		required(source, fault.InvalidAccountID),
	)
	if nil != err {
		log.Errorf("send transfer: %s", err)
		return identifier.Empty
	}
	if amount <= 0 {
		log.Errorf("send transfer: %s  amount: %d", fault.InvalidAmount, amount)
		return identifier.Empty
	}

	sourceAccount, ok := e.wallet.Account(source)
	if !ok {
		log.Errorf("send transfer: source account: %s  not found", source)
		return identifier.Empty
	}
	targetAccount, ok := e.wallet.Account(target)
	if !ok {
		log.Errorf("send transfer: target account: %s  not found", target)
		return identifier.Empty
	}

	switch {
	case sourceAccount.Owner != targetAccount.Owner:
		log.Errorf("send transfer: source: %s  target: %s  owners differ", source, target)
		return identifier.Empty
	case sourceAccount.Server != targetAccount.Server:
		log.Errorf("send transfer: source: %s  target: %s  servers differ", source, target)
		return identifier.Empty
	case sourceAccount.Contract != targetAccount.Contract:
		log.Errorf("send transfer: source: %s  target: %s  units differ", source, target)
		return identifier.Empty
	}

	return push(e, identifier.NewContextID(nym, server),
		func(q *operationQueue) *uniquequeue.Queue[transferTask] { return q.sendTransfer },
		transferTask{source: source, target: target, amount: amount, memo: memo})
}
