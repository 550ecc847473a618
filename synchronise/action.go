// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package synchronise

import (
	"github.com/YCoro/opentxs/identifier"
	"github.com/YCoro/opentxs/instrument"
)

// SendResult - outcome of sending one request to a server
type SendResult int

// possible results
const (
	SendError    SendResult = iota
	Timeout      SendResult = iota
	InvalidReply SendResult = iota
	ValidReply   SendResult = iota
	Unnecessary  SendResult = iota
)

func (r SendResult) String() string {
	switch r {
	case SendError:
		return "send-error"
	case Timeout:
		return "timeout"
	case InvalidReply:
		return "invalid-reply"
	case ValidReply:
		return "valid-reply"
	case Unnecessary:
		return "unnecessary"
	default:
		return "unknown"
	}
}

// Reply - the parts of a server reply the engine looks at
type Reply struct {
	Success   bool
	MessageID identifier.Identifier
}

// Action - one prepared server request
//
// Reply must not be nil after Run when LastSendResult is ValidReply
type Action interface {
	Run()
	LastSendResult() SendResult
	Reply() *Reply
}

// ServerAction - builds and signs the requests sent to a server
type ServerAction interface {
	RegisterNym(nym identifier.Identifier, server identifier.Identifier) Action
	DownloadNymbox(nym identifier.Identifier, server identifier.Identifier) bool
	DownloadAccount(nym identifier.Identifier, server identifier.Identifier, accountID identifier.Identifier) bool
	RegisterAccount(nym identifier.Identifier, server identifier.Identifier, unit identifier.Identifier) Action
	DownloadContract(nym identifier.Identifier, server identifier.Identifier, contract identifier.Identifier) Action
	DownloadNym(nym identifier.Identifier, server identifier.Identifier, target identifier.Identifier) Action
	SendMessage(nym identifier.Identifier, server identifier.Identifier, recipient identifier.Identifier, text string) Action
	SendPayment(nym identifier.Identifier, server identifier.Identifier, recipient identifier.Identifier, payment *instrument.Payment) Action
	SendCash(nym identifier.Identifier, server identifier.Identifier, recipient identifier.Identifier, recipientCopy *instrument.Purse, senderCopy *instrument.Purse) Action
	DepositCheque(nym identifier.Identifier, server identifier.Identifier, accountID identifier.Identifier, payment *instrument.Payment) Action
	SendTransfer(nym identifier.Identifier, server identifier.Identifier, source identifier.Identifier, target identifier.Identifier, amount int64, memo string) Action
	PublishServerContract(nym identifier.Identifier, server identifier.Identifier, contract identifier.Identifier) Action
	RequestAdmin(nym identifier.Identifier, server identifier.Identifier, password string) Action

	// ProcessInbox - accept up to max inbox items of an account
	//
	// returns a nil action when there is nothing to accept, and the
	// number of items left over for a later batch
	ProcessInbox(nym identifier.Identifier, server identifier.Identifier, accountID identifier.Identifier, max int) (Action, int, error)
	DownloadIntermediaryFiles(nym identifier.Identifier, server identifier.Identifier, accountID identifier.Identifier) bool
}
