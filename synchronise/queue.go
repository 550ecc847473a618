// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package synchronise

import (
	"github.com/YCoro/opentxs/identifier"
	"github.com/YCoro/opentxs/instrument"
	"github.com/YCoro/opentxs/uniquequeue"
)

type messageTask struct {
	recipient identifier.Identifier
	text      string
}

type paymentTask struct {
	recipient identifier.Identifier
	payment   *instrument.Payment
}

type cashTask struct {
	recipient     identifier.Identifier
	recipientCopy *instrument.Purse
	senderCopy    *instrument.Purse
}

type transferTask struct {
	source identifier.Identifier
	target identifier.Identifier
	amount int64
	memo   string
}

type depositTask struct {
	accountHint identifier.Identifier
	payment     *instrument.Payment
}

// operationQueue - pending work of one context
type operationQueue struct {
	registerNym           *uniquequeue.Queue[bool]
	downloadNymbox        *uniquequeue.Queue[bool]
	downloadAccount       *uniquequeue.Queue[identifier.Identifier]
	registerAccount       *uniquequeue.Queue[identifier.Identifier]
	downloadContract      *uniquequeue.Queue[identifier.Identifier]
	checkNym              *uniquequeue.Queue[identifier.Identifier]
	sendMessage           *uniquequeue.Queue[messageTask]
	sendPayment           *uniquequeue.Queue[paymentTask]
	sendCash              *uniquequeue.Queue[cashTask]
	sendTransfer          *uniquequeue.Queue[transferTask]
	publishServerContract *uniquequeue.Queue[identifier.Identifier]
	depositPayment        *uniquequeue.Queue[depositTask]
}

func newOperationQueue() *operationQueue {
	return &operationQueue{
		registerNym:           uniquequeue.New[bool](),
		downloadNymbox:        uniquequeue.New[bool](),
		downloadAccount:       uniquequeue.New[identifier.Identifier](),
		registerAccount:       uniquequeue.New[identifier.Identifier](),
		downloadContract:      uniquequeue.New[identifier.Identifier](),
		checkNym:              uniquequeue.New[identifier.Identifier](),
		sendMessage:           uniquequeue.New[messageTask](),
		sendPayment:           uniquequeue.New[paymentTask](),
		sendCash:              uniquequeue.New[cashTask](),
		sendTransfer:          uniquequeue.New[transferTask](),
		publishServerContract: uniquequeue.New[identifier.Identifier](),
		depositPayment:        uniquequeue.New[depositTask](),
	}
}
