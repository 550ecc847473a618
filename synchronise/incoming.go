// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package synchronise

import (
	"github.com/YCoro/opentxs/fault"
	"github.com/YCoro/opentxs/identifier"
)

// AcceptIncoming - accept every item in the inbox of an account
//
// items are accepted in batches of at most max; a failed batch
// downloads the account files again and is retried a bounded number
// of times; blocks the caller until done
func (e *Engine) AcceptIncoming(nym identifier.Identifier, accountID identifier.Identifier, server identifier.Identifier, max int) bool {
	log := e.log

	err := validate(
		required(nym, fault.InvalidNymID),
		required(server, fault.InvalidServerID),
		required(accountID, fault.InvalidAccountID),
	)
	if nil == err && max < 1 {
		err = fault.InvalidCount
	}
	if nil != err {
		log.Errorf("accept incoming: %s", err)
		return false
	}

	l := e.requestLock(identifier.NewContextID(nym, server))
	l.Lock()
	defer l.Unlock()

	retries := e.tuning.inboxRetries
	remaining := 1

	for 0 < remaining {
		success, unprocessed := e.acceptIncoming(nym, server, accountID, max)
		remaining = unprocessed

		if !success {
			if 0 == retries {
				log.Errorf("accept incoming: account: %s  exceeded retries", accountID)
				return false
			}
			if !e.actions.DownloadIntermediaryFiles(nym, server, accountID) {
				log.Errorf("accept incoming: account: %s  download failed", accountID)
				return false
			}
			retries -= 1

			// the failed batch itself is still outstanding
			if 0 == remaining {
				remaining = 1
			}
			continue
		}

		if 0 != remaining {
			log.Debugf("accept incoming: account: %s  remaining: %d", accountID, remaining)
		}
	}
	return true
}

// one batch; returns success and the count left for later batches
func (e *Engine) acceptIncoming(nym identifier.Identifier, server identifier.Identifier, accountID identifier.Identifier, max int) (bool, int) {
	action, remaining, err := e.actions.ProcessInbox(nym, server, accountID, max)
	if nil != err {
		e.log.Errorf("process inbox: account: %s  error: %s", accountID, err)
		return false, remaining
	}
	if nil == action {
		e.log.Debugf("process inbox: account: %s  nothing to accept", accountID)
		return true, 0
	}

	action.Run()
	result := action.LastSendResult()
	if ValidReply != result {
		e.log.Warnf("process inbox: account: %s  result: %s", accountID, result)
		return false, remaining
	}
	return true, remaining
}
