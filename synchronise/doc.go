// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package synchronise - client side synchronisation engine
//
// every (local nym, server) pair gets its own operation queue and a
// background worker draining it; public calls validate their
// arguments, push a task into the queue of the right context and
// return a task id that can be polled with Status
//
// the worker first waits for the server contract, then for the first
// registration of the nym, and then loops over all queues in a fixed
// order; failures of nymbox download, account download, account
// registration and deposits cause the nym to be registered again on
// the next pass
package synchronise
