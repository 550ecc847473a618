// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package synchronise

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/YCoro/opentxs/fault"
	"github.com/YCoro/opentxs/identifier"
	"github.com/YCoro/opentxs/ratelimit"
	"github.com/YCoro/opentxs/uniquequeue"
)

// Phase - progress of a context worker
type Phase int32

// phases in the order they are passed
const (
	AwaitServerContract    Phase = iota
	AwaitFirstRegistration Phase = iota
	SteadyState            Phase = iota
)

func (p Phase) String() string {
	switch p {
	case AwaitServerContract:
		return "await-server-contract"
	case AwaitFirstRegistration:
		return "await-first-registration"
	case SteadyState:
		return "steady-state"
	default:
		return "unknown"
	}
}

// carried from one steady state pass to the next
type steadyState struct {
	needsRegistration bool
}

// worker - background process draining the queue of one context
type worker struct {
	engine   *Engine
	id       identifier.ContextID
	queue    *operationQueue
	log      *logger.L
	limiter  *rate.Limiter
	phase    atomic.Int32
	shutdown <-chan struct{}
}

func newWorker(e *Engine, id identifier.ContextID, q *operationQueue) (*worker, error) {
	log := logger.New(fmt.Sprintf("sync-%s", id))
	if nil == log {
		return nil, fault.InvalidLoggerChannel
	}
	return &worker{
		engine:  e,
		id:      id,
		queue:   q,
		log:     log,
		limiter: ratelimit.New(e.tuning.requestRate, e.tuning.requestBurst),
	}, nil
}

// Phase - current phase
func (w *worker) Phase() Phase {
	return Phase(w.phase.Load())
}

// Run - background process loop
func (w *worker) Run(args interface{}, shutdown <-chan struct{}) {
	log := w.log
	w.shutdown = shutdown

	log.Info("starting…")
	defer log.Info("stopped")

	if !w.awaitServerContract() || !w.step() {
		return
	}

	w.phase.Store(int32(AwaitFirstRegistration))
	if !w.awaitRegistration() || !w.step() {
		return
	}

	w.phase.Store(int32(SteadyState))
	state := steadyState{}
	for w.iterate(&state) {
		if !w.yield(w.engine.tuning.mainLoop) {
			return
		}
	}
}

// yield - sleep unless shutdown; false once shutdown is signalled
func (w *worker) yield(d time.Duration) bool {
	select {
	case <-w.shutdown:
		return false
	default:
	}
	if d <= 0 {
		return true
	}

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-w.shutdown:
		return false
	case <-t.C:
		return true
	}
}

// the short pause taken between operations
func (w *worker) step() bool {
	return w.yield(w.engine.tuning.step)
}

func (w *worker) awaitServerContract() bool {
	e := w.engine
	server := w.id.Server

	for {
		if e.wallet.HasServer(server) {
			w.log.Infof("server contract: %s  exists", server)
			return true
		}
		w.log.Warnf("server contract: %s  not in wallet", server)
		e.missingServers.Push(identifier.Random(), server)

		if !w.yield(e.tuning.contractPoll) {
			return false
		}
	}
}

func (w *worker) awaitRegistration() bool {
	e := w.engine

	for {
		if e.registered(w.id.Nym, w.id.Server) {
			w.log.Info("registered at least once")
			return true
		}
		w.log.Warn("never registered")

		if w.registerNym(identifier.Empty) {
			if _, ok := e.wallet.ServerContext(w.id.Nym, w.id.Server); !ok {
				fault.Panicf("context: %s  missing after registration", w.id)
			}
			return true
		}

		if !w.yield(e.tuning.registrationRetry) {
			return false
		}
	}
}

// iterate - one steady state pass over all queues
//
// false once shutdown is signalled
func (w *worker) iterate(state *steadyState) bool {
	e := w.engine
	q := w.queue
	log := w.log
	nym := w.id.Nym
	server := w.id.Server

	if !w.step() {
		return false
	}

	// a newer local revision needs registering again
	if ctx, ok := e.wallet.ServerContext(nym, server); ok && ctx.StaleNym {
		log.Warn("nym revision newer than registered")
		q.registerNym.Push(identifier.Random(), true)
	}

	if !w.step() {
		return false
	}

	// every pending registration request is answered by one attempt
	registerTasks := []identifier.Identifier{}
	for taskID, value, ok := q.registerNym.Pop(); ok; taskID, value, ok = q.registerNym.Pop() {
		registerTasks = append(registerTasks, taskID)
		state.needsRegistration = state.needsRegistration || value
	}
	if 0 != len(registerTasks) || state.needsRegistration {
		success := w.registerNym(identifier.Empty)
		for _, taskID := range registerTasks {
			e.tasks.Finish(taskID, success)
		}
		state.needsRegistration = !success
	}

	if !w.step() {
		return false
	}

	if ctx, ok := e.wallet.ServerContext(nym, server); ok &&
		"" != ctx.AdminPassword && !ctx.Admin && !ctx.AdminAttempted {
		w.getAdmin(ctx.AdminPassword)
	}

	if !w.step() {
		return false
	}

	// ask this server for contracts nobody has found yet
	for _, item := range e.missingServers.Copy() {
		if !w.step() {
			return false
		}
		if item.Value.IsEmpty() {
			log.Error("empty missing server id")
			continue
		}
		log.Debugf("search for server contract: %s", item.Value)
		w.findServer(item.Value)
	}

	for taskID, contract, ok := q.downloadContract.Pop(); ok; taskID, contract, ok = q.downloadContract.Pop() {
		if !w.step() {
			return false
		}
		if contract.IsEmpty() {
			log.Error("empty contract id")
			continue
		}
		log.Debugf("download contract: %s", contract)
		w.downloadContract(taskID, contract)
	}

	// ask this server for nyms nobody has found yet
	for _, item := range e.missingNyms.Copy() {
		if !w.step() {
			return false
		}
		if item.Value.IsEmpty() {
			log.Error("empty missing nym id")
			continue
		}
		log.Debugf("search for nym: %s", item.Value)
		w.findNym(item.Value)
	}

	fetch := e.nymFetchFor(server)
	for taskID, target, ok := fetch.Pop(); ok; taskID, target, ok = fetch.Pop() {
		if !w.step() {
			return false
		}
		if target.IsEmpty() {
			log.Error("empty nym id")
			continue
		}
		log.Debugf("refresh nym: %s", target)
		w.downloadNym(taskID, target)
	}

	for taskID, target, ok := q.checkNym.Pop(); ok; taskID, target, ok = q.checkNym.Pop() {
		if !w.step() {
			return false
		}
		if target.IsEmpty() {
			log.Error("empty nym id")
			continue
		}
		log.Debugf("download nym: %s", target)
		w.downloadNym(taskID, target)
	}

	for taskID, message, ok := q.sendMessage.Pop(); ok; taskID, message, ok = q.sendMessage.Pop() {
		if !w.step() {
			return false
		}
		if message.recipient.IsEmpty() {
			log.Error("empty message recipient")
			continue
		}
		w.sendMessage(taskID, message)
	}

	for taskID, payment, ok := q.sendPayment.Pop(); ok; taskID, payment, ok = q.sendPayment.Pop() {
		if !w.step() {
			return false
		}
		if payment.recipient.IsEmpty() {
			log.Error("empty payment recipient")
			continue
		}
		w.sendPayment(taskID, payment)
	}

	for taskID, cash, ok := q.sendCash.Pop(); ok; taskID, cash, ok = q.sendCash.Pop() {
		if !w.step() {
			return false
		}
		if cash.recipient.IsEmpty() {
			log.Error("empty cash recipient")
			continue
		}
		w.sendCash(taskID, cash)
	}

	// any number of queued triggers is served by one download
	nymboxTasks := []identifier.Identifier{}
	for taskID, _, ok := q.downloadNymbox.Pop(); ok; taskID, _, ok = q.downloadNymbox.Pop() {
		nymboxTasks = append(nymboxTasks, taskID)
	}
	if 0 != len(nymboxTasks) {
		log.Debug("download nymbox")
		success := w.downloadNymbox()
		for _, taskID := range nymboxTasks {
			e.tasks.Finish(taskID, success)
		}
		state.needsRegistration = state.needsRegistration || !success
	}

	if !w.step() {
		return false
	}

	for taskID, accountID, ok := q.downloadAccount.Pop(); ok; taskID, accountID, ok = q.downloadAccount.Pop() {
		if !w.step() {
			return false
		}
		if accountID.IsEmpty() {
			log.Error("empty account id")
			continue
		}
		log.Debugf("download account: %s", accountID)
		state.needsRegistration = !w.downloadAccount(taskID, accountID) || state.needsRegistration
	}

	if !w.step() {
		return false
	}

	for taskID, unit, ok := q.registerAccount.Pop(); ok; taskID, unit, ok = q.registerAccount.Pop() {
		if !w.step() {
			return false
		}
		if unit.IsEmpty() {
			log.Error("empty unit id")
			continue
		}
		log.Debugf("register account for unit: %s", unit)
		state.needsRegistration = !w.registerAccount(taskID, unit) || state.needsRegistration
	}

	if !w.step() {
		return false
	}

	// deposits that cannot be made yet are put back after the pass
	retry := uniquequeue.New[depositTask]()
	for taskID, deposit, ok := q.depositPayment.Pop(); ok; taskID, deposit, ok = q.depositPayment.Pop() {
		if !w.step() {
			return false
		}
		if nil == deposit.payment {
			fault.Panicf("context: %s  deposit task: %s  without payment", w.id, taskID)
		}

		status, _, accountID := e.canDeposit(deposit.payment, nym, deposit.accountHint)
		switch {
		case DepositReady == status:
			state.needsRegistration = !w.depositCheque(taskID, accountID, deposit, retry) || state.needsRegistration
		case status.retryable():
			log.Warnf("deposit: %s  temporary failure: %s", deposit.payment.ID, status)
			retry.Push(taskID, deposit)
		default:
			log.Errorf("deposit: %s  permanent failure: %s", deposit.payment.ID, status)
			e.tasks.Finish(taskID, false)
		}
	}
	for taskID, deposit, ok := retry.Pop(); ok; taskID, deposit, ok = retry.Pop() {
		q.depositPayment.Push(taskID, deposit)
	}

	if !w.step() {
		return false
	}

	for taskID, transfer, ok := q.sendTransfer.Pop(); ok; taskID, transfer, ok = q.sendTransfer.Pop() {
		if !w.step() {
			return false
		}
		w.sendTransfer(taskID, transfer)
	}

	for taskID, contract, ok := q.publishServerContract.Pop(); ok; taskID, contract, ok = q.publishServerContract.Pop() {
		if !w.step() {
			return false
		}
		if contract.IsEmpty() {
			log.Error("empty contract id")
			continue
		}
		log.Debugf("publish server contract: %s", contract)
		w.publishServerContract(taskID, contract)
	}

	return true
}

// send - pace and run an action
//
// the reply is returned only when the server gave a valid one
func (w *worker) send(action Action) (*Reply, SendResult) {
	if !ratelimit.Wait(w.limiter, w.shutdown) {
		return nil, SendError
	}

	action.Run()
	result := action.LastSendResult()
	if ValidReply != result {
		return nil, result
	}

	reply := action.Reply()
	if nil == reply {
		fault.Panicf("context: %s  valid reply without content", w.id)
	}
	return reply, result
}

// run an action for a task and record the outcome
//
// returns the reply if the server accepted the request
func (w *worker) perform(taskID identifier.Identifier, operation string, action Action) *Reply {
	reply, result := w.send(action)
	switch {
	case nil == reply:
		w.log.Errorf("%s: communication error: %s", operation, result)
	case !reply.Success:
		w.log.Errorf("%s: rejected by server", operation)
	default:
		w.engine.tasks.Finish(taskID, true)
		return reply
	}
	w.engine.tasks.Finish(taskID, false)
	return nil
}

func (w *worker) registerNym(taskID identifier.Identifier) bool {
	e := w.engine
	nym := w.id.Nym
	server := w.id.Server

	// first server registered on becomes the primary claim
	if info, ok := e.wallet.Nym(nym); ok && info.PreferredServer.IsEmpty() {
		e.wallet.AddPreferredServer(nym, server, true)
	}

	return nil != w.perform(taskID, "register nym", e.actions.RegisterNym(nym, server))
}

func (w *worker) getAdmin(password string) bool {
	e := w.engine
	nym := w.id.Nym
	server := w.id.Server

	reply, _ := w.send(e.actions.RequestAdmin(nym, server, password))
	success := nil != reply && reply.Success

	e.wallet.SetAdminAttempted(nym, server)
	if success {
		w.log.Info("admin granted")
		e.wallet.SetAdminGranted(nym, server)
	}
	return success
}

func (w *worker) findServer(target identifier.Identifier) bool {
	e := w.engine
	if e.wallet.HasServer(target) || w.downloadContract(identifier.Empty, target) {
		e.resolve(e.missingServers, target)
		return true
	}
	return false
}

func (w *worker) findNym(target identifier.Identifier) bool {
	e := w.engine
	if _, ok := e.wallet.Nym(target); ok || w.downloadNym(identifier.Empty, target) {
		e.resolve(e.missingNyms, target)
		return true
	}
	return false
}

func (w *worker) downloadContract(taskID identifier.Identifier, contract identifier.Identifier) bool {
	action := w.engine.actions.DownloadContract(w.id.Nym, w.id.Server, contract)
	return nil != w.perform(taskID, "download contract: "+contract.String(), action)
}

func (w *worker) downloadNym(taskID identifier.Identifier, target identifier.Identifier) bool {
	action := w.engine.actions.DownloadNym(w.id.Nym, w.id.Server, target)
	return nil != w.perform(taskID, "download nym: "+target.String(), action)
}

func (w *worker) sendMessage(taskID identifier.Identifier, message messageTask) bool {
	action := w.engine.actions.SendMessage(w.id.Nym, w.id.Server, message.recipient, message.text)
	return w.delivered(taskID, "message to: "+message.recipient.String(), action)
}

func (w *worker) sendPayment(taskID identifier.Identifier, payment paymentTask) bool {
	action := w.engine.actions.SendPayment(w.id.Nym, w.id.Server, payment.recipient, payment.payment)
	return w.delivered(taskID, "payment to: "+payment.recipient.String(), action)
}

func (w *worker) sendCash(taskID identifier.Identifier, cash cashTask) bool {
	action := w.engine.actions.SendCash(w.id.Nym, w.id.Server, cash.recipient, cash.recipientCopy, cash.senderCopy)
	return w.delivered(taskID, "cash to: "+cash.recipient.String(), action)
}

// a delivered message is remembered against its task
func (w *worker) delivered(taskID identifier.Identifier, operation string, action Action) bool {
	reply := w.perform(taskID, operation, action)
	if nil == reply {
		return false
	}
	if !reply.MessageID.IsEmpty() {
		w.log.Infof("sent %s  message: %s", operation, reply.MessageID)
		w.engine.tasks.Associate(taskID, reply.MessageID)
	}
	return true
}

func (w *worker) downloadNymbox() bool {
	if !ratelimit.Wait(w.limiter, w.shutdown) {
		return false
	}
	return w.engine.actions.DownloadNymbox(w.id.Nym, w.id.Server)
}

func (w *worker) downloadAccount(taskID identifier.Identifier, accountID identifier.Identifier) bool {
	success := ratelimit.Wait(w.limiter, w.shutdown) &&
		w.engine.actions.DownloadAccount(w.id.Nym, w.id.Server, accountID)
	if !success {
		w.log.Errorf("download account: %s  failed", accountID)
	}
	return w.engine.tasks.Finish(taskID, success)
}

func (w *worker) registerAccount(taskID identifier.Identifier, unit identifier.Identifier) bool {
	action := w.engine.actions.RegisterAccount(w.id.Nym, w.id.Server, unit)
	return nil != w.perform(taskID, "register account for unit: "+unit.String(), action)
}

// a deposit that could not reach the server goes back on the retry
// queue, one the server rejected is finished as failed
func (w *worker) depositCheque(taskID identifier.Identifier, accountID identifier.Identifier, deposit depositTask, retry *uniquequeue.Queue[depositTask]) bool {
	e := w.engine
	payment := deposit.payment

	if !payment.Kind.IsDepositable() {
		w.log.Errorf("deposit: %s  unhandled payment kind: %s", payment.ID, payment.Kind)
		return e.tasks.Finish(taskID, false)
	}

	reply, result := w.send(e.actions.DepositCheque(w.id.Nym, w.id.Server, accountID, payment))
	switch {
	case nil == reply:
		w.log.Errorf("deposit: %s  communication error: %s", payment.ID, result)
		retry.Push(taskID, deposit)
		return false
	case !reply.Success:
		w.log.Errorf("deposit: %s  account: %s  rejected by server", payment.ID, accountID)
		return e.tasks.Finish(taskID, false)
	default:
		return e.tasks.Finish(taskID, true)
	}
}

func (w *worker) sendTransfer(taskID identifier.Identifier, transfer transferTask) bool {
	action := w.engine.actions.SendTransfer(w.id.Nym, w.id.Server, transfer.source, transfer.target, transfer.amount, transfer.memo)
	return nil != w.perform(taskID, "transfer to: "+transfer.target.String(), action)
}

func (w *worker) publishServerContract(taskID identifier.Identifier, contract identifier.Identifier) bool {
	action := w.engine.actions.PublishServerContract(w.id.Nym, w.id.Server, contract)
	return nil != w.perform(taskID, "publish server contract: "+contract.String(), action)
}
