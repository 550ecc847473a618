// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package synchronise

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/YCoro/opentxs/background"
	"github.com/YCoro/opentxs/configuration"
	"github.com/YCoro/opentxs/counter"
	"github.com/YCoro/opentxs/fault"
	"github.com/YCoro/opentxs/identifier"
	"github.com/YCoro/opentxs/task"
	"github.com/YCoro/opentxs/uniquequeue"
	"github.com/YCoro/opentxs/zmqutil"
)

// Services - collaborators used by the engine
type Services struct {
	Actions  ServerAction
	Wallet   Wallet
	Contacts Contacts
	Storage  AccountStorage
	Settings Settings
	Workflow Workflow
}

// Engine - synchronisation orchestrator
type Engine struct {
	sync.Mutex // guards operations, workers and requests

	log      *logger.L
	tuning   tuning
	actions  ServerAction
	wallet   Wallet
	contacts Contacts
	storage  AccountStorage
	settings Settings
	workflow Workflow

	operations map[identifier.ContextID]*operationQueue
	workers    map[identifier.ContextID]*worker
	requests   map[identifier.ContextID]*sync.Mutex

	nymFetchLock sync.Mutex
	nymFetch     map[identifier.Identifier]*uniquequeue.Queue[identifier.Identifier]

	missingNyms    *uniquequeue.Queue[identifier.Identifier]
	missingServers *uniquequeue.Queue[identifier.Identifier]

	introductionLock     sync.Mutex
	introductionServer   identifier.Identifier
	introductionContract []byte

	balanceLock sync.Mutex
	balances    map[identifier.Identifier]int64

	refreshes counter.Counter
	tasks     *task.Table
	processes *background.T
}

// New - create an engine
//
// no worker runs until the first operation references its context;
// the account update subscriber is started if endpoints are configured
func New(config *Configuration, services Services) (*Engine, error) {
	log := logger.New("sync")
	if nil == log {
		return nil, fault.InvalidLoggerChannel
	}

	if nil == services.Actions || nil == services.Wallet || nil == services.Contacts ||
		nil == services.Storage || nil == services.Settings {
		return nil, fault.NotInitialised
	}

	if nil == config {
		config = &Configuration{}
	}
	t, err := config.tuning()
	if nil != err {
		log.Errorf("configuration error: %s", err)
		return nil, err
	}

	e := &Engine{
		log:                  log,
		tuning:               t,
		actions:              services.Actions,
		wallet:               services.Wallet,
		contacts:             services.Contacts,
		storage:              services.Storage,
		settings:             services.Settings,
		workflow:             services.Workflow,
		operations:           make(map[identifier.ContextID]*operationQueue),
		workers:              make(map[identifier.ContextID]*worker),
		requests:             make(map[identifier.ContextID]*sync.Mutex),
		nymFetch:             make(map[identifier.Identifier]*uniquequeue.Queue[identifier.Identifier]),
		missingNyms:          uniquequeue.New[identifier.Identifier](),
		missingServers:       uniquequeue.New[identifier.Identifier](),
		introductionContract: []byte(config.IntroductionContract),
		balances:             make(map[identifier.Identifier]int64),
		tasks:                task.NewTable(),
		processes:            background.New(),
	}

	if 0 != len(config.AccountUpdate) {
		subscriber, err := zmqutil.NewSubscriber(config.AccountUpdate, e.accountUpdate)
		if nil != err {
			log.Errorf("account update subscriber error: %s", err)
			return nil, err
		}
		e.processes.Add(subscriber, nil)
	}

	log.Info("started")
	return e, nil
}

// Stop - signal all workers and wait for them to return
//
// every later Status call reports Shutdown
func (e *Engine) Stop() {
	e.log.Info("stopping…")
	e.tasks.SetShutdown()
	e.processes.Stop()
	e.log.Info("stopped")
}

func (e *Engine) stopping() bool {
	return e.processes.Stopping()
}

// operationsFor - queue of a context, starting its worker on first use
//
// the worker is added while the lock is held; Add only launches a
// goroutine and the worker never takes this lock itself
func (e *Engine) operationsFor(id identifier.ContextID) *operationQueue {
	e.Lock()
	defer e.Unlock()

	q, ok := e.operations[id]
	if !ok {
		q = newOperationQueue()
		e.operations[id] = q
	}

	if _, ok := e.workers[id]; !ok {
		w, err := newWorker(e, id, q)
		if nil != err {
			fault.PanicWithError("create worker", err)
		}
		if e.processes.Add(w, nil) {
			e.workers[id] = w
		}
	}
	return q
}

// serialises the synchronous calls made on behalf of one context
func (e *Engine) requestLock(id identifier.ContextID) *sync.Mutex {
	e.Lock()
	defer e.Unlock()

	l, ok := e.requests[id]
	if !ok {
		l = &sync.Mutex{}
		e.requests[id] = l
	}
	return l
}

// nyms to refresh from a particular server
func (e *Engine) nymFetchFor(server identifier.Identifier) *uniquequeue.Queue[identifier.Identifier] {
	e.nymFetchLock.Lock()
	defer e.nymFetchLock.Unlock()

	q, ok := e.nymFetch[server]
	if !ok {
		q = uniquequeue.New[identifier.Identifier]()
		e.nymFetch[server] = q
	}
	return q
}

// Phase - progress of the worker of a context
//
// false if no worker was started for it
func (e *Engine) Phase(nym identifier.Identifier, server identifier.Identifier) (Phase, bool) {
	e.Lock()
	w, ok := e.workers[identifier.NewContextID(nym, server)]
	e.Unlock()

	if !ok {
		return AwaitServerContract, false
	}
	return w.Phase(), true
}

// Status - poll a task; a finished task is reported only once
func (e *Engine) Status(taskID identifier.Identifier) task.Status {
	return e.tasks.Status(taskID)
}

// MessageStatus - like Status and also the id of the message sent
func (e *Engine) MessageStatus(taskID identifier.Identifier) (task.Status, identifier.Identifier) {
	return e.tasks.MessageStatus(taskID)
}

// RefreshCount - number of completed Refresh sweeps
func (e *Engine) RefreshCount() uint64 {
	return e.refreshes.Uint64()
}

// Balance - last balance received for an account
func (e *Engine) Balance(accountID identifier.Identifier) (int64, bool) {
	e.balanceLock.Lock()
	defer e.balanceLock.Unlock()

	b, ok := e.balances[accountID]
	return b, ok
}

func (e *Engine) accountUpdate(u zmqutil.AccountUpdate) {
	e.balanceLock.Lock()
	e.balances[u.Account] = u.Balance
	e.balanceLock.Unlock()
}

// IntroductionServer - the bootstrap server
//
// read from the settings, or imported from the configured contract
// when the settings have none; empty if neither is available
func (e *Engine) IntroductionServer() identifier.Identifier {
	e.introductionLock.Lock()
	defer e.introductionLock.Unlock()

	if !e.introductionServer.IsEmpty() {
		return e.introductionServer
	}

	s, ok := e.settings.Get(configuration.MasterSection, configuration.IntroductionServerID)
	if ok && "" != s {
		id, err := identifier.FromString(s)
		if nil == err && !id.IsEmpty() {
			e.introductionServer = id
			return id
		}
		e.log.Warnf("invalid introduction server: %q", s)
	}

	if 0 == len(e.introductionContract) {
		return identifier.Empty
	}
	return e.setIntroductionServer(e.introductionContract)
}

// SetIntroductionServer - import a server contract and make it the
// bootstrap server
//
// returns the server id, or empty if the contract was not accepted
func (e *Engine) SetIntroductionServer(contract []byte) identifier.Identifier {
	e.introductionLock.Lock()
	defer e.introductionLock.Unlock()

	return e.setIntroductionServer(contract)
}

// must hold introductionLock
func (e *Engine) setIntroductionServer(contract []byte) identifier.Identifier {
	id, err := e.wallet.ImportServerContract(contract)
	if nil != err || id.IsEmpty() {
		e.log.Errorf("import introduction server error: %v", err)
		return identifier.Empty
	}

	e.introductionServer = id

	if !e.settings.Set(configuration.MasterSection, configuration.IntroductionServerID, id.String()) {
		fault.Panic("cannot record introduction server")
	}
	if err := e.settings.Save(); nil != err {
		e.log.Errorf("save introduction server: %s  error: %s", id, err)
	}

	e.log.Infof("introduction server: %s", id)
	return id
}

// StartIntroductionServer - make sure the nym has a live context on
// the introduction server
func (e *Engine) StartIntroductionServer(nym identifier.Identifier) {
	if nym.IsEmpty() {
		return
	}
	e.startIntroductionServer(nym)
}

func (e *Engine) startIntroductionServer(nym identifier.Identifier) {
	server := e.IntroductionServer()
	if server.IsEmpty() {
		return
	}
	q := e.operationsFor(identifier.NewContextID(nym, server))
	taskID := identifier.Random()
	e.tasks.Start(taskID, q.downloadNymbox.Push(taskID, true))
}

// registered - nym has completed at least one registration on server
func (e *Engine) registered(nym identifier.Identifier, server identifier.Identifier) bool {
	ctx, ok := e.wallet.ServerContext(nym, server)
	return ok && 0 != ctx.Request
}

// resolve - a search target was found, finish every task waiting on
// it and drop them from the queue
func (e *Engine) resolve(q *uniquequeue.Queue[identifier.Identifier], target identifier.Identifier) {
	for _, item := range q.Copy() {
		if item.Value == target {
			e.tasks.Finish(item.TaskID, true)
		}
	}
	q.CancelByValue(target)
}
