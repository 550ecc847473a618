// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package task

import (
	"sync"

	"github.com/YCoro/opentxs/identifier"
)

// Table - task id to status, and task id to resulting message id
//
// a finished task is erased by the first read that observes it
type Table struct {
	sync.Mutex
	states   map[identifier.Identifier]Status
	messages map[identifier.Identifier]identifier.Identifier
	shutdown bool
}

// NewTable - create an empty table
func NewTable() *Table {
	return &Table{
		states:   make(map[identifier.Identifier]Status),
		messages: make(map[identifier.Identifier]identifier.Identifier),
	}
}

// Start - record a task as running if it was accepted into a queue
//
// returns the task id, or the empty id when not accepted
func (t *Table) Start(taskID identifier.Identifier, accepted bool) identifier.Identifier {
	if !accepted || taskID.IsEmpty() {
		return identifier.Empty
	}

	t.Lock()
	defer t.Unlock()

	if _, ok := t.states[taskID]; !ok {
		t.states[taskID] = Running
	}
	return taskID
}

// Finish - move an existing task to its terminal state
//
// returns the success flag so call sites can propagate it
func (t *Table) Finish(taskID identifier.Identifier, success bool) bool {
	if success {
		t.update(taskID, FinishedSuccess)
	} else {
		t.update(taskID, FinishedFailed)
	}
	return success
}

// only tasks already in the table are updated
func (t *Table) update(taskID identifier.Identifier, status Status) {
	t.Lock()
	defer t.Unlock()

	if _, ok := t.states[taskID]; ok {
		t.states[taskID] = status
	}
}

// Associate - remember the message id produced by a send task
func (t *Table) Associate(taskID identifier.Identifier, messageID identifier.Identifier) {
	if taskID.IsEmpty() || messageID.IsEmpty() {
		return
	}

	t.Lock()
	defer t.Unlock()
	t.messages[taskID] = messageID
}

// SetShutdown - all further status reads report Shutdown
func (t *Table) SetShutdown() {
	t.Lock()
	defer t.Unlock()
	t.shutdown = true
}

// Status - read the state of a task, erasing it if finished
func (t *Table) Status(taskID identifier.Identifier) Status {
	t.Lock()
	defer t.Unlock()

	return t.read(taskID)
}

// MessageStatus - like Status, but a successful task also yields its
// message id, which is returned only once
func (t *Table) MessageStatus(taskID identifier.Identifier) (Status, identifier.Identifier) {
	t.Lock()
	defer t.Unlock()

	s := t.read(taskID)
	if FinishedSuccess != s {
		return s, identifier.Empty
	}

	messageID := t.messages[taskID]
	delete(t.messages, taskID)
	return s, messageID
}

// Len - number of tracked tasks
func (t *Table) Len() int {
	t.Lock()
	defer t.Unlock()
	return len(t.states)
}

// must hold lock
func (t *Table) read(taskID identifier.Identifier) Status {
	if t.shutdown {
		return Shutdown
	}

	s, ok := t.states[taskID]
	if !ok {
		return Error
	}
	if s.IsTerminal() {
		delete(t.states, taskID)
	}
	return s
}
