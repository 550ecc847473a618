// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uniquequeue

import (
	"container/list"
	"sync"

	"github.com/YCoro/opentxs/identifier"
)

// Item - one queued value and the task that submitted it
type Item[T comparable] struct {
	TaskID identifier.Identifier
	Value  T
}

// Queue - FIFO of work items de-duplicated by task id
//
// all operations are non-blocking and safe for concurrent use
type Queue[T comparable] struct {
	sync.Mutex
	items *list.List
	tasks map[identifier.Identifier]*list.Element
}

// New - create an empty queue
func New[T comparable]() *Queue[T] {
	return &Queue[T]{
		items: list.New(),
		tasks: make(map[identifier.Identifier]*list.Element),
	}
}

// Push - append a value unless the task id is already queued
//
// a duplicate task id leaves the original entry in place and still
// reports the task as accepted; only an empty task id is refused
func (q *Queue[T]) Push(taskID identifier.Identifier, value T) bool {
	if taskID.IsEmpty() {
		return false
	}

	q.Lock()
	defer q.Unlock()

	if _, ok := q.tasks[taskID]; ok {
		return true
	}

	q.tasks[taskID] = q.items.PushBack(Item[T]{
		TaskID: taskID,
		Value:  value,
	})
	return true
}

// Pop - remove the oldest entry
//
// third result is false if the queue was empty
func (q *Queue[T]) Pop() (identifier.Identifier, T, bool) {
	q.Lock()
	defer q.Unlock()

	e := q.items.Front()
	if nil == e {
		var zero T
		return identifier.Empty, zero, false
	}
	item := q.items.Remove(e).(Item[T])
	delete(q.tasks, item.TaskID)
	return item.TaskID, item.Value, true
}

// CancelByValue - drop every entry holding value, whatever its task id
func (q *Queue[T]) CancelByValue(value T) int {
	q.Lock()
	defer q.Unlock()

	n := 0
	for e := q.items.Front(); nil != e; {
		next := e.Next()
		item := e.Value.(Item[T])
		if item.Value == value {
			q.items.Remove(e)
			delete(q.tasks, item.TaskID)
			n += 1
		}
		e = next
	}
	return n
}

// Copy - snapshot of the queue contents in FIFO order, queue is unchanged
func (q *Queue[T]) Copy() []Item[T] {
	q.Lock()
	defer q.Unlock()

	result := make([]Item[T], 0, q.items.Len())
	for e := q.items.Front(); nil != e; e = e.Next() {
		result = append(result, e.Value.(Item[T]))
	}
	return result
}

// Len - number of queued entries
func (q *Queue[T]) Len() int {
	q.Lock()
	defer q.Unlock()
	return q.items.Len()
}
