// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uniquequeue_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/YCoro/opentxs/identifier"
	"github.com/YCoro/opentxs/uniquequeue"
)

func TestPopEmpty(t *testing.T) {
	q := uniquequeue.New[string]()

	id, v, ok := q.Pop()
	assert.False(t, ok, "empty queue")
	assert.True(t, id.IsEmpty(), "empty id")
	assert.Equal(t, "", v, "zero value")
}

func TestFIFO(t *testing.T) {
	q := uniquequeue.New[int]()

	ids := make([]identifier.Identifier, 5)
	for i := range ids {
		ids[i] = identifier.Random()
		assert.True(t, q.Push(ids[i], i), "push %d", i)
	}
	assert.Equal(t, 5, q.Len(), "length")

	for i := range ids {
		id, v, ok := q.Pop()
		assert.True(t, ok, "pop %d", i)
		assert.Equal(t, ids[i], id, "task id %d", i)
		assert.Equal(t, i, v, "value %d", i)
	}
	_, _, ok := q.Pop()
	assert.False(t, ok, "drained")
}

func TestDuplicateCollapses(t *testing.T) {
	q := uniquequeue.New[string]()
	id := identifier.Random()

	assert.True(t, q.Push(id, "first"), "first push")
	assert.True(t, q.Push(id, "second"), "duplicate push is accepted")
	assert.Equal(t, 1, q.Len(), "one entry")

	popped, v, ok := q.Pop()
	assert.True(t, ok, "pop")
	assert.Equal(t, id, popped, "task id")
	assert.Equal(t, "first", v, "original submission kept")

	_, _, ok = q.Pop()
	assert.False(t, ok, "no second entry")

	// once popped the id can be used again
	assert.True(t, q.Push(id, "third"), "push after pop")
	_, v, _ = q.Pop()
	assert.Equal(t, "third", v, "re-pushed value")
}

func TestEmptyTaskID(t *testing.T) {
	q := uniquequeue.New[string]()
	assert.False(t, q.Push(identifier.Empty, "x"), "empty task id")
	assert.Equal(t, 0, q.Len(), "nothing queued")
}

func TestCancelByValue(t *testing.T) {
	q := uniquequeue.New[string]()
	keep := identifier.Random()

	q.Push(identifier.Random(), "nym-a")
	q.Push(keep, "nym-b")
	q.Push(identifier.Random(), "nym-a")

	assert.Equal(t, 2, q.CancelByValue("nym-a"), "both removed")
	assert.Equal(t, 0, q.CancelByValue("nym-c"), "absent value")

	id, v, ok := q.Pop()
	assert.True(t, ok, "remaining entry")
	assert.Equal(t, keep, id, "remaining task")
	assert.Equal(t, "nym-b", v, "remaining value")
}

func TestCopyDoesNotDrain(t *testing.T) {
	q := uniquequeue.New[string]()
	a := identifier.Random()
	b := identifier.Random()
	q.Push(a, "a")
	q.Push(b, "b")

	items := q.Copy()
	assert.Equal(t, []uniquequeue.Item[string]{
		{TaskID: a, Value: "a"},
		{TaskID: b, Value: "b"},
	}, items, "snapshot")
	assert.Equal(t, 2, q.Len(), "still queued")
}

func TestConcurrentPush(t *testing.T) {
	q := uniquequeue.New[int]()

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i += 1 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			q.Push(identifier.Random(), i)
		}(i)
	}
	wg.Wait()

	seen := make(map[int]struct{})
	for {
		_, v, ok := q.Pop()
		if !ok {
			break
		}
		seen[v] = struct{}{}
	}
	assert.Equal(t, n, len(seen), "every value popped once")
}
