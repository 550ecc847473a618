// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package task_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/YCoro/opentxs/identifier"
	"github.com/YCoro/opentxs/task"
)

func TestUnknownTask(t *testing.T) {
	table := task.NewTable()
	for i := 0; i < 10; i += 1 {
		assert.Equal(t, task.Error, table.Status(identifier.Random()), "never submitted")
	}
}

func TestStartRejected(t *testing.T) {
	table := task.NewTable()

	id := table.Start(identifier.Random(), false)
	assert.True(t, id.IsEmpty(), "rejected push gives empty id")
	assert.Equal(t, 0, table.Len(), "nothing recorded")

	id = table.Start(identifier.Empty, true)
	assert.True(t, id.IsEmpty(), "empty task id")
}

func TestSingleRead(t *testing.T) {
	table := task.NewTable()

	for _, success := range []bool{true, false} {
		id := table.Start(identifier.Random(), true)
		assert.Equal(t, task.Running, table.Status(id), "running")
		assert.Equal(t, task.Running, table.Status(id), "running is not erased")

		assert.Equal(t, success, table.Finish(id, success), "finish returns flag")

		expected := task.FinishedFailed
		if success {
			expected = task.FinishedSuccess
		}
		assert.Equal(t, expected, table.Status(id), "first read after finish")
		assert.Equal(t, task.Error, table.Status(id), "second read after finish")
	}
}

func TestFinishUnknownIsIgnored(t *testing.T) {
	table := task.NewTable()
	id := identifier.Random()

	table.Finish(id, true)
	assert.Equal(t, task.Error, table.Status(id), "finish does not create")
}

func TestMessageStatus(t *testing.T) {
	table := task.NewTable()
	id := table.Start(identifier.Random(), true)
	messageID := identifier.Random()

	table.Associate(id, messageID)
	s, m := table.MessageStatus(id)
	assert.Equal(t, task.Running, s, "still running")
	assert.True(t, m.IsEmpty(), "no message id while running")

	table.Finish(id, true)
	s, m = table.MessageStatus(id)
	assert.Equal(t, task.FinishedSuccess, s, "finished")
	assert.Equal(t, messageID, m, "message id")

	s, m = table.MessageStatus(id)
	assert.Equal(t, task.Error, s, "erased")
	assert.True(t, m.IsEmpty(), "message id consumed")
}

func TestShutdown(t *testing.T) {
	table := task.NewTable()
	id := table.Start(identifier.Random(), true)

	table.SetShutdown()
	assert.Equal(t, task.Shutdown, table.Status(id), "known task")
	assert.Equal(t, task.Shutdown, table.Status(identifier.Random()), "unknown task")
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "running", task.Running.String())
	assert.Equal(t, "finished-success", task.FinishedSuccess.String())
	assert.True(t, task.FinishedFailed.IsTerminal())
	assert.False(t, task.Running.IsTerminal())
}
