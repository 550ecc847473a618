// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil_test

import (
	"os"
	"testing"
	"time"

	zmq "github.com/pebbe/zmq4"
	"github.com/stretchr/testify/assert"

	"github.com/YCoro/opentxs/background"
	"github.com/YCoro/opentxs/fault"
	"github.com/YCoro/opentxs/fixtures"
	"github.com/YCoro/opentxs/zmqutil"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func TestCodec(t *testing.T) {
	u := zmqutil.AccountUpdate{
		Account: fixtures.ID("account"),
		Balance: -42,
	}
	frames := u.Encode()
	assert.Equal(t, 2, len(frames), "frame count")
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xd6}, frames[1], "big endian balance")

	d, err := zmqutil.DecodeAccountUpdate(frames)
	assert.Nil(t, err, "decode")
	assert.Equal(t, u, d, "decoded")
}

func TestCodecMalformed(t *testing.T) {
	id := []byte(fixtures.ID("account").String())
	for i, frames := range [][][]byte{
		nil,
		{id},
		{id, {1, 2, 3}},
		{[]byte("not base58 0OIl"), make([]byte, 8)},
		{{}, make([]byte, 8)},
		{id, make([]byte, 8), {}},
	} {
		_, err := zmqutil.DecodeAccountUpdate(frames)
		assert.Equal(t, fault.InvalidMessage, err, "case: %d", i)
	}
}

func TestPublishSubscribe(t *testing.T) {
	const endpoint = "inproc://account-updates-test"

	pub, err := zmqutil.NewPublisher([]string{endpoint})
	assert.Nil(t, err, "publisher")
	defer pub.Close()

	received := make(chan zmqutil.AccountUpdate, 100)
	sub, err := zmqutil.NewSubscriber([]string{endpoint}, func(u zmqutil.AccountUpdate) {
		received <- u
	})
	assert.Nil(t, err, "subscriber")

	processes := background.Start(background.Processes{sub}, nil)
	defer processes.Stop()

	id := fixtures.ID("alice-usd")
	deadline := time.After(5 * time.Second)
	ticker := time.NewTicker(20 * time.Millisecond)
	defer ticker.Stop()

	// PUB drops messages until the subscription has propagated
	for {
		select {
		case u := <-received:
			assert.Equal(t, id, u.Account, "account")
			assert.Equal(t, int64(1000), u.Balance, "balance")
			return
		case <-ticker.C:
			assert.Nil(t, pub.Send(id, 1000), "send")
		case <-deadline:
			t.Fatal("no update received")
		}
	}
}

func TestPublisherClosed(t *testing.T) {
	pub, err := zmqutil.NewPublisher([]string{"inproc://closed-publisher-test"})
	assert.Nil(t, err, "publisher")
	assert.Nil(t, pub.Close(), "close")
	assert.Nil(t, pub.Close(), "close twice")
	assert.Equal(t, fault.NotInitialised, pub.Send(fixtures.ID("a"), 1), "send after close")
}

func TestPoller(t *testing.T) {
	push, pull, err := zmqutil.NewSignalPair("inproc://poller-test")
	assert.Nil(t, err, "signal pair")
	defer push.Close()
	defer pull.Close()

	poller := zmqutil.NewPoller()
	poller.Add(pull, zmq.POLLIN)
	poller.Add(pull, zmq.POLLIN)
	assert.Equal(t, 1, poller.Len(), "duplicate add ignored")

	_, err = push.SendMessage("x")
	assert.Nil(t, err, "send")
	polled, err := poller.Poll(time.Second)
	assert.Nil(t, err, "poll")
	assert.Equal(t, 1, len(polled), "ready")

	poller.Remove(pull)
	poller.Remove(pull)
	assert.Equal(t, 0, poller.Len(), "removed")
}
