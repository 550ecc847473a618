// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"sync"

	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/YCoro/opentxs/fault"
	"github.com/YCoro/opentxs/identifier"
)

// Publisher - PUB socket broadcasting account balance updates
type Publisher struct {
	sync.Mutex
	log    *logger.L
	socket *zmq.Socket
}

// NewPublisher - bind a PUB socket to all endpoints
func NewPublisher(endpoints []string) (*Publisher, error) {
	log := logger.New("publisher")
	if nil == log {
		return nil, fault.InvalidLoggerChannel
	}

	socket, err := newBound(zmq.PUB, endpoints)
	if nil != err {
		log.Errorf("bind: %q  error: %s", endpoints, err)
		return nil, err
	}
	for i, endpoint := range endpoints {
		log.Infof("publish[%d] on: %q", i, endpoint)
	}

	return &Publisher{
		log:    log,
		socket: socket,
	}, nil
}

// Send - publish the new balance of an account
func (pub *Publisher) Send(accountID identifier.Identifier, balance int64) error {
	pub.Lock()
	defer pub.Unlock()

	if nil == pub.socket {
		return fault.NotInitialised
	}

	u := AccountUpdate{
		Account: accountID,
		Balance: balance,
	}
	_, err := pub.socket.SendMessage(u.Encode())
	if nil != err {
		pub.log.Errorf("send account: %s  error: %s", accountID, err)
		return err
	}
	pub.log.Debugf("account: %s  balance: %d", accountID, balance)
	return nil
}

// Close - release the socket, further sends fail
func (pub *Publisher) Close() error {
	pub.Lock()
	defer pub.Unlock()

	if nil == pub.socket {
		return nil
	}
	err := pub.socket.Close()
	pub.socket = nil
	return err
}
