// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"fmt"

	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/YCoro/opentxs/counter"
	"github.com/YCoro/opentxs/fault"
)

const subscriberSignal = "inproc://account-subscriber-signal"

// each subscriber needs its own signal endpoint
var signalSequence counter.Counter

// Handler - called for each decoded update
type Handler func(AccountUpdate)

// Subscriber - SUB socket receiving account balance updates
//
// runs as a background process; malformed messages are logged and
// dropped
type Subscriber struct {
	log     *logger.L
	push    *zmq.Socket
	pull    *zmq.Socket
	sub     *zmq.Socket
	handler Handler
}

// NewSubscriber - connect a SUB socket to all endpoints
func NewSubscriber(endpoints []string, handler Handler) (*Subscriber, error) {
	log := logger.New("subscriber")
	if nil == log {
		return nil, fault.InvalidLoggerChannel
	}

	signal := fmt.Sprintf("%s-%d", subscriberSignal, signalSequence.Increment())
	push, pull, err := NewSignalPair(signal)
	if nil != err {
		return nil, err
	}

	sub, err := newConnected(zmq.SUB, endpoints)
	if nil != err {
		push.Close()
		pull.Close()
		return nil, err
	}
	if err := sub.SetSubscribe(""); nil != err {
		push.Close()
		pull.Close()
		sub.Close()
		return nil, err
	}

	for i, endpoint := range endpoints {
		log.Infof("subscribe[%d] to: %q", i, endpoint)
	}

	return &Subscriber{
		log:     log,
		push:    push,
		pull:    pull,
		sub:     sub,
		handler: handler,
	}, nil
}

// Run - background process loop
func (s *Subscriber) Run(args interface{}, shutdown <-chan struct{}) {
	log := s.log

	done := make(chan struct{})
	go func() {
		defer close(done)

		poller := NewPoller()
		poller.Add(s.sub, zmq.POLLIN)
		poller.Add(s.pull, zmq.POLLIN)

	loop:
		for {
			polled, err := poller.Poll(-1)
			if nil != err {
				log.Errorf("poll error: %s", err)
				continue
			}

			for _, p := range polled {
				switch socket := p.Socket; socket {
				case s.pull:
					_, _ = socket.RecvMessageBytes(0)
					break loop

				default:
					frames, err := socket.RecvMessageBytes(0)
					if nil != err {
						log.Errorf("receive error: %s", err)
						continue
					}
					s.process(frames)
				}
			}
		}

		s.pull.Close()
		s.sub.Close()
		log.Info("stopped")
	}()

	log.Info("started")

	<-shutdown

	log.Info("stopping")
	_, _ = s.push.SendMessage("stop")
	<-done
	s.push.Close()
}

func (s *Subscriber) process(frames [][]byte) {
	u, err := DecodeAccountUpdate(frames)
	if nil != err {
		s.log.Warnf("dropped message: %x  error: %s", frames, err)
		return
	}
	s.log.Infof("account %s balance: %d", u.Account, u.Balance)
	if nil != s.handler {
		s.handler(u)
	}
}
