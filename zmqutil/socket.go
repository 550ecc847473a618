// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	zmq "github.com/pebbe/zmq4"
)

// NewSignalPair - return a pair of connected push/pull sockets
// for shutdown signalling
//
// signal must be a unique inproc:// endpoint
func NewSignalPair(signal string) (*zmq.Socket, *zmq.Socket, error) {

	// send half of signalling channel
	push, err := zmq.NewSocket(zmq.PUSH)
	if nil != err {
		return nil, nil, err
	}
	push.SetLinger(0)
	err = push.Bind(signal)
	if nil != err {
		push.Close()
		return nil, nil, err
	}

	// receive half of signalling channel
	pull, err := zmq.NewSocket(zmq.PULL)
	if nil != err {
		push.Close()
		return nil, nil, err
	}
	pull.SetLinger(0)
	err = pull.Connect(signal)
	if nil != err {
		push.Close()
		pull.Close()
		return nil, nil, err
	}

	return push, pull, nil
}

// bind a socket of the given type to every endpoint
func newBound(socketType zmq.Type, endpoints []string) (*zmq.Socket, error) {
	socket, err := zmq.NewSocket(socketType)
	if nil != err {
		return nil, err
	}
	socket.SetLinger(0)

	for _, endpoint := range endpoints {
		if err := socket.Bind(endpoint); nil != err {
			socket.Close()
			return nil, err
		}
	}
	return socket, nil
}

// connect a socket of the given type to every endpoint
func newConnected(socketType zmq.Type, endpoints []string) (*zmq.Socket, error) {
	socket, err := zmq.NewSocket(socketType)
	if nil != err {
		return nil, err
	}
	socket.SetLinger(0)

	for _, endpoint := range endpoints {
		if err := socket.Connect(endpoint); nil != err {
			socket.Close()
			return nil, err
		}
	}
	return socket, nil
}
