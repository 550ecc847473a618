// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background

import (
	"sync"
)

// Process - type signature for background process
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle type
//
// all processes share one shutdown channel; Stop closes it once and
// waits for all of them to return
type T struct {
	sync.Mutex
	shutdown chan struct{}
	stopped  bool
	wg       sync.WaitGroup
}

// New - create an empty handle to which processes can be added later
func New() *T {
	return &T{
		shutdown: make(chan struct{}),
	}
}

// Start - start up a set of background processes
func Start(processes Processes, args interface{}) *T {
	register := New()
	for _, p := range processes {
		register.Add(p, args)
	}
	return register
}

// Add - start one more process under this handle
//
// returns false if the handle is already stopped, the process is not run
func (t *T) Add(p Process, args interface{}) bool {
	t.Lock()
	defer t.Unlock()

	if t.stopped {
		return false
	}

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		p.Run(args, t.shutdown)
	}()
	return true
}

// Stopping - true once Stop has been called
func (t *T) Stopping() bool {
	t.Lock()
	defer t.Unlock()
	return t.stopped
}

// Stop - stop all background processes and wait for them to finish
func (t *T) Stop() {
	t.Lock()
	if !t.stopped {
		t.stopped = true
		close(t.shutdown)
	}
	t.Unlock()

	t.wg.Wait()
}
