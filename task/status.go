// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package task

// Status - lifecycle of a submitted task
type Status int

// possible states
const (
	Error           Status = iota // unknown task id
	Running         Status = iota
	FinishedSuccess Status = iota
	FinishedFailed  Status = iota
	Shutdown        Status = iota
)

// IsTerminal - true once the task has finished either way
func (s Status) IsTerminal() bool {
	return FinishedSuccess == s || FinishedFailed == s
}

func (s Status) String() string {
	switch s {
	case Error:
		return "error"
	case Running:
		return "running"
	case FinishedSuccess:
		return "finished-success"
	case FinishedFailed:
		return "finished-failed"
	case Shutdown:
		return "shutdown"
	default:
		return "unknown"
	}
}
