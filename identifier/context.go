// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identifier

// ContextID - one synchronisation context: a local nym talking to one server
type ContextID struct {
	Nym    Identifier
	Server Identifier
}

// NewContextID - pair a local nym with a server
func NewContextID(nym Identifier, server Identifier) ContextID {
	return ContextID{
		Nym:    nym,
		Server: server,
	}
}

// IsValid - both halves must be present
func (c ContextID) IsValid() bool {
	return !c.Nym.IsEmpty() && !c.Server.IsEmpty()
}

func (c ContextID) String() string {
	return c.Nym.String() + "@" + c.Server.String()
}
