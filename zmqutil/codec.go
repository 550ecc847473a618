// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"encoding/binary"

	"github.com/YCoro/opentxs/fault"
	"github.com/YCoro/opentxs/identifier"
)

const balanceSize = 8

// AccountUpdate - one balance notification
//
// on the wire it is a two frame message: the account id in text form
// followed by the balance as a big endian signed 64 bit integer
type AccountUpdate struct {
	Account identifier.Identifier
	Balance int64
}

// Encode - message frames for an update
func (u AccountUpdate) Encode() [][]byte {
	balance := make([]byte, balanceSize)
	binary.BigEndian.PutUint64(balance, uint64(u.Balance))
	return [][]byte{
		[]byte(u.Account.String()),
		balance,
	}
}

// DecodeAccountUpdate - parse received frames
func DecodeAccountUpdate(frames [][]byte) (AccountUpdate, error) {
	u := AccountUpdate{}
	if 2 != len(frames) || balanceSize != len(frames[1]) {
		return u, fault.InvalidMessage
	}

	id, err := identifier.FromString(string(frames[0]))
	if nil != err || id.IsEmpty() {
		return u, fault.InvalidMessage
	}

	u.Account = id
	u.Balance = int64(binary.BigEndian.Uint64(frames[1]))
	return u, nil
}
