// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package synchronise

// Messagability - whether a nym can send to a contact
type Messagability int

// possible values
const (
	MessageReady     Messagability = iota
	InvalidSender    Messagability = iota
	MissingSender    Messagability = iota
	MissingContact   Messagability = iota
	ContactLacksNym  Messagability = iota
	MissingRecipient Messagability = iota
	NoServerClaim    Messagability = iota
	Unregistered     Messagability = iota
)

func (m Messagability) String() string {
	switch m {
	case MessageReady:
		return "ready"
	case InvalidSender:
		return "invalid-sender"
	case MissingSender:
		return "missing-sender"
	case MissingContact:
		return "missing-contact"
	case ContactLacksNym:
		return "contact-lacks-nym"
	case MissingRecipient:
		return "missing-recipient"
	case NoServerClaim:
		return "no-server-claim"
	case Unregistered:
		return "unregistered"
	default:
		return "unknown"
	}
}

// Depositability - whether a payment can be deposited for a nym
type Depositability int

// possible values
const (
	DepositReady        Depositability = iota
	InvalidInstrument   Depositability = iota
	NotRegistered       Depositability = iota
	NoAccount           Depositability = iota
	AccountNotSpecified Depositability = iota
	WrongAccount        Depositability = iota
	WrongRecipient      Depositability = iota
)

func (d Depositability) String() string {
	switch d {
	case DepositReady:
		return "ready"
	case InvalidInstrument:
		return "invalid-instrument"
	case NotRegistered:
		return "not-registered"
	case NoAccount:
		return "no-account"
	case AccountNotSpecified:
		return "account-not-specified"
	case WrongAccount:
		return "wrong-account"
	case WrongRecipient:
		return "wrong-recipient"
	default:
		return "unknown"
	}
}

// retryable - the worker can make progress on its own
func (d Depositability) retryable() bool {
	return NotRegistered == d || NoAccount == d
}
