// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instrument

import (
	"github.com/YCoro/opentxs/fault"
	"github.com/YCoro/opentxs/identifier"
)

// Kind - type of payment instrument
type Kind int

// instrument kinds
const (
	Other   Kind = iota
	Cheque  Kind = iota
	Voucher Kind = iota
	Invoice Kind = iota
)

func (k Kind) String() string {
	switch k {
	case Cheque:
		return "cheque"
	case Voucher:
		return "voucher"
	case Invoice:
		return "invoice"
	default:
		return "other"
	}
}

// IsDepositable - only cheques and vouchers can be deposited
func (k Kind) IsDepositable() bool {
	return Cheque == k || Voucher == k
}

// Payment - a signed payment instrument
//
// the document is opaque; the remaining fields are the values
// extracted from it when it was parsed
type Payment struct {
	ID        identifier.Identifier
	Kind      Kind
	Payer     identifier.Identifier
	Recipient identifier.Identifier // empty if payable to bearer
	Notary    identifier.Identifier
	Unit      identifier.Identifier
	Amount    int64
	Memo      string
	Document  []byte
}

// Extract - return the nym, notary and unit the instrument names
func (p *Payment) Extract() (nym identifier.Identifier, notary identifier.Identifier, unit identifier.Identifier, err error) {
	if nil == p {
		return identifier.Empty, identifier.Empty, identifier.Empty, fault.InvalidInstrument
	}
	if p.Notary.IsEmpty() || p.Unit.IsEmpty() {
		return identifier.Empty, identifier.Empty, identifier.Empty, fault.InvalidInstrument
	}
	return p.Recipient, p.Notary, p.Unit, nil
}

// Purse - an opaque bundle of cash tokens
type Purse struct {
	Notary   identifier.Identifier
	Unit     identifier.Identifier
	Document []byte
}
