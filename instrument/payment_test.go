// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instrument_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/YCoro/opentxs/fault"
	"github.com/YCoro/opentxs/identifier"
	"github.com/YCoro/opentxs/instrument"
)

func TestExtract(t *testing.T) {
	p := &instrument.Payment{
		Kind:      instrument.Cheque,
		Recipient: identifier.FromContent([]byte("recipient")),
		Notary:    identifier.FromContent([]byte("notary")),
		Unit:      identifier.FromContent([]byte("unit")),
	}

	nym, notary, unit, err := p.Extract()
	assert.Nil(t, err, "extract")
	assert.Equal(t, p.Recipient, nym, "nym")
	assert.Equal(t, p.Notary, notary, "notary")
	assert.Equal(t, p.Unit, unit, "unit")

	p.Unit = identifier.Empty
	_, _, _, err = p.Extract()
	assert.Equal(t, fault.InvalidInstrument, err, "missing unit")

	var missing *instrument.Payment
	_, _, _, err = missing.Extract()
	assert.Equal(t, fault.InvalidInstrument, err, "nil payment")
}

func TestDepositable(t *testing.T) {
	assert.True(t, instrument.Cheque.IsDepositable())
	assert.True(t, instrument.Voucher.IsDepositable())
	assert.False(t, instrument.Invoice.IsDepositable())
	assert.False(t, instrument.Other.IsDepositable())
	assert.Equal(t, "voucher", instrument.Voucher.String())
}
