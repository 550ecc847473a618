// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package notary

import (
	"bytes"
	"encoding/binary"

	"github.com/YCoro/opentxs/account"
	"github.com/YCoro/opentxs/fault"
	"github.com/YCoro/opentxs/identifier"
	"github.com/YCoro/opentxs/instrument"
	"github.com/YCoro/opentxs/storage"
)

// outstanding voucher records are kept beside the reserve accounts,
// which use the bare unit id as key
var outstandingPrefix = []byte("outstanding")

func outstandingKey(unit identifier.Identifier, voucherID identifier.Identifier) []byte {
	key := make([]byte, 0, len(outstandingPrefix)+2*identifier.Length)
	key = append(key, outstandingPrefix...)
	key = append(key, unit[:]...)
	return append(key, voucherID[:]...)
}

// a voucher is named by its notary, unit and transaction number
func voucherID(server identifier.Identifier, unit identifier.Identifier, number uint64) identifier.Identifier {
	record := make([]byte, 0, 2*identifier.Length+8)
	record = append(record, server[:]...)
	record = append(record, unit[:]...)
	record = binary.BigEndian.AppendUint64(record, number)
	return identifier.FromContent(record)
}

// VoucherRequest - withdraw funds from an account into a voucher
type VoucherRequest struct {
	Nym               identifier.Identifier
	TransactionNumber uint64
	Account           identifier.Identifier
	Recipient         identifier.Identifier // empty for a bearer voucher
	Amount            int64
	Memo              string
}

// IssueVoucher - move funds from an account to the voucher reserve of
// its unit and return the voucher
func (n *Notary) IssueVoucher(request VoucherRequest) (*instrument.Payment, error) {
	n.Lock()
	defer n.Unlock()

	source, err := n.load(request.Account)
	if nil != err {
		return nil, err
	}
	if request.Nym != source.Owner {
		return nil, fault.NotAccountOwner
	}
	if request.Amount <= 0 {
		return nil, fault.InvalidAmount
	}

	reserve, err := n.transactor.GetVoucherAccount(source.Contract)
	if nil != err {
		return nil, err
	}
	defer reserve.Release()

	if err := source.Debit(request.Amount); nil != err {
		return nil, err
	}
	if err := n.consumeNumber(request.Nym, request.TransactionNumber); nil != err {
		return nil, err
	}

	voucher := &instrument.Payment{
		ID:        voucherID(source.Server, source.Contract, request.TransactionNumber),
		Kind:      instrument.Voucher,
		Payer:     request.Nym,
		Recipient: request.Recipient,
		Notary:    source.Server,
		Unit:      source.Contract,
		Amount:    request.Amount,
		Memo:      request.Memo,
	}

	err = n.vouchers.PutN(outstandingKey(voucher.Unit, voucher.ID), uint64(voucher.Amount))
	if nil != err {
		n.log.Errorf("issue voucher: %s  record error: %s", voucher.ID, err)
		return nil, err
	}
	fault.PanicIfError("issue voucher: credit reserve", reserve.Credit(request.Amount))
	fault.PanicIfError("issue voucher: save reserve", reserve.Save())
	fault.PanicIfError("issue voucher: store source", n.store(source))
	n.publish(reserve.Account().ID, reserve.Balance())

	n.log.Infof("voucher: %s  amount: %d  from: %s", voucher.ID, voucher.Amount, source.ID)
	return voucher, nil
}

// RedeemVoucher - pay an outstanding voucher into an account
//
// returns the new balance of the account; a voucher can only be
// redeemed once
func (n *Notary) RedeemVoucher(voucher *instrument.Payment, accountID identifier.Identifier) (int64, error) {
	if nil == voucher || instrument.Voucher != voucher.Kind {
		return 0, fault.InvalidInstrument
	}
	recipient, server, unit, err := voucher.Extract()
	if nil != err {
		return 0, err
	}
	if server != n.transactor.Server() {
		return 0, fault.InvalidServerID
	}

	n.Lock()
	defer n.Unlock()

	target, err := n.load(accountID)
	if nil != err {
		return 0, err
	}
	if unit != target.Contract {
		return 0, fault.UnitMismatch
	}
	if !recipient.IsEmpty() && recipient != target.Owner {
		return 0, fault.NotAccountOwner
	}

	key := outstandingKey(unit, voucher.ID)
	amount, ok := n.vouchers.GetN(key)
	if !ok || uint64(voucher.Amount) != amount {
		n.log.Warnf("redeem voucher: %s  not outstanding", voucher.ID)
		return 0, fault.VoucherNotOutstanding
	}

	reserve, err := n.transactor.GetVoucherAccount(unit)
	if nil != err {
		return 0, err
	}
	defer reserve.Release()

	if reserve.Balance() < voucher.Amount {
		n.log.Criticalf("redeem voucher: %s  reserve: %s  balance: %d  below voucher amount", voucher.ID, reserve.Account().ID, reserve.Balance())
		return 0, fault.InsufficientFunds
	}
	if err := n.vouchers.Delete(key); nil != err {
		return 0, err
	}

	fault.PanicIfError("redeem voucher: debit reserve", reserve.Debit(voucher.Amount))
	fault.PanicIfError("redeem voucher: credit target", target.Credit(voucher.Amount))
	fault.PanicIfError("redeem voucher: save reserve", reserve.Save())
	fault.PanicIfError("redeem voucher: store target", n.store(target))
	n.publish(reserve.Account().ID, reserve.Balance())

	n.log.Infof("voucher: %s  redeemed to: %s", voucher.ID, target.ID)
	return target.Balance, nil
}

// VoucherReserve - balance held against outstanding vouchers of a unit
func (n *Notary) VoucherReserve(unit identifier.Identifier) (*account.Account, error) {
	reserve, err := n.transactor.GetVoucherAccount(unit)
	if nil != err {
		return nil, err
	}
	defer reserve.Release()

	a := *reserve.Account()
	return &a, nil
}

// Outstanding - a voucher issued and not yet redeemed
type Outstanding struct {
	Unit    identifier.Identifier `json:"unit"`
	Voucher identifier.Identifier `json:"voucher"`
	Amount  uint64                `json:"amount"`
}

// OutstandingVouchers - scan a vouchers pool for unredeemed vouchers
func OutstandingVouchers(vouchers storage.Handle) ([]Outstanding, error) {
	result := []Outstanding{}
	err := vouchers.Map(func(key []byte, value []byte) error {
		if !bytes.HasPrefix(key, outstandingPrefix) {
			return nil
		}
		key = key[len(outstandingPrefix):]
		if 2*identifier.Length != len(key) || len(value) < 8 {
			return fault.RecordTruncated
		}
		o := Outstanding{
			Amount: binary.BigEndian.Uint64(value[:8]),
		}
		copy(o.Unit[:], key[:identifier.Length])
		copy(o.Voucher[:], key[identifier.Length:])
		result = append(result, o)
		return nil
	})
	return result, err
}
