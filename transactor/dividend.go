// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactor

import (
	"math"

	"github.com/YCoro/opentxs/account"
	"github.com/YCoro/opentxs/fault"
	"github.com/YCoro/opentxs/identifier"
)

// ShareholderSource - the account lookups a dividend traversal needs
type ShareholderSource interface {
	AccountsByContract(contract identifier.Identifier) []identifier.Identifier
	LoadAccount(accountID identifier.Identifier) (*account.Account, error)
}

// Dividend - parameters of one payout
type Dividend struct {
	Payer          identifier.Identifier // nym paying the dividend
	ShareContract  identifier.Identifier // unit whose holders are paid
	PayoutUnit     identifier.Identifier // unit the dividend is paid in
	PayoutPerShare int64
	Memo           string
}

// DividendPayment - one payout to a shareholder
type DividendPayment struct {
	Account           identifier.Identifier
	Recipient         identifier.Identifier
	Amount            int64
	TransactionNumber uint64
	Memo              string
}

// DividendResult - totals of a payout
type DividendResult struct {
	PaidOut  int64
	Returned int64
	Payments []DividendPayment
}

// PayDividend - pay every shareholder of a unit from the voucher
// reserve of the payout unit
//
// the reserve must already hold the funds; each payout consumes a
// fresh transaction number and is handed to deliver; a payout that
// deliver refuses is put back in the reserve and counted as returned
func (t *Transactor) PayDividend(d Dividend, source ShareholderSource, deliver func(DividendPayment) error) (DividendResult, error) {
	result := DividendResult{}

	if d.ShareContract.IsEmpty() || d.PayoutUnit.IsEmpty() {
		return result, fault.InvalidUnitID
	}
	if d.PayoutPerShare <= 0 {
		return result, fault.InvalidAmount
	}

	reserve, err := t.GetVoucherAccount(d.PayoutUnit)
	if nil != err {
		return result, err
	}
	defer reserve.Release()

	visit := func(a *account.Account) error {
		if account.Issuer == a.Type || a.Balance <= 0 {
			return nil
		}
		amount, err := DividendAmount(a.Balance, d.PayoutPerShare)
		if nil != err {
			t.log.Errorf("dividend: account: %s  balance: %d  payout overflows", a.ID, a.Balance)
			return err
		}

		n, err := t.IssueNextTransactionNumber()
		if nil != err {
			return err
		}
		if err := reserve.Debit(amount); nil != err {
			t.log.Errorf("dividend: reserve: %s  cannot pay: %d  to account: %s", reserve.Account().ID, amount, a.ID)
			return err
		}

		payment := DividendPayment{
			Account:           a.ID,
			Recipient:         a.Owner,
			Amount:            amount,
			TransactionNumber: n,
			Memo:              d.Memo,
		}
		if err := deliver(payment); nil != err {
			t.log.Warnf("dividend: payment to: %s  returned: %s", a.Owner, err)
			fault.PanicIfError("dividend: restore reserve", reserve.Credit(amount))
			result.Returned += amount
			return nil
		}
		result.PaidOut += amount
		result.Payments = append(result.Payments, payment)
		return nil
	}

	err = forEachAccount(source, d.ShareContract, visit)
	if saveErr := reserve.Save(); nil == err {
		err = saveErr
	}
	t.log.Infof("dividend: shares: %s  paid out: %d  returned: %d", d.ShareContract, result.PaidOut, result.Returned)
	return result, err
}

// DividendAmount - the payout for a holding of shares
//
// fails with InvalidAmount unless both values are positive and the
// product fits in an int64
func DividendAmount(shares int64, payoutPerShare int64) (int64, error) {
	if shares <= 0 || payoutPerShare <= 0 || shares > math.MaxInt64/payoutPerShare {
		return 0, fault.InvalidAmount
	}
	return shares * payoutPerShare, nil
}

// AddAmount - sum of two non-negative amounts, InvalidAmount on overflow
func AddAmount(a int64, b int64) (int64, error) {
	if a < 0 || b < 0 || a > math.MaxInt64-b {
		return 0, fault.InvalidAmount
	}
	return a + b, nil
}

// run visit on each account of a contract, stopping at the first error
func forEachAccount(source ShareholderSource, contract identifier.Identifier, visit func(*account.Account) error) error {
	for _, accountID := range source.AccountsByContract(contract) {
		a, err := source.LoadAccount(accountID)
		if nil != err {
			return err
		}
		if err := visit(a); nil != err {
			return err
		}
	}
	return nil
}
