// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package notary

import (
	"github.com/YCoro/opentxs/account"
	"github.com/YCoro/opentxs/fault"
	"github.com/YCoro/opentxs/identifier"
	"github.com/YCoro/opentxs/transactor"
)

// DividendRequest - pay every holder of a share unit
type DividendRequest struct {
	Nym               identifier.Identifier
	TransactionNumber uint64
	Account           identifier.Identifier // payer account in the payout unit
	ShareContract     identifier.Identifier
	PayoutPerShare    int64
	Memo              string
}

// PayDividend - fund the payout reserve from the payer account, pay
// each shareholder into their account of the payout unit and refund
// whatever could not be delivered
func (n *Notary) PayDividend(request DividendRequest) (transactor.DividendResult, error) {
	result := transactor.DividendResult{}

	if request.PayoutPerShare <= 0 {
		return result, fault.InvalidAmount
	}
	if request.ShareContract.IsEmpty() {
		return result, fault.InvalidUnitID
	}

	n.Lock()
	defer n.Unlock()

	payer, err := n.load(request.Account)
	if nil != err {
		return result, err
	}
	if request.Nym != payer.Owner {
		return result, fault.NotAccountOwner
	}
	if payer.Contract == request.ShareContract {
		return result, fault.UnitMismatch
	}

	total := int64(0)
	err = n.shareholders(request.ShareContract, func(a *account.Account) error {
		amount, err := transactor.DividendAmount(a.Balance, request.PayoutPerShare)
		if nil == err {
			total, err = transactor.AddAmount(total, amount)
		}
		if nil != err {
			n.log.Errorf("dividend: shares: %s  account: %s  payout overflows", request.ShareContract, a.ID)
		}
		return err
	})
	if nil != err {
		return result, err
	}
	if 0 == total {
		n.log.Warnf("dividend: shares: %s  no holders", request.ShareContract)
		return result, nil
	}

	if err := payer.Debit(total); nil != err {
		return result, err
	}
	if err := n.consumeNumber(request.Nym, request.TransactionNumber); nil != err {
		return result, err
	}
	fault.PanicIfError("dividend: store payer", n.store(payer))
	fault.PanicIfError("dividend: fund reserve", n.fundReserve(payer.Contract, total))

	d := transactor.Dividend{
		Payer:          request.Nym,
		ShareContract:  request.ShareContract,
		PayoutUnit:     payer.Contract,
		PayoutPerShare: request.PayoutPerShare,
		Memo:           request.Memo,
	}
	result, err = n.transactor.PayDividend(d, n.index, func(p transactor.DividendPayment) error {
		return n.deliverDividend(payer.Contract, p)
	})
	if nil != err {
		n.log.Errorf("dividend: shares: %s  error: %s", request.ShareContract, err)
	}

	// what was not paid out goes back to the payer, whose account may
	// also have received a payout
	refund := total - result.PaidOut
	if 0 != refund {
		fault.PanicIfError("dividend: drain reserve", n.fundReserve(payer.Contract, -refund))
		payer, loadErr := n.load(request.Account)
		fault.PanicIfError("dividend: reload payer", loadErr)
		fault.PanicIfError("dividend: refund payer", payer.Credit(refund))
		fault.PanicIfError("dividend: store payer", n.store(payer))
	}

	return result, err
}

// visit the accounts holding shares, issuer accounts excluded
func (n *Notary) shareholders(contract identifier.Identifier, visit func(*account.Account) error) error {
	for _, accountID := range n.index.AccountsByContract(contract) {
		a, err := n.load(accountID)
		if nil != err {
			return err
		}
		if account.Issuer == a.Type || a.Balance <= 0 {
			continue
		}
		if err := visit(a); nil != err {
			return err
		}
	}
	return nil
}

// move funds into (positive) or out of (negative) a voucher reserve
func (n *Notary) fundReserve(unit identifier.Identifier, amount int64) error {
	reserve, err := n.transactor.GetVoucherAccount(unit)
	if nil != err {
		return err
	}
	defer reserve.Release()

	if amount < 0 {
		err = reserve.Debit(-amount)
	} else {
		err = reserve.Credit(amount)
	}
	if nil != err {
		return err
	}
	if err := reserve.Save(); nil != err {
		return err
	}
	n.publish(reserve.Account().ID, reserve.Balance())
	return nil
}

// credit the first account the holder has in the payout unit
//
// must hold lock
func (n *Notary) deliverDividend(unit identifier.Identifier, p transactor.DividendPayment) error {
	for _, accountID := range n.index.AccountsByOwner(p.Recipient) {
		if unit != n.index.AccountContract(accountID) {
			continue
		}
		a, err := n.load(accountID)
		if nil != err {
			return err
		}
		if err := a.Credit(p.Amount); nil != err {
			return err
		}
		n.log.Debugf("dividend: %d  to account: %s  number: %d", p.Amount, a.ID, p.TransactionNumber)
		return n.store(a)
	}
	return fault.AccountNotFound
}
