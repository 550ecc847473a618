// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactor

import (
	"bytes"
	"sync"

	"github.com/bitmark-inc/logger"
	proto "github.com/gogo/protobuf/proto"

	"github.com/YCoro/opentxs/fault"
	"github.com/YCoro/opentxs/identifier"
	"github.com/YCoro/opentxs/storage"
)

// keys in the ledger pool
var (
	numberKey    = []byte("number")
	basketPrefix = []byte("basket")
)

type basket struct {
	account  identifier.Identifier
	contract identifier.Identifier
}

// Transactor - the notary's ledger authority
//
// issues transaction numbers, maps basket currencies to their
// reserve account and contract, and owns the voucher accounts
type Transactor struct {
	sync.Mutex

	log       *logger.L
	ledger    storage.Handle
	server    identifier.Identifier
	serverNym identifier.Identifier

	transactionNumber uint64

	baskets    map[identifier.Identifier]basket
	byAccount  map[identifier.Identifier]identifier.Identifier
	byContract map[identifier.Identifier]identifier.Identifier

	vouchers *voucherAccounts
}

// New - create a transactor for a notary, restoring the saved
// transaction number and basket table from the ledger pool
func New(server identifier.Identifier, serverNym identifier.Identifier, ledger storage.Handle, vouchers storage.Handle) (*Transactor, error) {
	if server.IsEmpty() {
		return nil, fault.InvalidServerID
	}
	if serverNym.IsEmpty() {
		return nil, fault.InvalidNymID
	}

	t := &Transactor{
		log:        logger.New("transactor"),
		ledger:     ledger,
		server:     server,
		serverNym:  serverNym,
		baskets:    make(map[identifier.Identifier]basket),
		byAccount:  make(map[identifier.Identifier]identifier.Identifier),
		byContract: make(map[identifier.Identifier]identifier.Identifier),
	}
	t.vouchers = newVoucherAccounts(t, vouchers)

	if nil == ledger {
		return t, nil
	}

	number, baskets, err := ReadLedger(ledger)
	if nil != err {
		t.log.Errorf("restore baskets error: %s", err)
		return nil, err
	}
	t.transactionNumber = number
	for _, b := range baskets {
		t.mapBasket(b.Basket, b.Account, b.Contract)
	}

	t.log.Infof("last transaction number: %d  baskets: %d", t.transactionNumber, len(t.baskets))
	return t, nil
}

// BasketMapping - a basket currency, its reserve account and contract
type BasketMapping struct {
	Basket   identifier.Identifier
	Account  identifier.Identifier
	Contract identifier.Identifier
}

// ReadLedger - the saved transaction number and basket table
//
// used by New and by tools that open the database read only
func ReadLedger(ledger storage.Handle) (uint64, []BasketMapping, error) {
	number, _ := ledger.GetN(numberKey)

	baskets := []BasketMapping{}
	err := ledger.Map(func(key []byte, value []byte) error {
		if !bytes.HasPrefix(key, basketPrefix) {
			return nil
		}
		b, err := unpackBasket(value)
		if nil != err {
			return err
		}
		baskets = append(baskets, b)
		return nil
	})
	if nil != err {
		return 0, nil, err
	}
	return number, baskets, nil
}

func unpackBasket(value []byte) (BasketMapping, error) {
	m := BasketMapping{}
	r := &basketRecord{}
	if err := proto.Unmarshal(value, r); nil != err {
		return m, err
	}
	if basketVersion != r.Version {
		return m, fault.IncompatibleVersion
	}
	for _, f := range []struct {
		id     *identifier.Identifier
		buffer []byte
	}{
		{&m.Basket, r.Basket},
		{&m.Account, r.Account},
		{&m.Contract, r.Contract},
	} {
		if err := identifier.FromBytes(f.id, f.buffer); nil != err {
			return m, err
		}
	}
	return m, nil
}

// Server - the notary this transactor serves
func (t *Transactor) Server() identifier.Identifier {
	return t.server
}

// ServerNym - the nym signing for the notary
func (t *Transactor) ServerNym() identifier.Identifier {
	return t.serverNym
}

// TransactionNumber - the last number issued
func (t *Transactor) TransactionNumber() uint64 {
	t.Lock()
	defer t.Unlock()
	return t.transactionNumber
}

// SetTransactionNumber - restore the counter from a notary main file
//
// the counter never moves backwards
func (t *Transactor) SetTransactionNumber(n uint64) error {
	t.Lock()
	defer t.Unlock()

	if n < t.transactionNumber {
		t.log.Warnf("refusing to move transaction number back from: %d to: %d", t.transactionNumber, n)
		return fault.InvalidCount
	}
	if err := t.putNumber(n); nil != err {
		return err
	}
	t.transactionNumber = n
	return nil
}

// IssueNextTransactionNumber - advance the counter and return the new value
//
// the counter is persisted before the number is released, so a
// failed write issues nothing
func (t *Transactor) IssueNextTransactionNumber() (uint64, error) {
	t.Lock()
	defer t.Unlock()

	n := t.transactionNumber + 1
	if err := t.putNumber(n); nil != err {
		t.log.Errorf("unable to save transaction number: %d  error: %s", n, err)
		return 0, err
	}
	t.transactionNumber = n
	t.log.Tracef("issued transaction number: %d", n)
	return n, nil
}

// must hold lock
func (t *Transactor) putNumber(n uint64) error {
	if nil == t.ledger {
		return nil
	}
	return t.ledger.PutN(numberKey, n)
}

// IssueNextTransactionNumberToNym - issue a number and record it in
// the nym's context
//
// if recording fails the number is burned: it has already left the
// counter and is never issued again
func (t *Transactor) IssueNextTransactionNumberToNym(context ClientContext) (uint64, error) {
	n, err := t.IssueNextTransactionNumber()
	if nil != err {
		return 0, err
	}

	err = context.IssueNumber(n)
	if nil != err {
		t.log.Criticalf("ledger inconsistency: transaction number: %d  burned for nym: %s  error: %s", n, context.Nym(), err)
		return 0, err
	}
	return n, nil
}

// AddBasketAccountID - permanently associate a basket with its
// reserve account and contract
//
// repeating an existing association succeeds; any other mapping of
// an already used basket, account or contract is refused
func (t *Transactor) AddBasketAccountID(basketID identifier.Identifier, accountID identifier.Identifier, contractID identifier.Identifier) error {
	if basketID.IsEmpty() {
		return fault.InvalidUnitID
	}
	if accountID.IsEmpty() {
		return fault.InvalidAccountID
	}
	if contractID.IsEmpty() {
		return fault.InvalidContractID
	}

	t.Lock()
	defer t.Unlock()

	if b, ok := t.baskets[basketID]; ok {
		if b.account == accountID && b.contract == contractID {
			return nil
		}
		t.log.Warnf("basket: %s  already mapped to account: %s", basketID, b.account)
		return fault.BasketAlreadyMapped
	}
	if _, ok := t.byAccount[accountID]; ok {
		return fault.BasketAlreadyMapped
	}
	if _, ok := t.byContract[contractID]; ok {
		return fault.BasketAlreadyMapped
	}

	if nil != t.ledger {
		buffer, err := proto.Marshal(&basketRecord{
			Version:  basketVersion,
			Basket:   basketID[:],
			Account:  accountID[:],
			Contract: contractID[:],
		})
		if nil != err {
			return err
		}
		key := append(append([]byte{}, basketPrefix...), basketID[:]...)
		if err := t.ledger.Put(key, buffer); nil != err {
			t.log.Errorf("save basket: %s  error: %s", basketID, err)
			return err
		}
	}

	t.mapBasket(basketID, accountID, contractID)
	t.log.Infof("basket: %s  account: %s  contract: %s", basketID, accountID, contractID)
	return nil
}

// must hold lock
func (t *Transactor) mapBasket(basketID identifier.Identifier, accountID identifier.Identifier, contractID identifier.Identifier) {
	t.baskets[basketID] = basket{
		account:  accountID,
		contract: contractID,
	}
	t.byAccount[accountID] = basketID
	t.byContract[contractID] = basketID
}

// LookupBasketAccountID - reserve account of a basket
func (t *Transactor) LookupBasketAccountID(basketID identifier.Identifier) (identifier.Identifier, bool) {
	t.Lock()
	defer t.Unlock()

	b, ok := t.baskets[basketID]
	return b.account, ok
}

// LookupBasketAccountIDByContractID - reserve account of the basket
// defined by a contract
func (t *Transactor) LookupBasketAccountIDByContractID(contractID identifier.Identifier) (identifier.Identifier, bool) {
	t.Lock()
	defer t.Unlock()

	basketID, ok := t.byContract[contractID]
	if !ok {
		return identifier.Empty, false
	}
	return t.baskets[basketID].account, true
}

// LookupBasketContractIDByAccountID - contract of the basket backed
// by an account
func (t *Transactor) LookupBasketContractIDByAccountID(accountID identifier.Identifier) (identifier.Identifier, bool) {
	t.Lock()
	defer t.Unlock()

	basketID, ok := t.byAccount[accountID]
	if !ok {
		return identifier.Empty, false
	}
	return t.baskets[basketID].contract, true
}

// GetVoucherAccount - exclusive handle on the voucher reserve of a
// unit, created on first use
//
// blocks while another caller holds the same unit; the handle must
// be released on every path
func (t *Transactor) GetVoucherAccount(unitID identifier.Identifier) (*ExclusiveAccount, error) {
	return t.vouchers.get(unitID)
}
