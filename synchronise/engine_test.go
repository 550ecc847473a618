// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package synchronise_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/YCoro/opentxs/account"
	"github.com/YCoro/opentxs/configuration"
	"github.com/YCoro/opentxs/fault"
	"github.com/YCoro/opentxs/fixtures"
	"github.com/YCoro/opentxs/identifier"
	"github.com/YCoro/opentxs/synchronise"
	"github.com/YCoro/opentxs/synchronise/mocks"
	"github.com/YCoro/opentxs/task"
)

type mockServices struct {
	actions  *mocks.MockServerAction
	wallet   *mocks.MockWallet
	contacts *mocks.MockContacts
	storage  *mocks.MockAccountStorage
	settings *mocks.MockSettings
}

func newMockServices(ctl *gomock.Controller) mockServices {
	return mockServices{
		actions:  mocks.NewMockServerAction(ctl),
		wallet:   mocks.NewMockWallet(ctl),
		contacts: mocks.NewMockContacts(ctl),
		storage:  mocks.NewMockAccountStorage(ctl),
		settings: mocks.NewMockSettings(ctl),
	}
}

func (m mockServices) services() synchronise.Services {
	return synchronise.Services{
		Actions:  m.actions,
		Wallet:   m.wallet,
		Contacts: m.contacts,
		Storage:  m.storage,
		Settings: m.settings,
	}
}

// engine without an introduction server
func newMockEngine(t *testing.T, m mockServices) *synchronise.Engine {
	m.settings.EXPECT().Get(configuration.MasterSection, configuration.IntroductionServerID).Return("", false).AnyTimes()

	e, err := synchronise.New(nil, m.services())
	assert.Nil(t, err, "wrong New")
	return e
}

func TestNewMissingServices(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := newMockServices(ctl)
	s := m.services()
	s.Settings = nil

	e, err := synchronise.New(nil, s)
	assert.Nil(t, e, "engine created")
	assert.Equal(t, fault.NotInitialised, err, "wrong error")
}

func TestNewInvalidConfiguration(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := newMockServices(ctl)

	configs := []synchronise.Configuration{
		{MainLoopInterval: "bogus"},
		{StepInterval: "-1s"},
		{ContractPollInterval: "10"},
		{RequestRate: -1},
		{RequestBurst: -5},
	}

	for i, c := range configs {
		e, err := synchronise.New(&c, m.services())
		assert.Nil(t, e, "%d: engine created", i)
		assert.Equal(t, fault.InvalidConfiguration, err, "%d: wrong error", i)
	}
}

func TestStatusOfUnknownTask(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := newMockEngine(t, newMockServices(ctl))
	defer e.Stop()

	assert.Equal(t, task.Error, e.Status(fixtures.ID("unknown")), "wrong status")
	assert.Equal(t, task.Error, e.Status(identifier.Empty), "wrong status")
}

func TestValidationReturnsEmptyTask(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := newMockEngine(t, newMockServices(ctl))
	defer e.Stop()

	nym := fixtures.ID("nym")
	server := fixtures.ID("server")

	results := []identifier.Identifier{
		e.FindNym(identifier.Empty),
		e.FindServer(identifier.Empty),
		e.FindNymOnServer(nym, identifier.Empty),
		e.FindNymOnServer(identifier.Empty, server),
		e.RegisterNym(identifier.Empty, server, false),
		e.RegisterNym(nym, identifier.Empty, true),
		e.ScheduleDownloadNymbox(nym, identifier.Empty),
		e.ScheduleDownloadAccount(nym, server, identifier.Empty),
		e.ScheduleRegisterAccount(nym, server, identifier.Empty),
		e.ScheduleDownloadContract(identifier.Empty, server, fixtures.ID("contract")),
		e.ScheduleDownloadNym(nym, server, identifier.Empty),
		e.SchedulePublishServerContract(nym, server, identifier.Empty),
		e.MessageContact(identifier.Empty, fixtures.ID("contact"), "hello"),
		e.MessageContact(nym, identifier.Empty, "hello"),
		e.PayContact(nym, fixtures.ID("contact"), nil),
		e.PayContactCash(nym, fixtures.ID("contact"), nil, nil),
		e.DepositPayment(identifier.Empty, identifier.Empty, nil),
		e.DepositPayment(nym, identifier.Empty, nil),
		e.SendTransfer(nym, server, fixtures.ID("a"), fixtures.ID("b"), 0, "zero"),
		e.SendTransfer(nym, server, identifier.Empty, fixtures.ID("b"), 10, "no source"),
	}

	for i, id := range results {
		assert.True(t, id.IsEmpty(), "%d: task id: %s  returned", i, id)
	}
}

func TestFindNymStaysRunning(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := newMockEngine(t, newMockServices(ctl))
	defer e.Stop()

	taskID := e.FindNym(fixtures.ID("lost"))
	assert.False(t, taskID.IsEmpty(), "no task")

	// no worker exists to search for it
	assert.Equal(t, task.Running, e.Status(taskID), "wrong status")
	assert.Equal(t, task.Running, e.Status(taskID), "wrong status")

	serverTask := e.FindServer(fixtures.ID("lost-server"))
	assert.Equal(t, task.Running, e.Status(serverTask), "wrong status")

	hinted := e.FindNymOnServer(fixtures.ID("lost"), fixtures.ID("server"))
	assert.Equal(t, task.Running, e.Status(hinted), "wrong status")
}

func TestSendTransferAccountMismatch(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := newMockServices(ctl)
	e := newMockEngine(t, m)
	defer e.Stop()

	nym := fixtures.ID("nym")
	server := fixtures.ID("server")
	source := &account.Account{
		ID:       fixtures.ID("source"),
		Owner:    nym,
		Server:   server,
		Contract: fixtures.ID("usd"),
	}
	other := &account.Account{
		ID:       fixtures.ID("other"),
		Owner:    nym,
		Server:   server,
		Contract: fixtures.ID("eur"),
	}

	m.wallet.EXPECT().Account(source.ID).Return(source, true).Times(2)
	m.wallet.EXPECT().Account(other.ID).Return(other, true).Times(1)
	m.wallet.EXPECT().Account(fixtures.ID("missing")).Return(nil, false).Times(1)

	id := e.SendTransfer(nym, server, source.ID, other.ID, 10, "units differ")
	assert.True(t, id.IsEmpty(), "transfer between units accepted")

	id = e.SendTransfer(nym, server, source.ID, fixtures.ID("missing"), 10, "no target")
	assert.True(t, id.IsEmpty(), "transfer to missing account accepted")
}

func TestCanMessage(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := newMockServices(ctl)
	e := newMockEngine(t, m)
	defer e.Stop()

	sender := fixtures.ID("sender")
	recipient := fixtures.ID("recipient")
	contact := fixtures.ID("contact")
	server := fixtures.ID("server")

	assert.Equal(t, synchronise.InvalidSender, e.CanMessage(identifier.Empty, contact), "empty sender")
	assert.Equal(t, synchronise.MissingContact, e.CanMessage(sender, identifier.Empty), "empty contact")

	gomock.InOrder(
		m.wallet.EXPECT().Nym(sender).Return(nil, false),
		m.wallet.EXPECT().Nym(sender).Return(&synchronise.NymInfo{ID: sender}, true),
	)
	assert.Equal(t, synchronise.MissingSender, e.CanMessage(sender, contact), "missing sender")
	assert.Equal(t, synchronise.InvalidSender, e.CanMessage(sender, contact), "sender cannot sign")

	signer := &synchronise.NymInfo{ID: sender, CanSign: true}
	m.wallet.EXPECT().Nym(sender).Return(signer, true).AnyTimes()

	gomock.InOrder(
		m.contacts.EXPECT().Contact(contact).Return(nil, false),
		m.contacts.EXPECT().Contact(contact).Return(&synchronise.Contact{ID: contact}, true),
	)
	assert.Equal(t, synchronise.MissingContact, e.CanMessage(sender, contact), "missing contact")
	assert.Equal(t, synchronise.ContactLacksNym, e.CanMessage(sender, contact), "contact without nym")

	m.contacts.EXPECT().Contact(contact).Return(&synchronise.Contact{
		ID:   contact,
		Nyms: []identifier.Identifier{recipient},
	}, true).AnyTimes()

	gomock.InOrder(
		m.wallet.EXPECT().Nym(recipient).Return(nil, false),
		m.wallet.EXPECT().Nym(recipient).Return(&synchronise.NymInfo{ID: recipient}, true),
		m.wallet.EXPECT().Nym(recipient).Return(&synchronise.NymInfo{ID: recipient, PreferredServer: server}, true),
	)
	m.wallet.EXPECT().ServerContext(sender, server).Return(synchronise.ServerContext{Nym: sender, Server: server, Request: 2}, true)

	assert.Equal(t, synchronise.MissingRecipient, e.CanMessage(sender, contact), "credentials missing")
	assert.Equal(t, synchronise.NoServerClaim, e.CanMessage(sender, contact), "no server claim")
	assert.Equal(t, synchronise.MessageReady, e.CanMessage(sender, contact), "ready")
}

func TestCanMessageUnregisteredSchedulesNymbox(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := newMockServices(ctl)
	e := newMockEngine(t, m)
	defer e.Stop()

	sender := fixtures.ID("sender")
	recipient := fixtures.ID("recipient")
	contact := fixtures.ID("contact")
	server := fixtures.ID("server")

	m.wallet.EXPECT().Nym(sender).Return(&synchronise.NymInfo{ID: sender, CanSign: true}, true)
	m.wallet.EXPECT().Nym(recipient).Return(&synchronise.NymInfo{ID: recipient, PreferredServer: server}, true)
	m.contacts.EXPECT().Contact(contact).Return(&synchronise.Contact{
		ID:   contact,
		Nyms: []identifier.Identifier{recipient},
	}, true)
	m.wallet.EXPECT().ServerContext(sender, server).Return(synchronise.ServerContext{}, false)

	// the worker started for the nymbox download waits for the contract
	m.wallet.EXPECT().HasServer(server).Return(false).AnyTimes()

	assert.Equal(t, synchronise.Unregistered, e.CanMessage(sender, contact), "unregistered")

	_, ok := e.Phase(sender, server)
	assert.True(t, ok, "no worker started")
}

func TestSetIntroductionServer(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := newMockServices(ctl)
	e := newMockEngine(t, m)
	defer e.Stop()

	document := []byte("server contract")
	server := fixtures.ID("intro")

	gomock.InOrder(
		m.wallet.EXPECT().ImportServerContract([]byte("junk")).Return(identifier.Empty, fault.InvalidContractID),
		m.wallet.EXPECT().ImportServerContract(document).Return(server, nil),
	)
	m.settings.EXPECT().Set(configuration.MasterSection, configuration.IntroductionServerID, server.String()).Return(true)
	m.settings.EXPECT().Save().Return(nil)

	assert.Equal(t, identifier.Empty, e.SetIntroductionServer([]byte("junk")), "junk accepted")
	assert.Equal(t, identifier.Empty, e.IntroductionServer(), "server set")

	assert.Equal(t, server, e.SetIntroductionServer(document), "wrong server")
	assert.Equal(t, server, e.IntroductionServer(), "not cached")
}

func TestIntroductionServerFromSettings(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := newMockServices(ctl)
	server := fixtures.ID("intro")

	m.settings.EXPECT().Get(configuration.MasterSection, configuration.IntroductionServerID).Return(server.String(), true).Times(1)

	e, err := synchronise.New(nil, m.services())
	assert.Nil(t, err, "wrong New")
	defer e.Stop()

	assert.Equal(t, server, e.IntroductionServer(), "wrong server")
	assert.Equal(t, server, e.IntroductionServer(), "wrong cached server")
}

func TestIntroductionServerFromConfiguration(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := newMockServices(ctl)
	server := fixtures.ID("intro")
	contract := "default server contract"

	m.settings.EXPECT().Get(configuration.MasterSection, configuration.IntroductionServerID).Return("", false).Times(1)
	m.wallet.EXPECT().ImportServerContract([]byte(contract)).Return(server, nil).Times(1)
	m.settings.EXPECT().Set(configuration.MasterSection, configuration.IntroductionServerID, server.String()).Return(true)
	m.settings.EXPECT().Save().Return(fault.NotInitialised)

	e, err := synchronise.New(&synchronise.Configuration{IntroductionContract: contract}, m.services())
	assert.Nil(t, err, "wrong New")
	defer e.Stop()

	// a failed save still leaves the server in use
	assert.Equal(t, server, e.IntroductionServer(), "wrong server")
	assert.Equal(t, server, e.IntroductionServer(), "wrong cached server")
}

func TestAcceptIncomingBatches(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := newMockServices(ctl)
	e := newMockEngine(t, m)
	defer e.Stop()

	nym := fixtures.ID("nym")
	server := fixtures.ID("server")
	acct := fixtures.ID("account")

	action := mocks.NewMockAction(ctl)
	action.EXPECT().Run().Times(2)
	action.EXPECT().LastSendResult().Return(synchronise.ValidReply).Times(2)

	gomock.InOrder(
		m.actions.EXPECT().ProcessInbox(nym, server, acct, 5).Return(action, 3, nil),
		m.actions.EXPECT().ProcessInbox(nym, server, acct, 5).Return(action, 0, nil),
	)

	assert.True(t, e.AcceptIncoming(nym, acct, server, 5), "accept failed")
}

func TestAcceptIncomingNothingToAccept(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := newMockServices(ctl)
	e := newMockEngine(t, m)
	defer e.Stop()

	nym := fixtures.ID("nym")
	server := fixtures.ID("server")
	acct := fixtures.ID("account")

	m.actions.EXPECT().ProcessInbox(nym, server, acct, 1).Return(nil, 0, nil).Times(1)

	assert.True(t, e.AcceptIncoming(nym, acct, server, 1), "accept failed")
}

func TestAcceptIncomingRetry(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := newMockServices(ctl)
	e := newMockEngine(t, m)
	defer e.Stop()

	nym := fixtures.ID("nym")
	server := fixtures.ID("server")
	acct := fixtures.ID("account")

	failed := mocks.NewMockAction(ctl)
	failed.EXPECT().Run().Times(1)
	failed.EXPECT().LastSendResult().Return(synchronise.Timeout).Times(1)

	gomock.InOrder(
		m.actions.EXPECT().ProcessInbox(nym, server, acct, 10).Return(failed, 0, nil),
		m.actions.EXPECT().DownloadIntermediaryFiles(nym, server, acct).Return(true),
		m.actions.EXPECT().ProcessInbox(nym, server, acct, 10).Return(nil, 0, nil),
	)

	assert.True(t, e.AcceptIncoming(nym, acct, server, 10), "accept failed")
}

func TestAcceptIncomingRetriesExhausted(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := newMockServices(ctl)
	e := newMockEngine(t, m)
	defer e.Stop()

	nym := fixtures.ID("nym")
	server := fixtures.ID("server")
	acct := fixtures.ID("account")

	m.actions.EXPECT().ProcessInbox(nym, server, acct, 2).Return(nil, 4, fault.InvalidCount).Times(4)
	m.actions.EXPECT().DownloadIntermediaryFiles(nym, server, acct).Return(true).Times(3)

	assert.False(t, e.AcceptIncoming(nym, acct, server, 2), "accept succeeded")
}

func TestAcceptIncomingDownloadFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := newMockServices(ctl)
	e := newMockEngine(t, m)
	defer e.Stop()

	nym := fixtures.ID("nym")
	server := fixtures.ID("server")
	acct := fixtures.ID("account")

	m.actions.EXPECT().ProcessInbox(nym, server, acct, 2).Return(nil, 0, fault.InvalidCount).Times(1)
	m.actions.EXPECT().DownloadIntermediaryFiles(nym, server, acct).Return(false).Times(1)

	assert.False(t, e.AcceptIncoming(nym, acct, server, 2), "accept succeeded")
}

func TestAcceptIncomingInvalidArguments(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := newMockEngine(t, newMockServices(ctl))
	defer e.Stop()

	nym := fixtures.ID("nym")
	server := fixtures.ID("server")
	acct := fixtures.ID("account")

	assert.False(t, e.AcceptIncoming(nym, acct, server, 0), "zero batch accepted")
	assert.False(t, e.AcceptIncoming(identifier.Empty, acct, server, 1), "empty nym accepted")
	assert.False(t, e.AcceptIncoming(nym, identifier.Empty, server, 1), "empty account accepted")
	assert.False(t, e.AcceptIncoming(nym, acct, identifier.Empty, 1), "empty server accepted")
}
