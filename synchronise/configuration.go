// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package synchronise

import (
	"time"

	"github.com/YCoro/opentxs/fault"
)

// default tuning
const (
	defaultContractPoll      = 10 * time.Second
	defaultRegistrationRetry = 10 * time.Second
	defaultMainLoop          = 5 * time.Second
	defaultStep              = 50 * time.Millisecond
	defaultContactRefresh    = 1
	defaultInboxRetries      = 3
)

// Configuration - engine tuning as read from the configuration file
//
// intervals are duration strings; empty values select the defaults
type Configuration struct {
	ContractPollInterval      string   `gluamapper:"contract_poll_interval" json:"contract_poll_interval"`
	RegistrationRetryInterval string   `gluamapper:"registration_retry_interval" json:"registration_retry_interval"`
	MainLoopInterval          string   `gluamapper:"main_loop_interval" json:"main_loop_interval"`
	StepInterval              string   `gluamapper:"step_interval" json:"step_interval"`
	ContactRefreshDays        int      `gluamapper:"contact_refresh_days" json:"contact_refresh_days"`
	RequestRate               float64  `gluamapper:"request_rate" json:"request_rate"`
	RequestBurst              int      `gluamapper:"request_burst" json:"request_burst"`
	InboxRetries              int      `gluamapper:"inbox_retries" json:"inbox_retries"`
	AccountUpdate             []string `gluamapper:"account_update" json:"account_update"`
	IntroductionContract      string   `gluamapper:"introduction_contract" json:"introduction_contract"`
}

// parsed values
type tuning struct {
	contractPoll      time.Duration
	registrationRetry time.Duration
	mainLoop          time.Duration
	step              time.Duration
	contactRefresh    time.Duration
	requestRate       float64
	requestBurst      int
	inboxRetries      int
}

func (c *Configuration) tuning() (tuning, error) {
	t := tuning{
		requestRate:  c.RequestRate,
		requestBurst: c.RequestBurst,
		inboxRetries: c.InboxRetries,
	}

	var err error
	if t.contractPoll, err = interval(c.ContractPollInterval, defaultContractPoll); nil != err {
		return t, err
	}
	if t.registrationRetry, err = interval(c.RegistrationRetryInterval, defaultRegistrationRetry); nil != err {
		return t, err
	}
	if t.mainLoop, err = interval(c.MainLoopInterval, defaultMainLoop); nil != err {
		return t, err
	}
	if t.step, err = interval(c.StepInterval, defaultStep); nil != err {
		return t, err
	}

	days := c.ContactRefreshDays
	if days <= 0 {
		days = defaultContactRefresh
	}
	t.contactRefresh = time.Duration(days) * 24 * time.Hour

	if t.inboxRetries <= 0 {
		t.inboxRetries = defaultInboxRetries
	}
	if t.requestRate < 0 || t.requestBurst < 0 {
		return t, fault.InvalidConfiguration
	}
	return t, nil
}

func interval(s string, def time.Duration) (time.Duration, error) {
	if "" == s {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if nil != err || d < 0 {
		return 0, fault.InvalidConfiguration
	}
	return d, nil
}
