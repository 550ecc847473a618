// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/YCoro/opentxs/identifier"
	"github.com/YCoro/opentxs/notary"
	"github.com/YCoro/opentxs/transactor"
)

// setup command handler
//
// commands that run to create identities these commands cannot
// access any internal database or states or the configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "gen-identity", "id":
		// print as Lua so the output can be pasted into the configuration
		fmt.Printf("M.server_id = %q\n", identifier.Random())
		fmt.Printf("M.server_nym = %q\n", identifier.Random())

	case "start", "run":
		return false // continue processing

	case "config-test", "cfg":
		return false // defer processing until configuration is read

	case "last-number", "set-number", "issue-number", "accounts":
		return false // defer processing until database is loaded

	case "version", "v":
		fmt.Printf("%s\n", version)

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  gen-identity               (id)     - print a fresh server_id and server_nym\n")
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  last-number                         - display the last transaction number issued\n")
		fmt.Printf("  set-number NUMBER                   - restore the transaction number counter\n")
		fmt.Printf("  issue-number NYM                    - issue a transaction number to a nym\n")
		fmt.Printf("  accounts NYM                        - list the accounts owned by a nym\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		b, err := json.Marshal(options)
		if nil != err {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		json.Indent(&out, b, "", "  ")
		out.WriteTo(os.Stdout)
		os.Stdout.WriteString("\n")

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the storage pools, transactor and notary are available so these
// commands can access and/or change the ledger
func processDataCommand(log *logger.L, arguments []string, t *transactor.Transactor, n *notary.Notary) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "last-number":
		fmt.Printf("%d\n", t.TransactionNumber())

	case "set-number":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing transaction number argument")
		}
		number, err := strconv.ParseUint(arguments[0], 10, 64)
		if nil != err {
			exitwithstatus.Message("error in transaction number: %s", err)
		}
		if err := t.SetTransactionNumber(number); nil != err {
			log.Errorf("set transaction number: %d  error: %s", number, err)
			exitwithstatus.Message("set transaction number: %d  error: %s", number, err)
		}
		log.Infof("transaction number set to: %d", number)

	case "issue-number":
		nym := nymArgument(arguments)
		number, err := n.IssueTransactionNumber(nym)
		if nil != err {
			exitwithstatus.Message("issue number to: %s  error: %s", nym, err)
		}
		fmt.Printf("%d\n", number)

	case "accounts":
		nym := nymArgument(arguments)
		for _, accountID := range n.Accounts(nym) {
			a, err := n.Account(accountID)
			if nil != err {
				exitwithstatus.Message("account: %s  error: %s", accountID, err)
			}
			fmt.Printf("%s  %-8s %12d  %s  %q\n", a.ID, a.Type, a.Balance, a.Contract, a.Alias)
		}

	default:
		exitwithstatus.Message("error: no such command: %q", command)
	}

	// indicate processing complete and perform normal exit from main
	return true
}

func nymArgument(arguments []string) identifier.Identifier {
	if len(arguments) < 1 {
		exitwithstatus.Message("missing nym argument")
	}
	nym, err := identifier.FromString(arguments[0])
	if nil != err || nym.IsEmpty() {
		exitwithstatus.Message("invalid nym: %q", arguments[0])
	}
	return nym
}
