// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/YCoro/opentxs/accountindex"
	"github.com/YCoro/opentxs/notary"
	"github.com/YCoro/opentxs/storage"
	"github.com/YCoro/opentxs/transactor"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// set once the logger and storage are up
var opened bool

func main() {

	app := cli.NewApp()
	app.Name = "notary-dumpdb"
	app.Usage = "display the contents of a notary database"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "file, f",
			Value: "",
			Usage: "*leveldb `DIRECTORY`",
		},
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " log to the console",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "pools",
			Usage:  "list the pool tags",
			Action: runPools,
		},
		{
			Name:      "dump",
			Usage:     "dump raw records of a pool as hex",
			ArgsUsage: "TAG [hex-key-prefix]",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, c",
					Value: 10,
					Usage: " maximum `COUNT` of records",
				},
			},
			Before: openDatabase,
			Action: runDump,
		},
		{
			Name:   "accounts",
			Usage:  "display every indexed account",
			Before: openDatabase,
			Action: runAccounts,
		},
		{
			Name:   "ledger",
			Usage:  "display the last transaction number and basket mappings",
			Before: openDatabase,
			Action: runLedger,
		},
		{
			Name:   "vouchers",
			Usage:  "display the outstanding vouchers",
			Before: openDatabase,
			Action: runVouchers,
		},
		{
			Name:  "version",
			Usage: "display notary-dumpdb version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}
	app.After = func(c *cli.Context) error {
		if opened {
			storage.Finalise()
			logger.Finalise()
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

// logger and read-only storage, for commands that read the database
func openDatabase(c *cli.Context) error {
	file := c.GlobalString("file")
	if "" == file {
		return fmt.Errorf("database file is required")
	}

	logging := logger.Configuration{
		Directory: os.TempDir(),
		File:      "notary-dumpdb.log",
		Size:      1048576,
		Count:     10,
		Console:   c.GlobalBool("verbose"),
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		return err
	}

	if err := storage.Initialise(file, storage.ReadOnly); nil != err {
		logger.Finalise()
		return err
	}
	opened = true
	return nil
}

func runPools(c *cli.Context) error {
	// this will be a struct type
	poolType := reflect.TypeOf(storage.Pool)

	fmt.Fprintf(c.App.Writer, " tags:\n")
	for i := 0; i < poolType.NumField(); i += 1 {
		fieldInfo := poolType.Field(i)
		prefixTag := fieldInfo.Tag.Get("prefix")
		fmt.Fprintf(c.App.Writer, "       %s → %s\n", prefixTag, fieldInfo.Name)
	}
	return nil
}

func runDump(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("missing pool tag")
	}
	tag := c.Args().Get(0)

	prefix := []byte(nil)
	if c.NArg() > 1 {
		var err error
		prefix, err = hex.DecodeString(c.Args().Get(1))
		if nil != err {
			return fmt.Errorf("convert prefix error: %s", err)
		}
	}

	count := c.Int("count")
	if count < 1 {
		return fmt.Errorf("invalid count: %d", count)
	}

	p := poolByTag(tag)
	if nil == p {
		return fmt.Errorf("no pool corresponding to: %q", tag)
	}

	cursor := p.NewFetchCursor()
	if len(prefix) > 0 {
		cursor.Seek(prefix)
	}
	data, err := cursor.Fetch(count)
	if nil != err {
		return err
	}
	for i, e := range data {
		fmt.Fprintf(c.App.Writer, "%d: Key: %x\n", i, e.Key)
		fmt.Fprintf(c.App.Writer, "%d: Val: %x\n", i, e.Value)
	}
	return nil
}

// scan each field to locate tag
func poolByTag(tag string) *storage.PoolHandle {
	poolType := reflect.TypeOf(storage.Pool)
	poolValue := reflect.ValueOf(storage.Pool)
	for i := 0; i < poolType.NumField(); i += 1 {
		if tag == poolType.Field(i).Tag.Get("prefix") {
			return poolValue.Field(i).Interface().(*storage.PoolHandle)
		}
	}
	return nil
}

func runAccounts(c *cli.Context) error {
	index, err := accountindex.New(storage.Pool.Accounts, storage.Pool.AccountIndex)
	if nil != err {
		return err
	}

	type entry struct {
		Alias     string      `json:"alias"`
		Account   interface{} `json:"account,omitempty"`
		LoadError string      `json:"error,omitempty"`
	}
	result := []entry{}
	for _, item := range index.AccountList() {
		e := entry{Alias: item.Alias}
		a, err := index.LoadAccount(item.ID)
		if nil != err {
			e.LoadError = fmt.Sprintf("%s: %s", item.ID, err)
		} else {
			e.Account = a
		}
		result = append(result, e)
	}
	return printJSON(c.App.Writer, result)
}

func runLedger(c *cli.Context) error {
	number, baskets, err := transactor.ReadLedger(storage.Pool.Ledger)
	if nil != err {
		return err
	}
	return printJSON(c.App.Writer, struct {
		TransactionNumber uint64                     `json:"transactionNumber"`
		Baskets           []transactor.BasketMapping `json:"baskets"`
	}{
		TransactionNumber: number,
		Baskets:           baskets,
	})
}

func runVouchers(c *cli.Context) error {
	outstanding, err := notary.OutstandingVouchers(storage.Pool.Vouchers)
	if nil != err {
		return err
	}
	return printJSON(c.App.Writer, outstanding)
}

func printJSON(w io.Writer, message interface{}) error {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}
	fmt.Fprintf(w, "%s\n", b)
	return nil
}
