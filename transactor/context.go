// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactor

import (
	"sort"
	"sync"

	proto "github.com/gogo/protobuf/proto"

	"github.com/YCoro/opentxs/fault"
	"github.com/YCoro/opentxs/identifier"
	"github.com/YCoro/opentxs/storage"
)

// ClientContext - the notary's record of one nym's open transaction numbers
type ClientContext interface {
	Nym() identifier.Identifier
	IssueNumber(n uint64) error
	VerifyIssuedNumber(n uint64) bool
	ConsumeIssuedNumber(n uint64) error
	IssuedNumbers() []uint64
}

// Contexts - persisted client contexts, one per nym
type Contexts struct {
	sync.Mutex
	handle   storage.Handle
	contexts map[identifier.Identifier]*context
}

type context struct {
	sync.Mutex
	handle storage.Handle
	nym    identifier.Identifier
	issued map[uint64]struct{}
}

// NewContexts - client contexts stored in a pool
func NewContexts(handle storage.Handle) *Contexts {
	return &Contexts{
		handle:   handle,
		contexts: make(map[identifier.Identifier]*context),
	}
}

// Get - the context for a nym, created empty if none is stored
//
// the same context value is returned for every call with the same nym
func (c *Contexts) Get(nym identifier.Identifier) (ClientContext, error) {
	if nym.IsEmpty() {
		return nil, fault.InvalidNymID
	}

	c.Lock()
	defer c.Unlock()

	if ctx, ok := c.contexts[nym]; ok {
		return ctx, nil
	}

	ctx := &context{
		handle: c.handle,
		nym:    nym,
		issued: make(map[uint64]struct{}),
	}

	if nil != c.handle {
		if buffer := c.handle.Get(nym[:]); nil != buffer {
			r := &contextRecord{}
			if err := proto.Unmarshal(buffer, r); nil != err {
				return nil, err
			}
			if contextVersion != r.Version {
				return nil, fault.IncompatibleVersion
			}
			for _, n := range r.Issued {
				ctx.issued[n] = struct{}{}
			}
		}
	}

	c.contexts[nym] = ctx
	return ctx, nil
}

func (ctx *context) Nym() identifier.Identifier {
	return ctx.nym
}

// IssueNumber - record a number as held by this nym
func (ctx *context) IssueNumber(n uint64) error {
	ctx.Lock()
	defer ctx.Unlock()

	if _, ok := ctx.issued[n]; ok {
		return fault.TransactionNumberIssued
	}
	ctx.issued[n] = struct{}{}
	if err := ctx.save(); nil != err {
		delete(ctx.issued, n)
		return err
	}
	return nil
}

// VerifyIssuedNumber - true if the nym holds the number
func (ctx *context) VerifyIssuedNumber(n uint64) bool {
	ctx.Lock()
	defer ctx.Unlock()

	_, ok := ctx.issued[n]
	return ok
}

// ConsumeIssuedNumber - a number presented back by the nym is spent
func (ctx *context) ConsumeIssuedNumber(n uint64) error {
	ctx.Lock()
	defer ctx.Unlock()

	if _, ok := ctx.issued[n]; !ok {
		return fault.TransactionNumberNotFound
	}
	delete(ctx.issued, n)
	if err := ctx.save(); nil != err {
		ctx.issued[n] = struct{}{}
		return err
	}
	return nil
}

// IssuedNumbers - sorted list of held numbers
func (ctx *context) IssuedNumbers() []uint64 {
	ctx.Lock()
	defer ctx.Unlock()
	return ctx.sorted()
}

// must hold lock
func (ctx *context) sorted() []uint64 {
	result := make([]uint64, 0, len(ctx.issued))
	for n := range ctx.issued {
		result = append(result, n)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// must hold lock
func (ctx *context) save() error {
	if nil == ctx.handle {
		return nil
	}
	buffer, err := proto.Marshal(&contextRecord{
		Version: contextVersion,
		Nym:     ctx.nym[:],
		Issued:  ctx.sorted(),
	})
	if nil != err {
		return err
	}
	return ctx.handle.Put(ctx.nym[:], buffer)
}
