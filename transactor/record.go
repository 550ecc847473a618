// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactor

import (
	proto "github.com/gogo/protobuf/proto"
)

// basketRecord - the account and contract mapped to one basket
type basketRecord struct {
	Version  uint32 `protobuf:"varint,1,opt,name=version,proto3" json:"version,omitempty"`
	Basket   []byte `protobuf:"bytes,2,opt,name=basket,proto3" json:"basket,omitempty"`
	Account  []byte `protobuf:"bytes,3,opt,name=account,proto3" json:"account,omitempty"`
	Contract []byte `protobuf:"bytes,4,opt,name=contract,proto3" json:"contract,omitempty"`
}

func (m *basketRecord) Reset()         { *m = basketRecord{} }
func (m *basketRecord) String() string { return proto.CompactTextString(m) }
func (*basketRecord) ProtoMessage()    {}

// contextRecord - the numbers issued to one nym and not yet consumed
type contextRecord struct {
	Version uint32   `protobuf:"varint,1,opt,name=version,proto3" json:"version,omitempty"`
	Nym     []byte   `protobuf:"bytes,2,opt,name=nym,proto3" json:"nym,omitempty"`
	Issued  []uint64 `protobuf:"varint,3,rep,packed,name=issued,proto3" json:"issued,omitempty"`
}

func (m *contextRecord) Reset()         { *m = contextRecord{} }
func (m *contextRecord) String() string { return proto.CompactTextString(m) }
func (*contextRecord) ProtoMessage()    {}

const (
	basketVersion  = 1
	contextVersion = 1
)
