// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	proto "github.com/gogo/protobuf/proto"

	"github.com/YCoro/opentxs/fault"
	"github.com/YCoro/opentxs/identifier"
)

const recordVersion = 1

// Record - the stored form of an account
type Record struct {
	Version  uint32 `protobuf:"varint,1,opt,name=version,proto3" json:"version,omitempty"`
	ID       []byte `protobuf:"bytes,2,opt,name=id,proto3" json:"id,omitempty"`
	Owner    []byte `protobuf:"bytes,3,opt,name=owner,proto3" json:"owner,omitempty"`
	Signer   []byte `protobuf:"bytes,4,opt,name=signer,proto3" json:"signer,omitempty"`
	Issuer   []byte `protobuf:"bytes,5,opt,name=issuer,proto3" json:"issuer,omitempty"`
	Server   []byte `protobuf:"bytes,6,opt,name=server,proto3" json:"server,omitempty"`
	Contract []byte `protobuf:"bytes,7,opt,name=contract,proto3" json:"contract,omitempty"`
	UnitType uint32 `protobuf:"varint,8,opt,name=unit_type,json=unitType,proto3" json:"unit_type,omitempty"`
	Type     uint32 `protobuf:"varint,9,opt,name=type,proto3" json:"type,omitempty"`
	Alias    string `protobuf:"bytes,10,opt,name=alias,proto3" json:"alias,omitempty"`
	Balance  int64  `protobuf:"varint,11,opt,name=balance,proto3" json:"balance,omitempty"`
}

func (m *Record) Reset()         { *m = Record{} }
func (m *Record) String() string { return proto.CompactTextString(m) }
func (*Record) ProtoMessage()    {}

// Pack - serialise an account
func (a *Account) Pack() ([]byte, error) {
	r := &Record{
		Version:  recordVersion,
		ID:       a.ID[:],
		Owner:    a.Owner[:],
		Signer:   a.Signer[:],
		Issuer:   a.Issuer[:],
		Server:   a.Server[:],
		Contract: a.Contract[:],
		UnitType: uint32(a.UnitType),
		Type:     uint32(a.Type),
		Alias:    a.Alias,
		Balance:  a.Balance,
	}
	return proto.Marshal(r)
}

// Unpack - deserialise an account
func Unpack(buffer []byte) (*Account, error) {
	r := &Record{}
	err := proto.Unmarshal(buffer, r)
	if nil != err {
		return nil, err
	}
	if recordVersion != r.Version {
		return nil, fault.IncompatibleVersion
	}

	a := &Account{
		UnitType: UnitType(r.UnitType),
		Type:     Type(r.Type),
		Alias:    r.Alias,
		Balance:  r.Balance,
	}
	for _, f := range []struct {
		id     *identifier.Identifier
		buffer []byte
	}{
		{&a.ID, r.ID},
		{&a.Owner, r.Owner},
		{&a.Signer, r.Signer},
		{&a.Issuer, r.Issuer},
		{&a.Server, r.Server},
		{&a.Contract, r.Contract},
	} {
		if err := identifier.FromBytes(f.id, f.buffer); nil != err {
			return nil, err
		}
	}
	return a, nil
}
