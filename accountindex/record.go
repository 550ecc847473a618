// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package accountindex

import (
	proto "github.com/gogo/protobuf/proto"
)

// StorageAccounts - the stored form of the whole index
type StorageAccounts struct {
	Version uint32              `protobuf:"varint,1,opt,name=version,proto3" json:"version,omitempty"`
	Account []*StorageItem      `protobuf:"bytes,2,rep,name=account,proto3" json:"account,omitempty"`
	Owner   []*StorageIDList    `protobuf:"bytes,3,rep,name=owner,proto3" json:"owner,omitempty"`
	Signer  []*StorageIDList    `protobuf:"bytes,4,rep,name=signer,proto3" json:"signer,omitempty"`
	Issuer  []*StorageIDList    `protobuf:"bytes,5,rep,name=issuer,proto3" json:"issuer,omitempty"`
	Server  []*StorageIDList    `protobuf:"bytes,6,rep,name=server,proto3" json:"server,omitempty"`
	Unit    []*StorageIDList    `protobuf:"bytes,7,rep,name=unit,proto3" json:"unit,omitempty"`
	Index   []*StorageUnitIndex `protobuf:"bytes,8,rep,name=index,proto3" json:"index,omitempty"`
}

func (m *StorageAccounts) Reset()         { *m = StorageAccounts{} }
func (m *StorageAccounts) String() string { return proto.CompactTextString(m) }
func (*StorageAccounts) ProtoMessage()    {}

// StorageItem - one indexed account
type StorageItem struct {
	Version uint32 `protobuf:"varint,1,opt,name=version,proto3" json:"version,omitempty"`
	ItemID  string `protobuf:"bytes,2,opt,name=itemid,proto3" json:"itemid,omitempty"`
	Alias   string `protobuf:"bytes,3,opt,name=alias,proto3" json:"alias,omitempty"`
}

func (m *StorageItem) Reset()         { *m = StorageItem{} }
func (m *StorageItem) String() string { return proto.CompactTextString(m) }
func (*StorageItem) ProtoMessage()    {}

// StorageIDList - the accounts sharing one field value
type StorageIDList struct {
	Version uint32   `protobuf:"varint,1,opt,name=version,proto3" json:"version,omitempty"`
	ID      string   `protobuf:"bytes,2,opt,name=id,proto3" json:"id,omitempty"`
	List    []string `protobuf:"bytes,3,rep,name=list,proto3" json:"list,omitempty"`
}

func (m *StorageIDList) Reset()         { *m = StorageIDList{} }
func (m *StorageIDList) String() string { return proto.CompactTextString(m) }
func (*StorageIDList) ProtoMessage()    {}

// StorageUnitIndex - the accounts of one unit type
type StorageUnitIndex struct {
	Version uint32   `protobuf:"varint,1,opt,name=version,proto3" json:"version,omitempty"`
	Type    uint32   `protobuf:"varint,2,opt,name=type,proto3" json:"type,omitempty"`
	Account []string `protobuf:"bytes,3,rep,name=account,proto3" json:"account,omitempty"`
}

func (m *StorageUnitIndex) Reset()         { *m = StorageUnitIndex{} }
func (m *StorageUnitIndex) String() string { return proto.CompactTextString(m) }
func (*StorageUnitIndex) ProtoMessage()    {}
