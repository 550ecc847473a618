// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identifier

import (
	"bytes"
	"crypto/rand"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/YCoro/opentxs/fault"
)

// Length - number of bytes in an identifier
const Length = 32

// Identifier - opaque content-derived key for nyms, servers,
// accounts, units and tasks
//
// the zero value is the empty identifier and is never valid
// to convert to bytes just use id[:]
type Identifier [Length]byte

// Empty - the distinguished invalid identifier
var Empty Identifier

// FromContent - derive an identifier from a serialised record
func FromContent(record []byte) Identifier {
	return sha3.Sum256(record)
}

// Random - generate a fresh identifier, used for task ids
func Random() Identifier {
	id := Identifier{}
	if _, err := rand.Read(id[:]); nil != err {
		fault.PanicWithError("identifier.Random", err)
	}
	return id
}

// FromBytes - convert and validate a binary byte slice
func FromBytes(id *Identifier, buffer []byte) error {
	if Length != len(buffer) {
		return fault.InvalidIdentifierLength
	}
	copy(id[:], buffer)
	return nil
}

// FromString - decode the base58 text form
func FromString(s string) (Identifier, error) {
	id := Identifier{}
	if "" == s {
		return id, nil
	}
	buffer, err := base58.Decode(s)
	if nil != err {
		return id, err
	}
	err = FromBytes(&id, buffer)
	return id, err
}

// IsEmpty - true for the invalid identifier
func (id Identifier) IsEmpty() bool {
	return Empty == id
}

// Less - ordering for sorted output
func (id Identifier) Less(other Identifier) bool {
	return bytes.Compare(id[:], other[:]) < 0
}

// String - base58 text for use by the fmt package (for %s)
//
// the empty identifier prints as the empty string
func (id Identifier) String() string {
	if id.IsEmpty() {
		return ""
	}
	return base58.Encode(id[:])
}

// GoString - for use by the fmt package (for %#v)
func (id Identifier) GoString() string {
	return "<id:" + id.String() + ">"
}

// MarshalText - convert identifier to base58 text
func (id Identifier) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - convert base58 text into an identifier
func (id *Identifier) UnmarshalText(s []byte) error {
	result, err := FromString(string(s))
	if nil != err {
		return err
	}
	*id = result
	return nil
}
