// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"strings"

	"github.com/YCoro/opentxs/fault"
)

// UnitType - the kind of value an account is denominated in
type UnitType uint32

// unit types; Unknown is the unset sentinel
const (
	Unknown  UnitType = iota
	Bitcoin  UnitType = iota
	Litecoin UnitType = iota
	Ethereum UnitType = iota
	USD      UnitType = iota
	EUR      UnitType = iota
	Gold     UnitType = iota
	Shares   UnitType = iota
	Basket   UnitType = iota
	maxUnitType
)

var unitNames = map[UnitType]string{
	Unknown:  "unknown",
	Bitcoin:  "btc",
	Litecoin: "ltc",
	Ethereum: "eth",
	USD:      "usd",
	EUR:      "eur",
	Gold:     "gold",
	Shares:   "shares",
	Basket:   "basket",
}

// IsValid - true for any defined unit type including Unknown
func (u UnitType) IsValid() bool {
	return u < maxUnitType
}

func (u UnitType) String() string {
	if s, ok := unitNames[u]; ok {
		return s
	}
	return "invalid"
}

// UnitTypeFromString - parse a unit name, case insensitive
func UnitTypeFromString(s string) (UnitType, error) {
	s = strings.ToLower(s)
	for u, name := range unitNames {
		if name == s {
			return u, nil
		}
	}
	return Unknown, fault.InvalidUnitType
}
