// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identifier_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/YCoro/opentxs/fault"
	"github.com/YCoro/opentxs/identifier"
)

func TestEmpty(t *testing.T) {
	var id identifier.Identifier
	assert.True(t, id.IsEmpty(), "zero value is empty")
	assert.Equal(t, "", id.String(), "empty prints as empty string")

	parsed, err := identifier.FromString("")
	assert.Nil(t, err, "empty string")
	assert.True(t, parsed.IsEmpty(), "empty string parses to empty")
}

func TestFromContent(t *testing.T) {
	a := identifier.FromContent([]byte("server contract one"))
	b := identifier.FromContent([]byte("server contract one"))
	c := identifier.FromContent([]byte("server contract two"))

	assert.Equal(t, a, b, "same content same id")
	assert.NotEqual(t, a, c, "different content different id")
	assert.False(t, a.IsEmpty(), "content id is not empty")
}

func TestRandom(t *testing.T) {
	seen := make(map[identifier.Identifier]struct{})
	for i := 0; i < 100; i += 1 {
		id := identifier.Random()
		_, ok := seen[id]
		assert.False(t, ok, "duplicate random id: %s", id)
		seen[id] = struct{}{}
	}
}

func TestTextRoundTrip(t *testing.T) {
	id := identifier.FromContent([]byte("nym"))

	text, err := id.MarshalText()
	assert.Nil(t, err, "marshal")

	var back identifier.Identifier
	err = back.UnmarshalText(text)
	assert.Nil(t, err, "unmarshal")
	assert.Equal(t, id, back, "round trip")
	assert.Equal(t, id.String(), fmt.Sprintf("%s", back), "fmt")
}

func TestBadText(t *testing.T) {
	_, err := identifier.FromString("0OIl")
	assert.NotNil(t, err, "non base58 characters")

	_, err = identifier.FromString("2NEpo7TZRRrLZSi2U")
	assert.Equal(t, fault.InvalidIdentifierLength, err, "short value")
}

func TestLess(t *testing.T) {
	a := identifier.Identifier{}
	b := identifier.Identifier{}
	a[0] = 1
	b[0] = 2
	assert.True(t, a.Less(b), "a < b")
	assert.False(t, b.Less(a), "b > a")
	assert.False(t, a.Less(a), "a == a")
}

func TestContextID(t *testing.T) {
	nym := identifier.FromContent([]byte("nym"))
	server := identifier.FromContent([]byte("server"))

	assert.True(t, identifier.NewContextID(nym, server).IsValid(), "both set")
	assert.False(t, identifier.NewContextID(nym, identifier.Empty).IsValid(), "no server")
	assert.False(t, identifier.NewContextID(identifier.Empty, server).IsValid(), "no nym")

	m := map[identifier.ContextID]int{}
	m[identifier.NewContextID(nym, server)] = 1
	assert.Equal(t, 1, m[identifier.ContextID{Nym: nym, Server: server}], "usable as map key")
}
