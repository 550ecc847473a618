// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// a single leveldb database split into pools by a one byte key prefix
//
// pools:
//
//   A - account blobs          account id         → account record
//   I - account index          "root"             → serialised index
//   L - ledger                 "number"           → last transaction number (8 byte big endian)
//                              "basket"+basket id → basket record
//   V - voucher accounts       unit id            → voucher account record
//   C - client contexts        nym id             → context record
//   S - settings               section ":" key    → string value
//   Z - test data
package storage
