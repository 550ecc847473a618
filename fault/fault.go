// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AccountConflict           = RecordError("account index field conflicts with existing value")
	AccountNotEmpty           = ProcessError("account balance is not zero")
	AccountNotFound           = NotFoundError("account not found")
	AlreadyInitialised        = ExistsError("already initialised")
	BasketAlreadyMapped       = ExistsError("basket already mapped")
	BasketNotFound            = NotFoundError("basket not found")
	ConfigurationNotInitiated = ProcessError("configuration not initialised")
	DatabaseIsNotSet          = ProcessError("database is not set")
	IncompatibleVersion       = RecordError("incompatible record version")
	InsufficientFunds         = ProcessError("insufficient funds")
	InvalidAccountID          = InvalidError("invalid account id")
	InvalidAccountType        = InvalidError("invalid account type")
	InvalidAmount             = InvalidError("invalid amount")
	InvalidContactID          = InvalidError("invalid contact id")
	InvalidContractID         = InvalidError("invalid contract id")
	InvalidConfiguration      = InvalidError("invalid configuration")
	InvalidCount              = InvalidError("invalid count")
	InvalidCursor             = InvalidError("invalid cursor")
	InvalidIdentifierLength   = LengthError("invalid identifier length")
	InvalidInstrument         = InvalidError("invalid instrument")
	InvalidIssuerID           = InvalidError("invalid issuer id")
	InvalidLoggerChannel      = InvalidError("invalid logger channel")
	InvalidMessage            = InvalidError("invalid message")
	InvalidNymID              = InvalidError("invalid nym id")
	InvalidServerID           = InvalidError("invalid server id")
	InvalidSignerID           = InvalidError("invalid signer id")
	InvalidStructPointer      = InvalidError("invalid struct pointer")
	InvalidTaskID             = InvalidError("invalid task id")
	InvalidUnitID             = InvalidError("invalid unit id")
	InvalidUnitType           = InvalidError("invalid unit type")
	MissingAccountUpdate      = ProcessError("missing account update endpoint")
	NotAccountOwner           = InvalidError("not account owner")
	NotInitialised            = NotFoundError("not initialised")
	RateLimiting              = ProcessError("rate limiting")
	RecordTruncated           = LengthError("record truncated")
	TransactionNumberIssued   = ExistsError("transaction number already issued")
	TransactionNumberNotFound = NotFoundError("transaction number not issued")
	UnitMismatch              = InvalidError("unit mismatch")
	UnitTypeAlreadySet        = RecordError("unit type already set")
	VoucherAccountNotFound    = NotFoundError("voucher account not found")
	VoucherNotOutstanding     = NotFoundError("voucher not outstanding")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
