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
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrBalanceMismatch       = InvalidError("balance factor does not match subtree heights")
	ErrCountMismatch         = InvalidError("node count does not match tree")
	ErrInvalidKey            = InvalidError("invalid key")
	ErrInvalidKeyType        = InvalidError("invalid key type")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidOperation      = InvalidError("invalid operation")
	ErrInvalidConfigResult   = InvalidError("configuration did not return a table")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrKeyNotFound           = NotFoundError("key not found")
	ErrKeyOrder              = InvalidError("keys are not in ascending order")
	ErrMissingConfigFile     = NotFoundError("configuration file is required")
	ErrParentLink            = InvalidError("parent link is inconsistent")
	ErrUnbalanced            = InvalidError("balance factor out of range")
	ErrUnknownConfigFormat   = InvalidError("unknown configuration file format")
	ErrWorkloadRangeTooSmall = InvalidError("key range is too small")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
