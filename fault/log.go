// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

// channel name for the last messages before a panic
const panicChannel = "PANIC"

// allow the final log messages to be written
const panicDelay = 100 * time.Millisecond

// hold a logger channel
var log *logger.L

// Initialise - setup a log channel for last attempt to log something
//
// the logger package must already be initialised
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New(panicChannel)
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data and detach from the logger
func Finalise() {
	if nil != log {
		log.Flush()
		log = nil
	}
}

// Criticalf - log a formatted string with arguments like fmt.Sprintf()
// prefixed by the caller's file and line
func Criticalf(format string, arguments ...interface{}) {
	internalCriticalf(callerFormat(format, arguments))
}

// Panicf - log a formatted message, then panic with the same message
func Panicf(format string, arguments ...interface{}) {
	message := fmt.Sprintf(format, arguments...)
	internalCriticalf(callerFormat("%s", []interface{}{message}))
	time.Sleep(panicDelay)
	panic(message)
}

// PanicIfError - conditional panic
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	Panicf("%s failed with error: %s", message, err)
}

// prefix with the location two frames up: the caller of Criticalf/Panicf
func callerFormat(format string, arguments []interface{}) (string, []interface{}) {
	if _, file, line, ok := runtime.Caller(2); ok {
		a := make([]interface{}, 2, 2+len(arguments))
		a[0] = file
		a[1] = line
		a = append(a, arguments...)
		return "(%q:%d) " + format, a
	}
	return format, arguments
}

// internal routine to handle an uninitialised logger channel
func internalCriticalf(format string, arguments []interface{}) {
	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
		return
	}
	log.Criticalf(format, arguments...)
	log.Flush() // make sure log file is saved
}
