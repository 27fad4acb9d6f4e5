// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package workload - apply a list of insert, delete and search
// operations to a tree, verifying its invariants as it goes
//
// Operations come from text lines of the form:
//
//   insert <key> [value…]
//   delete <key>
//   search <key>
//
// or from a seeded pseudo-random generator so that a failing run can
// be repeated exactly.
package workload
