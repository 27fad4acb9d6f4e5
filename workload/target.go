// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"github.com/bitmark-inc/avltree/avl"
)

//go:generate mockgen -destination=mocks/target.go -package=mocks github.com/bitmark-inc/avltree/workload Target

// Target - the tree operations used by a workload
type Target interface {
	Insert(key avl.Item, value interface{}) bool
	Delete(key avl.Item) interface{}
	Search(key avl.Item) *avl.Node
	Count() int
	Check() error
}

// a tree is the normal target
var _ Target = (*avl.Tree)(nil)
