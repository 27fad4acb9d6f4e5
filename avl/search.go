// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Search - find a specific item, nil if not present
func (tree *Tree) Search(key Item) *Node {
	p := tree.root
	for nil != p {
		switch p.key.Compare(key) {
		case +1: // p.key > key
			p = p.left
		case -1: // p.key < key
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// Get - fetch the value stored for a key
func (tree *Tree) Get(key Item) (interface{}, error) {
	p := tree.Search(key)
	if nil == p {
		return nil, fault.ErrKeyNotFound
	}
	return p.value, nil
}
