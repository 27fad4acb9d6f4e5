// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avltree/fault"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree) CheckUp() bool {
	return checkup(tree.root, nil)
}

// internal: consistency checker
func checkup(p *Node, up *Node) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		fmt.Printf("fail at node: %v   actual: %v  expected: %v\n", p.key, keyOf(p.up), keyOf(up))
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

func keyOf(p *Node) interface{} {
	if nil == p {
		return nil
	}
	return p.key
}

// Check - verify the whole tree by brute force: parent links, key
// order, each recorded balance against the measured sub-tree heights
// and the node count
func (tree *Tree) Check() error {
	if !checkup(tree.root, nil) {
		return fault.ErrParentLink
	}

	n := 0
	previous := (*Node)(nil)
	for p := tree.First(); nil != p; p = p.Next() {
		if nil != previous && -1 != previous.key.Compare(p.key) {
			return fault.ErrKeyOrder
		}
		previous = p
		n += 1
	}
	if n != tree.count {
		return fault.ErrCountMismatch
	}

	_, err := checkBalance(tree.root)
	return err
}

// internal: returns the measured height of a sub-tree
func checkBalance(p *Node) (int, error) {
	if nil == p {
		return 0, nil
	}
	l, err := checkBalance(p.left)
	if nil != err {
		return 0, err
	}
	r, err := checkBalance(p.right)
	if nil != err {
		return 0, err
	}
	if p.balance != r-l {
		return 0, fault.ErrBalanceMismatch
	}
	if p.balance < -1 || p.balance > 1 {
		return 0, fault.ErrUnbalanced
	}
	if l > r {
		return 1 + l, nil
	}
	return 1 + r, nil
}
