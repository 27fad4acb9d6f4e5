// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// per-tree node recycling, trees do not share nodes
type allocator struct {
	free       *Node // linked list of reclaimed nodes through up
	totalNodes int   // total nodes created
	freeNodes  int   // number of nodes in the free list
}

// allocate a new node, reuses reclaimed nodes if any are available
func (a *allocator) newNode(key Item, value interface{}, parent *Node) *Node {
	if nil == a.free {
		if 0 != a.freeNodes {
			fault.Panicf("avl: node free list corrupt: %d free nodes but list is empty", a.freeNodes)
		}
		a.totalNodes += 1
		return &Node{
			up:      parent,
			key:     key,
			value:   value,
			balance: 0,
		}
	}
	p := a.free
	a.free = p.up
	a.freeNodes -= 1

	p.up = parent // also clears the free list pointer
	p.key = key
	p.value = value
	return p
}

// reclaim a node and keep it in the free list
func (a *allocator) freeNode(p *Node) {
	p.left = nil
	p.right = nil
	p.key = nil
	p.value = nil
	p.balance = 0

	p.up = a.free // use as free list pointer
	a.free = p
	a.freeNodes += 1
}
