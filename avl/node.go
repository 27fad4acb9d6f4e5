// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Item - a key item must implement the Compare function
//
// Compare returns -1, 0 or +1 as the receiver is less than, equal to
// or greater than the argument
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// Node - a node in the tree
type Node struct {
	left    *Node       // left sub-tree
	right   *Node       // right sub-tree
	up      *Node       // points to parent node
	key     Item        // key part for ordering
	value   interface{} // value part for data storage
	balance int         // -1, 0, +1  (±2 only while retracing)
}

// Key - read the key from a node item
func (p *Node) Key() Item {
	return p.key
}

// Value - read the value from a node item
func (p *Node) Value() interface{} {
	return p.value
}

// Balance - height of right sub-tree minus height of left sub-tree
func (p *Node) Balance() int {
	return p.balance
}

// Parent - return parent node of a node
func (p *Node) Parent() *Node {
	return p.up
}

// Left - return the left sub-tree of a node
func (p *Node) Left() *Node {
	return p.left
}

// Right - return the right sub-tree of a node
func (p *Node) Right() *Node {
	return p.right
}

// Depth - get the depth of a node, the root is at depth zero
func (p *Node) Depth() uint {
	count := uint(0)
	for parent := p.up; parent != nil; parent = parent.up {
		count += 1
	}
	return count
}

// GetChildrenByDepth - returns all descendants at a specific depth
// below this node, from left to right
func (p *Node) GetChildrenByDepth(depth uint) []*Node {
	if depth == 0 {
		return []*Node{p}
	}
	nodes := []*Node{}
	if p.left != nil {
		nodes = append(nodes, p.left.GetChildrenByDepth(depth-1)...)
	}
	if p.right != nil {
		nodes = append(nodes, p.right.GetChildrenByDepth(depth-1)...)
	}
	return nodes
}

func (p *Node) getBalance() int {
	return p.balance
}

func (p *Node) setBalance(balance int) {
	p.balance = balance
}

// apply a change in relative sub-tree height
func (p *Node) updateBalance(diff int) {
	p.balance += diff
}
