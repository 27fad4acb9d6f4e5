// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest key value
func (tree *Tree) First() *Node {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (tree *Node) first() *Node {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// Last - return the node with the highest key value
func (tree *Tree) Last() *Node {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (tree *Node) last() *Node {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
func (tree *Node) Next() *Node {
	if tree.right != nil {
		return tree.right.first()
	}
	// climb until arriving from a left sub-tree
	for tree.up != nil && tree == tree.up.right {
		tree = tree.up
	}
	return tree.up
}

// Prev - given a node, return the node with the next lowest key
// value or nil if no more nodes
func (tree *Node) Prev() *Node {
	if tree.left != nil {
		return tree.left.last()
	}
	// climb until arriving from a right sub-tree
	for tree.up != nil && tree == tree.up.left {
		tree = tree.up
	}
	return tree.up
}

// in-order predecessor of a node that has a left sub-tree
func (tree *Node) predecessor() *Node {
	return tree.left.last()
}
