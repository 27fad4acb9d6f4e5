// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *Node
	count int
	pool  allocator
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Height - number of nodes on the longest path from the root to a
// leaf, zero for an empty tree
func (tree *Tree) Height() int {
	return height(tree.root)
}

func height(p *Node) int {
	if nil == p {
		return 0
	}
	l := height(p.left)
	r := height(p.right)
	if l > r {
		return 1 + l
	}
	return 1 + r
}

// replace the link that points at old (a parent slot or the root)
// with new, and set new's parent accordingly
func (tree *Tree) replaceChild(parent *Node, old *Node, new *Node) {
	switch {
	case nil == parent:
		tree.root = new
	case old == parent.left:
		parent.left = new
	default:
		parent.right = new
	}
	if nil != new {
		new.up = parent
	}
}
