// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree, or overwrite the value
// of an existing key
//
// returns true if a node was added
func (tree *Tree) Insert(key Item, value interface{}) bool {
	if nil == tree.root {
		tree.root = tree.pool.newNode(key, value, nil)
		tree.count += 1
		return true
	}

	parent := (*Node)(nil)
	side := 0
	for p := tree.root; nil != p; {
		parent = p
		side = p.key.Compare(key)
		switch side {
		case +1: // p.key > key
			p = p.left
		case -1: // p.key < key
			p = p.right
		default:
			p.value = value
			return false
		}
	}

	node := tree.pool.newNode(key, value, parent)
	tree.count += 1

	if +1 == side {
		parent.left = node
		parent.updateBalance(-1)
	} else {
		parent.right = node
		parent.updateBalance(+1)
	}

	// parent was leaning to the other side, its height is unchanged
	if 0 == parent.getBalance() {
		return true
	}
	tree.insertFix(parent, node)
	return true
}

// retrace after the sub-tree at parent grew by one level, node is
// the child of parent on the path of the insertion
func (tree *Tree) insertFix(parent *Node, node *Node) {
	for {
		grandparent := parent.up
		if nil == grandparent {
			return
		}

		if parent == grandparent.left {
			grandparent.updateBalance(-1)
			switch grandparent.getBalance() {
			case 0:
				return
			case -1:
				parent, node = grandparent, parent
				continue
			}

			// balance == -2, rebalance
			if node == parent.left {
				// single LL rotation
				tree.rotateRight(grandparent)
				parent.setBalance(0)
				grandparent.setBalance(0)
			} else {
				// double LR rotation
				tree.rotateLeft(parent)
				tree.rotateRight(grandparent)
				switch node.getBalance() {
				case -1:
					parent.setBalance(0)
					grandparent.setBalance(+1)
				case 0:
					parent.setBalance(0)
					grandparent.setBalance(0)
				default:
					parent.setBalance(-1)
					grandparent.setBalance(0)
				}
				node.setBalance(0)
			}
			return
		}

		grandparent.updateBalance(+1)
		switch grandparent.getBalance() {
		case 0:
			return
		case +1:
			parent, node = grandparent, parent
			continue
		}

		// balance == +2, rebalance
		if node == parent.right {
			// single RR rotation
			tree.rotateLeft(grandparent)
			parent.setBalance(0)
			grandparent.setBalance(0)
		} else {
			// double RL rotation
			tree.rotateRight(parent)
			tree.rotateLeft(grandparent)
			switch node.getBalance() {
			case +1:
				parent.setBalance(0)
				grandparent.setBalance(-1)
			case 0:
				parent.setBalance(0)
				grandparent.setBalance(0)
			default:
				parent.setBalance(+1)
				grandparent.setBalance(0)
			}
			node.setBalance(0)
		}
		return
	}
}
