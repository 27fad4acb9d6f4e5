// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes a specific item from the tree
//
// returns the value of the removed item or nil if the key was not
// present
func (tree *Tree) Delete(key Item) interface{} {
	node := tree.Search(key)
	if nil == node {
		return nil
	}
	value := node.value // preserve the value part

	// move a node with two children to the position of its
	// predecessor, which has no right child
	if nil != node.left && nil != node.right {
		tree.swapNodes(node, node.predecessor())
	}

	parent := node.up
	child := node.left
	if nil == child {
		child = node.right
	}

	// the side that loses a level as seen by parent
	diff := 0
	if nil != parent {
		if node == parent.left {
			diff = +1
		} else {
			diff = -1
		}
	}

	tree.replaceChild(parent, node, child)
	tree.pool.freeNode(node)
	tree.count -= 1

	tree.deleteFix(parent, diff)
	return value
}

// retrace after one side of p lost a level, diff is +1 if the left
// side shrank, -1 if the right side shrank
func (tree *Tree) deleteFix(p *Node, diff int) {
	for nil != p {
		parent := p.up
		ndiff := 0
		if nil != parent {
			if p == parent.left {
				ndiff = +1
			} else {
				ndiff = -1
			}
		}

		p.updateBalance(diff)

		switch p.getBalance() {
		case +2:
			p1 := p.right
			if -1 == p1.getBalance() {
				// double RL rotation
				p2 := p1.left
				tree.rotateRight(p1)
				tree.rotateLeft(p)
				switch p2.getBalance() {
				case +1:
					p.setBalance(-1)
					p1.setBalance(0)
				case 0:
					p.setBalance(0)
					p1.setBalance(0)
				default:
					p.setBalance(0)
					p1.setBalance(+1)
				}
				p2.setBalance(0)
			} else {
				// single RR rotation
				tree.rotateLeft(p)
				if 0 == p1.getBalance() {
					// height unchanged
					p.setBalance(+1)
					p1.setBalance(-1)
					return
				}
				p.setBalance(0)
				p1.setBalance(0)
			}

		case -2:
			p1 := p.left
			if +1 == p1.getBalance() {
				// double LR rotation
				p2 := p1.right
				tree.rotateLeft(p1)
				tree.rotateRight(p)
				switch p2.getBalance() {
				case -1:
					p.setBalance(+1)
					p1.setBalance(0)
				case 0:
					p.setBalance(0)
					p1.setBalance(0)
				default:
					p.setBalance(0)
					p1.setBalance(-1)
				}
				p2.setBalance(0)
			} else {
				// single LL rotation
				tree.rotateRight(p)
				if 0 == p1.getBalance() {
					// height unchanged
					p.setBalance(-1)
					p1.setBalance(+1)
					return
				}
				p.setBalance(0)
				p1.setBalance(0)
			}

		case +1, -1:
			// was level, height is unchanged
			return
		}

		// sub-tree became shorter
		p = parent
		diff = ndiff
	}
}

// exchange the tree positions of two nodes, including their balance
// factors, so that each node keeps its own key and value
func (tree *Tree) swapNodes(n1 *Node, n2 *Node) {
	if n1 == n2 {
		return
	}

	// when adjacent, n1 is the parent
	if n1.up == n2 {
		n1, n2 = n2, n1
	}

	s1 := tree.link(n1)
	s2 := tree.link(n2)

	p1, l1, r1 := n1.up, n1.left, n1.right
	p2, l2, r2 := n2.up, n2.left, n2.right

	if p2 == n1 {
		n2.up = p1
		if l1 == n2 {
			n2.left, n2.right = n1, r1
		} else {
			n2.left, n2.right = l1, n1
		}
		*s1 = n2
	} else {
		n2.up = p1
		n2.left, n2.right = l1, r1
		n1.up = p2
		*s1 = n2
		*s2 = n1
	}
	n1.left, n1.right = l2, r2

	for _, c := range []*Node{n1.left, n1.right} {
		if nil != c {
			c.up = n1
		}
	}
	for _, c := range []*Node{n2.left, n2.right} {
		if nil != c {
			c.up = n2
		}
	}

	b := n1.getBalance()
	n1.setBalance(n2.getBalance())
	n2.setBalance(b)
}

// the link that points at p: a child slot of its parent or the root
func (tree *Tree) link(p *Node) **Node {
	switch {
	case nil == p.up:
		return &tree.root
	case p == p.up.left:
		return &p.up.left
	default:
		return &p.up.right
	}
}
