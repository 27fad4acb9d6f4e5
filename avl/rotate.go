// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// promote the right child of p into p's position:
//
//       p                r
//      / \              / \
//     a   r     =>     p   c
//        / \          / \
//       b   c        a   b
//
// balance factors are not changed
func (tree *Tree) rotateLeft(p *Node) {
	r := p.right
	if nil == r {
		fault.Panicf("avl: rotate left: node: %v has no right child", p.key)
	}

	p.right = r.left
	if nil != r.left {
		r.left.up = p
	}

	tree.replaceChild(p.up, p, r)

	r.left = p
	p.up = r
}

// mirror of rotateLeft: promote the left child of p into p's position
func (tree *Tree) rotateRight(p *Node) {
	l := p.left
	if nil == l {
		fault.Panicf("avl: rotate right: node: %v has no left child", p.key)
	}

	p.left = l.right
	if nil != l.right {
		l.right.up = p
	}

	tree.replaceChild(p.up, p, l)

	l.right = p
	p.up = l
}
