// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testKey int

func (i testKey) Compare(x interface{}) int {
	j := x.(testKey)
	switch {
	case i < j:
		return -1
	case i > j:
		return +1
	default:
		return 0
	}
}

func makeTree(keys ...int) *Tree {
	tree := New()
	for _, k := range keys {
		tree.Insert(testKey(k), k)
	}
	return tree
}

func TestAllocatorReuse(t *testing.T) {
	tree := makeTree(1, 2, 3)
	assert.Equal(t, 3, tree.pool.totalNodes, "wrong total")

	n := tree.Search(testKey(3))
	tree.Delete(testKey(3))
	assert.Equal(t, 1, tree.pool.freeNodes, "wrong free count")
	assert.Nil(t, n.key, "released node still has key")
	assert.Nil(t, n.value, "released node still has value")

	tree.Insert(testKey(4), 4)
	assert.Equal(t, 0, tree.pool.freeNodes, "free node not reused")
	assert.Equal(t, 3, tree.pool.totalNodes, "extra node allocated")
	assert.Equal(t, n, tree.Search(testKey(4)), "different node used")
	assert.Equal(t, tree.Root(), n.up, "wrong parent")
	assert.NoError(t, tree.Check(), "inconsistent tree")
}

func TestAllocatorTreesAreIndependent(t *testing.T) {
	t1 := makeTree(1, 2, 3)
	t2 := makeTree(1)

	t1.Delete(testKey(2))
	t2.Insert(testKey(5), 5)

	assert.Equal(t, 1, t1.pool.freeNodes, "wrong free count")
	assert.Equal(t, 0, t2.pool.freeNodes, "wrong free count")
	assert.Equal(t, 2, t2.pool.totalNodes, "wrong total")
}

func TestSwapAdjacent(t *testing.T) {
	//     2
	//    / \
	//   1   3
	tree := makeTree(2, 1, 3)
	n2 := tree.Search(testKey(2))
	n1 := tree.Search(testKey(1))
	n3 := tree.Search(testKey(3))
	n1.balance = -1 // distinguishable

	tree.swapNodes(n2, n1)

	assert.Equal(t, n1, tree.root, "wrong root")
	assert.Nil(t, n1.up, "root has parent")
	assert.Equal(t, n2, n1.left, "wrong left")
	assert.Equal(t, n3, n1.right, "wrong right")
	assert.Equal(t, n1, n2.up, "wrong parent")
	assert.Equal(t, n1, n3.up, "wrong parent")
	assert.Nil(t, n2.left, "left not cleared")
	assert.Nil(t, n2.right, "right not cleared")
	assert.Equal(t, 0, n1.balance, "balance not swapped")
	assert.Equal(t, -1, n2.balance, "balance not swapped")

	// order of arguments does not matter
	tree.swapNodes(n2, n1)
	assert.Equal(t, n2, tree.root, "wrong root")
	assert.Equal(t, n1, n2.left, "wrong left")
	assert.True(t, tree.CheckUp(), "inconsistent parents")
}

func TestSwapDistant(t *testing.T) {
	tree := makeTree(4, 2, 6, 1, 3, 5, 7)
	n4 := tree.Search(testKey(4))
	n3 := tree.Search(testKey(3))
	n2 := tree.Search(testKey(2))

	tree.swapNodes(n4, n3)

	assert.Equal(t, n3, tree.root, "wrong root")
	assert.Equal(t, n2, n3.left, "wrong left")
	assert.Equal(t, n3, n2.up, "wrong parent")
	assert.Equal(t, n4, n2.right, "wrong right")
	assert.Equal(t, n2, n4.up, "wrong parent")
	assert.Nil(t, n4.left, "left not cleared")
	assert.Nil(t, n4.right, "right not cleared")
	assert.True(t, tree.CheckUp(), "inconsistent parents")
}

func TestSwapSiblings(t *testing.T) {
	tree := makeTree(2, 1, 3)
	n1 := tree.Search(testKey(1))
	n3 := tree.Search(testKey(3))

	tree.swapNodes(n1, n3)

	assert.Equal(t, n3, tree.root.left, "wrong left")
	assert.Equal(t, n1, tree.root.right, "wrong right")
	assert.True(t, tree.CheckUp(), "inconsistent parents")
}

func TestRotateWithoutChild(t *testing.T) {
	tree := makeTree(1)
	assert.Panics(t, func() {
		tree.rotateLeft(tree.root)
	}, "rotate left without right child")
	assert.Panics(t, func() {
		tree.rotateRight(tree.root)
	}, "rotate right without left child")
}

func TestRotatePreservesBalance(t *testing.T) {
	tree := makeTree(2, 1, 4, 3, 5)
	root := tree.root
	right := root.right
	root.balance, right.balance = 7, 9

	tree.rotateLeft(root)

	assert.Equal(t, right, tree.root, "wrong root")
	assert.Equal(t, 7, root.balance, "rotate changed balance")
	assert.Equal(t, 9, right.balance, "rotate changed balance")
	assert.Equal(t, testKey(3), root.right.key, "inner grandchild not moved")
	assert.True(t, tree.CheckUp(), "inconsistent parents")

	tree.rotateRight(right)
	assert.Equal(t, root, tree.root, "wrong root")
	assert.True(t, tree.CheckUp(), "inconsistent parents")
}

func TestPredecessor(t *testing.T) {
	tree := makeTree(4, 2, 6, 1, 3, 5, 7)
	assert.Equal(t, testKey(3), tree.root.predecessor().key, "wrong predecessor")
	assert.Equal(t, testKey(5), tree.Search(testKey(6)).predecessor().key, "wrong predecessor")
	assert.Nil(t, tree.Search(testKey(1)).predecessor(), "leaf has predecessor")
}
