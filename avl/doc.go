// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with parent pointers, where
// each node records only its balance factor:
//
//   balance = height(right sub-tree) - height(left sub-tree)
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Insert and Delete perform an ordinary binary search tree change
// and then retrace towards the root adjusting balance factors by the
// change in sub-tree height, rotating where a factor reaches ±2.
// Retracing is a loop, so stack use does not grow with the tree.
//
// An insert with an existing key overwrites the data.  Delete does
// not copy data between nodes: a node with two children exchanges
// its position with its in-order predecessor before being unlinked,
// so a node returned by Search keeps its key and value until that
// key itself is deleted.
package avl
