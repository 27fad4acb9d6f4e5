// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// KeyType - selects how key text is converted to a tree key
type KeyType string

// supported key types
const (
	StringKeys  KeyType = "string"
	IntegerKeys KeyType = "integer"
)

// Valid - true for a supported key type
func (k KeyType) Valid() bool {
	return StringKeys == k || IntegerKeys == k
}

// StringKey - keys ordered by byte comparison
type StringKey string

// Compare - string comparison for AVL interface
func (s StringKey) Compare(x interface{}) int {
	return strings.Compare(string(s), string(x.(StringKey)))
}

// IntegerKey - keys ordered numerically
type IntegerKey int64

// Compare - numeric comparison for AVL interface
func (i IntegerKey) Compare(x interface{}) int {
	j := x.(IntegerKey)
	switch {
	case i < j:
		return -1
	case i > j:
		return +1
	default:
		return 0
	}
}

// MakeKey - convert key text to a key of the given type
func MakeKey(keyType KeyType, text string) (avl.Item, error) {
	switch keyType {
	case StringKeys:
		if "" == text {
			return nil, fault.ErrInvalidKey
		}
		return StringKey(text), nil
	case IntegerKeys:
		n, err := strconv.ParseInt(text, 10, 64)
		if nil != err {
			return nil, fault.ErrInvalidKey
		}
		return IntegerKey(n), nil
	default:
		return nil, fault.ErrInvalidKeyType
	}
}

// format a generated key number so that string keys sort numerically
func keyText(keyType KeyType, n int) string {
	if StringKeys == keyType {
		return fmt.Sprintf("%08d", n)
	}
	return strconv.Itoa(n)
}
