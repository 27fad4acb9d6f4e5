// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// Kind - the type of an operation
type Kind int

// the operations
const (
	Insert Kind = iota
	Delete
	Search
)

var kindNames = map[Kind]string{
	Insert: "insert",
	Delete: "delete",
	Search: "search",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Operation - a single step of a workload
type Operation struct {
	Kind  Kind
	Key   avl.Item
	Value interface{} // only for Insert
}

func (op Operation) String() string {
	if Insert == op.Kind {
		return fmt.Sprintf("%s %v %v", op.Kind, op.Key, op.Value)
	}
	return fmt.Sprintf("%s %v", op.Kind, op.Key)
}

// ParseOperation - convert one text line to an operation
//
// an insert without a value stores the key text as the value
func ParseOperation(keyType KeyType, line string) (Operation, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Operation{}, fault.ErrInvalidOperation
	}

	op := Operation{}
	switch strings.ToLower(fields[0]) {
	case "insert", "add":
		op.Kind = Insert
		op.Value = fields[1]
		if len(fields) > 2 {
			op.Value = strings.Join(fields[2:], " ")
		}
	case "delete", "remove":
		op.Kind = Delete
	case "search", "find":
		op.Kind = Search
	default:
		return Operation{}, fault.ErrInvalidOperation
	}

	if Insert != op.Kind && 2 != len(fields) {
		return Operation{}, fault.ErrInvalidOperation
	}

	key, err := MakeKey(keyType, fields[1])
	if nil != err {
		return Operation{}, err
	}
	op.Key = key
	return op, nil
}

// ParseOperations - convert text lines, blank lines and lines
// starting with "#" are skipped
func ParseOperations(keyType KeyType, lines []string) ([]Operation, error) {
	operations := make([]Operation, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if "" == line || strings.HasPrefix(line, "#") {
			continue
		}
		op, err := ParseOperation(keyType, line)
		if nil != err {
			return nil, fmt.Errorf("line: %d: %q: %w", i+1, line, err)
		}
		operations = append(operations, op)
	}
	return operations, nil
}
