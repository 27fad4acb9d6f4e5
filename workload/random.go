// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"fmt"
	"math/rand"

	"github.com/bitmark-inc/avltree/fault"
)

// Random - create a repeatable mix of inserts and deletes with keys
// drawn from [0, keyRange)
//
// deletes are interleaved with the inserts and mostly choose a key
// that was inserted earlier, so they exercise removal rather than
// missing keys
func Random(keyType KeyType, seed int64, inserts int, deletes int, keyRange int) ([]Operation, error) {
	if keyRange <= 0 {
		return nil, fault.ErrWorkloadRangeTooSmall
	}
	if inserts < 0 || deletes < 0 {
		return nil, fault.ErrInvalidOperation
	}

	r := rand.New(rand.NewSource(seed))
	operations := make([]Operation, 0, inserts+deletes)
	inserted := make([]int, 0, inserts)

	for remainingInserts, remainingDeletes := inserts, deletes; remainingInserts+remainingDeletes > 0; {
		n := 0
		kind := Insert
		if r.Intn(remainingInserts+remainingDeletes) >= remainingInserts {
			kind = Delete
		}

		switch {
		case Insert == kind:
			remainingInserts -= 1
			n = r.Intn(keyRange)
			inserted = append(inserted, n)
		case len(inserted) > 0 && 0 != r.Intn(8):
			remainingDeletes -= 1
			n = inserted[r.Intn(len(inserted))]
		default:
			remainingDeletes -= 1
			n = r.Intn(keyRange)
		}

		text := keyText(keyType, n)
		key, err := MakeKey(keyType, text)
		if nil != err {
			return nil, err
		}
		op := Operation{
			Kind: kind,
			Key:  key,
		}
		if Insert == kind {
			op.Value = fmt.Sprintf("value-%d", len(operations))
		}
		operations = append(operations, op)
	}
	return operations, nil
}
