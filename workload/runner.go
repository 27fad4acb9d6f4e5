// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"fmt"

	"github.com/bitmark-inc/logger"
)

// Result - tallies from a run
type Result struct {
	Operations  int // operations applied
	Added       int // inserts that created a node
	Overwritten int // inserts that replaced a value
	Deleted     int // deletes that removed a node
	Missing     int // deletes of absent keys
	Found       int // successful searches
	NotFound    int // unsuccessful searches
	Checks      int // full consistency checks performed
	Count       int // final number of nodes
}

// Runner - applies operations to a target
type Runner struct {
	log        *logger.L
	target     Target
	checkEvery int
}

// New - create a runner
//
// checkEvery > 0 verifies the target after every n operations, the
// target is always verified after the last operation
func New(log *logger.L, target Target, checkEvery int) *Runner {
	if checkEvery < 0 {
		checkEvery = 0
	}
	return &Runner{
		log:        log,
		target:     target,
		checkEvery: checkEvery,
	}
}

// Run - apply all operations in order, stopping at the first failed
// check
func (r *Runner) Run(operations []Operation) (Result, error) {
	result := Result{}

	for i, op := range operations {
		r.log.Debugf("%d: %s", i, op)

		switch op.Kind {
		case Insert:
			if r.target.Insert(op.Key, op.Value) {
				result.Added += 1
			} else {
				result.Overwritten += 1
			}

		case Delete:
			before := r.target.Count()
			r.target.Delete(op.Key)
			if r.target.Count() < before {
				result.Deleted += 1
			} else {
				result.Missing += 1
			}

		case Search:
			if nil != r.target.Search(op.Key) {
				result.Found += 1
			} else {
				result.NotFound += 1
			}

		default:
			return result, fmt.Errorf("operation: %d: %s", i, op.Kind)
		}
		result.Operations += 1

		if r.checkEvery > 0 && 0 == result.Operations%r.checkEvery {
			if err := r.check(&result, fmt.Sprintf("operation: %d: %s", i, op)); nil != err {
				return result, err
			}
		}
	}

	// final check unless the last operation was just checked
	if 0 == r.checkEvery || 0 != result.Operations%r.checkEvery || 0 == result.Operations {
		if err := r.check(&result, "final operation"); nil != err {
			return result, err
		}
	}

	result.Count = r.target.Count()
	r.log.Infof("operations: %d  added: %d  overwritten: %d  deleted: %d  missing: %d  checks: %d  count: %d",
		result.Operations, result.Added, result.Overwritten, result.Deleted, result.Missing, result.Checks, result.Count)
	return result, nil
}

func (r *Runner) check(result *Result, after string) error {
	result.Checks += 1
	err := r.target.Check()
	if nil != err {
		r.log.Errorf("check failed after %s  error: %s", after, err)
		return err
	}
	return nil
}
