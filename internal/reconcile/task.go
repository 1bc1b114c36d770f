// Copyright 2025 Red Hat, Inc.
//
// SPDX-License-Identifier: Apache-2.0

package reconcile

import (
	"context"
	"time"
)

type State string

const (
	StateAbsent  State = "absent"
	StatePresent State = "present"
)

// Task is a declarative, ordered set of refs to drive to one desired state.
// The reconciler never mutates it.
type Task struct {
	Name    string
	Desired State
	Refs    []ResourceRef
	Timeout time.Duration
}

// Apply runs the task sequentially. Per-object failures are collected and the
// remaining refs are still attempted; a fatal error (connectivity, permission)
// aborts immediately since no later step could succeed either.
func (r *Reconciler) Apply(ctx context.Context, task Task) ([]Result, error) {
	var results = make([]Result, 0, len(task.Refs))

	for _, ref := range task.Refs {
		var batch = len(results)

		switch task.Desired {

		case StatePresent:
			results = append(results, r.EnsurePresent(ctx, ref, task.Timeout))

		default:
			if ref.Name == "" && ref.LabelSelector != "" {
				results = append(results, r.EnsureAbsentBulk(ctx, ref, task.Timeout)...)
			} else {
				results = append(results, r.EnsureAbsent(ctx, ref, task.Timeout))
			}
		}

		for _, result := range results[batch:] {
			if Fatal(result.Err) {
				return results, result.Err
			}
		}
	}

	return results, nil
}
