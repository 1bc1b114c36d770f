// Copyright 2025 Red Hat, Inc.
//
// SPDX-License-Identifier: Apache-2.0

package reconcile

type Outcome string

const (
	OutcomeDeleted        Outcome = "deleted"
	OutcomeAlreadyAbsent  Outcome = "already-absent"
	OutcomeCreated        Outcome = "created"
	OutcomeAlreadyPresent Outcome = "already-present"
	OutcomeReady          Outcome = "ready"
	OutcomeTerminating    Outcome = "terminating"
	OutcomeFailed         Outcome = "failed"
)

// Result is the per-object outcome of one reconcile operation. Err is set for
// failed outcomes and for terminating (ErrTerminatingTimeout) so callers can
// distinguish fatal conditions with errors.Is.
type Result struct {
	Ref     ResourceRef
	Outcome Outcome
	Reason  string
	Err     error
}

func (r Result) Failed() bool {
	return r.Outcome == OutcomeFailed
}

// Converged reports whether the object reached the desired state within its
// budget. Terminating counts as not converged: deletion was issued but the
// cluster has not finished it yet.
func (r Result) Converged() bool {
	return r.Outcome != OutcomeFailed && r.Outcome != OutcomeTerminating
}
