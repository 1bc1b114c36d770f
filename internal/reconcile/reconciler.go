// Copyright 2025 Red Hat, Inc.
//
// SPDX-License-Identifier: Apache-2.0

package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	v1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/client-go/dynamic"

	"github.com/mfosterrox/demo-config-sub002/internal/metrics"
)

// Reconciler drives cluster objects to a desired existence state through the
// dynamic client. All operations are sequential and idempotent: re-applying a
// task against a converged cluster is a no-op.
type Reconciler struct {
	client   dynamic.Interface
	interval time.Duration
	dryRun   bool
}

func NewReconciler(client dynamic.Interface, interval time.Duration, dryRun bool) *Reconciler {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Reconciler{client: client, interval: interval, dryRun: dryRun}
}

func (r *Reconciler) resource(ref ResourceRef) dynamic.ResourceInterface {
	var ri = r.client.Resource(ref.GVR)
	if ref.Namespace != "" {
		return ri.Namespace(ref.Namespace)
	}
	return ri
}

// EnsureAbsent checks for the object and, when present, issues exactly one
// delete followed by an observation poll bounded by timeout. An object still
// carrying finalizers at the budget is reported as terminating, not failed;
// the cluster finishes the removal on its own.
func (r *Reconciler) EnsureAbsent(ctx context.Context, ref ResourceRef, timeout time.Duration) Result {
	_, err := r.resource(ref).Get(ctx, ref.Name, v1.GetOptions{})
	if apierrors.IsNotFound(err) {
		return r.finish(Result{Ref: ref, Outcome: OutcomeAlreadyAbsent})
	}
	if err != nil {
		return r.fail(ref, classify(err))
	}

	if r.dryRun {
		return r.finish(Result{Ref: ref, Outcome: OutcomeDeleted, Reason: "dry-run"})
	}

	if err := r.resource(ref).Delete(ctx, ref.Name, v1.DeleteOptions{}); err != nil {
		if apierrors.IsNotFound(err) {
			return r.finish(Result{Ref: ref, Outcome: OutcomeAlreadyAbsent})
		}
		return r.fail(ref, classify(err))
	}

	var fatalErr error
	pollErr := Poll{Interval: r.interval, Timeout: timeout}.Until(ctx, func(ctx context.Context) (bool, error) {
		_, err := r.resource(ref).Get(ctx, ref.Name, v1.GetOptions{})
		if apierrors.IsNotFound(err) {
			return true, nil
		}
		if classified := classify(err); Fatal(classified) {
			fatalErr = classified
			return false, classified
		}
		return false, nil
	})

	if pollErr == nil {
		return r.finish(Result{Ref: ref, Outcome: OutcomeDeleted})
	}
	if fatalErr != nil {
		return r.fail(ref, fatalErr)
	}
	return r.finish(Result{
		Ref:     ref,
		Outcome: OutcomeTerminating,
		Reason:  "delete issued, finalizers pending",
		Err:     ErrTerminatingTimeout,
	})
}

// EnsureAbsentBulk lists objects matching the ref's label selector and applies
// EnsureAbsent to every member. A failing member never stops the rest; the
// result slice always covers the full listing.
func (r *Reconciler) EnsureAbsentBulk(ctx context.Context, ref ResourceRef, timeout time.Duration) []Result {
	list, err := r.resource(ref).List(ctx, v1.ListOptions{LabelSelector: ref.LabelSelector})
	if err != nil {
		return []Result{r.fail(ref, classify(err))}
	}

	var results = make([]Result, 0, len(list.Items))
	for _, item := range list.Items {
		results = append(results, r.EnsureAbsent(ctx, ref.WithName(item.GetName()), timeout))
	}
	return results
}

// EnsurePresent creates the ref's object when it does not exist yet. No diff
// or update is attempted: the demo owns these objects and never edits them in
// place.
func (r *Reconciler) EnsurePresent(ctx context.Context, ref ResourceRef, timeout time.Duration) Result {
	_, err := r.resource(ref).Get(ctx, ref.Name, v1.GetOptions{})
	if err == nil {
		return r.finish(Result{Ref: ref, Outcome: OutcomeAlreadyPresent})
	}
	if !apierrors.IsNotFound(err) {
		return r.fail(ref, classify(err))
	}

	if r.dryRun {
		return r.finish(Result{Ref: ref, Outcome: OutcomeCreated, Reason: "dry-run"})
	}

	if _, err := r.resource(ref).Create(ctx, ref.Object, v1.CreateOptions{}); err != nil {
		if apierrors.IsAlreadyExists(err) {
			return r.finish(Result{Ref: ref, Outcome: OutcomeAlreadyPresent})
		}
		return r.fail(ref, classify(err))
	}
	return r.finish(Result{Ref: ref, Outcome: OutcomeCreated})
}

// WaitReady polls the object's status condition of the given type until it is
// True. Expiry is fatal for the calling workflow step: downstream steps depend
// on the object actually being ready.
func (r *Reconciler) WaitReady(ctx context.Context, ref ResourceRef, condition string, timeout time.Duration) Result {
	return r.WaitFor(ctx, ref, "condition "+condition, timeout, func(obj *unstructured.Unstructured) bool {
		return hasCondition(obj, condition)
	})
}

// WaitFor polls the object until the predicate holds. The what argument only
// names the awaited state in logs and failure reasons.
func (r *Reconciler) WaitFor(ctx context.Context, ref ResourceRef, what string, timeout time.Duration, ready func(*unstructured.Unstructured) bool) Result {
	if r.dryRun {
		return r.finish(Result{Ref: ref, Outcome: OutcomeReady, Reason: "dry-run"})
	}

	var fatalErr error
	pollErr := Poll{Interval: r.interval, Timeout: timeout}.Until(ctx, func(ctx context.Context) (bool, error) {
		obj, err := r.resource(ref).Get(ctx, ref.Name, v1.GetOptions{})
		if apierrors.IsNotFound(err) {
			return false, nil
		}
		if err != nil {
			if classified := classify(err); Fatal(classified) {
				fatalErr = classified
				return false, classified
			}
			return false, nil
		}
		return ready(obj), nil
	})

	if pollErr == nil {
		return r.finish(Result{Ref: ref, Outcome: OutcomeReady})
	}
	if fatalErr != nil {
		return r.fail(ref, fatalErr)
	}
	return r.finish(Result{
		Ref:     ref,
		Outcome: OutcomeFailed,
		Reason:  fmt.Sprintf("timeout waiting for %s", what),
		Err:     fmt.Errorf("%w: %s", ErrConvergenceTimeout, what),
	})
}

func hasCondition(obj *unstructured.Unstructured, conditionType string) bool {
	conditions, ok, err := unstructured.NestedSlice(obj.Object, "status", "conditions")
	if !ok || err != nil {
		return false
	}

	for _, raw := range conditions {
		condition, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if condition["type"] == conditionType && condition["status"] == "True" {
			return true
		}
	}
	return false
}

func (r *Reconciler) finish(result Result) Result {
	metrics.ObserveOutcome(result.Ref.GVR.Resource, string(result.Outcome))

	var event = log.Info()
	if !result.Converged() {
		event = log.Warn()
	}
	event.Fields(result.Ref.Fields()).
		Str("outcome", string(result.Outcome)).
		Msg("Reconcile step finished")
	return result
}

func (r *Reconciler) fail(ref ResourceRef, err error) Result {
	metrics.ObserveOutcome(ref.GVR.Resource, string(OutcomeFailed))
	log.Error().Fields(ref.Fields()).Err(err).Msg("Reconcile step failed")
	return Result{Ref: ref, Outcome: OutcomeFailed, Reason: err.Error(), Err: err}
}
