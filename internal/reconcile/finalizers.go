// Copyright 2025 Red Hat, Inc.
//
// SPDX-License-Identifier: Apache-2.0

package reconcile

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	v1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/types"
)

var (
	clearMetadataFinalizers = []byte(`{"metadata":{"finalizers":null}}`)
	clearSpecFinalizers     = []byte(`{"spec":{"finalizers":null}}`)
)

// ForceRemoveFinalizers is the escalation path for objects stuck Terminating
// past their wait budget. Different resource and API-server combinations
// accept different shapes, so three methods are tried in order and the first
// success wins: a metadata finalizer patch, a spec finalizer patch (the shape
// namespaces use), and finally a write to the finalize subresource.
func (r *Reconciler) ForceRemoveFinalizers(ctx context.Context, ref ResourceRef) error {
	if r.dryRun {
		log.Info().Fields(ref.Fields()).Msg("Would force-remove finalizers (dry-run)")
		return nil
	}

	var attempts []error

	for _, patch := range [][]byte{clearMetadataFinalizers, clearSpecFinalizers} {
		_, err := r.resource(ref).Patch(ctx, ref.Name, types.MergePatchType, patch, v1.PatchOptions{})
		if err == nil || apierrors.IsNotFound(err) {
			return nil
		}
		attempts = append(attempts, err)
	}

	if err := r.writeFinalize(ctx, ref); err != nil {
		if apierrors.IsNotFound(err) {
			return nil
		}
		attempts = append(attempts, err)
		return fmt.Errorf("could not remove finalizers from %s: %w", ref, errors.Join(attempts...))
	}

	return nil
}

func (r *Reconciler) writeFinalize(ctx context.Context, ref ResourceRef) error {
	obj, err := r.resource(ref).Get(ctx, ref.Name, v1.GetOptions{})
	if err != nil {
		return err
	}

	unstructured.RemoveNestedField(obj.Object, "spec", "finalizers")
	unstructured.RemoveNestedField(obj.Object, "metadata", "finalizers")

	_, err = r.resource(ref).Update(ctx, obj, v1.UpdateOptions{}, "finalize")
	return err
}
