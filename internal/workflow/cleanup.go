// Copyright 2025 Red Hat, Inc.
//
// SPDX-License-Identifier: Apache-2.0

package workflow

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/mfosterrox/demo-config-sub002/internal/config"
	"github.com/mfosterrox/demo-config-sub002/internal/reconcile"
)

// Cleanup tears the demo down in dependency order: custom resources first,
// then the OLM objects that installed them, then bulk demo resources, and the
// namespaces last. Namespaces stuck Terminating past their budget get the
// finalizer escalation; their result stays terminating since the cluster
// still owns the final removal.
func (w *Workflow) Cleanup(ctx context.Context) ([]reconcile.Result, error) {
	var cleanup = config.Current.Cleanup

	var refs = make([]reconcile.ResourceRef, 0, len(cleanup.Targets))
	for _, target := range cleanup.Targets {
		refs = append(refs, reconcile.ResourceRef{
			GVR:           target.GetGroupVersionResource(),
			Name:          target.Name,
			Namespace:     target.Kubernetes.Namespace,
			LabelSelector: target.LabelSelector,
		})
	}

	task := reconcile.Task{
		Name:    "cleanup",
		Desired: reconcile.StateAbsent,
		Timeout: cleanup.NamespaceWait,
		Refs:    refs,
	}

	results, err := w.rec.Apply(ctx, task)
	if err != nil {
		return results, err
	}

	for _, namespace := range cleanup.Namespaces {
		var ref = reconcile.ResourceRef{GVR: namespacesGVR, Name: namespace}

		result := w.rec.EnsureAbsent(ctx, ref, cleanup.NamespaceWait)
		if result.Outcome == reconcile.OutcomeTerminating && cleanup.ForceFinalizers {
			if err := w.rec.ForceRemoveFinalizers(ctx, ref); err != nil {
				log.Warn().Str("namespace", namespace).Err(err).Msg("Finalizer escalation failed")
			}
		}

		results = append(results, result)
		if reconcile.Fatal(result.Err) {
			return results, result.Err
		}
	}

	for _, key := range []string{KeyTLSSecret, KeyTLSEndpoint, KeyCentralEndpoint, KeyCentralAdminSecret} {
		w.forget(key)
	}

	return results, nil
}
