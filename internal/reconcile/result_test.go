// Copyright 2025 Red Hat, Inc.
//
// SPDX-License-Identifier: Apache-2.0

package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

func TestResultConverged(t *testing.T) {
	var converged = []Outcome{
		OutcomeDeleted, OutcomeAlreadyAbsent, OutcomeCreated, OutcomeAlreadyPresent, OutcomeReady,
	}
	for _, outcome := range converged {
		assert.True(t, Result{Outcome: outcome}.Converged(), "%s should converge", outcome)
	}

	assert.False(t, Result{Outcome: OutcomeTerminating}.Converged())
	assert.False(t, Result{Outcome: OutcomeFailed}.Converged())
}

func TestResourceRefString(t *testing.T) {
	var ref = ResourceRef{
		GVR:       schema.GroupVersionResource{Group: "operators.coreos.com", Version: "v1alpha1", Resource: "subscriptions"},
		Name:      "rhacs-operator",
		Namespace: "rhacs-operator",
	}
	assert.Equal(t, "subscriptions.operators.coreos.com/rhacs-operator/rhacs-operator", ref.String())

	var clusterScoped = ResourceRef{
		GVR:  schema.GroupVersionResource{Version: "v1", Resource: "namespaces"},
		Name: "stackrox",
	}
	assert.Equal(t, "namespaces/stackrox", clusterScoped.String())

	var selector = ResourceRef{
		GVR:           schema.GroupVersionResource{Version: "v1", Resource: "secrets"},
		LabelSelector: "app.kubernetes.io/part-of=demo-config",
	}
	assert.Equal(t, "secrets", selector.String())
}

func TestResourceRefWithNameDoesNotMutate(t *testing.T) {
	var ref = ResourceRef{
		GVR:           schema.GroupVersionResource{Version: "v1", Resource: "secrets"},
		LabelSelector: "app.kubernetes.io/part-of=demo-config",
	}

	named := ref.WithName("secret-a")
	assert.Equal(t, "secret-a", named.Name)
	assert.Empty(t, ref.Name)
}
