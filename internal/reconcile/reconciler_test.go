// Copyright 2025 Red Hat, Inc.
//
// SPDX-License-Identifier: Apache-2.0

package reconcile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/client-go/dynamic/fake"
	k8stesting "k8s.io/client-go/testing"

	"github.com/mfosterrox/demo-config-sub002/internal/config"
	"github.com/mfosterrox/demo-config-sub002/internal/test"
)

var (
	secretsGVR    = schema.GroupVersionResource{Version: "v1", Resource: "secrets"}
	namespacesGVR = schema.GroupVersionResource{Version: "v1", Resource: "namespaces"}
)

const testTimeout = 200 * time.Millisecond

func TestMain(m *testing.M) {
	test.InstallLogRecorder()
	config.Current = test.BuildBaseTestConfig()
	os.Exit(m.Run())
}

func newTestReconciler(objects ...runtime.Object) (*fake.FakeDynamicClient, *Reconciler) {
	var fakeClient = test.CreateTestKubernetesClient(objects...)
	return fakeClient, NewReconciler(fakeClient, 10*time.Millisecond, false)
}

func secretRef(name string) ResourceRef {
	return ResourceRef{GVR: secretsGVR, Name: name, Namespace: "stackrox"}
}

func countActions(fakeClient *fake.FakeDynamicClient, verb string, counter *int) {
	fakeClient.PrependReactor(verb, "*", func(k8stesting.Action) (bool, runtime.Object, error) {
		*counter++
		return false, nil, nil
	})
}

func TestEnsureAbsentDeletesExisting(t *testing.T) {
	fakeClient, reconciler := newTestReconciler(
		test.CreateTestObject("v1", "Secret", "demo-tls-secret", "stackrox", nil),
	)

	var deleteCalls int
	countActions(fakeClient, "delete", &deleteCalls)

	result := reconciler.EnsureAbsent(context.Background(), secretRef("demo-tls-secret"), testTimeout)
	assert.Equal(t, OutcomeDeleted, result.Outcome)
	assert.NoError(t, result.Err)
	assert.True(t, result.Converged())
	assert.Equal(t, 1, deleteCalls)
}

func TestEnsureAbsentIsIdempotent(t *testing.T) {
	fakeClient, reconciler := newTestReconciler(
		test.CreateTestObject("v1", "Secret", "demo-tls-secret", "stackrox", nil),
	)

	var deleteCalls int
	countActions(fakeClient, "delete", &deleteCalls)

	first := reconciler.EnsureAbsent(context.Background(), secretRef("demo-tls-secret"), testTimeout)
	second := reconciler.EnsureAbsent(context.Background(), secretRef("demo-tls-secret"), testTimeout)

	assert.Equal(t, OutcomeDeleted, first.Outcome)
	assert.Equal(t, OutcomeAlreadyAbsent, second.Outcome)
	assert.Equal(t, 1, deleteCalls)
}

func TestEnsureAbsentIssuesNoDeleteWhenAbsent(t *testing.T) {
	fakeClient, reconciler := newTestReconciler()

	var deleteCalls int
	countActions(fakeClient, "delete", &deleteCalls)

	result := reconciler.EnsureAbsent(context.Background(), secretRef("never-existed"), testTimeout)
	assert.Equal(t, OutcomeAlreadyAbsent, result.Outcome)
	assert.Equal(t, 0, deleteCalls)
}

func TestEnsureAbsentReportsTerminating(t *testing.T) {
	var stuck = test.MarkTerminating(
		test.CreateTestObject("v1", "Namespace", "stackrox", "", nil),
		"kubernetes",
	)
	fakeClient, reconciler := newTestReconciler(stuck)

	var deleteCalls int
	fakeClient.PrependReactor("delete", "namespaces", func(k8stesting.Action) (bool, runtime.Object, error) {
		deleteCalls++
		return true, nil, nil
	})

	result := reconciler.EnsureAbsent(context.Background(), ResourceRef{GVR: namespacesGVR, Name: "stackrox"}, testTimeout)
	assert.Equal(t, OutcomeTerminating, result.Outcome)
	assert.ErrorIs(t, result.Err, ErrTerminatingTimeout)
	assert.False(t, result.Converged())
	assert.False(t, Fatal(result.Err))
	assert.Equal(t, 1, deleteCalls)
}

func TestEnsureAbsentDryRunTouchesNothing(t *testing.T) {
	fakeClient := test.CreateTestKubernetesClient(
		test.CreateTestObject("v1", "Secret", "demo-tls-secret", "stackrox", nil),
	)
	reconciler := NewReconciler(fakeClient, 10*time.Millisecond, true)

	var deleteCalls int
	countActions(fakeClient, "delete", &deleteCalls)

	result := reconciler.EnsureAbsent(context.Background(), secretRef("demo-tls-secret"), testTimeout)
	assert.Equal(t, OutcomeDeleted, result.Outcome)
	assert.Equal(t, "dry-run", result.Reason)
	assert.Equal(t, 0, deleteCalls)
}

func TestEnsureAbsentBulkContinuesPastFailure(t *testing.T) {
	var labels = map[string]string{"app.kubernetes.io/part-of": "demo-config"}
	fakeClient, reconciler := newTestReconciler(
		test.CreateTestObject("v1", "Secret", "secret-a", "stackrox", labels),
		test.CreateTestObject("v1", "Secret", "secret-b", "stackrox", labels),
		test.CreateTestObject("v1", "Secret", "secret-c", "stackrox", labels),
	)

	fakeClient.PrependReactor("get", "secrets", func(action k8stesting.Action) (bool, runtime.Object, error) {
		if action.(k8stesting.GetAction).GetName() == "secret-b" {
			return true, nil, apierrors.NewInternalError(fmt.Errorf("etcd hiccup"))
		}
		return false, nil, nil
	})

	var ref = ResourceRef{GVR: secretsGVR, Namespace: "stackrox", LabelSelector: "app.kubernetes.io/part-of=demo-config"}
	results := reconciler.EnsureAbsentBulk(context.Background(), ref, testTimeout)

	assert.Len(t, results, 3)

	var failed, deleted int
	for _, result := range results {
		switch result.Outcome {
		case OutcomeFailed:
			failed++
			assert.False(t, Fatal(result.Err))
		case OutcomeDeleted:
			deleted++
		}
	}
	assert.Equal(t, 1, failed)
	assert.Equal(t, 2, deleted)
}

func TestEnsurePresentIsIdempotent(t *testing.T) {
	fakeClient, reconciler := newTestReconciler()

	var createCalls int
	countActions(fakeClient, "create", &createCalls)

	var ref = secretRef("demo-tls-secret")
	ref.Object = test.CreateTestObject("v1", "Secret", "demo-tls-secret", "stackrox", nil)

	first := reconciler.EnsurePresent(context.Background(), ref, testTimeout)
	second := reconciler.EnsurePresent(context.Background(), ref, testTimeout)

	assert.Equal(t, OutcomeCreated, first.Outcome)
	assert.Equal(t, OutcomeAlreadyPresent, second.Outcome)
	assert.Equal(t, 1, createCalls)
}

func TestWaitReadySucceedsOnCondition(t *testing.T) {
	var central = test.SetCondition(
		test.CreateTestObject("platform.stackrox.io/v1alpha1", "Central", "stackrox-central-services", "stackrox", nil),
		"Deployed", "True",
	)
	_, reconciler := newTestReconciler(central)

	var ref = ResourceRef{
		GVR:       schema.GroupVersionResource{Group: "platform.stackrox.io", Version: "v1alpha1", Resource: "centrals"},
		Name:      "stackrox-central-services",
		Namespace: "stackrox",
	}
	result := reconciler.WaitReady(context.Background(), ref, "Deployed", testTimeout)
	assert.Equal(t, OutcomeReady, result.Outcome)
	assert.NoError(t, result.Err)
}

func TestWaitReadyTimesOutWithinBudget(t *testing.T) {
	var notReady = test.CreateTestObject("v1", "Secret", "demo-tls-secret", "stackrox", nil)
	_, reconciler := newTestReconciler(notReady)

	var start = time.Now()
	result := reconciler.WaitReady(context.Background(), secretRef("demo-tls-secret"), "Ready", testTimeout)

	assert.Equal(t, OutcomeFailed, result.Outcome)
	assert.ErrorIs(t, result.Err, ErrConvergenceTimeout)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestWaitForObjectAppearingLater(t *testing.T) {
	fakeClient, reconciler := newTestReconciler()

	go func() {
		time.Sleep(50 * time.Millisecond)
		var ready = test.SetCondition(
			test.CreateTestObject("v1", "Secret", "late-secret", "stackrox", nil),
			"Ready", "True",
		)
		_, _ = fakeClient.Resource(secretsGVR).Namespace("stackrox").Create(
			context.Background(), ready, metav1.CreateOptions{})
	}()

	result := reconciler.WaitReady(context.Background(), secretRef("late-secret"), "Ready", 2*time.Second)
	assert.Equal(t, OutcomeReady, result.Outcome)
}

func TestApplyAbortsOnFatalError(t *testing.T) {
	fakeClient, reconciler := newTestReconciler()

	fakeClient.PrependReactor("get", "secrets", func(k8stesting.Action) (bool, runtime.Object, error) {
		return true, nil, apierrors.NewForbidden(schema.GroupResource{Resource: "secrets"}, "any", errors.New("rbac denied"))
	})

	task := Task{
		Name:    "teardown",
		Desired: StateAbsent,
		Timeout: testTimeout,
		Refs:    []ResourceRef{secretRef("secret-a"), secretRef("secret-b")},
	}

	results, err := reconciler.Apply(context.Background(), task)
	assert.ErrorIs(t, err, ErrPermission)
	assert.Len(t, results, 1)
	assert.True(t, Fatal(results[0].Err))
}

func TestApplyUsesBulkForSelectorRefs(t *testing.T) {
	var labels = map[string]string{"app.kubernetes.io/part-of": "demo-config"}
	_, reconciler := newTestReconciler(
		test.CreateTestObject("v1", "Secret", "secret-a", "stackrox", labels),
		test.CreateTestObject("v1", "Secret", "secret-b", "stackrox", labels),
	)

	task := Task{
		Name:    "teardown",
		Desired: StateAbsent,
		Timeout: testTimeout,
		Refs: []ResourceRef{
			{GVR: secretsGVR, Namespace: "stackrox", LabelSelector: "app.kubernetes.io/part-of=demo-config"},
		},
	}

	results, err := reconciler.Apply(context.Background(), task)
	assert.NoError(t, err)
	assert.Len(t, results, 2)
	for _, result := range results {
		assert.Equal(t, OutcomeDeleted, result.Outcome)
	}
}
