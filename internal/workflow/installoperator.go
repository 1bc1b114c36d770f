// Copyright 2025 Red Hat, Inc.
//
// SPDX-License-Identifier: Apache-2.0

package workflow

import (
	"context"

	operatorsv1alpha1 "github.com/operator-framework/api/pkg/operators/v1alpha1"
	"github.com/rs/zerolog/log"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	v1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"

	"github.com/mfosterrox/demo-config-sub002/internal/config"
	"github.com/mfosterrox/demo-config-sub002/internal/reconcile"
)

// InstallOperators subscribes every configured operator through OLM, waits
// for their CSVs to succeed, then creates the Central custom resource and
// waits for RHACS to come up. Subscriptions are created in order; OLM does
// the actual installation.
func (w *Workflow) InstallOperators(ctx context.Context) ([]reconcile.Result, error) {
	var results []reconcile.Result

	for _, op := range config.Current.Operators {
		opResults, err := w.installOperator(ctx, op)
		results = append(results, opResults...)
		if err != nil {
			return results, err
		}
	}

	centralResults, err := w.installCentral(ctx)
	results = append(results, centralResults...)
	return results, err
}

func (w *Workflow) installOperator(ctx context.Context, op config.OperatorSubscription) ([]reconcile.Result, error) {
	namespace, err := toUnstructured(buildNamespace(op.Namespace))
	if err != nil {
		return nil, err
	}
	operatorGroup, err := toUnstructured(buildOperatorGroup(op.Namespace))
	if err != nil {
		return nil, err
	}
	subscription, err := toUnstructured(buildSubscription(op))
	if err != nil {
		return nil, err
	}

	task := reconcile.Task{
		Name:    "install-" + op.Package,
		Desired: reconcile.StatePresent,
		Timeout: op.WaitTimeout,
		Refs: []reconcile.ResourceRef{
			{GVR: namespacesGVR, Name: op.Namespace, Object: namespace},
			{GVR: operatorGroupsGVR, Name: op.Namespace + "-og", Namespace: op.Namespace, Object: operatorGroup},
			{GVR: subscriptionsGVR, Name: op.Package, Namespace: op.Namespace, Object: subscription},
		},
	}

	results, err := w.rec.Apply(ctx, task)
	if err != nil {
		return results, err
	}

	csvResult := w.waitForCSV(ctx, op)
	results = append(results, csvResult)
	if csvResult.Failed() {
		return results, csvResult.Err
	}

	return results, nil
}

// waitForCSV follows the subscription until OLM reports an installed CSV,
// then follows that CSV until its phase is Succeeded.
func (w *Workflow) waitForCSV(ctx context.Context, op config.OperatorSubscription) reconcile.Result {
	var subRef = reconcile.ResourceRef{GVR: subscriptionsGVR, Name: op.Package, Namespace: op.Namespace}
	var csvName string

	subResult := w.rec.WaitFor(ctx, subRef, "installed CSV", op.WaitTimeout, func(obj *unstructured.Unstructured) bool {
		name, ok, _ := unstructured.NestedString(obj.Object, "status", "installedCSV")
		if !ok || name == "" {
			name, ok, _ = unstructured.NestedString(obj.Object, "status", "currentCSV")
		}
		csvName = name
		return ok && name != ""
	})
	if subResult.Failed() {
		return subResult
	}

	log.Info().Str("csv", csvName).Str("package", op.Package).Msg("Subscription resolved")

	var csvRef = reconcile.ResourceRef{GVR: csvsGVR, Name: csvName, Namespace: op.Namespace}
	return w.rec.WaitFor(ctx, csvRef, "phase Succeeded", op.WaitTimeout, func(obj *unstructured.Unstructured) bool {
		phase, _, _ := unstructured.NestedString(obj.Object, "status", "phase")
		return phase == string(operatorsv1alpha1.CSVPhaseSucceeded)
	})
}

func (w *Workflow) installCentral(ctx context.Context) ([]reconcile.Result, error) {
	var central = config.Current.Central
	var ref = reconcile.ResourceRef{
		GVR:       centralsGVR,
		Name:      central.Name,
		Namespace: central.Namespace,
		Object:    buildCentral(central),
	}

	var results []reconcile.Result
	results = append(results, w.rec.EnsurePresent(ctx, ref, central.WaitTimeout))
	if last := results[len(results)-1]; reconcile.Fatal(last.Err) {
		return results, last.Err
	}

	deployed := w.rec.WaitReady(ctx, ref, "Deployed", central.WaitTimeout)
	results = append(results, deployed)
	if deployed.Failed() {
		return results, deployed.Err
	}

	w.record(KeyCentralEndpoint, w.centralEndpoint(ctx, central))
	w.record(KeyCentralAdminSecret, "central-htpasswd")

	return results, nil
}

// centralEndpoint prefers the route the operator exposes; the in-cluster
// service DNS name is the fallback when no route exists yet.
func (w *Workflow) centralEndpoint(ctx context.Context, central config.CentralConfiguration) string {
	route, err := w.client.Resource(routesGVR).Namespace(central.Namespace).Get(ctx, "central", v1.GetOptions{})
	if err != nil {
		if !apierrors.IsNotFound(err) {
			log.Warn().Err(err).Msg("Could not read central route")
		}
		return "https://central." + central.Namespace + ".svc"
	}

	host, ok, _ := unstructured.NestedString(route.Object, "spec", "host")
	if !ok || host == "" {
		return "https://central." + central.Namespace + ".svc"
	}
	return "https://" + host
}
