// Copyright 2025 Red Hat, Inc.
//
// SPDX-License-Identifier: Apache-2.0

package workflow

import (
	operatorsv1 "github.com/operator-framework/api/pkg/operators/v1"
	operatorsv1alpha1 "github.com/operator-framework/api/pkg/operators/v1alpha1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"

	"github.com/mfosterrox/demo-config-sub002/internal/config"
)

var (
	namespacesGVR     = schema.GroupVersionResource{Version: "v1", Resource: "namespaces"}
	secretsGVR        = schema.GroupVersionResource{Version: "v1", Resource: "secrets"}
	servicesGVR       = schema.GroupVersionResource{Version: "v1", Resource: "services"}
	deploymentsGVR    = schema.GroupVersionResource{Group: "apps", Version: "v1", Resource: "deployments"}
	operatorGroupsGVR = schema.GroupVersionResource{Group: "operators.coreos.com", Version: "v1", Resource: "operatorgroups"}
	subscriptionsGVR  = schema.GroupVersionResource{Group: "operators.coreos.com", Version: "v1alpha1", Resource: "subscriptions"}
	csvsGVR           = schema.GroupVersionResource{Group: "operators.coreos.com", Version: "v1alpha1", Resource: "clusterserviceversions"}
	centralsGVR       = schema.GroupVersionResource{Group: "platform.stackrox.io", Version: "v1alpha1", Resource: "centrals"}
	issuersGVR        = schema.GroupVersionResource{Group: "cert-manager.io", Version: "v1", Resource: "issuers"}
	certificatesGVR   = schema.GroupVersionResource{Group: "cert-manager.io", Version: "v1", Resource: "certificates"}
	routesGVR         = schema.GroupVersionResource{Group: "route.openshift.io", Version: "v1", Resource: "routes"}
)

// demoLabels mark every object the demo creates; cleanup selects on them.
func demoLabels() map[string]string {
	return map[string]string{
		"app.kubernetes.io/part-of":    "demo-config",
		"app.kubernetes.io/managed-by": "demo-config",
	}
}

func buildNamespace(name string) *corev1.Namespace {
	return &corev1.Namespace{
		TypeMeta: metav1.TypeMeta{
			APIVersion: corev1.SchemeGroupVersion.String(),
			Kind:       "Namespace",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:   name,
			Labels: demoLabels(),
		},
	}
}

func buildOperatorGroup(namespace string) *operatorsv1.OperatorGroup {
	return &operatorsv1.OperatorGroup{
		TypeMeta: metav1.TypeMeta{
			APIVersion: operatorsv1.GroupVersion.String(),
			Kind:       operatorsv1.OperatorGroupKind,
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      namespace + "-og",
			Namespace: namespace,
			Labels:    demoLabels(),
		},
	}
}

func buildSubscription(op config.OperatorSubscription) *operatorsv1alpha1.Subscription {
	return &operatorsv1alpha1.Subscription{
		TypeMeta: metav1.TypeMeta{
			APIVersion: operatorsv1alpha1.SchemeGroupVersion.String(),
			Kind:       operatorsv1alpha1.SubscriptionKind,
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      op.Package,
			Namespace: op.Namespace,
			Labels:    demoLabels(),
		},
		Spec: &operatorsv1alpha1.SubscriptionSpec{
			CatalogSource:          op.Source,
			CatalogSourceNamespace: op.SourceNamespace,
			Package:                op.Package,
			Channel:                op.Channel,
			InstallPlanApproval:    operatorsv1alpha1.Approval(op.InstallPlanApproval),
		},
	}
}

// buildCentral assembles the RHACS Central custom resource. There is no typed
// client for it; the spec fields the demo sets are small enough to express as
// unstructured content directly.
func buildCentral(central config.CentralConfiguration) *unstructured.Unstructured {
	var obj = &unstructured.Unstructured{Object: map[string]any{
		"apiVersion": "platform.stackrox.io/v1alpha1",
		"kind":       "Central",
		"metadata": map[string]any{
			"name":      central.Name,
			"namespace": central.Namespace,
		},
		"spec": map[string]any{
			"central": map[string]any{
				"exposure": map[string]any{
					"route": map[string]any{"enabled": true},
				},
			},
		},
	}}
	obj.SetLabels(demoLabels())
	return obj
}

func toUnstructured(obj runtime.Object) (*unstructured.Unstructured, error) {
	content, err := runtime.DefaultUnstructuredConverter.ToUnstructured(obj)
	if err != nil {
		return nil, err
	}
	return &unstructured.Unstructured{Object: content}, nil
}
