// Copyright 2025 Red Hat, Inc.
//
// SPDX-License-Identifier: Apache-2.0

package test

import (
	"os"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/client-go/dynamic/fake"
)

// CreateTestObject builds a minimal unstructured object for reconciler tests.
func CreateTestObject(apiVersion, kind, name, namespace string, labels map[string]string) *unstructured.Unstructured {
	var obj = new(unstructured.Unstructured)
	obj.SetAPIVersion(apiVersion)
	obj.SetKind(kind)
	obj.SetName(name)
	if namespace != "" {
		obj.SetNamespace(namespace)
	}
	if labels != nil {
		obj.SetLabels(labels)
	}
	return obj
}

// MarkTerminating gives an object the shape of a resource stuck in deletion:
// a deletion timestamp plus finalizers the fake api server will never clear.
func MarkTerminating(obj *unstructured.Unstructured, finalizers ...string) *unstructured.Unstructured {
	var now = metav1.NewTime(time.Now())
	obj.SetDeletionTimestamp(&now)
	obj.SetFinalizers(finalizers)
	return obj
}

// SetCondition sets a status condition the way controllers report readiness.
func SetCondition(obj *unstructured.Unstructured, conditionType, status string) *unstructured.Unstructured {
	conditions, _, _ := unstructured.NestedSlice(obj.Object, "status", "conditions")
	conditions = append(conditions, map[string]any{
		"type":   conditionType,
		"status": status,
	})
	_ = unstructured.SetNestedSlice(obj.Object, conditions, "status", "conditions")
	return obj
}

// CreateTestKubernetesClient creates a fake dynamic client that knows the
// list kinds of every resource the workflows touch.
func CreateTestKubernetesClient(objects ...runtime.Object) *fake.FakeDynamicClient {
	return fake.NewSimpleDynamicClientWithCustomListKinds(runtime.NewScheme(), ListKinds(), objects...)
}

// ListKinds maps the group/version/resources used across the demo lifecycle
// to their list kinds for the fake dynamic client.
func ListKinds() map[schema.GroupVersionResource]string {
	return map[schema.GroupVersionResource]string{
		{Version: "v1", Resource: "namespaces"}:                                                        "NamespaceList",
		{Version: "v1", Resource: "secrets"}:                                                           "SecretList",
		{Version: "v1", Resource: "services"}:                                                          "ServiceList",
		{Version: "v1", Resource: "configmaps"}:                                                        "ConfigMapList",
		{Group: "apps", Version: "v1", Resource: "deployments"}:                                        "DeploymentList",
		{Group: "operators.coreos.com", Version: "v1", Resource: "operatorgroups"}:                     "OperatorGroupList",
		{Group: "operators.coreos.com", Version: "v1alpha1", Resource: "subscriptions"}:                "SubscriptionList",
		{Group: "operators.coreos.com", Version: "v1alpha1", Resource: "clusterserviceversions"}:       "ClusterServiceVersionList",
		{Group: "platform.stackrox.io", Version: "v1alpha1", Resource: "centrals"}:                     "CentralList",
		{Group: "platform.stackrox.io", Version: "v1alpha1", Resource: "securedclusters"}:              "SecuredClusterList",
		{Group: "cert-manager.io", Version: "v1", Resource: "issuers"}:                                 "IssuerList",
		{Group: "cert-manager.io", Version: "v1", Resource: "certificates"}:                            "CertificateList",
		{Group: "route.openshift.io", Version: "v1", Resource: "routes"}:                               "RouteList",
	}
}

func EnvOrDefault(name string, fallback string) string {
	value, ok := os.LookupEnv(name)
	if !ok {
		return fallback
	}
	return value
}
