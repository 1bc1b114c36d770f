// Copyright 2025 Red Hat, Inc.
//
// SPDX-License-Identifier: Apache-2.0

package config

import "time"

const defaultOperatorWait = 10 * time.Minute

// DefaultOperators lists the operator subscriptions the demo installs when the
// configuration does not override them.
func DefaultOperators() []OperatorSubscription {
	return []OperatorSubscription{
		{
			Package:             "rhacs-operator",
			Namespace:           "rhacs-operator",
			Channel:             "stable",
			Source:              "redhat-operators",
			SourceNamespace:     "openshift-marketplace",
			InstallPlanApproval: "Automatic",
			WaitTimeout:         defaultOperatorWait,
		},
		{
			Package:             "compliance-operator",
			Namespace:           "openshift-compliance",
			Channel:             "stable",
			Source:              "redhat-operators",
			SourceNamespace:     "openshift-marketplace",
			InstallPlanApproval: "Automatic",
			WaitTimeout:         defaultOperatorWait,
		},
	}
}

// DefaultCleanupTargets is the canonical teardown set. Order matters: custom
// resources first, then the OLM objects that own them, then bulk demo
// resources. Namespaces are handled separately after all of these.
func DefaultCleanupTargets() []Target {
	var targets = []Target{
		makeTarget("platform.stackrox.io", "v1alpha1", "securedclusters", "SecuredCluster", "stackrox", "stackrox-secured-cluster-services", ""),
		makeTarget("platform.stackrox.io", "v1alpha1", "centrals", "Central", "stackrox", "stackrox-central-services", ""),
		makeTarget("operators.coreos.com", "v1alpha1", "subscriptions", "Subscription", "rhacs-operator", "rhacs-operator", ""),
		makeTarget("operators.coreos.com", "v1alpha1", "subscriptions", "Subscription", "openshift-compliance", "compliance-operator", ""),
		makeTarget("operators.coreos.com", "v1alpha1", "clusterserviceversions", "ClusterServiceVersion", "rhacs-operator", "", "operators.coreos.com/rhacs-operator.rhacs-operator="),
		makeTarget("operators.coreos.com", "v1", "operatorgroups", "OperatorGroup", "rhacs-operator", "", "app.kubernetes.io/part-of=demo-config"),
		makeTarget("cert-manager.io", "v1", "certificates", "Certificate", "stackrox", "", "app.kubernetes.io/part-of=demo-config"),
		makeTarget("", "v1", "secrets", "Secret", "stackrox", "", "app.kubernetes.io/part-of=demo-config"),
		makeTarget("apps", "v1", "deployments", "Deployment", "demo-apps", "", "app.kubernetes.io/part-of=demo-config"),
		makeTarget("", "v1", "services", "Service", "demo-apps", "", "app.kubernetes.io/part-of=demo-config"),
	}
	return targets
}

func makeTarget(group, version, resource, kind, namespace, name, selector string) Target {
	var t Target
	t.Kubernetes.Group = group
	t.Kubernetes.Version = version
	t.Kubernetes.Resource = resource
	t.Kubernetes.Kind = kind
	t.Kubernetes.Namespace = namespace
	t.Name = name
	t.LabelSelector = selector
	return t
}
