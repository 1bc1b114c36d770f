// Copyright 2025 Red Hat, Inc.
//
// SPDX-License-Identifier: Apache-2.0

package reconcile

import (
	"fmt"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

// ResourceRef identifies a single cluster object, or a set of objects of one
// type when LabelSelector is set instead of Name. Namespace is empty for
// cluster-scoped resources. For desired-present refs Object carries the
// manifest to apply; it is never mutated by the reconciler.
type ResourceRef struct {
	GVR           schema.GroupVersionResource
	Name          string
	Namespace     string
	LabelSelector string
	Object        *unstructured.Unstructured
}

func (r ResourceRef) WithName(name string) ResourceRef {
	r.Name = name
	return r
}

func (r ResourceRef) String() string {
	var id = r.GVR.Resource
	if r.GVR.Group != "" {
		id = fmt.Sprintf("%s.%s", r.GVR.Resource, r.GVR.Group)
	}
	if r.Name == "" {
		return id
	}
	if r.Namespace == "" {
		return fmt.Sprintf("%s/%s", id, r.Name)
	}
	return fmt.Sprintf("%s/%s/%s", id, r.Namespace, r.Name)
}

func (r ResourceRef) Fields() map[string]any {
	var fields = map[string]any{
		"group":    r.GVR.Group,
		"version":  r.GVR.Version,
		"resource": r.GVR.Resource,
		"name":     r.Name,
	}
	if r.Namespace != "" {
		fields["namespace"] = r.Namespace
	}
	if r.LabelSelector != "" {
		fields["selector"] = r.LabelSelector
	}
	return fields
}
