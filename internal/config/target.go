// Copyright 2025 Red Hat, Inc.
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"strings"

	"k8s.io/apimachinery/pkg/runtime/schema"
)

// Target identifies one resource type the cleanup workflow drives to absence.
// A target with a name addresses a single object; a target with a label
// selector addresses every matching object of that type.
type Target struct {
	Kubernetes struct {
		Group     string `mapstructure:"group"`
		Version   string `mapstructure:"version"`
		Resource  string `mapstructure:"resource"`
		Kind      string `mapstructure:"kind"`
		Namespace string `mapstructure:"namespace"`
	} `mapstructure:"kubernetes"`
	Name          string `mapstructure:"name"`
	LabelSelector string `mapstructure:"labelSelector"`
}

func (t *Target) GetGroupVersionResource() schema.GroupVersionResource {
	return schema.GroupVersionResource{
		Group:    t.Kubernetes.Group,
		Version:  t.Kubernetes.Version,
		Resource: t.Kubernetes.Resource,
	}
}

func (t *Target) GetGroupVersionKind() schema.GroupVersionKind {
	return schema.GroupVersionKind{
		Group:   t.Kubernetes.Group,
		Version: t.Kubernetes.Version,
		Kind:    t.Kubernetes.Kind,
	}
}

func (t *Target) String() string {
	var gvr = t.GetGroupVersionResource()
	var name = fmt.Sprintf("%s.%s.%s", gvr.Resource, gvr.Group, gvr.Version)
	return strings.ToLower(strings.Trim(name, "."))
}
