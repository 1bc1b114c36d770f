// Copyright 2025 Red Hat, Inc.
//
// SPDX-License-Identifier: Apache-2.0

package utils

import "k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"

func GetFieldsOfObject(obj *unstructured.Unstructured) map[string]any {
	return map[string]any{
		"kind":      obj.GetKind(),
		"name":      obj.GetName(),
		"namespace": obj.GetNamespace(),
	}
}
