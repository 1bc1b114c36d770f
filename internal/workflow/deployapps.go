// Copyright 2025 Red Hat, Inc.
//
// SPDX-License-Identifier: Apache-2.0

package workflow

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"sigs.k8s.io/yaml"

	"github.com/mfosterrox/demo-config-sub002/internal/config"
	"github.com/mfosterrox/demo-config-sub002/internal/reconcile"
	"github.com/mfosterrox/demo-config-sub002/internal/utils"
)

// DeployApps applies the sample application manifests and waits for their
// deployments to become available. Manifests are plain YAML files; every
// object gets the demo labels so cleanup can find it again.
func (w *Workflow) DeployApps(ctx context.Context) ([]reconcile.Result, error) {
	var apps = config.Current.Apps

	objects, err := loadManifests(apps.ManifestDir)
	if err != nil {
		return nil, err
	}

	namespace, err := toUnstructured(buildNamespace(apps.Namespace))
	if err != nil {
		return nil, err
	}

	var refs = []reconcile.ResourceRef{
		{GVR: namespacesGVR, Name: apps.Namespace, Object: namespace},
	}

	for _, obj := range objects {
		gvr, err := resourceFor(obj.GroupVersionKind())
		if err != nil {
			return nil, err
		}

		if obj.GetNamespace() == "" {
			obj.SetNamespace(apps.Namespace)
		}
		applyDemoLabels(obj)

		refs = append(refs, reconcile.ResourceRef{
			GVR:       gvr,
			Name:      obj.GetName(),
			Namespace: obj.GetNamespace(),
			Object:    obj,
		})
	}

	task := reconcile.Task{
		Name:    "deploy-apps",
		Desired: reconcile.StatePresent,
		Timeout: apps.WaitTimeout,
		Refs:    refs,
	}

	results, err := w.rec.Apply(ctx, task)
	if err != nil {
		return results, err
	}

	for _, ref := range refs {
		if ref.GVR != deploymentsGVR {
			continue
		}

		available := w.rec.WaitReady(ctx, reconcile.ResourceRef{
			GVR:       ref.GVR,
			Name:      ref.Name,
			Namespace: ref.Namespace,
		}, "Available", apps.WaitTimeout)
		results = append(results, available)

		if available.Failed() {
			return results, available.Err
		}
	}

	return results, nil
}

func loadManifests(dir string) ([]*unstructured.Unstructured, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not read manifest directory %s: %w", dir, err)
	}

	var objects []*unstructured.Unstructured
	for _, entry := range entries {
		if entry.IsDir() || !isYamlFile(entry.Name()) {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}

		for _, doc := range strings.Split(string(data), "\n---") {
			if strings.TrimSpace(doc) == "" {
				continue
			}

			var content map[string]any
			if err := yaml.Unmarshal([]byte(doc), &content); err != nil {
				return nil, fmt.Errorf("invalid manifest in %s: %w", entry.Name(), err)
			}

			var obj = &unstructured.Unstructured{Object: content}
			if obj.GetKind() == "" || obj.GetName() == "" {
				log.Warn().Str("file", entry.Name()).Msg("Skipping manifest document without kind or name")
				continue
			}

			log.Debug().Fields(utils.GetFieldsOfObject(obj)).Str("file", entry.Name()).Msg("Loaded manifest")
			objects = append(objects, obj)
		}
	}

	return objects, nil
}

func isYamlFile(name string) bool {
	return strings.HasSuffix(name, ".yml") || strings.HasSuffix(name, ".yaml")
}

func applyDemoLabels(obj *unstructured.Unstructured) {
	var labels = obj.GetLabels()
	if labels == nil {
		labels = make(map[string]string)
	}
	for key, value := range demoLabels() {
		labels[key] = value
	}
	obj.SetLabels(labels)
}

// resourceFor maps the kinds the demo manifests are allowed to contain onto
// their resource names. Anything else is rejected rather than guessed.
func resourceFor(gvk schema.GroupVersionKind) (schema.GroupVersionResource, error) {
	var known = map[string]string{
		"Deployment":            "deployments",
		"Service":               "services",
		"ConfigMap":             "configmaps",
		"Secret":                "secrets",
		"Namespace":             "namespaces",
		"ServiceAccount":        "serviceaccounts",
		"Route":                 "routes",
		"NetworkPolicy":         "networkpolicies",
		"PersistentVolumeClaim": "persistentvolumeclaims",
	}

	resource, ok := known[gvk.Kind]
	if !ok {
		return schema.GroupVersionResource{}, fmt.Errorf("unsupported manifest kind %s", gvk.Kind)
	}
	return gvk.GroupVersion().WithResource(resource), nil
}
