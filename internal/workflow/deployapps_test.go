// Copyright 2025 Red Hat, Inc.
//
// SPDX-License-Identifier: Apache-2.0

package workflow

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/mfosterrox/demo-config-sub002/internal/config"
	"github.com/mfosterrox/demo-config-sub002/internal/reconcile"
)

const deploymentManifest = `apiVersion: apps/v1
kind: Deployment
metadata:
  name: frontend
spec:
  replicas: 1
---
apiVersion: v1
kind: Service
metadata:
  name: frontend
  namespace: demo-apps
spec:
  ports:
    - port: 8080
`

func writeManifestDir(t *testing.T, files map[string]string) string {
	t.Helper()

	var dir = t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0600); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestDeployAppsAppliesManifests(t *testing.T) {
	config.Current.Apps.ManifestDir = writeManifestDir(t, map[string]string{"frontend.yaml": deploymentManifest})

	fakeClient, _, w := newTestWorkflow()
	markReadyOnCreate(fakeClient, "deployments", "Available")

	results, err := w.DeployApps(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, ExitConverged, ExitCode(results, err))

	deployment, err := fakeClient.Resource(deploymentsGVR).Namespace("demo-apps").Get(
		context.Background(), "frontend", metav1.GetOptions{})
	assert.NoError(t, err)
	assert.Equal(t, "demo-config", deployment.GetLabels()["app.kubernetes.io/part-of"])

	service, err := fakeClient.Resource(servicesGVR).Namespace("demo-apps").Get(
		context.Background(), "frontend", metav1.GetOptions{})
	assert.NoError(t, err)
	assert.Equal(t, "demo-config", service.GetLabels()["app.kubernetes.io/part-of"])
}

func TestDeployAppsDefaultsTheNamespace(t *testing.T) {
	config.Current.Apps.ManifestDir = writeManifestDir(t, map[string]string{"frontend.yaml": deploymentManifest})

	fakeClient, _, w := newTestWorkflow()
	markReadyOnCreate(fakeClient, "deployments", "Available")

	_, err := w.DeployApps(context.Background())
	assert.NoError(t, err)

	_, err = fakeClient.Resource(deploymentsGVR).Namespace("demo-apps").Get(
		context.Background(), "frontend", metav1.GetOptions{})
	assert.NoError(t, err, "deployment without a namespace should land in the apps namespace")
}

func TestDeployAppsRejectsUnknownKinds(t *testing.T) {
	config.Current.Apps.ManifestDir = writeManifestDir(t, map[string]string{"weird.yaml": `apiVersion: v1
kind: Pod
metadata:
  name: naked-pod
`})

	_, _, w := newTestWorkflow()

	results, err := w.DeployApps(context.Background())
	assert.Error(t, err)
	assert.Empty(t, results)
}

func TestDeployAppsFailsWhenRolloutNeverFinishes(t *testing.T) {
	config.Current.Apps.ManifestDir = writeManifestDir(t, map[string]string{"frontend.yaml": deploymentManifest})

	_, _, w := newTestWorkflow()

	results, err := w.DeployApps(context.Background())
	assert.ErrorIs(t, err, reconcile.ErrConvergenceTimeout)
	assert.Equal(t, ExitFatal, ExitCode(results, err))
}

func TestLoadManifestsSkipsEmptyDocuments(t *testing.T) {
	var dir = writeManifestDir(t, map[string]string{
		"apps.yaml":  deploymentManifest + "\n---\n",
		"notes.txt":  "not a manifest",
		"empty.yaml": "",
	})

	objects, err := loadManifests(dir)
	assert.NoError(t, err)
	assert.Len(t, objects, 2)
}
