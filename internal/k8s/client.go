// Copyright 2025 Red Hat, Inc.
//
// SPDX-License-Identifier: Apache-2.0

package k8s

import (
	"os"
	"path/filepath"

	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

func CreateInClusterClient() (*dynamic.DynamicClient, error) {
	config, err := rest.InClusterConfig()
	if err != nil {
		return nil, err
	}

	client, err := dynamic.NewForConfig(config)
	if err != nil {
		return nil, err
	}

	return client, nil
}

func CreateKubeConfigClient(kubeConfigPath string) (*dynamic.DynamicClient, error) {
	config, err := clientcmd.BuildConfigFromFlags("", kubeConfigPath)
	if err != nil {
		return nil, err
	}

	client, err := dynamic.NewForConfig(config)
	if err != nil {
		return nil, err
	}

	return client, nil
}

// CreateClient picks in-cluster configuration when no kubeconfig is given,
// falling back to $KUBECONFIG and then ~/.kube/config.
func CreateClient(kubeConfigPath string) (*dynamic.DynamicClient, error) {
	if kubeConfigPath == "" {
		if client, err := CreateInClusterClient(); err == nil {
			return client, nil
		}
		kubeConfigPath = os.Getenv("KUBECONFIG")
	}

	if kubeConfigPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		kubeConfigPath = filepath.Join(home, ".kube", "config")
	}

	return CreateKubeConfigClient(kubeConfigPath)
}
