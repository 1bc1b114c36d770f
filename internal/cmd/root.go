// Copyright 2025 Red Hat, Inc.
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "demo-config",
	Short: "demo-config installs, configures and tears down the RHACS security demo on an OpenShift cluster.",
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringP("kubeconfig", "k", "", "sets the kubeconfig that should be used (service account will be used if unset)")
	rootCmd.PersistentFlags().StringP("namespace", "n", "", "overrides the target namespace from the configuration")
	rootCmd.PersistentFlags().Bool("dry-run", false, "log intended changes without touching the cluster")
	rootCmd.AddCommand(initCmd, setupSslCmd, installOperatorCmd, deployAppsCmd, cleanupCmd, serveCmd)
}
